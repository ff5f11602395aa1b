package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/daystram/bitboard/bench"
	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/image"
	"github.com/daystram/bitboard/movegen"
	"github.com/daystram/bitboard/square"
	"github.com/daystram/bitboard/uci"
)

func realMain(opts options, r io.Reader, w io.Writer) error {
	if opts.uci {
		return uci.NewInterface(r, w).Run(context.Background())
	}
	if opts.bench > 0 {
		return runBench(opts)
	}

	pos, turn, err := board.ParseFEN(opts.fen)
	if err != nil {
		return err
	}
	if err := pos.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(w, "to move:", turn)
	fmt.Fprintln(w, board.Draw(pos))
	dumpDestinations(w, pos, turn, opts.draw)

	if opts.svg != "" {
		return writeSVG(opts.svg, pos, turn)
	}
	return nil
}

func dumpDestinations(w io.Writer, pos board.Position, turn board.Side, draw bool) {
	for _, p := range board.Pieces {
		if pos.Bitmap(turn, p).IsEmpty() {
			continue
		}
		dst := movegen.PieceDestinations(pos, turn, p)
		fmt.Fprintf(w, "============ %s (%d)\n", p, dst.BitCount())
		if draw {
			fmt.Fprintln(w, board.Draw(pos, board.WithMarks(dst)))
		} else {
			fmt.Fprintln(w, dst.Dump(pos.Bitmap(turn, p)))
		}

		perSquare := movegen.SquareDestinations(pos, turn, p)
		from := make([]int, 0, len(perSquare))
		for i := range perSquare {
			from = append(from, int(i))
		}
		sort.Ints(from)
		for _, i := range from {
			fmt.Fprintf(w, "%s => %s\n", square.Square(i), notations(perSquare[uint8(i)]))
		}
	}
	fmt.Fprintln(w, "total:", movegen.CountDestinations(pos, turn))
}

func notations(bm bitboard.Bitboard) []string {
	sqs := make([]string, 0, bm.BitCount())
	for _, i := range bm.Indexes() {
		sqs = append(sqs, square.Square(i).Notation())
	}
	return sqs
}

func writeSVG(path string, pos board.Position, turn board.Side) error {
	var marks bitboard.Bitboard
	for _, p := range board.Pieces {
		marks |= movegen.PieceDestinations(pos, turn, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := image.SVG(f, pos, marks); err != nil {
		_ = f.Close()
		return err
	}
	log.Println("written svg:", path)
	return f.Close()
}

func runBench(opts options) error {
	log.Printf("============ movegen bench(%d)\n", opts.bench)
	var benchOpts []bench.Option
	if opts.benchParallel {
		benchOpts = append(benchOpts, bench.WithParallel(0))
	}

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()
	err := bench.Movegen(context.Background(), opts.fen, opts.bench, out, benchOpts...)
	close(out)
	<-done
	return err
}
