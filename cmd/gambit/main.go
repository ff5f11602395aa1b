package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/bitboard/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	fen  = flag.String("fen", board.DefaultStartingPositionFEN, "position to generate destinations for")
	draw = flag.Bool("draw", false, "draw the position with each piece type's destinations highlighted")
	svg  = flag.String("svg", "", "write the position and the side to move's destinations as svg to this path")

	benchRun      = flag.Int("bench", 0, "run movegen bench for n iterations")
	benchParallel = flag.Bool("bench.parallel", false, "spread bench iterations over all CPUs")

	uciRun = flag.Bool("uci", false, "serve the command protocol on stdin")
)

type options struct {
	fen           string
	draw          bool
	svg           string
	bench         int
	benchParallel bool
	uci           bool
}

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(options{
		fen:           *fen,
		draw:          *draw,
		svg:           *svg,
		bench:         *benchRun,
		benchParallel: *benchParallel,
		uci:           *uciRun,
	}, os.Stdin, os.Stdout)
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}
