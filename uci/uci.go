// Package uci serves positions and their destination sets over a line based
// command protocol modelled on UCI. Only the position handling commands are
// kept; "go" runs destination generation instead of a search.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/bitboard/bench"
	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/movegen"
	"github.com/daystram/bitboard/square"
)

var (
	InterfaceName   = "Gambit Bitboard"
	InterfaceAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		parallelBench: true,
		ascii:         false,
	}
)

type options struct {
	parallelBench bool
	ascii         bool
}

type Interface struct {
	in  io.Reader
	out io.Writer

	pos     board.Position
	turn    board.Side
	options options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

// Run reads commands until "quit" or the end of input. Malformed commands
// are ignored.
func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch args := strings.Fields(scanner.Text()); {
		case len(args) == 0:
			continue
		case args[0] == "uci":
			i.commandUCI(ctx)
		case args[0] == "ucinewgame":
			i.reset(ctx)
		case args[0] == "isready":
			i.println("readyok")
		case args[0] == "setoption":
			i.commandSetOption(ctx, args[1:])
		case args[0] == "position":
			i.commandPosition(ctx, args[1:])
		case args[0] == "d":
			i.commandDraw(ctx)
		case args[0] == "go":
			i.commandGo(ctx, args[1:])
		case args[0] == "quit":
			return nil
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", InterfaceName))
	i.println(fmt.Sprintf("id author %s", InterfaceAuthor))
	i.println(fmt.Sprintf("option ParallelBench type check default %v", defaultOptions.parallelBench))
	i.println(fmt.Sprintf("option ASCII type check default %v", defaultOptions.ascii))
	i.println("uciok")
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		return
	}
	switch strings.ToLower(args[1]) {
	case "parallelbench":
		i.options.parallelBench = value
	case "ascii":
		i.options.ascii = value
	}
}

func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	pos, turn, err := board.ParseFEN(fen)
	if err != nil {
		i.println("info string", err)
		return
	}
	i.pos, i.turn = pos, turn
}

func (i *Interface) commandDraw(_ context.Context) {
	var opts []board.DrawOption
	if i.options.ascii {
		opts = append(opts, board.WithASCII())
	}
	i.println(board.Draw(i.pos, opts...))
	i.println("Fen:", board.MarshalFEN(i.pos, i.turn))
}

// commandGo handles "go bench <n>" and "go moves [square]". Without a square
// every source of the side to move is listed.
func (i *Interface) commandGo(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}
	switch mode := args[0]; mode {
	case "bench":
		if len(args) != 2 {
			return
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return
		}

		var opts []bench.Option
		if i.options.parallelBench {
			opts = append(opts, bench.WithParallel(0))
		}
		out := make(chan string, 64)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for s := range out {
				i.println("info string", s)
			}
		}()
		err = bench.Movegen(ctx, board.MarshalFEN(i.pos, i.turn), n, out, opts...)
		close(out)
		<-done
		if err != nil {
			i.println("info string", err)
		}

	case "moves":
		only := square.NoSquare
		if len(args) == 2 {
			sq, err := square.NewSquareFromNotation(args[1])
			if err != nil {
				i.println("info string", err)
				return
			}
			only = sq
		}
		var total int
		for _, p := range board.Pieces {
			for _, from := range i.pos.Bitmap(i.turn, p).Indexes() {
				sq := square.Square(from)
				if only != square.NoSquare && sq != only {
					continue
				}
				dst := movegen.Destinations(i.pos, i.turn, p, sq.Bitboard())
				total += int(dst.BitCount())
				i.println(fmt.Sprintf("info %s %s %s", p, sq, dst))
			}
		}
		i.println(fmt.Sprintf("destinations %d", total))
	}
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
