package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/movegen"
)

type config struct {
	workers int
	verbose bool
}

type Option func(*config)

// WithParallel spreads iterations over n goroutines. n <= 0 uses one
// goroutine per CPU.
func WithParallel(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		cfg.workers = n
	}
}

// WithVerbose reports the destination count of every side and piece type
// before the summary.
func WithVerbose() Option {
	return func(cfg *config) {
		cfg.verbose = true
	}
}

// Movegen generates the destinations of every side and piece type of the
// position in fen, iterations times over, and sends a summary line to out.
// A nil out discards every line.
func Movegen(ctx context.Context, fen string, iterations int, out chan<- string, opts ...Option) error {
	cfg := &config{workers: 1}
	for _, f := range opts {
		f(cfg)
	}

	pos, _, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	if cfg.verbose {
		for _, s := range board.Sides {
			for _, p := range board.Pieces {
				send(out, fmt.Sprintf("%s %s: %d", s, p, movegen.PieceDestinations(pos, s, p).BitCount()))
			}
		}
	}

	var n, squares uint64
	start := time.Now()
	err = runMovegen(ctx, pos, iterations, cfg.workers, &n, &squares)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	var rate int
	if secs := elapsed.Seconds(); secs > 0 {
		rate = int(float64(squares) / secs)
	}
	send(out, message.NewPrinter(language.English).
		Sprintf("n=%d squares=%d rate=%d/s (%.3fs elapsed)", n, squares, rate, elapsed.Seconds()))
	return nil
}

func send(out chan<- string, line string) {
	if out != nil {
		out <- line
	}
}

func generate(pos board.Position) uint64 {
	var squares uint64
	for _, s := range board.Sides {
		for _, p := range board.Pieces {
			squares += uint64(movegen.PieceDestinations(pos, s, p).BitCount())
		}
	}
	return squares
}

func runMovegen(ctx context.Context, pos board.Position, iterations, workers int, n, squares *uint64) error {
	if workers <= 1 {
		for i := 0; i < iterations; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			*squares += generate(pos)
			*n++
		}
		return nil
	}

	var next int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for atomic.AddInt64(&next, 1) <= int64(iterations) {
				if ctx.Err() != nil {
					return
				}
				atomic.AddUint64(squares, generate(pos))
				atomic.AddUint64(n, 1)
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}
