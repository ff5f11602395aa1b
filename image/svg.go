// Package image renders positions as SVG documents.
package image

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/board"
	"github.com/daystram/bitboard/square"
)

const (
	DefaultSquareSize = 48
	minSquareSize     = 8

	colorLight  = "#eeeed2"
	colorDark   = "#769656"
	colorMarked = "#f6f669"
	colorLabel  = "#4a4a4a"
)

var (
	// ErrInvalidSize represents a square size too small to draw.
	ErrInvalidSize = errors.New("invalid square size")
)

type config struct {
	squareSize int
	labels     bool
}

type Option func(*config)

// WithSquareSize sets the side length of one square in pixels.
func WithSquareSize(size int) Option {
	return func(cfg *config) {
		cfg.squareSize = size
	}
}

// WithoutLabels omits the file and rank labels around the board.
func WithoutLabels() Option {
	return func(cfg *config) {
		cfg.labels = false
	}
}

// SVG writes pos to w with rank 8 at the top. Every square in marks gets an
// extra highlight rect with class "mark" drawn over the square colour.
func SVG(w io.Writer, pos board.Position, marks bitboard.Bitboard, opts ...Option) error {
	cfg := &config{
		squareSize: DefaultSquareSize,
		labels:     true,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.squareSize < minSquareSize {
		return fmt.Errorf("%w: %d", ErrInvalidSize, cfg.squareSize)
	}

	size := cfg.squareSize
	margin := 0
	if cfg.labels {
		margin = size / 2
	}
	side := size*bitboard.Width + 2*margin

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Title(board.PlacementFEN(pos))

	canvas.Gid("squares")
	for sq := square.A1; sq <= square.H8; sq++ {
		x, y := origin(sq, size, margin)
		fill := colorDark
		if bitboard.LightSquares&sq.Bitboard() != 0 {
			fill = colorLight
		}
		canvas.Rect(x, y, size, size, "fill:"+fill)
	}
	canvas.Gend()

	canvas.Gid("marks")
	for m := marks; m != 0; {
		x, y := origin(square.Square(m.PopLS1B()), size, margin)
		canvas.Rect(x, y, size, size, `class="mark"`, "fill:"+colorMarked+";fill-opacity:0.8")
	}
	canvas.Gend()

	canvas.Gid("pieces")
	fontSize := size * 3 / 4
	for sq := square.A1; sq <= square.H8; sq++ {
		s, p, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := origin(sq, size, margin)
		canvas.Text(x+size/2, y+size*4/5, p.SymbolUnicode(s, false),
			`class="piece"`, fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize))
	}
	canvas.Gend()

	if cfg.labels {
		canvas.Group(fmt.Sprintf("fill:%s;text-anchor:middle;font-size:%dpx", colorLabel, margin*2/3))
		for i := 0; i < bitboard.Width; i++ {
			sq := square.NewSquare(uint8(i), uint8(i))
			canvas.Text(margin+i*size+size/2, side-margin/4, sq.NotationFile())
			canvas.Text(margin/2, margin+(bitboard.Height-1-i)*size+size*3/5, sq.NotationRank())
		}
		canvas.Gend()
	}

	canvas.End()
	return nil
}

func origin(sq square.Square, size, margin int) (int, int) {
	return margin + int(sq.File())*size, margin + (bitboard.Height-1-int(sq.Rank()))*size
}
