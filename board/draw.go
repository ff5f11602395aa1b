package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/square"
)

var (
	cellLight  = color.New(color.FgBlack, color.BgHiWhite)
	cellDark   = color.New(color.FgBlack, color.BgGreen)
	cellMarked = color.New(color.FgBlack, color.BgYellow)
)

type drawConfig struct {
	marks bitboard.Bitboard
	ascii bool
}

type DrawOption func(*drawConfig)

// WithMarks highlights the given squares, typically a destination set.
func WithMarks(marks bitboard.Bitboard) DrawOption {
	return func(cfg *drawConfig) {
		cfg.marks = marks
	}
}

// WithASCII draws pieces with FEN letters instead of unicode symbols.
func WithASCII() DrawOption {
	return func(cfg *drawConfig) {
		cfg.ascii = true
	}
}

// Draw renders pos with rank 8 at the top. Colours are dropped automatically
// when the output is not a terminal; marked empty squares then show as '*'.
func Draw(pos Position, opts ...DrawOption) string {
	cfg := &drawConfig{}
	for _, f := range opts {
		f(cfg)
	}

	builder := strings.Builder{}
	for y := int(bitboard.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d ", y+1))
		for x := uint8(0); x < bitboard.Width; x++ {
			sq := square.NewSquare(x, uint8(y))
			sym := " "
			if s, p, ok := pos.PieceAt(sq); ok {
				if cfg.ascii {
					sym = p.SymbolFEN(s)
				} else {
					sym = p.SymbolUnicode(s, false)
				}
			}

			c := cellDark
			if sq.Bitboard()&bitboard.LightSquares != 0 {
				c = cellLight
			}
			if sq.Bitboard()&cfg.marks != 0 {
				c = cellMarked
				if sym == " " && color.NoColor {
					sym = "*"
				}
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := uint8(0); x < bitboard.Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", square.NewSquare(x, 0).NotationFile()))
	}
	return builder.String()
}
