package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/square"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// ParseFEN reads the piece placement, side to move and en passant fields of
// a FEN record. Castling rights and clocks are checked for syntax only. The
// clock fields may be omitted.
func ParseFEN(fen string) (Position, Side, error) {
	segments := strings.Fields(fen)
	if len(segments) != 4 && len(segments) != 6 {
		return Position{}, SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	builder, err := parsePlacement(segments[0])
	if err != nil {
		return Position{}, SideUnknown, err
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return Position{}, SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return Position{}, SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for i, e := range segments[2] {
		if strings.ContainsRune("KQkq", e) || (i == 0 && e == '-' && len(segments[2]) == 1) {
			continue
		}
		return Position{}, SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}

	if segments[3] != "-" {
		sq, err := square.NewSquareFromNotation(segments[3])
		if err != nil {
			return Position{}, SideUnknown, fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if sq.Bitboard()&(bitboard.Rank3|bitboard.Rank6) == 0 {
			return Position{}, SideUnknown, fmt.Errorf("%w: invalid enpassant position: %s", ErrInvalidFEN, sq)
		}
		builder = builder.EnPassantTargets(sq.Bitboard())
	}

	if len(segments) == 6 {
		if _, err := strconv.ParseUint(segments[4], 10, 16); err != nil {
			return Position{}, SideUnknown, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
		if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
			return Position{}, SideUnknown, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
	}

	return builder.Build(), turn, nil
}

func parsePlacement(placement string) (PositionBuilder, error) {
	var pieces [2 + 1][6 + 1]bitboard.Bitboard
	rows := strings.Split(placement, "/")
	if len(rows) != bitboard.Height {
		return PositionBuilder{}, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := uint8(0); y < bitboard.Height; y++ {
		row := rows[bitboard.Height-1-y]
		x := uint8(0)
		for _, cell := range row {
			if x >= bitboard.Width {
				return PositionBuilder{}, fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			if cell != '0' && unicode.IsDigit(cell) {
				skip := uint8(cell - '0')
				if x+skip > bitboard.Width {
					return PositionBuilder{}, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			s, p := PieceFromFEN(cell)
			if p == PieceUnknown {
				return PositionBuilder{}, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			pieces[s][p] |= square.NewSquare(x, y).Bitboard()
			x++
		}
		if x != bitboard.Width {
			return PositionBuilder{}, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	builder := NewPositionBuilder()
	for _, s := range Sides {
		for _, p := range Pieces {
			builder = builder.Pieces(s, p, pieces[s][p])
		}
	}
	return builder, nil
}

// MarshalFEN writes pos as a FEN record. Castling rights are not tracked, so
// the castling field is always "-", and the clocks are reset.
func MarshalFEN(pos Position, turn Side) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(PlacementFEN(pos))

	if turn == SideBlack {
		_, _ = builder.WriteString(" b - ")
	} else {
		_, _ = builder.WriteString(" w - ")
	}

	if pos.EnPassantTargets() == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(square.FromBitboard(pos.EnPassantTargets()).Notation())
	}

	_, _ = builder.WriteString(" 0 1")
	return builder.String()
}

// PlacementFEN writes the piece placement field of pos.
func PlacementFEN(pos Position) string {
	builder := strings.Builder{}
	for y := int(bitboard.Height) - 1; y >= 0; y-- {
		var skip uint8
		for x := uint8(0); x < bitboard.Width; x++ {
			s, p, ok := pos.PieceAt(square.NewSquare(x, uint8(y)))
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}
