package square

import (
	"errors"
	"fmt"

	"github.com/daystram/bitboard/bitboard"
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is a board square, indexed file-major within rank: A1=0 ... H1=7,
// A2=8 ... H8=63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare is returned by lookups that find nothing.
	NoSquare Square = bitboard.TotalCells
)

func NewSquare(file, rank uint8) Square {
	return Square(rank*bitboard.Width + file)
}

func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	file, rank := n[0]-'a', n[1]-'1'
	if file >= bitboard.Width || rank >= bitboard.Height {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	return NewSquare(file, rank), nil
}

// FromBitboard returns the lowest square of bm, or NoSquare for an empty set.
func FromBitboard(bm bitboard.Bitboard) Square {
	return Square(bm.LS1B())
}

func (s Square) Index() uint8 {
	return uint8(s)
}

func (s Square) Bitboard() bitboard.Bitboard {
	return 1 << s.Index()
}

func (s Square) File() uint8 {
	return uint8(s) % bitboard.Width
}

func (s Square) Rank() uint8 {
	return uint8(s) / bitboard.Width
}

func (s Square) IsValid() bool {
	return s < NoSquare
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.IsValid() {
		return "-"
	}
	return s.NotationFile() + s.NotationRank()
}

func (s Square) NotationFile() string {
	return string(rune('a' + s.File()))
}

func (s Square) NotationRank() string {
	return string(rune('1' + s.Rank()))
}
