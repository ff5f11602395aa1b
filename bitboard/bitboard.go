package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/fatih/color"
)

const (
	Width      = 8
	Height     = 8
	TotalCells = Width * Height
)

// Bitboard is a set of squares. Bit i is square i in little-endian rank-file
// (LERF) order: A1=0, H1=7, A2=8, H8=63.
type Bitboard uint64

// IncRankBy shifts every square n ranks towards rank 8. Squares pushed past
// bit 63 drop off the board.
func (bm Bitboard) IncRankBy(n int) Bitboard {
	return bm << (Width * n)
}

// DecRankBy shifts every square n ranks towards rank 1. Squares pushed below
// bit 0 drop off the board.
func (bm Bitboard) DecRankBy(n int) Bitboard {
	return bm >> (Width * n)
}

func (bm Bitboard) IncRank() Bitboard {
	return bm << Width
}

func (bm Bitboard) DecRank() Bitboard {
	return bm >> Width
}

// IncFile shifts every square one file towards file H. The result is masked
// against file A so that file H does not wrap into the next rank.
func (bm Bitboard) IncFile() Bitboard {
	return bm << 1 &^ FileA
}

// DecFile shifts every square one file towards file A. The result is masked
// against file H so that file A does not wrap into the previous rank.
func (bm Bitboard) DecFile() Bitboard {
	return bm >> 1 &^ FileH
}

func (bm Bitboard) IsSet(index uint8) bool {
	return bm&(1<<index) != 0
}

func (bm *Bitboard) Set(index uint8) {
	*bm |= 1 << index
}

func (bm *Bitboard) Unset(index uint8) {
	*bm &^= 1 << index
}

// LS1B returns the index of the least significant set bit, or TotalCells when
// the set is empty.
func (bm Bitboard) LS1B() uint8 {
	return uint8(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears the least significant set bit and returns its index.
func (bm *Bitboard) PopLS1B() uint8 {
	i := bm.LS1B()
	*bm &= *bm - 1
	return i
}

func (bm Bitboard) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm Bitboard) IsEmpty() bool {
	return bm == Empty
}

// Indexes lists the set bits in ascending order.
func (bm Bitboard) Indexes() []uint8 {
	idx := make([]uint8, 0, bm.BitCount())
	for bm != 0 {
		idx = append(idx, bm.PopLS1B())
	}
	return idx
}

func Union(bms ...Bitboard) Bitboard {
	var u Bitboard
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm Bitboard) String() string {
	return fmt.Sprintf("0x%016x", uint64(bm))
}

// Dump draws the set as a grid, rank 8 at the top. Squares in mark are
// highlighted when the terminal supports colour.
func (bm Bitboard) Dump(mark ...Bitboard) string {
	var highlight Bitboard
	if len(mark) != 0 {
		highlight = Union(mark...)
	}
	hl := color.New(color.FgBlack, color.BgYellow).SprintFunc()

	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := 0; x < Width; x++ {
			i := uint8((y-1)*Width + x)
			cell := " . "
			if bm.IsSet(i) {
				cell = " # "
			}
			if highlight.IsSet(i) {
				cell = hl(cell)
			}
			_, _ = builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %c ", 'a'+x))
	}
	return builder.String()
}
