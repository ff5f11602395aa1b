package movegen

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/daystram/bitboard/bitboard"
)

var (
	maskCell   [bitboard.TotalCells]bitboard.Bitboard
	maskDia    [bitboard.TotalCells]bitboard.Bitboard
	maskADia   [bitboard.TotalCells]bitboard.Bitboard
	maskKnight [bitboard.TotalCells]bitboard.Bitboard
	maskKing   [bitboard.TotalCells]bitboard.Bitboard
)

func init() {
	initMask()
}

func initMask() {
	for i := 0; i < bitboard.TotalCells; i++ {
		maskCell[i] = 1 << i
	}

	// a1-h8 direction
	for i := 0; i < bitboard.TotalCells; i++ {
		mask := bitboard.Empty
		x, y := i%bitboard.Width, i/bitboard.Width
		x, y = x-minimum(x, y), y-minimum(x, y)
		for x < bitboard.Width && y < bitboard.Height {
			mask |= maskCell[y*bitboard.Width+x]
			x++
			y++
		}
		maskDia[i] = mask
	}

	// a8-h1 direction
	for i := 0; i < bitboard.TotalCells; i++ {
		mask := bitboard.Empty
		x, y := i%bitboard.Width, i/bitboard.Width
		d := minimum(x, bitboard.Height-y-1)
		x, y = x-d, y+d
		for x < bitboard.Width && y >= 0 {
			mask |= maskCell[y*bitboard.Width+x]
			x++
			y--
		}
		maskADia[i] = mask
	}

	for i := 0; i < bitboard.TotalCells; i++ {
		maskKnight[i] = knightSpan(maskCell[i])
		maskKing[i] = kingSpan(maskCell[i])
	}
}

// knightSpan computes knight targets for a whole set at once. The file
// shifts mask the destination edge, so nothing wraps around the board.
func knightSpan(bm bitboard.Bitboard) bitboard.Bitboard {
	n2, s2 := bm.IncRankBy(2), bm.DecRankBy(2)
	e2, w2 := bm.IncFile().IncFile(), bm.DecFile().DecFile()
	return n2.IncFile() | n2.DecFile() |
		s2.IncFile() | s2.DecFile() |
		e2.IncRank() | e2.DecRank() |
		w2.IncRank() | w2.DecRank()
}

func kingSpan(bm bitboard.Bitboard) bitboard.Bitboard {
	row := bm | bm.IncFile() | bm.DecFile()
	return (row | row.IncRank() | row.DecRank()) &^ bm
}

func reverse(bm bitboard.Bitboard) bitboard.Bitboard {
	return bitboard.Bitboard(bits.Reverse64(uint64(bm)))
}

// hitScan returns the squares a slider on cell reaches along line, stopping
// at (and including) the first blocker in each direction. Uses the
// o^(o-2r) trick on the line and on its bit reversal.
func hitScan(cell, occupied, line bitboard.Bitboard) bitboard.Bitboard {
	line &^= cell
	blocker := occupied & line
	return ((blocker - cell) ^ reverse(reverse(blocker)-reverse(cell))) & line
}

func minimum[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
