package movegen

import "github.com/daystram/bitboard/bitboard"

func hitDiagonals(i uint8, occupied bitboard.Bitboard) bitboard.Bitboard {
	return hitScan(maskCell[i], occupied, maskDia[i]) | hitScan(maskCell[i], occupied, maskADia[i])
}

func hitLaterals(i uint8, occupied bitboard.Bitboard) bitboard.Bitboard {
	return hitScan(maskCell[i], occupied, bitboard.Files[i%bitboard.Width]) |
		hitScan(maskCell[i], occupied, bitboard.Ranks[i/bitboard.Width])
}

// BishopAttacks returns every square a bishop in bishops sees on the given
// occupancy, first blockers included regardless of their colour.
func BishopAttacks(bishops, occupied bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for bishops != 0 {
		attacks |= hitDiagonals(bishops.PopLS1B(), occupied)
	}
	return attacks
}

func RookAttacks(rooks, occupied bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for rooks != 0 {
		attacks |= hitLaterals(rooks.PopLS1B(), occupied)
	}
	return attacks
}

func QueenAttacks(queens, occupied bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for queens != 0 {
		i := queens.PopLS1B()
		attacks |= hitDiagonals(i, occupied) | hitLaterals(i, occupied)
	}
	return attacks
}

func BishopMoves(bishops, own, occupied bitboard.Bitboard) bitboard.Bitboard {
	return BishopAttacks(bishops, occupied) &^ own
}

func RookMoves(rooks, own, occupied bitboard.Bitboard) bitboard.Bitboard {
	return RookAttacks(rooks, occupied) &^ own
}

func QueenMoves(queens, own, occupied bitboard.Bitboard) bitboard.Bitboard {
	return QueenAttacks(queens, occupied) &^ own
}
