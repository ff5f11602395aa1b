package movegen

import "github.com/daystram/bitboard/bitboard"

// KnightAttacks returns every square reached by a knight in knights.
func KnightAttacks(knights bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for knights != 0 {
		attacks |= maskKnight[knights.PopLS1B()]
	}
	return attacks
}

// KnightMoves excludes squares held by own pieces.
func KnightMoves(knights, own bitboard.Bitboard) bitboard.Bitboard {
	return KnightAttacks(knights) &^ own
}

func KingAttacks(kings bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for kings != 0 {
		attacks |= maskKing[kings.PopLS1B()]
	}
	return attacks
}

// KingMoves excludes squares held by own pieces. Castling is not generated.
func KingMoves(kings, own bitboard.Bitboard) bitboard.Bitboard {
	return KingAttacks(kings) &^ own
}
