package movegen

import (
	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/board"
)

// WhitePawnMoves finds every pseudo-legal destination of the given white
// pawns. En passant targets of the position count as capturable squares; the
// caller applying such a move removes the passed pawn itself.
func WhitePawnMoves(whitePawns bitboard.Bitboard, pos board.Position) bitboard.Bitboard {
	pushes := whitePawnPushes(whitePawns, pos.EmptySquares())
	captures := whitePawnCaptures(whitePawns, pos.BlackPieces()|pos.EnPassantTargets())
	return pushes | captures
}

// BlackPawnMoves finds every pseudo-legal destination of the given black
// pawns, en passant included.
func BlackPawnMoves(blackPawns bitboard.Bitboard, pos board.Position) bitboard.Bitboard {
	pushes := blackPawnPushes(blackPawns, pos.EmptySquares())
	captures := blackPawnCaptures(blackPawns, pos.WhitePieces()|pos.EnPassantTargets())
	return pushes | captures
}

// PawnMoves dispatches to the side's pawn generator.
func PawnMoves(s board.Side, pawns bitboard.Bitboard, pos board.Position) bitboard.Bitboard {
	switch s {
	case board.SideWhite:
		return WhitePawnMoves(pawns, pos)
	case board.SideBlack:
		return BlackPawnMoves(pawns, pos)
	default:
		return bitboard.Empty
	}
}

// PawnAttacks returns the squares the pawns attack diagonally, whether or
// not anything stands there.
func PawnAttacks(s board.Side, pawns bitboard.Bitboard) bitboard.Bitboard {
	switch s {
	case board.SideWhite:
		return whitePawnAttacks(pawns)
	case board.SideBlack:
		return blackPawnAttacks(pawns)
	default:
		return bitboard.Empty
	}
}

// Double pushes are derived from the single push result and must land on
// rank 4 (white) or rank 5 (black).
func whitePawnPushes(whitePawns, emptySquares bitboard.Bitboard) bitboard.Bitboard {
	oneSquare := whitePawns.IncRank() & emptySquares
	twoSquares := oneSquare.IncRank() & bitboard.Rank4 & emptySquares
	return oneSquare | twoSquares
}

func blackPawnPushes(blackPawns, emptySquares bitboard.Bitboard) bitboard.Bitboard {
	oneSquare := blackPawns.DecRank() & emptySquares
	twoSquares := oneSquare.DecRank() & bitboard.Rank5 & emptySquares
	return oneSquare | twoSquares
}

func whitePawnAttacks(whitePawns bitboard.Bitboard) bitboard.Bitboard {
	diagRight := whitePawns << 9 &^ bitboard.FileA
	diagLeft := whitePawns << 7 &^ bitboard.FileH
	return diagRight | diagLeft
}

func blackPawnAttacks(blackPawns bitboard.Bitboard) bitboard.Bitboard {
	diagLeft := blackPawns >> 9 &^ bitboard.FileH
	diagRight := blackPawns >> 7 &^ bitboard.FileA
	return diagRight | diagLeft
}

func whitePawnCaptures(whitePawns, blackPieces bitboard.Bitboard) bitboard.Bitboard {
	return whitePawnAttacks(whitePawns) & blackPieces
}

func blackPawnCaptures(blackPawns, whitePieces bitboard.Bitboard) bitboard.Bitboard {
	return blackPawnAttacks(blackPawns) & whitePieces
}
