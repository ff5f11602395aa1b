// Package movegen computes pseudo-legal destination sets. Every function is
// pure: it reads the given position and bitboards and returns a new set.
// Moves that leave the mover's king in check are not filtered out.
package movegen

import (
	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/board"
)

// Destinations returns the pseudo-legal destinations of piece type p of
// side s standing on the squares in from. Source squares that do not hold
// such a piece are still generated from, so callers normally pass a subset of
// pos.Bitmap(s, p).
func Destinations(pos board.Position, s board.Side, p board.Piece, from bitboard.Bitboard) bitboard.Bitboard {
	if !s.IsValid() {
		return bitboard.Empty
	}
	own, occupied := pos.Side(s), pos.AllPieces()
	switch p {
	case board.PiecePawn:
		return PawnMoves(s, from, pos)
	case board.PieceKnight:
		return KnightMoves(from, own)
	case board.PieceBishop:
		return BishopMoves(from, own, occupied)
	case board.PieceRook:
		return RookMoves(from, own, occupied)
	case board.PieceQueen:
		return QueenMoves(from, own, occupied)
	case board.PieceKing:
		return KingMoves(from, own)
	default:
		return bitboard.Empty
	}
}

// PieceDestinations returns the destinations of every piece of type p that
// side s has on the board.
func PieceDestinations(pos board.Position, s board.Side, p board.Piece) bitboard.Bitboard {
	return Destinations(pos, s, p, pos.Bitmap(s, p))
}

// SquareDestinations maps each occupied source square of side s and piece
// type p to its own destination set. Sources without destinations are
// included with an empty set.
func SquareDestinations(pos board.Position, s board.Side, p board.Piece) map[uint8]bitboard.Bitboard {
	from := pos.Bitmap(s, p)
	dsts := make(map[uint8]bitboard.Bitboard, from.BitCount())
	for from != 0 {
		i := from.PopLS1B()
		dsts[i] = Destinations(pos, s, p, maskCell[i])
	}
	return dsts
}

// AttackedSquares returns every square attacked by side s. Pawns contribute
// their diagonals only and own pieces are not excluded, which is the form a
// check or pin detector needs.
func AttackedSquares(pos board.Position, s board.Side) bitboard.Bitboard {
	if !s.IsValid() {
		return bitboard.Empty
	}
	c, occupied := pos.SingleColor(s), pos.AllPieces()
	return PawnAttacks(s, c.Pawns()) |
		KnightAttacks(c.Knights()) |
		BishopAttacks(c.Bishops(), occupied) |
		RookAttacks(c.Rooks(), occupied) |
		QueenAttacks(c.Queens(), occupied) |
		KingAttacks(c.Kings())
}

// CountDestinations sums the destination squares of every piece of side s,
// counting each source square separately.
func CountDestinations(pos board.Position, s board.Side) int {
	var n int
	for _, p := range board.Pieces {
		for _, dst := range SquareDestinations(pos, s, p) {
			n += int(dst.BitCount())
		}
	}
	return n
}
