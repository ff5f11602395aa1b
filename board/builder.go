package board

import "github.com/daystram/bitboard/bitboard"

// PositionBuilder accumulates piece bitboards for a Position. Every setter
// returns an updated copy, so a partially configured builder can be reused
// as a template. Overlapping masks are not checked; see Position.Validate.
type PositionBuilder struct {
	pieces           [2 + 1][6 + 1]bitboard.Bitboard
	enPassantTargets bitboard.Bitboard
}

func NewPositionBuilder() PositionBuilder {
	return PositionBuilder{}
}

func (b PositionBuilder) Build() Position {
	return NewPosition(b.WhitePieces(), b.BlackPieces(), b.enPassantTargets)
}

func (b PositionBuilder) WhitePieces() SingleColorPosition {
	return b.singleColor(SideWhite)
}

func (b PositionBuilder) BlackPieces() SingleColorPosition {
	return b.singleColor(SideBlack)
}

func (b PositionBuilder) singleColor(s Side) SingleColorPosition {
	bms := b.pieces[s]
	return NewSingleColorPosition(
		bms[PiecePawn],
		bms[PieceKnight],
		bms[PieceBishop],
		bms[PieceRook],
		bms[PieceQueen],
		bms[PieceKing],
	)
}

// Pieces replaces the bitboard of piece type p for side s. Unknown sides or
// pieces leave the builder unchanged.
func (b PositionBuilder) Pieces(s Side, p Piece, bm bitboard.Bitboard) PositionBuilder {
	if !s.IsValid() || !p.IsValid() {
		return b
	}
	b.pieces[s][p] = bm
	return b
}

func (b PositionBuilder) WhitePawns(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PiecePawn, bm)
}

func (b PositionBuilder) WhiteKnights(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PieceKnight, bm)
}

func (b PositionBuilder) WhiteBishops(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PieceBishop, bm)
}

func (b PositionBuilder) WhiteRooks(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PieceRook, bm)
}

func (b PositionBuilder) WhiteQueens(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PieceQueen, bm)
}

func (b PositionBuilder) WhiteKings(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideWhite, PieceKing, bm)
}

func (b PositionBuilder) BlackPawns(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PiecePawn, bm)
}

func (b PositionBuilder) BlackKnights(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PieceKnight, bm)
}

func (b PositionBuilder) BlackBishops(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PieceBishop, bm)
}

func (b PositionBuilder) BlackRooks(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PieceRook, bm)
}

func (b PositionBuilder) BlackQueens(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PieceQueen, bm)
}

func (b PositionBuilder) BlackKings(bm bitboard.Bitboard) PositionBuilder {
	return b.Pieces(SideBlack, PieceKing, bm)
}

func (b PositionBuilder) EnPassantTargets(bm bitboard.Bitboard) PositionBuilder {
	b.enPassantTargets = bm
	return b
}
