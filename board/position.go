package board

import (
	"errors"
	"fmt"

	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/square"
)

var (
	ErrOverlappingSides  = errors.New("overlapping sides")
	ErrOverlappingPieces = errors.New("overlapping pieces")
)

// SingleColorPosition holds the piece bitboards of one side. The pieces
// aggregate is computed on construction and never set on its own.
type SingleColorPosition struct {
	bitmaps [6 + 1]bitboard.Bitboard
	pieces  bitboard.Bitboard
}

func NewSingleColorPosition(pawns, knights, bishops, rooks, queens, kings bitboard.Bitboard) SingleColorPosition {
	return SingleColorPosition{
		bitmaps: [6 + 1]bitboard.Bitboard{
			PiecePawn:   pawns,
			PieceKnight: knights,
			PieceBishop: bishops,
			PieceRook:   rooks,
			PieceQueen:  queens,
			PieceKing:   kings,
		},
		pieces: bitboard.Union(pawns, knights, bishops, rooks, queens, kings),
	}
}

func (c SingleColorPosition) Pawns() bitboard.Bitboard   { return c.bitmaps[PiecePawn] }
func (c SingleColorPosition) Knights() bitboard.Bitboard { return c.bitmaps[PieceKnight] }
func (c SingleColorPosition) Bishops() bitboard.Bitboard { return c.bitmaps[PieceBishop] }
func (c SingleColorPosition) Rooks() bitboard.Bitboard   { return c.bitmaps[PieceRook] }
func (c SingleColorPosition) Queens() bitboard.Bitboard  { return c.bitmaps[PieceQueen] }
func (c SingleColorPosition) Kings() bitboard.Bitboard   { return c.bitmaps[PieceKing] }
func (c SingleColorPosition) Pieces() bitboard.Bitboard  { return c.pieces }

// Bitmap returns the bitboard of piece type p, or an empty set for an unknown
// piece.
func (c SingleColorPosition) Bitmap(p Piece) bitboard.Bitboard {
	if !p.IsValid() {
		return bitboard.Empty
	}
	return c.bitmaps[p]
}

// Position is a board state made of both sides' piece bitboards and the
// current en passant targets. Piece placement is fixed once constructed; the
// en passant targets are the only mutable field.
type Position struct {
	sides            [2 + 1]SingleColorPosition
	allPieces        bitboard.Bitboard
	enPassantTargets bitboard.Bitboard
}

func NewPosition(white, black SingleColorPosition, enPassantTargets bitboard.Bitboard) Position {
	return Position{
		sides: [2 + 1]SingleColorPosition{
			SideWhite: white,
			SideBlack: black,
		},
		allPieces:        white.pieces | black.pieces,
		enPassantTargets: enPassantTargets,
	}
}

// StartingPosition returns the standard initial layout.
func StartingPosition() Position {
	return NewPositionBuilder().
		WhitePawns(bitboard.Rank2).
		WhiteKnights(bitboard.Rank1 & (bitboard.FileB | bitboard.FileG)).
		WhiteBishops(bitboard.Rank1 & (bitboard.FileC | bitboard.FileF)).
		WhiteRooks(bitboard.Rank1 & (bitboard.FileA | bitboard.FileH)).
		WhiteQueens(bitboard.Rank1 & bitboard.FileD).
		WhiteKings(bitboard.Rank1 & bitboard.FileE).
		BlackPawns(bitboard.Rank7).
		BlackKnights(bitboard.Rank8 & (bitboard.FileB | bitboard.FileG)).
		BlackBishops(bitboard.Rank8 & (bitboard.FileC | bitboard.FileF)).
		BlackRooks(bitboard.Rank8 & (bitboard.FileA | bitboard.FileH)).
		BlackQueens(bitboard.Rank8 & bitboard.FileD).
		BlackKings(bitboard.Rank8 & bitboard.FileE).
		Build()
}

func (p Position) EnPassantTargets() bitboard.Bitboard { return p.enPassantTargets }

// SetEnPassantTargets replaces the en passant targets. The caller advancing
// the game must reset them after every ply.
func (p *Position) SetEnPassantTargets(targets bitboard.Bitboard) {
	p.enPassantTargets = targets
}

func (p Position) AllPieces() bitboard.Bitboard    { return p.allPieces }
func (p Position) EmptySquares() bitboard.Bitboard { return ^p.allPieces }

func (p Position) WhitePawns() bitboard.Bitboard   { return p.sides[SideWhite].Pawns() }
func (p Position) WhiteKnights() bitboard.Bitboard { return p.sides[SideWhite].Knights() }
func (p Position) WhiteBishops() bitboard.Bitboard { return p.sides[SideWhite].Bishops() }
func (p Position) WhiteRooks() bitboard.Bitboard   { return p.sides[SideWhite].Rooks() }
func (p Position) WhiteQueens() bitboard.Bitboard  { return p.sides[SideWhite].Queens() }
func (p Position) WhiteKings() bitboard.Bitboard   { return p.sides[SideWhite].Kings() }
func (p Position) WhitePieces() bitboard.Bitboard  { return p.sides[SideWhite].Pieces() }

func (p Position) BlackPawns() bitboard.Bitboard   { return p.sides[SideBlack].Pawns() }
func (p Position) BlackKnights() bitboard.Bitboard { return p.sides[SideBlack].Knights() }
func (p Position) BlackBishops() bitboard.Bitboard { return p.sides[SideBlack].Bishops() }
func (p Position) BlackRooks() bitboard.Bitboard   { return p.sides[SideBlack].Rooks() }
func (p Position) BlackQueens() bitboard.Bitboard  { return p.sides[SideBlack].Queens() }
func (p Position) BlackKings() bitboard.Bitboard   { return p.sides[SideBlack].Kings() }
func (p Position) BlackPieces() bitboard.Bitboard  { return p.sides[SideBlack].Pieces() }

// SingleColor returns the piece bitboards of side s.
func (p Position) SingleColor(s Side) SingleColorPosition {
	if !s.IsValid() {
		return SingleColorPosition{}
	}
	return p.sides[s]
}

// Side returns every square occupied by side s.
func (p Position) Side(s Side) bitboard.Bitboard {
	return p.SingleColor(s).Pieces()
}

// Bitmap returns the squares holding piece type pc of side s.
func (p Position) Bitmap(s Side, pc Piece) bitboard.Bitboard {
	return p.SingleColor(s).Bitmap(pc)
}

// PieceAt reports the piece standing on sq by scanning the twelve piece
// bitboards. It reports false for an empty or invalid square.
func (p Position) PieceAt(sq square.Square) (Side, Piece, bool) {
	if !sq.IsValid() {
		return SideUnknown, PieceUnknown, false
	}
	cell := sq.Bitboard()
	if p.allPieces&cell == 0 {
		return SideUnknown, PieceUnknown, false
	}
	for _, s := range Sides {
		if p.sides[s].pieces&cell == 0 {
			continue
		}
		for _, pc := range Pieces {
			if p.sides[s].bitmaps[pc]&cell != 0 {
				return s, pc, true
			}
		}
	}
	return SideUnknown, PieceUnknown, false
}

// Validate checks that no square is claimed twice, either by both sides or
// by two piece types of the same side. Constructors never call it.
func (p Position) Validate() error {
	if overlap := p.WhitePieces() & p.BlackPieces(); overlap != 0 {
		return fmt.Errorf("%w: %s", ErrOverlappingSides, square.FromBitboard(overlap))
	}
	for _, s := range Sides {
		var seen bitboard.Bitboard
		for _, pc := range Pieces {
			bm := p.sides[s].bitmaps[pc]
			if overlap := seen & bm; overlap != 0 {
				return fmt.Errorf("%w: %s %s on %s", ErrOverlappingPieces, s, pc, square.FromBitboard(overlap))
			}
			seen |= bm
		}
	}
	return nil
}
