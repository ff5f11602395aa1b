package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/daystram/bitboard/bitboard"
	"github.com/daystram/bitboard/square"
)

func TestStartingPosition(t *testing.T) {
	t.Parallel()
	pos1 := StartingPosition()
	pos2 := NewPositionBuilder().
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

	if pos1 != pos2 {
		t.Errorf("unexpected starting position: got=%s want=%s", PlacementFEN(pos2), PlacementFEN(pos1))
	}
	if got, want := pos1.WhitePieces(), bitboard.Rank1|bitboard.Rank2; got != want {
		t.Errorf("unexpected white pieces: got=%v want=%v", got, want)
	}
	if got, want := pos1.BlackPieces(), bitboard.Rank7|bitboard.Rank8; got != want {
		t.Errorf("unexpected black pieces: got=%v want=%v", got, want)
	}
	if got, want := pos1.EmptySquares(), bitboard.Rank3|bitboard.Rank4|bitboard.Rank5|bitboard.Rank6; got != want {
		t.Errorf("unexpected empty squares: got=%v want=%v", got, want)
	}
	if got := pos1.EnPassantTargets(); got != bitboard.Empty {
		t.Errorf("unexpected en passant targets: got=%v want=%v", got, bitboard.Empty)
	}
	if err := pos1.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAggregateInvariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		builder PositionBuilder
	}{
		{name: "empty", builder: NewPositionBuilder()},
		{name: "kings and pawns", builder: NewPositionBuilder().
			WhitePawns(bitboard.Rank2).WhiteKings(square.E1.Bitboard()).
			BlackPawns(bitboard.Rank7).BlackKings(square.E8.Bitboard())},
		{name: "pawn fixture", builder: NewPositionBuilder().
			WhitePawns(0x_00_00_00_08_20_00_11_00).
			BlackPawns(0x_00_0C_00_20_00_82_00_00)},
		{name: "mixed", builder: NewPositionBuilder().
			WhiteKnights(square.C3.Bitboard()).WhiteBishops(square.F4.Bitboard()).
			WhiteRooks(square.A1.Bitboard()).WhiteQueens(square.D1.Bitboard()).
			BlackRooks(square.H8.Bitboard()|square.A8.Bitboard()).BlackQueens(square.D5.Bitboard()).
			BlackKnights(square.G6.Bitboard()).BlackBishops(square.B4.Bitboard()).
			EnPassantTargets(square.D6.Bitboard())},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := tt.builder.Build()
			if got, want := pos.AllPieces(), pos.WhitePieces()|pos.BlackPieces(); got != want {
				t.Errorf("unexpected all pieces: got=%v want=%v", got, want)
			}
			if got, want := pos.EmptySquares(), ^pos.AllPieces(); got != want {
				t.Errorf("unexpected empty squares: got=%v want=%v", got, want)
			}
			for _, s := range Sides {
				var union bitboard.Bitboard
				for _, p := range Pieces {
					union |= pos.Bitmap(s, p)
				}
				if got := pos.Side(s); got != union {
					t.Errorf("unexpected %s aggregate: got=%v want=%v", s, got, union)
				}
			}
			if got, want := pos.WhitePieces(), tt.builder.WhitePieces().Pieces(); got != want {
				t.Errorf("unexpected builder white aggregate: got=%v want=%v", got, want)
			}
			if err := pos.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestIndexing(t *testing.T) {
	t.Parallel()
	pos := StartingPosition()
	tests := []struct {
		s    Side
		p    Piece
		want bitboard.Bitboard
	}{
		{s: SideWhite, p: PiecePawn, want: pos.WhitePawns()},
		{s: SideWhite, p: PieceKnight, want: pos.WhiteKnights()},
		{s: SideWhite, p: PieceBishop, want: pos.WhiteBishops()},
		{s: SideWhite, p: PieceRook, want: pos.WhiteRooks()},
		{s: SideWhite, p: PieceQueen, want: pos.WhiteQueens()},
		{s: SideWhite, p: PieceKing, want: pos.WhiteKings()},
		{s: SideBlack, p: PiecePawn, want: pos.BlackPawns()},
		{s: SideBlack, p: PieceKnight, want: pos.BlackKnights()},
		{s: SideBlack, p: PieceBishop, want: pos.BlackBishops()},
		{s: SideBlack, p: PieceRook, want: pos.BlackRooks()},
		{s: SideBlack, p: PieceQueen, want: pos.BlackQueens()},
		{s: SideBlack, p: PieceKing, want: pos.BlackKings()},
		{s: SideUnknown, p: PiecePawn, want: bitboard.Empty},
		{s: SideWhite, p: PieceUnknown, want: bitboard.Empty},
	}
	for _, tt := range tests {
		if got := pos.Bitmap(tt.s, tt.p); got != tt.want {
			t.Errorf("unexpected %s %s bitmap: got=%v want=%v", tt.s, tt.p, got, tt.want)
		}
	}
	if got := pos.Side(SideWhite); got != pos.WhitePieces() {
		t.Errorf("unexpected white side: got=%v want=%v", got, pos.WhitePieces())
	}
	if got := pos.Side(SideBlack); got != pos.BlackPieces() {
		t.Errorf("unexpected black side: got=%v want=%v", got, pos.BlackPieces())
	}
	if got := pos.Side(SideUnknown); got != bitboard.Empty {
		t.Errorf("unexpected unknown side: got=%v want=%v", got, bitboard.Empty)
	}
}

func TestPieceAt(t *testing.T) {
	t.Parallel()
	pos := StartingPosition()
	tests := []struct {
		sq     square.Square
		wantS  Side
		wantP  Piece
		wantOK bool
	}{
		{sq: square.A1, wantS: SideWhite, wantP: PieceRook, wantOK: true},
		{sq: square.B1, wantS: SideWhite, wantP: PieceKnight, wantOK: true},
		{sq: square.C1, wantS: SideWhite, wantP: PieceBishop, wantOK: true},
		{sq: square.D1, wantS: SideWhite, wantP: PieceQueen, wantOK: true},
		{sq: square.E1, wantS: SideWhite, wantP: PieceKing, wantOK: true},
		{sq: square.E2, wantS: SideWhite, wantP: PiecePawn, wantOK: true},
		{sq: square.E4, wantS: SideUnknown, wantP: PieceUnknown, wantOK: false},
		{sq: square.H7, wantS: SideBlack, wantP: PiecePawn, wantOK: true},
		{sq: square.D8, wantS: SideBlack, wantP: PieceQueen, wantOK: true},
		{sq: square.E8, wantS: SideBlack, wantP: PieceKing, wantOK: true},
		{sq: square.NoSquare, wantS: SideUnknown, wantP: PieceUnknown, wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.sq.String(), func(t *testing.T) {
			t.Parallel()
			s, p, ok := pos.PieceAt(tt.sq)
			if s != tt.wantS || p != tt.wantP || ok != tt.wantOK {
				t.Errorf("unexpected piece: got=(%s %s %v) want=(%s %s %v)", s, p, ok, tt.wantS, tt.wantP, tt.wantOK)
			}
		})
	}

	// every occupied square resolves to exactly the bitmap holding it
	for sq := square.A1; sq <= square.H8; sq++ {
		s, p, ok := pos.PieceAt(sq)
		if ok != (pos.AllPieces()&sq.Bitboard() != 0) {
			t.Errorf("unexpected occupancy at %s: got=%v", sq, ok)
		}
		if ok && pos.Bitmap(s, p)&sq.Bitboard() == 0 {
			t.Errorf("unexpected piece at %s: got=%s %s", sq, s, p)
		}
	}
}

func TestSetEnPassantTargets(t *testing.T) {
	t.Parallel()
	pos := NewPositionBuilder().
		WhitePawns(square.E4.Bitboard()).
		BlackPawns(square.D4.Bitboard()).
		Build()
	snapshot := pos

	pos.SetEnPassantTargets(square.E3.Bitboard())
	if got, want := pos.EnPassantTargets(), square.E3.Bitboard(); got != want {
		t.Errorf("unexpected en passant targets: got=%v want=%v", got, want)
	}
	if got := snapshot.EnPassantTargets(); got != bitboard.Empty {
		t.Errorf("copy shares en passant targets: got=%v", got)
	}
	if pos.AllPieces() != snapshot.AllPieces() {
		t.Errorf("piece placement changed: got=%v want=%v", pos.AllPieces(), snapshot.AllPieces())
	}
}

func TestBuilderIsReusable(t *testing.T) {
	t.Parallel()
	base := NewPositionBuilder().WhiteKings(square.E1.Bitboard()).BlackKings(square.E8.Bitboard())
	withPawn := base.WhitePawns(square.E2.Bitboard()).Build()
	withoutPawn := base.Build()

	if withoutPawn.WhitePawns() != bitboard.Empty {
		t.Errorf("builder mutated by derived setter: got=%v", withoutPawn.WhitePawns())
	}
	if withPawn.WhitePawns() != square.E2.Bitboard() {
		t.Errorf("unexpected pawns: got=%v want=%v", withPawn.WhitePawns(), square.E2.Bitboard())
	}
	if got := base.Pieces(SideUnknown, PiecePawn, bitboard.Full).Build(); got != withoutPawn {
		t.Errorf("unknown side changed builder: got=%s", PlacementFEN(got))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pos     Position
		wantErr error
	}{
		{
			name:    "ok",
			pos:     StartingPosition(),
			wantErr: nil,
		},
		{
			name: "sides overlap",
			pos: NewPositionBuilder().
				WhitePawns(square.E4.Bitboard()).
				BlackKnights(square.E4.Bitboard()).
				Build(),
			wantErr: ErrOverlappingSides,
		},
		{
			name: "pieces overlap",
			pos: NewPositionBuilder().
				BlackRooks(square.A8.Bitboard()).
				BlackQueens(square.A8.Bitboard() | square.D8.Bitboard()).
				Build(),
			wantErr: ErrOverlappingPieces,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.pos.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	t.Parallel()
	out := Draw(StartingPosition(), WithASCII(), WithMarks(square.E4.Bitboard()))
	lines := strings.Split(out, "\n")
	if len(lines) != bitboard.Height+1 {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), bitboard.Height+1)
	}
	for _, want := range []string{"r", "n", "b", "q", "k", "p"} {
		if !strings.Contains(lines[0]+lines[1], want) {
			t.Errorf("missing %q on black back ranks", want)
		}
	}
	if !strings.Contains(lines[7], "K") || !strings.Contains(lines[7], "Q") {
		t.Errorf("missing white royalty on rank 1: %q", lines[7])
	}
}
