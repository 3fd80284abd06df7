package engine

import (
	"testing"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/testutil"
)

func TestRawMoves(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		want  []string
		count int
	}{
		{"knight in corner", chess.NewPiece(chess.Knight, chess.White, sq("a1")), []string{"b3", "c2"}, 2},
		{"knight in centre", chess.NewPiece(chess.Knight, chess.Black, sq("d4")), []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}, 8},
		{"king in corner", chess.NewPiece(chess.King, chess.White, sq("a1")), []string{"a2", "b1", "b2"}, 3},
		{"white pawn on start rank", chess.NewPiece(chess.Pawn, chess.White, sq("e2")), []string{"d3", "e3", "e4", "f3"}, 4},
		{"white pawn on edge", chess.NewPiece(chess.Pawn, chess.White, sq("a2")), []string{"a3", "a4", "b3"}, 3},
		{"white pawn advanced", chess.NewPiece(chess.Pawn, chess.White, sq("e4")), []string{"d5", "e5", "f5"}, 3},
		{"black pawn on start rank", chess.NewPiece(chess.Pawn, chess.Black, sq("e7")), []string{"d6", "e5", "e6", "f6"}, 4},
		{"pawn on last rank", chess.NewPiece(chess.Pawn, chess.White, sq("e8")), []string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RawMoves(tt.piece)
			testutil.AssertEqual(t, len(got), tt.count)
			testutil.AssertNames(t, got, tt.want)
		})
	}
}

func TestRawMoves_SlidingCounts(t *testing.T) {
	tests := []struct {
		kind  chess.Kind
		from  string
		count int
	}{
		{chess.Bishop, "d4", 13},
		{chess.Bishop, "a1", 7},
		{chess.Rook, "d4", 14},
		{chess.Rook, "h8", 14},
		{chess.Queen, "d4", 27},
		{chess.Queen, "a1", 21},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+" "+tt.from, func(t *testing.T) {
			got := RawMoves(chess.NewPiece(tt.kind, chess.White, sq(tt.from)))
			if len(got) != tt.count {
				t.Errorf("RawMoves() returned %d squares, want %d", len(got), tt.count)
			}
		})
	}
}

func TestPseudoLegalTargets_RookSurrounded(t *testing.T) {
	rook := chess.NewPiece(chess.Rook, chess.White, sq("e5"))
	board := chess.NewBoard(
		rook,
		chess.NewPiece(chess.Pawn, chess.White, sq("f4")),
		chess.NewPiece(chess.Pawn, chess.White, sq("f6")),
		chess.NewPiece(chess.Pawn, chess.White, sq("d4")),
		chess.NewPiece(chess.Pawn, chess.White, sq("d6")),
		chess.NewPiece(chess.Pawn, chess.Black, sq("e4")),
		chess.NewPiece(chess.Pawn, chess.Black, sq("e6")),
		chess.NewPiece(chess.Pawn, chess.Black, sq("d5")),
		chess.NewPiece(chess.Pawn, chess.Black, sq("f5")),
	)

	got := PseudoLegalTargets(rook, board)
	testutil.AssertNames(t, got, []string{"d5", "e4", "e6", "f5"})
}

func TestPseudoLegalTargets_Pawn(t *testing.T) {
	pawn := chess.NewPiece(chess.Pawn, chess.White, sq("e2"))

	tests := []struct {
		name   string
		others []chess.Piece
		want   []string
	}{
		{"empty board", nil, []string{"e3", "e4"}},
		{
			"blocked directly",
			[]chess.Piece{chess.NewPiece(chess.Knight, chess.Black, sq("e3"))},
			[]string{},
		},
		{
			"double push blocked",
			[]chess.Piece{chess.NewPiece(chess.Knight, chess.Black, sq("e4"))},
			[]string{"e3"},
		},
		{
			"captures opponents only",
			[]chess.Piece{
				chess.NewPiece(chess.Knight, chess.Black, sq("d3")),
				chess.NewPiece(chess.Knight, chess.White, sq("f3")),
			},
			[]string{"d3", "e3", "e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewBoard(append([]chess.Piece{pawn}, tt.others...)...)
			testutil.AssertNames(t, PseudoLegalTargets(pawn, board), tt.want)
		})
	}
}

func TestPseudoLegalTargets_BlockedSliders(t *testing.T) {
	board := chess.NewBoard(chess.StandardPieces()...)

	for _, from := range []string{"a1", "c1", "d1", "f1", "h1"} {
		piece, _ := board.Get(sq(from))
		if got := PseudoLegalTargets(piece, board); len(got) != 0 {
			t.Errorf("%v: got targets %v, want none", piece, testutil.SortedNames(got))
		}
	}

	knight, _ := board.Get(sq("g1"))
	testutil.AssertNames(t, PseudoLegalTargets(knight, board), []string{"f3", "h3"})
}

func TestPseudoLegalTargets_BishopStopsAtFirstPiece(t *testing.T) {
	bishop := chess.NewPiece(chess.Bishop, chess.Black, sq("c1"))
	board := chess.NewBoard(
		bishop,
		chess.NewPiece(chess.Pawn, chess.Black, sq("e3")),
		chess.NewPiece(chess.Pawn, chess.White, sq("a3")),
	)

	testutil.AssertNames(t, PseudoLegalTargets(bishop, board), []string{"a3", "b2", "d2"})
}

func TestRulesFor_UnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RawMoves(NoKind) should panic")
		}
	}()
	RawMoves(chess.Piece{Kind: chess.NoKind, Square: sq("e4")})
}
