package engine

import (
	"testing"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p Position) bool {
				king, _ := p.Board().Get(sq("e1"))
				pawn, _ := p.Board().Get(sq("e7"))
				return king == chess.NewPiece(chess.King, chess.White, sq("e1")) &&
					pawn == chess.NewPiece(chess.Pawn, chess.Black, sq("e7")) &&
					p.Board().Len() == 32 &&
					p.Turn() == chess.White &&
					p.CastlingRights() == chess.AllCastlingRights()
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p Position) bool {
				ep, ok := p.EnPassant()
				return p.Board().Occupied(sq("e4")) &&
					!p.Board().Occupied(sq("e2")) &&
					p.Turn() == chess.Black &&
					ok && ep == sq("e3")
			},
		},
		{
			name: "clocks",
			fen:  "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 12",
			checkFn: func(p Position) bool {
				return p.HalfmoveClock() == 1 && p.MoveNumber() == 12
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
			checkFn: func(p Position) bool {
				return p.CastlingRights() == chess.CastlingRights{WhiteKingside: true, BlackQueenside: true}
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p Position) bool {
				return p.CastlingRights() == chess.CastlingRights{}
			},
		},
		{
			name: "no kings",
			fen:  "8/8/8/8/8/8/8/8 w - - 0 1",
			checkFn: func(p Position) bool {
				return p.Board().Len() == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("ParseFEN() position check failed")
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", FieldPlacement},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"consecutive digits", "rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"overfull rank", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", FieldSideToMove},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", FieldCastling},
		{"repeated castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1", FieldCastling},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", FieldEnPassant},
		{"en passant on wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", FieldEnPassant},
		{"negative halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", FieldHalfmove},
		{"zero fullmove number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", FieldFullmove},
		{"non-numeric fullmove number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one", FieldFullmove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			if !errors.Is(err, errors.ErrInvalidFEN) {
				t.Fatalf("ParseFEN() error = %v, want ErrInvalidFEN", err)
			}
			var fieldErr *errors.FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("ParseFEN() error %v should be a *FieldError", err)
			}
			testutil.AssertEqual(t, fieldErr.Field, tt.field)
		})
	}
}

func TestParseFEN_FieldCount(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		InitialFEN + " extra",
	} {
		if _, err := ParseFEN(fen); !errors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		mateOnHFileFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustParse(t, ParseFEN, fen)
			testutil.AssertEqual(t, ToFEN(pos), fen)
			testutil.AssertEqual(t, pos.String(), fen)
		})
	}
}

func TestNewInitialPosition(t *testing.T) {
	testutil.AssertEqual(t, ToFEN(NewInitialPosition()), InitialFEN)
	testutil.AssertTrue(t, NewInitialPosition().Equal(testutil.MustParse(t, ParseFEN, InitialFEN)))
}
