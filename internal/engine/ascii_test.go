package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessmodel-go/internal/errors"
	"github.com/lgbarn/chessmodel-go/internal/testutil"
)

func TestASCII_InitialPosition(t *testing.T) {
	want := strings.Join([]string{
		"r|n|b|q|k|b|n|r",
		"p|p|p|p|p|p|p|p",
		" | | | | | | | ",
		" | | | | | | | ",
		" | | | | | | | ",
		" | | | | | | | ",
		"P|P|P|P|P|P|P|P",
		"R|N|B|Q|K|B|N|R",
	}, "\n")

	testutil.AssertEqual(t, ASCII(NewInitialPosition()), want)
}

func TestASCII_RoundTrip(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, mateOnHFileFEN} {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustParse(t, ParseFEN, fen)
			board, err := ParseASCII(ASCII(pos))
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, board.Equal(pos.Board()), "board should survive an ASCII round trip")
		})
	}
}

func TestParseASCII_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few lines", "r|n|b|q|k|b|n|r"},
		{"too few cells", strings.Repeat(" | | | | | | \n", 8)},
		{"bad letter", strings.Repeat("x| | | | | | | \n", 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseASCII(tt.input)
			if !errors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("ParseASCII() error = %v, want ErrInvalidFEN", err)
			}
		})
	}
}
