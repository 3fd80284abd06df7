package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Sq('a', '1'), false},
		{"h8", Sq('h', '8'), false},
		{"e4", Sq('e', '4'), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"A1", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSquareCoordsRoundTrip(t *testing.T) {
	seen := make(map[Coords]bool)
	for _, sq := range AllSquares() {
		c, ok := SquareToCoords(sq)
		if !ok {
			t.Fatalf("SquareToCoords(%v) not ok", sq)
		}
		if seen[c] {
			t.Errorf("coords %v produced twice", c)
		}
		seen[c] = true

		back, ok := CoordsToSquare(c)
		if !ok || back != sq {
			t.Errorf("CoordsToSquare(%v) = %v, %v; want %v", c, back, ok, sq)
		}
	}
	if len(seen) != 64 {
		t.Errorf("distinct coords = %d; want 64", len(seen))
	}
}

func TestSquareToCoords(t *testing.T) {
	if c, _ := SquareToCoords(MustParseSquare("a1")); c != (Coords{0, 0}) {
		t.Errorf("a1 -> %v; want {0 0}", c)
	}
	if c, _ := SquareToCoords(MustParseSquare("h8")); c != (Coords{7, 7}) {
		t.Errorf("h8 -> %v; want {7 7}", c)
	}
	if c, _ := SquareToCoords(MustParseSquare("c5")); c != (Coords{2, 4}) {
		t.Errorf("c5 -> %v; want {2 4}", c)
	}
	if _, ok := SquareToCoords(Square{}); ok {
		t.Error("SquareToCoords(zero square) ok = true; want false")
	}
	if _, ok := CoordsToSquare(Coords{8, 0}); ok {
		t.Error("CoordsToSquare({8 0}) ok = true; want false")
	}
	if _, ok := CoordsToSquare(Coords{0, -1}); ok {
		t.Error("CoordsToSquare({0 -1}) ok = true; want false")
	}
}

func TestSquaresBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []string
	}{
		{"same square", "a1", "a1", nil},
		{"non aligned", "a1", "b3", nil},
		{"knight distance", "g1", "f3", nil},
		{"adjacent file", "a1", "a2", nil},
		{"file up", "a1", "a4", []string{"a2", "a3"}},
		{"file down", "e8", "e5", []string{"e7", "e6"}},
		{"rank", "a1", "h1", []string{"b1", "c1", "d1", "e1", "f1", "g1"}},
		{"rank reversed", "e1", "a1", []string{"d1", "c1", "b1"}},
		{"diagonal", "a1", "d4", []string{"b2", "c3"}},
		{"anti diagonal", "h1", "e4", []string{"g2", "f3"}},
		{"diagonal down", "c6", "a4", []string{"b5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaresBetween(MustParseSquare(tt.a), MustParseSquare(tt.b))
			var labels []string
			for _, sq := range got {
				labels = append(labels, sq.String())
			}
			if diff := cmp.Diff(tt.want, labels); diff != "" {
				t.Errorf("SquaresBetween(%s, %s) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := MustParseSquare("e4")
	if sq, ok := e4.Offset(1, 2); !ok || sq.String() != "f6" {
		t.Errorf("e4.Offset(1,2) = %v, %v; want f6, true", sq, ok)
	}
	if _, ok := MustParseSquare("h8").Offset(1, 0); ok {
		t.Error("h8.Offset(1,0) ok = true; want false")
	}
}
