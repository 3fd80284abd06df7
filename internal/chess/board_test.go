package chess

import (
	"testing"
)

func TestStandardPieces(t *testing.T) {
	b := NewBoard(StandardPieces()...)

	if b.Len() != 32 {
		t.Fatalf("Len() = %d; want 32", b.Len())
	}

	tests := []struct {
		square string
		kind   Kind
		colour Colour
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"e2", Pawn, White},
		{"h7", Pawn, Black},
		{"d8", Queen, Black},
		{"e8", King, Black},
		{"h8", Rook, Black},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := MustParseSquare(tt.square)
			p, ok := b.Get(sq)
			if !ok {
				t.Fatalf("Get(%s) empty", tt.square)
			}
			if p.Kind != tt.kind || p.Colour != tt.colour || p.Square != sq {
				t.Errorf("Get(%s) = %v; want %v %v", tt.square, p, tt.colour, tt.kind)
			}
		})
	}

	if b.Occupied(MustParseSquare("e4")) {
		t.Error("Occupied(e4) = true; want false")
	}
}

func TestBoardUpdateCopiesOnWrite(t *testing.T) {
	e2 := MustParseSquare("e2")
	e4 := MustParseSquare("e4")
	original := NewBoard(StandardPieces()...)
	pawn, _ := original.Get(e2)

	updated := original.Update([]Square{e2}, []Piece{pawn.Moved(e4)})

	if !original.Occupied(e2) || original.Occupied(e4) {
		t.Error("Update modified the receiver")
	}
	if updated.Occupied(e2) {
		t.Error("updated board still has a piece on e2")
	}
	if p, ok := updated.Get(e4); !ok || p.Square != e4 || p.Kind != Pawn {
		t.Errorf("updated.Get(e4) = %v, %v; want white pawn on e4", p, ok)
	}
	if updated.Len() != original.Len() {
		t.Errorf("Len changed from %d to %d", original.Len(), updated.Len())
	}
}

func TestBoardPiecesOrder(t *testing.T) {
	b := NewBoard(
		NewPiece(King, Black, MustParseSquare("h8")),
		NewPiece(King, White, MustParseSquare("a1")),
		NewPiece(Rook, White, MustParseSquare("b1")),
	)
	pieces := b.Pieces()
	want := []string{"a1", "b1", "h8"}
	if len(pieces) != len(want) {
		t.Fatalf("Pieces() len = %d; want %d", len(pieces), len(want))
	}
	for i, p := range pieces {
		if p.Square.String() != want[i] {
			t.Errorf("Pieces()[%d] on %v; want %s", i, p.Square, want[i])
		}
	}
	if got := len(b.PiecesOf(White)); got != 2 {
		t.Errorf("PiecesOf(White) = %d pieces; want 2", got)
	}
	if k, ok := b.Find(King, Black); !ok || k.Square.String() != "h8" {
		t.Errorf("Find(King, Black) = %v, %v; want h8", k, ok)
	}
	if _, ok := b.Find(Queen, White); ok {
		t.Error("Find(Queen, White) ok = true; want false")
	}
}

func TestBoardEqual(t *testing.T) {
	a := NewBoard(StandardPieces()...)
	b := NewBoard(StandardPieces()...)
	if !a.Equal(b) {
		t.Error("identical boards not Equal")
	}
	c := b.Update([]Square{MustParseSquare("a2")}, nil)
	if a.Equal(c) {
		t.Error("different boards reported Equal")
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{Piece{Kind: King, Colour: White}, 'K'},
		{Piece{Kind: Queen, Colour: Black}, 'q'},
		{Piece{Kind: Knight, Colour: White}, 'N'},
		{Piece{Kind: Pawn, Colour: Black}, 'p'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestKindFromLetter(t *testing.T) {
	for _, kind := range Kinds {
		if got := KindFromLetter(kind.Letter()); got != kind {
			t.Errorf("KindFromLetter(%c) = %v; want %v", kind.Letter(), got, kind)
		}
	}
	if got := KindFromLetter('x'); got != NoKind {
		t.Errorf("KindFromLetter('x') = %v; want NoKind", got)
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
}
