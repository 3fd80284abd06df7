package chess

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Square identifies one of the 64 board squares by its algebraic label.
// The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Coords is the grid form of a square: X is the file (a=0), Y the rank (1=0).
type Coords struct {
	X, Y int
}

// Sq builds a square from file and rank characters without validation.
// Use ParseSquare for untrusted input.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses an algebraic label such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic label of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Coords returns the grid coordinates of the square.
func (s Square) Coords() Coords {
	return Coords{X: int(s.Col - FirstCol), Y: int(s.Rank - FirstRank)}
}

// Offset returns the square dx files and dy ranks away.
// ok is false when the result falls off the board.
func (s Square) Offset(dx, dy int) (Square, bool) {
	c := s.Coords()
	return CoordsToSquare(Coords{X: c.X + dx, Y: c.Y + dy})
}

// Valid reports whether both coordinates are in 0..7.
func (c Coords) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// SquareToCoords converts an algebraic square to grid coordinates.
// ok is false for malformed squares.
func SquareToCoords(s Square) (Coords, bool) {
	if !s.Valid() {
		return Coords{}, false
	}
	return s.Coords(), true
}

// CoordsToSquare converts grid coordinates to a square.
// ok is false outside 0..7.
func CoordsToSquare(c Coords) (Square, bool) {
	if !c.Valid() {
		return Square{}, false
	}
	return Square{Col: Col(FirstCol + c.X), Rank: Rank(FirstRank + c.Y)}, true
}

// AllSquares returns every square in a1, b1, ..., h8 order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := Rank(FirstRank); rank <= LastRank; rank++ {
		for col := Col(FirstCol); col <= LastCol; col++ {
			squares = append(squares, Square{Col: col, Rank: rank})
		}
	}
	return squares
}

// SquaresBetween returns the squares strictly between a and b, ordered from a
// towards b. The result is empty unless a and b share a rank, a file or a
// diagonal; it is also empty for identical or adjacent squares.
func SquaresBetween(a, b Square) []Square {
	ca, okA := SquareToCoords(a)
	cb, okB := SquareToCoords(b)
	if !okA || !okB {
		return nil
	}

	dx := cb.X - ca.X
	dy := cb.Y - ca.Y
	if dx == 0 && dy == 0 {
		return nil
	}
	if dx != 0 && dy != 0 && Abs(dx) != Abs(dy) {
		return nil
	}

	stepX, stepY := Sign(dx), Sign(dy)
	steps := max(Abs(dx), Abs(dy))

	var between []Square
	for i := 1; i < steps; i++ {
		sq, _ := CoordsToSquare(Coords{X: ca.X + i*stepX, Y: ca.Y + i*stepY})
		between = append(between, sq)
	}
	return between
}
