package engine

import "github.com/lgbarn/chessmodel-go/internal/chess"

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// raySquares returns every on-board square along the given directions from
// sq, ignoring occupancy.
func raySquares(sq chess.Square, dirs [][2]int) []chess.Square {
	var squares []chess.Square
	for _, dir := range dirs {
		for step := 1; ; step++ {
			to, ok := sq.Offset(dir[0]*step, dir[1]*step)
			if !ok {
				break
			}
			squares = append(squares, to)
		}
	}
	return squares
}

// offsetSquares returns the on-board squares at the given offsets from sq.
func offsetSquares(sq chess.Square, offsets [][2]int) []chess.Square {
	var squares []chess.Square
	for _, off := range offsets {
		if to, ok := sq.Offset(off[0], off[1]); ok {
			squares = append(squares, to)
		}
	}
	return squares
}

// diagonalSquares returns all squares sharing a diagonal with sq.
func diagonalSquares(sq chess.Square) []chess.Square {
	return raySquares(sq, diagonalDirs)
}

// orthogonalSquares returns all squares sharing a rank or file with sq.
func orthogonalSquares(sq chess.Square) []chess.Square {
	return raySquares(sq, straightDirs)
}

// isPathClear reports whether every square strictly between from and to is empty.
func isPathClear(board chess.Board, from, to chess.Square) bool {
	for _, sq := range chess.SquaresBetween(from, to) {
		if board.Occupied(sq) {
			return false
		}
	}
	return true
}

// isEmptyOrOpponent reports whether sq is empty or holds a piece of the
// other colour.
func isEmptyOrOpponent(board chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.Get(sq)
	return !ok || p.Colour != colour
}

// isOpponent reports whether sq holds a piece of the other colour.
func isOpponent(board chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.Get(sq)
	return ok && p.Colour != colour
}
