package engine

import "github.com/lgbarn/chessmodel-go/internal/chess"

// pawnRawMoves returns the squares one rank forward (straight or diagonal)
// plus the double advance from the starting rank.
func pawnRawMoves(p chess.Piece) []chess.Square {
	dir := chess.ColourOffset(p.Colour)
	squares := offsetSquares(p.Square, [][2]int{{-1, dir}, {0, dir}, {1, dir}})

	if p.Square.Coords().Y == chess.PawnStartY(p.Colour) {
		if to, ok := p.Square.Offset(0, 2*dir); ok {
			squares = append(squares, to)
		}
	}
	return squares
}

// pawnPseudoLegalMoves keeps diagonal targets holding an opposing piece and
// forward targets that are empty with an empty path. En passant is not
// generated.
func pawnPseudoLegalMoves(p chess.Piece, board chess.Board) []chess.Square {
	from := p.Square.Coords()

	var targets []chess.Square
	for _, to := range pawnRawMoves(p) {
		if to.Coords().X != from.X {
			if isOpponent(board, to, p.Colour) {
				targets = append(targets, to)
			}
			continue
		}
		if !board.Occupied(to) && isPathClear(board, p.Square, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// isPromotionSquare reports whether a pawn of colour arriving on sq promotes.
func isPromotionSquare(sq chess.Square, colour chess.Colour) bool {
	return sq.Coords().Y == chess.PromotionY(colour)
}
