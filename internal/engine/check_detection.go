package engine

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// AttackedSquares returns the union of the pseudo-legal target squares of
// every piece of byColour. Pawn pushes count: a square is attacked when some
// piece could move there, which for an occupied square means capture it.
func AttackedSquares(board chess.Board, byColour chess.Colour) map[chess.Square]bool {
	attacked := make(map[chess.Square]bool)
	for _, p := range board.PiecesOf(byColour) {
		for _, sq := range PseudoLegalTargets(p, board) {
			attacked[sq] = true
		}
	}
	return attacked
}

// IsSquareAttacked reports whether sq is among the squares attacked by byColour.
func IsSquareAttacked(board chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return AttackedSquares(board, byColour)[sq]
}

// findKing finds the king of the given colour on the board.
func findKing(board chess.Board, colour chess.Colour) (chess.Square, error) {
	king, ok := board.Find(chess.King, colour)
	if !ok {
		return chess.Square{}, fmt.Errorf("%s king: %w", colour, errors.ErrMissingKing)
	}
	return king.Square, nil
}

// IsKingAttacked reports whether the king of the given colour stands on a
// square attacked by the other colour. It fails with ErrMissingKing when
// that king is not on the board.
func IsKingAttacked(board chess.Board, colour chess.Colour) (bool, error) {
	kingSquare, err := findKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSquare, colour.Opposite()), nil
}

// InCheck returns true if the side to move's king is attacked.
func (p Position) InCheck() (bool, error) {
	inCheck, err := IsKingAttacked(p.board, p.turn)
	if err != nil {
		return false, &errors.PositionError{Err: err, FEN: ToFEN(p)}
	}
	return inCheck, nil
}
