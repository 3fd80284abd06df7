package engine

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// ApplyMove returns the position reached by playing m. For a normal move
// the piece on From is placed on To (promoted if requested), discarding
// whatever stood there. A castling token moves the side to move's king and
// rook to their target squares.
//
// ApplyMove changes only the board: the side to move and the castling rights
// are carried over unchanged. Use Advance to play a move in a game.
func (p Position) ApplyMove(m chess.Move) (Position, error) {
	if m.IsCastle() {
		return p.applyCastle(m.Castle)
	}

	if !m.From.Valid() || !m.To.Valid() {
		return p, p.moveError(m, fmt.Errorf("squares %v-%v: %w", m.From, m.To, errors.ErrInvalidSquare))
	}

	piece, ok := p.board.Get(m.From)
	if !ok {
		return p, p.moveError(m, errEmpty(m.From))
	}

	moved := piece.Moved(m.To)
	if m.IsPromotion() {
		moved = moved.Promoted(m.Promotion)
	}

	board := p.board.Update([]chess.Square{m.From, m.To}, []chess.Piece{moved})
	return p.WithBoard(board), nil
}

// errEmpty reports a move whose source square holds no piece.
func errEmpty(sq chess.Square) error {
	return fmt.Errorf("%v: %w", sq, errors.ErrEmptySquare)
}

// moveError wraps err with the position and move for context.
func (p Position) moveError(m chess.Move, err error) error {
	return &errors.PositionError{Err: err, FEN: ToFEN(p), Move: m.String()}
}
