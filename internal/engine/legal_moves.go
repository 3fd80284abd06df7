package engine

import (
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// PseudoLegalMoves returns every move of the side to move that obeys piece
// geometry and occupancy, plus the available castling moves. Pawn moves onto
// the last rank are expanded into one move per promotion kind.
func (p Position) PseudoLegalMoves() ([]chess.Move, error) {
	var moves []chess.Move
	for _, piece := range p.board.PiecesOf(p.turn) {
		for _, to := range PseudoLegalTargets(piece, p.board) {
			if piece.Kind == chess.Pawn && isPromotionSquare(to, piece.Colour) {
				for _, kind := range chess.PromotionKinds {
					moves = append(moves, chess.NewPromotion(piece.Square, to, kind))
				}
				continue
			}
			moves = append(moves, chess.NewMove(piece.Square, to))
		}
	}

	castles, err := p.PseudoLegalCastlingMoves()
	if err != nil {
		return nil, err
	}
	return append(moves, castles...), nil
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// own king attacked. The check is made for the colour that moved, on the
// board after the move, whatever the stored side to move says.
//
// A position without a king for the side to move is an error, not an empty
// move list. An empty list with a nil error means checkmate or stalemate;
// use InCheck to tell them apart.
func (p Position) LegalMoves() ([]chess.Move, error) {
	if _, err := findKing(p.board, p.turn); err != nil {
		return nil, &errors.PositionError{Err: err, FEN: ToFEN(p)}
	}

	pseudo, err := p.PseudoLegalMoves()
	if err != nil {
		return nil, err
	}

	mover := p.turn
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		after, err := p.ApplyMove(m)
		if err != nil {
			return nil, err
		}
		attacked, err := IsKingAttacked(after.board, mover)
		if err != nil {
			return nil, p.moveError(m, err)
		}
		if !attacked {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// IsLegal reports whether m is among the legal moves of the position.
func (p Position) IsLegal(m chess.Move) (bool, error) {
	moves, err := p.LegalMoves()
	if err != nil {
		return false, err
	}
	for _, legal := range moves {
		if legal == m {
			return true, nil
		}
	}
	return false, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p Position) HasLegalMoves() (bool, error) {
	moves, err := p.LegalMoves()
	if err != nil {
		return false, err
	}
	return len(moves) > 0, nil
}
