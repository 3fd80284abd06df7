package engine

import "github.com/lgbarn/chessmodel-go/internal/chess"

// PseudoLegalCastlingMoves returns the castling moves available to the side
// to move. A side is offered when the right is still held, the king is not
// in check, every square between king and rook is empty, and no square the
// king stands on or crosses (start, intermediate, end) is attacked.
func (p Position) PseudoLegalCastlingMoves() ([]chess.Move, error) {
	sides := p.castling.Sides(p.turn)
	if len(sides) == 0 {
		return nil, nil
	}

	inCheck, err := p.InCheck()
	if err != nil {
		return nil, err
	}
	if inCheck {
		return nil, nil
	}

	var moves []chess.Move
	for _, side := range sides {
		if p.canCastle(side) {
			moves = append(moves, chess.NewCastle(side))
		}
	}
	return moves, nil
}

// canCastle checks the board conditions for castling on side. The king and
// rook must still stand on their starting squares.
func (p Position) canCastle(side chess.CastleSide) bool {
	kingFrom, kingTo, rookFrom, _ := chess.CastlingSquares(p.turn, side)

	king, ok := p.board.Get(kingFrom)
	if !ok || king.Kind != chess.King || king.Colour != p.turn {
		return false
	}
	rook, ok := p.board.Get(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != p.turn {
		return false
	}

	if !isPathClear(p.board, kingFrom, rookFrom) {
		return false
	}

	transit := append([]chess.Square{kingFrom}, chess.SquaresBetween(kingFrom, kingTo)...)
	transit = append(transit, kingTo)
	for _, sq := range transit {
		// Relocate the king so that attacks onto the occupied square count.
		relocated := p.board.Update([]chess.Square{kingFrom}, []chess.Piece{king.Moved(sq)})
		attacked, err := IsKingAttacked(relocated, p.turn)
		if err != nil || attacked {
			return false
		}
	}
	return true
}

// applyCastle relocates king and rook of the side to move.
func (p Position) applyCastle(side chess.CastleSide) (Position, error) {
	kingFrom, kingTo, rookFrom, rookTo := chess.CastlingSquares(p.turn, side)

	king, ok := p.board.Get(kingFrom)
	if !ok {
		return p, p.moveError(chess.NewCastle(side), errEmpty(kingFrom))
	}
	rook, ok := p.board.Get(rookFrom)
	if !ok {
		return p, p.moveError(chess.NewCastle(side), errEmpty(rookFrom))
	}

	board := p.board.Update(
		[]chess.Square{kingFrom, rookFrom},
		[]chess.Piece{king.Moved(kingTo), rook.Moved(rookTo)},
	)
	return p.WithBoard(board), nil
}
