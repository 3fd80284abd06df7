package engine

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// GameStatus describes a position from the point of view of a game driver.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Advance plays m as a move in a game: it applies the move and then does
// the bookkeeping ApplyMove leaves to the caller. The side to move is
// flipped, castling rights are revoked when a king moves or a rook leaves
// or is captured on its starting square, the half-move clock and move
// number advance, and a double pawn push records its en passant target.
//
// Advance does not check legality; see PlayMove.
func Advance(p Position, m chess.Move) (Position, error) {
	mover := p.turn

	next, err := p.ApplyMove(m)
	if err != nil {
		return p, err
	}

	rights := p.castling
	resetClock := false
	next.enPassant = chess.Square{}

	if m.IsCastle() {
		rights = rights.Without(mover, chess.Kingside).Without(mover, chess.Queenside)
	} else {
		piece, _ := p.board.Get(m.From)
		captured, isCapture := p.board.Get(m.To)

		switch piece.Kind {
		case chess.King:
			rights = rights.Without(mover, chess.Kingside).Without(mover, chess.Queenside)
		case chess.Rook:
			rights = updateCastlingRightsForRook(rights, mover, m.From)
		case chess.Pawn:
			resetClock = true
			from, to := m.From.Coords(), m.To.Coords()
			if chess.Abs(to.Y-from.Y) == 2 {
				next.enPassant, _ = m.From.Offset(0, chess.ColourOffset(mover))
			}
		}

		if isCapture {
			resetClock = true
			if captured.Kind == chess.Rook {
				rights = updateCastlingRightsForRook(rights, captured.Colour, m.To)
			}
		}
	}

	if resetClock {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock = p.halfmoveClock + 1
	}
	if mover == chess.Black {
		next.moveNumber = p.moveNumber + 1
	}

	next.castling = rights
	next.turn = mover.Opposite()
	return next, nil
}

// updateCastlingRightsForRook removes the right tied to a rook that moved
// from, or was captured on, sq.
func updateCastlingRightsForRook(rights chess.CastlingRights, colour chess.Colour, sq chess.Square) chess.CastlingRights {
	for _, side := range chess.CastleSides {
		_, _, rookFrom, _ := chess.CastlingSquares(colour, side)
		if sq == rookFrom {
			rights = rights.Without(colour, side)
		}
	}
	return rights
}

// PlayMove is Advance restricted to legal moves. A king move written in
// long algebraic form ("e1g1") is accepted for castling.
func PlayMove(p Position, m chess.Move) (Position, error) {
	m = ToCastlingMove(p, m)
	legal, err := p.IsLegal(m)
	if err != nil {
		return p, err
	}
	if !legal {
		return p, p.moveError(m, fmt.Errorf("%s: %w", m, errors.ErrIllegalMove))
	}
	return Advance(p, m)
}

// PlayMoves plays a sequence of moves with PlayMove.
func PlayMoves(p Position, moves []chess.Move) (Position, error) {
	for i, m := range moves {
		next, err := PlayMove(p, m)
		if err != nil {
			return p, errors.Wrapf(err, "ply %d", i+1)
		}
		p = next
	}
	return p, nil
}

// Status derives the game status of the side to move from its legal moves
// and check state.
func Status(p Position) (GameStatus, error) {
	hasMoves, err := p.HasLegalMoves()
	if err != nil {
		return Ongoing, err
	}
	if hasMoves {
		return Ongoing, nil
	}
	inCheck, err := p.InCheck()
	if err != nil {
		return Ongoing, err
	}
	if inCheck {
		return Checkmate, nil
	}
	return Stalemate, nil
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(p Position) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, piece := range p.board.Pieces() {
		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(piece.Square)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(piece.Square)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	c := sq.Coords()
	return (c.X+c.Y)%2 == 1
}
