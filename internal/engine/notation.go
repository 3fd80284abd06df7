package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// ParseMove parses long algebraic move text ("e2e4", "e7e8q") or a castling
// token ("O-O", "O-O-O", also written with zeros).
func ParseMove(text string) (chess.Move, error) {
	switch text {
	case "O-O", "0-0":
		return chess.NewCastle(chess.Kingside), nil
	case "O-O-O", "0-0-0":
		return chess.NewCastle(chess.Queenside), nil
	}

	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("%q: %v: %w", text, err, errors.ErrInvalidMove)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("%q: %v: %w", text, err, errors.ErrInvalidMove)
	}

	if len(text) == 4 {
		return chess.NewMove(from, to), nil
	}

	kind := chess.KindFromLetter(text[4])
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return chess.NewPromotion(from, to, kind), nil
	default:
		return chess.Move{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrInvalidMove)
	}
}

// ParseMoves parses a whitespace-separated list of moves.
func ParseMoves(list string) ([]chess.Move, error) {
	var moves []chess.Move
	for i, text := range strings.Fields(list) {
		m, err := ParseMove(text)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders moves as a space-separated list.
func FormatMoves(moves []chess.Move) string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return strings.Join(texts, " ")
}

// FromCastlingMove translates a castling token into the king's from/to
// squares for colour, which is how long algebraic notation writes it.
func FromCastlingMove(m chess.Move, colour chess.Colour) chess.Move {
	if !m.IsCastle() {
		return m
	}
	kingFrom, kingTo, _, _ := chess.CastlingSquares(colour, m.Castle)
	return chess.NewMove(kingFrom, kingTo)
}

// ToCastlingMove recognises a king move from e1/e8 to g or c on the home
// rank as a castling token when the moving piece is a king.
func ToCastlingMove(p Position, m chess.Move) chess.Move {
	if m.IsCastle() || m.IsPromotion() {
		return m
	}
	piece, ok := p.board.Get(m.From)
	if !ok || piece.Kind != chess.King {
		return m
	}
	for _, side := range chess.CastleSides {
		kingFrom, kingTo, _, _ := chess.CastlingSquares(piece.Colour, side)
		if m.From == kingFrom && m.To == kingTo {
			return chess.NewCastle(side)
		}
	}
	return m
}
