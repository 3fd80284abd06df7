// Package engine provides the chess position model: piece movement rules,
// check detection and legal move generation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names, used in parse errors.
const (
	FieldPlacement  = "piece placement"
	FieldSideToMove = "side to move"
	FieldCastling   = "castling"
	FieldEnPassant  = "en passant"
	FieldHalfmove   = "halfmove clock"
	FieldFullmove   = "fullmove number"
)

var fenFields = []string{
	FieldPlacement, FieldSideToMove, FieldCastling,
	FieldEnPassant, FieldHalfmove, FieldFullmove,
}

// ParseFEN parses a six-field FEN string into a position. Nothing is
// accepted partially: any malformed field fails the whole parse with a
// *errors.FieldError naming that field.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != len(fenFields) {
		return Position{}, fmt.Errorf("expected %d fields, got %d: %w", len(fenFields), len(parts), errors.ErrInvalidFEN)
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return Position{}, fieldError(0, parts[0], err)
	}

	turn, err := parseSideToMove(parts[1])
	if err != nil {
		return Position{}, fieldError(1, parts[1], err)
	}

	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return Position{}, fieldError(2, parts[2], err)
	}

	ep, err := parseEnPassant(parts[3])
	if err != nil {
		return Position{}, fieldError(3, parts[3], err)
	}

	halfmove, err := parseClock(parts[4], 0)
	if err != nil {
		return Position{}, fieldError(4, parts[4], err)
	}

	fullmove, err := parseClock(parts[5], 1)
	if err != nil {
		return Position{}, fieldError(5, parts[5], err)
	}

	pos := NewPosition(board, turn, rights)
	pos.enPassant = ep
	pos.halfmoveClock = halfmove
	pos.moveNumber = fullmove
	return pos, nil
}

// fieldError wraps err with the FEN field it came from.
func fieldError(index int, value string, err error) error {
	return &errors.FieldError{
		Err:   err,
		Field: fenFields[index],
		Index: index + 1,
		Value: value,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(placement string) (chess.Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return chess.Board{}, fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	var pieces []chess.Piece
	for i, rankText := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)
		lastWasDigit := false

		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				if lastWasDigit {
					return chess.Board{}, fmt.Errorf("rank %c: consecutive digits: %w", rank, errors.ErrInvalidFEN)
				}
				col += chess.Col(c - '0')
				lastWasDigit = true
			default:
				kind := chess.KindFromLetter(byte(c))
				if c > unicode.MaxASCII || kind == chess.NoKind {
					return chess.Board{}, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.LastCol {
					return chess.Board{}, fmt.Errorf("rank %c: too many squares: %w", rank, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				pieces = append(pieces, chess.NewPiece(kind, colour, chess.Sq(col, rank)))
				col++
				lastWasDigit = false
			}
		}

		if col != chess.LastCol+1 {
			return chess.Board{}, fmt.Errorf("rank %c covers %d squares: %w", rank, int(col-chess.FirstCol), errors.ErrInvalidFEN)
		}
	}
	return chess.NewBoard(pieces...), nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("want w or b: %w", errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}
	if field == "" {
		return rights, fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}

	seen := make(map[rune]bool)
	for _, c := range field {
		if seen[c] {
			return rights, fmt.Errorf("repeated castling letter %q: %w", c, errors.ErrInvalidFEN)
		}
		seen[c] = true

		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling letter %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (chess.Square, error) {
	if field == "-" {
		return chess.Square{}, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.Square{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	if sq.Rank != '3' && sq.Rank != '6' {
		return chess.Square{}, fmt.Errorf("target must be on rank 3 or 6: %w", errors.ErrInvalidFEN)
	}
	return sq, nil
}

// parseClock parses a non-negative move counter no smaller than floor.
func parseClock(field string, floor uint64) (uint, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n < floor {
		return 0, fmt.Errorf("want an integer >= %d: %w", floor, errors.ErrInvalidFEN)
	}
	return uint(n), nil
}

// ToFEN converts a position to a FEN string.
func ToFEN(p Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, p.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, p.turn)
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	if ep, ok := p.EnPassant(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece, ok := board.Get(chess.Sq(col, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
