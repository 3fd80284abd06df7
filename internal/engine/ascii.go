package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// ASCII renders the board as eight lines, rank 8 first, with the eight
// files of each rank joined by '|'. White pieces are uppercase, black
// lowercase, empty squares a space.
func ASCII(p Position) string {
	lines := make([]string, 0, chess.BoardSize)
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		cells := make([]string, 0, chess.BoardSize)
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			if piece, ok := p.board.Get(chess.Sq(col, rank)); ok {
				cells = append(cells, string(piece.Letter()))
			} else {
				cells = append(cells, " ")
			}
		}
		lines = append(lines, strings.Join(cells, "|"))
	}
	return strings.Join(lines, "\n")
}

// ParseASCII reads a board in the form produced by ASCII.
func ParseASCII(s string) (chess.Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != chess.BoardSize {
		return chess.Board{}, fmt.Errorf("ascii board: %d lines: %w", len(lines), errors.ErrInvalidFEN)
	}

	var pieces []chess.Piece
	for i, line := range lines {
		rank := chess.Rank(chess.LastRank - i)
		cells := strings.Split(line, "|")
		if len(cells) != chess.BoardSize {
			return chess.Board{}, fmt.Errorf("ascii board: rank %c has %d cells: %w", rank, len(cells), errors.ErrInvalidFEN)
		}
		for j, cell := range cells {
			if cell == " " || cell == "" {
				continue
			}
			kind := chess.KindFromLetter(cell[0])
			if len(cell) != 1 || kind == chess.NoKind {
				return chess.Board{}, fmt.Errorf("ascii board: cell %q: %w", cell, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if cell[0] >= 'a' {
				colour = chess.Black
			}
			pieces = append(pieces, chess.NewPiece(kind, colour, chess.Sq(chess.Col(chess.FirstCol+j), rank)))
		}
	}
	return chess.NewBoard(pieces...), nil
}
