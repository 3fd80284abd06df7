package engine

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/chess"
)

// pieceRules holds the two movement functions of a piece kind.
type pieceRules struct {
	// raw returns the geometrically reachable squares, ignoring occupancy.
	raw func(p chess.Piece) []chess.Square
	// pseudo returns the reachable squares given the board, ignoring check.
	pseudo func(p chess.Piece, board chess.Board) []chess.Square
}

// moveRules maps every piece kind to its movement functions.
var moveRules = [chess.NumKinds]pieceRules{
	chess.Pawn:   {raw: pawnRawMoves, pseudo: pawnPseudoLegalMoves},
	chess.Knight: {raw: knightRawMoves, pseudo: steppingPseudoLegalMoves(knightRawMoves)},
	chess.Bishop: {raw: bishopRawMoves, pseudo: slidingPseudoLegalMoves(bishopRawMoves)},
	chess.Rook:   {raw: rookRawMoves, pseudo: slidingPseudoLegalMoves(rookRawMoves)},
	chess.Queen:  {raw: queenRawMoves, pseudo: slidingPseudoLegalMoves(queenRawMoves)},
	chess.King:   {raw: kingRawMoves, pseudo: steppingPseudoLegalMoves(kingRawMoves)},
}

// rulesFor returns the movement functions for kind.
// An unknown kind is a programming error and panics.
func rulesFor(kind chess.Kind) pieceRules {
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		panic(fmt.Sprintf("engine: no movement rules for piece kind %d", kind))
	}
	return moveRules[kind]
}

// RawMoves returns the squares the piece could reach on an empty board.
func RawMoves(p chess.Piece) []chess.Square {
	return rulesFor(p.Kind).raw(p)
}

// PseudoLegalTargets returns the squares the piece can move to on board,
// without regard to whether its own king would be left in check.
// Castling is not included.
func PseudoLegalTargets(p chess.Piece, board chess.Board) []chess.Square {
	return rulesFor(p.Kind).pseudo(p, board)
}

func knightRawMoves(p chess.Piece) []chess.Square {
	return offsetSquares(p.Square, knightJumps)
}

func bishopRawMoves(p chess.Piece) []chess.Square {
	return diagonalSquares(p.Square)
}

func rookRawMoves(p chess.Piece) []chess.Square {
	return orthogonalSquares(p.Square)
}

func queenRawMoves(p chess.Piece) []chess.Square {
	return append(orthogonalSquares(p.Square), diagonalSquares(p.Square)...)
}

func kingRawMoves(p chess.Piece) []chess.Square {
	return offsetSquares(p.Square, kingSteps)
}

// steppingPseudoLegalMoves filters raw targets to those not holding a piece
// of the mover's colour.
func steppingPseudoLegalMoves(raw func(chess.Piece) []chess.Square) func(chess.Piece, chess.Board) []chess.Square {
	return func(p chess.Piece, board chess.Board) []chess.Square {
		var targets []chess.Square
		for _, to := range raw(p) {
			if isEmptyOrOpponent(board, to, p.Colour) {
				targets = append(targets, to)
			}
		}
		return targets
	}
}

// slidingPseudoLegalMoves additionally requires the squares between the
// piece and the target to be empty.
func slidingPseudoLegalMoves(raw func(chess.Piece) []chess.Square) func(chess.Piece, chess.Board) []chess.Square {
	return func(p chess.Piece, board chess.Board) []chess.Square {
		var targets []chess.Square
		for _, to := range raw(p) {
			if isEmptyOrOpponent(board, to, p.Colour) && isPathClear(board, p.Square, to) {
				targets = append(targets, to)
			}
		}
		return targets
	}
}
