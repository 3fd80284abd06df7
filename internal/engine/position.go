package engine

import "github.com/lgbarn/chessmodel-go/internal/chess"

// Position bundles a board, the side to move and the castling rights.
// A Position is a value: every operation that changes the board returns a
// new Position and leaves the receiver untouched, so positions can be
// shared between goroutines and branched freely.
//
// The en passant target and the clocks are carried so that a position
// parsed from FEN can be written back, but the legality engine never
// consults them.
type Position struct {
	board         chess.Board
	turn          chess.Colour
	castling      chess.CastlingRights
	enPassant     chess.Square
	halfmoveClock uint
	moveNumber    uint
}

// NewPosition creates a position from its parts.
func NewPosition(board chess.Board, turn chess.Colour, castling chess.CastlingRights) Position {
	return Position{
		board:      board,
		turn:       turn,
		castling:   castling,
		moveNumber: 1,
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return NewPosition(chess.NewBoard(chess.StandardPieces()...), chess.White, chess.AllCastlingRights())
}

// Board returns the position's board.
func (p Position) Board() chess.Board { return p.board }

// Turn returns the side to move.
func (p Position) Turn() chess.Colour { return p.turn }

// CastlingRights returns the castling rights of both sides.
func (p Position) CastlingRights() chess.CastlingRights { return p.castling }

// EnPassant returns the en passant target square parsed from FEN, if any.
func (p Position) EnPassant() (chess.Square, bool) {
	return p.enPassant, p.enPassant.Valid()
}

// HalfmoveClock returns the half-move clock parsed from FEN.
func (p Position) HalfmoveClock() uint { return p.halfmoveClock }

// MoveNumber returns the full-move number parsed from FEN.
func (p Position) MoveNumber() uint { return p.moveNumber }

// WithTurn returns a copy of the position with a different side to move.
func (p Position) WithTurn(turn chess.Colour) Position {
	p.turn = turn
	return p
}

// WithCastlingRights returns a copy of the position with different rights.
func (p Position) WithCastlingRights(rights chess.CastlingRights) Position {
	p.castling = rights
	return p
}

// WithBoard returns a copy of the position with a different board.
func (p Position) WithBoard(board chess.Board) Position {
	p.board = board
	return p
}

// Equal reports whether two positions have the same board, turn and rights.
// The clocks and en passant square are ignored.
func (p Position) Equal(other Position) bool {
	return p.turn == other.turn &&
		p.castling == other.castling &&
		p.board.Equal(other.board)
}

// String returns the FEN of the position.
func (p Position) String() string {
	return ToFEN(p)
}
