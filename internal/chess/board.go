package chess

import "unicode"

// Piece is a coloured piece standing on a square. Pieces are values: a moved
// or promoted piece is a new Piece.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square
}

// NewPiece creates a piece of the given kind and colour on sq.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Kind: kind, Colour: colour, Square: sq}
}

// Moved returns a copy of the piece standing on to.
func (p Piece) Moved(to Square) Piece {
	p.Square = to
	return p
}

// Promoted returns a copy of the piece with its kind replaced.
func (p Piece) Promoted(kind Kind) Piece {
	p.Kind = kind
	return p
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight on g1".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Square.String()
}

// Board is a sparse, immutable mapping from square to piece.
// Empty squares are absent. The zero value is an empty board.
//
// Boards are never modified in place; Update returns a fresh copy.
type Board struct {
	squares map[Square]Piece
}

// NewBoard creates a board holding the given pieces. A later piece on the
// same square replaces an earlier one.
func NewBoard(pieces ...Piece) Board {
	squares := make(map[Square]Piece, len(pieces))
	for _, p := range pieces {
		squares[p.Square] = p
	}
	return Board{squares: squares}
}

// Get returns the piece on sq, if any.
func (b Board) Get(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	return p, ok
}

// Occupied reports whether sq holds a piece.
func (b Board) Occupied(sq Square) bool {
	_, ok := b.squares[sq]
	return ok
}

// Len returns the number of pieces on the board.
func (b Board) Len() int {
	return len(b.squares)
}

// Pieces returns every piece in a1, b1, ..., h8 order.
func (b Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.squares))
	for _, sq := range AllSquares() {
		if p, ok := b.squares[sq]; ok {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// PiecesOf returns the pieces of one colour in a1..h8 order.
func (b Board) PiecesOf(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Find returns the first piece of the given kind and colour in a1..h8 order.
func (b Board) Find(kind Kind, colour Colour) (Piece, bool) {
	for _, p := range b.Pieces() {
		if p.Kind == kind && p.Colour == colour {
			return p, true
		}
	}
	return Piece{}, false
}

// Update returns a new board with the squares in remove cleared and then the
// pieces in place set on their own squares. The receiver is unchanged.
func (b Board) Update(remove []Square, place []Piece) Board {
	squares := make(map[Square]Piece, len(b.squares)+len(place))
	for sq, p := range b.squares {
		squares[sq] = p
	}
	for _, sq := range remove {
		delete(squares, sq)
	}
	for _, p := range place {
		squares[p.Square] = p
	}
	return Board{squares: squares}
}

// Equal reports whether two boards hold the same pieces on the same squares.
func (b Board) Equal(other Board) bool {
	if len(b.squares) != len(other.squares) {
		return false
	}
	for sq, p := range b.squares {
		if q, ok := other.squares[sq]; !ok || q != p {
			return false
		}
	}
	return true
}

// StandardPieces returns the pieces of the standard starting position.
func StandardPieces() []Piece {
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	pieces := make([]Piece, 0, 32)
	for i, kind := range backRank {
		col := Col(FirstCol + i)
		pieces = append(pieces,
			NewPiece(kind, White, Sq(col, '1')),
			NewPiece(Pawn, White, Sq(col, '2')),
			NewPiece(Pawn, Black, Sq(col, '7')),
			NewPiece(kind, Black, Sq(col, '8')),
		)
	}
	return pieces
}
