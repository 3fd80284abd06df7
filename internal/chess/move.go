package chess

// CastleSide names one of the two castling directions.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// CastleSides lists both sides in generation order.
var CastleSides = []CastleSide{Kingside, Queenside}

// String returns the PGN token for the side ("O-O" or "O-O-O").
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Castling geometry for the standard starting squares.
const (
	KingStartCol       Col = 'e'
	KingsideRookCol    Col = 'h'
	QueensideRookCol   Col = 'a'
	KingsideKingToCol  Col = 'g'
	KingsideRookToCol  Col = 'f'
	QueensideKingToCol Col = 'c'
	QueensideRookToCol Col = 'd'
)

// CastlingSquares returns the king and rook start and target squares for a
// colour and side.
func CastlingSquares(colour Colour, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := HomeRank(colour)
	kingFrom = Sq(KingStartCol, rank)
	if side == Kingside {
		return kingFrom, Sq(KingsideKingToCol, rank), Sq(KingsideRookCol, rank), Sq(KingsideRookToCol, rank)
	}
	return kingFrom, Sq(QueensideKingToCol, rank), Sq(QueensideRookCol, rank), Sq(QueensideRookToCol, rank)
}

// CastlingRights records, per colour, which castling sides remain available.
// It says nothing about whether castling is currently possible on the board.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every side available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether colour may still castle on side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return r.WhiteKingside
	case colour == White && side == Queenside:
		return r.WhiteQueenside
	case colour == Black && side == Kingside:
		return r.BlackKingside
	case colour == Black && side == Queenside:
		return r.BlackQueenside
	}
	return false
}

// Sides returns the sides still available to colour.
func (r CastlingRights) Sides(colour Colour) []CastleSide {
	var sides []CastleSide
	for _, side := range CastleSides {
		if r.Has(colour, side) {
			sides = append(sides, side)
		}
	}
	return sides
}

// With returns a copy with the right for colour and side set to allowed.
func (r CastlingRights) With(colour Colour, side CastleSide, allowed bool) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		r.WhiteKingside = allowed
	case colour == White && side == Queenside:
		r.WhiteQueenside = allowed
	case colour == Black && side == Kingside:
		r.BlackKingside = allowed
	case colour == Black && side == Queenside:
		r.BlackQueenside = allowed
	}
	return r
}

// Without returns a copy with colour's right on side revoked.
func (r CastlingRights) Without(colour Colour, side CastleSide) CastlingRights {
	return r.With(colour, side, false)
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (r CastlingRights) String() string {
	var b []byte
	if r.WhiteKingside {
		b = append(b, 'K')
	}
	if r.WhiteQueenside {
		b = append(b, 'Q')
	}
	if r.BlackKingside {
		b = append(b, 'k')
	}
	if r.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Move is either a normal move from one square to another, optionally
// promoting, or a castling token. For castling moves only Castle is set.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
	Castle    CastleSide
}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promoting pawn move.
func NewPromotion(from, to Square, kind Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// NewCastle creates a castling token.
func NewCastle(side CastleSide) Move {
	return Move{Castle: side}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String renders the move in long algebraic form ("e2e4", "e7e8q") or as a
// castling token ("O-O", "O-O-O").
func (m Move) String() string {
	if m.IsCastle() {
		return m.Castle.String()
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}
