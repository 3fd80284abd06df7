package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessmodel-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x1f3d5b79

var (
	pieceKeys    [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	castlingKeys [2][3]uint64
	turnKey      uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	for colour := range castlingKeys {
		for side := range castlingKeys[colour] {
			castlingKeys[colour][side] = rng.Uint64()
		}
	}
	turnKey = rng.Uint64()
}

// squareIndex maps a square to 0..63 in a1..h8 order.
func squareIndex(sq chess.Square) int {
	c := sq.Coords()
	return c.Y*chess.BoardSize + c.X
}

// GenerateZobristHash hashes the board, the side to move and the castling
// rights. Equal positions always hash equally; the clocks and the en
// passant square are not part of the key.
func GenerateZobristHash(board chess.Board, turn chess.Colour, rights chess.CastlingRights) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		hash ^= pieceKeys[p.Colour][p.Kind][squareIndex(p.Square)]
	}
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		for _, side := range chess.CastleSides {
			if rights.Has(colour, side) {
				hash ^= castlingKeys[colour][side]
			}
		}
	}
	if turn == chess.White {
		hash ^= turnKey
	}
	return hash
}

// WeakHash is a cheap additive hash of the piece placement only.
func WeakHash(board chess.Board) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		hash += uint64(squareIndex(p.Square)+1) * uint64(int(p.Kind)*2+int(p.Colour)+1)
	}
	return hash
}
