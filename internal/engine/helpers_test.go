package engine

import (
	"testing"

	"github.com/lgbarn/chessmodel-go/internal/chess"
)

// Black to move, checked along the h-file by the rook on h4 and mated.
const mateOnHFileFEN = "5Brk/2r2p2/p4p2/1pp2P2/3p3R/3P3P/P1n3P1/6K1 b - - 0 1"

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

func mustLegalMoves(t *testing.T, pos Position) []chess.Move {
	t.Helper()
	moves, err := pos.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves() error: %v", err)
	}
	return moves
}
