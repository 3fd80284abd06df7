// Package verify cross-checks move generation against an independent
// bitboard move generator.
package verify

import (
	"context"
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// Mismatch is a root move whose subtree counts differ. A count of zero on
// one side means that side did not generate the move at all.
type Mismatch struct {
	Move      string `json:"move"`
	Nodes     uint64 `json:"nodes"`
	Reference uint64 `json:"reference"`
}

// Report is the outcome of comparing one position.
type Report struct {
	FEN        string     `json:"fen"`
	Depth      int        `json:"depth"`
	Nodes      uint64     `json:"nodes"`
	Reference  uint64     `json:"reference"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether both generators agree on every root move.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0 && r.Nodes == r.Reference
}

// Err returns an error wrapping errors.ErrMismatch when the generators
// disagree, and nil otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s depth %d: %d nodes, reference %d, %d root moves differ: %w",
		r.FEN, r.Depth, r.Nodes, r.Reference, len(r.Mismatches), errors.ErrMismatch)
}

// CompareDivide checks a perft divide of depth plies, already computed for
// fen, against the reference generator and reports every root move whose
// counts differ. Castling moves are compared in king-move form ("e1g1").
func CompareDivide(ctx context.Context, fen string, depth int, entries []engine.DivideEntry) (Report, error) {
	if depth < 1 {
		return Report{}, fmt.Errorf("depth %d: must be at least 1: %w", depth, errors.ErrInvalidConfig)
	}

	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return Report{}, err
	}

	ours := make(map[string]uint64, len(entries))
	for _, e := range entries {
		ours[engine.FromCastlingMove(e.Move, pos.Turn()).String()] = e.Nodes
	}

	theirs, err := referenceDivide(ctx, fen, depth)
	if err != nil {
		return Report{}, err
	}

	report := Report{FEN: fen, Depth: depth}
	for _, n := range ours {
		report.Nodes += n
	}
	for _, n := range theirs {
		report.Reference += n
	}
	report.Mismatches = diff(ours, theirs)
	return report, nil
}

// diff lists the moves whose counts differ, sorted by move text.
func diff(ours, theirs map[string]uint64) []Mismatch {
	var mismatches []Mismatch
	for move, n := range ours {
		if ref, ok := theirs[move]; !ok || ref != n {
			mismatches = append(mismatches, Mismatch{Move: move, Nodes: n, Reference: ref})
		}
	}
	for move, ref := range theirs {
		if _, ok := ours[move]; !ok {
			mismatches = append(mismatches, Mismatch{Move: move, Reference: ref})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Move < mismatches[j].Move
	})
	return mismatches
}

func referenceDivide(ctx context.Context, fen string, depth int) (map[string]uint64, error) {
	board := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		unapply := board.Apply(m)
		counts[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return counts, nil
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
