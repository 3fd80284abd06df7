package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/hashing"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftOption configures a perft walk.
type PerftOption func(*perftConfig)

type perftConfig struct {
	workers int
	cache   *hashing.NodeCache
}

// WithWorkers walks up to n root moves concurrently. n <= 1 walks serially.
func WithWorkers(n int) PerftOption {
	return func(c *perftConfig) { c.workers = n }
}

// WithNodeCache memoises subtree counts in cache, keyed by position hash
// and remaining depth.
func WithNodeCache(cache *hashing.NodeCache) PerftOption {
	return func(c *perftConfig) { c.cache = cache }
}

// Perft counts the leaf nodes of the legal move tree of depth plies below p.
// Moves are played with Advance, so the side to move alternates and
// castling rights follow the game. En passant captures are not generated.
func Perft(ctx context.Context, p Position, depth int, opts ...PerftOption) (uint64, error) {
	entries, err := PerftDivide(ctx, p, depth, opts...)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// PerftDivide is Perft broken down by root move, sorted by move text.
// Depth 0 yields no entries.
func PerftDivide(ctx context.Context, p Position, depth int, opts ...PerftOption) ([]DivideEntry, error) {
	cfg := perftConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if depth <= 0 {
		return nil, nil
	}

	moves, err := p.LegalMoves()
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	for i, m := range moves {
		g.Go(func() error {
			child, err := Advance(p, m)
			if err != nil {
				return p.moveError(m, err)
			}
			nodes, err := perft(ctx, child, depth-1, cfg.cache)
			if err != nil {
				return err
			}
			entries[i] = DivideEntry{Move: m, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, nil
}

func perft(ctx context.Context, p Position, depth int, cache *hashing.NodeCache) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var key uint64
	if cache != nil {
		key = hashing.GenerateZobristHash(p.board, p.turn, p.castling)
		if nodes, ok := cache.Get(key, depth); ok {
			return nodes, nil
		}
	}

	moves, err := p.LegalMoves()
	if err != nil {
		return 0, err
	}

	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			child, err := Advance(p, m)
			if err != nil {
				return 0, p.moveError(m, err)
			}
			n, err := perft(ctx, child, depth-1, cache)
			if err != nil {
				return 0, err
			}
			nodes += n
		}
	}

	if cache != nil {
		cache.Put(key, depth, nodes)
	}
	return nodes, nil
}
