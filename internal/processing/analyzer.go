// Package processing analyses positions and move sequences.
package processing

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/hashing"
	"github.com/lgbarn/chessmodel-go/internal/verify"
)

// LineAnalysis holds analysis results from playing a move sequence.
type LineAnalysis struct {
	Final             engine.Position
	Plies             int
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist hashes for repetition detection

	// Extended draw rule detection
	Has75MoveRule      bool
	Has5FoldRepetition bool
}

// ValidationResult holds the result of validating a move sequence.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
}

// PerftResult holds a perft count, optionally divided by root move.
type PerftResult struct {
	Depth  int
	Nodes  uint64
	Divide []engine.DivideEntry
}

// PositionAnalysis is everything computed about a single position.
type PositionAnalysis struct {
	Position             engine.Position
	Hash                 uint64
	InCheck              bool
	Status               engine.GameStatus
	LegalMoves           []chess.Move
	PseudoLegalMoves     []chess.Move
	Attacked             map[chess.Colour][]chess.Square
	InsufficientMaterial bool

	Line   *LineAnalysis
	Perft  *PerftResult
	Verify *verify.Report
}

// AnalyzeLine plays moves from start with legality checks and records
// draw-rule features along the way. It stops at the first illegal move
// and returns the analysis so far together with the error.
func AnalyzeLine(start engine.Position, moves []chess.Move) (*LineAnalysis, error) {
	pos := start
	analysis := &LineAnalysis{Final: start}

	posHash := positionHash(pos)
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}

	for i, m := range moves {
		next, err := engine.PlayMove(pos, m)
		if err != nil {
			return analysis, fmt.Errorf("ply %d: %w", i+1, err)
		}
		pos = next
		analysis.Final = pos
		analysis.Plies++

		// 50-move rule (100 half-moves)
		if pos.HalfmoveClock() >= 100 {
			analysis.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves - automatic draw)
		if pos.HalfmoveClock() >= 150 {
			analysis.Has75MoveRule = true
		}

		if m.IsPromotion() && m.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		posHash = positionHash(pos)
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++

		// 3-fold repetition
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition (automatic draw)
		if positionCount[posHash] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	return analysis, nil
}

// ValidateLine reports whether every move in the sequence is legal.
func ValidateLine(start engine.Position, moves []chess.Move) *ValidationResult {
	result := &ValidationResult{Valid: true}

	pos := start
	for i, m := range moves {
		next, err := engine.PlayMove(pos, m)
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, m)
			result.Err = err
			return result
		}
		pos = next
	}
	return result
}

// AnalyzePosition plays cfg's move list from start, then computes the check
// state, status and move lists of the resulting position, plus perft counts
// and the reference cross-check when configured.
func AnalyzePosition(ctx context.Context, start engine.Position, cfg *config.Config) (*PositionAnalysis, error) {
	pos := start
	analysis := &PositionAnalysis{}

	if cfg.Analysis.Moves != "" {
		moves, err := engine.ParseMoves(cfg.Analysis.Moves)
		if err != nil {
			return nil, err
		}
		if v := ValidateLine(start, moves); !v.Valid {
			return nil, fmt.Errorf("moves: %s: %w", v.ErrorMsg, v.Err)
		}
		line, err := AnalyzeLine(start, moves)
		if err != nil {
			return nil, err
		}
		analysis.Line = line
		pos = line.Final
	}

	analysis.Position = pos
	analysis.Hash = positionHash(pos)
	analysis.InsufficientMaterial = engine.HasInsufficientMaterial(pos)

	var err error
	if analysis.InCheck, err = pos.InCheck(); err != nil {
		return nil, err
	}
	if analysis.LegalMoves, err = pos.LegalMoves(); err != nil {
		return nil, err
	}
	analysis.Status = statusOf(analysis.InCheck, len(analysis.LegalMoves) > 0)

	if cfg.Output.ShowPseudoLegal {
		if analysis.PseudoLegalMoves, err = pos.PseudoLegalMoves(); err != nil {
			return nil, err
		}
	}
	if cfg.Output.ShowAttacks {
		analysis.Attacked = map[chess.Colour][]chess.Square{
			chess.White: attackedList(pos.Board(), chess.White),
			chess.Black: attackedList(pos.Board(), chess.Black),
		}
	}

	if depth := cfg.Analysis.PerftDepth; depth > 0 {
		entries, err := engine.PerftDivide(ctx, pos, depth, perftOptions(cfg)...)
		if err != nil {
			return nil, err
		}
		analysis.Perft = perftResult(depth, entries, cfg.Analysis.Divide)

		// Verify checks this divide; it is not recounted
		if cfg.Analysis.Verify {
			report, err := verify.CompareDivide(ctx, engine.ToFEN(pos), depth, entries)
			if err != nil {
				return nil, err
			}
			analysis.Verify = &report
		}
	}

	return analysis, nil
}

// Matches reports whether the analysis passes the filters. With no filter
// active every position matches.
func (a *PositionAnalysis) Matches(f *config.FilterConfig) bool {
	if !f.Active() {
		return true
	}
	return (f.MatchCheckmate && a.Status == engine.Checkmate) ||
		(f.MatchStalemate && a.Status == engine.Stalemate) ||
		(f.MatchCheck && a.InCheck) ||
		(f.MatchInsufficient && a.InsufficientMaterial)
}

func perftResult(depth int, entries []engine.DivideEntry, divide bool) *PerftResult {
	result := &PerftResult{Depth: depth}
	for _, e := range entries {
		result.Nodes += e.Nodes
	}
	if divide {
		result.Divide = entries
	}
	return result
}

func perftOptions(cfg *config.Config) []engine.PerftOption {
	opts := []engine.PerftOption{engine.WithWorkers(perftWorkers(cfg))}
	if cfg.Analysis.CacheSize > 0 {
		opts = append(opts, engine.WithNodeCache(hashing.NewNodeCache(cfg.Analysis.CacheSize)))
	}
	return opts
}

// perftWorkers is the number of root moves counted concurrently within one
// position. It is independent of cfg.Workers and defaults to 1.
func perftWorkers(cfg *config.Config) int {
	if cfg.Analysis.PerftWorkers > 0 {
		return cfg.Analysis.PerftWorkers
	}
	return 1
}

// statusOf derives the game status from the check state and whether any
// legal move exists.
func statusOf(inCheck, hasMoves bool) engine.GameStatus {
	switch {
	case hasMoves:
		return engine.Ongoing
	case inCheck:
		return engine.Checkmate
	default:
		return engine.Stalemate
	}
}

func attackedList(board chess.Board, by chess.Colour) []chess.Square {
	var squares []chess.Square
	for sq := range engine.AttackedSquares(board, by) {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool {
		return squares[i].String() < squares[j].String()
	})
	return squares
}

func positionHash(pos engine.Position) uint64 {
	return hashing.GenerateZobristHash(pos.Board(), pos.Turn(), pos.CastlingRights())
}
