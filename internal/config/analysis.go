package config

import (
	"fmt"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// AnalysisConfig holds settings for what is computed per position.
type AnalysisConfig struct {
	// Moves is a space separated move list played before analysis
	Moves string

	// PerftDepth enables a perft count of this depth (0 = off)
	PerftDepth int

	// Divide breaks the perft count down by root move
	Divide bool

	// Verify cross-checks the perft count against the reference generator
	Verify bool

	// CacheSize bounds the perft node cache (0 = no cache)
	CacheSize int

	// PerftWorkers counts root moves of one position concurrently (0 = 1)
	PerftWorkers int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if (a.Divide || a.Verify) && a.PerftDepth == 0 {
		return fmt.Errorf("divide and verify need a perft depth: %w", errors.ErrInvalidConfig)
	}
	if a.PerftWorkers < 0 {
		return fmt.Errorf("negative perft workers %d: %w", a.PerftWorkers, errors.ErrInvalidConfig)
	}
	if a.CacheSize < 0 {
		return fmt.Errorf("negative cache size %d: %w", a.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
