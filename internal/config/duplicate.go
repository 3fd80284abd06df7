package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress skips positions already seen in this run
	Suppress bool

	// MaxPositions bounds the number of remembered positions (0 = unlimited)
	MaxPositions int

	// DuplicateFile receives the FEN of each suppressed position
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("negative duplicate table size %d: %w", d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
