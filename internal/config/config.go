// Package config provides configuration for chessmodel.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// OutputFormat selects how position reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable board and move list
	JSON                     // One JSON object per position
	FEN                      // The resulting FEN only
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case FEN:
		return "fen"
	default:
		return "text"
	}
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "fen":
		return FEN, nil
	default:
		return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output    *OutputConfig
	Analysis  *AnalysisConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig

	// Workers is the number of positions analysed concurrently.
	Workers int

	// Input
	CurrentInputFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
