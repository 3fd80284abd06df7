// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmodel-go/internal/config"
)

var (
	// Input options
	fenInput  = flag.String("fen", "", "Analyse this FEN instead of reading input files")
	movesList = flag.String("moves", "", "Space separated moves to play before analysis (e.g. 'e2e4 e7e5 O-O')")

	// Output options
	outputFile      = flag.String("o", "", "Output file (default: stdout)")
	appendOutput    = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat    = flag.String("W", "", "Output format: text, json, fen")
	jsonOutput      = flag.Bool("J", false, "Output in JSON format")
	jsonStream      = flag.Bool("json-stream", false, "Output one JSON object per line as each position is analysed")
	lineLength      = flag.Int("w", 75, "Maximum line length of move lists")
	noBoard         = flag.Bool("noboard", false, "Don't draw the board")
	noMoves         = flag.Bool("nomoves", false, "Don't list legal moves")
	showPseudoLegal = flag.Bool("pseudo", false, "Also list pseudo-legal moves")
	showAttacks     = flag.Bool("attacks", false, "List the squares attacked by each side")

	// Analysis options
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to this depth")
	divide       = flag.Bool("divide", false, "Break the perft count down by root move")
	verifyGen    = flag.Bool("verify", false, "Cross-check perft against the reference generator")
	cacheSize    = flag.Int("cache", 0, "Perft node cache entries (0 = no cache)")
	workers      = flag.Int("workers", 1, "Number of positions analysed concurrently")
	perftWorkers = flag.Int("perft-workers", 1, "Number of root moves counted concurrently within one perft")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicate FENs to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Filters
	checkmateFilter    = flag.Bool("checkmate", false, "Only output positions that are checkmate")
	stalemateFilter    = flag.Bool("stalemate", false, "Only output positions that are stalemate")
	checkFilter        = flag.Bool("check", false, "Only output positions with the side to move in check")
	insufficientFilter = flag.Bool("insufficient", false, "Only output positions with insufficient material")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	quiet     = flag.Bool("s", false, "Silent mode (no statistics)")
	verbose   = flag.Bool("v", false, "Report each position as it is read")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds and validates the configuration from the command-line
// flags.
func buildConfig() (*config.Config, error) {
	b := config.NewConfigBuilder()
	if err := applyOutputFormatFlags(b); err != nil {
		return nil, err
	}
	applyContentFlags(b)
	applyAnalysisFlags(b)
	applyFilterFlags(b)
	applyDuplicateFlags(b)

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbose:
		b.WithVerbosity(2)
	}
	b.WithWorkers(*workers)

	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOutputFormatFlags configures the report format.
func applyOutputFormatFlags(b *config.ConfigBuilder) error {
	if *outputFormat != "" {
		format, err := config.ParseOutputFormat(*outputFormat)
		if err != nil {
			return err
		}
		b.WithOutputFormat(format)
	}
	if *jsonOutput || *jsonStream {
		b.WithOutputFormat(config.JSON)
	}
	b.WithJSONStream(*jsonStream)
	return nil
}

// applyContentFlags configures what each report contains.
func applyContentFlags(b *config.ConfigBuilder) {
	b.WithContent(!*noBoard, !*noMoves, *showPseudoLegal, *showAttacks)
	if *lineLength > 0 {
		b.WithLineLength(uint(*lineLength))
	}
}

// applyAnalysisFlags configures the per-position analysis.
func applyAnalysisFlags(b *config.ConfigBuilder) {
	b.WithMoves(*movesList).
		WithPerft(*perftDepth, *divide).
		WithPerftWorkers(*perftWorkers).
		WithVerify(*verifyGen).
		WithCacheSize(*cacheSize)
}

// applyFilterFlags configures the position filters.
func applyFilterFlags(b *config.ConfigBuilder) {
	b.WithFilter(config.FilterConfig{
		MatchCheckmate:    *checkmateFilter,
		MatchStalemate:    *stalemateFilter,
		MatchCheck:        *checkFilter,
		MatchInsufficient: *insufficientFilter,
	})
}

// applyDuplicateFlags configures duplicate detection.
func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicateSuppression(*suppressDuplicates || *duplicateFile != "", *duplicateCapacity)
}
