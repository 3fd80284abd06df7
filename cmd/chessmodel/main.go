// chessmodel analyses chess positions given in FEN: legal moves, check and
// game status, perft counts and a cross-check against a reference generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/hashing"
	"github.com/lgbarn/chessmodel-go/internal/output"
	"github.com/lgbarn/chessmodel-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmodel version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pctx := &ProcessingContext{
		cfg:      cfg,
		detector: setupDuplicateDetector(cfg),
		writer:   output.NewWriter(cfg.OutputFile, cfg),
	}

	stats := processAllInputs(ctx, pctx)

	if err := pctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, pctx.detector, stats)
	}

	if stats.Errors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector creates the duplicate detector when suppression is on.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.Duplicate.Suppress {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxPositions)
}

// processAllInputs processes the -fen position, the input files, or stdin.
func processAllInputs(ctx context.Context, pctx *ProcessingContext) Stats {
	if *fenInput != "" {
		item := worker.WorkItem{FEN: *fenInput, Source: "", Index: 0}
		return processPositions(ctx, []worker.WorkItem{item}, pctx)
	}

	args := flag.Args()
	if len(args) == 0 {
		return processReader(ctx, os.Stdin, "stdin", pctx)
	}

	var total Stats
	for _, filename := range args {
		if ctx.Err() != nil {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			total.Errors++
			continue
		}

		pctx.cfg.CurrentInputFile = filename
		total = total.add(processReader(ctx, file, filename, pctx))

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	return total
}

// processReader reads and processes every position in r.
func processReader(ctx context.Context, r io.Reader, name string, pctx *ProcessingContext) Stats {
	items, err := readPositions(r, name)
	stats := processPositions(ctx, items, pctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
		stats.Errors++
	}
	return stats
}

func (s Stats) add(other Stats) Stats {
	s.Read += other.Read
	s.Output += other.Output
	s.Duplicates += other.Duplicates
	s.Errors += other.Errors
	return s
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, detector *hashing.ThreadSafeDuplicateDetector, stats Stats) {
	if detector != nil {
		fmt.Fprintf(w, "%d position(s) output, %d duplicate(s) out of %d.\n", stats.Output, stats.Duplicates, stats.Read)
	} else {
		fmt.Fprintf(w, "%d position(s) output out of %d.\n", stats.Output, stats.Read)
	}
	if stats.Errors > 0 {
		fmt.Fprintf(w, "%d error(s).\n", stats.Errors)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmodel [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses chess positions, one FEN per input line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Board, status and move lists (default)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON document with one entry per position\n")
	fmt.Fprintf(os.Stderr, "         (-json-stream: one JSON object per line instead)\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN of each position after -moves\n")
}
