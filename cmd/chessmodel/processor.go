// processor.go - Position reading, analysis and output
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/hashing"
	"github.com/lgbarn/chessmodel-go/internal/output"
	"github.com/lgbarn/chessmodel-go/internal/processing"
	"github.com/lgbarn/chessmodel-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector
	writer   output.ReportWriter
}

// Stats counts what happened to the input positions.
type Stats struct {
	Read       int
	Output     int
	Duplicates int
	Errors     int
}

// readPositions reads one FEN per line from r. Blank lines and lines
// starting with '#' are skipped. Each item's Source is "name:line".
func readPositions(r io.Reader, name string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			FEN:    line,
			Source: fmt.Sprintf("%s:%d", name, lineNum),
			Index:  len(items),
		})
	}
	return items, scanner.Err()
}

// processPositions analyses items on a worker pool and writes the reports
// that pass the filters in input order. Item indices must run from zero.
func processPositions(ctx context.Context, items []worker.WorkItem, pctx *ProcessingContext) Stats {
	cfg := pctx.cfg
	stats := Stats{Read: len(items)}
	if len(items) == 0 {
		return stats
	}

	processFunc := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		return processPositionWorker(ctx, item, pctx)
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(processFunc, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	pool.Start(ctx)
	cfg.Logf(2, "analysing %d position(s) on %d worker(s)\n", len(items), pool.NumWorkers())

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	worker.Ordered(pool.Results(), func(result worker.ProcessResult) {
		switch {
		case result.Error != nil:
			stats.Errors++
			cfg.Logf(1, "%s: %v\n", result.Source, result.Error)
		case result.Duplicate:
			stats.Duplicates++
			outputDuplicatePosition(result, cfg)
		case result.ShouldOutput:
			analysis, ok := result.Report.(*processing.PositionAnalysis)
			if !ok {
				return
			}
			if err := pctx.writer.WritePosition(result.Source, analysis); err != nil {
				stats.Errors++
				cfg.Logf(1, "%s: writing report: %v\n", result.Source, err)
				return
			}
			stats.Output++
		}
	})

	return stats
}

// processPositionWorker analyses a single position in a worker goroutine.
// This does all the CPU-intensive work that can be safely parallelized.
func processPositionWorker(ctx context.Context, item worker.WorkItem, pctx *ProcessingContext) worker.ProcessResult {
	cfg := pctx.cfg
	result := worker.ProcessResult{
		Index:  item.Index,
		Source: item.Source,
	}

	cfg.Logf(2, "%s: %s\n", item.Source, item.FEN)

	pos, err := engine.ParseFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	// Duplicates are detected on the input position, before analysis
	if pctx.detector != nil {
		sig := hashing.Signature(pos.Board(), pos.Turn(), pos.CastlingRights())
		if pctx.detector.CheckAndAdd(sig) {
			result.Duplicate = true
			result.Report = item.FEN
			return result
		}
	}

	analysis, err := processing.AnalyzePosition(ctx, pos, cfg)
	if err != nil {
		result.Error = err
		return result
	}

	result.Report = analysis
	result.ShouldOutput = analysis.Matches(cfg.Filter)
	return result
}

// outputDuplicatePosition writes the FEN of a suppressed position to the
// duplicate file, if one is configured.
func outputDuplicatePosition(result worker.ProcessResult, cfg *config.Config) {
	if cfg.Duplicate.DuplicateFile == nil {
		return
	}
	if fen, ok := result.Report.(string); ok {
		fmt.Fprintf(cfg.Duplicate.DuplicateFile, "%s # %s\n", fen, result.Source)
	}
}
