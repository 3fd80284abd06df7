package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/processing"
)

// ReportWriter is the interface for writing position reports.
// Different implementations handle different output formats (text, JSON, FEN).
type ReportWriter interface {
	// WritePosition writes the report for one analysed position.
	WritePosition(source string, a *processing.PositionAnalysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg's output format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	switch cfg.Output.Format {
	case config.JSON:
		if cfg.Output.JSONStream {
			return NewJSONWriterSingle(w, cfg)
		}
		return NewJSONWriter(w, cfg)
	case config.FEN:
		return NewFENWriter(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes human-readable reports.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WritePosition writes a text report.
func (tw *TextWriter) WritePosition(source string, a *processing.PositionAnalysis) error {
	OutputPosition(tw.w, source, a, tw.cfg)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes the position's FEN.
func (fw *FENWriter) WritePosition(_ string, a *processing.PositionAnalysis) error {
	_, err := fmt.Fprintln(fw.w, engine.ToFEN(a.Position))
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONPosition, 0),
		single:    false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(source string, a *processing.PositionAnalysis) error {
	if jw.single {
		return OutputPositionJSON(jw.w, source, a, jw.cfg)
	}

	// Convert now; the analysis may be reused by the caller
	jw.positions = append(jw.positions, PositionToJSON(source, a, jw.cfg))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
