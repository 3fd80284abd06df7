// Package output provides position report formatting.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputPosition writes a text report for one analysed position.
// source labels the input the position came from and may be empty.
func OutputPosition(w io.Writer, source string, a *processing.PositionAnalysis, cfg *config.Config) {
	if source != "" {
		fmt.Fprintf(w, "# %s\n", source)
	}

	if cfg.Output.ShowBoard {
		fmt.Fprintln(w, engine.ASCII(a.Position))
	}

	fmt.Fprintf(w, "FEN: %s\n", engine.ToFEN(a.Position))
	fmt.Fprintf(w, "Turn: %s\n", a.Position.Turn())
	fmt.Fprintf(w, "Check: %s\n", yesNo(a.InCheck))
	fmt.Fprintf(w, "Status: %s\n", a.Status)
	if a.InsufficientMaterial {
		fmt.Fprintln(w, "Insufficient material")
	}

	if a.Line != nil {
		outputLine(w, a.Line)
	}

	if cfg.Output.ShowMoves {
		outputMoveList(w, "Legal moves", a.LegalMoves, cfg)
	}
	if cfg.Output.ShowPseudoLegal {
		outputMoveList(w, "Pseudo-legal moves", a.PseudoLegalMoves, cfg)
	}
	if a.Attacked != nil {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			outputSquareList(w, fmt.Sprintf("Attacked by %s", colour), a.Attacked[colour], cfg)
		}
	}

	if a.Perft != nil {
		outputPerft(w, a.Perft)
	}
	if a.Verify != nil {
		outputVerify(w, a)
	}

	// Blank line between positions
	fmt.Fprintln(w)
}

// outputLine summarises the played move sequence.
func outputLine(w io.Writer, line *processing.LineAnalysis) {
	fmt.Fprintf(w, "Plies played: %d\n", line.Plies)

	var notes []string
	if line.Has5FoldRepetition {
		notes = append(notes, "fivefold repetition")
	} else if line.HasRepetition {
		notes = append(notes, "threefold repetition")
	}
	if line.Has75MoveRule {
		notes = append(notes, "75-move rule")
	} else if line.HasFiftyMoveRule {
		notes = append(notes, "50-move rule")
	}
	if line.HasUnderpromotion {
		notes = append(notes, "underpromotion")
	}
	if len(notes) > 0 {
		fmt.Fprintf(w, "Line: %s\n", strings.Join(notes, ", "))
	}
}

// outputMoveList writes a labelled, wrapped move list.
func outputMoveList(w io.Writer, label string, moves []chess.Move, cfg *config.Config) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	ow.WriteNoSpace(fmt.Sprintf("%s (%d):", label, len(moves)))
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}

func outputSquareList(w io.Writer, label string, squares []chess.Square, cfg *config.Config) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	ow.WriteNoSpace(fmt.Sprintf("%s (%d):", label, len(squares)))
	for _, sq := range squares {
		ow.Write(sq.String())
	}
	ow.NewLine()
}

// outputPerft writes the perft total and, when present, the divide table.
func outputPerft(w io.Writer, perft *processing.PerftResult) {
	for _, e := range perft.Divide {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(w, "Perft(%d): %d\n", perft.Depth, perft.Nodes)
}

func outputVerify(w io.Writer, a *processing.PositionAnalysis) {
	report := a.Verify
	if report.OK() {
		fmt.Fprintf(w, "Verify(%d): ok (%d nodes)\n", report.Depth, report.Reference)
		return
	}
	fmt.Fprintf(w, "Verify(%d): MISMATCH %d nodes, reference %d\n", report.Depth, report.Nodes, report.Reference)
	for _, m := range report.Mismatches {
		fmt.Fprintf(w, "  %s: %d, reference %d\n", m.Move, m.Nodes, m.Reference)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
