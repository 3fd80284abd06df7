package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/engine"
	"github.com/lgbarn/chessmodel-go/internal/processing"
	"github.com/lgbarn/chessmodel-go/internal/verify"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Source               string              `json:"source,omitempty"`
	FEN                  string              `json:"fen"`
	Turn                 string              `json:"turn"` // "white" or "black"
	Castling             string              `json:"castling"`
	InCheck              bool                `json:"inCheck"`
	Status               string              `json:"status"`
	InsufficientMaterial bool                `json:"insufficientMaterial,omitempty"`
	Board                []string            `json:"board,omitempty"`
	LegalMoves           []JSONMove          `json:"legalMoves,omitempty"`
	PseudoLegalMoves     []JSONMove          `json:"pseudoLegalMoves,omitempty"`
	Attacked             map[string][]string `json:"attacked,omitempty"`
	Line                 *JSONLine           `json:"line,omitempty"`
	Perft                *JSONPerft          `json:"perft,omitempty"`
	Verify               *verify.Report      `json:"verify,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
}

// JSONLine summarises a played move sequence.
type JSONLine struct {
	Plies              int  `json:"plies"`
	FiftyMoveRule      bool `json:"fiftyMoveRule,omitempty"`
	SeventyFiveMove    bool `json:"seventyFiveMoveRule,omitempty"`
	Repetition         bool `json:"repetition,omitempty"`
	FivefoldRepetition bool `json:"fivefoldRepetition,omitempty"`
	Underpromotion     bool `json:"underpromotion,omitempty"`
}

// JSONPerft holds a perft count and optional divide table.
type JSONPerft struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// OutputPositionJSON writes a single position as one line of JSON.
func OutputPositionJSON(w io.Writer, source string, a *processing.PositionAnalysis, cfg *config.Config) error {
	return json.NewEncoder(w).Encode(PositionToJSON(source, a, cfg))
}

// PositionToJSON converts an analysed position to JSON format.
func PositionToJSON(source string, a *processing.PositionAnalysis, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{
		Source:               source,
		FEN:                  engine.ToFEN(a.Position),
		Turn:                 colorName(a.Position.Turn()),
		Castling:             a.Position.CastlingRights().String(),
		InCheck:              a.InCheck,
		Status:               a.Status.String(),
		InsufficientMaterial: a.InsufficientMaterial,
		Verify:               a.Verify,
	}

	if cfg.Output.ShowBoard {
		jp.Board = strings.Split(engine.ASCII(a.Position), "\n")
	}
	if cfg.Output.ShowMoves {
		jp.LegalMoves = convertMoveList(a.LegalMoves)
	}
	if cfg.Output.ShowPseudoLegal {
		jp.PseudoLegalMoves = convertMoveList(a.PseudoLegalMoves)
	}
	if a.Attacked != nil {
		jp.Attacked = make(map[string][]string, len(a.Attacked))
		for colour, squares := range a.Attacked {
			names := make([]string, len(squares))
			for i, sq := range squares {
				names[i] = sq.String()
			}
			jp.Attacked[colorName(colour)] = names
		}
	}

	if line := a.Line; line != nil {
		jp.Line = &JSONLine{
			Plies:              line.Plies,
			FiftyMoveRule:      line.HasFiftyMoveRule,
			SeventyFiveMove:    line.Has75MoveRule,
			Repetition:         line.HasRepetition,
			FivefoldRepetition: line.Has5FoldRepetition,
			Underpromotion:     line.HasUnderpromotion,
		}
	}

	if perft := a.Perft; perft != nil {
		jp.Perft = &JSONPerft{Depth: perft.Depth, Nodes: perft.Nodes}
		if len(perft.Divide) > 0 {
			jp.Perft.Divide = make(map[string]uint64, len(perft.Divide))
			for _, e := range perft.Divide {
				jp.Perft.Divide[e.Move.String()] = e.Nodes
			}
		}
	}

	return jp
}

// convertMoveList converts a move list to JSON format.
func convertMoveList(moves []chess.Move) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		result = append(result, convertSingleMove(m))
	}
	return result
}

// convertSingleMove converts a single move to JSON format.
func convertSingleMove(m chess.Move) JSONMove {
	jm := JSONMove{UCI: m.String()}
	if m.IsCastle() {
		jm.Castle = m.Castle.String()
		return jm
	}
	jm.From = m.From.String()
	jm.To = m.To.String()
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the lower-case name of a piece kind.
func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
