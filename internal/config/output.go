package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text, JSON or FEN-only reports
	Format OutputFormat

	// JSONStream writes one JSON object per line as positions finish,
	// instead of a single document at the end
	JSONStream bool

	// ShowBoard includes the ASCII board in text reports
	ShowBoard bool

	// ShowMoves includes the legal move list
	ShowMoves bool

	// ShowPseudoLegal also lists the pseudo-legal moves
	ShowPseudoLegal bool

	// ShowAttacks includes the squares attacked by each side
	ShowAttacks bool

	// MaxLineLength wraps move lists in text reports
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		ShowBoard: true,
		ShowMoves: true,

		MaxLineLength: 75,
	}
}
