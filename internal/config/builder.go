package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config. It does not validate it.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONStream writes each JSON report as soon as it is ready.
func (b *ConfigBuilder) WithJSONStream(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONStream = enabled
	return b
}

// WithContent selects the optional sections of each report.
func (b *ConfigBuilder) WithContent(board, moves, pseudoLegal, attacks bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = board
	b.cfg.Output.ShowMoves = moves
	b.cfg.Output.ShowPseudoLegal = pseudoLegal
	b.cfg.Output.ShowAttacks = attacks
	return b
}

// WithLineLength sets the wrap width of move lists. Zero keeps the default.
func (b *ConfigBuilder) WithLineLength(n uint) *ConfigBuilder {
	if n > 0 {
		b.cfg.Output.MaxLineLength = n
	}
	return b
}

// WithMoves sets the moves played before analysis.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Analysis.Moves = moves
	return b
}

// WithPerft enables a perft count of the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	b.cfg.Analysis.Divide = divide
	return b
}

// WithPerftWorkers sets how many root moves of one position are counted
// concurrently.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.PerftWorkers = n
	return b
}

// WithCacheSize bounds the perft node cache.
func (b *ConfigBuilder) WithCacheSize(n int) *ConfigBuilder {
	b.cfg.Analysis.CacheSize = n
	return b
}

// WithVerify enables the reference cross-check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.Verify = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression with a table of
// at most capacity entries (0 = unlimited).
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.MaxPositions = capacity
	return b
}

// WithFilter replaces the position filters.
func (b *ConfigBuilder) WithFilter(f FilterConfig) *ConfigBuilder {
	*b.cfg.Filter = f
	return b
}

// WithWorkers sets the number of concurrent workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
