package config

// FilterConfig selects which positions are reported.
// All filters are off by default; when several are on, a position
// matching any of them is reported.
type FilterConfig struct {
	MatchCheckmate    bool
	MatchStalemate    bool
	MatchCheck        bool
	MatchInsufficient bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false) - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any filter is enabled.
func (f *FilterConfig) Active() bool {
	return f.MatchCheckmate || f.MatchStalemate || f.MatchCheck || f.MatchInsufficient
}
