// Package config holds the cxport configuration, loaded from
// ~/.cxport/config.toml with CXPORT_* environment overrides.
package config

// Config represents the cxport configuration
type Config struct {
	Export ExportConfig `mapstructure:"export" toml:"export"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// ExportConfig configures the GraphML export pipeline
type ExportConfig struct {
	// EdgeDefault is the value of the <graph> edgedefault attribute.
	// CX does not carry edge directedness, so this is a policy choice
	// rather than something derivable from the input.
	EdgeDefault string `mapstructure:"edge_default" toml:"edge_default"`

	// ListDelimiter joins list-valued attributes when rendered as a
	// GraphML string (GraphML has no native list type).
	ListDelimiter string `mapstructure:"list_delimiter" toml:"list_delimiter"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"` // JSON structured logs instead of console output
}
