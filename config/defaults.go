package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Export defaults
	v.SetDefault("export.edge_default", "directed")
	v.SetDefault("export.list_delimiter", "|")

	// Log defaults
	v.SetDefault("log.json", false)
}

// Default returns a Config populated with the default values only
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// Unmarshal of pure defaults cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}
