package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/graphkit/cxport/errors"
)

// Save writes the configuration as TOML to the given path, creating
// the parent directory if needed
func Save(config *Config, path string) error {
	if path == "" {
		return errors.New("no config path available")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Render returns the configuration as TOML text (used by `config show`)
func Render(config *Config) (string, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}
	return string(data), nil
}
