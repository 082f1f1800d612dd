// Package config loads the cursorbuf cli configuration from a yaml or toml
// file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the cli configuration.
type Config struct {
	OutputFormat string `yaml:"output_format" toml:"output_format" json:"output_format"`
	Encoding     string `yaml:"encoding" toml:"encoding" json:"encoding"`
	Log          bool   `yaml:"log" toml:"log" json:"log"`
}

// DefaultPath returns the default config file path: ~/.cursorbuf/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cursorbuf", "config.yaml")
	}
	return filepath.Join(home, ".cursorbuf", "config.yaml")
}

// Load reads the configuration from path, decoding it as toml when the file
// ends in .toml and as yaml otherwise.
// If the file does not exist, it returns a default Config with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		OutputFormat: "table",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	return cfg, nil
}
