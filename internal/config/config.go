// Package config loads the optional on-disk YAML configuration that tunes
// cmd/golox's ambient behavior (prelude source, array-printing width)
// without touching language semantics. HistoryFile is decoded but cmd/golox
// does not read it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where cmd/golox looks for configuration when -config is
// not given.
const DefaultPath = ".golox.yaml"

// Config is the decoded contents of a configuration file. Every field is
// optional; a zero Config behaves like Default().
type Config struct {
	PreludePath     string `yaml:"prelude_path"`
	HistoryFile     string `yaml:"history_file"`
	MaxArrayPreview int    `yaml:"max_array_preview"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{}
}

// Load reads and decodes the YAML file at path. A missing file is not an
// error; Load returns Default() in that case. An unreadable or malformed
// file is returned as an error, which callers treat as a usage error (exit
// 64).
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
