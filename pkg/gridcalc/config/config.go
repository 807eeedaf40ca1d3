// Package config loads gridcalc settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc"
)

// Config holds user-tunable settings.
type Config struct {
	// MaxDepth bounds dependency chains walked per edit.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Pretty enables indented JSON output.
	Pretty bool `toml:"pretty" yaml:"pretty"`
	// Sheet selects the workbook sheet to import.
	Sheet string `toml:"sheet" yaml:"sheet"`
}

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxDepth: gridcalc.DefaultMaxDepth,
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. A missing file is not an error. The
// format follows the extension: .toml, or .yaml/.yml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data over the defaults, choosing the format by the
// extension of name.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, &ParseError{Path: name, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, &ParseError{Path: name, Err: err}
		}
	default:
		return cfg, &ParseError{Path: name, Err: fmt.Errorf("unsupported format %q", ext)}
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, &ParseError{Path: name, Err: err}
	}
	if cfg.MaxDepth < 0 {
		return cfg, &ParseError{Path: name, Err: fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)}
	}

	return cfg, nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Options converts the settings into engine options using logger.
func (c Config) Options(logger *zerolog.Logger) gridcalc.Options {
	return gridcalc.Options{
		MaxDepth: c.MaxDepth,
		Logger:   logger,
	}
}
