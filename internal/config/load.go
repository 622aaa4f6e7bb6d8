package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/hotkeys/internal/input/key"
)

// Format identifies a config file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format for a file path based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvKeys        = "HOTKEYS_KEYS"
	EnvDisabled    = "HOTKEYS_DISABLED"
	EnvLogLevel    = "HOTKEYS_LOG_LEVEL"
	EnvMetricsAddr = "HOTKEYS_METRICS_ADDR"
)

// Load builds a configuration from defaults, the file at path, and the
// process environment, then validates it. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the file at path over c. Fields absent from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.parse(path, format, data)
}

// Parse decodes data in the given format over c.
func (c *Config) Parse(format Format, data []byte) error {
	return c.parse("<"+string(format)+">", format, data)
}

func (c *Config) parse(source string, format Format, data []byte) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, c); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return pe
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvKeys); ok {
		names, err := key.ParseCombination(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidEnv, EnvKeys, err)
		}
		c.HotKeys = names
	}
	if v, ok := lookup(EnvDisabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvDisabled, v)
		}
		c.Disabled = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		c.Metrics.Addr = v
	}
	return nil
}
