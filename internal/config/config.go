package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dshills/hotkeys/internal/logging"
)

// Config is the shortcut host configuration.
type Config struct {
	// HotKeys is the combination that triggers the action.
	HotKeys []string `toml:"hotkeys" yaml:"hotkeys"`

	// Quit is the combination that stops the host.
	Quit []string `toml:"quit" yaml:"quit"`

	// Disabled switches matching off without detaching the listener.
	Disabled bool `toml:"disabled" yaml:"disabled"`

	Action  ActionConfig  `toml:"action" yaml:"action"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// ActionConfig describes what happens on a match.
type ActionConfig struct {
	// Message is printed on every match.
	Message string `toml:"message" yaml:"message"`

	// Script is an optional Lua snippet run on every match.
	Script string `toml:"script" yaml:"script"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	JSON  bool   `toml:"json" yaml:"json"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address; empty disables the endpoint.
	Addr string `toml:"addr" yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HotKeys: []string{"control", "k"},
		Quit:    []string{"control", "c"},
		Action: ActionConfig{
			Message: "hotkey pressed",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hotkeys", "config.toml")
}

// Validate checks settings that can be checked without the engine.
func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.HotKeys = slices.Clone(c.HotKeys)
	out.Quit = slices.Clone(c.Quit)
	return &out
}

// SameHotKeys reports whether both configs declare the same combination,
// entry for entry.
func (c *Config) SameHotKeys(other *Config) bool {
	return slices.Equal(c.HotKeys, other.HotKeys)
}
