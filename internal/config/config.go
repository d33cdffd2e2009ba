// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for parley.
//
// Configuration sources, in order of precedence:
//   - PARLEY_* environment variables
//   - ~/.parley/config.toml
//   - Built-in defaults
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete parley configuration.
type Config struct {
	// UI configuration
	UI UIConfig `toml:"ui"`

	// Reply simulation configuration
	Reply ReplyConfig `toml:"reply"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is the default theme when no preference has been persisted:
	// "dark", "light", or "auto" (detect from the terminal background).
	Theme string `toml:"theme"`
	// Sidebar shows the conversation list on start.
	Sidebar bool `toml:"sidebar"`
}

// ReplyConfig controls the simulated assistant.
type ReplyConfig struct {
	// Text is the canned reply every send resolves to.
	Text string `toml:"text"`
	// MinDelayMs / MaxDelayMs bound the uniform random thinking delay.
	// The delay is drawn from [MinDelayMs, MaxDelayMs).
	MinDelayMs int `toml:"min_delay_ms"`
	MaxDelayMs int `toml:"max_delay_ms"`
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	// Dir is the state directory (state file, log, exports).
	// Empty means ~/.parley.
	Dir string `toml:"dir"`
	// WatchState reloads the collection when the state file changes on disk.
	WatchState bool `toml:"watch_state"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is a zerolog level name; unknown values mean "info".
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:   "auto",
			Sidebar: true,
		},
		Reply: ReplyConfig{
			Text:       "ok 👍",
			MinDelayMs: 1800,
			MaxDelayMs: 2800,
		},
		Storage: StorageConfig{
			Dir:        "",
			WatchState: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file at path (empty means the default location),
// layers environment overrides on top of it, and validates the result.
// A missing file is not an error; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = defaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	cfg.validate()
	return cfg, nil
}

// defaultPath returns ~/.parley/config.toml, or "" when the home directory
// cannot be determined.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parley", "config.toml")
}

// applyEnv layers PARLEY_* environment variables over cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PARLEY_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("PARLEY_REPLY_TEXT"); v != "" {
		cfg.Reply.Text = v
	}
	if v := os.Getenv("PARLEY_STATE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("PARLEY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PARLEY_MIN_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reply.MinDelayMs = n
		}
	}
	if v := os.Getenv("PARLEY_MAX_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reply.MaxDelayMs = n
		}
	}
}

// validate clamps out-of-range values instead of failing; a bad config file
// should degrade, not block startup.
func (cfg *Config) validate() {
	switch cfg.UI.Theme {
	case "dark", "light", "auto":
	default:
		cfg.UI.Theme = "auto"
	}
	if cfg.Reply.Text == "" {
		cfg.Reply.Text = DefaultConfig().Reply.Text
	}
	if cfg.Reply.MinDelayMs < 0 {
		cfg.Reply.MinDelayMs = 0
	}
	if cfg.Reply.MaxDelayMs <= cfg.Reply.MinDelayMs {
		cfg.Reply.MaxDelayMs = cfg.Reply.MinDelayMs + 1
	}
}

// StateDir resolves the state directory, defaulting to ~/.parley.
func (cfg *Config) StateDir() (string, error) {
	if cfg.Storage.Dir != "" {
		return cfg.Storage.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley"), nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobal installs cfg as the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide configuration, or defaults when Load was
// never called.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalCfg == nil {
		return DefaultConfig()
	}
	return globalCfg
}
