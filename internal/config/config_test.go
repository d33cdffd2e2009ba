// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Reply.Text != "ok 👍" {
		t.Errorf("Reply.Text = %q", cfg.Reply.Text)
	}
	if cfg.Reply.MinDelayMs != 1800 || cfg.Reply.MaxDelayMs != 2800 {
		t.Errorf("delay bounds = [%d, %d), want [1800, 2800)", cfg.Reply.MinDelayMs, cfg.Reply.MaxDelayMs)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("UI.Theme = %q, want auto", cfg.UI.Theme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Reply.Text != "ok 👍" {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
theme = "light"
sidebar = false

[reply]
text = "sure thing"
min_delay_ms = 100
max_delay_ms = 200

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "light" || cfg.UI.Sidebar {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if cfg.Reply.Text != "sure thing" || cfg.Reply.MinDelayMs != 100 || cfg.Reply.MaxDelayMs != 200 {
		t.Errorf("Reply = %+v", cfg.Reply)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[ui\ntheme ="), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PARLEY_THEME", "dark")
	t.Setenv("PARLEY_REPLY_TEXT", "yep")
	t.Setenv("PARLEY_MIN_DELAY_MS", "5")
	t.Setenv("PARLEY_MAX_DELAY_MS", "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.Reply.Text != "yep" {
		t.Errorf("Reply.Text = %q, want yep", cfg.Reply.Text)
	}
	if cfg.Reply.MinDelayMs != 5 || cfg.Reply.MaxDelayMs != 10 {
		t.Errorf("delay bounds = [%d, %d)", cfg.Reply.MinDelayMs, cfg.Reply.MaxDelayMs)
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Theme = "neon"
	cfg.Reply.Text = ""
	cfg.Reply.MinDelayMs = -50
	cfg.Reply.MaxDelayMs = -100

	cfg.validate()

	if cfg.UI.Theme != "auto" {
		t.Errorf("unknown theme should clamp to auto, got %q", cfg.UI.Theme)
	}
	if cfg.Reply.Text == "" {
		t.Error("empty reply text should fall back to default")
	}
	if cfg.Reply.MinDelayMs != 0 {
		t.Errorf("MinDelayMs = %d, want 0", cfg.Reply.MinDelayMs)
	}
	if cfg.Reply.MaxDelayMs <= cfg.Reply.MinDelayMs {
		t.Error("MaxDelayMs must stay above MinDelayMs")
	}
}

func TestGlobal(t *testing.T) {
	if Global() == nil {
		t.Fatal("Global must never return nil")
	}

	cfg := DefaultConfig()
	cfg.Reply.Text = "custom"
	SetGlobal(cfg)
	defer SetGlobal(nil)

	if Global().Reply.Text != "custom" {
		t.Error("SetGlobal did not take effect")
	}
}
