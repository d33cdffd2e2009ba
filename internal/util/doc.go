// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the parley TUI:
// crash-safe atomic file writes for the state snapshot, and rune- and
// width-aware string truncation for titles and previews.
package util
