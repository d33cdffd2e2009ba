// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads parley's TOML configuration with environment
// overrides and clamping validation. Settings cover the default theme, the
// canned reply text and its delay bounds, the state directory, and the log
// level.
package config
