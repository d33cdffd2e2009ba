// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles defines parley's two color palettes and the Theme type that
// turns a palette into ready-to-use Lip Gloss styles. The active mode is a
// user preference persisted across runs, so styles resolve per mode instead
// of relying on adaptive colors.
package styles
