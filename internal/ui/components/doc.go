// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds the stateless-ish visual pieces the chat model
// composes: header, sidebar, message bubbles, and the status bar. Components
// render from data pushed into them; all input handling lives in the chat
// model.
package components
