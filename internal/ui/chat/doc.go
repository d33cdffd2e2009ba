// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Bubble Tea front end: one Model composed of the header,
// sidebar, message viewport, input area, and status bar, driven by the
// conversation store. The store owns all state; the chat model reads it after
// every mutation and never caches conversation data of its own.
package chat
