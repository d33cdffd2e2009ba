// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistence side-channel for parley: a
// file-backed key-value store holding the conversation collection and the
// theme preference under fixed namespaced keys, with full-overwrite atomic
// writes, forward-compatible defaulting on load, a corruption fallback that
// degrades to an empty store, and an fsnotify watcher for external changes.
package storage
