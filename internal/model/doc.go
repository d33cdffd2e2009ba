// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation and message data structures and
// their mutation rules: the append-only message list, in-place reply
// resolution and regeneration, mutually exclusive reactions, and the
// three-word auto-derived title.
//
// The types are plain data; scheduling and persistence live in the store and
// storage packages.
package model
