// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reply provides the cancellable delayed-task scheduler behind
// simulated assistant replies. Each pending assistant message owns at most
// one timer, keyed by message id; rescheduling replaces the previous timer
// and Stop tears down everything at shutdown.
package reply
