// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface:
//   - Store: state-change notifications from the conversation store
//   - Clipboard: copy results
//   - Toast: transient status bar notices and their expiry
//   - Export: conversation export results
//   - Reload: state file changes detected on disk
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import "github.com/parleychat/parley-tui/internal/model"

// =============================================================================
// STORE MESSAGES
// =============================================================================

// StoreChangedMsg signals that the conversation store mutated, either from a
// key handler or from a reply timer firing on its own goroutine. The view
// re-reads the store on receipt.
type StoreChangedMsg struct{}

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// CopyResultMsg reports a clipboard write. A nil Err shows the copied toast;
// failures stay silent in the UI.
type CopyResultMsg struct {
	MessageID string
	Err       error
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// toastExpiredMsg clears the transient status bar notice.
type toastExpiredMsg struct{}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportResultMsg reports an export to disk.
type ExportResultMsg struct {
	Path string
	Err  error
}

// =============================================================================
// RELOAD MESSAGES
// =============================================================================

// StateFileChangedMsg signals that the state file changed on disk behind the
// running process. Sent by the file watcher.
type StateFileChangedMsg struct{}

// stateReloadedMsg delivers the collection re-read from disk. Unchanged
// means the watcher event came from this process's own write.
type stateReloadedMsg struct {
	Conversations []*model.Conversation
	Unchanged     bool
	Err           error
}

// themePersistedMsg reports the theme preference write. Failures are logged
// only.
type themePersistedMsg struct {
	Err error
}
