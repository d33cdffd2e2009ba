// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/storage"
	"github.com/parleychat/parley-tui/internal/store"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// =============================================================================
// COMMANDS
// =============================================================================

// toastDuration is how long transient notices stay in the status bar.
const toastDuration = 1500 * time.Millisecond

// copyCmd writes a message's text to the clipboard off the update loop.
func copyCmd(st *store.Store, msgID string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{MessageID: msgID, Err: st.CopyMessageText(msgID)}
	}
}

// expireToastCmd schedules the toast to clear.
func expireToastCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// persistThemeCmd writes the theme preference.
func persistThemeCmd(kv *storage.KV, mode styles.Mode) tea.Cmd {
	return func() tea.Msg {
		return themePersistedMsg{Err: storage.SaveTheme(kv, string(mode))}
	}
}

// exportCmd writes the conversation next to the state file, both as markdown
// and as a JSON document with the same base name.
func exportCmd(dir string, conv *model.Conversation) tea.Cmd {
	return func() tea.Msg {
		base := filepath.Join(dir, "parley-"+conv.ID+"-"+time.Now().Format("20060102-150405"))
		mdPath := base + ".md"
		if err := os.WriteFile(mdPath, []byte(storage.ExportMarkdown(conv)), 0o644); err != nil {
			return ExportResultMsg{Path: mdPath, Err: err}
		}
		data, err := storage.ExportJSON(conv)
		if err == nil {
			err = os.WriteFile(base+".json", data, 0o644)
		}
		return ExportResultMsg{Path: mdPath, Err: err}
	}
}

// reloadStateCmd re-reads the state file after the watcher reported a
// change. Events caused by this process's own writes reload nothing.
func reloadStateCmd(kv *storage.KV) tea.Cmd {
	return func() tea.Msg {
		changed, err := kv.ReloadIfChanged()
		if err != nil {
			return stateReloadedMsg{Err: err}
		}
		if !changed {
			return stateReloadedMsg{Unchanged: true}
		}
		convs, err := storage.LoadConversations(kv)
		return stateReloadedMsg{Conversations: convs, Err: err}
	}
}
