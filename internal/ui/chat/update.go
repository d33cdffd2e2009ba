// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the Bubble Tea update loop: window sizing, key handling
// per focus, and the async messages produced by commands and the store.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parleychat/parley-tui/internal/logging"
	"github.com/parleychat/parley-tui/internal/store"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// sidebarWidth is the fixed column width of the conversation list.
const sidebarWidth = 30

// minSidebarTermWidth is the narrowest terminal that still shows the sidebar.
const minSidebarTermWidth = 70

// sidebarVisible reports whether the sidebar fits and is enabled.
func (m *Model) sidebarVisible() bool {
	return m.showSidebar && m.width >= minSidebarTermWidth
}

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.pendingCount() > 0 {
			m.renderMessages(m.store.Active())
		}
		return m, cmd

	case StoreChangedMsg:
		m.refresh()
		return m, nil

	case CopyResultMsg:
		if msg.Err != nil {
			// Logged at the store layer; the UI stays quiet.
			return m, nil
		}
		m.statusBar.SetToast("Copied!", false)
		return m, expireToastCmd()

	case toastExpiredMsg:
		m.statusBar.ClearToast()
		return m, nil

	case ExportResultMsg:
		if msg.Err != nil {
			logging.L().Warn().Err(msg.Err).Msg("export failed")
			m.statusBar.SetToast("Export failed", true)
		} else {
			m.statusBar.SetToast("Exported to "+msg.Path, false)
		}
		return m, expireToastCmd()

	case themePersistedMsg:
		if msg.Err != nil {
			logging.L().Warn().Err(msg.Err).Msg("theme preference not saved")
		}
		return m, nil

	case StateFileChangedMsg:
		return m, reloadStateCmd(m.kv)

	case stateReloadedMsg:
		if msg.Err != nil {
			logging.L().Warn().Err(msg.Err).Msg("state reload failed")
			return m, nil
		}
		if msg.Unchanged {
			return m, nil
		}
		m.store.ReplaceAll(msg.Conversations)
		m.refresh()
		return m, nil
	}

	return m.updateFocused(msg)
}

// resize recomputes every component's dimensions.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	chatWidth := width
	if m.sidebarVisible() {
		chatWidth -= sidebarWidth
	}

	headerHeight := 4
	inputHeight := m.input.Height() + 2
	statusHeight := 1
	vpHeight := height - headerHeight - inputHeight - statusHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.sidebar.SetSize(sidebarWidth, vpHeight)
	m.msgView.SetWidth(chatWidth - 2)
	m.viewport.Width = chatWidth
	m.viewport.Height = vpHeight
	m.input.SetWidth(chatWidth - 4)
	m.renameInput.Width = chatWidth - 8

	m.markdown = newMarkdownRenderer(m.mode, chatWidth-8)
	m.msgView.Markdown = m.markdown

	m.renderMessages(m.store.Active())
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first, except while typing a rename.
	if m.focus != focusRename {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewChat):
			m.store.CreateConversation()
			m.returnToInput()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.ToggleTheme):
			return m, m.toggleTheme()
		case key.Matches(msg, m.keys.Export):
			return m, exportCmd(m.exportDir, m.store.Active())
		case key.Matches(msg, m.keys.RenameActive):
			active := m.store.Active()
			m.enterRename(active.ID, active.Title)
			return m, nil
		}
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusBrowse:
		return m.handleBrowseKey(msg)
	case focusSidebar:
		return m.handleSidebarKey(msg)
	case focusRename:
		return m.handleRenameKey(msg)
	}
	return m, nil
}

// handleInputKey handles keys while the textarea has focus.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		if _, ok := m.store.SendMessage(m.store.ActiveID(), text); ok {
			m.input.Reset()
			m.refresh()
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Browse):
		active := m.store.Active()
		if active.IsEmpty() {
			return m, nil
		}
		m.focus = focusBrowse
		m.browseIdx = len(active.Messages) - 1
		m.input.Blur()
		m.statusBar.BrowseMode = true
		m.renderMessages(active)
		return m, nil

	case key.Matches(msg, m.keys.Sidebar):
		if !m.showSidebar {
			m.showSidebar = true
			m.resize(m.width, m.height)
		}
		if !m.sidebarVisible() {
			return m, nil
		}
		m.focus = focusSidebar
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleBrowseKey handles keys while a message is selected.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.store.Active()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.returnToInput()
		m.renderMessages(active)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.browseIdx > 0 {
			m.browseIdx--
		}
		m.renderMessages(active)
		m.viewport.LineUp(2)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.browseIdx < len(active.Messages)-1 {
			m.browseIdx++
		}
		m.renderMessages(active)
		m.viewport.LineDown(2)
		return m, nil

	case key.Matches(msg, m.keys.Like):
		if sel := m.browsedMessage(); sel != nil {
			m.store.ToggleReaction(active.ID, sel.ID, store.ReactionLike)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Dislike):
		if sel := m.browsedMessage(); sel != nil {
			m.store.ToggleReaction(active.ID, sel.ID, store.ReactionDislike)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		if sel := m.browsedMessage(); sel != nil {
			m.store.RegenerateReply(active.ID, sel.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if sel := m.browsedMessage(); sel != nil && !sel.IsPending() {
			return m, copyCmd(m.store, sel.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSidebarKey handles keys while the conversation list has focus.
func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Sidebar):
		m.returnToInput()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.sidebar.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.sidebar.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if sel := m.sidebar.Selected(); sel.ID != "" {
			m.store.SelectConversation(sel.ID)
			m.browseIdx = 0
			m.returnToInput()
			m.refresh()
			m.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if sel := m.sidebar.Selected(); sel.ID != "" {
			m.enterRename(sel.ID, sel.Title)
		}
		return m, nil
	}
	return m, nil
}

// enterRename opens the rename prompt for a conversation, remembering where
// focus should go afterwards.
func (m *Model) enterRename(id, title string) {
	m.renameTarget = id
	m.renameReturn = m.focus
	m.focus = focusRename
	m.input.Blur()
	m.renameInput.SetValue(title)
	m.renameInput.CursorEnd()
	m.renameInput.Focus()
}

// handleRenameKey handles keys while the rename prompt is open.
func (m *Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.renameTarget != "" {
			m.store.RenameConversation(m.renameTarget, m.renameInput.Value())
		}
		m.closeRename()
		m.refresh()
		return m, nil
	case "esc":
		m.closeRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// closeRename dismisses the rename prompt and restores the previous focus.
func (m *Model) closeRename() {
	m.renameInput.Blur()
	m.renameTarget = ""
	m.focus = m.renameReturn
	if m.focus == focusInput {
		m.input.Focus()
	}
}

// returnToInput returns key focus to the textarea.
func (m *Model) returnToInput() {
	m.focus = focusInput
	m.statusBar.BrowseMode = false
	m.input.Focus()
}

// toggleTheme flips dark/light, rebuilds every themed component, and
// persists the preference.
func (m *Model) toggleTheme() tea.Cmd {
	m.mode = m.mode.Toggle()
	m.theme = styles.NewTheme(m.mode)

	m.header.SetTheme(m.theme)
	m.sidebar.SetTheme(m.theme)
	m.statusBar.SetTheme(m.theme)
	m.msgView.SetTheme(m.theme)
	m.spinner.Style = m.theme.Spinner

	chatWidth := m.width
	if m.sidebarVisible() {
		chatWidth -= sidebarWidth
	}
	m.markdown = newMarkdownRenderer(m.mode, chatWidth-8)
	m.msgView.Markdown = m.markdown

	m.renderMessages(m.store.Active())
	return persistThemeCmd(m.kv, m.mode)
}

// updateFocused forwards unclaimed messages to the focused widget.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
