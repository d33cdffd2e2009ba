// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file composes the final frame: header, optional sidebar beside the
// message viewport, the input area (or rename prompt), and the status bar.
package chat

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the whole chat interface.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.header.View()

	body := m.viewport.View()
	if m.sidebarVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), body)
	}

	var inputArea string
	if m.focus == focusRename {
		inputArea = m.theme.InputContainer.Render(
			m.theme.InputPrompt.Render("Rename: ") + m.renameInput.View(),
		)
	} else {
		inputArea = m.theme.InputContainer.Render(m.input.View())
	}

	status := m.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, inputArea, status)
}
