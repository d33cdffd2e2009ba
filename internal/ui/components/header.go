// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the parley TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: brand on the left, the active conversation title
// centered, message count on the right.
type Header struct {
	Brand        string
	Title        string
	MessageCount int
	Width        int
	theme        *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Brand: "parley",
		Title: "",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTheme swaps the theme after a mode toggle.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// SetConversation updates the displayed conversation title and count.
func (h *Header) SetConversation(title string, messageCount int) {
	h.Title = title
	h.MessageCount = messageCount
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	t := h.theme
	brand := t.HeaderTitle.Render("< " + h.Brand + " >")

	title := h.Title
	if title == "" {
		title = "—"
	}
	titleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand + "  " + t.HeaderSubtitle.Render(title))

	countLine := ""
	if h.MessageCount > 0 {
		countLine = lipgloss.NewStyle().
			Width(innerWidth).
			Align(lipgloss.Center).
			Render(t.HeaderSubtitle.Render(fmtCount(h.MessageCount, "message")))
	}

	content := titleLine
	if countLine != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, titleLine, countLine)
	}

	return t.Header.Width(width).Render(content)
}

// ViewCompact renders a single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	t := h.theme
	brand := t.HeaderTitle.Render("<parley>")
	if h.Title == "" {
		return brand
	}
	sep := t.HeaderSubtitle.Render(" | ")
	return brand + sep + t.HeaderSubtitle.Render(h.Title)
}
