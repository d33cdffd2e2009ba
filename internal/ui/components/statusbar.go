// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom bar: transient toast on the left, pending reply
// count in the middle, shortcut hints on the right.
type StatusBar struct {
	Toast         string // transient notice ("Copied!"), cleared by the model
	ToastIsError  bool
	PendingCount  int // replies still being "thought about"
	Width         int
	ShowShortcuts bool
	BrowseMode    bool // changes which shortcuts are advertised
	theme         *styles.Theme
}

// NewStatusBar creates a StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetTheme swaps the theme after a mode toggle.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetToast installs a transient notice. Error toasts render in the danger
// color.
func (s *StatusBar) SetToast(text string, isError bool) {
	s.Toast = text
	s.ToastIsError = isError
}

// ClearToast removes the transient notice.
func (s *StatusBar) ClearToast() {
	s.Toast = ""
	s.ToastIsError = false
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := s.theme

	left := ""
	switch {
	case s.Toast != "" && s.ToastIsError:
		left = t.StatusError.Render(s.Toast)
	case s.Toast != "":
		left = t.StatusToast.Render(s.Toast)
	}

	center := ""
	if s.PendingCount > 0 {
		center = t.ThinkingText.Render(fmtCount(s.PendingCount, "pending reply"))
	}

	right := ""
	if s.ShowShortcuts {
		right = s.renderShortcuts()
	}

	leftW := lipgloss.Width(left)
	centerW := lipgloss.Width(center)
	rightW := lipgloss.Width(right)

	gap := s.Width - leftW - centerW - rightW - 2
	if gap < 2 {
		gap = 2
	}
	pad1 := strings.Repeat(" ", gap/2)
	pad2 := strings.Repeat(" ", gap-gap/2)

	return t.StatusBar.
		Width(s.Width).
		Render(left + pad1 + center + pad2 + right)
}

// renderShortcuts renders the key hints for the current mode.
func (s *StatusBar) renderShortcuts() string {
	t := s.theme
	key := t.ShortcutKey.Render
	desc := t.ShortcutDesc.Render

	var hints []string
	if s.BrowseMode {
		hints = []string{
			key("j/k") + desc(" move"),
			key("l") + desc(" like"),
			key("d") + desc(" dislike"),
			key("r") + desc(" regen"),
			key("y") + desc(" copy"),
			key("esc") + desc(" back"),
		}
	} else {
		hints = []string{
			key("enter") + desc(" send"),
			key("^n") + desc(" new"),
			key("esc") + desc(" browse"),
			key("^t") + desc(" theme"),
			key("^c") + desc(" quit"),
		}
	}
	return strings.Join(hints, "  ")
}
