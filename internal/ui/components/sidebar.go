// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/ui/styles"
	"github.com/parleychat/parley-tui/internal/util"
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar lists all conversations, newest-created first, with the active one
// highlighted. Cursor and activation are driven by the chat model.
type Sidebar struct {
	Metas    []model.Meta
	ActiveID string
	Cursor   int
	Width    int
	Height   int
	theme    *styles.Theme
}

// NewSidebar creates a Sidebar with default dimensions.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{
		Width:  28,
		Height: 20,
		theme:  theme,
	}
}

// SetTheme swaps the theme after a mode toggle.
func (s *Sidebar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetSize updates the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetConversations replaces the listed metas and clamps the cursor. The
// cursor follows the active conversation when it moved in the list.
func (s *Sidebar) SetConversations(metas []model.Meta, activeID string) {
	s.Metas = metas
	s.ActiveID = activeID
	for i, m := range metas {
		if m.ID == activeID {
			s.Cursor = i
			return
		}
	}
	if s.Cursor >= len(metas) {
		s.Cursor = max(0, len(metas)-1)
	}
}

// CursorUp moves the cursor toward the top of the list.
func (s *Sidebar) CursorUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// CursorDown moves the cursor toward the bottom of the list.
func (s *Sidebar) CursorDown() {
	if s.Cursor < len(s.Metas)-1 {
		s.Cursor++
	}
}

// Selected returns the meta under the cursor, or a zero Meta when empty.
func (s *Sidebar) Selected() model.Meta {
	if s.Cursor < 0 || s.Cursor >= len(s.Metas) {
		return model.Meta{}
	}
	return s.Metas[s.Cursor]
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	t := s.theme
	innerWidth := s.Width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}

	var b strings.Builder
	b.WriteString(t.SidebarTitle.Render("Conversations"))
	b.WriteString("\n\n")

	now := time.Now()
	for i, m := range s.Metas {
		title := util.TruncateWidth(m.Title, innerWidth)
		line := title
		if when := fmtRelativeTime(m.UpdatedAt, now); when != "" {
			line = title + "\n" + t.SidebarItemMeta.Render(when)
		}

		style := t.SidebarItem
		if i == s.Cursor {
			style = t.SidebarItemSelected
		} else if m.ID == s.ActiveID {
			style = t.SidebarItem.Bold(true)
		}
		b.WriteString(style.Width(innerWidth + 2).Render(line))
		b.WriteString("\n")
	}

	return t.Sidebar.
		Width(s.Width).
		Height(s.Height).
		Render(b.String())
}
