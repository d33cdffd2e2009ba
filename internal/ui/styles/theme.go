// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// MODE
// =============================================================================

// Mode names a theme mode. It round-trips through the persisted preference.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode maps a stored preference string to a Mode, reporting whether the
// value was recognized.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDark:
		return ModeDark, true
	case ModeLight:
		return ModeLight, true
	}
	return ModeDark, false
}

// DetectMode picks a mode from the terminal background. Used when no
// preference has been persisted and the configured default is "auto".
func DetectMode() Mode {
	if termenv.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// GlamourStyle returns the glamour standard style name for the mode.
func (m Mode) GlamourStyle() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application, built from one
// palette. Rebuild it with NewTheme when the mode toggles.
type Theme struct {
	Mode    Mode
	Palette Palette

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	PendingText     lipgloss.Style
	ReactionOn      lipgloss.Style
	ReactionOff     lipgloss.Style
	Timestamp       lipgloss.Style
	FocusedBubble   lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar              lipgloss.Style
	SidebarTitle         lipgloss.Style
	SidebarItem          lipgloss.Style
	SidebarItemSelected  lipgloss.Style
	SidebarItemMeta      lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusToast  lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND PENDING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style
}

// NewTheme builds the full style set for a mode.
func NewTheme(mode Mode) *Theme {
	p := Dark
	if mode == ModeLight {
		p = Light
	}

	t := &Theme{Mode: mode, Palette: p}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.UserBubbleBorder).
		Padding(0, 1)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(p.AssistantBubbleFg).
		Background(p.AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AssistantBubbleBord).
		Padding(0, 1)
	t.PendingText = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)
	t.ReactionOn = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	t.ReactionOff = lipgloss.NewStyle().
		Foreground(p.TextMuted)
	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)
	t.FocusedBubble = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextSecondary)
	t.SidebarItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)
	t.SidebarItemSelected = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)
	t.SidebarItemMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Background(p.SurfaceDim).
		Padding(0, 1)
	t.StatusToast = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	t.StatusError = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Spinner / pending
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)
	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)
}
