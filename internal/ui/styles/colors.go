// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the parley TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Palette holds the raw colors for one theme mode. Parley supports an
// explicit, persisted dark/light toggle, so colors resolve per mode rather
// than through terminal background detection.
type Palette struct {
	// Accents
	Accent     lipgloss.Color // brand color, selections, user highlights
	AccentSoft lipgloss.Color // accent for backgrounds

	// Semantic
	Success lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color

	// Surfaces
	Surface       lipgloss.Color // main background
	SurfaceDim    lipgloss.Color // headers, footers
	SurfaceBright lipgloss.Color // highlights, selected rows
	Overlay       lipgloss.Color // borders, separators

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color

	// Message bubbles
	UserBubbleBg        lipgloss.Color
	UserBubbleFg        lipgloss.Color
	UserBubbleBorder    lipgloss.Color
	AssistantBubbleBg   lipgloss.Color
	AssistantBubbleFg   lipgloss.Color
	AssistantBubbleBord lipgloss.Color
}

// Dark is the default palette, Catppuccin Mocha leaning.
var Dark = Palette{
	Accent:     lipgloss.Color("#A78BFA"),
	AccentSoft: lipgloss.Color("#4C1D95"),

	Success: lipgloss.Color("#34D399"),
	Danger:  lipgloss.Color("#FB7185"),
	Warning: lipgloss.Color("#FBBF24"),

	Surface:       lipgloss.Color("#1E1E2E"),
	SurfaceDim:    lipgloss.Color("#181825"),
	SurfaceBright: lipgloss.Color("#313244"),
	Overlay:       lipgloss.Color("#45475A"),

	TextPrimary:   lipgloss.Color("#CDD6F4"),
	TextSecondary: lipgloss.Color("#A6ADC8"),
	TextMuted:     lipgloss.Color("#6C7086"),
	TextInverse:   lipgloss.Color("#1E1E2E"),

	UserBubbleBg:        lipgloss.Color("#1D4ED8"),
	UserBubbleFg:        lipgloss.Color("#E0F2FE"),
	UserBubbleBorder:    lipgloss.Color("#3B82F6"),
	AssistantBubbleBg:   lipgloss.Color("#3B3655"),
	AssistantBubbleFg:   lipgloss.Color("#E9E4F5"),
	AssistantBubbleBord: lipgloss.Color("#A78BFA"),
}

// Light is the light-background palette, Catppuccin Latte leaning.
var Light = Palette{
	Accent:     lipgloss.Color("#7C3AED"),
	AccentSoft: lipgloss.Color("#DDD6FE"),

	Success: lipgloss.Color("#059669"),
	Danger:  lipgloss.Color("#E11D48"),
	Warning: lipgloss.Color("#D97706"),

	Surface:       lipgloss.Color("#FFFFFF"),
	SurfaceDim:    lipgloss.Color("#F5F5F5"),
	SurfaceBright: lipgloss.Color("#FAFAFA"),
	Overlay:       lipgloss.Color("#D4D4D4"),

	TextPrimary:   lipgloss.Color("#1F2937"),
	TextSecondary: lipgloss.Color("#6B7280"),
	TextMuted:     lipgloss.Color("#9CA3AF"),
	TextInverse:   lipgloss.Color("#FFFFFF"),

	UserBubbleBg:        lipgloss.Color("#DBEAFE"),
	UserBubbleFg:        lipgloss.Color("#1E40AF"),
	UserBubbleBorder:    lipgloss.Color("#3B82F6"),
	AssistantBubbleBg:   lipgloss.Color("#F5F3FF"),
	AssistantBubbleFg:   lipgloss.Color("#5B4B8A"),
	AssistantBubbleBord: lipgloss.Color("#C4B5FD"),
}
