// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"dark", ModeDark, true},
		{"light", ModeLight, true},
		{"", ModeDark, false},
		{"neon", ModeDark, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestModeToggle(t *testing.T) {
	if ModeDark.Toggle() != ModeLight {
		t.Error("dark should toggle to light")
	}
	if ModeLight.Toggle() != ModeDark {
		t.Error("light should toggle to dark")
	}
	if got := ModeDark.Toggle().Toggle(); got != ModeDark {
		t.Errorf("double toggle = %v, want dark", got)
	}
}

func TestModeGlamourStyle(t *testing.T) {
	if ModeDark.GlamourStyle() != "dark" || ModeLight.GlamourStyle() != "light" {
		t.Error("glamour style names must match the standard style set")
	}
}

func TestNewThemeUsesModePalette(t *testing.T) {
	dark := NewTheme(ModeDark)
	light := NewTheme(ModeLight)

	if dark.Mode != ModeDark || light.Mode != ModeLight {
		t.Fatal("theme must record its mode")
	}
	if dark.Palette.Surface == light.Palette.Surface {
		t.Error("dark and light palettes should differ")
	}
	if dark.Palette != Dark {
		t.Error("dark theme should carry the Dark palette")
	}
	if light.Palette != Light {
		t.Error("light theme should carry the Light palette")
	}
}

func TestThemeStylesInitialized(t *testing.T) {
	th := NewTheme(ModeDark)

	// Spot-check that initStyles wired the palette through.
	if th.UserBubble.GetBackground() != th.Palette.UserBubbleBg {
		t.Error("user bubble background not taken from palette")
	}
	if th.SidebarItemSelected.GetBackground() != th.Palette.Accent {
		t.Error("selected sidebar item should use the accent")
	}
	if !th.StatusToast.GetBold() {
		t.Error("status toast should be bold")
	}
}
