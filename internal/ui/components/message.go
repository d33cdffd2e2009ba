// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MarkdownRenderer turns assistant markdown into styled terminal output.
// Satisfied by *glamour.TermRenderer.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

// MessageView renders one message as a chat bubble. User messages sit on the
// right, assistant messages on the left.
type MessageView struct {
	Width    int
	Markdown MarkdownRenderer
	theme    *styles.Theme
}

// NewMessageView creates a message renderer.
func NewMessageView(theme *styles.Theme, md MarkdownRenderer) *MessageView {
	return &MessageView{
		Width:    80,
		Markdown: md,
		theme:    theme,
	}
}

// SetTheme swaps the theme after a mode toggle.
func (v *MessageView) SetTheme(theme *styles.Theme) {
	v.theme = theme
}

// SetWidth updates the available width.
func (v *MessageView) SetWidth(width int) {
	v.Width = width
}

// Render renders a message. spinnerFrame is the current spinner frame, used
// only while the message is pending. focused draws the selection border used
// in browse mode.
func (v *MessageView) Render(msg *model.Message, spinnerFrame string, focused bool) string {
	if msg.Role == model.RoleUser {
		return v.renderUser(msg, focused)
	}
	return v.renderAssistant(msg, spinnerFrame, focused)
}

// renderUser renders a right-aligned user bubble with a timestamp line.
func (v *MessageView) renderUser(msg *model.Message, focused bool) string {
	t := v.theme
	maxBubble := v.bubbleWidth()

	style := t.UserBubble
	if focused {
		style = t.FocusedBubble.
			Foreground(t.Palette.UserBubbleFg).
			Background(t.Palette.UserBubbleBg)
	}
	bubble := style.MaxWidth(maxBubble).Render(msg.Content)

	ts := t.Timestamp.Render(fmtClock(msg.CreatedAt))
	block := lipgloss.JoinVertical(lipgloss.Right, bubble, ts)

	return lipgloss.NewStyle().
		Width(v.Width).
		Align(lipgloss.Right).
		Render(block)
}

// renderAssistant renders a left-aligned assistant bubble. Pending messages
// show the spinner; complete messages render their markdown and the reaction
// row.
func (v *MessageView) renderAssistant(msg *model.Message, spinnerFrame string, focused bool) string {
	t := v.theme
	maxBubble := v.bubbleWidth()

	var body string
	if msg.IsPending() {
		body = t.Spinner.Render(spinnerFrame) + " " + t.ThinkingText.Render("thinking")
	} else {
		body = v.renderMarkdown(msg.Content)
	}

	style := t.AssistantBubble
	if focused {
		style = t.FocusedBubble.
			Foreground(t.Palette.AssistantBubbleFg).
			Background(t.Palette.AssistantBubbleBg)
	}
	bubble := style.MaxWidth(maxBubble).Render(body)

	lines := []string{bubble}
	if !msg.IsPending() {
		lines = append(lines, v.renderFooter(msg))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, lines...)

	return lipgloss.NewStyle().
		Width(v.Width).
		Align(lipgloss.Left).
		Render(block)
}

// renderFooter renders the timestamp plus the reaction indicators.
func (v *MessageView) renderFooter(msg *model.Message) string {
	t := v.theme

	parts := []string{t.Timestamp.Render(fmtClock(msg.CreatedAt))}

	like := t.ReactionOff.Render("👍")
	if msg.Liked {
		like = t.ReactionOn.Render("👍")
	}
	dislike := t.ReactionOff.Render("👎")
	if msg.Disliked {
		dislike = t.ReactionOn.Render("👎")
	}
	parts = append(parts, like, dislike)

	return strings.Join(parts, " ")
}

// renderMarkdown runs content through glamour, falling back to the raw text
// when rendering fails.
func (v *MessageView) renderMarkdown(content string) string {
	if v.Markdown == nil {
		return content
	}
	out, err := v.Markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// bubbleWidth caps bubbles at roughly three quarters of the row.
func (v *MessageView) bubbleWidth() int {
	w := v.Width * 3 / 4
	if w < 20 {
		w = 20
	}
	return w
}
