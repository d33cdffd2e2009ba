// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.ModeDark)
}

func TestFmtCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 messages"},
		{1, "1 message"},
		{7, "7 messages"},
	}
	for _, tt := range tests {
		if got := fmtCount(tt.n, "message"); got != tt.want {
			t.Errorf("fmtCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFmtRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ts   time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-30 * time.Second), "now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
		{now.Add(-30 * 24 * time.Hour), "May 16"},
	}
	for _, tt := range tests {
		if got := fmtRelativeTime(tt.ts, now); got != tt.want {
			t.Errorf("fmtRelativeTime(%v) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestSidebarCursorFollowsActive(t *testing.T) {
	sb := NewSidebar(testTheme())
	metas := []model.Meta{
		{ID: "conv_a", Title: "first"},
		{ID: "conv_b", Title: "second"},
		{ID: "conv_c", Title: "third"},
	}

	sb.SetConversations(metas, "conv_b")
	if sb.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", sb.Cursor)
	}
	if sb.Selected().ID != "conv_b" {
		t.Errorf("Selected = %q", sb.Selected().ID)
	}

	sb.CursorUp()
	sb.CursorUp() // clamps at 0
	if sb.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", sb.Cursor)
	}

	sb.CursorDown()
	sb.CursorDown()
	sb.CursorDown() // clamps at last
	if sb.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", sb.Cursor)
	}
}

func TestSidebarCursorClampsOnShrink(t *testing.T) {
	sb := NewSidebar(testTheme())
	sb.SetConversations([]model.Meta{
		{ID: "conv_a"}, {ID: "conv_b"}, {ID: "conv_c"},
	}, "conv_c")
	sb.SetConversations([]model.Meta{{ID: "conv_a"}}, "conv_gone")

	if sb.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after shrink", sb.Cursor)
	}
	if sb.Selected().ID != "conv_a" {
		t.Errorf("Selected = %q", sb.Selected().ID)
	}
}

func TestMessageViewPendingShowsSpinner(t *testing.T) {
	mv := NewMessageView(testTheme(), nil)
	msg := model.NewPendingAssistantMessage()

	out := mv.Render(msg, "⠋", false)
	if !strings.Contains(out, "thinking") {
		t.Error("pending assistant message should show the thinking indicator")
	}
	if !strings.Contains(out, "⠋") {
		t.Error("pending assistant message should include the spinner frame")
	}
}

func TestMessageViewCompleteShowsReactions(t *testing.T) {
	mv := NewMessageView(testTheme(), nil)
	msg := model.NewPendingAssistantMessage()
	msg.Resolve("ok 👍")

	out := mv.Render(msg, "", false)
	if !strings.Contains(out, "👍") || !strings.Contains(out, "👎") {
		t.Error("complete assistant message should show the reaction row")
	}
	if strings.Contains(out, "thinking") {
		t.Error("complete message must not show the thinking indicator")
	}
}

func TestMessageViewUserContent(t *testing.T) {
	mv := NewMessageView(testTheme(), nil)
	msg := model.NewUserMessage("hello world")

	out := mv.Render(msg, "", false)
	if !strings.Contains(out, "hello world") {
		t.Error("user bubble should contain the message text")
	}
	if strings.Contains(out, "👍") {
		t.Error("user messages carry no reaction row")
	}
}

func TestStatusBarToast(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.SetWidth(100)

	sb.SetToast("Copied!", false)
	if !strings.Contains(sb.View(), "Copied!") {
		t.Error("toast text should render")
	}

	sb.ClearToast()
	if strings.Contains(sb.View(), "Copied!") {
		t.Error("cleared toast must not render")
	}
}

func TestStatusBarPendingCount(t *testing.T) {
	sb := NewStatusBar(testTheme())
	sb.SetWidth(100)
	sb.PendingCount = 2

	if !strings.Contains(sb.View(), "2 pending replies") {
		t.Error("pending count should render")
	}
}

func TestHeaderShowsTitle(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(80)
	h.SetConversation("Project notes", 4)

	out := h.View()
	if !strings.Contains(out, "parley") {
		t.Error("header should show the brand")
	}
	if !strings.Contains(out, "Project notes") {
		t.Error("header should show the conversation title")
	}
}
