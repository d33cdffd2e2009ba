// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/storage"
	"github.com/parleychat/parley-tui/internal/store"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// newTestModel builds a chat model over a fresh store with replies slow
// enough to stay pending for the whole test.
func newTestModel(t *testing.T) (*Model, *store.Store) {
	t.Helper()

	dir := t.TempDir()
	kv, err := storage.Open(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatal(err)
	}

	st := store.New(store.Options{
		ReplyText: "ok 👍",
		MinDelay:  time.Minute,
		MaxDelay:  2 * time.Minute,
		Clipboard: func(string) error { return nil },
	}, nil)
	t.Cleanup(st.Close)

	m := New(Options{
		Store:       st,
		KV:          kv,
		ExportDir:   dir,
		Mode:        styles.ModeDark,
		ShowSidebar: true,
	})
	m.resize(100, 30)
	return m, st
}

func update(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(*Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func typeText(t *testing.T, m *Model, text string) *Model {
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSubmitSendsMessage(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "hello there")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	conv := st.Active()
	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want user + pending assistant", conv.MessageCount())
	}
	if m.input.Value() != "" {
		t.Error("input should reset after send")
	}
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	m, st := newTestModel(t)

	m = typeText(t, m, "   ")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !st.Active().IsEmpty() {
		t.Error("whitespace-only input must not send")
	}
}

func TestEscEntersBrowseModeOnLastMessage(t *testing.T) {
	m, st := newTestModel(t)
	st.SendMessage(st.ActiveID(), "hello")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.focus != focusBrowse {
		t.Fatalf("focus = %v, want browse", m.focus)
	}
	if m.browseIdx != 1 {
		t.Errorf("browseIdx = %d, want last message", m.browseIdx)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusInput {
		t.Error("second esc should return to input")
	}
}

func TestBrowseModeNeedsMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusInput {
		t.Error("esc on an empty conversation should stay in input focus")
	}
}

func TestBrowseReactionKeys(t *testing.T) {
	m, st := newTestModel(t)
	convID := st.ActiveID()
	msgID, _ := st.SendMessage(convID, "rate this")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc}) // browse, cursor on assistant
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})

	msg := st.Active().MessageByID(msgID)
	if !msg.Liked {
		t.Error("l should toggle like on the selected assistant message")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	msg = st.Active().MessageByID(msgID)
	if msg.Liked || !msg.Disliked {
		t.Error("d should switch the reaction to dislike")
	}
}

func TestBrowseRegenerateKey(t *testing.T) {
	m, st := newTestModel(t)
	convID := st.ActiveID()
	msgID, _ := st.SendMessage(convID, "again please")
	before := st.Active().MessageByID(msgID).Version

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	after := st.Active().MessageByID(msgID)
	if after.Version != before+1 || !after.IsPending() {
		t.Error("r should regenerate the selected assistant message")
	}
}

func TestCtrlNCreatesConversation(t *testing.T) {
	m, st := newTestModel(t)
	first := st.ActiveID()

	_ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}
	if st.ActiveID() == first {
		t.Error("new conversation should become active")
	}
}

func TestSidebarSelectSwitchesConversation(t *testing.T) {
	m, st := newTestModel(t)
	first := st.ActiveID()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSidebar {
		t.Fatalf("focus = %v, want sidebar", m.focus)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}) // down to the older one
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if st.ActiveID() != first {
		t.Error("selecting the older conversation should activate it")
	}
	if m.focus != focusInput {
		t.Error("selection should return focus to the input")
	}
}

func TestSidebarRenameFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.focus != focusRename {
		t.Fatalf("focus = %v, want rename", m.focus)
	}

	m.renameInput.SetValue("Weekly sync")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := st.Active().Title; got != "Weekly sync" {
		t.Errorf("Title = %q", got)
	}
	if !st.Active().IsCustomTitle {
		t.Error("rename must mark the title custom")
	}
	if m.focus != focusSidebar {
		t.Error("confirming rename should return to the sidebar")
	}
}

func TestRenameActiveFromInput(t *testing.T) {
	m, st := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.focus != focusRename {
		t.Fatalf("focus = %v, want rename", m.focus)
	}
	if got := m.renameInput.Value(); got != st.Active().Title {
		t.Errorf("prompt preloads %q, want active title %q", got, st.Active().Title)
	}

	m.renameInput.SetValue("Standup notes")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := st.Active().Title; got != "Standup notes" {
		t.Errorf("Title = %q", got)
	}
	if m.focus != focusInput {
		t.Error("confirming rename should return to the input")
	}
}

func TestRenameEscapeRestoresFocus(t *testing.T) {
	m, st := newTestModel(t)
	before := st.Active().Title

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m.renameInput.SetValue("Discarded")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if got := st.Active().Title; got != before {
		t.Errorf("Title = %q, want %q unchanged", got, before)
	}
	if m.focus != focusInput {
		t.Error("cancelling rename should return to the input")
	}
}

func TestCopyResultShowsToast(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, CopyResultMsg{MessageID: "msg_x"})
	if !strings.Contains(m.statusBar.View(), "Copied!") {
		t.Error("successful copy should show the toast")
	}

	m = update(t, m, toastExpiredMsg{})
	if strings.Contains(m.statusBar.View(), "Copied!") {
		t.Error("toast should clear on expiry")
	}
}

func TestStoreChangedRefreshesHeader(t *testing.T) {
	m, st := newTestModel(t)
	st.RenameConversation(st.ActiveID(), "Fresh title")

	m = update(t, m, StoreChangedMsg{})
	if !strings.Contains(m.header.View(), "Fresh title") {
		t.Error("refresh should pick up the renamed title")
	}
}

func TestThemeToggleSwitchesModeAndPersists(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(*Model)
	if m.Mode() != styles.ModeLight {
		t.Errorf("Mode = %v, want light", m.Mode())
	}
	if cmd == nil {
		t.Fatal("toggle should return the persist command")
	}
	if msg, ok := cmd().(themePersistedMsg); !ok || msg.Err != nil {
		t.Errorf("persist command result = %#v", msg)
	}

	if name, ok := storage.LoadTheme(m.kv); !ok || name != "light" {
		t.Errorf("persisted theme = %q, %v", name, ok)
	}
}

func TestStateReloadReplacesCollection(t *testing.T) {
	m, st := newTestModel(t)
	st.SendMessage(st.ActiveID(), "about to be replaced")

	replacement := model.NewConversation()
	replacement.Rename("from disk")

	m = update(t, m, stateReloadedMsg{Conversations: []*model.Conversation{replacement}})
	if got := st.Active().Title; got != "from disk" {
		t.Errorf("Title = %q", got)
	}

	m = update(t, m, stateReloadedMsg{Conversations: nil})
	if st.Len() != 1 || !st.Active().IsEmpty() {
		t.Error("empty reload should seed one fresh conversation")
	}
	_ = m
}
