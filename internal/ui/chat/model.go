// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the main chat model: state, construction, and the
// read-side refresh from the conversation store. Input handling lives in
// update.go, rendering in view.go.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/parleychat/parley-tui/internal/logging"
	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/storage"
	"github.com/parleychat/parley-tui/internal/store"
	"github.com/parleychat/parley-tui/internal/ui/components"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// focus identifies which surface receives key input.
type focus int

const (
	focusInput focus = iota
	focusBrowse
	focusSidebar
	focusRename
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the top-level Bubble Tea model for the chat interface.
type Model struct {
	keys KeyMap

	store     *store.Store
	kv        *storage.KV
	exportDir string

	mode     styles.Mode
	theme    *styles.Theme
	markdown components.MarkdownRenderer

	header    *components.Header
	sidebar   *components.Sidebar
	statusBar *components.StatusBar
	msgView   *components.MessageView

	input       textarea.Model
	renameInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model

	focus        focus
	renameTarget string // conversation being renamed
	renameReturn focus  // focus to restore after the rename prompt closes
	browseIdx    int    // index into the active conversation's messages
	showSidebar  bool

	width  int
	height int
	ready  bool
}

// Options configures a chat Model.
type Options struct {
	Store       *store.Store
	KV          *storage.KV
	ExportDir   string
	Mode        styles.Mode
	ShowSidebar bool
}

// New creates the chat model.
func New(opts Options) *Model {
	theme := styles.NewTheme(opts.Mode)

	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	ri := textinput.New()
	ri.Placeholder = "Conversation title"
	ri.CharLimit = 120

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Spinner

	md := newMarkdownRenderer(opts.Mode, 80)

	m := &Model{
		keys:        DefaultKeyMap(),
		store:       opts.Store,
		kv:          opts.KV,
		exportDir:   opts.ExportDir,
		mode:        opts.Mode,
		theme:       theme,
		markdown:    md,
		header:      components.NewHeader(theme),
		sidebar:     components.NewSidebar(theme),
		statusBar:   components.NewStatusBar(theme),
		msgView:     components.NewMessageView(theme, md),
		input:       ta,
		renameInput: ri,
		viewport:    viewport.New(80, 20),
		spinner:     sp,
		showSidebar: opts.ShowSidebar,
	}
	m.refresh()
	return m
}

// Init starts the cursor blink and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Mode returns the current theme mode.
func (m *Model) Mode() styles.Mode {
	return m.mode
}

// newMarkdownRenderer builds the glamour renderer for a mode and wrap width.
// A nil renderer is fine; message rendering falls back to raw text.
func newMarkdownRenderer(mode styles.Mode, width int) components.MarkdownRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(mode.GlamourStyle()),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		logging.L().Warn().Err(err).Msg("glamour renderer unavailable")
		return nil
	}
	return r
}

// =============================================================================
// STORE READ-SIDE
// =============================================================================

// refresh re-reads the store and pushes fresh data into every component.
func (m *Model) refresh() {
	active := m.store.Active()
	metas := m.store.Metas()

	m.header.SetConversation(active.Title, active.MessageCount())
	m.sidebar.SetConversations(metas, active.ID)
	m.statusBar.PendingCount = m.pendingCount()

	m.clampBrowseIdx(active)
	m.renderMessages(active)
}

// pendingCount counts replies still in flight across every conversation.
func (m *Model) pendingCount() int {
	return m.store.PendingReplies()
}

// clampBrowseIdx keeps the browse cursor on an existing message.
func (m *Model) clampBrowseIdx(active *model.Conversation) {
	if m.browseIdx >= len(active.Messages) {
		m.browseIdx = len(active.Messages) - 1
	}
	if m.browseIdx < 0 {
		m.browseIdx = 0
	}
}

// renderMessages rebuilds the viewport content from the active conversation.
func (m *Model) renderMessages(active *model.Conversation) {
	atBottom := m.viewport.AtBottom()

	var content string
	if active.IsEmpty() {
		content = m.theme.ThinkingText.Render("No messages yet. Say something!")
	} else {
		frame := m.spinner.View()
		for i, msg := range active.Messages {
			focused := m.focus == focusBrowse && i == m.browseIdx
			if i > 0 {
				content += "\n"
			}
			content += m.msgView.Render(msg, frame, focused) + "\n"
		}
	}
	m.viewport.SetContent(content)
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// browsedMessage returns the message under the browse cursor, or nil.
func (m *Model) browsedMessage() *model.Message {
	active := m.store.Active()
	if len(active.Messages) == 0 {
		return nil
	}
	m.clampBrowseIdx(active)
	return active.Messages[m.browseIdx]
}
