// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the conversation collection and all mutations on it.
package store

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/parleychat/parley-tui/internal/logging"
	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/reply"
)

// =============================================================================
// REACTION KIND
// =============================================================================

// Reaction identifies which reaction flag a toggle targets.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Snapshotter persists the full conversation collection. Writes happen after
// every successful mutation and are fire-and-forget: failures are logged,
// never surfaced.
type Snapshotter interface {
	SaveConversations(convs []*model.Conversation) error
}

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Store.
type Options struct {
	// ReplyText is the canned assistant reply.
	ReplyText string
	// MinDelay/MaxDelay bound the uniform random reply delay, [min, max).
	MinDelay time.Duration
	MaxDelay time.Duration
	// Snapshot persists the collection after each mutation. May be nil.
	Snapshot Snapshotter
	// Notify is called (off the caller's goroutine lock) after any state
	// change, including timer-driven reply resolutions. May be nil.
	Notify func()
	// Clipboard overrides the system clipboard, mainly for tests.
	Clipboard ClipboardFunc
}

// =============================================================================
// STORE
// =============================================================================

// Store maintains the ordered conversation collection and the active
// selection, applies every mutation, schedules simulated replies, and syncs
// the collection to persistent storage after each change.
//
// All UI-driven calls arrive on the Bubble Tea update loop; the mutex exists
// because reply timers fire on their own goroutines.
type Store struct {
	mu            sync.Mutex
	conversations []*model.Conversation
	activeID      string

	sched     *reply.Scheduler
	replyText string
	minDelay  time.Duration
	maxDelay  time.Duration

	snapshot Snapshotter
	notify   func()
	clip     ClipboardFunc
}

// ErrMessageNotFound reports a copy against an unknown message id.
var ErrMessageNotFound = errors.New("message not found")

// New creates a store over the given initial collection. An empty initial
// collection gets a single fresh conversation so the collection invariant
// (never empty, always one active conversation) holds from the start. Any
// assistant message loaded in the pending state gets a reply scheduled as if
// it had just been sent.
func New(opts Options, initial []*model.Conversation) *Store {
	if opts.MaxDelay <= opts.MinDelay {
		opts.MaxDelay = opts.MinDelay + time.Millisecond
	}
	s := &Store{
		conversations: initial,
		sched:         reply.NewScheduler(),
		replyText:     opts.ReplyText,
		minDelay:      opts.MinDelay,
		maxDelay:      opts.MaxDelay,
		snapshot:      opts.Snapshot,
		notify:        opts.Notify,
		clip:          opts.Clipboard,
	}
	if s.clip == nil {
		s.clip = clipboard.WriteAll
	}
	if len(s.conversations) == 0 {
		s.conversations = []*model.Conversation{model.NewConversation()}
	}
	s.activeID = s.conversations[0].ID

	s.mu.Lock()
	for _, conv := range s.conversations {
		for _, msg := range conv.PendingMessages() {
			s.scheduleLocked(conv.ID, msg)
		}
	}
	s.mu.Unlock()
	return s
}

// SetNotify installs the change callback. Wired after construction because
// the Bubble Tea program that consumes the notifications is built around the
// store.
func (s *Store) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Close cancels all outstanding reply timers. No mutation can land after
// Close returns.
func (s *Store) Close() {
	s.sched.Stop()
}

// =============================================================================
// READ ACCESS
// =============================================================================

// ActiveID returns the id of the active conversation.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns a deep copy of the active conversation. Copying keeps the
// render path free of data races with reply timers.
func (s *Store) Active() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked().Clone()
}

// Metas returns metadata for every conversation, in collection order
// (newest-created first).
func (s *Store) Metas() []model.Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	metas := make([]model.Meta, 0, len(s.conversations))
	for _, c := range s.conversations {
		metas = append(metas, c.GetMeta())
	}
	return metas
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

// PendingReplies returns how many reply timers are armed.
func (s *Store) PendingReplies() int {
	return s.sched.Pending()
}

// activeLocked resolves the active conversation, falling back to the first
// when the remembered id is gone. Caller holds s.mu.
func (s *Store) activeLocked() *model.Conversation {
	for _, c := range s.conversations {
		if c.ID == s.activeID {
			return c
		}
	}
	s.activeID = s.conversations[0].ID
	return s.conversations[0]
}

// conversationLocked returns the conversation with the given id, or nil.
func (s *Store) conversationLocked(id string) *model.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// =============================================================================
// CONVERSATION OPERATIONS
// =============================================================================

// CreateConversation inserts a new empty conversation at the front of the
// collection and makes it active. Returns its id.
func (s *Store) CreateConversation() string {
	s.mu.Lock()
	conv := model.NewConversation()
	s.conversations = append([]*model.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
	return conv.ID
}

// SelectConversation makes the conversation with the given id active,
// falling back to the first conversation when the id is unknown.
func (s *Store) SelectConversation(id string) {
	s.mu.Lock()
	if s.conversationLocked(id) != nil {
		s.activeID = id
	} else {
		s.activeID = s.conversations[0].ID
	}
	s.mu.Unlock()

	s.fireNotify()
}

// RenameConversation sets the conversation title to the trimmed proposal
// (placeholder when empty) and suppresses auto-derivation from then on.
// Unknown ids are a no-op.
func (s *Store) RenameConversation(id, proposed string) {
	s.mu.Lock()
	conv := s.conversationLocked(id)
	if conv == nil {
		s.mu.Unlock()
		return
	}
	conv.Rename(proposed)
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
}

// =============================================================================
// MESSAGE OPERATIONS
// =============================================================================

// SendMessage appends a complete user message with the trimmed text plus a
// pending assistant placeholder, and schedules the simulated reply. Empty
// trimmed text or an unknown conversation id is a no-op. Returns the id of
// the assistant placeholder and whether anything happened.
func (s *Store) SendMessage(convID, text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	s.mu.Lock()
	conv := s.conversationLocked(convID)
	if conv == nil {
		s.mu.Unlock()
		return "", false
	}
	assistant := conv.AppendExchange(trimmed)
	s.scheduleLocked(convID, assistant)
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
	return assistant.ID, true
}

// RegenerateReply resets an assistant message to pending, clears its
// reactions, bumps its version, and schedules a fresh reply. The version bump
// plus the per-id timer replacement guarantee an in-flight older resolution
// can never overwrite the new generation.
func (s *Store) RegenerateReply(convID, msgID string) {
	s.mu.Lock()
	conv := s.conversationLocked(convID)
	if conv == nil {
		s.mu.Unlock()
		return
	}
	msg := conv.MessageByID(msgID)
	if msg == nil || msg.Role != model.RoleAssistant {
		s.mu.Unlock()
		return
	}
	msg.BeginRegenerate()
	s.scheduleLocked(convID, msg)
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
}

// ToggleReaction flips the targeted reaction flag on an assistant message,
// keeping like and dislike mutually exclusive. Unknown targets are no-ops.
func (s *Store) ToggleReaction(convID, msgID string, kind Reaction) {
	s.mu.Lock()
	conv := s.conversationLocked(convID)
	if conv == nil {
		s.mu.Unlock()
		return
	}
	msg := conv.MessageByID(msgID)
	if msg == nil || msg.Role != model.RoleAssistant {
		s.mu.Unlock()
		return
	}
	switch kind {
	case ReactionLike:
		msg.ToggleLike()
	case ReactionDislike:
		msg.ToggleDislike()
	default:
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
}

// CopyMessageText writes the message content to the system clipboard. The
// store is not mutated; the caller shows a transient indicator on success.
func (s *Store) CopyMessageText(msgID string) error {
	s.mu.Lock()
	var content string
	found := false
	for _, conv := range s.conversations {
		if msg := conv.MessageByID(msgID); msg != nil {
			content = msg.Content
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrMessageNotFound
	}
	if err := s.clip(content); err != nil {
		logging.L().Warn().Err(err).Str("message_id", msgID).Msg("clipboard write failed")
		return err
	}
	return nil
}

// =============================================================================
// EXTERNAL RELOAD
// =============================================================================

// ReplaceAll swaps in a collection loaded from a changed state file. All
// outstanding timers for the old collection are cancelled; pending messages
// in the new collection are rescheduled. An empty replacement falls back to a
// single fresh conversation.
func (s *Store) ReplaceAll(convs []*model.Conversation) {
	s.mu.Lock()
	for _, conv := range s.conversations {
		for _, msg := range conv.PendingMessages() {
			s.sched.Cancel(msg.ID)
		}
	}
	if len(convs) == 0 {
		convs = []*model.Conversation{model.NewConversation()}
	}
	s.conversations = convs
	s.activeLocked() // re-validates activeID against the new collection
	for _, conv := range s.conversations {
		for _, msg := range conv.PendingMessages() {
			s.scheduleLocked(conv.ID, msg)
		}
	}
	s.mu.Unlock()

	s.fireNotify()
}

// =============================================================================
// REPLY SCHEDULING
// =============================================================================

// scheduleLocked arms the reply timer for a pending assistant message.
// Caller holds s.mu.
func (s *Store) scheduleLocked(convID string, msg *model.Message) {
	captured := msg.Version
	msgID := msg.ID
	delay := s.minDelay + rand.N(s.maxDelay-s.minDelay)
	s.sched.Schedule(msgID, delay, func() {
		s.resolveReply(convID, msgID, captured)
	})
}

// resolveReply applies a scheduled resolution, unless the message has been
// superseded: a regenerate bumps the version, so a resolution captured
// against a stale version must leave the message alone.
func (s *Store) resolveReply(convID, msgID string, captured int) {
	s.mu.Lock()
	conv := s.conversationLocked(convID)
	if conv == nil {
		s.mu.Unlock()
		return
	}
	msg := conv.MessageByID(msgID)
	if msg == nil || !msg.IsPending() || msg.Version != captured {
		s.mu.Unlock()
		return
	}
	msg.Resolve(s.replyText)
	s.persistLocked()
	s.mu.Unlock()

	s.fireNotify()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// persistLocked writes the whole collection through the snapshotter.
// Fire-and-forget: a failed write is logged and the mutation stands.
func (s *Store) persistLocked() {
	if s.snapshot == nil {
		return
	}
	if err := s.snapshot.SaveConversations(s.conversations); err != nil {
		logging.L().Warn().Err(err).Msg("state snapshot failed")
	}
}

// fireNotify runs the change callback outside the store lock.
func (s *Store) fireNotify() {
	s.mu.Lock()
	fn := s.notify
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
