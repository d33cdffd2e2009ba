// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the placeholder title for a conversation that has no
// user messages yet and has never been renamed.
const DefaultTitle = "New chat"

// titleTokens is how many leading words of the first user message form the
// auto-derived conversation title.
const titleTokens = 3

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds one chat thread: an ordered message list plus metadata.
//
// The message list is append-only except for in-place regenerate replacement
// and reaction toggles; insertion order is chronological.
type Conversation struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	IsCustomTitle bool       `json:"is_custom_title,omitempty"`
	Messages      []*Message `json:"messages"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewConversation creates an empty conversation with the placeholder title.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        generateConversationID(),
		Title:     DefaultTitle,
		Messages:  make([]*Message, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// MESSAGE ACCESS
// =============================================================================

// MessageByID returns the message with the given id, or nil.
func (c *Conversation) MessageByID(id string) *Message {
	for _, msg := range c.Messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// LastAssistantMessage returns the most recent assistant message, or nil.
func (c *Conversation) LastAssistantMessage() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return c.Messages[i]
		}
	}
	return nil
}

// FirstUserMessage returns the oldest user message, or nil.
func (c *Conversation) FirstUserMessage() *Message {
	for _, msg := range c.Messages {
		if msg.Role == RoleUser {
			return msg
		}
	}
	return nil
}

// PendingMessages returns all assistant messages still awaiting a reply.
func (c *Conversation) PendingMessages() []*Message {
	var pending []*Message
	for _, msg := range c.Messages {
		if msg.Role == RoleAssistant && msg.IsPending() {
			pending = append(pending, msg)
		}
	}
	return pending
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty reports whether the conversation has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// MUTATIONS
// =============================================================================

// AppendExchange appends a complete user message followed by a pending
// assistant placeholder, refreshes UpdatedAt and re-derives the title when it
// has not been customized. Returns the assistant placeholder.
func (c *Conversation) AppendExchange(text string) *Message {
	user := NewUserMessage(text)
	assistant := NewPendingAssistantMessage()
	c.Messages = append(c.Messages, user, assistant)
	c.UpdatedAt = time.Now()
	c.refreshTitle()
	return assistant
}

// Rename sets the title to the trimmed proposal, falling back to the
// placeholder when the trim is empty. Auto-derivation is suppressed from then
// on, even if the proposal matches the derived title.
func (c *Conversation) Rename(proposed string) {
	title := strings.TrimSpace(proposed)
	if title == "" {
		title = DefaultTitle
	}
	c.Title = title
	c.IsCustomTitle = true
}

// refreshTitle recomputes the auto-derived title from the first user message.
func (c *Conversation) refreshTitle() {
	if c.IsCustomTitle {
		return
	}
	if first := c.FirstUserMessage(); first != nil {
		c.Title = DeriveTitle(first.Content)
	}
}

// DeriveTitle builds a conversation title from message text: the first three
// whitespace-separated tokens joined by single spaces, with a single ellipsis
// character appended only when more tokens existed.
func DeriveTitle(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return DefaultTitle
	}
	if len(tokens) <= titleTokens {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[:titleTokens], " ") + "…"
}

// =============================================================================
// METADATA
// =============================================================================

// Meta holds lightweight conversation metadata for list rendering.
type Meta struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetMeta returns metadata about the conversation.
func (c *Conversation) GetMeta() Meta {
	return Meta{
		ID:           c.ID,
		Title:        c.Title,
		MessageCount: len(c.Messages),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := &Conversation{
		ID:            c.ID,
		Title:         c.Title,
		IsCustomTitle: c.IsCustomTitle,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Messages:      make([]*Message, len(c.Messages)),
	}
	for i, msg := range c.Messages {
		msgCopy := *msg
		clone.Messages[i] = &msgCopy
	}
	return clone
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateConversationID creates a unique conversation ID.
func generateConversationID() string {
	return "conv_" + uuid.NewString()
}
