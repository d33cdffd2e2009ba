// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// STATUS TYPE
// =============================================================================

// Status is the lifecycle state of a message's content.
type Status string

const (
	// StatusPending marks an assistant message still waiting for its reply.
	StatusPending Status = "pending"
	// StatusComplete marks a message whose content is final for its version.
	StatusComplete Status = "complete"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single turn in a conversation.
//
// Assistant messages carry reaction flags and a pending/complete status; user
// messages are always complete with both flags false. Version counts content
// generations written to the same id, so a reply resolution scheduled before
// a regenerate can detect that it has been superseded.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Liked    bool   `json:"liked,omitempty"`
	Disliked bool   `json:"disliked,omitempty"`
	Status   Status `json:"status"`
	Version  int    `json:"version"`
}

// NewUserMessage creates a complete user message with the given content.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
		Status:    StatusComplete,
	}
}

// NewPendingAssistantMessage creates an empty assistant message awaiting its
// reply.
func NewPendingAssistantMessage() *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      RoleAssistant,
		CreatedAt: time.Now(),
		Status:    StatusPending,
	}
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// IsPending reports whether the message is still waiting for its reply.
func (m *Message) IsPending() bool {
	return m.Status == StatusPending
}

// Resolve writes the reply content in place, marks the message complete and
// bumps the version. No-op unless the message is a pending assistant message.
func (m *Message) Resolve(content string) {
	if m.Role != RoleAssistant || m.Status != StatusPending {
		return
	}
	m.Content = content
	m.Status = StatusComplete
	m.Version++
}

// BeginRegenerate resets the message to an empty pending state, clears both
// reaction flags and bumps the version so an in-flight resolution for the
// previous generation can no longer land.
func (m *Message) BeginRegenerate() {
	if m.Role != RoleAssistant {
		return
	}
	m.Content = ""
	m.Status = StatusPending
	m.Liked = false
	m.Disliked = false
	m.Version++
}

// ToggleLike flips the liked flag. Turning it on forces disliked off; at most
// one of the two flags is ever true.
func (m *Message) ToggleLike() {
	if m.Role != RoleAssistant {
		return
	}
	m.Liked = !m.Liked
	if m.Liked {
		m.Disliked = false
	}
}

// ToggleDislike flips the disliked flag, forcing liked off when it turns on.
func (m *Message) ToggleDislike() {
	if m.Role != RoleAssistant {
		return
	}
	m.Disliked = !m.Disliked
	if m.Disliked {
		m.Liked = false
	}
}

// Preview returns a truncated single-line preview of the message content.
func (m *Message) Preview(maxRunes int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxRunes {
		return m.Content
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateMessageID creates a unique message ID.
func generateMessageID() string {
	return "msg_" + uuid.NewString()
}
