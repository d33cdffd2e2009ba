// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"time"

	"github.com/parleychat/parley-tui/internal/model"
)

// =============================================================================
// SNAPSHOT SCHEMA
// =============================================================================

// The stored shapes mirror the model field-for-field but are kept separate so
// older persisted snapshots keep loading: is_custom_title, liked, disliked,
// status and version are optional and defaulted on the way in.

// StoredConversation is the persisted form of a conversation.
type StoredConversation struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	IsCustomTitle bool            `json:"is_custom_title,omitempty"`
	Messages      []StoredMessage `json:"messages"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StoredMessage is the persisted form of a message.
type StoredMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Liked     bool      `json:"liked,omitempty"`
	Disliked  bool      `json:"disliked,omitempty"`
	Status    string    `json:"status,omitempty"`
	Version   int       `json:"version,omitempty"`
}

// =============================================================================
// MODEL CONVERSION
// =============================================================================

// toStored converts a model conversation for persistence.
func toStored(c *model.Conversation) StoredConversation {
	sc := StoredConversation{
		ID:            c.ID,
		Title:         c.Title,
		IsCustomTitle: c.IsCustomTitle,
		Messages:      make([]StoredMessage, 0, len(c.Messages)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for _, m := range c.Messages {
		sc.Messages = append(sc.Messages, StoredMessage{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Liked:     m.Liked,
			Disliked:  m.Disliked,
			Status:    string(m.Status),
			Version:   m.Version,
		})
	}
	return sc
}

// toModel converts a stored conversation back, applying defaults for fields
// absent in older snapshots and re-establishing the model invariants.
func (sc StoredConversation) toModel() *model.Conversation {
	c := &model.Conversation{
		ID:            sc.ID,
		Title:         sc.Title,
		IsCustomTitle: sc.IsCustomTitle,
		Messages:      make([]*model.Message, 0, len(sc.Messages)),
		CreatedAt:     sc.CreatedAt,
		UpdatedAt:     sc.UpdatedAt,
	}
	if c.Title == "" {
		c.Title = model.DefaultTitle
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	for _, sm := range sc.Messages {
		m := &model.Message{
			ID:        sm.ID,
			Role:      model.Role(sm.Role),
			Content:   sm.Content,
			CreatedAt: sm.CreatedAt,
			Liked:     sm.Liked,
			Disliked:  sm.Disliked,
			Status:    model.Status(sm.Status),
			Version:   sm.Version,
		}
		if m.Status == "" {
			m.Status = model.StatusComplete
		}
		if m.Role != model.RoleAssistant {
			// Reactions and pending status are assistant-only.
			m.Liked = false
			m.Disliked = false
			m.Status = model.StatusComplete
		}
		if m.Liked && m.Disliked {
			// Older writers could not produce this, but a hand-edited file
			// can. Dislike loses.
			m.Disliked = false
		}
		c.Messages = append(c.Messages, m)
	}
	return c
}

// =============================================================================
// COLLECTION LOAD/SAVE
// =============================================================================

// SaveConversations persists the full collection under KeyConversations,
// overwriting whatever was there.
func SaveConversations(kv *KV, convs []*model.Conversation) error {
	stored := make([]StoredConversation, 0, len(convs))
	for _, c := range convs {
		stored = append(stored, toStored(c))
	}
	return kv.SetJSON(KeyConversations, stored)
}

// LoadConversations reads the collection back. An absent key, a malformed
// value, or an empty collection all return (nil, err); the caller falls back
// to a single fresh conversation either way, logging err when non-nil.
func LoadConversations(kv *KV) ([]*model.Conversation, error) {
	var stored []StoredConversation
	ok, err := kv.GetJSON(KeyConversations, &stored)
	if err != nil {
		return nil, err
	}
	if !ok || len(stored) == 0 {
		return nil, nil
	}
	convs := make([]*model.Conversation, 0, len(stored))
	for _, sc := range stored {
		convs = append(convs, sc.toModel())
	}
	return convs, nil
}

// =============================================================================
// THEME PREFERENCE
// =============================================================================

// SaveTheme persists the theme preference, one of "dark" or "light".
func SaveTheme(kv *KV, name string) error {
	return kv.SetJSON(KeyTheme, name)
}

// LoadTheme reads the persisted theme preference. Anything other than "dark"
// or "light" counts as unset.
func LoadTheme(kv *KV) (string, bool) {
	var name string
	ok, err := kv.GetJSON(KeyTheme, &name)
	if err != nil || !ok {
		return "", false
	}
	if name != "dark" && name != "light" {
		return "", false
	}
	return name, true
}
