// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/parleychat/parley-tui/internal/model"
)

// ExportMarkdown renders a conversation as a Markdown transcript with the
// title, timestamps, and role-labelled messages.
func ExportMarkdown(c *model.Conversation) string {
	var sb strings.Builder
	sb.WriteString("# " + c.Title + "\n\n")
	sb.WriteString("Created: " + c.CreatedAt.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, msg := range c.Messages {
		label := "**" + msg.Role.DisplayName() + "**"
		sb.WriteString(label + " (" + msg.CreatedAt.Format("15:04") + "):\n\n")
		if msg.IsPending() {
			sb.WriteString("_(thinking…)_")
		} else {
			sb.WriteString(msg.Content)
		}
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}

// ExportJSON renders a conversation as pretty-printed JSON in the snapshot
// schema.
func ExportJSON(c *model.Conversation) ([]byte, error) {
	return json.MarshalIndent(toStored(c), "", "  ")
}
