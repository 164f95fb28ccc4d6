// Package domain contains core concepts of the meeting scheduler.
// This file defines Message events and conversation views.
// Messages are immutable once created and never mutated by analysis.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event.
type Message struct {
	ID         uuid.UUID // unique identifier
	AuthorID   string    // canonical identity, e.g. email
	AuthorName string    // display name as typed in the chat client
	Content    string
	CreatedAt  time.Time
}

// Conversation is an ordered view over messages sharing a logical group
// identity. Ordering is chronological and significant: later messages may
// supersede or confirm earlier availability statements.
type Conversation struct {
	ID       string
	Messages []Message
}

// AuthorIDs returns the distinct author identities in message order.
func (c Conversation) AuthorIDs() []string {
	seen := make(map[string]struct{}, len(c.Messages))
	var ids []string
	for _, m := range c.Messages {
		if m.AuthorID == "" {
			continue
		}
		if _, ok := seen[m.AuthorID]; ok {
			continue
		}
		seen[m.AuthorID] = struct{}{}
		ids = append(ids, m.AuthorID)
	}
	return ids
}
