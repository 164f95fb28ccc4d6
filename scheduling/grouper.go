package scheduling

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sched-lab/domain"
)

// DefaultWindow bounds how far apart two messages of one scheduling context
// may be. Shorter windows separate unrelated conversations better.
const DefaultWindow = 15 * time.Minute

// Phrases indicating a message continued an ongoing scheduling exchange.
var continuityPhrases = []string{
	"meeting", "schedule", "available", "time", "when",
	"how about", "works for me", "ok", "sure", "yes", "no",
}

// Grouper splits a flat message stream into separate conversation contexts,
// so one chat room can carry several scheduling threads at once.
type Grouper struct {
	window time.Duration
}

func NewGrouper(window time.Duration) *Grouper {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Grouper{window: window}
}

// Group orders messages chronologically and cuts them into contexts. A
// message joins the current context only when it falls inside the time
// window of the context's first message, comes from an author already in the
// context, and either side of the exchange carries a continuity phrase.
func (g *Grouper) Group(messages []domain.Message) []domain.Conversation {
	if len(messages) == 0 {
		return nil
	}

	ordered := make([]domain.Message, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var groups [][]domain.Message
	current := []domain.Message{ordered[0]}
	for _, msg := range ordered[1:] {
		if g.related(msg, current) {
			current = append(current, msg)
			continue
		}
		groups = append(groups, current)
		current = []domain.Message{msg}
	}
	groups = append(groups, current)

	out := make([]domain.Conversation, 0, len(groups))
	for i, group := range groups {
		out = append(out, domain.Conversation{
			ID:       fmt.Sprintf("context-%d", i+1),
			Messages: group,
		})
	}
	return out
}

func (g *Grouper) related(msg domain.Message, group []domain.Message) bool {
	if msg.CreatedAt.Sub(group[0].CreatedAt) > g.window {
		return false
	}

	known := false
	for _, m := range group {
		if m.AuthorID == msg.AuthorID {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	if hasContinuityPhrase(msg.Content) {
		return true
	}
	for _, m := range group {
		if hasContinuityPhrase(m.Content) {
			return true
		}
	}
	return false
}

func hasContinuityPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range continuityPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
