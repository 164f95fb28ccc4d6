//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../mocks/mock_directory.go -package=mocks
package participants

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"sched-lab/domain"
)

// Directory resolves a display name to a canonical identity. Implementations
// must be safe for concurrent read access; the resolver performs no writes.
type Directory interface {
	Resolve(displayName string) (identity string, ok bool)
}

// Name mentions the original chat clients produce: "with Carol",
// "meet David", "Carol and David".
var mentionRe = regexp.MustCompile(`(?i)\b(?:with|meet)\s+([a-z]+)\b|\b([a-z]+)\s+(?:and|&)\s+([a-z]+)\b`)

// Collective words that the mention patterns catch but never resolve to a
// single person.
var collectives = map[string]struct{}{
	"team": {}, "everyone": {}, "all": {}, "group": {}, "us": {}, "we": {},
	"you": {}, "me": {}, "the": {}, "a": {},
}

// Resolver derives the canonical participant set of a conversation.
type Resolver struct {
	directory Directory
	log       *slog.Logger
}

func NewResolver(directory Directory, log *slog.Logger) *Resolver {
	return &Resolver{directory: directory, log: log}
}

// Resolve returns the sorted set of participant identities: every message
// author, plus every mentioned name the directory recognizes. Unresolved
// mentions are ignored silently; extraction is best-effort, not
// authoritative. Resolving the same conversation against an unchanged
// directory always yields an identical set.
func (r *Resolver) Resolve(conv domain.Conversation) []string {
	set := make(map[string]struct{})
	for _, id := range conv.AuthorIDs() {
		set[id] = struct{}{}
	}

	for _, m := range conv.Messages {
		for _, name := range mentions(m.Content) {
			identity, ok := r.directory.Resolve(name)
			if !ok {
				continue
			}
			if _, seen := set[identity]; !seen {
				r.log.Debug("Resolved mentioned participant", "name", name, "identity", identity)
				set[identity] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// mentions extracts lowercased name tokens from one message.
func mentions(text string) []string {
	var names []string
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		for _, tok := range m[1:] {
			if tok == "" {
				continue
			}
			tok = strings.ToLower(tok)
			if _, skip := collectives[tok]; skip {
				continue
			}
			names = append(names, tok)
		}
	}
	return names
}
