package lexical

import (
	"github.com/abadojack/whatlanggo"

	"sched-lab/domain"
)

// Term binds a vocabulary entry to the signal kind it produces.
// Keeping the vocabulary as data rather than inline literals lets
// deployments tune or localize it without touching the scanner.
type Term struct {
	Text string
	Kind domain.SignalKind
}

// DefaultVocabulary is the shipped English table.
func DefaultVocabulary() []Term {
	return []Term{
		{"meeting", domain.SignalIntent},
		{"meet", domain.SignalIntent},
		{"schedule", domain.SignalIntent},
		{"call", domain.SignalIntent},
		{"sync", domain.SignalIntent},
		{"standup", domain.SignalIntent},
		{"stand up", domain.SignalIntent},
		{"catch up", domain.SignalIntent},
		{"conference", domain.SignalIntent},
		{"appointment", domain.SignalIntent},
		{"review", domain.SignalIntent},
		{"discussion", domain.SignalIntent},

		{"available", domain.SignalAvailability},
		{"free", domain.SignalAvailability},
		{"busy", domain.SignalAvailability},
		{"can't", domain.SignalAvailability},
		{"cannot", domain.SignalAvailability},
		{"tomorrow", domain.SignalAvailability},
		{"today", domain.SignalAvailability},
		{"next week", domain.SignalAvailability},
		{"this week", domain.SignalAvailability},
	}
}

// Vocabularies maps a detected language to its term table.
// English is the only shipped table; it also serves as the fallback.
func Vocabularies() map[whatlanggo.Lang][]Term {
	return map[whatlanggo.Lang][]Term{
		whatlanggo.Eng: DefaultVocabulary(),
	}
}
