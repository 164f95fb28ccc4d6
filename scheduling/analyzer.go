// Package scheduling turns an unstructured sequence of chat messages into a
// structured scheduling decision with a confidence score.
package scheduling

import (
	"log/slog"
	"strings"
	"time"

	"sched-lab/domain"
	"sched-lab/errors"
	"sched-lab/lexical"
	"sched-lab/participants"
	"sched-lab/scoring"
	"sched-lab/temporal"
)

// DefaultThreshold is the confidence below which a proposal is suppressed.
const DefaultThreshold = 0.60

// Afternoon slot used when a conversation settles a date but never states a
// time.
var defaultSlot = domain.TimeOfDay{Hour: 14}

const descriptionLimit = 200

// Analyzer is the orchestrator of one analysis run. A run is a pure,
// synchronous computation without persisted state, so a single Analyzer is
// safe to invoke concurrently for different conversations.
type Analyzer struct {
	scanner  *lexical.Scanner
	resolver *participants.Resolver
	weights  scoring.Weights
	log      *slog.Logger
}

func NewAnalyzer(scanner *lexical.Scanner, resolver *participants.Resolver, weights scoring.Weights, log *slog.Logger) *Analyzer {
	return &Analyzer{scanner: scanner, resolver: resolver, weights: weights, log: log}
}

// Analyze runs extraction over every message and emits an actionable
// proposal, or ok=false when no scheduling intent is detected. "No intent"
// is a normal, frequent outcome for ordinary chat, never an error. The error
// return is reserved for invalid invocations: a zero reference instant or a
// threshold outside [0,1].
func (a *Analyzer) Analyze(conv domain.Conversation, ref time.Time, threshold float64) (domain.SchedulingProposal, bool, error) {
	if ref.IsZero() {
		return domain.SchedulingProposal{}, false, errors.ErrZeroReference
	}
	if threshold < 0 || threshold > 1 {
		return domain.SchedulingProposal{}, false, errors.ErrBadThreshold
	}
	if len(conv.Messages) == 0 || len(conv.AuthorIDs()) == 0 {
		return domain.SchedulingProposal{}, false, nil
	}

	// Collect. A malformed message is skipped, not fatal: one bad entry
	// cannot abort analysis of the rest of the conversation.
	var signals []domain.LexicalSignal
	var candidates []domain.TemporalCandidate
	for i, msg := range conv.Messages {
		if msg.Content == "" || msg.AuthorID == "" {
			a.log.Debug("Skipping malformed message", "conversation", conv.ID, "index", i)
			continue
		}
		signals = append(signals, a.scanner.Scan(msg.Content, i)...)
		candidates = append(candidates, temporal.Extract(msg.Content, ref, i)...)
	}

	// Without a single vocabulary hit there is no scheduling intent to
	// score: dates and times alone never make a proposal.
	if len(signals) == 0 {
		a.log.Debug("No scheduling vocabulary in conversation", "conversation", conv.ID)
		return domain.SchedulingProposal{}, false, nil
	}

	people := a.resolver.Resolve(conv)

	// Resolve date/time: the most recent resolved date paired with the most
	// recent resolved time found anywhere in the conversation. Cross-message
	// pairing is intentional: a date stated early and a time confirmed later
	// both contribute to one proposal.
	var lastDate *time.Time
	var lastTime *domain.TimeOfDay
	for _, c := range candidates {
		if c.Date != nil {
			lastDate = c.Date
		}
		if c.Time != nil {
			lastTime = c.Time
		}
	}

	evidence := scoring.Evidence{
		ResolvedDates: countDates(candidates),
		ResolvedTimes: countTimes(candidates),
		Participants:  len(people),
	}
	for _, s := range signals {
		switch s.Kind {
		case domain.SignalIntent:
			evidence.IntentSignals++
		case domain.SignalAvailability:
			evidence.AvailabilitySignals++
		}
	}

	confidence := scoring.Score(evidence, a.weights)
	a.log.Debug("Scored conversation",
		"conversation", conv.ID,
		"confidence", confidence,
		"intent", evidence.IntentSignals,
		"availability", evidence.AvailabilitySignals,
		"dates", evidence.ResolvedDates,
		"times", evidence.ResolvedTimes,
		"participants", evidence.Participants,
	)

	if confidence < threshold || lastDate == nil || len(people) == 0 {
		return domain.SchedulingProposal{}, false, nil
	}

	slot := defaultSlot
	if lastTime != nil {
		slot = *lastTime
	}

	return domain.SchedulingProposal{
		Date:         *lastDate,
		Time:         slot,
		Participants: people,
		Confidence:   confidence,
		Title:        "Team Meeting",
		Description:  summarize(conv.Messages),
	}, true, nil
}

func countDates(candidates []domain.TemporalCandidate) int {
	n := 0
	for _, c := range candidates {
		if c.Date != nil {
			n++
		}
	}
	return n
}

func countTimes(candidates []domain.TemporalCandidate) int {
	n := 0
	for _, c := range candidates {
		if c.Time != nil {
			n++
		}
	}
	return n
}

// summarize joins the conversation text into a short description.
func summarize(messages []domain.Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	joined := strings.Join(parts, " ")
	runes := []rune(joined)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + "..."
	}
	return joined
}
