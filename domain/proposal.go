package domain

import (
	"fmt"
	"time"
)

type SignalKind string

const (
	SignalIntent       SignalKind = "intent"
	SignalAvailability SignalKind = "availability"
)

// LexicalSignal is a keyword hit inside one message of a conversation.
// Signals are ephemeral: produced per analysis run, never persisted.
type LexicalSignal struct {
	Kind         SignalKind
	MatchedTerm  string
	MessageIndex int
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String renders the time as 24h "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TemporalCandidate is a parsed, not-yet-validated date or time span.
// A candidate may carry a date without a time or a time without a date.
type TemporalCandidate struct {
	RawSpan      string
	Date         *time.Time // normalized to midnight UTC
	Time         *TimeOfDay
	MessageIndex int
}

// SchedulingProposal is the sole output of a successful analysis run.
// It is produced fresh on every call and owned by the caller afterwards.
type SchedulingProposal struct {
	Date         time.Time
	Time         TimeOfDay
	Participants []string
	Confidence   float64
	Title        string
	Description  string
}
