// Package scoring turns extracted signal counts into a single confidence
// value. Chat messages are short and any one cue alone is weak evidence, so
// the score rewards independent converging signals instead of any single
// strong one.
package scoring

// Evidence is the signal summary of one analysis run.
type Evidence struct {
	IntentSignals       int
	AvailabilitySignals int
	ResolvedDates       int
	ResolvedTimes       int
	Participants        int
}

// Weights compose the confidence score. They must sum to at most 1.0 so the
// result never exceeds the [0,1] range.
type Weights struct {
	Intent       float64
	Availability float64
	Date         float64
	Time         float64
	Participants float64
}

// DefaultWeights mirror the original scoring split, with a slice of the
// intent weight moved to availability signals so that a conversation stating
// only availability still registers.
func DefaultWeights() Weights {
	return Weights{
		Intent:       0.30,
		Availability: 0.10,
		Date:         0.25,
		Time:         0.15,
		Participants: 0.20,
	}
}

// Score is a pure function of the evidence: no randomness, no external
// state. Each weight is granted once for signal presence, not per hit.
func Score(e Evidence, w Weights) float64 {
	score := 0.0
	if e.IntentSignals > 0 {
		score += w.Intent
	}
	if e.AvailabilitySignals > 0 {
		score += w.Availability
	}
	if e.ResolvedDates > 0 {
		score += w.Date
	}
	if e.ResolvedTimes > 0 {
		score += w.Time
	}
	if e.Participants >= 2 {
		score += w.Participants
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
