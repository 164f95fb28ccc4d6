// Package temporal parses free-form date and time expressions out of chat
// text. Resolution of relative expressions is driven by a caller-supplied
// reference instant; the package never reads the wall clock, which keeps
// extraction deterministic and testable.
//
// Chat text is noisy by nature: spans that fail to parse are dropped
// silently, never reported as errors.
package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"sched-lab/domain"
)

var (
	isoRe      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	numericRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	monthDayRe = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)
	relativeRe = regexp.MustCompile(`\b(today|tomorrow|next week|in (\d+) days?)\b`)
	weekdayRe  = regexp.MustCompile(`\b(?:(next|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	clockRe  = regexp.MustCompile(`\b(at|around|about)?\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm|o'?clock)?\b`)
	periodRe = regexp.MustCompile(`\b(morning|afternoon|evening|night|noon|midnight)\b`)
)

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// Times resolved from day-period words, matching the original heuristics of
// scheduling chat ("morning" means the 9 o'clock slot, not 00:00-11:59).
var periods = map[string]domain.TimeOfDay{
	"morning":   {Hour: 9},
	"afternoon": {Hour: 14},
	"evening":   {Hour: 18},
	"night":     {Hour: 20},
	"noon":      {Hour: 12},
	"midnight":  {Hour: 0},
}

// Extract reports every date and time candidate found in the text. Candidates
// carry the given message index so recency-based tie-breaking stays possible
// upstream. Conflict resolution between candidates is the caller's concern.
func Extract(text string, ref time.Time, messageIndex int) []domain.TemporalCandidate {
	lower := strings.ToLower(text)

	var out []domain.TemporalCandidate
	add := func(span string, d *time.Time, t *domain.TimeOfDay) {
		out = append(out, domain.TemporalCandidate{
			RawSpan:      span,
			Date:         d,
			Time:         t,
			MessageIndex: messageIndex,
		})
	}

	for _, m := range isoRe.FindAllStringSubmatch(lower, -1) {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if d, ok := buildDate(year, month, day); ok {
			add(m[0], &d, nil)
		}
	}

	for _, m := range numericRe.FindAllStringSubmatch(lower, -1) {
		// Written day-first: "5/3" is the 5th of March.
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if m[3] == "" {
			if d, ok := nearestFuture(ref, time.Month(month), day); ok {
				add(m[0], &d, nil)
			}
			continue
		}
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if d, ok := buildDate(year, month, day); ok {
			add(m[0], &d, nil)
		}
	}

	for _, m := range monthDayRe.FindAllStringSubmatch(lower, -1) {
		day, _ := strconv.Atoi(m[2])
		if d, ok := nearestFuture(ref, months[m[1]], day); ok {
			add(m[0], &d, nil)
		}
	}

	for _, m := range dayMonthRe.FindAllStringSubmatch(lower, -1) {
		day, _ := strconv.Atoi(m[1])
		if d, ok := nearestFuture(ref, months[m[2]], day); ok {
			add(m[0], &d, nil)
		}
	}

	for _, m := range relativeRe.FindAllStringSubmatch(lower, -1) {
		var days int
		switch {
		case m[1] == "today":
			days = 0
		case m[1] == "tomorrow":
			days = 1
		case m[1] == "next week":
			days = 7
		default:
			days, _ = strconv.Atoi(m[2])
		}
		d := midnight(ref).AddDate(0, 0, days)
		add(m[1], &d, nil)
	}

	for _, m := range weekdayRe.FindAllStringSubmatch(lower, -1) {
		target := weekdays[m[2]]
		ahead := (int(target) - int(midnight(ref).Weekday()) + 7) % 7
		if m[1] == "next" && ahead == 0 {
			ahead = 7
		}
		d := midnight(ref).AddDate(0, 0, ahead)
		add(strings.TrimSpace(m[0]), &d, nil)
	}

	for _, idx := range clockRe.FindAllStringSubmatchIndex(lower, -1) {
		m := submatches(lower, idx)
		prefix, hourStr, minuteStr, suffix := m[1], m[2], m[3], m[4]
		// A bare number is not a time; at least one qualifier is required.
		if prefix == "" && minuteStr == "" && suffix == "" {
			continue
		}
		// "about 5/3" is a date, not the time "about 5".
		if end := idx[1]; end < len(lower) && strings.ContainsRune("/.-", rune(lower[end])) {
			continue
		}
		hour, _ := strconv.Atoi(hourStr)
		minute := 0
		if minuteStr != "" {
			minute, _ = strconv.Atoi(minuteStr)
		}
		tod, ok := resolveClock(hour, minute, suffix)
		if !ok {
			continue
		}
		add(strings.TrimSpace(m[0]), nil, &tod)
	}

	for _, m := range periodRe.FindAllStringSubmatch(lower, -1) {
		tod := periods[m[1]]
		add(m[1], nil, &tod)
	}

	return out
}

// resolveClock normalizes an hour/minute pair to 24h time. Hours without an
// am/pm marker use a business-hours assumption: 1-7 reads as afternoon or
// evening, 8-12 as written.
func resolveClock(hour, minute int, suffix string) (domain.TimeOfDay, bool) {
	if hour > 23 || minute > 59 {
		return domain.TimeOfDay{}, false
	}
	switch suffix {
	case "am":
		if hour > 12 {
			return domain.TimeOfDay{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour > 12 {
			return domain.TimeOfDay{}, false
		}
		if hour != 12 {
			hour += 12
		}
	default: // bare hour, o'clock, or 24h clock value
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
	}
	return domain.TimeOfDay{Hour: hour, Minute: minute}, true
}

// nearestFuture resolves a month/day without a year to its next occurrence
// on or after the reference date. Meetings are forward-looking: the result
// is never in the past.
func nearestFuture(ref time.Time, month time.Month, day int) (time.Time, bool) {
	d, ok := buildDate(ref.Year(), int(month), day)
	if !ok {
		return time.Time{}, false
	}
	if d.Before(midnight(ref)) {
		d, ok = buildDate(ref.Year()+1, int(month), day)
	}
	return d, ok
}

// buildDate validates the components strictly; time.Date would silently
// normalize "February 31" into March.
func buildDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// submatches converts a FindAllStringSubmatchIndex entry into the strings a
// FindAllStringSubmatch entry would have produced.
func submatches(s string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		start, end := idx[2*i], idx[2*i+1]
		if start >= 0 {
			out[i] = s[start:end]
		}
	}
	return out
}
