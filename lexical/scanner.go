package lexical

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"

	"sched-lab/domain"
	"sched-lab/errors"
)

// Scanner matches scheduling vocabulary against free-form chat text.
// Matching is token based, not semantic; overlapping hits are all reported.
// A Scanner is immutable after construction and safe for concurrent use.
type Scanner struct {
	machines map[whatlanggo.Lang]*goahocorasick.Machine
	kinds    map[whatlanggo.Lang]map[string]domain.SignalKind
	fallback whatlanggo.Lang
}

// NewScanner builds one Aho-Corasick automaton per language table.
func NewScanner(tables map[whatlanggo.Lang][]Term) (*Scanner, error) {
	if len(tables) == 0 {
		return nil, errors.ErrEmptyVocabulary
	}

	s := &Scanner{
		machines: make(map[whatlanggo.Lang]*goahocorasick.Machine, len(tables)),
		kinds:    make(map[whatlanggo.Lang]map[string]domain.SignalKind, len(tables)),
		fallback: whatlanggo.Eng,
	}

	for lang, terms := range tables {
		if len(terms) == 0 {
			return nil, errors.ErrEmptyVocabulary
		}
		patterns := make([][]rune, 0, len(terms))
		kinds := make(map[string]domain.SignalKind, len(terms))
		for _, t := range terms {
			norm := normalizeRunes([]rune(t.Text))
			if len(norm) == 0 {
				continue
			}
			patterns = append(patterns, norm)
			kinds[string(norm)] = t.Kind
		}

		m := new(goahocorasick.Machine)
		if err := m.Build(patterns); err != nil {
			return nil, err
		}
		s.machines[lang] = m
		s.kinds[lang] = kinds
	}

	if _, ok := s.machines[s.fallback]; !ok {
		// Any table can serve as fallback when English is not shipped.
		for lang := range s.machines {
			s.fallback = lang
			break
		}
	}
	return s, nil
}

// Scan reports every vocabulary hit in the text, tagged with the index of
// the message it came from. Pure function of its input.
func (s *Scanner) Scan(text string, messageIndex int) []domain.LexicalSignal {
	lang := whatlanggo.DetectLang(text)
	machine, ok := s.machines[lang]
	if !ok {
		machine = s.machines[s.fallback]
		lang = s.fallback
	}

	norm := normalizeRunes([]rune(text))
	if len(norm) == 0 {
		return nil
	}

	var signals []domain.LexicalSignal
	for _, hit := range machine.MultiPatternSearch(norm, false) {
		start := hit.Pos
		end := start + len(hit.Word)
		if !isWordBounded(norm, start, end) {
			continue
		}
		word := string(hit.Word)
		signals = append(signals, domain.LexicalSignal{
			Kind:         s.kinds[lang][word],
			MatchedTerm:  word,
			MessageIndex: messageIndex,
		})
	}
	return signals
}

// isWordBounded rejects hits embedded inside a larger token ("call" in "recall").
func isWordBounded(runes []rune, start, end int) bool {
	if start > 0 && runes[start-1] != ' ' {
		return false
	}
	if end < len(runes) && runes[end] != ' ' {
		return false
	}
	return true
}

// normalizeRunes lowercases locale-independently and collapses every run of
// punctuation, symbols and whitespace into a single space, so that the same
// transform applies to both patterns and scanned text.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	lastSpace := true
	for _, r := range input {
		if isNoise(r) {
			if !lastSpace {
				out = append(out, ' ')
				lastSpace = true
			}
			continue
		}
		out = append(out, unicode.ToLower(r))
		lastSpace = false
	}
	if n := len(out); n > 0 && out[n-1] == ' ' {
		out = out[:n-1]
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
