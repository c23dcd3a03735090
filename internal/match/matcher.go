// Package match scores recognized speech transcripts against target
// affirmation phrases. The heuristic is intentionally lenient: on-device
// recognition quality varies wildly across platforms, and this is a
// motivational tool, not a speech-grading system.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the number of target words that must be matched on a
// platform with decent recognition results.
const DefaultThreshold = 2

// longWordPrefix / shortWordPrefix are the prefix lengths used for the loose
// containment checks on long (>4) and short (<=4) words.
const (
	longWordPrefix  = 4
	shortWordPrefix = 2
)

// Matcher scores transcripts against phrases with a configurable threshold.
// The zero value is not usable; construct with New.
type Matcher struct {
	threshold int
}

// New returns a matcher requiring at least threshold matched target words.
// A non-positive threshold falls back to the default; constrained platforms
// (where the recognizer emits a single unreliable result) configure 1.
func New(threshold int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured match threshold.
func (m *Matcher) Threshold() int { return m.threshold }

// Match reports whether transcript counts as one utterance of target.
// An empty transcript never matches.
func (m *Matcher) Match(target, transcript string) bool {
	return m.MatchCount(target, transcript) >= m.threshold
}

// MatchCount returns how many target words found a counterpart in the
// transcript. Exposed so callers can echo scoring detail back to the client.
func (m *Matcher) MatchCount(target, transcript string) int {
	targetWords := tokenize(target)
	spokenWords := tokenize(transcript)
	if len(targetWords) == 0 || len(spokenWords) == 0 {
		return 0
	}

	count := 0
	for _, word := range targetWords {
		for _, spoken := range spokenWords {
			if wordsMatch(word, spoken) {
				count++
				break
			}
		}
	}
	return count
}

// wordsMatch applies the per-word leniency ladder: exact, containment either
// direction, then prefix containment scaled to word length.
func wordsMatch(word, spoken string) bool {
	if spoken == word {
		return true
	}
	if strings.Contains(spoken, word) || strings.Contains(word, spoken) {
		return true
	}
	if len(word) > longWordPrefix && len(spoken) > longWordPrefix {
		return strings.Contains(spoken, word[:longWordPrefix]) ||
			strings.Contains(word, spoken[:longWordPrefix])
	}
	if len(word) <= longWordPrefix && len(spoken) <= longWordPrefix {
		wp, sp := word, spoken
		if len(wp) > shortWordPrefix {
			wp = wp[:shortWordPrefix]
		}
		if len(sp) > shortWordPrefix {
			sp = sp[:shortWordPrefix]
		}
		return strings.Contains(spoken, wp) || strings.Contains(word, sp)
	}
	return false
}

// stripDiacritics decomposes to NFD, drops combining marks, and recomposes.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and punctuation, and collapses
// whitespace. "Sunt recunoscător!" and "sunt recunoscator" normalize equal.
func Normalize(s string) string {
	folded, _, err := transform.String(stripDiacritics, strings.ToLower(s))
	if err != nil {
		// transform only fails on malformed UTF-8; keep the lowercased input.
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			// punctuation: dropped entirely
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenize(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Fields(n)
}
