package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("strips diacritics and punctuation", func(t *testing.T) {
		assert.Equal(t, "sunt recunoscator", Normalize("Sunt recunoscător!"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "sunt plin de energie", Normalize("  Sunt   plin\tde  energie  "))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("  ...  "))
	})
}

func TestMatcher_Match(t *testing.T) {
	m := New(DefaultThreshold)

	t.Run("exact repetition matches", func(t *testing.T) {
		assert.True(t, m.Match("Sunt plin de abundență", "sunt plin de abundenta"))
	})

	t.Run("diacritic-free transcript matches", func(t *testing.T) {
		assert.True(t, m.Match("Merit prosperitate și succes", "merit prosperitate si succes"))
	})

	t.Run("partial words match via prefixes", func(t *testing.T) {
		// Recognition often truncates word endings; the 4-char prefix on long
		// words still counts them.
		assert.True(t, m.Match("Sunt recunoscător pentru abundența mea", "recunosc abundenta"))
	})

	t.Run("unrelated transcript does not match", func(t *testing.T) {
		assert.False(t, m.Match("Sunt plin de abundență", "vremea este frumoasa azi"))
	})

	t.Run("empty transcript never matches", func(t *testing.T) {
		assert.False(t, m.Match("Sunt plin de abundență", ""))
		assert.Equal(t, 0, m.MatchCount("Sunt plin de abundență", ""))
	})

	t.Run("empty target never matches", func(t *testing.T) {
		assert.False(t, m.Match("", "sunt plin de abundenta"))
	})
}

func TestMatcher_Threshold(t *testing.T) {
	target := "Merit prosperitate reală"

	t.Run("one matched word fails at threshold two", func(t *testing.T) {
		m := New(2)
		assert.Equal(t, 1, m.MatchCount(target, "prosperitate"))
		assert.False(t, m.Match(target, "prosperitate"))
	})

	t.Run("one matched word passes at threshold one", func(t *testing.T) {
		m := New(1)
		assert.True(t, m.Match(target, "prosperitate"))
	})

	t.Run("non-positive threshold falls back to default", func(t *testing.T) {
		m := New(0)
		assert.Equal(t, DefaultThreshold, m.Threshold())
	})
}

func TestMatcher_MatchCount(t *testing.T) {
	m := New(DefaultThreshold)

	// Every target word present: full count.
	assert.Equal(t, 4, m.MatchCount("Sunt plin de abundență", "sunt plin de abundenta"))

	// "de" matches by short-word leniency only when a short spoken word shares
	// a prefix; an entirely different transcript yields zero.
	assert.Equal(t, 0, m.MatchCount("Merit tot binele", "xyz qqq"))
}
