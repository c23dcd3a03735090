package content

import (
	"encoding/json"
	"testing"

	"manisera/affirmation-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	for _, cat := range domain.FocusCategories {
		for _, session := range domain.SessionOrder {
			pool, err := c.Pool(cat, session)
			require.NoError(t, err, "category %q session %q", cat, session)
			assert.GreaterOrEqual(t, len(pool), domain.PhrasesPerSession,
				"category %q session %q pool too small", cat, session)
		}
	}
}

func TestCatalog_UnknownCategory(t *testing.T) {
	c := Default()
	_, err := c.Pool("necunoscut", domain.SessionMorning)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalog_UnknownSession(t *testing.T) {
	c := Default()
	_, err := c.Pool(domain.FocusBani, domain.SessionType("noapte"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	fullDoc := func() map[domain.FocusCategory]sessionPools {
		doc := map[domain.FocusCategory]sessionPools{}
		for _, cat := range domain.FocusCategories {
			doc[cat] = sessionPools{
				Morning:   []string{"a", "b", "c"},
				Afternoon: []string{"d", "e", "f"},
				Evening:   []string{"g", "h", "i"},
			}
		}
		return doc
	}

	t.Run("valid document", func(t *testing.T) {
		data, err := json.Marshal(fullDoc())
		require.NoError(t, err)

		c, err := FromJSON(data)
		require.NoError(t, err)
		pool, err := c.Pool(domain.FocusCalm, domain.SessionEvening)
		require.NoError(t, err)
		assert.Equal(t, []string{"g", "h", "i"}, pool)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := FromJSON([]byte("{not json"))
		assert.Error(t, err)
	})

	t.Run("missing category", func(t *testing.T) {
		doc := fullDoc()
		delete(doc, domain.FocusFocus)
		data, err := json.Marshal(doc)
		require.NoError(t, err)

		_, err = FromJSON(data)
		assert.ErrorContains(t, err, "missing category")
	})

	t.Run("pool too small", func(t *testing.T) {
		doc := fullDoc()
		doc[domain.FocusBani] = sessionPools{
			Morning:   []string{"a"},
			Afternoon: []string{"d", "e", "f"},
			Evening:   []string{"g", "h", "i"},
		}
		data, err := json.Marshal(doc)
		require.NoError(t, err)

		_, err = FromJSON(data)
		assert.ErrorContains(t, err, "fewer than")
	})
}

func TestContextMessage(t *testing.T) {
	t.Run("category-specific messages win", func(t *testing.T) {
		msg := ContextMessage(domain.SessionMorning, 1, domain.FocusBani)
		generic := ContextMessage(domain.SessionMorning, 1, domain.FocusCalm)
		assert.NotEmpty(t, msg)
		assert.NotEqual(t, generic, msg)
	})

	t.Run("rotates by day", func(t *testing.T) {
		a := ContextMessage(domain.SessionEvening, 1, domain.FocusCalm)
		b := ContextMessage(domain.SessionEvening, 2, domain.FocusCalm)
		assert.NotEqual(t, a, b)
	})

	t.Run("wraps around the message list", func(t *testing.T) {
		a := ContextMessage(domain.SessionMorning, 1, domain.FocusCalm)
		b := ContextMessage(domain.SessionMorning, 11, domain.FocusCalm)
		assert.Equal(t, a, b)
	})
}
