package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"manisera/affirmation-app/internal/domain"
)

// --- Error Definitions ---
var (
	// ErrUnknownCategory means a category not present in the catalog was
	// requested. This is a configuration error: plan generation must abort,
	// not silently fall back to a default pool.
	ErrUnknownCategory = errors.New("unknown focus category")
)

// sessionPools holds one category's phrase pools, partitioned by session.
type sessionPools struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

func (p sessionPools) forSession(s domain.SessionType) []string {
	switch s {
	case domain.SessionMorning:
		return p.Morning
	case domain.SessionAfternoon:
		return p.Afternoon
	case domain.SessionEvening:
		return p.Evening
	}
	return nil
}

// Catalog is the fixed affirmation catalog: per focus category, one phrase
// pool per session type. It is pure data; the only logic is lookup.
type Catalog struct {
	pools map[domain.FocusCategory]sessionPools
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{pools: builtinPools}
}

// FromJSON builds a catalog from a JSON document of the shape
// {"bani": {"morning": [...], "afternoon": [...], "evening": [...]}, ...}.
// Every supported category must be present with pools large enough to select
// distinct phrases from.
func FromJSON(data []byte) (*Catalog, error) {
	var raw map[domain.FocusCategory]sessionPools
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: invalid JSON: %w", err)
	}
	for _, cat := range domain.FocusCategories {
		p, ok := raw[cat]
		if !ok {
			return nil, fmt.Errorf("catalog: missing category %q", cat)
		}
		for _, s := range domain.SessionOrder {
			if len(p.forSession(s)) < domain.PhrasesPerSession {
				return nil, fmt.Errorf("catalog: category %q session %q has fewer than %d phrases",
					cat, s, domain.PhrasesPerSession)
			}
		}
	}
	return &Catalog{pools: raw}, nil
}

// Pool returns the phrase pool for one category and session.
func (c *Catalog) Pool(category domain.FocusCategory, session domain.SessionType) ([]string, error) {
	p, ok := c.pools[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	pool := p.forSession(session)
	if pool == nil {
		return nil, fmt.Errorf("content: unknown session type %q", session)
	}
	return pool, nil
}
