package plan

import (
	"fmt"
	"math"
	"strings"

	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/domain"
)

// Generator derives 30-day plans from the catalog. Plans are not stored
// anywhere, so generation must return the same output for the same
// (category, user) on every call. The selection is a seeded shuffle keyed on
// user identity, day and session.
type Generator struct {
	catalog *content.Catalog
}

// NewGenerator creates a plan generator over the given catalog.
func NewGenerator(catalog *content.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate builds the full 30-day plan for one user.
// An unknown category aborts with content.ErrUnknownCategory.
func (g *Generator) Generate(category domain.FocusCategory, userID string, style domain.Style) ([]domain.DayPlan, error) {
	plans := make([]domain.DayPlan, 0, domain.ProgramDays)
	for d := 1; d <= domain.ProgramDays; d++ {
		p, err := g.Day(category, userID, style, d)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Day builds the plan for a single program day.
func (g *Generator) Day(category domain.FocusCategory, userID string, style domain.Style, day int) (domain.DayPlan, error) {
	if day < 1 || day > domain.ProgramDays {
		return domain.DayPlan{}, fmt.Errorf("plan: day %d out of range 1..%d", day, domain.ProgramDays)
	}

	p := domain.DayPlan{Day: day, Block: domain.BlockForDay(day)}
	for _, session := range domain.SessionOrder {
		phrases, err := g.sessionPhrases(category, userID, style, day, session)
		if err != nil {
			return domain.DayPlan{}, err
		}
		switch session {
		case domain.SessionMorning:
			p.Sessions.Morning = phrases
		case domain.SessionAfternoon:
			p.Sessions.Afternoon = phrases
		case domain.SessionEvening:
			p.Sessions.Evening = phrases
		}
	}
	return p, nil
}

// SessionPhrases returns the three affirmations of one session of one day.
func (g *Generator) SessionPhrases(category domain.FocusCategory, userID string, style domain.Style, day int, session domain.SessionType) ([]string, error) {
	if day < 1 || day > domain.ProgramDays {
		return nil, fmt.Errorf("plan: day %d out of range 1..%d", day, domain.ProgramDays)
	}
	return g.sessionPhrases(category, userID, style, day, session)
}

func (g *Generator) sessionPhrases(category domain.FocusCategory, userID string, style domain.Style, day int, session domain.SessionType) ([]string, error) {
	pool, err := g.catalog.Pool(category, session)
	if err != nil {
		return nil, err
	}

	seed := hash32(fmt.Sprintf("%s_%d_%s", userID, day, session))
	shuffled := seededShuffle(pool, seed)

	n := domain.PhrasesPerSession
	if n > len(shuffled) {
		n = len(shuffled)
	}
	phrases := make([]string, n)
	for i := 0; i < n; i++ {
		phrases[i] = Stylize(shuffled[i], style)
	}
	return phrases, nil
}

// Stylize rewrites a phrase into the user's preferred register. Classic (and
// unknown) styles pass through untouched.
func Stylize(phrase string, style domain.Style) string {
	switch style {
	case domain.StyleModern:
		phrase = strings.ReplaceAll(phrase, "Sunt", "Eu sunt")
		phrase = strings.ReplaceAll(phrase, "Merit", "Eu merit")
	case domain.StyleSpiritual:
		phrase = strings.ReplaceAll(phrase, "Sunt", "Divinul din mine este")
		phrase = strings.ReplaceAll(phrase, "Merit", "Universul îmi oferă")
	}
	return phrase
}

// hash32 folds a seed string into a non-negative 32-bit value using the
// classic shift-and-subtract string hash.
func hash32(s string) uint32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h<<5 - h + int32(s[i])
	}
	if h == math.MinInt32 {
		return 0
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// seededRandom is a stateless PRNG in [0,1) keyed entirely on its seed, so a
// shuffle driven by it is reproducible across restarts without persisting
// anything.
func seededRandom(seed uint32) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// seededShuffle Fisher-Yates-shuffles a copy of pool, drawing each swap index
// from seededRandom(seed + position).
func seededShuffle(pool []string, seed uint32) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	for i := len(shuffled); i != 0; {
		j := int(seededRandom(seed+uint32(i)) * float64(i))
		i--
		if j > i {
			j = i
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
