package domain

// SessionType is one of the three daily time blocks.
type SessionType string

const (
	SessionMorning   SessionType = "morning"
	SessionAfternoon SessionType = "afternoon"
	SessionEvening   SessionType = "evening"
)

// SessionOrder is the sequence sessions must be completed in within a day.
var SessionOrder = []SessionType{SessionMorning, SessionAfternoon, SessionEvening}

// IsValid reports whether s is a known session type.
func (s SessionType) IsValid() bool {
	return s == SessionMorning || s == SessionAfternoon || s == SessionEvening
}

// Previous returns the session that must be completed before s, or "" for the
// morning session.
func (s SessionType) Previous() SessionType {
	switch s {
	case SessionAfternoon:
		return SessionMorning
	case SessionEvening:
		return SessionAfternoon
	}
	return ""
}

// ProgramBlock is the phase of the 30-day arc a day belongs to.
type ProgramBlock string

const (
	BlockActivate  ProgramBlock = "activate"  // days 1-7
	BlockDeepen    ProgramBlock = "deepen"    // days 8-20
	BlockIntegrate ProgramBlock = "integrate" // days 21-30
)

// BlockForDay maps a program day to its block.
func BlockForDay(day int) ProgramBlock {
	switch {
	case day <= 7:
		return BlockActivate
	case day <= 20:
		return BlockDeepen
	default:
		return BlockIntegrate
	}
}

const (
	// ProgramDays is the fixed length of the program.
	ProgramDays = 30
	// PhrasesPerSession is how many affirmations each session contains.
	PhrasesPerSession = 3
	// TargetReps is how many recognized utterances complete one affirmation.
	TargetReps = 3
)

// SessionPhrases holds the three affirmation sequences of one day.
type SessionPhrases struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

// ForSession returns the phrase sequence for the given session type.
func (p SessionPhrases) ForSession(s SessionType) []string {
	switch s {
	case SessionMorning:
		return p.Morning
	case SessionAfternoon:
		return p.Afternoon
	case SessionEvening:
		return p.Evening
	}
	return nil
}

// DayPlan is one derived day of the program. Plans are never stored; they are
// recomputed from the profile and the catalog on every access, so generation
// must be deterministic for the same (user, category) inputs.
type DayPlan struct {
	Day      int            `json:"day"`
	Block    ProgramBlock   `json:"block"`
	Sessions SessionPhrases `json:"sessions"`
}
