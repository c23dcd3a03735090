package domain

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayKey renders a day number the way it is keyed in the persisted maps.
func DayKey(day int) string { return strconv.Itoa(day) }

func dayKey(day int) string { return DayKey(day) }

// SessionCursor is the transient within-session position: which affirmation
// the user is on and how many reps of it have been recognized. It is cleared
// when the session completes.
type SessionCursor struct {
	AffirmationIndex int `bson:"affirmationIndex" json:"affirmationIndex"`
	Reps             int `bson:"reps" json:"reps"`
}

// Progress is the whole persisted progress state of one user.
//
// Day completion is intentionally NOT stored: a day is complete iff all three
// of its sessions are complete, and that fact is derived on read. Storing it
// redundantly would open a window where a crash between two writes leaves the
// sessions and the day disagreeing.
type Progress struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	// Sessions maps day number (as a decimal string, Mongo map keys must be
	// strings) to the set of completed sessions of that day.
	Sessions map[string]map[SessionType]bool `bson:"sessions,omitempty" json:"sessions,omitempty"`

	// Cursors maps day number to the in-flight cursor per session.
	Cursors map[string]map[SessionType]SessionCursor `bson:"cursors,omitempty" json:"cursors,omitempty"`

	// Calendar-day strings in the device-local representation reported by the
	// client. Used only for equality checks, never parsed.
	LastAccessDate       string `bson:"lastAccessDate,omitempty" json:"lastAccessDate,omitempty"`
	LastCompletedDayDate string `bson:"lastCompletedDayDate,omitempty" json:"lastCompletedDayDate,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EmptyProgress returns the zero progress state for a user.
func EmptyProgress(userID primitive.ObjectID) *Progress {
	return &Progress{
		UserID:   userID,
		Sessions: map[string]map[SessionType]bool{},
		Cursors:  map[string]map[SessionType]SessionCursor{},
	}
}

// CompletedSessions returns the completed-session set for a day (never nil).
func (p *Progress) CompletedSessions(day int) map[SessionType]bool {
	if m, ok := p.Sessions[dayKey(day)]; ok && m != nil {
		return m
	}
	return map[SessionType]bool{}
}

// IsSessionComplete reports whether one session of one day is done.
func (p *Progress) IsSessionComplete(day int, session SessionType) bool {
	return p.CompletedSessions(day)[session]
}

// IsDayComplete derives day completion from the atomic session facts.
func (p *Progress) IsDayComplete(day int) bool {
	done := p.CompletedSessions(day)
	for _, s := range SessionOrder {
		if !done[s] {
			return false
		}
	}
	return true
}

// CompletedDays derives the set of fully completed days.
func (p *Progress) CompletedDays() []int {
	var days []int
	for d := 1; d <= ProgramDays; d++ {
		if p.IsDayComplete(d) {
			days = append(days, d)
		}
	}
	return days
}

// LastCompletedDay is the highest fully completed day, or 0.
func (p *Progress) LastCompletedDay() int {
	last := 0
	for d := 1; d <= ProgramDays; d++ {
		if p.IsDayComplete(d) {
			last = d
		}
	}
	return last
}

// Cursor returns the stored cursor for a day/session, zero if absent.
func (p *Progress) Cursor(day int, session SessionType) SessionCursor {
	if m, ok := p.Cursors[dayKey(day)]; ok {
		return m[session]
	}
	return SessionCursor{}
}

// DayStatus is the derived per-day view the program overview exposes.
type DayStatus struct {
	Day       int          `json:"day"`
	Block     ProgramBlock `json:"block"`
	Completed bool         `json:"completed"`
	Locked    bool         `json:"locked"`
}
