// Package gate decides which program day and session a user may work on.
// Everything here is pure over a progress snapshot and a calendar-day string;
// the one legitimate mutation (new-day rollover) is expressed as a decision
// the caller applies to the store before evaluating.
package gate

import "manisera/affirmation-app/internal/domain"

// State classifies the outcome of a day-access request.
type State string

const (
	// Open: the requested day may be worked on as-is.
	Open State = "open"
	// LockedSequential: the requested day skips ahead of the sequence; the
	// user is clamped back to the next unfinished day.
	LockedSequential State = "locked_sequential"
	// BlockedDailyQuota: a day was already completed this calendar day; new
	// days are blocked until tomorrow.
	BlockedDailyQuota State = "blocked_daily_quota"
)

// Snapshot is the slice of progress state the gate reads.
type Snapshot struct {
	LastCompletedDay     int
	LastAccessDate       string
	LastCompletedDayDate string
}

// Evaluation is the gate's verdict: the state and the day access is clamped to.
type Evaluation struct {
	AllowedDay int
	State      State
}

// NeedsRollover reports whether the calendar day has changed since the last
// access. The caller must apply the rollover (clear LastCompletedDayDate, set
// LastAccessDate=today) to the store AND to the snapshot before calling
// Evaluate. A new day always clears the daily-quota block.
func NeedsRollover(snap Snapshot, today string) bool {
	return snap.LastAccessDate != today
}

// Rollover returns the snapshot with the new-day reset applied.
func Rollover(snap Snapshot, today string) Snapshot {
	snap.LastAccessDate = today
	snap.LastCompletedDayDate = ""
	return snap
}

// Evaluate decides whether requestedDay may be accessed today.
func Evaluate(requestedDay int, snap Snapshot, today string) Evaluation {
	if requestedDay < 1 {
		requestedDay = 1
	}
	if requestedDay > domain.ProgramDays {
		requestedDay = domain.ProgramDays
	}

	hasCompletedToday := snap.LastCompletedDayDate != "" && snap.LastCompletedDayDate == today

	if hasCompletedToday && requestedDay > snap.LastCompletedDay {
		allowed := snap.LastCompletedDay
		if allowed < 1 {
			allowed = 1
		}
		return Evaluation{AllowedDay: allowed, State: BlockedDailyQuota}
	}

	if requestedDay > snap.LastCompletedDay+1 {
		return Evaluation{AllowedDay: snap.LastCompletedDay + 1, State: LockedSequential}
	}

	return Evaluation{AllowedDay: requestedDay, State: Open}
}

// SessionLocked reports whether a session of a day is barred because the one
// before it is not complete. Morning is always available; sessions unlock
// strictly in order within the day.
func SessionLocked(completed map[domain.SessionType]bool, session domain.SessionType) bool {
	prev := session.Previous()
	if prev == "" {
		return false
	}
	return !completed[prev]
}
