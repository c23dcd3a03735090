package session

import (
	"sync"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/match"
)

// Key identifies one active session machine.
type Key struct {
	UserID  string
	Day     int
	Session domain.SessionType
}

// Runner owns the in-memory session machines. One logical session machine
// exists at a time per (user, day, session); machines are created lazily from
// the persisted cursor and dropped when their session completes.
type Runner struct {
	mu       sync.Mutex
	machines map[Key]*Machine

	caps       Capabilities
	matcher    *match.Matcher
	targetReps int
}

// NewRunner creates a runner with the injected recognition capabilities.
func NewRunner(caps Capabilities, targetReps int) *Runner {
	if targetReps <= 0 {
		targetReps = domain.TargetReps
	}
	return &Runner{
		machines:   make(map[Key]*Machine),
		caps:       caps,
		matcher:    match.New(caps.MatchThreshold),
		targetReps: targetReps,
	}
}

// Capabilities returns the runner's injected recognition configuration.
func (r *Runner) Capabilities() Capabilities { return r.caps }

// Machine returns the live machine for key, creating one seeded from cursor
// if none exists yet.
func (r *Runner) Machine(key Key, affirmations []string, cursor domain.SessionCursor) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.machines[key]; ok {
		return m
	}
	m := NewMachine(affirmations, cursor, r.caps, r.matcher, r.targetReps)
	r.machines[key] = m
	return m
}

// Peek returns the live machine for key if one exists.
func (r *Runner) Peek(key Key) (*Machine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[key]
	return m, ok
}

// Forget drops the machine for key. Called when a session completes (its
// cursor is cleared in the store) or when stale state should be rebuilt.
func (r *Runner) Forget(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.machines[key]; ok {
		m.Stop()
		delete(r.machines, key)
	}
}
