package session

import (
	"errors"
	"sync"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/match"
)

// State of one session machine.
type State string

const (
	// Idle: not listening. Start() moves to Listening.
	Idle State = "idle"
	// Listening: capturing transcripts; matches advance the counters.
	Listening State = "listening"
	// Complete: all affirmations repeated; terminal for this session.
	Complete State = "complete"
)

// EngineErrorKind classifies errors reported by the client's speech engine.
type EngineErrorKind string

const (
	EngineErrNoSpeech     EngineErrorKind = "no-speech"
	EngineErrNotAllowed   EngineErrorKind = "not-allowed"
	EngineErrUnavailable  EngineErrorKind = "unavailable"
	EngineErrAborted      EngineErrorKind = "aborted"
	EngineErrNetwork      EngineErrorKind = "network"
	EngineErrAudioCapture EngineErrorKind = "audio-capture"
)

// --- Error Definitions ---
var (
	ErrSessionComplete = errors.New("session is already complete")
	ErrNotListening    = errors.New("session is not listening")
	// ErrRecognitionUnavailable: fatal to the feature on this device. The
	// session stays unusable until the engine is available again.
	ErrRecognitionUnavailable = errors.New("speech recognition is not available on this device")
	// ErrMicrophoneDenied is user-actionable: surfaced as a blocking message.
	ErrMicrophoneDenied = errors.New("microphone permission denied")
)

// Outcome describes what one transcript (or engine event) did to the machine.
type Outcome struct {
	Matched      bool `json:"matched"`
	MatchedWords int  `json:"matchedWords"`

	AffirmationIndex int `json:"affirmationIndex"`
	Reps             int `json:"reps"`

	AffirmationAdvanced bool `json:"affirmationAdvanced"`
	SessionCompleted    bool `json:"sessionCompleted"`

	// RetryListening tells the client to restart the engine (bounded
	// no-speech auto-retry on constrained platforms).
	RetryListening bool `json:"retryListening,omitempty"`
}

// Machine drives one affirmation-repetition loop for a single (user, day,
// session). It is safe for concurrent use; HTTP requests may race.
type Machine struct {
	mu sync.Mutex

	affirmations []string
	targetReps   int
	caps         Capabilities
	matcher      *match.Matcher
	now          func() time.Time

	state State
	index int // current affirmation, 0-based
	reps  int

	// Rep lock: once a match increments the counter, further transcripts are
	// ignored until the cooldown passes or the machine advances. Expiry is
	// time-based rather than a manually toggled flag so the lock can never
	// leak "locked forever" on an abandoned session.
	lockedUntil time.Time

	retriesLeft int
	listenSeq   int
	timer       *time.Timer
}

// NewMachine builds a machine over the session's affirmations, resuming from
// a stored cursor.
func NewMachine(affirmations []string, cursor domain.SessionCursor, caps Capabilities, matcher *match.Matcher, targetReps int) *Machine {
	if targetReps <= 0 {
		targetReps = domain.TargetReps
	}
	m := &Machine{
		affirmations: affirmations,
		targetReps:   targetReps,
		caps:         caps,
		matcher:      matcher,
		now:          time.Now,
		state:        Idle,
		index:        cursor.AffirmationIndex,
		reps:         cursor.Reps,
	}
	if m.index < 0 {
		m.index = 0
	}
	if m.index >= len(affirmations) {
		m.index = len(affirmations) - 1
	}
	if m.reps < 0 {
		m.reps = 0
	}
	if m.reps > targetReps {
		m.reps = targetReps
	}
	return m
}

// State returns the current machine state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Cursor returns the persistable within-session position.
func (m *Machine) Cursor() domain.SessionCursor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.SessionCursor{AffirmationIndex: m.index, Reps: m.reps}
}

// CurrentAffirmation returns the phrase the user should be repeating.
func (m *Machine) CurrentAffirmation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index < 0 || m.index >= len(m.affirmations) {
		return ""
	}
	return m.affirmations[m.index]
}

// Start moves Idle -> Listening. Starting while already listening is a no-op;
// starting a completed session is an error.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Complete {
		return ErrSessionComplete
	}
	if m.state == Listening {
		return nil
	}

	m.state = Listening
	m.retriesLeft = m.caps.NoSpeechRetries
	m.armTimeoutLocked()
	return nil
}

// Stop returns to Idle. Counters are untouched; only recognition state is
// cleared, so an interrupted session resumes where it left off.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopListeningLocked()
}

// Transcript scores one final transcript against the current affirmation and
// applies the resulting transition.
func (m *Machine) Transcript(text string) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Complete {
		return m.outcomeLocked(), ErrSessionComplete
	}
	if m.state != Listening {
		return m.outcomeLocked(), ErrNotListening
	}

	// Rep lock active: overlapping final results for the same utterance are
	// dropped on the floor.
	if m.now().Before(m.lockedUntil) {
		return m.outcomeLocked(), nil
	}

	target := m.affirmations[m.index]
	matched := m.matcher.Match(target, text)
	out := m.outcomeLocked()
	out.MatchedWords = m.matcher.MatchCount(target, text)

	if !matched {
		if !m.caps.Continuous {
			// One-shot engines stop after every result; await manual restart.
			m.stopListeningLocked()
		}
		return out, nil
	}

	// RepMatched: acquire the lock, bump the counter, decide the transition.
	m.lockedUntil = m.now().Add(m.caps.RepCooldown)
	if m.reps < m.targetReps {
		m.reps++
	}
	out.Matched = true
	out.Reps = m.reps

	if m.reps < m.targetReps {
		// More reps of the same affirmation: back to Idle, lock expires on
		// the cooldown.
		m.stopListeningLocked()
		return out, nil
	}

	if m.index < len(m.affirmations)-1 {
		// Affirmation complete. The rep lock is released so the next
		// affirmation starts clean.
		m.index++
		m.reps = 0
		m.lockedUntil = time.Time{}
		m.stopListeningLocked()
		out.AffirmationAdvanced = true
		out.AffirmationIndex = m.index
		out.Reps = 0
		return out, nil
	}

	// Last affirmation done: the session is complete.
	m.index = 0
	m.reps = 0
	m.lockedUntil = time.Time{}
	m.stopListeningLocked()
	m.state = Complete
	out.SessionCompleted = true
	out.AffirmationIndex = 0
	out.Reps = 0
	return out, nil
}

// EngineError applies a recognition error reported by the client.
func (m *Machine) EngineError(kind EngineErrorKind) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.outcomeLocked()

	switch kind {
	case EngineErrUnavailable:
		m.stopListeningLocked()
		return out, ErrRecognitionUnavailable
	case EngineErrNotAllowed:
		m.stopListeningLocked()
		return out, ErrMicrophoneDenied
	case EngineErrNoSpeech:
		if !m.caps.Continuous && m.retriesLeft > 0 && m.state == Listening {
			m.retriesLeft--
			m.armTimeoutLocked()
			out.RetryListening = true
			return out, nil
		}
		m.stopListeningLocked()
		return out, nil
	default:
		// aborted, network, audio-capture: recoverable, back to Idle.
		m.stopListeningLocked()
		return out, nil
	}
}

// armTimeoutLocked (re)arms the bounded listen timeout. A stale timer from a
// previous listening window is neutralized by the sequence check.
func (m *Machine) armTimeoutLocked() {
	if m.caps.ListenTimeout <= 0 {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.listenSeq++
	seq := m.listenSeq
	m.timer = time.AfterFunc(m.caps.ListenTimeout, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.listenSeq == seq && m.state == Listening {
			m.state = Idle
		}
	})
}

func (m *Machine) stopListeningLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.listenSeq++
	if m.state == Listening {
		m.state = Idle
	}
}

func (m *Machine) outcomeLocked() Outcome {
	return Outcome{AffirmationIndex: m.index, Reps: m.reps}
}
