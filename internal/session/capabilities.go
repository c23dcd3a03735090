package session

import "time"

// Capabilities describes what the client's recognition engine can do and how
// strictly utterances should be scored. It is injected at startup from
// configuration; the runner and matcher never sniff platforms themselves.
type Capabilities struct {
	// Continuous: the engine keeps listening across results. When false the
	// engine stops after each result and the machine drops to Idle between
	// non-matching attempts (constrained platforms).
	Continuous bool
	// InterimResults: the engine emits partial transcripts. Interim results
	// are never scored; the flag is echoed to clients for engine setup.
	InterimResults bool
	// MatchThreshold: minimum matched target words for a rep. 1 on platforms
	// with unreliable recognition, 2 otherwise.
	MatchThreshold int
	// Language is the recognition language tag handed to the engine.
	Language string
	// ListenTimeout force-stops a listening session that never produced a
	// result. Zero disables the timeout.
	ListenTimeout time.Duration
	// NoSpeechRetries bounds the auto-retry budget after no-speech errors on
	// non-continuous engines.
	NoSpeechRetries int
	// RepCooldown is how long further transcripts are ignored after a match.
	// Continuous engines can emit several final results for overlapping
	// audio; without the cooldown one utterance could count twice.
	RepCooldown time.Duration
}

// DefaultCapabilities matches a capable browser engine.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Continuous:      true,
		InterimResults:  true,
		MatchThreshold:  2,
		Language:        "ro-RO",
		ListenTimeout:   30 * time.Second,
		NoSpeechRetries: 0,
		RepCooldown:     2 * time.Second,
	}
}

// ConstrainedCapabilities matches engines that emit one unreliable result at
// a time (the Safari-on-iPhone class of platform).
func ConstrainedCapabilities() Capabilities {
	return Capabilities{
		Continuous:      false,
		InterimResults:  false,
		MatchThreshold:  1,
		Language:        "ro-RO",
		ListenTimeout:   30 * time.Second,
		NoSpeechRetries: 3,
		RepCooldown:     2 * time.Second,
	}
}
