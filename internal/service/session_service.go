package service

import (
	"context"
	"errors"
	"log"

	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/gate"
	"manisera/affirmation-app/internal/plan"
	"manisera/affirmation-app/internal/repository"
	"manisera/affirmation-app/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrDayLocked         = errors.New("program day is locked: previous days are not complete")
	ErrDailyQuotaReached = errors.New("a program day was already completed today")
	ErrSessionLocked     = errors.New("session is locked: previous session of the day is not complete")
	ErrPremiumRequired   = errors.New("premium subscription required for this session")
	ErrSessionDone       = errors.New("session is already complete")
	ErrEmptyTranscript   = errors.New("transcript cannot be empty")
)

// SessionState is the client-facing view of one live (or resumable) session.
type SessionState struct {
	Day     int                `json:"day"`
	Session domain.SessionType `json:"session"`
	State   session.State      `json:"state"`

	AffirmationIndex   int    `json:"affirmationIndex"`
	Reps               int    `json:"reps"`
	TargetReps         int    `json:"targetReps"`
	CurrentAffirmation string `json:"currentAffirmation"`

	Affirmations   []string `json:"affirmations"`
	ContextMessage string   `json:"contextMessage,omitempty"`
	Completed      bool     `json:"completed"`
}

// TranscriptResult is what one submitted transcript did.
type TranscriptResult struct {
	session.Outcome
	State        session.State `json:"state"`
	DayCompleted bool          `json:"dayCompleted"`
}

// --- Service Interface ---

// SessionService drives the affirmation-repetition loop over HTTP. The client
// owns the microphone and the speech engine; it posts final transcripts (or
// engine errors) here, and this service scores them, advances the per-session
// state machine and persists progress.
type SessionService interface {
	Start(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today string) (*SessionState, error)

	// SubmitTranscript scores a final transcript. Exactly one of transcript
	// and engineErr should be set; an engine error is applied to the machine
	// instead of being scored.
	SubmitTranscript(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today, transcript string, engineErr session.EngineErrorKind) (*TranscriptResult, error)

	Stop(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType) (*SessionState, error)

	Get(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today string) (*SessionState, error)
}

// --- Service Implementation ---

type sessionService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	premiumSvc   PremiumService
	generator    *plan.Generator
	runner       *session.Runner
	targetReps   int
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	premiumSvc PremiumService,
	generator *plan.Generator,
	runner *session.Runner,
	targetReps int,
) SessionService {
	if targetReps <= 0 {
		targetReps = domain.TargetReps
	}
	return &sessionService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		premiumSvc:   premiumSvc,
		generator:    generator,
		runner:       runner,
		targetReps:   targetReps,
	}
}

// sessionAccess bundles everything the access checks resolve.
type sessionAccess struct {
	user         *domain.User
	progress     *domain.Progress
	affirmations []string
	key          session.Key
}

// resolve runs every gate in order: day validity, new-day rollover, daily
// quota, day sequence, premium tier, within-day session sequence.
func (s *sessionService) resolve(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today string) (*sessionAccess, error) {
	if day < 1 || day > domain.ProgramDays {
		return nil, ErrInvalidDay
	}
	if !st.IsValid() {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	today = orServerDate(today)

	progress, err := progressForToday(ctx, s.progressRepo, userID, today)
	if err != nil {
		return nil, err
	}

	eval := gate.Evaluate(day, snapshotOf(progress), today)
	if eval.AllowedDay != day {
		switch eval.State {
		case gate.BlockedDailyQuota:
			return nil, ErrDailyQuotaReached
		default:
			return nil, ErrDayLocked
		}
	}

	if st != domain.SessionMorning {
		isPremium, err := s.premiumSvc.IsPremium(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isPremium {
			return nil, ErrPremiumRequired
		}
	}

	if gate.SessionLocked(progress.CompletedSessions(day), st) {
		return nil, ErrSessionLocked
	}

	affirmations, err := s.generator.SessionPhrases(user.Preferences.FocusArea, userID.Hex(), user.Preferences.Style, day, st)
	if err != nil {
		return nil, err
	}

	return &sessionAccess{
		user:         user,
		progress:     progress,
		affirmations: affirmations,
		key:          session.Key{UserID: userID.Hex(), Day: day, Session: st},
	}, nil
}

// Start begins (or resumes) listening for a session.
func (s *sessionService) Start(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today string) (*SessionState, error) {
	access, err := s.resolve(ctx, userID, day, st, today)
	if err != nil {
		return nil, err
	}
	if access.progress.IsSessionComplete(day, st) {
		return nil, ErrSessionDone
	}

	machine := s.runner.Machine(access.key, access.affirmations, access.progress.Cursor(day, st))
	if err := machine.Start(); err != nil {
		if errors.Is(err, session.ErrSessionComplete) {
			return nil, ErrSessionDone
		}
		return nil, err
	}
	return s.stateOf(access, machine, day, st, false), nil
}

// SubmitTranscript scores a transcript (or applies an engine error) and
// persists whatever progress it produced.
func (s *sessionService) SubmitTranscript(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today, transcript string, engineErr session.EngineErrorKind) (*TranscriptResult, error) {
	access, err := s.resolve(ctx, userID, day, st, today)
	if err != nil {
		return nil, err
	}
	if access.progress.IsSessionComplete(day, st) {
		return nil, ErrSessionDone
	}

	machine := s.runner.Machine(access.key, access.affirmations, access.progress.Cursor(day, st))

	var outcome session.Outcome
	if engineErr != "" {
		outcome, err = machine.EngineError(engineErr)
		if err != nil {
			return nil, err
		}
		return &TranscriptResult{Outcome: outcome, State: machine.State()}, nil
	}

	if transcript == "" {
		return nil, ErrEmptyTranscript
	}
	outcome, err = machine.Transcript(transcript)
	if err != nil {
		if errors.Is(err, session.ErrSessionComplete) {
			return nil, ErrSessionDone
		}
		return nil, err
	}

	result := &TranscriptResult{Outcome: outcome, State: machine.State()}

	if outcome.SessionCompleted {
		// The completion fact and the cursor clear land in one write.
		if err := s.progressRepo.MarkSessionComplete(ctx, userID, day, st); err != nil {
			return nil, err
		}
		s.runner.Forget(access.key)

		// Re-derive day completion from the updated facts.
		if access.progress.Sessions == nil {
			access.progress.Sessions = map[string]map[domain.SessionType]bool{}
		}
		done := access.progress.Sessions[domain.DayKey(day)]
		if done == nil {
			done = map[domain.SessionType]bool{}
			access.progress.Sessions[domain.DayKey(day)] = done
		}
		done[st] = true
		if access.progress.IsDayComplete(day) {
			result.DayCompleted = true
			today = orServerDate(today)
			if err := s.progressRepo.SetLastCompletedDayDate(ctx, userID, today); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	if outcome.Matched {
		// Persist the cursor so an interrupted session resumes mid-affirmation.
		// Cursor writes are best effort; the in-memory machine stays correct
		// and the next write retries, so the rep is not rolled back.
		cursor := domain.SessionCursor{AffirmationIndex: outcome.AffirmationIndex, Reps: outcome.Reps}
		if err := s.progressRepo.SaveCursor(ctx, userID, day, st, cursor); err != nil {
			log.Printf("WARN: failed to save session cursor for user %s day %d %s: %v", userID.Hex(), day, st, err)
		}
	}
	return result, nil
}

// Stop halts listening without touching counters.
func (s *sessionService) Stop(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType) (*SessionState, error) {
	if day < 1 || day > domain.ProgramDays {
		return nil, ErrInvalidDay
	}
	if !st.IsValid() {
		return nil, ErrInvalidSession
	}
	key := session.Key{UserID: userID.Hex(), Day: day, Session: st}
	machine, ok := s.runner.Peek(key)
	if !ok {
		// Nothing live; stopping an idle session is a no-op.
		return s.stateFromStore(ctx, userID, day, st)
	}
	machine.Stop()

	// Persist the cursor so the position survives a restart.
	cursor := machine.Cursor()
	if machine.State() != session.Complete {
		if err := s.progressRepo.SaveCursor(ctx, userID, day, st, cursor); err != nil {
			log.Printf("WARN: failed to save session cursor for user %s day %d %s: %v", userID.Hex(), day, st, err)
		}
	}
	return s.stateFromStore(ctx, userID, day, st)
}

// Get reports the current session state without mutating anything but the
// new-day rollover.
func (s *sessionService) Get(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType, today string) (*SessionState, error) {
	access, err := s.resolve(ctx, userID, day, st, today)
	if err != nil {
		return nil, err
	}
	if access.progress.IsSessionComplete(day, st) {
		state := s.stateOf(access, nil, day, st, true)
		return state, nil
	}
	if machine, ok := s.runner.Peek(access.key); ok {
		return s.stateOf(access, machine, day, st, false), nil
	}
	// No live machine: report the stored cursor at Idle.
	cursor := access.progress.Cursor(day, st)
	state := s.stateOf(access, nil, day, st, false)
	state.AffirmationIndex = cursor.AffirmationIndex
	state.Reps = cursor.Reps
	if cursor.AffirmationIndex < len(access.affirmations) {
		state.CurrentAffirmation = access.affirmations[cursor.AffirmationIndex]
	}
	return state, nil
}

// stateOf renders a SessionState from a resolved access and an optional
// live machine.
func (s *sessionService) stateOf(access *sessionAccess, machine *session.Machine, day int, st domain.SessionType, completed bool) *SessionState {
	state := &SessionState{
		Day:            day,
		Session:        st,
		State:          session.Idle,
		TargetReps:     s.targetReps,
		Affirmations:   access.affirmations,
		ContextMessage: content.ContextMessage(st, day, access.user.Preferences.FocusArea),
		Completed:      completed,
	}
	if completed {
		state.State = session.Complete
		return state
	}
	if machine != nil {
		state.State = machine.State()
		cursor := machine.Cursor()
		state.AffirmationIndex = cursor.AffirmationIndex
		state.Reps = cursor.Reps
		state.CurrentAffirmation = machine.CurrentAffirmation()
	} else if len(access.affirmations) > 0 {
		state.CurrentAffirmation = access.affirmations[0]
	}
	return state
}

// stateFromStore renders state for Stop, which skips the full gate pass.
func (s *sessionService) stateFromStore(ctx context.Context, userID primitive.ObjectID, day int, st domain.SessionType) (*SessionState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	affirmations, err := s.generator.SessionPhrases(user.Preferences.FocusArea, userID.Hex(), user.Preferences.Style, day, st)
	if err != nil {
		return nil, err
	}
	access := &sessionAccess{user: user, progress: progress, affirmations: affirmations}
	state := s.stateOf(access, nil, day, st, progress.IsSessionComplete(day, st))
	if !state.Completed {
		cursor := progress.Cursor(day, st)
		state.AffirmationIndex = cursor.AffirmationIndex
		state.Reps = cursor.Reps
		if cursor.AffirmationIndex < len(affirmations) {
			state.CurrentAffirmation = affirmations[cursor.AffirmationIndex]
		}
	}
	return state, nil
}
