package service

import (
	"context"
	"testing"

	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/plan"
	"manisera/affirmation-app/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testToday = "2026-08-28"

type sessionFixture struct {
	users      *fakeUserRepo
	progress   *fakeProgressRepo
	premium    *fakePremiumRepo
	premiumSvc PremiumService
	svc        SessionService
	generator  *plan.Generator
	userID     primitive.ObjectID
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	users := newFakeUserRepo()
	userID, err := users.Create(context.Background(), &domain.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "irrelevant",
		Preferences:  domain.DefaultPreferences(),
	})
	require.NoError(t, err)

	progress := newFakeProgressRepo()
	premium := newFakePremiumRepo()
	premiumSvc := NewPremiumService(premium, 0)

	caps := session.Capabilities{
		Continuous:     true,
		MatchThreshold: 2,
		Language:       "ro-RO",
		// No timers or cooldowns in unit tests.
		ListenTimeout: 0,
		RepCooldown:   0,
	}
	generator := plan.NewGenerator(content.Default())
	runner := session.NewRunner(caps, domain.TargetReps)

	return &sessionFixture{
		users:      users,
		progress:   progress,
		premium:    premium,
		premiumSvc: premiumSvc,
		svc:        NewSessionService(users, progress, premiumSvc, generator, runner, domain.TargetReps),
		generator:  generator,
		userID:     userID,
	}
}

// grantPremium records an active subscription without going through checkout.
func (f *sessionFixture) grantPremium(t *testing.T) {
	t.Helper()
	require.NoError(t, f.premium.Upsert(context.Background(), &domain.PremiumStatus{
		UserID:    f.userID,
		IsPremium: true,
		Plan:      domain.PlanMonthly,
	}))
}

// phrases resolves the deterministic affirmations of one session.
func (f *sessionFixture) phrases(t *testing.T, day int, st domain.SessionType) []string {
	t.Helper()
	prefs := domain.DefaultPreferences()
	phrases, err := f.generator.SessionPhrases(prefs.FocusArea, f.userID.Hex(), prefs.Style, day, st)
	require.NoError(t, err)
	return phrases
}

// completeSession speaks every affirmation of a session to completion.
func (f *sessionFixture) completeSession(t *testing.T, day int, st domain.SessionType, today string) *TranscriptResult {
	t.Helper()
	ctx := context.Background()

	var last *TranscriptResult
	for _, phrase := range f.phrases(t, day, st) {
		for r := 0; r < domain.TargetReps; r++ {
			_, err := f.svc.Start(ctx, f.userID, day, st, today)
			require.NoError(t, err)
			last, err = f.svc.SubmitTranscript(ctx, f.userID, day, st, today, phrase, "")
			require.NoError(t, err)
			require.True(t, last.Matched, "phrase %q rep %d must match", phrase, r+1)
		}
	}
	return last
}

func TestSessionService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("morning session starts for the free tier", func(t *testing.T) {
		f := newSessionFixture(t)
		state, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
		require.NoError(t, err)
		assert.Equal(t, session.Listening, state.State)
		assert.Equal(t, domain.TargetReps, state.TargetReps)
		assert.Len(t, state.Affirmations, domain.PhrasesPerSession)
		assert.Equal(t, state.Affirmations[0], state.CurrentAffirmation)
		assert.NotEmpty(t, state.ContextMessage)
	})

	t.Run("afternoon requires premium", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionAfternoon, testToday)
		assert.ErrorIs(t, err, ErrPremiumRequired)
	})

	t.Run("skipping ahead is locked", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Start(ctx, f.userID, 3, domain.SessionMorning, testToday)
		assert.ErrorIs(t, err, ErrDayLocked)
	})

	t.Run("sessions unlock in order within a day", func(t *testing.T) {
		f := newSessionFixture(t)
		f.grantPremium(t)
		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionEvening, testToday)
		assert.ErrorIs(t, err, ErrSessionLocked)
	})

	t.Run("invalid day and session are rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Start(ctx, f.userID, 0, domain.SessionMorning, testToday)
		assert.ErrorIs(t, err, ErrInvalidDay)
		_, err = f.svc.Start(ctx, f.userID, 1, domain.SessionType("noapte"), testToday)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestSessionService_TranscriptFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("matched transcript persists the cursor", func(t *testing.T) {
		f := newSessionFixture(t)
		phrase := f.phrases(t, 1, domain.SessionMorning)[0]

		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
		require.NoError(t, err)
		result, err := f.svc.SubmitTranscript(ctx, f.userID, 1, domain.SessionMorning, testToday, phrase, "")
		require.NoError(t, err)
		assert.True(t, result.Matched)
		assert.Equal(t, 1, result.Reps)

		stored := f.progress.get(f.userID).Cursor(1, domain.SessionMorning)
		assert.Equal(t, domain.SessionCursor{AffirmationIndex: 0, Reps: 1}, stored)
	})

	t.Run("empty transcript is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
		require.NoError(t, err)
		_, err = f.svc.SubmitTranscript(ctx, f.userID, 1, domain.SessionMorning, testToday, "", "")
		assert.ErrorIs(t, err, ErrEmptyTranscript)
	})

	t.Run("completing a session records the fact and clears the cursor", func(t *testing.T) {
		f := newSessionFixture(t)
		result := f.completeSession(t, 1, domain.SessionMorning, testToday)
		assert.True(t, result.SessionCompleted)
		assert.False(t, result.DayCompleted, "one session does not complete the day")

		p := f.progress.get(f.userID)
		assert.True(t, p.IsSessionComplete(1, domain.SessionMorning))
		assert.Equal(t, domain.SessionCursor{}, p.Cursor(1, domain.SessionMorning))
		assert.Empty(t, p.LastCompletedDayDate)

		// The session is terminal now.
		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
		assert.ErrorIs(t, err, ErrSessionDone)
	})

	t.Run("engine error is applied instead of scoring", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
		require.NoError(t, err)

		_, err = f.svc.SubmitTranscript(ctx, f.userID, 1, domain.SessionMorning, testToday, "", session.EngineErrNotAllowed)
		assert.ErrorIs(t, err, session.ErrMicrophoneDenied)
	})
}

func TestSessionService_DayCompletionAndQuota(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.grantPremium(t)

	f.completeSession(t, 1, domain.SessionMorning, testToday)
	f.completeSession(t, 1, domain.SessionAfternoon, testToday)
	result := f.completeSession(t, 1, domain.SessionEvening, testToday)

	assert.True(t, result.SessionCompleted)
	assert.True(t, result.DayCompleted)

	p := f.progress.get(f.userID)
	assert.True(t, p.IsDayComplete(1))
	assert.Equal(t, testToday, p.LastCompletedDayDate)

	t.Run("next day is blocked until tomorrow", func(t *testing.T) {
		_, err := f.svc.Start(ctx, f.userID, 2, domain.SessionMorning, testToday)
		assert.ErrorIs(t, err, ErrDailyQuotaReached)
	})

	t.Run("new calendar day lifts the quota", func(t *testing.T) {
		tomorrow := "2026-08-29"
		state, err := f.svc.Start(ctx, f.userID, 2, domain.SessionMorning, tomorrow)
		require.NoError(t, err)
		assert.Equal(t, session.Listening, state.State)

		// Rollover was persisted, not just applied in memory.
		p := f.progress.get(f.userID)
		assert.Equal(t, tomorrow, p.LastAccessDate)
		assert.Empty(t, p.LastCompletedDayDate)
	})
}

func TestSessionService_StopAndResume(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	phrase := f.phrases(t, 1, domain.SessionMorning)[0]

	_, err := f.svc.Start(ctx, f.userID, 1, domain.SessionMorning, testToday)
	require.NoError(t, err)
	_, err = f.svc.SubmitTranscript(ctx, f.userID, 1, domain.SessionMorning, testToday, phrase, "")
	require.NoError(t, err)

	state, err := f.svc.Stop(ctx, f.userID, 1, domain.SessionMorning)
	require.NoError(t, err)
	assert.Equal(t, session.Idle, state.State)
	assert.Equal(t, 1, state.Reps)

	// Resuming picks up the stored cursor.
	state, err = f.svc.Get(ctx, f.userID, 1, domain.SessionMorning, testToday)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Reps)
	assert.Equal(t, 0, state.AffirmationIndex)
	assert.Equal(t, phrase, state.CurrentAffirmation)
}
