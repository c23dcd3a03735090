package service

import (
	"context"
	"testing"

	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/gate"
	"manisera/affirmation-app/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type programFixture struct {
	users    *fakeUserRepo
	progress *fakeProgressRepo
	premium  *fakePremiumRepo
	svc      ProgramService
	userID   primitive.ObjectID
}

func newProgramFixture(t *testing.T) *programFixture {
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
	generator := plan.NewGenerator(content.Default())

	return &programFixture{
		users:    users,
		progress: progress,
		premium:  premium,
		svc:      NewProgramService(users, progress, NewPremiumService(premium, 0), generator),
		userID:   userID,
	}
}

func (f *programFixture) markDayComplete(day int) {
	p := f.progress.get(f.userID)
	if p.Sessions == nil {
		p.Sessions = map[string]map[domain.SessionType]bool{}
	}
	done := map[domain.SessionType]bool{}
	for _, s := range domain.SessionOrder {
		done[s] = true
	}
	p.Sessions[domain.DayKey(day)] = done
}

func TestProgramService_GetOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh user sees day one open and the rest locked", func(t *testing.T) {
		f := newProgramFixture(t)
		overview, err := f.svc.GetOverview(ctx, f.userID, testToday)
		require.NoError(t, err)

		assert.Equal(t, domain.FocusBani, overview.FocusArea)
		assert.Equal(t, 1, overview.CurrentDay)
		assert.Equal(t, gate.Open, overview.State)
		assert.False(t, overview.IsPremium)
		require.Len(t, overview.Days, domain.ProgramDays)
		assert.False(t, overview.Days[0].Locked)
		assert.True(t, overview.Days[1].Locked)
		assert.True(t, overview.Days[29].Locked)
	})

	t.Run("completed days show complete and unlock the next", func(t *testing.T) {
		f := newProgramFixture(t)
		f.markDayComplete(1)
		f.markDayComplete(2)

		overview, err := f.svc.GetOverview(ctx, f.userID, testToday)
		require.NoError(t, err)
		assert.Equal(t, 3, overview.CurrentDay)
		assert.True(t, overview.Days[0].Completed)
		assert.True(t, overview.Days[1].Completed)
		assert.False(t, overview.Days[2].Completed)
		assert.False(t, overview.Days[2].Locked)
		assert.True(t, overview.Days[3].Locked)
	})

	t.Run("quota block surfaces in the overview state", func(t *testing.T) {
		f := newProgramFixture(t)
		f.markDayComplete(1)
		p := f.progress.get(f.userID)
		p.LastAccessDate = testToday
		p.LastCompletedDayDate = testToday

		overview, err := f.svc.GetOverview(ctx, f.userID, testToday)
		require.NoError(t, err)
		assert.Equal(t, gate.BlockedDailyQuota, overview.State)
		assert.Equal(t, 1, overview.CurrentDay)
	})
}

func TestProgramService_GetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("free tier gets morning content only", func(t *testing.T) {
		f := newProgramFixture(t)
		detail, err := f.svc.GetDay(ctx, f.userID, 1, testToday)
		require.NoError(t, err)

		assert.Equal(t, 1, detail.Day)
		assert.Equal(t, gate.Open, detail.State)
		require.Len(t, detail.Sessions, 3)

		morning := detail.Sessions[0]
		assert.Equal(t, domain.SessionMorning, morning.Session)
		assert.Len(t, morning.Affirmations, domain.PhrasesPerSession)
		assert.NotEmpty(t, morning.ContextMessage)
		assert.False(t, morning.PremiumLocked)

		for _, view := range detail.Sessions[1:] {
			assert.True(t, view.PremiumLocked)
			assert.Empty(t, view.Affirmations, "gated sessions must not leak content")
		}
	})

	t.Run("premium unlocks sessions in order", func(t *testing.T) {
		f := newProgramFixture(t)
		require.NoError(t, f.premium.Upsert(ctx, &domain.PremiumStatus{
			UserID: f.userID, IsPremium: true, Plan: domain.PlanMonthly,
		}))

		detail, err := f.svc.GetDay(ctx, f.userID, 1, testToday)
		require.NoError(t, err)

		afternoon := detail.Sessions[1]
		assert.False(t, afternoon.PremiumLocked)
		assert.True(t, afternoon.Locked, "afternoon stays locked until morning is done")
		assert.Empty(t, afternoon.Affirmations)

		morning := detail.Sessions[0]
		assert.False(t, morning.Locked)
		assert.NotEmpty(t, morning.Affirmations)
	})

	t.Run("requests beyond the sequence clamp to the allowed day", func(t *testing.T) {
		f := newProgramFixture(t)
		f.markDayComplete(1)

		detail, err := f.svc.GetDay(ctx, f.userID, 10, testToday)
		require.NoError(t, err)
		assert.Equal(t, gate.LockedSequential, detail.State)
		assert.Equal(t, 2, detail.Day)
	})

	t.Run("out of range day is an error", func(t *testing.T) {
		f := newProgramFixture(t)
		_, err := f.svc.GetDay(ctx, f.userID, 0, testToday)
		assert.ErrorIs(t, err, ErrInvalidDay)
		_, err = f.svc.GetDay(ctx, f.userID, 31, testToday)
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("plan content is stable across reads", func(t *testing.T) {
		f := newProgramFixture(t)
		a, err := f.svc.GetDay(ctx, f.userID, 1, testToday)
		require.NoError(t, err)
		b, err := f.svc.GetDay(ctx, f.userID, 1, testToday)
		require.NoError(t, err)
		assert.Equal(t, a.Sessions[0].Affirmations, b.Sessions[0].Affirmations)
	})
}
