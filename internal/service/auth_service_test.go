package service

import (
	"context"
	"testing"
	"time"

	"manisera/affirmation-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(users, "test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers with onboarding answers", func(t *testing.T) {
		svc := newTestAuthService(newFakeUserRepo())
		user, err := svc.Register(ctx, RegisterInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "parola123",
			Preferences: &domain.Preferences{
				FocusArea: domain.FocusCalm,
				Intensity: domain.IntensityGentle,
				Style:     domain.StyleSpiritual,
			},
			Goals:          []string{"liniste"},
			Experience:     domain.ExperienceIncepator,
			TimePreference: domain.TimeDimineata,
		})
		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, domain.FocusCalm, user.Preferences.FocusArea)
		assert.Empty(t, user.PasswordHash, "hash must never leave the service")
	})

	t.Run("defaults preferences when onboarding is skipped", func(t *testing.T) {
		svc := newTestAuthService(newFakeUserRepo())
		user, err := svc.Register(ctx, RegisterInput{
			Name: "Dan", Email: "dan@example.com", Password: "parola123",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPreferences(), user.Preferences)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc := newTestAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "parola123"})
		require.NoError(t, err)
		_, err = svc.Register(ctx, RegisterInput{Name: "Alt", Email: "ana@example.com", Password: "parola456"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejects unknown focus area", func(t *testing.T) {
		svc := newTestAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, RegisterInput{
			Name: "Ana", Email: "ana@example.com", Password: "parola123",
			Preferences: &domain.Preferences{FocusArea: "necunoscut"},
		})
		assert.ErrorIs(t, err, ErrInvalidPreferences)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "parola123"})
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "ana@example.com", "parola123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ana@example.com", "gresit")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nimeni@example.com", "parola123")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestAuthService_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newTestAuthService(users)

	user, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "parola123"})
	require.NoError(t, err)

	t.Run("updates the tunable fields", func(t *testing.T) {
		updated, err := svc.UpdatePreferences(ctx, user.ID, domain.Preferences{
			FocusArea: domain.FocusIubire,
			Intensity: domain.IntensityIntense,
			Style:     domain.StyleModern,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.FocusIubire, updated.Preferences.FocusArea)
		assert.Equal(t, domain.StyleModern, updated.Preferences.Style)
	})

	t.Run("rejects an invalid focus area", func(t *testing.T) {
		_, err := svc.UpdatePreferences(ctx, user.ID, domain.Preferences{FocusArea: "necunoscut"})
		assert.ErrorIs(t, err, ErrInvalidPreferences)
	})
}
