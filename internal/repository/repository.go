package repository

import (
	"context"

	"manisera/affirmation-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user profiles.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// UpdatePreferences is the only post-onboarding profile mutation.
	UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs domain.Preferences) error
}

// ProgressRepository persists per-user program progress. There is exactly one
// progress document per user; session-completion facts are the atomic unit
// and day completion is derived on read, never written.
type ProgressRepository interface {
	// GetByUserID returns the user's progress, or the empty state if none is
	// stored yet. Corrupt stored state is reset to the empty state rather
	// than surfaced as an error.
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Progress, error)

	// SaveCursor upserts the transient within-session cursor.
	SaveCursor(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType, cursor domain.SessionCursor) error

	// MarkSessionComplete records the atomic session-completion fact and
	// clears that session's cursor in the same write.
	MarkSessionComplete(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType) error

	// SetLastCompletedDayDate stamps the calendar day a program day was
	// newly completed on (the daily-quota fact).
	SetLastCompletedDayDate(ctx context.Context, userID primitive.ObjectID, date string) error

	// RollToNewDay records a calendar-day boundary crossing: sets the access
	// date and clears the daily-quota stamp.
	RollToNewDay(ctx context.Context, userID primitive.ObjectID, today string) error

	// Reset wipes the user's progress back to the empty state.
	Reset(ctx context.Context, userID primitive.ObjectID) error
}

// PremiumRepository persists (simulated) subscription state.
type PremiumRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.PremiumStatus, error)
	Upsert(ctx context.Context, status *domain.PremiumStatus) error
}
