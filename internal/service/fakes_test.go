package service

import (
	"context"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the Mongo implementations' contract
// (GetByUserID returns the empty state, not ErrNotFound) without a database.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrUpdateFailed
		}
	}
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs domain.Preferences) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Preferences = prefs
	u.UpdatedAt = time.Now()
	return nil
}

type fakeProgressRepo struct {
	data map[primitive.ObjectID]*domain.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{data: map[primitive.ObjectID]*domain.Progress{}}
}

func (r *fakeProgressRepo) get(userID primitive.ObjectID) *domain.Progress {
	p, ok := r.data[userID]
	if !ok {
		p = domain.EmptyProgress(userID)
		r.data[userID] = p
	}
	return p
}

func (r *fakeProgressRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Progress, error) {
	return r.get(userID), nil
}

func (r *fakeProgressRepo) SaveCursor(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType, cursor domain.SessionCursor) error {
	p := r.get(userID)
	if p.Cursors == nil {
		p.Cursors = map[string]map[domain.SessionType]domain.SessionCursor{}
	}
	if p.Cursors[domain.DayKey(day)] == nil {
		p.Cursors[domain.DayKey(day)] = map[domain.SessionType]domain.SessionCursor{}
	}
	p.Cursors[domain.DayKey(day)][session] = cursor
	return nil
}

func (r *fakeProgressRepo) MarkSessionComplete(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType) error {
	p := r.get(userID)
	if p.Sessions == nil {
		p.Sessions = map[string]map[domain.SessionType]bool{}
	}
	if p.Sessions[domain.DayKey(day)] == nil {
		p.Sessions[domain.DayKey(day)] = map[domain.SessionType]bool{}
	}
	p.Sessions[domain.DayKey(day)][session] = true
	if p.Cursors[domain.DayKey(day)] != nil {
		delete(p.Cursors[domain.DayKey(day)], session)
	}
	return nil
}

func (r *fakeProgressRepo) SetLastCompletedDayDate(ctx context.Context, userID primitive.ObjectID, date string) error {
	r.get(userID).LastCompletedDayDate = date
	return nil
}

func (r *fakeProgressRepo) RollToNewDay(ctx context.Context, userID primitive.ObjectID, today string) error {
	p := r.get(userID)
	p.LastAccessDate = today
	p.LastCompletedDayDate = ""
	return nil
}

func (r *fakeProgressRepo) Reset(ctx context.Context, userID primitive.ObjectID) error {
	r.data[userID] = domain.EmptyProgress(userID)
	return nil
}

type fakePremiumRepo struct {
	data      map[primitive.ObjectID]*domain.PremiumStatus
	upsertErr error
}

func newFakePremiumRepo() *fakePremiumRepo {
	return &fakePremiumRepo{data: map[primitive.ObjectID]*domain.PremiumStatus{}}
}

func (r *fakePremiumRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.PremiumStatus, error) {
	s, ok := r.data[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakePremiumRepo) Upsert(ctx context.Context, status *domain.PremiumStatus) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	copied := *status
	copied.UpdatedAt = time.Now()
	r.data[status.UserID] = &copied
	return nil
}
