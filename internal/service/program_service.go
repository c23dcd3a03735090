package service

import (
	"context"
	"errors"
	"time"

	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/gate"
	"manisera/affirmation-app/internal/plan"
	"manisera/affirmation-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidDay     = errors.New("program day out of range")
	ErrInvalidSession = errors.New("unknown session type")
)

// SessionView is the per-session slice of a day detail. Affirmations are
// omitted when the session is gated (premium or sequential lock) so a free
// client never receives paid content.
type SessionView struct {
	Session        domain.SessionType   `json:"session"`
	Affirmations   []string             `json:"affirmations,omitempty"`
	ContextMessage string               `json:"contextMessage,omitempty"`
	Completed      bool                 `json:"completed"`
	Locked         bool                 `json:"locked"`
	PremiumLocked  bool                 `json:"premiumLocked"`
	Cursor         domain.SessionCursor `json:"cursor"`
}

// DayDetail is one day of the program as the client renders it.
type DayDetail struct {
	Day        int                 `json:"day"`
	Block      domain.ProgramBlock `json:"block"`
	AllowedDay int                 `json:"allowedDay"`
	State      gate.State          `json:"state"`
	Sessions   []SessionView       `json:"sessions"`
}

// ProgramOverview is the 30-day map view.
type ProgramOverview struct {
	FocusArea  domain.FocusCategory `json:"focusArea"`
	CurrentDay int                  `json:"currentDay"`
	State      gate.State           `json:"state"`
	IsPremium  bool                 `json:"isPremium"`
	Days       []domain.DayStatus   `json:"days"`
}

// --- Service Interface ---

type ProgramService interface {
	// GetOverview returns the derived 30-day map with completion and lock
	// state per day. today is the client's calendar-day string.
	GetOverview(ctx context.Context, userID primitive.ObjectID, today string) (*ProgramOverview, error)

	// GetDay returns the detail of one program day. A request for a day the
	// gate does not allow is answered with the allowed day's detail and the
	// gate state, never an error.
	GetDay(ctx context.Context, userID primitive.ObjectID, day int, today string) (*DayDetail, error)
}

// --- Service Implementation ---

type programService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	premiumSvc   PremiumService
	generator    *plan.Generator
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	premiumSvc PremiumService,
	generator *plan.Generator,
) ProgramService {
	return &programService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		premiumSvc:   premiumSvc,
		generator:    generator,
	}
}

// GetOverview builds the 30-day map.
func (s *programService) GetOverview(ctx context.Context, userID primitive.ObjectID, today string) (*ProgramOverview, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	today = orServerDate(today)

	progress, err := progressForToday(ctx, s.progressRepo, userID, today)
	if err != nil {
		return nil, err
	}
	isPremium, err := s.premiumSvc.IsPremium(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := snapshotOf(progress)
	eval := gate.Evaluate(snap.LastCompletedDay+1, snap, today)

	days := make([]domain.DayStatus, 0, domain.ProgramDays)
	for d := 1; d <= domain.ProgramDays; d++ {
		days = append(days, domain.DayStatus{
			Day:       d,
			Block:     domain.BlockForDay(d),
			Completed: progress.IsDayComplete(d),
			Locked:    gate.Evaluate(d, snap, today).State != gate.Open,
		})
	}

	return &ProgramOverview{
		FocusArea:  user.Preferences.FocusArea,
		CurrentDay: eval.AllowedDay,
		State:      eval.State,
		IsPremium:  isPremium,
		Days:       days,
	}, nil
}

// GetDay builds one day's detail, clamped to what the gate allows.
func (s *programService) GetDay(ctx context.Context, userID primitive.ObjectID, day int, today string) (*DayDetail, error) {
	if day < 1 || day > domain.ProgramDays {
		return nil, ErrInvalidDay
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
	isPremium, err := s.premiumSvc.IsPremium(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := snapshotOf(progress)
	eval := gate.Evaluate(day, snap, today)
	allowed := eval.AllowedDay

	dayPlan, err := s.generator.Day(user.Preferences.FocusArea, userID.Hex(), user.Preferences.Style, allowed)
	if err != nil {
		return nil, err
	}

	completed := progress.CompletedSessions(allowed)
	sessions := make([]SessionView, 0, len(domain.SessionOrder))
	for _, st := range domain.SessionOrder {
		view := SessionView{
			Session:       st,
			Completed:     completed[st],
			Locked:        gate.SessionLocked(completed, st),
			PremiumLocked: !isPremium && st != domain.SessionMorning,
			Cursor:        progress.Cursor(allowed, st),
		}
		if !view.Locked && !view.PremiumLocked {
			view.Affirmations = dayPlan.Sessions.ForSession(st)
			view.ContextMessage = content.ContextMessage(st, allowed, user.Preferences.FocusArea)
		}
		sessions = append(sessions, view)
	}

	return &DayDetail{
		Day:        allowed,
		Block:      dayPlan.Block,
		AllowedDay: allowed,
		State:      eval.State,
		Sessions:   sessions,
	}, nil
}

// --- Shared helpers ---

// snapshotOf projects persisted progress into the gate's input.
func snapshotOf(p *domain.Progress) gate.Snapshot {
	return gate.Snapshot{
		LastCompletedDay:     p.LastCompletedDay(),
		LastAccessDate:       p.LastAccessDate,
		LastCompletedDayDate: p.LastCompletedDayDate,
	}
}

// progressForToday loads progress and applies the new-day rollover when the
// calendar day has changed since the last access. The rollover is persisted
// before the in-memory copy is updated so the quota block can never outlive
// the day it was earned on.
func progressForToday(ctx context.Context, repo repository.ProgressRepository, userID primitive.ObjectID, today string) (*domain.Progress, error) {
	progress, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap := gate.Snapshot{LastAccessDate: progress.LastAccessDate}
	if gate.NeedsRollover(snap, today) {
		if err := repo.RollToNewDay(ctx, userID, today); err != nil {
			return nil, err
		}
		progress.LastAccessDate = today
		progress.LastCompletedDayDate = ""
	}
	return progress, nil
}

// orServerDate falls back to the server's calendar day when the client did
// not report one.
func orServerDate(today string) string {
	if today != "" {
		return today
	}
	return time.Now().Format("2006-01-02")
}
