package service

import (
	"context"
	"errors"
	"log"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUnknownPlan = errors.New("unknown subscription plan")
)

// --- Service Interface ---

// PremiumService manages the simulated subscription lifecycle. There is no
// real payment provider behind it; checkout sleeps for a configured delay and
// then records an active subscription.
type PremiumService interface {
	// Status returns the user's effective premium status with expiry applied.
	// A lapsed subscription is downgraded on read and the downgrade persisted.
	Status(ctx context.Context, userID primitive.ObjectID) (*domain.PremiumStatus, error)

	// Checkout simulates a purchase of the given plan and activates it.
	Checkout(ctx context.Context, userID primitive.ObjectID, plan domain.PremiumPlan) (*domain.PremiumStatus, error)

	// IsPremium is a convenience wrapper over Status for gating checks.
	IsPremium(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

// --- Service Implementation ---

type premiumService struct {
	premiumRepo   repository.PremiumRepository
	checkoutDelay time.Duration
	now           func() time.Time
}

// NewPremiumService creates a new instance of premiumService.
func NewPremiumService(premiumRepo repository.PremiumRepository, checkoutDelay time.Duration) PremiumService {
	return &premiumService{
		premiumRepo:   premiumRepo,
		checkoutDelay: checkoutDelay,
		now:           time.Now,
	}
}

// Status returns the effective subscription state.
func (s *premiumService) Status(ctx context.Context, userID primitive.ObjectID) (*domain.PremiumStatus, error) {
	status, err := s.premiumRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No record means free tier.
			return &domain.PremiumStatus{UserID: userID, IsPremium: false}, nil
		}
		return nil, err
	}

	now := s.now()
	if status.IsPremium && status.Expired(now) {
		// Offline downgrade: stamp the lapse back into the store so future
		// reads are cheap, but never fail the read if the write does not land.
		effective := status.Effective(now)
		effective.Plan = ""
		effective.SubscriptionID = ""
		if err := s.premiumRepo.Upsert(ctx, &effective); err != nil {
			log.Printf("WARN: failed to persist premium downgrade for user %s: %v", userID.Hex(), err)
		}
		return &effective, nil
	}
	return status, nil
}

// Checkout simulates the payment flow and activates the subscription.
func (s *premiumService) Checkout(ctx context.Context, userID primitive.ObjectID, plan domain.PremiumPlan) (*domain.PremiumStatus, error) {
	var duration time.Duration
	switch plan {
	case domain.PlanMonthly:
		duration = 30 * 24 * time.Hour
	case domain.PlanYearly:
		duration = 365 * 24 * time.Hour
	default:
		return nil, ErrUnknownPlan
	}

	// Simulated payment processing delay.
	if s.checkoutDelay > 0 {
		select {
		case <-time.After(s.checkoutDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.now()
	expiresAt := now.Add(duration)
	status := &domain.PremiumStatus{
		UserID:         userID,
		IsPremium:      true,
		Plan:           plan,
		SubscriptionID: "sub_" + uuid.New().String(),
		ExpiresAt:      &expiresAt,
	}
	if err := s.premiumRepo.Upsert(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// IsPremium reports whether the user currently has an active subscription.
func (s *premiumService) IsPremium(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.IsPremium, nil
}
