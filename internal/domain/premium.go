package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PremiumPlan is the billing cadence of a premium subscription.
type PremiumPlan string

const (
	PlanMonthly PremiumPlan = "monthly"
	PlanYearly  PremiumPlan = "yearly"
)

// PremiumStatus records a user's (simulated) subscription. Expiry is checked
// on read so a lapsed subscription downgrades without any backend callback.
type PremiumStatus struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	IsPremium      bool               `bson:"isPremium" json:"isPremium"`
	Plan           PremiumPlan        `bson:"plan,omitempty" json:"plan,omitempty"`
	SubscriptionID string             `bson:"subscriptionId,omitempty" json:"subscriptionId,omitempty"`
	ExpiresAt      *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Expired reports whether the subscription has lapsed as of now.
func (s *PremiumStatus) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// Effective returns the status with expiry applied.
func (s *PremiumStatus) Effective(now time.Time) PremiumStatus {
	out := *s
	if out.Expired(now) {
		out.IsPremium = false
	}
	return out
}
