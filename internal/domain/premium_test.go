package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPremiumStatus_Expiry(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("active subscription", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		s := &PremiumStatus{IsPremium: true, Plan: PlanMonthly, ExpiresAt: &future}
		assert.False(t, s.Expired(now))
		assert.True(t, s.Effective(now).IsPremium)
	})

	t.Run("lapsed subscription downgrades on read", func(t *testing.T) {
		past := now.Add(-time.Hour)
		s := &PremiumStatus{IsPremium: true, Plan: PlanYearly, ExpiresAt: &past}
		assert.True(t, s.Expired(now))
		assert.False(t, s.Effective(now).IsPremium)
		// The stored value is untouched; only the view downgrades.
		assert.True(t, s.IsPremium)
	})

	t.Run("no expiry never lapses", func(t *testing.T) {
		s := &PremiumStatus{IsPremium: true}
		assert.False(t, s.Expired(now))
		assert.True(t, s.Effective(now).IsPremium)
	})
}
