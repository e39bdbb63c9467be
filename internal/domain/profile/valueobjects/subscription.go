package valueobjects

import (
	"fmt"
	"time"

	"chefviral/internal/domain/plan"
)

// SubscriptionStatus is the billing state of a tenant subscription.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusTrial    SubscriptionStatus = "trial"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusPastDue  SubscriptionStatus = "past_due"
)

// ValidStatuses enumerates the known subscription statuses.
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:   true,
	StatusTrial:    true,
	StatusCanceled: true,
	StatusPastDue:  true,
}

// Subscription is the plan state embedded in a business profile. Trial
// expiry (PeriodEnd in the past) is recorded but not actively enforced.
type Subscription struct {
	Tier      plan.Tier
	Status    SubscriptionStatus
	PeriodEnd time.Time
}

// NewTrialSubscription returns the FREE-tier trial every new tenant starts
// on, ending trialDays from now.
func NewTrialSubscription(trialDays int) Subscription {
	return Subscription{
		Tier:      plan.TierFree,
		Status:    StatusTrial,
		PeriodEnd: time.Now().UTC().AddDate(0, 0, trialDays),
	}
}

// NewSubscription validates and builds a subscription value.
func NewSubscription(tier plan.Tier, status SubscriptionStatus, periodEnd time.Time) (Subscription, error) {
	if !tier.IsValid() {
		return Subscription{}, fmt.Errorf("invalid plan tier: %s", tier)
	}
	if !ValidStatuses[status] {
		return Subscription{}, fmt.Errorf("invalid subscription status: %s", status)
	}
	return Subscription{Tier: tier, Status: status, PeriodEnd: periodEnd}, nil
}

// Limits returns the tier limits for this subscription.
func (s Subscription) Limits() plan.Limits {
	return plan.ConfigFor(s.Tier).Limits
}
