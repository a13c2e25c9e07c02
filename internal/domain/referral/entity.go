package referral

import (
	"strings"
	"time"
)

// Customer is immutable after seeding. MaxReferrals is shown to callers but not enforced.
type Customer struct {
	ID             string
	Code           string
	OffAmount      float64
	FriendDiscount float64
	MaxReferrals   int
}

type Friend struct {
	Name  string
	Email string
}

type Referral struct {
	ID           string
	Friend       Friend
	Status       Status
	RewardEarned float64
	CreatedAt    time.Time
	ReferredBy   string
}

type Redemption struct {
	ID         string
	Amount     float64
	CreatedAt  time.Time
	RedeemedBy string
}

// NewInvitedReferral builds the record created when a customer sends their code.
func NewInvitedReferral(id string, friend Friend, customerID string, now time.Time) (Referral, error) {
	if strings.TrimSpace(id) == "" {
		return Referral{}, ErrEmptyReferralID
	}
	if strings.TrimSpace(customerID) == "" {
		return Referral{}, ErrEmptyCustomerID
	}
	return Referral{
		ID:           id,
		Friend:       friend,
		Status:       StatusInvited,
		RewardEarned: 0,
		CreatedAt:    now.UTC(),
		ReferredBy:   customerID,
	}, nil
}

// Validate checks seeded referrals. Foreign keys are not checked here.
func (r Referral) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyReferralID
	}
	if !r.Status.IsValid() {
		return ErrInvalidStatus
	}
	if r.RewardEarned < 0 {
		return ErrNegativeReward
	}
	return nil
}

func (r Redemption) Validate() error {
	if r.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}
