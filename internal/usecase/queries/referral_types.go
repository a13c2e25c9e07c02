package queries

import (
	"time"

	"referral-credits/internal/domain/referral"
)

// ProgramView is the reward program a customer is enrolled in
type ProgramView struct {
	RewardAmount   float64 `json:"rewardAmount"`
	FriendDiscount float64 `json:"friendDiscount"`
	MaxReferrals   int     `json:"maxReferrals"`
}

// StatsView holds the derived credit figures, rounded to cents
type StatsView struct {
	ReferredCountYear int     `json:"referredCountYear"`
	EarnedTotal       float64 `json:"earnedTotal"`
	RedeemedTotal     float64 `json:"redeemedTotal"`
	AvailableCredit   float64 `json:"availableCredit"`
}

type FriendView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReferralView struct {
	ID           string     `json:"id"`
	Friend       FriendView `json:"friend"`
	Status       string     `json:"status"`
	RewardEarned float64    `json:"rewardEarned"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ReferralSummaryView lists referrals newest first
type ReferralSummaryView struct {
	CustomerID string         `json:"customerId"`
	Code       string         `json:"code"`
	Program    ProgramView    `json:"program"`
	Stats      StatsView      `json:"stats"`
	Referrals  []ReferralView `json:"referrals"`
}

func newStatsView(s referral.Stats) StatsView {
	return StatsView{
		ReferredCountYear: s.ReferredCountYear,
		EarnedTotal:       s.EarnedTotal,
		RedeemedTotal:     s.RedeemedTotal,
		AvailableCredit:   s.AvailableCredit,
	}
}

func newReferralViews(rs []referral.Referral) []ReferralView {
	views := make([]ReferralView, len(rs))
	for i, r := range rs {
		views[i] = ReferralView{
			ID:           r.ID,
			Friend:       FriendView{Name: r.Friend.Name, Email: r.Friend.Email},
			Status:       r.Status.String(),
			RewardEarned: r.RewardEarned,
			CreatedAt:    r.CreatedAt,
		}
	}
	return views
}
