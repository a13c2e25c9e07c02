package response

import (
	"time"

	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProgramResponse struct {
	RewardAmount   float64 `json:"reward_amount"`
	FriendDiscount float64 `json:"friend_discount"`
	MaxReferrals   int     `json:"max_referrals"`
}

type StatsResponse struct {
	ReferredCountYear int     `json:"referred_count_year"`
	EarnedTotal       float64 `json:"earned_total"`
	RedeemedTotal     float64 `json:"redeemed_total"`
	AvailableCredit   float64 `json:"available_credit"`
}

type FriendResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReferralResponse struct {
	ID           string         `json:"id"`
	Friend       FriendResponse `json:"friend"`
	Status       string         `json:"status"`
	RewardEarned float64        `json:"reward_earned"`
	CreatedAt    string         `json:"created_at"`
}

type ReferralSummaryResponse struct {
	CustomerID string             `json:"customer_id"`
	Code       string             `json:"code"`
	Program    ProgramResponse    `json:"program"`
	Stats      StatsResponse      `json:"stats"`
	Referrals  []ReferralResponse `json:"referrals"`
}

type SendResultResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
	Stats     StatsResponse `json:"stats"`
}

func FromReferralSummaryView(v *queries.ReferralSummaryView) (*ReferralSummaryResponse, error) {
	resp := &ReferralSummaryResponse{
		CustomerID: v.CustomerID,
		Code:       v.Code,
		Referrals:  make([]ReferralResponse, len(v.Referrals)),
	}
	if err := copier.Copy(&resp.Program, &v.Program); err != nil {
		return nil, err
	}
	if err := copier.Copy(&resp.Stats, &v.Stats); err != nil {
		return nil, err
	}
	for i, r := range v.Referrals {
		resp.Referrals[i] = ReferralResponse{
			ID:           r.ID,
			Status:       r.Status,
			RewardEarned: r.RewardEarned,
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := copier.Copy(&resp.Referrals[i].Friend, &r.Friend); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func FromSendResultView(v *commands.SendResultView) (*SendResultResponse, error) {
	resp := &SendResultResponse{
		Success:   v.OK,
		Message:   v.Message,
		Timestamp: v.Timestamp,
	}
	if err := copier.Copy(&resp.Stats, &v.Stats); err != nil {
		return nil, err
	}
	return resp, nil
}
