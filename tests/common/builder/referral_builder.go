//go:build unit || e2e

package builder

import (
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/usecase/queries"
)

var BaseTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type CustomerBuilder struct {
	customer referral.Customer
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		customer: referral.Customer{
			ID:             "cus_123",
			Code:           "0180YNUP",
			OffAmount:      20,
			FriendDiscount: 40,
			MaxReferrals:   25,
		},
	}
}

func (b *CustomerBuilder) WithID(id string) *CustomerBuilder {
	b.customer.ID = id
	return b
}

func (b *CustomerBuilder) WithCode(code string) *CustomerBuilder {
	b.customer.Code = code
	return b
}

func (b *CustomerBuilder) Build() referral.Customer {
	return b.customer
}

type ReferralBuilder struct {
	ref referral.Referral
}

func NewReferralBuilder() *ReferralBuilder {
	return &ReferralBuilder{
		ref: referral.Referral{
			ID:           "r1",
			Friend:       referral.Friend{Name: "Ann Lee", Email: "ann.lee0001@example.com"},
			Status:       referral.StatusSignedUp,
			RewardEarned: 20,
			CreatedAt:    BaseTime,
			ReferredBy:   "cus_123",
		},
	}
}

func (b *ReferralBuilder) WithID(id string) *ReferralBuilder {
	b.ref.ID = id
	return b
}

func (b *ReferralBuilder) WithStatus(s referral.Status) *ReferralBuilder {
	b.ref.Status = s
	return b
}

func (b *ReferralBuilder) WithReward(v float64) *ReferralBuilder {
	b.ref.RewardEarned = v
	return b
}

func (b *ReferralBuilder) WithCreatedAt(t time.Time) *ReferralBuilder {
	b.ref.CreatedAt = t
	return b
}

func (b *ReferralBuilder) WithReferredBy(customerID string) *ReferralBuilder {
	b.ref.ReferredBy = customerID
	return b
}

func (b *ReferralBuilder) WithFriend(name, email string) *ReferralBuilder {
	b.ref.Friend = referral.Friend{Name: name, Email: email}
	return b
}

// Invited resets the referral to the shape the write path creates.
func (b *ReferralBuilder) Invited() *ReferralBuilder {
	b.ref.Status = referral.StatusInvited
	b.ref.RewardEarned = 0
	return b
}

func (b *ReferralBuilder) Build() referral.Referral {
	return b.ref
}

func NewRedemption(id, customerID string, amount float64, at time.Time) referral.Redemption {
	return referral.Redemption{ID: id, Amount: amount, CreatedAt: at, RedeemedBy: customerID}
}

// BuildSummaryView returns the cus_123 summary as the read path would report it in 2025.
func BuildSummaryView() *queries.ReferralSummaryView {
	return &queries.ReferralSummaryView{
		CustomerID: "cus_123",
		Code:       "0180YNUP",
		Program:    queries.ProgramView{RewardAmount: 20, FriendDiscount: 40, MaxReferrals: 25},
		Stats:      BuildStatsView(),
		Referrals: []queries.ReferralView{
			{
				ID:           "r7",
				Friend:       queries.FriendView{Name: "Sam Patel", Email: "sam.patel@example.com"},
				Status:       referral.StatusInvited.String(),
				RewardEarned: 0,
				CreatedAt:    BaseTime,
			},
			{
				ID:           "r1",
				Friend:       queries.FriendView{Name: "Ann Lee", Email: "ann.lee@example.com"},
				Status:       referral.StatusSignedUp.String(),
				RewardEarned: 20,
				CreatedAt:    BaseTime.AddDate(0, -1, 0),
			},
		},
	}
}

func BuildStatsView() queries.StatsView {
	return queries.StatsView{
		ReferredCountYear: 2,
		EarnedTotal:       100,
		RedeemedTotal:     40,
		AvailableCredit:   60,
	}
}
