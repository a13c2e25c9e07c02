package queries

import (
	"context"
	"strings"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/errs"
)

var (
	ErrCustomerIDRequired = errs.InvalidArgument("customerId is required")
	ErrCustomerNotFound   = errs.NotFound(errs.New("customer not found"))
)

type ReferralReadStore interface {
	FindCustomerByID(ctx context.Context, id string) (referral.Customer, error)
	ReferralsFor(ctx context.Context, customerID string) ([]referral.Referral, error)
	RedemptionsFor(ctx context.Context, customerID string) ([]referral.Redemption, error)
}

type ReferralQueries interface {
	GetSummary(ctx context.Context, customerID string) (*ReferralSummaryView, error)
}

type referralQueriesImpl struct {
	store ReferralReadStore
	clock clock.Clock
}

func NewReferralQueries(store ReferralReadStore, clk clock.Clock) ReferralQueries {
	return &referralQueriesImpl{store: store, clock: clk}
}

func (q *referralQueriesImpl) GetSummary(ctx context.Context, customerID string) (*ReferralSummaryView, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}

	customer, err := q.store.FindCustomerByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "load customer")
	}

	refs, err := q.store.ReferralsFor(ctx, customer.ID)
	if err != nil {
		return nil, errs.Wrap(err, "load referrals")
	}
	reds, err := q.store.RedemptionsFor(ctx, customer.ID)
	if err != nil {
		return nil, errs.Wrap(err, "load redemptions")
	}

	stats := referral.DeriveStats(customer.ID, refs, reds, q.clock.Now())

	return &ReferralSummaryView{
		CustomerID: customer.ID,
		Code:       customer.Code,
		Program: ProgramView{
			RewardAmount:   customer.OffAmount,
			FriendDiscount: customer.FriendDiscount,
			MaxReferrals:   customer.MaxReferrals,
		},
		Stats:     newStatsView(stats),
		Referrals: newReferralViews(referral.SortNewestFirst(refs)),
	}, nil
}
