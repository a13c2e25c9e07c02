package referral

import (
	"slices"
	"time"
)

type Stats struct {
	ReferredCountYear int
	EarnedTotal       float64
	RedeemedTotal     float64
	AvailableCredit   float64
}

// DeriveStats aggregates the credit figures for one customer. Records owned by
// other customers are ignored, so callers may pass the whole collections.
//
// ReferredCountYear only counts INVITED referrals created in now's calendar year (UTC).
func DeriveStats(customerID string, referrals []Referral, redemptions []Redemption, now time.Time) Stats {
	year := now.UTC().Year()

	var stats Stats
	var earned, redeemed float64
	for _, r := range referrals {
		if r.ReferredBy != customerID {
			continue
		}
		if r.Status == StatusInvited && r.CreatedAt.UTC().Year() == year {
			stats.ReferredCountYear++
		}
		earned += r.RewardEarned
	}
	for _, x := range redemptions {
		if x.RedeemedBy != customerID {
			continue
		}
		redeemed += x.Amount
	}

	stats.EarnedTotal = RoundCents(earned)
	stats.RedeemedTotal = RoundCents(redeemed)
	stats.AvailableCredit = RoundCents(stats.EarnedTotal - stats.RedeemedTotal)
	return stats
}

// SortNewestFirst returns a copy ordered by CreatedAt descending; ties keep their input order.
func SortNewestFirst(referrals []Referral) []Referral {
	sorted := slices.Clone(referrals)
	slices.SortStableFunc(sorted, func(a, b Referral) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return sorted
}
