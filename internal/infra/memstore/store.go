package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
)

// Dataset is the full content of the store, in insertion order.
type Dataset struct {
	Customers   []referral.Customer
	Referrals   []referral.Referral
	Redemptions []referral.Redemption
}

// Store is the process-wide referral database. Customers and redemptions never
// change after seeding; referrals are append-only. Every write happens under mu,
// which is also where the next referral ID is derived.
type Store struct {
	mu          sync.RWMutex
	customers   []referral.Customer
	referrals   []referral.Referral
	redemptions []referral.Redemption
	logger      *slog.Logger
}

func New(logger *slog.Logger, data Dataset) *Store {
	return &Store{
		customers:   slices.Clone(data.Customers),
		referrals:   slices.Clone(data.Referrals),
		redemptions: slices.Clone(data.Redemptions),
		logger:      logger,
	}
}

func (s *Store) FindCustomerByID(ctx context.Context, id string) (referral.Customer, error) {
	if err := ctx.Err(); err != nil {
		return referral.Customer{}, infra.WrapRepoErr(s.logger, infra.KindCanceled, "find customer by id", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return referral.Customer{}, infra.NewNotFound("customer " + id)
}

func (s *Store) FindCustomerByCode(ctx context.Context, code string) (referral.Customer, error) {
	if err := ctx.Err(); err != nil {
		return referral.Customer{}, infra.WrapRepoErr(s.logger, infra.KindCanceled, "find customer by code", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.Code == code {
			return c, nil
		}
	}
	return referral.Customer{}, infra.NewNotFound("referral code " + code)
}

// ReferralsFor returns the customer's referrals in insertion order.
func (s *Store) ReferralsFor(ctx context.Context, customerID string) ([]referral.Referral, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCanceled, "list referrals", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]referral.Referral, 0)
	for _, r := range s.referrals {
		if r.ReferredBy == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) RedemptionsFor(ctx context.Context, customerID string) ([]referral.Redemption, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCanceled, "list redemptions", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]referral.Redemption, 0)
	for _, x := range s.redemptions {
		if x.RedeemedBy == customerID {
			out = append(out, x)
		}
	}
	return out, nil
}

// AppendReferral assigns the next referral ID and stores whatever build returns for it.
// ID derivation and the append share one critical section.
func (s *Store) AppendReferral(ctx context.Context, build func(id string) (referral.Referral, error)) (referral.Referral, error) {
	if err := ctx.Err(); err != nil {
		return referral.Referral{}, infra.WrapRepoErr(s.logger, infra.KindCanceled, "append referral", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := build(referral.NextReferralID(s.referrals))
	if err != nil {
		return referral.Referral{}, err
	}
	s.referrals = append(s.referrals, rec)
	return rec, nil
}

// Snapshot copies the whole dataset.
func (s *Store) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Dataset{
		Customers:   slices.Clone(s.customers),
		Referrals:   slices.Clone(s.referrals),
		Redemptions: slices.Clone(s.redemptions),
	}
}
