//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
	"referral-credits/internal/infra/memstore"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/errs"
	"referral-credits/internal/usecase/queries"
	"referral-credits/tests/common/builder"
	queriesmock "referral-credits/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var summer2025 = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func newSeededQueries(t *testing.T, now time.Time) queries.ReferralQueries {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data, err := memstore.DefaultDataset(logger)
	require.NoError(t, err)
	return queries.NewReferralQueries(memstore.New(logger, data), clock.NewMockClock(now))
}

func TestReferralQueries_GetSummary_Seeded(t *testing.T) {
	ctx := context.Background()

	t.Run("cus_123", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)

		view, err := q.GetSummary(ctx, "cus_123")
		require.NoError(t, err)

		assert.Equal(t, "cus_123", view.CustomerID)
		assert.Equal(t, "0180YNUP", view.Code)
		assert.Equal(t, queries.ProgramView{RewardAmount: 20, FriendDiscount: 40, MaxReferrals: 25}, view.Program)

		expected := queries.StatsView{ReferredCountYear: 2, EarnedTotal: 100, RedeemedTotal: 40, AvailableCredit: 60}
		if diff := cmp.Diff(expected, view.Stats); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}

		ids := make([]string, len(view.Referrals))
		for i, r := range view.Referrals {
			ids[i] = r.ID
		}
		assert.Equal(t, []string{"r7", "r6", "r5", "r4", "r3", "r2", "r1"}, ids)
	})

	t.Run("cus_456", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)

		view, err := q.GetSummary(ctx, "cus_456")
		require.NoError(t, err)

		expected := queries.StatsView{ReferredCountYear: 1, EarnedTotal: 20, RedeemedTotal: 15, AvailableCredit: 5}
		if diff := cmp.Diff(expected, view.Stats); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, view.Referrals, 2)
		for _, r := range view.Referrals {
			assert.Contains(t, []string{"r8", "r9"}, r.ID)
		}
	})

	t.Run("next year nothing counts toward the year", func(t *testing.T) {
		q := newSeededQueries(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

		view, err := q.GetSummary(ctx, "cus_123")
		require.NoError(t, err)
		assert.Zero(t, view.Stats.ReferredCountYear)
		assert.Equal(t, 60.0, view.Stats.AvailableCredit)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)

		view, err := q.GetSummary(ctx, "  cus_123\t")
		require.NoError(t, err)
		assert.Equal(t, "cus_123", view.CustomerID)
	})

	t.Run("repeated reads are identical", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)

		first, err := q.GetSummary(ctx, "cus_123")
		require.NoError(t, err)
		second, err := q.GetSummary(ctx, "cus_123")
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("summary changed between reads (-first +second):\n%s", diff)
		}
	})
}

func TestReferralQueries_GetSummary_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("blank id is an invalid argument", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)
		for _, id := range []string{"", "   ", "\n"} {
			_, err := q.GetSummary(ctx, id)
			assert.ErrorIs(t, err, queries.ErrCustomerIDRequired)
			assert.True(t, errs.IsInvalidArgument(err))
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		q := newSeededQueries(t, summer2025)

		_, err := q.GetSummary(ctx, "cus_999")
		assert.ErrorIs(t, err, queries.ErrCustomerNotFound)
		assert.True(t, errs.IsNotFound(err))
	})

	testCases := []struct {
		name      string
		setupMock func(*queriesmock.MockReferralReadStore)
	}{
		{
			name: "customer lookup fails",
			setupMock: func(m *queriesmock.MockReferralReadStore) {
				m.EXPECT().FindCustomerByID(gomock.Any(), "cus_123").
					Return(referral.Customer{}, infra.RepositoryError{Kind: infra.KindCanceled})
			},
		},
		{
			name: "referral listing fails",
			setupMock: func(m *queriesmock.MockReferralReadStore) {
				m.EXPECT().FindCustomerByID(gomock.Any(), "cus_123").Return(builder.NewCustomerBuilder().Build(), nil)
				m.EXPECT().ReferralsFor(gomock.Any(), "cus_123").Return(nil, errors.New("boom"))
			},
		},
		{
			name: "redemption listing fails",
			setupMock: func(m *queriesmock.MockReferralReadStore) {
				m.EXPECT().FindCustomerByID(gomock.Any(), "cus_123").Return(builder.NewCustomerBuilder().Build(), nil)
				m.EXPECT().ReferralsFor(gomock.Any(), "cus_123").Return([]referral.Referral{}, nil)
				m.EXPECT().RedemptionsFor(gomock.Any(), "cus_123").Return(nil, errors.New("boom"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReferralReadStore(ctrl)
			tc.setupMock(store)

			q := queries.NewReferralQueries(store, clock.NewMockClock(summer2025))
			view, err := q.GetSummary(ctx, "cus_123")

			require.Error(t, err)
			assert.Nil(t, view)
			assert.False(t, errs.IsNotFound(err))
			assert.False(t, errs.IsInvalidArgument(err))
		})
	}
}

func TestReferralQueries_GetSummary_Isolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReferralReadStore(ctrl)

	// A store that leaks another customer's rows must not change the figures.
	mine := builder.NewReferralBuilder().WithID("r1").WithCreatedAt(summer2025).Build()
	theirs := builder.NewReferralBuilder().WithID("r2").WithReferredBy("cus_456").WithReward(500).Build()
	store.EXPECT().FindCustomerByID(gomock.Any(), "cus_123").Return(builder.NewCustomerBuilder().Build(), nil)
	store.EXPECT().ReferralsFor(gomock.Any(), "cus_123").Return([]referral.Referral{mine, theirs}, nil)
	store.EXPECT().RedemptionsFor(gomock.Any(), "cus_123").Return([]referral.Redemption{
		builder.NewRedemption("x1", "cus_456", 300, summer2025),
	}, nil)

	q := queries.NewReferralQueries(store, clock.NewMockClock(summer2025))
	view, err := q.GetSummary(context.Background(), "cus_123")
	require.NoError(t, err)

	assert.Equal(t, 20.0, view.Stats.EarnedTotal)
	assert.Zero(t, view.Stats.RedeemedTotal)
	assert.Equal(t, 20.0, view.Stats.AvailableCredit)
}
