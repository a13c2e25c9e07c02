//go:build unit

package referral_test

import (
	"testing"
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitedReferral(t *testing.T) {
	friend := referral.Friend{Name: "Nora Kim", Email: "nora.kim0042@mail.test"}

	t.Run("basic success case", func(t *testing.T) {
		local := time.Date(2025, 7, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*60*60))

		actual, err := referral.NewInvitedReferral("r10", friend, "cus_123", local)
		require.NoError(t, err)

		assert.Equal(t, "r10", actual.ID)
		assert.Equal(t, friend, actual.Friend)
		assert.Equal(t, referral.StatusInvited, actual.Status)
		assert.Zero(t, actual.RewardEarned)
		assert.Equal(t, "cus_123", actual.ReferredBy)
		assert.Equal(t, time.UTC, actual.CreatedAt.Location())
		assert.True(t, actual.CreatedAt.Equal(local))
	})

	t.Run("rejects blank identifiers", func(t *testing.T) {
		_, err := referral.NewInvitedReferral(" ", friend, "cus_123", builder.BaseTime)
		assert.ErrorIs(t, err, referral.ErrEmptyReferralID)

		_, err = referral.NewInvitedReferral("r1", friend, "", builder.BaseTime)
		assert.ErrorIs(t, err, referral.ErrEmptyCustomerID)
	})
}

func TestReferralValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.ReferralBuilder)
		errIs  error
	}{
		{name: "valid signed up referral", mutate: func(b *builder.ReferralBuilder) {}},
		{name: "valid invited referral", mutate: func(b *builder.ReferralBuilder) { b.Invited() }},
		{name: "empty id", mutate: func(b *builder.ReferralBuilder) { b.WithID("") }, errIs: referral.ErrEmptyReferralID},
		{name: "unknown status", mutate: func(b *builder.ReferralBuilder) { b.WithStatus("PENDING") }, errIs: referral.ErrInvalidStatus},
		{name: "negative reward", mutate: func(b *builder.ReferralBuilder) { b.WithReward(-1) }, errIs: referral.ErrNegativeReward},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReferralBuilder()
			tc.mutate(b)
			err := b.Build().Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRedemptionValidate(t *testing.T) {
	assert.NoError(t, builder.NewRedemption("x1", "cus_123", 0.01, builder.BaseTime).Validate())
	assert.ErrorIs(t, builder.NewRedemption("x1", "cus_123", 0, builder.BaseTime).Validate(), referral.ErrNonPositiveAmount)
	assert.ErrorIs(t, builder.NewRedemption("x1", "cus_123", -5, builder.BaseTime).Validate(), referral.ErrNonPositiveAmount)
}

func TestParseStatus(t *testing.T) {
	s, err := referral.ParseStatus("INVITED")
	require.NoError(t, err)
	assert.Equal(t, referral.StatusInvited, s)

	s, err = referral.ParseStatus("SIGNED_UP")
	require.NoError(t, err)
	assert.Equal(t, referral.StatusSignedUp, s)

	_, err = referral.ParseStatus("invited")
	assert.ErrorIs(t, err, referral.ErrInvalidStatus)
}
