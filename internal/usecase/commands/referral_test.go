//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
	"referral-credits/internal/infra/memstore"
	"referral-credits/internal/infra/notify"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/errs"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"
	"referral-credits/tests/common/builder"
	commandsmock "referral-credits/tests/mock/commands"
	referralmock "referral-credits/tests/mock/referral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var sentAt = time.Date(2025, 7, 4, 8, 30, 15, 123_000_000, time.UTC)

type ReferralCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	store     *memstore.Store
	friends   *referralmock.MockFriendGenerator
	publisher *commandsmock.MockEventPublisher
	metrics   *commandsmock.MockSendMetrics
	clock     *clock.MockClock
	logger    *slog.Logger
	friend    referral.Friend
}

func (s *ReferralCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	data, err := memstore.DefaultDataset(s.logger)
	s.Require().NoError(err)
	s.store = memstore.New(s.logger, data)

	s.mockCtrl = gomock.NewController(s.T())
	s.friends = referralmock.NewMockFriendGenerator(s.mockCtrl)
	s.publisher = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.metrics = commandsmock.NewMockSendMetrics(s.mockCtrl)
	s.clock = clock.NewMockClock(sentAt)
	s.friend = referral.Friend{Name: "Aria Mehta", Email: "aria.mehta0420@postbox.app"}
}

func (s *ReferralCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReferralCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReferralCommandsTestSuite))
}

func (s *ReferralCommandsTestSuite) newCommands(opts commands.SendOptions) commands.ReferralCommands {
	summaries := queries.NewReferralQueries(s.store, s.clock)
	return commands.NewReferralCommands(s.store, summaries, s.friends, s.publisher, s.metrics, s.clock, opts, s.logger)
}

func (s *ReferralCommandsTestSuite) expectSideEffects(customerID string) {
	s.friends.EXPECT().NewFriend().Return(s.friend).Times(1)
	s.metrics.EXPECT().ReferralSent(customerID).Times(1)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_Success() {
	s.expectSideEffects("cus_123")

	var published notify.ReferralSent
	s.publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev notify.ReferralSent) error {
			published = ev
			return nil
		}).Times(1)

	result, err := s.newCommands(commands.SendOptions{}).SendReferralCode(s.ctx, "0180YNUP")
	s.Require().NoError(err)

	s.True(result.OK)
	s.Equal("2025-07-04T08:30:15.123Z", result.Timestamp)
	s.Equal("Referral code 0180YNUP sent at 2025-07-04T08:30:15.123Z (added aria.mehta0420@postbox.app)", result.Message)
	s.Equal(queries.StatsView{ReferredCountYear: 3, EarnedTotal: 100, RedeemedTotal: 40, AvailableCredit: 60}, result.Stats)

	refs, err := s.store.ReferralsFor(s.ctx, "cus_123")
	s.Require().NoError(err)
	s.Require().Len(refs, 8)
	added := refs[len(refs)-1]
	s.Equal("r10", added.ID)
	s.Equal(referral.StatusInvited, added.Status)
	s.Zero(added.RewardEarned)
	s.Equal(s.friend, added.Friend)
	s.Equal("cus_123", added.ReferredBy)
	s.True(added.CreatedAt.Equal(sentAt))

	s.Equal("r10", published.ReferralID)
	s.Equal("cus_123", published.CustomerID)
	s.Equal("0180YNUP", published.Code)
	s.Equal(s.friend.Email, published.FriendEmail)
	s.NotEmpty(published.EventID)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_OtherCustomerUntouched() {
	s.expectSideEffects("cus_456")
	s.publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	before, err := s.store.ReferralsFor(s.ctx, "cus_123")
	s.Require().NoError(err)

	result, err := s.newCommands(commands.SendOptions{}).SendReferralCode(s.ctx, " ZZ9PLUTO ")
	s.Require().NoError(err)
	s.Equal(2, result.Stats.ReferredCountYear)
	s.Equal(5.0, result.Stats.AvailableCredit)

	after, err := s.store.ReferralsFor(s.ctx, "cus_123")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_RepeatedSends() {
	s.friends.EXPECT().NewFriend().Return(s.friend).Times(2)
	s.metrics.EXPECT().ReferralSent("cus_123").Times(2)
	s.publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	cmds := s.newCommands(commands.SendOptions{})
	first, err := cmds.SendReferralCode(s.ctx, "0180YNUP")
	s.Require().NoError(err)
	s.clock.Add(time.Second)
	second, err := cmds.SendReferralCode(s.ctx, "0180YNUP")
	s.Require().NoError(err)

	s.Equal(first.Stats.ReferredCountYear+1, second.Stats.ReferredCountYear)
	s.NotEqual(first.Timestamp, second.Timestamp)

	refs, err := s.store.ReferralsFor(s.ctx, "cus_123")
	s.Require().NoError(err)
	s.Equal("r11", refs[len(refs)-1].ID)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_PublishFailureIsTolerated() {
	s.expectSideEffects("cus_123")
	s.publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed")).Times(1)

	result, err := s.newCommands(commands.SendOptions{}).SendReferralCode(s.ctx, "0180YNUP")
	s.Require().NoError(err)
	s.True(result.OK)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_InvalidInput() {
	cmds := s.newCommands(commands.SendOptions{})

	s.Run("blank code", func() {
		for _, code := range []string{"", "  ", "\t"} {
			_, err := cmds.SendReferralCode(s.ctx, code)
			s.ErrorIs(err, commands.ErrCodeRequired)
			s.True(errs.IsInvalidArgument(err))
		}
	})

	s.Run("unknown code", func() {
		_, err := cmds.SendReferralCode(s.ctx, "NOPE1234")
		s.ErrorIs(err, commands.ErrReferralCodeNotFound)
		s.True(errs.IsNotFound(err))
	})

	s.Run("code is case sensitive", func() {
		_, err := cmds.SendReferralCode(s.ctx, "zz9pluto")
		s.True(errs.IsNotFound(err))
	})

	s.Len(s.store.Snapshot().Referrals, 9, "failed sends must not write")
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_DelayHonoursCancellation() {
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()

	_, err := s.newCommands(commands.SendOptions{Delay: time.Minute}).SendReferralCode(ctx, "0180YNUP")
	s.Require().Error(err)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Len(s.store.Snapshot().Referrals, 9)
}

func (s *ReferralCommandsTestSuite) TestSendReferralCode_WithDelay() {
	s.expectSideEffects("cus_123")
	s.publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	start := time.Now()
	_, err := s.newCommands(commands.SendOptions{Delay: 20 * time.Millisecond}).SendReferralCode(s.ctx, "0180YNUP")
	s.Require().NoError(err)
	s.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestSendReferralCode_StoreFailures(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	customer := builder.NewCustomerBuilder().Build()

	testCases := []struct {
		name      string
		setupMock func(*commandsmock.MockReferralWriteStore, *commandsmock.MockSummaryReader, *referralmock.MockFriendGenerator)
	}{
		{
			name: "code lookup fails",
			setupMock: func(store *commandsmock.MockReferralWriteStore, _ *commandsmock.MockSummaryReader, _ *referralmock.MockFriendGenerator) {
				store.EXPECT().FindCustomerByCode(gomock.Any(), "0180YNUP").
					Return(referral.Customer{}, infra.RepositoryError{Kind: infra.KindCanceled})
			},
		},
		{
			name: "append fails",
			setupMock: func(store *commandsmock.MockReferralWriteStore, _ *commandsmock.MockSummaryReader, friends *referralmock.MockFriendGenerator) {
				store.EXPECT().FindCustomerByCode(gomock.Any(), "0180YNUP").Return(customer, nil)
				friends.EXPECT().NewFriend().Return(referral.Friend{Name: "A B", Email: "a.b0000@mail.test"})
				store.EXPECT().AppendReferral(gomock.Any(), gomock.Any()).Return(referral.Referral{}, errors.New("boom"))
			},
		},
		{
			name: "summary recompute fails",
			setupMock: func(store *commandsmock.MockReferralWriteStore, summaries *commandsmock.MockSummaryReader, friends *referralmock.MockFriendGenerator) {
				store.EXPECT().FindCustomerByCode(gomock.Any(), "0180YNUP").Return(customer, nil)
				friends.EXPECT().NewFriend().Return(referral.Friend{Name: "A B", Email: "a.b0000@mail.test"})
				store.EXPECT().AppendReferral(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, build func(string) (referral.Referral, error)) (referral.Referral, error) {
						return build("r1")
					})
				summaries.EXPECT().GetSummary(gomock.Any(), "cus_123").Return(nil, errors.New("boom"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := commandsmock.NewMockReferralWriteStore(ctrl)
			summaries := commandsmock.NewMockSummaryReader(ctrl)
			friends := referralmock.NewMockFriendGenerator(ctrl)
			publisher := commandsmock.NewMockEventPublisher(ctrl)
			metrics := commandsmock.NewMockSendMetrics(ctrl)
			tc.setupMock(store, summaries, friends)

			cmds := commands.NewReferralCommands(store, summaries, friends, publisher, metrics,
				clock.NewMockClock(sentAt), commands.SendOptions{}, logger)
			result, err := cmds.SendReferralCode(ctx, "0180YNUP")

			require.Error(t, err)
			assert.Nil(t, result)
			assert.False(t, errs.IsNotFound(err))
		})
	}
}

func TestSendReferralCode_ConcurrentSends(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data, err := memstore.DefaultDataset(logger)
	require.NoError(t, err)
	store := memstore.New(logger, data)

	ctrl := gomock.NewController(t)
	publisher := commandsmock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().PublishReferralSent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	metrics := commandsmock.NewMockSendMetrics(ctrl)
	metrics.EXPECT().ReferralSent(gomock.Any()).AnyTimes()

	clk := clock.NewMockClock(sentAt)
	cmds := commands.NewReferralCommands(store, queries.NewReferralQueries(store, clk),
		referral.NewSeededFriendGenerator(1), publisher, metrics, clk, commands.SendOptions{}, logger)

	const senders = 20
	var wg sync.WaitGroup
	for range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmds.SendReferralCode(ctx, "0180YNUP")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	refs, err := store.ReferralsFor(ctx, "cus_123")
	require.NoError(t, err)
	assert.Len(t, refs, 7+senders)

	seen := make(map[string]bool)
	idPattern := regexp.MustCompile(`^r\d+$`)
	for _, r := range store.Snapshot().Referrals {
		assert.Regexp(t, idPattern, r.ID)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}
