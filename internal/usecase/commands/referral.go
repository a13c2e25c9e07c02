package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
	"referral-credits/internal/infra/notify"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/errs"
	"referral-credits/internal/usecase/queries"
)

// TimestampLayout is RFC 3339 with milliseconds, always rendered in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	ErrCodeRequired         = errs.InvalidArgument("code is required")
	ErrReferralCodeNotFound = errs.NotFound(errs.New("referral code not found"))
)

type SendResultView struct {
	OK        bool              `json:"ok"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Stats     queries.StatsView `json:"stats"`
}

type ReferralCommands interface {
	SendReferralCode(ctx context.Context, code string) (*SendResultView, error)
}

type SendOptions struct {
	// Delay simulates network latency before the referral is recorded. Zero disables it.
	Delay time.Duration
}

type referralCommandsImpl struct {
	store     ReferralWriteStore
	summaries SummaryReader
	friends   referral.FriendGenerator
	publisher EventPublisher
	metrics   SendMetrics
	clock     clock.Clock
	opts      SendOptions
	logger    *slog.Logger
}

func NewReferralCommands(
	store ReferralWriteStore,
	summaries SummaryReader,
	friends referral.FriendGenerator,
	publisher EventPublisher,
	metrics SendMetrics,
	clk clock.Clock,
	opts SendOptions,
	logger *slog.Logger,
) ReferralCommands {
	return &referralCommandsImpl{
		store:     store,
		summaries: summaries,
		friends:   friends,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		opts:      opts,
		logger:    logger,
	}
}

func (uc *referralCommandsImpl) SendReferralCode(ctx context.Context, code string) (*SendResultView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	customer, err := uc.store.FindCustomerByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReferralCodeNotFound
		}
		return nil, errs.Wrap(err, "resolve referral code")
	}

	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	friend := uc.friends.NewFriend()
	rec, err := uc.store.AppendReferral(ctx, func(id string) (referral.Referral, error) {
		return referral.NewInvitedReferral(id, friend, customer.ID, now)
	})
	if err != nil {
		return nil, errs.Wrap(err, "append referral")
	}

	summary, err := uc.summaries.GetSummary(ctx, customer.ID)
	if err != nil {
		return nil, errs.Wrap(err, "recompute summary")
	}

	uc.metrics.ReferralSent(customer.ID)
	ev := notify.NewReferralSent(rec.ID, customer.ID, code, friend.Email, now)
	if perr := uc.publisher.PublishReferralSent(ctx, ev); perr != nil {
		uc.logger.Warn("Failed to publish referral sent event",
			"referral_id", rec.ID, "customer_id", customer.ID, "error", perr.Error())
	}

	timestamp := now.Format(TimestampLayout)
	return &SendResultView{
		OK:        true,
		Message:   fmt.Sprintf("Referral code %s sent at %s (added %s)", code, timestamp, friend.Email),
		Timestamp: timestamp,
		Stats:     summary.Stats,
	}, nil
}

func (uc *referralCommandsImpl) simulateLatency(ctx context.Context) error {
	if uc.opts.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.opts.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "send referral code")
	}
}
