package notify

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the application log. Used when NATS is not configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishReferralSent(ctx context.Context, ev ReferralSent) error {
	p.logger.InfoContext(ctx, "Referral sent",
		"event_id", ev.EventID,
		"referral_id", ev.ReferralID,
		"customer_id", ev.CustomerID,
		"code", ev.Code,
		"friend_email", ev.FriendEmail,
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
