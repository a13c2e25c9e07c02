package bootstrap

import (
	"context"
	"log/slog"

	"referral-credits/internal/infra/notify"
	"referral-credits/internal/pkg/config"
	"referral-credits/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewEventPublisher,
	),
)

type closablePublisher interface {
	commands.EventPublisher
	Close() error
}

// NewEventPublisher connects to NATS when NATS_URL is set and otherwise logs events.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	var pub closablePublisher
	if cfg.NATS.Enabled() {
		natsPub, err := notify.NewNATSPublisher(cfg.NATS, logger)
		if err != nil {
			return nil, err
		}
		pub = natsPub
	} else {
		logger.Info("NATS_URL not set; referral events go to the log")
		pub = notify.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
