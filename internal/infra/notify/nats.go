package notify

import (
	"context"
	"log/slog"

	"referral-credits/internal/pkg/config"
	"referral-credits/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

type NATSPublisher struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

func NewNATSPublisher(cfg config.NATSConfig, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.MaxReconnects(5),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "connect to NATS at %s", cfg.URL)
	}
	logger.Info("NATS publisher connected", "url", nc.ConnectedUrl(), "subject", cfg.Subject)
	return &NATSPublisher{nc: nc, subject: cfg.Subject, logger: logger}, nil
}

func (p *NATSPublisher) PublishReferralSent(ctx context.Context, ev ReferralSent) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "publish referral sent")
	}
	data, err := ev.Encode()
	if err != nil {
		return errs.Wrap(err, "encode referral sent")
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return errs.Wrapf(err, "publish to %s", p.subject)
	}
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return errs.Wrap(err, "drain NATS connection")
	}
	return nil
}
