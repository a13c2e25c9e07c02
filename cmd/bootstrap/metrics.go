package bootstrap

import (
	"referral-credits/internal/handler/graphql"
	"referral-credits/internal/handler/middleware"
	"referral-credits/internal/infra/metrics"
	"referral-credits/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.SendMetrics)),
			fx.As(new(graphql.RequestRecorder)),
			fx.As(new(middleware.RequestObserver)),
		),
	),
)
