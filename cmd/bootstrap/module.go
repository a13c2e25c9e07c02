package bootstrap

import (
	"referral-credits/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	NotifierModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
