package components

import (
	"referral-credits/internal/domain/referral"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/config"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		referral.NewRandomFriendGenerator,
		fx.As(new(referral.FriendGenerator)),
	),
	func(cfg config.Config) commands.SendOptions {
		return commands.SendOptions{Delay: cfg.Referral.SendDelay}
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReferralQueries,
		func(q queries.ReferralQueries) commands.SummaryReader { return q },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReferralCommands,
	),
)
