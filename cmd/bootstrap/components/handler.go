package components

import (
	"referral-credits/internal/handler"
	"referral-credits/internal/handler/api"
	"referral-credits/internal/handler/graphql"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReferralHandler,
		graphql.NewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
