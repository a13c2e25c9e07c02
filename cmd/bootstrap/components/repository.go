package components

import (
	"log/slog"

	"referral-credits/internal/infra/memstore"
	"referral-credits/internal/pkg/config"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewStore,
			fx.As(fx.Self()),
			fx.As(new(queries.ReferralReadStore)),
			fx.As(new(commands.ReferralWriteStore)),
		),
	),
)

// NewStore seeds the in-memory store from SEED_FILE, or the embedded demo data.
func NewStore(cfg config.Config, logger *slog.Logger) (*memstore.Store, error) {
	data, err := memstore.LoadSeed(logger, cfg.Referral.SeedFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Referral store seeded",
		"customers", len(data.Customers),
		"referrals", len(data.Referrals),
		"redemptions", len(data.Redemptions),
		"seed_file", cfg.Referral.SeedFile,
	)
	return memstore.New(logger, data), nil
}
