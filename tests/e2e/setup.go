//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"referral-credits/cmd/bootstrap"
	"referral-credits/cmd/bootstrap/components"
	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra/memstore"
	"referral-credits/internal/infra/metrics"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// FixedNow pins "current year" to 2025 so the seed data yields stable stats.
var FixedNow = time.Date(2025, 7, 4, 8, 30, 15, 123_000_000, time.UTC)

// ------------------------------------------------------------
// Build the application graph with test overrides
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, cfg config.Config) (*gin.Engine, *memstore.Store, *metrics.Metrics, *fx.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		router *gin.Engine
		store  *memstore.Store
		m      *metrics.Metrics
	)

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.NotifierModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return clock.NewMockClock(FixedNow) }),
		fx.Decorate(func(referral.FriendGenerator) referral.FriendGenerator {
			return referral.NewSeededFriendGenerator(2025)
		}),

		fx.Populate(&router, &store, &m),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})

	return router, store, m, app
}

// ------------------------------------------------------------
// Shared setup for E2E test suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Store   *memstore.Store
	Metrics *metrics.Metrics
	Config  config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Config = config.NewTestConfig()
}

// SetupTest rebuilds the app so every test starts from the seed data.
func (s *SharedSuite) SetupTest() {
	router, store, m, _ := setupE2EEnvironment(s.T(), s.Config)
	s.Router = router
	s.Store = store
	s.Metrics = m
	require.NotNil(s.T(), s.Router, "Failed to set up router")
	require.NotNil(s.T(), s.Store, "Failed to set up store")
}
