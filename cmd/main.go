package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"referral-credits/cmd/bootstrap"
	"referral-credits/internal/handler/middleware"
	"referral-credits/internal/infra/memstore"
	"referral-credits/internal/pkg/clock"
	"referral-credits/internal/pkg/config"
	"referral-credits/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const version = "1.0.0"

func init() {
	// Fail safe: never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           referral-credits
// @version         1.0
// @description     Referral credits demo API. The GraphQL endpoint lives at /graphql.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("🚀 Starting server", "address", srv.Addr, "mode", gin.Mode(), "graphql", "/graphql")
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 Stopping server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral-credits",
		Short: "Referral credits demo API",
		Long: `referral-credits serves a GraphQL API (and a small REST mirror) over an
in-memory referral dataset: customers, the friends they invited, and the
credit they have redeemed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})
	cmd.AddCommand(summaryCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "referral-credits version %s\n", version)
		},
	})

	return cmd
}

func serve() error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Application failed to start", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Application failed to stop cleanly", "error", err)
	}

	slog.Info("Application stopped")
	return nil
}

func summaryCmd() *cobra.Command {
	var (
		customerID string
		seedFile   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a customer's referral summary from the seed data as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := middleware.NewLogger(config.LogConfig{Level: "warn", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"}).GetSlogLogger()

			data, err := memstore.LoadSeed(logger, seedFile)
			if err != nil {
				return err
			}
			q := queries.NewReferralQueries(memstore.New(logger, data), clock.NewRealClock())

			view, err := q.GetSummary(cmd.Context(), customerID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "cus_123", "Customer ID")
	cmd.Flags().StringVar(&seedFile, "seed", "", "Seed YAML file (defaults to the embedded demo data)")

	return cmd
}
