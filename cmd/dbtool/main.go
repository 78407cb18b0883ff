package main

import (
	"context"
	"database/sql"
	"dormdash-route-service/internal/adapters/repositories"
	"dormdash-route-service/internal/config"
	"dormdash-route-service/internal/platform/db"
	"dormdash-route-service/internal/platform/obs"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Manage the DormDash route service database",
		Example:      "  $ dbtool migrate\n  $ dbtool seed --path data/seeds/dormdash.json",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", config.Get("LOG_LEVEL", "info"), "log level")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), logLevel, func(ctx context.Context, logger *zap.Logger, conn *sql.DB) error {
				if err := db.Migrate(ctx, conn); err != nil {
					return err
				}
				logger.Info("schema ready")
				return nil
			})
		},
	}

	var seedPath string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load movers and jobs from a JSON seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), logLevel, func(ctx context.Context, logger *zap.Logger, conn *sql.DB) error {
				if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
					return err
				}
				logger.Info("seeding complete", zap.String("path", seedPath))
				return nil
			})
		},
	}
	seedCmd.Flags().StringVar(&seedPath, "path", config.Get("SEED_PATH", "data/seeds/dormdash.json"), "seed file")

	root.AddCommand(migrateCmd, seedCmd)
	return root
}

// withDB opens the database named by DATABASE_URL and hands it to fn.
func withDB(
	ctx context.Context,
	logLevel string,
	fn func(ctx context.Context, logger *zap.Logger, conn *sql.DB) error,
) error {
	logger, err := obs.NewLogger(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Error("open database failed", zap.Error(err))
		return err
	}
	defer conn.Close()

	if err := fn(ctx, logger, conn); err != nil {
		logger.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
