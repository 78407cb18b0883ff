package main

import (
	"context"
	"dormdash-route-service/internal/adapters/cache"
	"dormdash-route-service/internal/adapters/repositories"
	"dormdash-route-service/internal/api"
	"dormdash-route-service/internal/config"
	"dormdash-route-service/internal/platform/db"
	"dormdash-route-service/internal/platform/obs"
	"dormdash-route-service/internal/ports"
	"dormdash-route-service/internal/services"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Apply migrations and seed demo data on startup for local runs.
	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, conn); err != nil {
			return err
		}
		if err := repositories.SeedFromJSON(ctx, conn, cfg.SeedPath); err != nil {
			return err
		}
		logger.Info("database ready", zap.String("seed_path", cfg.SeedPath))
	}

	var movers ports.MoverRepository = repositories.NewPostgresMoverRepository(conn)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		// An unreachable Redis only costs cache hits; lookups fall through to Postgres.
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, availability cache will miss", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}

		movers = cache.NewCachedMoverRepository(
			movers,
			cache.NewRedisAvailabilityCache(rdb, logger),
			cfg.AvailabilityCacheTTL,
			logger,
		)
		logger.Info("availability cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.AvailabilityCacheTTL))
	}

	jobs := repositories.NewPostgresJobRepository(conn)
	planner := services.NewSmartRoutePlanner(jobs, movers, cfg.Planner, logger)
	router := api.NewRouter(planner, jobs, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("planner_tz", cfg.Planner.Location.String()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
