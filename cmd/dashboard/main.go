package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/backend"
	"github.com/skyeanalytics/ipl-dashboard/internal/cache"
	"github.com/skyeanalytics/ipl-dashboard/internal/config"
	"github.com/skyeanalytics/ipl-dashboard/internal/handlers"
	"github.com/skyeanalytics/ipl-dashboard/internal/logic"
	"github.com/skyeanalytics/ipl-dashboard/internal/store"
	"github.com/skyeanalytics/ipl-dashboard/internal/worker"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	if err := run(cfg, logger); err != nil {
		sugar.Fatalw("Dashboard stopped with error", "error", err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Response cache (optional)
	var responseCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("Redis unreachable at startup, cache calls will be skipped until it recovers", "error", err)
		}
		cancel()
		responseCache = cache.NewRedisCache(rdb, cfg.CacheTTL)
		sugar.Infow("Response cache enabled", "ttl", cfg.CacheTTL)
	}

	// Prediction history (optional)
	var history interface {
		logic.HistoryStore
		handlers.Pinger
	} = store.Noop{}
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to create postgres pool: %w", err)
		}
		defer pool.Close()

		pg := store.NewHistory(pool)
		migrateCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = pg.Migrate(migrateCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to migrate prediction history: %w", err)
		}
		history = pg
		sugar.Info("Prediction history enabled")
	}

	api := backend.New(backend.Options{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
		Cache:   responseCache,
		Logger:  logger,
	})
	sugar.Infow("Analytics backend configured", "url", api.BaseURL(), "timeout", cfg.BackendTimeout)

	// Cache warmer only pays off when there is a shared cache to fill.
	var warmer *worker.Pool
	if cfg.RedisURL != "" {
		warmer = worker.NewPool(worker.PoolConfig{
			WorkerCount: cfg.WarmWorkers,
			Interval:    cfg.WarmInterval,
			Targets:     worker.StandardTargets(api),
			Logger:      logger,
		})
		warmer.Start(ctx)
		defer warmer.Stop()
	}

	hcfg := handlers.Config{
		Backend:       api,
		History:       history,
		Logger:        logger,
		DefaultSeason: cfg.DefaultSeason,
		Dashboard:     logic.NewDashboardService(api),
		Teams:         logic.NewTeamStatsService(api),
		Venues:        logic.NewVenueStatsService(api),
		Matches:       logic.NewMatchStatsService(api),
		Toss:          logic.NewTossStatsService(api),
		HeadToHead:    logic.NewHeadToHeadService(api),
		Players:       logic.NewPlayerStatsService(api),
		Prediction:    logic.NewPredictionService(api, history, logger),
	}
	if cfg.RedisURL != "" {
		hcfg.Cache = responseCache
	}
	if warmer != nil {
		hcfg.Warmer = warmer
	}

	h := handlers.New(hcfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: handlers.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		sugar.Infow("Dashboard listening", "addr", srv.Addr, "env", cfg.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		sugar.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

