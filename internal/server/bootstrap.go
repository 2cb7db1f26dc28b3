package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"portfoliochat/internal/config"
	"portfoliochat/internal/db"
	"portfoliochat/internal/handlers"
	"portfoliochat/internal/jobs"
	"portfoliochat/internal/metrics"
	"portfoliochat/internal/ratelimit"
	"portfoliochat/internal/responder"
)

// Run builds the server from cfg and serves until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	setupLogging(cfg.LogLevel)

	// Initialize database
	var pinger handlers.Pinger
	database, err := db.New(ctx, cfg.DatabaseURL)
	switch {
	case errors.Is(err, db.ErrNoDatabase):
		slog.Info("DATABASE_URL not set, intent counts are not persisted")
	case err != nil:
		return fmt.Errorf("connecting to database: %w", err)
	default:
		defer database.Close()
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("migrations completed successfully")
		metrics.Init(database)
		pinger = database
	}

	limiter, storage, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	pc, err := config.LoadProfileConfig()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	profile := applyProfileConfig(responder.DefaultProfile(), pc)
	resp, err := responder.ForProfile(profile)
	if err != nil {
		return fmt.Errorf("building responder: %w", err)
	}

	srv := New(cfg)
	srv.RegisterRoutes(Deps{
		Responder:   resp,
		Suggestions: responder.DefaultSuggestions(profile),
		Limiter:     limiter,
		Storage:     storage,
		DB:          pinger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	metrics.Flush()
	slog.Info("server exited")
	return nil
}

// newLimiter returns Redis-backed limiter storage when REDIS_URL is set, else
// the in-memory sliding log with its sweeper running until ctx is done.
func newLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, fiber.Storage, func()) {
	if cfg.RedisURL != "" {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		slog.Info("rate limiter using redis store", "max", cfg.RateLimitMax, "window", cfg.RateLimitWindow)
		return nil, store, func() {
			if err := store.Close(); err != nil {
				slog.Error("failed to close redis store", "error", err)
			}
		}
	}

	sw := ratelimit.NewSlidingWindow(ratelimit.Policy{Max: cfg.RateLimitMax, Window: cfg.RateLimitWindow})
	go jobs.NewLimiterSweeper(sw, cfg.RateLimitSweepInterval).Start(ctx)
	slog.Info("rate limiter using process memory", "max", cfg.RateLimitMax, "window", cfg.RateLimitWindow)
	return sw, nil, func() {}
}

func setupLogging(level string) {
	logLevel := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
