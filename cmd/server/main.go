package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/recipe-service/internal/cache"
	"github.com/actuallystonmai/recipe-service/internal/config"
	"github.com/actuallystonmai/recipe-service/internal/handler"
	"github.com/actuallystonmai/recipe-service/internal/logging"
	"github.com/actuallystonmai/recipe-service/internal/model"
	"github.com/actuallystonmai/recipe-service/internal/repository"
	"github.com/actuallystonmai/recipe-service/internal/router"
	"github.com/actuallystonmai/recipe-service/internal/service"
	"github.com/actuallystonmai/recipe-service/migrations"
	"github.com/actuallystonmai/recipe-service/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to parse database config")
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		logging.Fatal().Err(err).Msg("database not ready")
	}
	logging.Info().Msg("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrations.Down(ctx, pool); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate down")
		}
		logging.Info().Msg("migrations dropped")
		return
	}

	if err := migrations.Up(ctx, pool); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate up")
	}
	logging.Info().Msg("migrations applied")

	repo := repository.New(pool)

	// ------------ Setup Seed Data ---------------
	if cfg.SeedOnStart {
		if err := checkSeed(ctx, repo, pool); err != nil {
			logging.Fatal().Err(err).Msg("failed to check seed")
		}
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to parse redis url")
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	store := cache.NewSuggestionStore(rdb, cfg.SuggestionTTL)
	if err := store.Ping(ctx); err != nil {
		// suggestions degrade to empty until redis comes back
		logging.Warn().Err(err).Msg("redis unavailable")
	} else {
		logging.Info().Msg("connected to Redis")
	}

	// ------------ Service ---------------
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	modelClient := model.NewClient(model.Options{
		Threshold:    &cfg.MatchThreshold,
		SimilarLimit: cfg.SimilarLimit,
	})
	logging.Info().
		Float64("match_threshold", cfg.MatchThreshold).
		Int("similar_limit", cfg.SimilarLimit).
		Msg("engine configured")
	svc := service.NewService(repo, store, modelClient, rand.New(rand.NewSource(seed)))

	h := handler.NewHandler(svc, map[string]handler.Pinger{
		"postgres": repo,
		"redis":    store,
	})

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(h, router.Options{
			CORSOrigins:       cfg.CORSOrigins,
			RateLimitRequests: cfg.RateLimitRequests,
			RateLimitWindow:   cfg.RateLimitWindow,
			RequestTimeout:    cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
	case err := <-errCh:
		logging.Error().Err(err).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logging.Info().Int("attempt", i+1).Msg("waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func checkSeed(ctx context.Context, repo *repository.Repository, pool *pgxpool.Pool) error {
	count, err := repo.CountRecipes(ctx)
	if err != nil {
		return fmt.Errorf("check recipes count: %w", err)
	}
	if count > 0 {
		logging.Info().Int("recipes", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, pool)
}
