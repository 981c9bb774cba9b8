package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solver-matching-engine/config"
	httpHandler "solver-matching-engine/internal/adapter/http/handler"
	"solver-matching-engine/internal/adapter/ledger/evm"
	memoryStorage "solver-matching-engine/internal/adapter/storage/memory"
	redisStorage "solver-matching-engine/internal/adapter/storage/redis"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/internal/service"
	"solver-matching-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int64("chain_id", cfg.Ledger.ChainID).
		Msg("Starting Solver Matching Engine")

	ctx := context.Background()

	// Initialize ledger client
	ledger, err := evm.NewClient(ctx, cfg.Ledger, logger.Component(log, "ledger"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to ledger")
	}
	defer ledger.Close()
	log.Info().Str("rpc_url", cfg.Ledger.RPCURL).Msg("Ledger connected")

	healthCheckers := []ports.HealthChecker{ledger}

	// Match guard and rate limiting: Redis when enabled, in-process otherwise
	var guard ports.MatchGuard = memoryStorage.NewMatchGuard()
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		guard = redisStorage.NewMatchGuard(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize core services
	eligibility := service.NewEligibilityService(ledger, cfg.Matcher.GracePeriod)
	scorer := service.NewScoringService()
	matcher := service.NewMatchingService(
		ledger,
		eligibility,
		scorer,
		cfg.Matcher.RetryAttempts,
		cfg.Matcher.RetryBackoff,
		cfg.Matcher.AttemptTimeout,
		logger.Component(log, "matcher"),
	)

	// Start the payment watcher
	stream := evm.NewStream(ledger, logger.Component(log, "stream"))
	watcher := service.NewWatcherService(
		stream,
		matcher,
		guard,
		cfg.Matcher.MaxConcurrent,
		cfg.Matcher.GuardTTL,
		cfg.Matcher.ResubBackoff,
		logger.Component(log, "watcher"),
	)
	if err := watcher.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start payment watcher")
	}

	// Setup Gin router with the operational API
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		Matcher:        matcher,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the watcher first so no new matching attempts start, then drain
	// HTTP connections.
	if err := watcher.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Watcher forced to stop")
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Matching engine exited")
}
