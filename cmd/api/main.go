// Command api is the Monsters Data API server.
//
// Usage:
//
//	monsters-api
//	API_PORT=8080 DATABASE_URL=postgres://... monsters-api

// @title Monsters Data API
// @version 1.0.0
// @description Creature reference API: species records with weakness tables and attacker profiles, generation movesets merged across evolutions, and a live moveset stream. Upstream responses are normalized once and served from a persisted recency cache.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Monsters
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/monsters/internal/api"
	"github.com/albapepper/monsters/internal/api/handler"
	"github.com/albapepper/monsters/internal/cache"
	"github.com/albapepper/monsters/internal/config"
	"github.com/albapepper/monsters/internal/db"
	"github.com/albapepper/monsters/internal/maintenance"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/provider/graphql"
	"github.com/albapepper/monsters/internal/provider/pokeapi"

	_ "github.com/albapepper/monsters/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	level := slog.LevelInfo
	if err == nil && cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Recency cache storage: Postgres when configured, memory otherwise
	var (
		storage cache.Storage = cache.NewMemoryStorage()
		checker handler.HealthChecker
	)
	if cfg.HasDatabase() {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)

		store := db.NewCacheStorage(pool, cfg.CacheName)
		storage, checker = store, pool
		logger.Info("Cache session started", "session", store.Session())

		// Purge sessions left behind by earlier processes
		mcfg := maintenance.DefaultConfig()
		mcfg.SessionTTL = cfg.SessionTTL
		go maintenance.Start(ctx, pool, store.Session(), mcfg, logger)
	} else {
		logger.Info("No DATABASE_URL; recency cache kept in memory")
	}

	recent := cache.New(ctx, storage, cfg.CacheCapacity, logger)
	logger.Info("Cache initialized", "capacity", cfg.CacheCapacity, "restored", recent.Len())

	// Upstream clients
	gql := graphql.NewClient(cfg.GraphQLURL, cfg.UpstreamRequestsPerMinute, cfg.UpstreamTimeout, logger)
	learnsets := pokeapi.NewClient(cfg.PokeAPIURL, cfg.UpstreamRequestsPerMinute, cfg.UpstreamTimeout, logger)
	aggregator := moveset.NewAggregator(learnsets, logger)

	// Create router
	h := handler.New(gql, aggregator, recent, checker, cfg, logger)
	router := api.NewRouter(h, cfg, logger)

	// Create HTTP server
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Monsters Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
