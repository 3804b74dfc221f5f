// Package handler provides HTTP handlers for all API endpoints.
// Species and moveset responses are serialized once and kept in the recency
// cache as raw JSON; handlers pass those bytes through.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/albapepper/monsters/internal/api/respond"
	"github.com/albapepper/monsters/internal/cache"
	"github.com/albapepper/monsters/internal/config"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/species"
)

// responseTTL is the client cache lifetime for upstream-derived data, which
// only changes when the upstream catalogue does.
const responseTTL = time.Hour

// GraphQL is the upstream species and move source.
type GraphQL interface {
	Pokemon(ctx context.Context, key string) (*species.Payload, error)
	Move(ctx context.Context, key string) (*species.MovePayload, error)
	AllPokemon(ctx context.Context) ([]species.FragmentPayload, error)
}

// HealthChecker verifies the database. nil means no database is configured.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	gql      GraphQL
	moves    moveset.Source
	recent   *cache.LRU
	db       HealthChecker
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// New creates a Handler with shared dependencies. db may be nil.
func New(gql GraphQL, moves moveset.Source, recent *cache.LRU, db HealthChecker, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		gql:    gql,
		moves:  moves,
		recent: recent,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and cache backend.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.Status(w, http.StatusOK, map[string]interface{}{
		"name":    "Monsters Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"features": []string{
			"weakness_tables",
			"attacker_profiles",
			"generation_movesets",
			"moveset_stream",
			"recency_cache",
			"etag_support",
		},
		"cache_storage": h.storageKind(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.Status(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity. Reports not_configured when the cache runs in memory.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respond.Status(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not_configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.db.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		respond.Status(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.Status(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns recency cache statistics.
// @Summary Cache health check
// @Description Returns recency cache statistics and the keys it holds, least recent first.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.Status(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"storage":   h.storageKind(),
		"cache":     h.recent.Stats(),
		"keys":      h.recent.Keys(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) storageKind() string {
	if h.db != nil {
		return "postgres"
	}
	return "memory"
}
