// Package db provides a pgxpool-based connection pool with prepared statement
// registration, health checking and the persisted recency cache.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/monsters/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// The schema must exist before statements referencing it can be prepared,
	// so it is created once on a dedicated connection ahead of the pool.
	if err := ensureSchema(ctx, poolCfg.ConnConfig); err != nil {
		return nil, err
	}
	poolCfg.AfterConnect = registerPreparedStatements

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

const schema = `
CREATE TABLE IF NOT EXISTS recency_cache (
	name       TEXT        NOT NULL,
	session_id TEXT        NOT NULL,
	payload    JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (name, session_id)
);
CREATE INDEX IF NOT EXISTS recency_cache_updated_at_idx ON recency_cache (updated_at);`

func ensureSchema(ctx context.Context, connCfg *pgx.ConnConfig) error {
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return fmt.Errorf("connect for schema: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers all statements the API and CLI use.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Recency cache
		"cache_load": "SELECT payload FROM recency_cache WHERE name = $1 AND session_id = $2",
		"cache_save": `INSERT INTO recency_cache (name, session_id, payload, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (name, session_id) DO UPDATE
			SET payload = EXCLUDED.payload, updated_at = NOW()`,

		// Maintenance
		"cache_purge_stale": `DELETE FROM recency_cache
			WHERE session_id <> $1
			  AND updated_at < NOW() - make_interval(secs => $2)`,
		"cache_session_count": "SELECT COUNT(*) FROM recency_cache WHERE name = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
