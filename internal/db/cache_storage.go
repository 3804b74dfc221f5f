package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/albapepper/monsters/internal/cache"
)

// CacheStorage persists one recency cache snapshot per (cache name, session)
// row. A session lives as long as the process that minted it.
type CacheStorage struct {
	pool    *Pool
	name    string
	session uuid.UUID
}

// NewCacheStorage returns storage for the named cache under a fresh session.
func NewCacheStorage(pool *Pool, name string) *CacheStorage {
	return &CacheStorage{pool: pool, name: name, session: uuid.New()}
}

// Session identifies the rows this storage reads and writes.
func (s *CacheStorage) Session() uuid.UUID { return s.session }

func (s *CacheStorage) Load(ctx context.Context) (cache.Snapshot, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, "cache_load", s.name, s.session.String()).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return cache.Snapshot{}, false, nil
	}
	if err != nil {
		return cache.Snapshot{}, false, fmt.Errorf("load cache %s: %w", s.name, err)
	}

	var snap cache.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return cache.Snapshot{}, false, fmt.Errorf("decode cache %s: %w", s.name, err)
	}
	return snap, true, nil
}

func (s *CacheStorage) Save(ctx context.Context, snap cache.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", s.name, err)
	}
	if _, err := s.pool.Exec(ctx, "cache_save", s.name, s.session.String(), payload); err != nil {
		return fmt.Errorf("save cache %s: %w", s.name, err)
	}
	return nil
}

// SessionCount returns how many sessions hold a snapshot of the named cache.
func (p *Pool) SessionCount(ctx context.Context, name string) (int64, error) {
	var n int64
	if err := p.QueryRow(ctx, "cache_session_count", name).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache sessions: %w", err)
	}
	return n, nil
}

// PurgeStaleSessions deletes snapshots of other sessions untouched for
// longer than ttl and returns how many rows went away.
func (p *Pool) PurgeStaleSessions(ctx context.Context, keep uuid.UUID, ttl time.Duration) (int64, error) {
	tag, err := p.Exec(ctx, "cache_purge_stale", keep.String(), ttl.Seconds())
	if err != nil {
		return 0, fmt.Errorf("purge stale sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
