// Package cache provides a small recency cache whose contents are persisted
// through a pluggable Storage.
package cache

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// DefaultCapacity is the number of distinct keys kept when New is given a
// non-positive capacity.
const DefaultCapacity = 10

// Snapshot is the persisted form of the cache: keys ordered from least to
// most recently used, and their values.
type Snapshot struct {
	Keys   []string          `json:"keys"`
	Values map[string]string `json:"values"`
}

// Storage loads and saves snapshots. ok is false when nothing was stored yet.
type Storage interface {
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Save(ctx context.Context, snap Snapshot) error
}

// LRU is a capped least-recently-used cache of string values. Every get hit
// and every set makes the key the most recent; a set past capacity evicts
// the least recent key. Each mutation is written through to storage.
type LRU struct {
	mu       sync.Mutex
	storage  Storage
	logger   *slog.Logger
	capacity int
	keys     []string // oldest first
	values   map[string]string

	hits      uint64
	misses    uint64
	evictions uint64
	saveErrs  uint64
}

// New builds a cache and restores whatever storage holds. A storage error at
// load is logged and the cache starts empty.
func New(ctx context.Context, storage Storage, capacity int, logger *slog.Logger) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	if storage == nil {
		storage = NewMemoryStorage()
	}
	c := &LRU{
		storage:  storage,
		logger:   logger,
		capacity: capacity,
		values:   make(map[string]string),
	}

	snap, ok, err := storage.Load(ctx)
	if err != nil {
		logger.Warn("recency cache load failed, starting empty", "error", err)
		return c
	}
	if ok {
		c.restore(snap)
	}
	return c
}

// restore adopts a snapshot, ignoring keys without values and keeping only
// the most recent entries that fit.
func (c *LRU) restore(snap Snapshot) {
	for _, k := range snap.Keys {
		v, ok := snap.Values[k]
		if !ok || slices.Contains(c.keys, k) {
			continue
		}
		c.keys = append(c.keys, k)
		c.values[k] = v
	}
	for len(c.keys) > c.capacity {
		delete(c.values, c.keys[0])
		c.keys = c.keys[1:]
	}
}

// Get returns the value for key. A hit promotes key to most recent; a miss
// changes nothing.
func (c *LRU) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.values[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	if c.touch(key) {
		c.persist(ctx)
	}
	return v, true
}

// Set stores value under key, makes it most recent and evicts the least
// recent key if the cache is over capacity.
func (c *LRU) Set(ctx context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
	c.touch(key)
	if len(c.keys) > c.capacity {
		oldest := c.keys[0]
		c.keys = c.keys[1:]
		delete(c.values, oldest)
		c.evictions++
	}
	c.persist(ctx)
}

// touch moves key to the most recent end and reports whether the order
// changed.
func (c *LRU) touch(key string) bool {
	if n := len(c.keys); n > 0 && c.keys[n-1] == key {
		return false
	}
	if i := slices.Index(c.keys, key); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	c.keys = append(c.keys, key)
	return true
}

func (c *LRU) persist(ctx context.Context) {
	if err := c.storage.Save(ctx, c.snapshotLocked()); err != nil {
		c.saveErrs++
		c.logger.Warn("recency cache save failed", "error", err)
	}
}

func (c *LRU) snapshotLocked() Snapshot {
	values := make(map[string]string, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	return Snapshot{Keys: slices.Clone(c.keys), Values: values}
}

// Len returns the number of cached keys.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.keys)
}

// Stats returns cache statistics.
func (c *LRU) Stats() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return map[string]interface{}{
		"capacity":    c.capacity,
		"keys":        len(c.keys),
		"hits":        c.hits,
		"misses":      c.misses,
		"evictions":   c.evictions,
		"save_errors": c.saveErrs,
	}
}
