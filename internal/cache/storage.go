package cache

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorage keeps the snapshot in process memory. It backs tests and
// runs without a database.
type MemoryStorage struct {
	mu    sync.Mutex
	snap  *Snapshot
	saves int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(context.Context) (Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return Snapshot{}, false, nil
	}
	return cloneSnapshot(*m.snap), true, nil
}

func (m *MemoryStorage) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := cloneSnapshot(snap)
	m.snap = &s
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStorage) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func cloneSnapshot(s Snapshot) Snapshot {
	values := make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return Snapshot{Keys: slices.Clone(s.Keys), Values: values}
}
