package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type failingStorage struct{}

func (failingStorage) Load(context.Context) (Snapshot, bool, error) {
	return Snapshot{}, false, errors.New("storage offline")
}

func (failingStorage) Save(context.Context, Snapshot) error {
	return errors.New("storage offline")
}

func TestEvictionKeepsMostRecent(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, NewMemoryStorage(), 10, quiet)

	for i := 0; i < 11; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}
	if c.Len() != 10 {
		t.Fatalf("Len = %d, want 10", c.Len())
	}
	if _, ok := c.Get(ctx, "k0"); ok {
		t.Error("k0 should have been evicted")
	}
	want := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}
	if got := c.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestGetPromotes(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, NewMemoryStorage(), 10, quiet)
	for i := 0; i < 11; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), "v")
	}

	// k1 is the oldest survivor; reading it moves it to the recent end.
	if v, ok := c.Get(ctx, "k1"); !ok || v != "v" {
		t.Fatalf("Get(k1) = %q, %v", v, ok)
	}
	for i := 0; i < 9; i++ {
		c.Set(ctx, fmt.Sprintf("n%d", i), "v")
	}
	if _, ok := c.Get(ctx, "k1"); !ok {
		t.Fatal("promoted key evicted too early")
	}
	for i := 2; i <= 10; i++ {
		if _, ok := c.Get(ctx, fmt.Sprintf("k%d", i)); ok {
			t.Errorf("k%d should have been evicted", i)
		}
	}

	// The second Get promoted k1 again, so ten more inserts are needed.
	for i := 9; i < 18; i++ {
		c.Set(ctx, fmt.Sprintf("n%d", i), "v")
	}
	if _, ok := c.Get(ctx, "k1"); !ok {
		t.Fatal("k1 should survive nine inserts after its last read")
	}
	for i := 18; i < 28; i++ {
		c.Set(ctx, fmt.Sprintf("n%d", i), "v")
	}
	if _, ok := c.Get(ctx, "k1"); ok {
		t.Error("k1 should be evicted after ten inserts without a read")
	}
}

func TestSetOverwriteDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, NewMemoryStorage(), 3, quiet)
	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "1")
	c.Set(ctx, "c", "1")
	c.Set(ctx, "a", "2")

	if got := c.Keys(); !slices.Equal(got, []string{"b", "c", "a"}) {
		t.Errorf("Keys = %v", got)
	}
	if v, _ := c.Get(ctx, "a"); v != "2" {
		t.Errorf("a = %q, want 2", v)
	}
}

func TestGetMissIsPureRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	c := New(ctx, store, 10, quiet)
	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "1")
	saves := store.Saves()

	if _, ok := c.Get(ctx, "zzz"); ok {
		t.Fatal("miss reported a hit")
	}
	if got := c.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys = %v, miss must not reorder", got)
	}
	if store.Saves() != saves {
		t.Error("miss must not write to storage")
	}
	if stats := c.Stats(); stats["misses"] != uint64(1) {
		t.Errorf("stats = %v", stats)
	}
}

func TestPersistAndRestore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	first := New(ctx, store, 10, quiet)
	first.Set(ctx, "bulbasaur", `{"key":"bulbasaur"}`)
	first.Set(ctx, "ivysaur", `{"key":"ivysaur"}`)
	first.Get(ctx, "bulbasaur")

	second := New(ctx, store, 10, quiet)
	if got := second.Keys(); !slices.Equal(got, []string{"ivysaur", "bulbasaur"}) {
		t.Errorf("restored keys = %v", got)
	}
	if v, ok := second.Get(ctx, "ivysaur"); !ok || v != `{"key":"ivysaur"}` {
		t.Errorf("restored value = %q, %v", v, ok)
	}
}

func TestRestoreTrimsToCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	_ = store.Save(ctx, Snapshot{
		Keys:   []string{"a", "b", "ghost", "c", "d"},
		Values: map[string]string{"a": "1", "b": "1", "c": "1", "d": "1"},
	})

	c := New(ctx, store, 2, quiet)
	if got := c.Keys(); !slices.Equal(got, []string{"c", "d"}) {
		t.Errorf("Keys = %v, want [c d]", got)
	}
	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("trimmed key still readable")
	}
}

func TestStorageFailureDoesNotFailCalls(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, failingStorage{}, 0, quiet)

	c.Set(ctx, "a", "1")
	if v, ok := c.Get(ctx, "a"); !ok || v != "1" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	stats := c.Stats()
	if stats["capacity"] != DefaultCapacity {
		t.Errorf("capacity = %v, want default", stats["capacity"])
	}
	if stats["save_errors"] != uint64(1) {
		t.Errorf("save_errors = %v, want 1", stats["save_errors"])
	}
}
