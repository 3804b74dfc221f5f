package moveset

import (
	"context"
	"sync"
)

// Source runs one aggregation. *Aggregator satisfies it.
type Source interface {
	Aggregate(ctx context.Context, key string, skip bool) Result
}

// State is a published tracker state. Seq identifies the request that
// produced it.
type State struct {
	Seq  uint64 `json:"seq"`
	Key  string `json:"key"`
	Skip bool   `json:"skip"`
	Result
}

// Tracker follows the moveset of whichever creature was requested last.
// Each Request supersedes the previous one: the older request's context is
// cancelled and its outcome, whenever it arrives, is discarded.
type Tracker struct {
	source  Source
	updates chan State
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current State
	closed  bool
}

// NewTracker creates a tracker. buffer sizes the Updates channel; a full
// channel blocks publishing until the consumer catches up or Close is
// called.
func NewTracker(source Source, buffer int) *Tracker {
	return &Tracker{
		source:  source,
		updates: make(chan State, buffer),
		done:    make(chan struct{}),
		current: State{Result: Result{Status: StatusSkipped}},
	}
}

// Request starts an aggregation for key and returns its sequence number.
// A skipped request publishes its terminal state immediately.
func (t *Tracker) Request(ctx context.Context, key string, skip bool) uint64 {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
	seq := t.seq

	if skip {
		t.publishLocked(State{Seq: seq, Key: key, Skip: true, Result: Result{Status: StatusSkipped}})
		t.mu.Unlock()
		return seq
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.publishLocked(State{Seq: seq, Key: key, Result: Result{Status: StatusPending}})
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		defer cancel()

		res := t.source.Aggregate(ctx, key, false)
		if ctx.Err() != nil {
			return
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		if t.closed || seq != t.seq {
			return
		}
		t.cancel = nil
		t.publishLocked(State{Seq: seq, Key: key, Result: res})
	}()
	return seq
}

// publishLocked records s as current and hands it to the consumer. Holding
// the lock while sending keeps published states in sequence order.
func (t *Tracker) publishLocked(s State) {
	t.current = s
	select {
	case t.updates <- s:
	case <-t.done:
	}
}

// Current returns the latest published state.
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Updates delivers every published state in order. It is closed by Close.
func (t *Tracker) Updates() <-chan State { return t.updates }

// Close cancels any outstanding request, waits for it to finish and closes
// the Updates channel.
func (t *Tracker) Close() {
	t.once.Do(func() {
		close(t.done)

		t.mu.Lock()
		t.closed = true
		if t.cancel != nil {
			t.cancel()
			t.cancel = nil
		}
		t.mu.Unlock()

		t.wg.Wait()
		close(t.updates)
	})
}
