package moveset

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/albapepper/monsters/internal/dex"
)

// fakeFetcher serves canned learnsets by slug and records every call.
type fakeFetcher struct {
	mu        sync.Mutex
	learnsets map[string]*Learnset
	errs      map[string]error
	calls     []string
}

func (f *fakeFetcher) Learnset(_ context.Context, slug string) (*Learnset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, slug)
	if err := f.errs[slug]; err != nil {
		return nil, err
	}
	if l, ok := f.learnsets[slug]; ok {
		return l, nil
	}
	return nil, errors.New("404 not found")
}

func entry(name string, details ...[2]string) LearnsetMove {
	m := LearnsetMove{Move: NamedResource{Name: name}}
	for _, d := range details {
		m.VersionGroupDetails = append(m.VersionGroupDetails, VersionGroupDetail{
			VersionGroup:    NamedResource{Name: d[0]},
			MoveLearnMethod: NamedResource{Name: d[1]},
		})
	}
	return m
}

func frag(key string, method dex.LearnMethod) Fragment {
	return Fragment{Key: key, Method: method}
}

func keysOf(list []Fragment) []string {
	out := make([]string, len(list))
	for i, f := range list {
		out[i] = f.Key
	}
	return out
}

// --------------------------------------------------------------------------
// Merge
// --------------------------------------------------------------------------

func TestMergeLearnMethodPriority(t *testing.T) {
	egg := Moveset{1: {frag("tackle", dex.Egg)}}
	level := Moveset{1: {frag("tackle", dex.LevelUp)}}

	for _, merged := range []Moveset{Merge(egg, level), Merge(level, egg)} {
		got := merged[1]
		if len(got) != 1 || got[0].Method != dex.LevelUp {
			t.Errorf("merged = %+v, want a single level-up tackle", got)
		}
	}
}

func TestMergeDedupeOrder(t *testing.T) {
	primary := Moveset{1: {frag("a", dex.Egg), frag("b", dex.Tutor), frag("a", dex.Machine)}}
	base := Moveset{1: {frag("c", dex.LevelUp)}}

	got := Merge(primary, base)[1]
	if keys := keysOf(got); !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Fatalf("keys = %v, want [a b c]", keys)
	}
	if got[0].Method != dex.Machine {
		t.Errorf("a resolved to %q, want machine", got[0].Method)
	}
}

func TestMergeTieKeepsFirst(t *testing.T) {
	first := Fragment{Key: "tackle", Name: "first", Method: dex.Machine}
	second := Fragment{Key: "tackle", Name: "second", Method: dex.Machine}

	got := Merge(Moveset{2: {first}}, Moveset{2: {second}})[2]
	if len(got) != 1 || got[0].Name != "first" {
		t.Errorf("merged = %+v, want the first occurrence", got)
	}
}

func TestMergeSingleSourceGenerations(t *testing.T) {
	primary := Moveset{1: {frag("a", dex.LevelUp)}}
	base := Moveset{2: {frag("b", dex.Egg)}, 3: {frag("c", dex.Tutor)}}

	merged := Merge(primary, base)
	gens := merged.Generations()
	if len(gens) != 3 || gens[0] != 1 || gens[2] != 3 {
		t.Fatalf("generations = %v", gens)
	}
	if merged[2][0].Key != "b" || merged[3][0].Method != dex.Tutor {
		t.Errorf("single-source generations changed: %+v", merged)
	}
}

func TestMergeDoesNotAliasSources(t *testing.T) {
	src := Moveset{1: {frag("a", dex.Egg), frag("a", dex.LevelUp)}}
	_ = Merge(src)
	if len(src[1]) != 2 || src[1][0].Method != dex.Egg {
		t.Errorf("source mutated: %+v", src)
	}
}

// --------------------------------------------------------------------------
// FromLearnset
// --------------------------------------------------------------------------

func TestFromLearnset(t *testing.T) {
	l := &Learnset{Moves: []LearnsetMove{
		entry("tackle",
			[2]string{"red-blue", "level-up"},
			[2]string{"yellow", "level-up"},
			[2]string{"gold-silver", "level-up"},
		),
		entry("toxic",
			[2]string{"red-blue", "machine"},
			[2]string{"colosseum", "machine"},
			[2]string{"yellow", "form-change"},
		),
		entry("not-a-move", [2]string{"red-blue", "level-up"}),
	}}

	got := FromLearnset(l)
	if keys := keysOf(got[1]); !slices.Equal(keys, []string{"tackle", "toxic"}) {
		t.Errorf("gen 1 keys = %v, want [tackle toxic]", keys)
	}
	if keys := keysOf(got[2]); !slices.Equal(keys, []string{"tackle"}) {
		t.Errorf("gen 2 keys = %v, want [tackle]", keys)
	}
	if got[1][0].Name != "Tackle" || got[1][0].Power != 40 {
		t.Errorf("tackle fragment = %+v", got[1][0])
	}
	if len(FromLearnset(nil)) != 0 {
		t.Error("nil learnset should produce an empty map")
	}
}

// --------------------------------------------------------------------------
// Aggregator
// --------------------------------------------------------------------------

func TestAggregateBulbasaur(t *testing.T) {
	f := &fakeFetcher{learnsets: map[string]*Learnset{
		"bulbasaur": {Moves: []LearnsetMove{
			entry("tackle", [2]string{"red-blue", "level-up"}),
			entry("frenzy-plant", [2]string{"red-blue", "tutor"}),
			entry("toxic", [2]string{"red-blue", "machine"}),
		}},
	}}
	res := NewAggregator(f, nil).Aggregate(context.Background(), "bulbasaur", false)

	if res.Status != StatusSuccess || res.Error != "" {
		t.Fatalf("result = %+v", res)
	}
	if len(f.calls) != 1 {
		t.Errorf("calls = %v, want a single fetch", f.calls)
	}
	gen1 := res.Moves[1]
	if keys := keysOf(gen1); !slices.Equal(keys, []string{"tackle", "toxic"}) {
		t.Fatalf("gen 1 keys = %v, want [tackle toxic]", keys)
	}
	if gen1[0].Method != dex.LevelUp || gen1[1].Method != dex.Machine {
		t.Errorf("methods = %s, %s", gen1[0].Method, gen1[1].Method)
	}
}

func TestAggregateMergesBaseEvolution(t *testing.T) {
	f := &fakeFetcher{learnsets: map[string]*Learnset{
		"ivysaur": {Moves: []LearnsetMove{
			entry("razor-leaf", [2]string{"red-blue", "level-up"}),
			entry("tackle", [2]string{"red-blue", "machine"}),
		}},
		"bulbasaur": {Moves: []LearnsetMove{
			entry("tackle", [2]string{"red-blue", "level-up"}),
			entry("petal-dance", [2]string{"red-blue", "egg"}),
		}},
	}}
	res := NewAggregator(f, nil).Aggregate(context.Background(), "ivysaur", false)

	if res.Status != StatusSuccess {
		t.Fatalf("result = %+v", res)
	}
	if !slices.Equal(f.calls, []string{"ivysaur", "bulbasaur"}) {
		t.Errorf("calls = %v, want primary then base", f.calls)
	}
	gen1 := res.Moves[1]
	if keys := keysOf(gen1); !slices.Equal(keys, []string{"razorleaf", "tackle", "petaldance"}) {
		t.Fatalf("gen 1 keys = %v", keys)
	}
	if gen1[1].Method != dex.LevelUp {
		t.Errorf("tackle method = %s, want level-up from the base evolution", gen1[1].Method)
	}
}

func TestAggregateBaseFailureIsBothOrError(t *testing.T) {
	f := &fakeFetcher{
		learnsets: map[string]*Learnset{
			"ivysaur": {Moves: []LearnsetMove{entry("tackle", [2]string{"red-blue", "level-up"})}},
		},
		errs: map[string]error{"bulbasaur": errors.New("connection reset")},
	}
	res := NewAggregator(f, nil).Aggregate(context.Background(), "ivysaur", false)

	if res.Status != StatusFailure || res.Error == "" {
		t.Fatalf("result = %+v, want failure", res)
	}
	if res.Moves != nil {
		t.Errorf("moves = %+v, want nil", res.Moves)
	}
}

func TestAggregatePrimaryFailureSkipsBase(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{"ivysaur": errors.New("timeout")}}
	res := NewAggregator(f, nil).Aggregate(context.Background(), "ivysaur", false)

	if res.Status != StatusFailure || res.Moves != nil {
		t.Fatalf("result = %+v", res)
	}
	if !slices.Equal(f.calls, []string{"ivysaur"}) {
		t.Errorf("calls = %v, base must not be fetched after a primary failure", f.calls)
	}
}

func TestAggregateSkipAndNotFound(t *testing.T) {
	f := &fakeFetcher{}
	agg := NewAggregator(f, nil)

	res := agg.Aggregate(context.Background(), "bulbasaur", true)
	if res.Status != StatusSkipped || res.Loading() || res.Moves != nil {
		t.Errorf("skip result = %+v", res)
	}

	res = agg.Aggregate(context.Background(), "agumon", false)
	if res.Status != StatusNotFound || res.Moves != nil {
		t.Errorf("unknown key result = %+v", res)
	}
	if len(f.calls) != 0 {
		t.Errorf("calls = %v, want none", f.calls)
	}
}

// --------------------------------------------------------------------------
// Tracker
// --------------------------------------------------------------------------

type sourceFunc func(ctx context.Context, key string, skip bool) Result

func (f sourceFunc) Aggregate(ctx context.Context, key string, skip bool) Result {
	return f(ctx, key, skip)
}

func next(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case s, ok := <-ch:
		if !ok {
			t.Fatal("updates closed early")
		}
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tracker state")
	}
	return State{}
}

func TestTrackerSupersedesStaleRequest(t *testing.T) {
	started := make(chan struct{})
	src := sourceFunc(func(ctx context.Context, key string, _ bool) Result {
		if key == "slow" {
			close(started)
			<-ctx.Done()
			return Result{Status: StatusFailure, Error: ctx.Err().Error()}
		}
		return Result{Status: StatusSuccess, Moves: Moveset{1: {frag(key, dex.LevelUp)}}}
	})
	tr := NewTracker(src, 8)

	first := tr.Request(context.Background(), "slow", false)
	<-started
	second := tr.Request(context.Background(), "fast", false)

	if s := next(t, tr.Updates()); s.Seq != first || s.Status != StatusPending {
		t.Errorf("state 1 = %+v, want pending for the first request", s)
	}
	if s := next(t, tr.Updates()); s.Seq != second || s.Status != StatusPending {
		t.Errorf("state 2 = %+v, want pending for the second request", s)
	}
	if s := next(t, tr.Updates()); s.Seq != second || s.Status != StatusSuccess || s.Key != "fast" {
		t.Errorf("state 3 = %+v, want success for the second request", s)
	}

	tr.Close()
	for s := range tr.Updates() {
		t.Errorf("unexpected state after supersession: %+v", s)
	}
	if cur := tr.Current(); cur.Seq != second || cur.Status != StatusSuccess {
		t.Errorf("current = %+v", cur)
	}
}

func TestTrackerSkip(t *testing.T) {
	calls := 0
	src := sourceFunc(func(context.Context, string, bool) Result {
		calls++
		return Result{Status: StatusSuccess}
	})
	tr := NewTracker(src, 1)
	defer tr.Close()

	tr.Request(context.Background(), "bulbasaur", true)
	if s := next(t, tr.Updates()); s.Status != StatusSkipped || !s.Skip {
		t.Errorf("state = %+v, want skipped", s)
	}
	if calls != 0 {
		t.Errorf("source called %d times for a skipped request", calls)
	}
}

func TestTrackerRequestAfterClose(t *testing.T) {
	tr := NewTracker(sourceFunc(func(context.Context, string, bool) Result {
		return Result{Status: StatusSuccess}
	}), 1)
	tr.Close()
	if seq := tr.Request(context.Background(), "bulbasaur", false); seq != 0 {
		t.Errorf("Request after Close = %d, want 0", seq)
	}
}
