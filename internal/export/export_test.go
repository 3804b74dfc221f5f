package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/species"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSpecies struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeSpecies) Pokemon(_ context.Context, key string) (*species.Payload, error) {
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()
	if f.fail[key] {
		return nil, errors.New("status 500")
	}
	return &species.Payload{
		Key:            key,
		BaseStats:      species.StatBlock{Attack: 80, SpecialAttack: 35},
		BaseStatsTotal: 305,
		Types:          []*species.TypePayload{{Name: "Fighting"}},
	}, nil
}

type fakeMoves struct{ fail map[string]bool }

func (f fakeMoves) Aggregate(_ context.Context, key string, _ bool) moveset.Result {
	if f.fail[key] {
		return moveset.Result{Status: moveset.StatusFailure, Error: "fetch learnset " + key + ": timeout"}
	}
	return moveset.Result{
		Status: moveset.StatusSuccess,
		Moves: moveset.Moveset{
			1: {{Key: "karatechop", Method: dex.LevelUp}, {Key: "toxic", Method: dex.Machine}},
			2: {{Key: "karatechop", Method: dex.LevelUp}},
		},
	}
}

func TestRunWritesDocuments(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSpecies{}
	res := Run(context.Background(), &Deps{Species: src, Moves: fakeMoves{}}, []string{"machop", "mr-mime", "machop"}, dir, 4, quiet)

	if res.Requested != 2 || res.Succeeded != 2 || res.Failed != 0 {
		t.Fatalf("result = %s errors=%v", res.Summary(), res.Errors)
	}
	if res.Results[0].Key != "machop" || res.Results[1].Key != "mrmime" {
		t.Errorf("results out of order: %+v", res.Results)
	}
	if res.Results[0].Moves != 3 {
		t.Errorf("moves = %d, want 3", res.Results[0].Moves)
	}

	data, err := os.ReadFile(filepath.Join(dir, "machop.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Species.Name != "Machop" || doc.Species.AttackerType != species.PhysicalAttacker || doc.Species.EffectiveBaseTotal != 270 {
		t.Errorf("species = %+v", doc.Species)
	}
	if len(doc.Moves[1]) != 2 {
		t.Errorf("moves = %v", doc.Moves)
	}
	if _, err := os.Stat(filepath.Join(dir, "mrmime.json")); err != nil {
		t.Errorf("route slug not exported under its key: %v", err)
	}
}

func TestRunCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSpecies{fail: map[string]bool{"machoke": true}}
	moves := fakeMoves{fail: map[string]bool{"machamp": true}}

	res := Run(context.Background(), &Deps{Species: src, Moves: moves}, []string{"machop", "machoke", "machamp", "agumon"}, dir, 2, quiet)

	if res.Succeeded != 1 || res.Failed != 3 || len(res.Errors) != 3 {
		t.Fatalf("result = %s errors=%v", res.Summary(), res.Errors)
	}
	if res.Results[3].Success || res.Results[3].Path != "" {
		t.Errorf("unknown key should fail: %+v", res.Results[3])
	}
	for _, call := range src.calls {
		if call == "agumon" {
			t.Error("unknown keys must not reach upstream")
		}
	}
	for _, key := range []string{"machoke", "machamp", "agumon"} {
		if _, err := os.Stat(filepath.Join(dir, key+".json")); !os.IsNotExist(err) {
			t.Errorf("%s.json written for a failed export", key)
		}
	}
}

func TestRunDefaultsToCatalogue(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Run(ctx, &Deps{Species: &fakeSpecies{}, Moves: fakeMoves{}}, nil, dir, 8, quiet)
	if res.Requested != len(dex.PokemonKeys()) {
		t.Errorf("requested = %d, want whole catalogue", res.Requested)
	}
	if res.Succeeded != 0 || res.Failed != res.Requested {
		t.Errorf("cancelled run = %s", res.Summary())
	}
}

func TestRunWithoutLogger(t *testing.T) {
	res := Run(context.Background(), &Deps{Species: &fakeSpecies{}, Moves: fakeMoves{}}, []string{"machop"}, t.TempDir(), 1, nil)
	if res.Succeeded != 1 {
		t.Errorf("result = %s errors=%v", res.Summary(), res.Errors)
	}
}
