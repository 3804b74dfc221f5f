// Package export writes species records and movesets to disk in bulk.
// Each creature becomes one JSON document, {key}.json, under the output
// directory. Creatures are processed by a bounded worker pool.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/species"
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// SpeciesSource fetches raw species payloads. *graphql.Client satisfies it.
type SpeciesSource interface {
	Pokemon(ctx context.Context, key string) (*species.Payload, error)
}

// Deps holds the upstream sources an export run needs.
type Deps struct {
	Species SpeciesSource
	Moves   moveset.Source
}

// Document is the on-disk shape of one exported creature.
type Document struct {
	Species species.Species `json:"species"`
	Moves   moveset.Moveset `json:"moves"`
}

// Result tracks the outcome of exporting a single creature.
type Result struct {
	Key      string
	Path     string
	Moves    int
	Success  bool
	Error    string
	Duration time.Duration
}

// Summary returns a human-readable summary.
func (r *Result) Summary() string {
	status := "ok"
	if !r.Success {
		status = "FAILED"
	}
	return fmt.Sprintf("key=%s moves=%d status=%s dur=%s",
		r.Key, r.Moves, status, r.Duration.Round(time.Millisecond))
}

// RunResult tracks the outcome of a full export run.
type RunResult struct {
	Requested int
	Succeeded int
	Failed    int
	Duration  time.Duration
	Errors    []string
	Results   []Result
}

// Summary returns a human-readable summary.
func (r *RunResult) Summary() string {
	return fmt.Sprintf("requested=%d succeeded=%d failed=%d dur=%s",
		r.Requested, r.Succeeded, r.Failed, r.Duration.Round(time.Millisecond))
}

// --------------------------------------------------------------------------
// Run
// --------------------------------------------------------------------------

// Run exports keys (route slugs are accepted) into outDir. An empty key list
// exports the whole catalogue. Results are ordered as the keys were given,
// after duplicates are removed.
func Run(ctx context.Context, deps *Deps, keys []string, outDir string, workers int, logger *slog.Logger) RunResult {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	var result RunResult

	if len(keys) == 0 {
		keys = dex.PokemonKeys()
	}
	keys = lo.Uniq(keys)
	result.Requested = len(keys)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		result.Failed = len(keys)
		result.Errors = append(result.Errors, fmt.Sprintf("create output dir: %v", err))
		result.Duration = time.Since(start)
		return result
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	type work struct {
		index int
		key   string
	}
	ch := make(chan work, len(keys))
	for i, key := range keys {
		ch <- work{i, key}
	}
	close(ch)

	results := make([]Result, len(keys))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range ch {
				results[w.index] = exportOne(ctx, deps, w.key, outDir)
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		if r.Success {
			result.Succeeded++
			logger.Debug("Exported", "summary", r.Summary())
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", r.Key, r.Error))
	}
	result.Results = results
	result.Duration = time.Since(start)

	logger.Info("Export run complete", "summary", result.Summary())
	return result
}

func exportOne(ctx context.Context, deps *Deps, slug, outDir string) Result {
	start := time.Now()
	r := Result{Key: slug}
	fail := func(err error) Result {
		r.Error = err.Error()
		r.Duration = time.Since(start)
		return r
	}

	key, ok := dex.LookupRoute(slug)
	if !ok {
		return fail(fmt.Errorf("%w: %s", dex.ErrUnknownPokemon, slug))
	}
	r.Key = key
	name, _ := dex.PokemonName(key)

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	payload, err := deps.Species.Pokemon(ctx, key)
	if err != nil {
		return fail(fmt.Errorf("fetch species: %w", err))
	}

	moves := deps.Moves.Aggregate(ctx, key, false)
	if moves.Status != moveset.StatusSuccess {
		return fail(fmt.Errorf("aggregate moveset: %s %s", moves.Status, moves.Error))
	}

	data, err := json.MarshalIndent(Document{Species: species.Normalize(payload, name), Moves: moves.Moves}, "", "  ")
	if err != nil {
		return fail(fmt.Errorf("encode document: %w", err))
	}
	path := filepath.Join(outDir, key+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fail(fmt.Errorf("write %s: %w", path, err))
	}

	r.Path = path
	r.Moves = lo.SumBy(lo.Values(moves.Moves), func(list []moveset.Fragment) int { return len(list) })
	r.Success = true
	r.Duration = time.Since(start)
	return r
}
