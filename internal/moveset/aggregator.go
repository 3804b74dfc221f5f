package moveset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/monsters/internal/dex"
)

// Fetcher retrieves one species' learnset by its URL slug.
type Fetcher interface {
	Learnset(ctx context.Context, slug string) (*Learnset, error)
}

// Status is the state of an aggregation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSuccess  Status = "success"
	StatusFailure  Status = "failure"
	StatusNotFound Status = "not_found"
	StatusSkipped  Status = "skipped"
)

// Result is the outcome of one aggregation. Moves is set only on success
// and Error only on failure or not_found.
type Result struct {
	Status Status  `json:"status"`
	Error  string  `json:"error,omitempty"`
	Moves  Moveset `json:"moves,omitempty"`
}

// Loading reports whether the result is still outstanding.
func (r Result) Loading() bool { return r.Status == StatusPending }

// Aggregator fetches and merges the learnsets of a creature and its base
// evolution.
type Aggregator struct {
	fetcher Fetcher
	logger  *slog.Logger
}

func NewAggregator(fetcher Fetcher, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{fetcher: fetcher, logger: logger}
}

// Aggregate builds the generation map for key. With skip set nothing is
// fetched. An uncatalogued key is reported as not_found before any fetch.
// The primary species is fetched first and the base evolution only after it
// succeeds; if either fetch fails the result carries no moves.
func (a *Aggregator) Aggregate(ctx context.Context, key string, skip bool) Result {
	if skip {
		return Result{Status: StatusSkipped}
	}
	if _, ok := dex.PokemonName(key); !ok {
		return Result{Status: StatusNotFound, Error: fmt.Sprintf("%s: %v", key, dex.ErrUnknownPokemon)}
	}

	chain := []string{key}
	if base, ok := dex.BaseEvolution(key); ok {
		chain = append(chain, base)
	}

	sources := make([]Moveset, 0, len(chain))
	for _, k := range chain {
		set, err := a.fetch(ctx, k)
		if err != nil {
			return Result{Status: StatusFailure, Error: err.Error()}
		}
		sources = append(sources, set)
	}

	moves := Merge(sources...)
	a.logger.Debug("moveset aggregated", "key", key, "sources", len(sources), "generations", len(moves))
	return Result{Status: StatusSuccess, Moves: moves}
}

func (a *Aggregator) fetch(ctx context.Context, key string) (Moveset, error) {
	name, _ := dex.PokemonName(key)
	slug := dex.LearnsetSlug(key, name)

	learnset, err := a.fetcher.Learnset(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("fetch learnset %s: %w", slug, err)
	}
	return FromLearnset(learnset), nil
}
