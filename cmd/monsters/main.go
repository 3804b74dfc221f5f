// Command monsters is the Monsters data CLI.
//
// Usage:
//
//	monsters pokemon bulbasaur
//	monsters pokemon charizard --chart
//	monsters moves ivysaur --gen 4
//	monsters move vine-whip
//	monsters move
//	monsters dex --sort effective --dir desc
//	monsters export --out ./dump --workers 4 bulbasaur ivysaur
//	monsters purge --ttl 24h
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/albapepper/monsters/internal/config"
	"github.com/albapepper/monsters/internal/db"
	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/export"
	"github.com/albapepper/monsters/internal/maintenance"
	"github.com/albapepper/monsters/internal/matchup"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/provider/graphql"
	"github.com/albapepper/monsters/internal/provider/pokeapi"
	"github.com/albapepper/monsters/internal/species"
)

var (
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	title   = cases.Title(language.English)
	asJSON  bool
	verbose bool
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "monsters",
		Short: "Monsters data CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(pokemonCmd())
	root.AddCommand(movesCmd())
	root.AddCommand(moveCmd())
	root.AddCommand(dexCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(purgeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// pokemon command
// --------------------------------------------------------------------------

func pokemonCmd() *cobra.Command {
	var chart bool
	cmd := &cobra.Command{
		Use:   "pokemon <key>",
		Short: "Show a species record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpstream(func(ctx context.Context, up *upstream) error {
				key, ok := dex.LookupRoute(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", dex.ErrUnknownPokemon, args[0])
				}
				name, _ := dex.PokemonName(key)
				payload, err := up.gql.Pokemon(ctx, key)
				if err != nil {
					return err
				}
				sp := species.Normalize(payload, name)
				if asJSON {
					return printJSON(cmd.OutOrStdout(), sp)
				}
				printSpecies(cmd.OutOrStdout(), sp)
				if chart {
					printChart(cmd.OutOrStdout(), sp.Weaknesses)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&chart, "chart", false, "Also print the multiplier of every attacking type")
	return cmd
}

func printSpecies(w io.Writer, sp species.Species) {
	fmt.Fprintf(w, "#%d %s (%s)\n", sp.Num, sp.Name, typeLabels(sp.Types))
	fmt.Fprintf(w, "  %s\n", sp.Description)
	fmt.Fprintf(w, "  base total %d, effective %d, %s attacker, %s\n",
		sp.BaseTotal, sp.EffectiveBaseTotal, sp.AttackerType, sp.Efficiency)
	fmt.Fprintf(w, "  %s\n", strings.Join(lo.Map(dex.Stats(), func(s dex.Stat, _ int) string {
		return fmt.Sprintf("%s %d", s, sp.BaseStats.Get(s))
	}), ", "))
	fmt.Fprintf(w, "  ability: %s", sp.Abilities.First.Name)
	if sp.Abilities.Second != nil {
		fmt.Fprintf(w, " / %s", sp.Abilities.Second.Name)
	}
	if sp.Abilities.Hidden != nil {
		fmt.Fprintf(w, " (hidden: %s)", sp.Abilities.Hidden.Name)
	}
	fmt.Fprintln(w)
	if sp.Rarity != "" {
		fmt.Fprintf(w, "  %s\n", title.String(string(sp.Rarity)))
	}

	buckets := []struct {
		label string
		types []dex.Type
	}{
		{"4x", sp.Weaknesses.Quad},
		{"2x", sp.Weaknesses.Double},
		{"0.5x", sp.Weaknesses.Half},
		{"0.25x", sp.Weaknesses.Quarter},
		{"0x", sp.Weaknesses.None},
	}
	for _, b := range buckets {
		if len(b.types) > 0 {
			fmt.Fprintf(w, "  %-5s %s\n", b.label, typeLabels(b.types))
		}
	}
}

// printChart lists every attacking type with its multiplier, in type order.
func printChart(w io.Writer, t matchup.Table) {
	chart := t.Multipliers()
	for _, typ := range dex.Types() {
		fmt.Fprintf(w, "  %-9s %gx\n", title.String(string(typ)), chart[typ])
	}
}

// --------------------------------------------------------------------------
// moves command
// --------------------------------------------------------------------------

func movesCmd() *cobra.Command {
	var gen int
	cmd := &cobra.Command{
		Use:   "moves <key>",
		Short: "Show a creature's moves by generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gen != 0 && !dex.Generation(gen).Valid() {
				return fmt.Errorf("--gen must be between 1 and 9")
			}
			return runUpstream(func(ctx context.Context, up *upstream) error {
				key, ok := dex.LookupRoute(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", dex.ErrUnknownPokemon, args[0])
				}
				res := up.moves.Aggregate(ctx, key, false)
				if res.Status != moveset.StatusSuccess {
					return fmt.Errorf("moveset %s: %s %s", key, res.Status, res.Error)
				}
				moves := res.Moves
				if gen != 0 {
					moves = lo.PickByKeys(moves, []dex.Generation{dex.Generation(gen)})
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), moves)
				}
				printMoveset(cmd.OutOrStdout(), moves)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&gen, "gen", 0, "Only show this generation (1-9); 0 = all")
	return cmd
}

func printMoveset(w io.Writer, moves moveset.Moveset) {
	for _, g := range moves.Generations() {
		fmt.Fprintf(w, "Generation %d\n", g)
		for _, m := range moves[g] {
			fmt.Fprintf(w, "  %-20s %-9s %-9s %3d  %s\n",
				m.Name, title.String(string(m.Type)), title.String(string(m.Category)), m.Power, title.String(string(m.Method)))
		}
	}
}

// --------------------------------------------------------------------------
// move command
// --------------------------------------------------------------------------

func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [key]",
		Short: "Show move details; without a key, list the catalogued moves",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printMoveList(cmd.OutOrStdout())
				return nil
			}
			key := dex.MoveKeyFromName(args[0])
			info, ok := dex.Move(key)
			if !ok {
				return fmt.Errorf("%w: %s", dex.ErrUnknownMove, args[0])
			}
			return runUpstream(func(ctx context.Context, up *upstream) error {
				payload, err := up.gql.Move(ctx, key)
				if err != nil {
					return err
				}
				mv := species.NormalizeMove(key, info.Accuracy, payload)
				if asJSON {
					return printJSON(cmd.OutOrStdout(), mv)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s, %s)\n", mv.Name, title.String(string(mv.Type)), title.String(string(mv.Category)))
				fmt.Fprintf(out, "  power %d, accuracy %s, pp %d, priority %d\n", mv.Power, mv.Accuracy, mv.PP, mv.Priority)
				fmt.Fprintf(out, "  %s\n", mv.Description)
				return nil
			})
		},
	}
}

func printMoveList(w io.Writer) {
	for _, key := range dex.MoveKeys() {
		info, _ := dex.Move(key)
		fmt.Fprintf(w, "%-16s %-20s %-9s %-9s %3d %5s\n",
			key, info.Name, title.String(string(info.Type)), title.String(string(info.Category)), info.Power, info.Accuracy)
	}
}

// --------------------------------------------------------------------------
// dex command
// --------------------------------------------------------------------------

func dexCmd() *cobra.Command {
	var sortKey, dir string
	cmd := &cobra.Command{
		Use:   "dex",
		Short: "List every catalogued creature with its attacker profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := species.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			if dir != "asc" && dir != "desc" {
				return fmt.Errorf("--dir must be asc or desc")
			}
			return runUpstream(func(ctx context.Context, up *upstream) error {
				raw, err := up.gql.AllPokemon(ctx)
				if err != nil {
					return err
				}
				list := species.SortFragments(species.NormalizeFragments(raw), key, dir == "desc")
				if asJSON {
					return printJSON(cmd.OutOrStdout(), list)
				}
				out := cmd.OutOrStdout()
				for _, f := range list {
					fmt.Fprintf(out, "%4d  %-14s %-18s %4d %4d  %-8s %s\n",
						f.DexNumber, f.Name, typeLabels(f.Types), f.BaseTotal, f.EffectiveBaseTotal, f.AttackerType, f.Efficiency)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "dex", "Sort key (dex, name, effective, base)")
	cmd.Flags().StringVar(&dir, "dir", "asc", "Sort direction (asc, desc)")
	return cmd
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

func exportCmd() *cobra.Command {
	var (
		outDir  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "export [keys...]",
		Short: "Write species records and movesets as JSON files; no keys = whole catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpstream(func(ctx context.Context, up *upstream) error {
				start := time.Now()
				result := export.Run(ctx, &export.Deps{Species: up.gql, Moves: up.moves}, args, outDir, workers, logger)
				logger.Info("Export finished",
					"duration", time.Since(start).Round(time.Second),
					"out", outDir,
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("export error", "error", e)
				}
				if result.Failed > 0 {
					return fmt.Errorf("%d of %d exports failed", result.Failed, result.Requested)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "export", "Output directory")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent worker count")
	return cmd
}

// --------------------------------------------------------------------------
// purge command
// --------------------------------------------------------------------------

func purgeCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete persisted recency cache sessions idle for longer than --ttl",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.HasDatabase() {
				return fmt.Errorf("DATABASE_URL is required")
			}
			if ttl <= 0 {
				ttl = cfg.SessionTTL
			}

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			// No session is live in this process, so none is kept.
			if _, err := maintenance.PurgeSessions(ctx, pool, uuid.Nil, ttl, logger); err != nil {
				return err
			}
			remaining, err := pool.SessionCount(ctx, cfg.CacheName)
			if err != nil {
				return err
			}
			logger.Info("Cache sessions remaining", "cache", cfg.CacheName, "sessions", remaining)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Idle time after which a session is purged; 0 = SESSION_TTL")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

type upstream struct {
	gql   *graphql.Client
	moves *moveset.Aggregator
}

// runUpstream handles config loading, client construction and context
// cancellation.
func runUpstream(fn func(ctx context.Context, up *upstream) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	up := &upstream{
		gql: graphql.NewClient(cfg.GraphQLURL, cfg.UpstreamRequestsPerMinute, cfg.UpstreamTimeout, logger),
		moves: moveset.NewAggregator(
			pokeapi.NewClient(cfg.PokeAPIURL, cfg.UpstreamRequestsPerMinute, cfg.UpstreamTimeout, logger),
			logger,
		),
	}
	return fn(ctx, up)
}

func typeLabels(types []dex.Type) string {
	return strings.Join(lo.Map(types, func(t dex.Type, _ int) string {
		return title.String(string(t))
	}), "/")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
