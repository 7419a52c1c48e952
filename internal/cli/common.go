package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/detour/internal/config"
	"github.com/danieljhkim/detour/internal/engine"
	"github.com/danieljhkim/detour/internal/excuse"
	"github.com/danieljhkim/detour/internal/fsops"
	"github.com/danieljhkim/detour/internal/random"
	"github.com/danieljhkim/detour/internal/settings"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths)
	if err != nil {
		return nil, err
	}

	setupLogging(os.Stderr, verbose || cfg.Log.Verbose)

	seed := resolveSeed(cmd.Flags().Changed("seed"), seedFlag, cfg.Planner.Seed)
	var src random.Source = random.New()
	if seed != 0 {
		src = random.NewSeeded(seed)
	}

	planner := excuse.NewEngine(src, excuse.WithUnavailableProbability(cfg.Planner.UnavailableProbability))
	store := settings.NewFileStore(fsops.NewRealFS(), paths.Settings)

	log.Printf("using settings at %s (seed=%d, p=%.2f)", store.Path(), seed, planner.Probability())

	return engine.New(store, planner, excuse.Default(), cfg.Planner.Destinations), nil
}

// resolveSeed picks the seed for the random source. An explicit --seed,
// including 0 for an unseeded run, wins over planner.seed.
func resolveSeed(flagSet bool, flagSeed, configSeed uint64) uint64 {
	if flagSet {
		return flagSeed
	}
	return configSeed
}

// setupLogging routes diagnostics to w when enabled and discards them otherwise.
func setupLogging(w io.Writer, enabled bool) {
	if !enabled {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("detour: ")
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
