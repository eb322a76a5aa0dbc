// Package demo is the demonstration driver for the tree sort: it generates
// random integers, sorts them, times the sort, checks the result and reports.
package demo

import (
	"context"
	"fmt"

	"github.com/amp-labs/treesort/envutil"
	"github.com/amp-labs/treesort/errors"
)

const (
	defaultSize       = 10
	defaultMaxValue   = 100
	defaultTrials     = 1
	defaultWorkers    = 4
	defaultPrintLimit = 20
)

// Config controls a demonstration run.
type Config struct {
	// Size is the number of values sorted per trial.
	Size int
	// MaxValue bounds the generated values to [0, MaxValue).
	MaxValue int
	// Trials is the number of independent generate-sort-verify runs.
	Trials int
	// Workers is how many trials may run at once.
	Workers int
	// Seed makes the generated data reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
	// Presorted feeds already-sorted data, the degenerate case for the tree.
	Presorted bool
	// PrintLimit is the largest input that gets printed in full.
	PrintLimit int
}

// LoadConfig reads the TREESORT_* settings. Every invalid setting is
// reported, not just the first.
func LoadConfig(ctx context.Context) (Config, error) {
	errs := &errors.Collection{}

	positive := func(key string, dfl int) int {
		val, err := envutil.Int[int](ctx, key,
			envutil.Default(dfl),
			envutil.Validate(envutil.Positive[int])).Value()
		errs.Add(err)

		return val
	}

	cfg := Config{
		Size:     positive("TREESORT_SIZE", defaultSize),
		MaxValue: positive("TREESORT_MAX_VALUE", defaultMaxValue),
		Trials:   positive("TREESORT_TRIALS", defaultTrials),
		Workers:  positive("TREESORT_WORKERS", defaultWorkers),
	}

	limit, err := envutil.Int[int](ctx, "TREESORT_PRINT_LIMIT", envutil.Default(defaultPrintLimit)).Value()
	errs.Add(err)

	cfg.PrintLimit = limit

	presorted, err := envutil.Bool(ctx, "TREESORT_PRESORTED", envutil.Default(false)).Value()
	errs.Add(err)

	cfg.Presorted = presorted

	seed := envutil.Uint64(ctx, "TREESORT_SEED")
	if seed.HasValue() || seed.Error() != nil {
		cfg.Seed, err = seed.Value()
		cfg.HasSeed = err == nil
		errs.Add(err)
	}

	if errs.HasError() {
		return Config{}, fmt.Errorf("loading demo config: %w", errs.GetError())
	}

	return cfg, nil
}
