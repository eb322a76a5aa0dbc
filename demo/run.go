package demo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/treesort/compare"
	"github.com/amp-labs/treesort/logger"
	"github.com/amp-labs/treesort/tree"
	"github.com/amp-labs/treesort/treesort"
	"github.com/amp-labs/treesort/verify"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Trial is the outcome of one generate-sort-verify run.
type Trial struct {
	Index   int
	Input   []int
	Output  []int
	Elapsed time.Duration
	Stats   tree.Stats
	// Err is set when the sort failed or its result did not verify.
	Err error
}

// Run executes cfg.Trials trials on a pool of cfg.Workers goroutines. Each
// trial sorts its own data with its own tree. Trial failures are recorded in
// the report; Run itself only fails when ctx is canceled.
func Run(ctx context.Context, cfg Config, metrics *Metrics) (*Report, error) {
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = rand.Uint64() //nolint:gosec
	}

	runID := uuid.NewString()
	ctx = logger.With(ctx, "run_id", runID)

	logger.Get(ctx).Info("starting sort trials",
		"size", cfg.Size, "trials", cfg.Trials, "workers", cfg.Workers,
		"presorted", cfg.Presorted, "seed", seed)

	pool := pond.NewResultPool[Trial](cfg.Workers)
	defer pool.StopAndWait()

	var (
		done     = atomic.NewInt64(0)
		failures = atomic.NewInt64(0)
	)

	group := pool.NewGroup()
	start := time.Now()

	for i := range cfg.Trials {
		group.SubmitErr(func() (Trial, error) {
			if err := ctx.Err(); err != nil {
				return Trial{Index: i}, err
			}

			trial := runTrial(cfg, i, seed)
			metrics.observe(trial)

			if trial.Err != nil {
				failures.Inc()
				logger.Get(ctx).Error("trial failed", "trial", i, "error", trial.Err)
			}

			logger.Get(ctx).Debug("trial finished",
				"trial", i, "completed", done.Inc(), "of", cfg.Trials,
				"elapsed", trial.Elapsed, "depth", trial.Stats.Depth)

			return trial, nil
		})
	}

	trials, err := group.Wait()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    runID,
		Seed:     seed,
		Trials:   trials,
		Elapsed:  time.Since(start),
		Failures: int(failures.Load()),
	}

	logger.Get(ctx).Info("sort trials complete", report.LogAttrs()...)

	return report, nil
}

func runTrial(cfg Config, index int, seed uint64) Trial {
	rng := rand.New(rand.NewPCG(seed, uint64(index))) //nolint:gosec
	input := Generate(rng, cfg.Size, cfg.MaxValue, cfg.Presorted)
	natural := compare.Natural[int]()

	start := time.Now()
	output, stats, err := treesort.ProfileFunc(input, natural)
	elapsed := time.Since(start)

	if err == nil {
		err = verify.Check(input, output, natural)
	}

	return Trial{
		Index:   index,
		Input:   input,
		Output:  output,
		Elapsed: elapsed,
		Stats:   stats,
		Err:     logger.AnnotateError(err, "trial", index, "size", len(input)),
	}
}
