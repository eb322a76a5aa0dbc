package demo

import (
	"fmt"
	"io"
	"time"
)

// Report summarizes a demonstration run.
type Report struct {
	RunID    string
	Seed     uint64
	Trials   []Trial
	Elapsed  time.Duration
	Failures int
}

// Sorted returns the total number of elements sorted by successful trials.
func (r *Report) Sorted() int {
	total := 0

	for _, t := range r.Trials {
		if t.Err == nil {
			total += len(t.Output)
		}
	}

	return total
}

// MaxDepth returns the deepest tree built by any trial.
func (r *Report) MaxDepth() int {
	depth := 0

	for _, t := range r.Trials {
		depth = max(depth, t.Stats.Depth)
	}

	return depth
}

// SortTime returns the time spent sorting, summed over trials.
func (r *Report) SortTime() time.Duration {
	var total time.Duration

	for _, t := range r.Trials {
		total += t.Elapsed
	}

	return total
}

// LogAttrs returns the summary as slog key-value pairs.
func (r *Report) LogAttrs() []any {
	return []any{
		"trials", len(r.Trials),
		"failures", r.Failures,
		"sorted", r.Sorted(),
		"max_depth", r.MaxDepth(),
		"sort_time", r.SortTime(),
		"elapsed", r.Elapsed,
	}
}

// Print writes a human readable account of the run to w. Inputs no longer
// than limit are printed in full, before and after sorting.
func (r *Report) Print(w io.Writer, limit int) error {
	for _, t := range r.Trials {
		if _, err := fmt.Fprintf(w, "Trial %d: %d values sorted in %s (tree depth %d)\n",
			t.Index, len(t.Input), t.Elapsed, t.Stats.Depth); err != nil {
			return err
		}

		if len(t.Input) <= limit {
			if _, err := fmt.Fprintf(w, "  Unsorted: %v\n  Sorted:   %v\n", t.Input, t.Output); err != nil {
				return err
			}
		}

		if t.Err != nil {
			if _, err := fmt.Fprintf(w, "  FAILED: %v\n", t.Err); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d trial(s), %d failure(s), %d values sorted in %s\n",
		len(r.Trials), r.Failures, r.Sorted(), r.SortTime())

	return err
}
