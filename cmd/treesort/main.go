// Command treesort generates random integers, sorts them with the binary
// search tree sort, checks the result and reports how it went.
//
// Configuration comes from TREESORT_* environment variables, optionally
// seeded from the file named by TREESORT_CONFIG.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/treesort/demo"
	"github.com/amp-labs/treesort/envutil"
	"github.com/amp-labs/treesort/logger"
	"github.com/amp-labs/treesort/shutdown"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	ctx, err := envutil.LoadFileInto(ctx, "TREESORT_CONFIG")
	if err != nil {
		logger.Fatal("unable to load config file", "error", err)
	}

	if _, err := logger.ConfigureLogging(ctx, "treesort"); err != nil {
		logger.Fatal("unable to configure logging", "error", err)
	}

	cfg, err := demo.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	report, err := demo.Run(ctx, cfg, demo.NewMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal("sort run aborted", "error", err)
	}

	if err := report.Print(os.Stdout, cfg.PrintLimit); err != nil {
		logger.Fatal("unable to print report", "error", err)
	}

	if report.Failures > 0 {
		os.Exit(1)
	}
}
