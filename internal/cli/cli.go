// Package cli implements the command-line interface for bsearch-bench.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eunmann/bsearch-bench/internal/logctx"
	"github.com/eunmann/bsearch-bench/pkg/bench"
	"github.com/eunmann/bsearch-bench/pkg/benchutil"
	"github.com/eunmann/bsearch-bench/pkg/humanfmt"
	"github.com/eunmann/bsearch-bench/pkg/logging"
	"github.com/eunmann/bsearch-bench/pkg/membudget"
	"github.com/eunmann/bsearch-bench/pkg/timing"
)

// Environment variables read at startup. None of them change the workload.
const (
	EnvMemBudget = "BSEARCH_MEM_BUDGET"
	EnvLogLevel  = "BSEARCH_LOG_LEVEL"
	EnvLogHuman  = "BSEARCH_LOG_HUMAN"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitAllocFailed = 2
)

// Run executes the benchmark sweep, writing CSV to stdout.
// Arguments are accepted and ignored; the sweep has no options.
func Run(args []string) error {
	return run(context.Background(), args, os.Stdout, os.Getenv)
}

func run(ctx context.Context, _ []string, stdout io.Writer, getenv func(string) string) error {
	level, err := logging.ParseLevel(getenv(EnvLogLevel))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}
	logging.Init(level, getenv(EnvLogHuman) == "1")

	budget, err := determineMemoryBudget(getenv(EnvMemBudget))
	if err != nil {
		return err
	}

	log := logging.WithPhase("sweep")
	cfg := bench.DefaultConfig()
	log.Info().
		Str("mem_budget", humanfmt.Bytes(budget.Total())).
		Str("mem_budget_source", string(budget.Source())).
		Int("scenarios", cfg.Scenarios()).
		Int64("seed", cfg.Seed).
		Msg("benchmark sweep starting")

	runner := bench.NewRunner(cfg, budget, timing.NewMonotonic(), stdout)
	return runner.Run(logctx.WithLogger(ctx, log))
}

// determineMemoryBudget returns the array budget: the environment value
// if set, otherwise half of system RAM.
func determineMemoryBudget(envValue string) (*membudget.Budget, error) {
	if envValue == "" {
		return membudget.NewFromSystemRAM(), nil
	}
	bytes, err := membudget.ParseHumanSize(envValue)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvMemBudget, err)
	}
	return membudget.New(membudget.Config{
		TotalBytes: bytes,
		Source:     membudget.BudgetSourceEnv,
	}), nil
}

// ExitCode writes the diagnostic for err to stderr and returns the process
// exit status. An allocation failure prints exactly "malloc failed for n=<N>".
func ExitCode(stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var allocErr *benchutil.AllocError
	if errors.As(err, &allocErr) {
		fmt.Fprintf(stderr, "malloc failed for n=%d\n", allocErr.N)
		return ExitAllocFailed
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitError
}
