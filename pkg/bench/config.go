// Package bench runs the binary search latency sweep: three target
// categories over five array sizes, one CSV row per scenario.
package bench

import (
	"github.com/eunmann/bsearch-bench/pkg/benchutil"
)

// Config holds the workload constants of a sweep.
type Config struct {
	// Categories are swept in order, as the outer loop.
	Categories []benchutil.Category
	// Sizes are swept in order for every category.
	Sizes []int
	// Seed seeds the average-case target stream.
	Seed int64
	// ProbeBudget is the approximate number of probes per scenario that
	// the repetition count is scaled to.
	ProbeBudget float64
	// MaxReps caps the repetition count.
	MaxReps int64
}

// DefaultConfig returns the fixed sweep.
func DefaultConfig() Config {
	return Config{
		Categories:  benchutil.Categories,
		Sizes:       benchutil.BenchmarkSizes,
		Seed:        benchutil.BenchmarkSeed,
		ProbeBudget: 10_000_000,
		MaxReps:     20_000_000,
	}
}

// Scenarios returns the number of rows the sweep produces.
func (c Config) Scenarios() int {
	return len(c.Categories) * len(c.Sizes)
}
