package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/eunmann/bsearch-bench/internal/logctx"
	"github.com/eunmann/bsearch-bench/pkg/benchutil"
	"github.com/eunmann/bsearch-bench/pkg/humanfmt"
	"github.com/eunmann/bsearch-bench/pkg/logging"
	"github.com/eunmann/bsearch-bench/pkg/membudget"
	"github.com/eunmann/bsearch-bench/pkg/memdiag"
	"github.com/eunmann/bsearch-bench/pkg/report"
	"github.com/eunmann/bsearch-bench/pkg/search"
	"github.com/eunmann/bsearch-bench/pkg/timing"
)

// Scenario identifies one measured (category, size) pair.
type Scenario struct {
	Category benchutil.Category
	N        int
	CaseID   int
}

// Measurement is the outcome of one scenario.
type Measurement struct {
	Scenario Scenario
	Target   int
	Reps     int64
	Elapsed  int64
	// Checksum is the XOR of every index returned inside the timed loop.
	Checksum int
}

// Row converts the measurement to its report line.
func (m Measurement) Row() report.Row {
	return report.Row{
		CaseType: m.Scenario.Category.String(),
		CaseID:   m.Scenario.CaseID,
		N:        m.Scenario.N,
		Reps:     m.Reps,
		TimeNs:   m.Elapsed,
	}
}

// Runner executes a sweep. It owns the target stream, so one Runner
// corresponds to one reproducible run.
type Runner struct {
	cfg   Config
	gen   *benchutil.Generator
	clock timing.Clock
	out   *report.Writer
	mem   memdiag.Tracker

	checksum int
}

// NewRunner creates a Runner writing CSV to w. Arrays are reserved against
// budget; a nil budget disables accounting.
func NewRunner(cfg Config, budget *membudget.Budget, clock timing.Clock, w io.Writer) *Runner {
	return &Runner{
		cfg:   cfg,
		gen:   benchutil.NewGenerator(cfg.Seed, budget),
		clock: clock,
		out:   report.NewWriter(w),
	}
}

// Run writes the header and then one row per scenario, categories outer
// and sizes inner, with case ids counting from 1 across the whole sweep.
//
// An allocation failure stops the sweep at once; the returned error wraps
// the *benchutil.AllocError. Rows written before the failure are already
// flushed.
func (r *Runner) Run(ctx context.Context) error {
	log := logctx.FromContext(ctx)

	if err := r.out.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	progress := logging.NewProgressTracker("sweep", r.cfg.Scenarios(), log)
	caseID := 1
	for _, c := range r.cfg.Categories {
		for _, n := range r.cfg.Sizes {
			sc := Scenario{Category: c, N: n, CaseID: caseID}
			m, err := r.runScenario(logctx.WithScenario(ctx, sc.CaseID, c.String(), n), sc)
			if err != nil {
				return err
			}
			if err := r.out.WriteRow(m.Row()); err != nil {
				return err
			}
			r.checksum ^= m.Checksum
			progress.RecordCompletion(time.Duration(m.Elapsed))
			progress.Log("scenario finished")
			caseID++
		}
	}

	if e := log.Info(); e.Enabled() {
		r.mem.Sample()
		e.Int("rows", r.out.Rows()).
			Str("timed_total", humanfmt.Nanos(int64(progress.Elapsed()))).
			Str("peak_heap", memdiag.FormatMB(r.mem.PeakHeap())).
			Int("checksum", r.checksum).
			Msg("sweep complete")
	}
	return nil
}

// Checksum returns the XOR of the search results of every scenario run so
// far. It is the sink that keeps the timed searches observable.
func (r *Runner) Checksum() int {
	return r.checksum
}

func (r *Runner) runScenario(ctx context.Context, sc Scenario) (Measurement, error) {
	log := logctx.FromContext(ctx)

	arr, err := r.gen.SortedArray(sc.N)
	if err != nil {
		log.Debug().Err(err).Msg("array allocation refused")
		return Measurement{}, fmt.Errorf("case %d: %w", sc.CaseID, err)
	}
	defer r.gen.Release(arr)

	target := r.gen.Target(arr, sc.Category)
	reps := Reps(sc.N, r.cfg.ProbeBudget, r.cfg.MaxReps)

	res := timing.Loop(r.clock, reps, func() int {
		return search.BinarySearch(arr, target)
	})

	m := Measurement{
		Scenario: sc,
		Target:   target,
		Reps:     reps,
		Elapsed:  res.Elapsed,
		Checksum: res.Checksum,
	}

	if e := log.Debug(); e.Enabled() {
		stats := r.mem.Sample()
		e = e.
			Int64("reps", reps).
			Int("target", target).
			Int("index", search.BinarySearch(arr, target)).
			Int64("time_ns", res.Elapsed).
			Str("elapsed_h", humanfmt.Nanos(res.Elapsed)).
			Str("rate_h", humanfmt.Rate(reps, res.Elapsed)).
			Int("checksum", res.Checksum)
		r.mem.Fields(e, stats).Msg("scenario timed")
	}

	return m, nil
}
