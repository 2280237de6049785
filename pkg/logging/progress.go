package logging

import (
	"time"

	"github.com/eunmann/bsearch-bench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// ProgressTracker counts finished scenarios of a sweep and estimates the
// time remaining. It is not safe for concurrent use; the sweep is
// sequential.
type ProgressTracker struct {
	total     int
	completed int
	elapsed   time.Duration
	log       zerolog.Logger
	phase     string
}

// NewProgressTracker creates a tracker for total items.
func NewProgressTracker(phase string, total int, log zerolog.Logger) *ProgressTracker {
	return &ProgressTracker{
		total: total,
		log:   log,
		phase: phase,
	}
}

// RecordCompletion records that an item finished after d.
func (pt *ProgressTracker) RecordCompletion(d time.Duration) {
	pt.completed++
	pt.elapsed += d
}

// Completed returns the number of finished items.
func (pt *ProgressTracker) Completed() int { return pt.completed }

// Total returns the number of items in the sweep.
func (pt *ProgressTracker) Total() int { return pt.total }

// Remaining returns how many items have not finished.
func (pt *ProgressTracker) Remaining() int {
	if pt.completed >= pt.total {
		return 0
	}
	return pt.total - pt.completed
}

// ProgressPct returns the progress percentage (0-100).
func (pt *ProgressTracker) ProgressPct() float64 {
	if pt.total == 0 {
		return 100.0
	}
	return float64(pt.completed) * 100.0 / float64(pt.total)
}

// Elapsed returns the summed duration of finished items.
func (pt *ProgressTracker) Elapsed() time.Duration { return pt.elapsed }

// ETA extrapolates the mean item duration over the remaining items.
func (pt *ProgressTracker) ETA() time.Duration {
	if pt.completed == 0 {
		return 0
	}
	mean := pt.elapsed / time.Duration(pt.completed)
	return mean * time.Duration(pt.Remaining())
}

// Log emits a progress event at info level.
func (pt *ProgressTracker) Log(msg string) {
	e := pt.log.Info().
		Str("event", "progress").
		Str("phase", pt.phase).
		Int("done", pt.completed).
		Int("total", pt.total).
		Float64("progress_pct", pt.ProgressPct()).
		Int64("eta_ms", pt.ETA().Milliseconds())
	if IsPrettyMode() {
		e = e.Str("eta_h", humanfmt.Nanos(int64(pt.ETA())))
	}
	e.Msg(msg)
}
