// Package timing provides the nanosecond clock and the timed repetition loop
// used to measure search latency.
package timing

import "time"

// Clock returns a non-decreasing timestamp in nanoseconds.
// Resolution is platform dependent; callers must not assume true
// nanosecond precision.
type Clock interface {
	Now() int64
}

// Monotonic reads Go's monotonic clock relative to the moment it was created.
type Monotonic struct {
	epoch time.Time
}

// NewMonotonic returns a Monotonic clock anchored at the current instant.
func NewMonotonic() Monotonic {
	return Monotonic{epoch: time.Now()}
}

// Now returns nanoseconds elapsed since the clock was created.
// The zero Monotonic has no monotonic reading; use NewMonotonic.
func (m Monotonic) Now() int64 {
	return int64(time.Since(m.epoch))
}

// Result is the outcome of a timed loop.
type Result struct {
	// Elapsed is the clock difference across the whole loop.
	Elapsed int64

	// Checksum is the XOR of every value returned by the timed function.
	// It keeps the compiler from discarding the calls and must be consumed
	// by the caller.
	Checksum int
}

// Loop calls fn reps times between two clock readings.
func Loop(clock Clock, reps int64, fn func() int) Result {
	sink := 0
	t0 := clock.Now()
	for r := int64(0); r < reps; r++ {
		sink ^= fn()
	}
	t1 := clock.Now()
	return Result{Elapsed: t1 - t0, Checksum: sink}
}
