// Package memdiag samples Go heap statistics between benchmark scenarios so
// debug logs show whether arrays are being returned to the runtime.
package memdiag

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// Stats is the subset of runtime.MemStats reported per scenario.
type Stats struct {
	HeapAlloc  uint64
	HeapInuse  uint64
	TotalAlloc uint64
	Sys        uint64
	NumGC      uint32
}

// Read reads current memory statistics. It stops the world briefly, so it
// must never be called inside a timed region.
func Read() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.HeapAlloc,
		HeapInuse:  m.HeapInuse,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// FormatMB formats bytes as megabytes.
func FormatMB(b uint64) string {
	return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
}

// Tracker remembers the peak heap seen across samples.
type Tracker struct {
	peakHeap uint64
}

// Sample reads the current statistics and updates the peak.
func (t *Tracker) Sample() Stats {
	s := Read()
	t.Observe(s)
	return s
}

// Observe folds s into the peak.
func (t *Tracker) Observe(s Stats) {
	if s.HeapAlloc > t.peakHeap {
		t.peakHeap = s.HeapAlloc
	}
}

// PeakHeap returns the peak heap allocation seen.
func (t *Tracker) PeakHeap() uint64 {
	return t.peakHeap
}

// Fields appends s and the tracked peak to a log event.
func (t *Tracker) Fields(e *zerolog.Event, s Stats) *zerolog.Event {
	return e.
		Str("heap_alloc", FormatMB(s.HeapAlloc)).
		Str("heap_inuse", FormatMB(s.HeapInuse)).
		Str("sys_total", FormatMB(s.Sys)).
		Str("peak_heap", FormatMB(t.peakHeap)).
		Uint32("num_gc", s.NumGC)
}
