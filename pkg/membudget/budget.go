// Package membudget accounts for the memory taken by benchmark arrays.
//
// Every array allocation is reserved against the budget first. A refused
// reservation is reported as an allocation failure instead of letting the
// runtime die on an out-of-memory condition it cannot recover from.
package membudget

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/eunmann/bsearch-bench/pkg/sysmem"
)

// DefaultBudgetBytes is the fallback budget when system RAM cannot be detected.
const DefaultBudgetBytes uint64 = 8 * 1024 * 1024 * 1024

// BudgetSource indicates how the memory budget was determined.
type BudgetSource string

const (
	// BudgetSourceAuto50Pct indicates the budget was set to 50% of detected RAM.
	BudgetSourceAuto50Pct BudgetSource = "auto-50pct"
	// BudgetSourceDefault indicates the budget used the fallback default.
	BudgetSourceDefault BudgetSource = "default"
	// BudgetSourceEnv indicates the budget was set via environment variable.
	BudgetSourceEnv BudgetSource = "env"
)

// Budget tracks reserved bytes against a fixed total.
//
// Budget is safe for concurrent use, although the benchmark sweep only
// touches it from one goroutine.
type Budget struct {
	total  uint64
	inUse  atomic.Uint64
	source BudgetSource
}

// Config holds configuration for creating a Budget.
type Config struct {
	TotalBytes uint64
	Source     BudgetSource
}

// New creates a Budget with the given configuration.
func New(cfg Config) *Budget {
	return &Budget{
		total:  cfg.TotalBytes,
		source: cfg.Source,
	}
}

// NewFromSystemRAM creates a Budget set to 50% of system RAM.
// If RAM cannot be detected, uses DefaultBudgetBytes.
func NewFromSystemRAM() *Budget {
	result := sysmem.Total()
	if !result.Reliable {
		return New(Config{TotalBytes: DefaultBudgetBytes, Source: BudgetSourceDefault})
	}
	return New(Config{TotalBytes: result.TotalBytes / 2, Source: BudgetSourceAuto50Pct})
}

// Total returns the total budget in bytes.
func (b *Budget) Total() uint64 { return b.total }

// InUse returns the currently reserved bytes.
func (b *Budget) InUse() uint64 { return b.inUse.Load() }

// Source returns how the budget was determined.
func (b *Budget) Source() BudgetSource { return b.source }

// Available returns total minus reserved bytes.
func (b *Budget) Available() uint64 {
	inUse := b.inUse.Load()
	if inUse >= b.total {
		return 0
	}
	return b.total - inUse
}

// TryReserve attempts to reserve n bytes without blocking.
// Returns false if the reservation would exceed the budget.
func (b *Budget) TryReserve(n uint64) bool {
	for {
		current := b.inUse.Load()
		next := current + n
		if next > b.total || next < current {
			return false
		}
		if b.inUse.CompareAndSwap(current, next) {
			return true
		}
	}
}

// Release returns n bytes to the budget. Releasing more than is reserved
// clamps the reservation to zero.
func (b *Budget) Release(n uint64) {
	for {
		current := b.inUse.Load()
		next := uint64(0)
		if n < current {
			next = current - n
		}
		if b.inUse.CompareAndSwap(current, next) {
			return
		}
	}
}

// ParseHumanSize parses a human-readable size string (e.g., "4GiB", "512MB").
// Supported suffixes: B, KB, KiB, K, MB, MiB, M, GB, GiB, G, TB, TiB, T.
func ParseHumanSize(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty size string")
	}

	numEnd := len(s)
	for i, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			numEnd = i
			break
		}
	}

	numStr, suffix := s[:numEnd], s[numEnd:]
	var num float64
	if _, err := fmt.Sscanf(numStr, "%f", &num); err != nil {
		return 0, fmt.Errorf("invalid number: %q", numStr)
	}

	multiplier, ok := sizeSuffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("unknown size suffix: %s", suffix)
	}
	return uint64(num * multiplier), nil
}

var sizeSuffixes = map[string]float64{
	"":    1,
	"B":   1,
	"KB":  1e3,
	"K":   1 << 10,
	"KiB": 1 << 10,
	"MB":  1e6,
	"M":   1 << 20,
	"MiB": 1 << 20,
	"GB":  1e9,
	"G":   1 << 30,
	"GiB": 1 << 30,
	"TB":  1e12,
	"T":   1 << 40,
	"TiB": 1 << 40,
}
