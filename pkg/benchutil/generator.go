// Package benchutil builds the synthetic sorted arrays and search targets
// for the binary search benchmark.
package benchutil

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/eunmann/bsearch-bench/pkg/membudget"
)

// ErrAllocFailed indicates an array could not be allocated within the
// memory budget.
var ErrAllocFailed = errors.New("array allocation failed")

// AllocError reports the array length whose allocation was refused.
type AllocError struct {
	N     int
	Bytes uint64
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("malloc failed for n=%d", e.N)
}

// Is reports whether target is ErrAllocFailed.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocFailed
}

// Category selects how a scenario picks its search target.
type Category int

const (
	// Best targets the middle element, found on the first probe.
	Best Category = iota
	// Worst targets a value below the minimum, so every probe misses.
	Worst
	// Average targets the element at a random index.
	Average
)

// String returns the category name used in the report.
func (c Category) String() string {
	switch c {
	case Best:
		return "best"
	case Worst:
		return "worst"
	case Average:
		return "average"
	default:
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
}

// elemSize is the size of one array element in bytes.
const elemSize = strconv.IntSize / 8

// Value returns element i of the sorted array of length n:
// floor(i/3) - floor(n/2). The sequence is non-decreasing, repeats every
// value three times and starts negative.
func Value(i, n int) int {
	return i/3 - n/2
}

// Fill writes the sorted sequence for len(dst) into dst.
func Fill(dst []int) {
	n := len(dst)
	for i := range dst {
		dst[i] = Value(i, n)
	}
}

// Generator allocates arrays against a memory budget and draws
// average-case targets from a single seeded stream.
type Generator struct {
	budget *membudget.Budget
	rng    *rand.Rand
}

// NewGenerator creates a Generator. A nil budget disables accounting.
func NewGenerator(seed int64, budget *membudget.Budget) *Generator {
	return &Generator{
		budget: budget,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SortedArray reserves and fills an array of length n. The caller must
// hand the array back with Release once the scenario is done.
// Returns an *AllocError if the budget refuses the reservation.
func (g *Generator) SortedArray(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("array length must be positive, got %d", n)
	}
	bytes := uint64(n) * elemSize
	if g.budget != nil && !g.budget.TryReserve(bytes) {
		return nil, &AllocError{N: n, Bytes: bytes}
	}
	arr := make([]int, n)
	Fill(arr)
	return arr, nil
}

// Release returns the array's reservation to the budget.
func (g *Generator) Release(arr []int) {
	if g.budget != nil {
		g.budget.Release(uint64(len(arr)) * elemSize)
	}
}

// Target picks the search target for a scenario. Only Average consumes
// randomness, so best and worst scenarios leave the stream untouched.
func (g *Generator) Target(arr []int, c Category) int {
	switch c {
	case Best:
		return arr[len(arr)/2]
	case Worst:
		// Strictly below the minimum of an ascending array: never present.
		return arr[0] - 1
	case Average:
		return arr[g.rng.Intn(len(arr))]
	default:
		panic("benchutil: unknown category " + c.String())
	}
}
