// Package search implements the iterative binary search under benchmark.
package search

// NotFound is returned by BinarySearch when no element equals the target.
const NotFound = -1

// BinarySearch returns the index of an element of arr equal to target, or
// NotFound. arr must be sorted ascending.
//
// When target occurs more than once, the index returned is whichever equal
// element bisection probes first. It is not necessarily the first or last
// occurrence.
func BinarySearch(arr []int, target int) int {
	left, right := 0, len(arr)-1
	for left <= right {
		mid := left + (right-left)/2 // avoids overflow of left+right
		v := arr[mid]
		if v == target {
			return mid
		}
		if v < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return NotFound
}
