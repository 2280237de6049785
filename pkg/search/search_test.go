package search

import (
	"sort"
	"testing"
)

func TestBinarySearch(t *testing.T) {
	tests := []struct {
		name   string
		arr    []int
		target int
		found  bool
	}{
		{"empty", nil, 3, false},
		{"single hit", []int{5}, 5, true},
		{"single miss", []int{5}, 4, false},
		{"first", []int{-4, -1, 0, 3, 9}, -4, true},
		{"last", []int{-4, -1, 0, 3, 9}, 9, true},
		{"middle", []int{-4, -1, 0, 3, 9}, 0, true},
		{"below min", []int{-4, -1, 0, 3, 9}, -5, false},
		{"above max", []int{-4, -1, 0, 3, 9}, 10, false},
		{"gap", []int{-4, -1, 0, 3, 9}, 2, false},
		{"duplicates", []int{1, 1, 1, 2, 2, 2, 3}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BinarySearch(tt.arr, tt.target)
			if !tt.found {
				if got != NotFound {
					t.Errorf("BinarySearch(%v, %d) = %d, want NotFound", tt.arr, tt.target, got)
				}
				return
			}
			if got < 0 || got >= len(tt.arr) {
				t.Fatalf("BinarySearch(%v, %d) = %d, out of range", tt.arr, tt.target, got)
			}
			if tt.arr[got] != tt.target {
				t.Errorf("arr[%d] = %d, want %d", got, tt.arr[got], tt.target)
			}
		})
	}
}

func TestBinarySearchDuplicatesAnyOccurrence(t *testing.T) {
	arr := []int{0, 0, 0, 0, 0, 0, 0}
	got := BinarySearch(arr, 0)
	// Bisection lands on the midpoint, not the first occurrence.
	if got != 3 {
		t.Errorf("BinarySearch(all zeros, 0) = %d, want 3", got)
	}
}

func TestBinarySearchAgreesWithSort(t *testing.T) {
	arr := make([]int, 1000)
	for i := range arr {
		arr[i] = i/3 - 500
	}

	for target := -510; target <= 510; target++ {
		got := BinarySearch(arr, target)
		want := sort.SearchInts(arr, target)
		present := want < len(arr) && arr[want] == target
		if present != (got != NotFound) {
			t.Fatalf("target %d: present=%v, got %d", target, present, got)
		}
		if present && arr[got] != target {
			t.Fatalf("target %d: arr[%d] = %d", target, got, arr[got])
		}
	}
}

func BenchmarkBinarySearchHit(b *testing.B) {
	arr := make([]int, 100000)
	for i := range arr {
		arr[i] = i/3 - 50000
	}
	target := arr[len(arr)/4]

	sink := 0
	for i := 0; i < b.N; i++ {
		sink ^= BinarySearch(arr, target)
	}
	_ = sink
}

func BenchmarkBinarySearchMiss(b *testing.B) {
	arr := make([]int, 100000)
	for i := range arr {
		arr[i] = i/3 - 50000
	}
	target := arr[0] - 1

	sink := 0
	for i := 0; i < b.N; i++ {
		sink ^= BinarySearch(arr, target)
	}
	_ = sink
}
