package bench

import "math"

// Reps returns how many searches to time for an array of length n so that
// reps*(log2(n)+1) stays near budget, clamped to [1, maxReps].
// For n <= 1 the log term is taken as 1.
func Reps(n int, budget float64, maxReps int64) int64 {
	logn := 1.0
	if n > 1 {
		logn = math.Log(float64(n)) / math.Log(2)
	}
	reps := int64(budget / (logn + 1))
	if reps < 1 {
		reps = 1
	}
	if reps > maxReps {
		reps = maxReps
	}
	return reps
}
