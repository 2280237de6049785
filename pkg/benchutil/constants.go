package benchutil

// Fixed workload constants for the benchmark sweep.

// BenchmarkSeed seeds the generator that picks average-case targets.
const BenchmarkSeed = 123456789

// BenchmarkSizes are the array lengths measured for every category, in
// report order.
var BenchmarkSizes = []int{1000, 5000, 10000, 50000, 100000}

// Categories lists the scenario categories in report order.
var Categories = []Category{Best, Worst, Average}
