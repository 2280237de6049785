// Package sysmem detects total physical memory so the array budget can be
// sized relative to the host.
package sysmem

// DefaultMemoryBytes is reported when the platform query fails or the
// platform has no query at all.
const DefaultMemoryBytes uint64 = 4 * 1024 * 1024 * 1024

// Result holds the detected memory size.
type Result struct {
	TotalBytes uint64

	// Reliable is false when TotalBytes is DefaultMemoryBytes rather than a
	// value read from the operating system.
	Reliable bool
}

// Total returns the total physical memory of the host.
func Total() Result {
	n, ok := totalSystemMemory()
	if !ok || n == 0 {
		return Result{TotalBytes: DefaultMemoryBytes}
	}
	return Result{TotalBytes: n, Reliable: true}
}
