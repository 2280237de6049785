// Package humanfmt renders byte counts, durations and search rates for log
// fields.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// Binary (IEC) units for bytes.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// Bytes formats a byte count using IEC binary units, e.g. "1.23 GiB".
func Bytes(b uint64) string {
	switch {
	case b >= GiB:
		return fmt.Sprintf("%.2f GiB", float64(b)/GiB)
	case b >= MiB:
		return fmt.Sprintf("%.2f MiB", float64(b)/MiB)
	case b >= KiB:
		return fmt.Sprintf("%.2f KiB", float64(b)/KiB)
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// Nanos formats a nanosecond count, e.g. "45.6ms", "789.0µs", "1.23s".
func Nanos(ns int64) string {
	d := time.Duration(ns)
	switch {
	case d < 0:
		return d.String()
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return strconv.FormatInt(ns, 10) + "ns"
	}
}

// Rate formats ops per elapsed nanoseconds as a per-second figure,
// e.g. "12.34M/s". A zero or negative elapsed time renders as "∞".
func Rate(ops int64, ns int64) string {
	if ns <= 0 {
		return "∞"
	}
	perSec := float64(ops) / time.Duration(ns).Seconds()
	return Count(int64(perSec)) + "/s"
}

// Count abbreviates large counts, e.g. "1.23M", "456.00K", "789".
func Count(n int64) string {
	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n < 0:
		return strconv.FormatInt(n, 10)
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}
