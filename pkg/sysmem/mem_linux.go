//go:build linux

package sysmem

import "golang.org/x/sys/unix"

func totalSystemMemory() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	// Totalram is expressed in units of info.Unit bytes.
	return uint64(info.Totalram) * uint64(info.Unit), true
}
