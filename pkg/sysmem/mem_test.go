package sysmem

import (
	"runtime"
	"testing"
)

func TestTotal(t *testing.T) {
	result := Total()

	if result.TotalBytes == 0 {
		t.Fatal("Total() returned 0 bytes")
	}

	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		if !result.Reliable {
			t.Logf("memory detection not reliable on %s", runtime.GOOS)
		}
	default:
		if result.Reliable {
			t.Errorf("Reliable = true on %s, want fallback", runtime.GOOS)
		}
		if result.TotalBytes != DefaultMemoryBytes {
			t.Errorf("TotalBytes = %d on %s, want %d", result.TotalBytes, runtime.GOOS, DefaultMemoryBytes)
		}
	}

	t.Logf("detected memory: %.2f GiB, reliable=%v",
		float64(result.TotalBytes)/(1024*1024*1024), result.Reliable)
}

func TestFallbackIsUnreliable(t *testing.T) {
	result := Total()
	if !result.Reliable && result.TotalBytes != DefaultMemoryBytes {
		t.Errorf("unreliable result carries %d bytes, want DefaultMemoryBytes", result.TotalBytes)
	}
}
