//go:build linux

package procmem

import (
	"os"

	"golang.org/x/sys/unix"
)

// Read returns the current and peak resident set size. Readings are
// best-effort; a field whose source is unavailable stays zero.
func Read() (Snapshot, error) {
	var s Snapshot
	if rss, ok := readRSS(); ok {
		s.RSSBytes = rss
	}
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
		// Linux reports ru_maxrss in KiB.
		s.MaxRSSBytes = ru.Maxrss * 1024
	}
	return s, nil
}

// readRSS prefers smaps_rollup, which the kernel aggregates across all
// mappings, and falls back to the VmRSS line of /proc/self/status on
// kernels without it.
func readRSS() (int64, bool) {
	if data, err := os.ReadFile("/proc/self/smaps_rollup"); err == nil {
		if kb, ok := parseKBField(data, "Rss"); ok {
			return kb * 1024, true
		}
	}
	if data, err := os.ReadFile("/proc/self/status"); err == nil {
		if kb, ok := parseKBField(data, "VmRSS"); ok {
			return kb * 1024, true
		}
	}
	return 0, false
}
