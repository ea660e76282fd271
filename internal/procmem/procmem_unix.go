//go:build unix && !linux

package procmem

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Read returns the peak resident set size from rusage. Non-linux unix
// systems expose no cheap current-RSS reading, so RSSBytes stays zero.
func Read() (Snapshot, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Snapshot{}, fmt.Errorf("procmem: getrusage: %w", err)
	}
	max := int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		// The BSDs report ru_maxrss in KiB; darwin reports bytes.
		max *= 1024
	}
	return Snapshot{MaxRSSBytes: max}, nil
}
