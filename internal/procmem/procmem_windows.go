//go:build windows

package procmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Read returns the current and peak working set size of the process.
func Read() (Snapshot, error) {
	var pmc windows.PROCESS_MEMORY_COUNTERS
	err := windows.GetProcessMemoryInfo(windows.CurrentProcess(), &pmc, uint32(unsafe.Sizeof(pmc)))
	if err != nil {
		return Snapshot{}, fmt.Errorf("procmem: process memory info: %w", err)
	}
	return Snapshot{
		RSSBytes:    int64(pmc.WorkingSetSize),
		MaxRSSBytes: int64(pmc.PeakWorkingSetSize),
	}, nil
}
