//go:build !unix && !windows

package procmem

// Read reports that the platform offers no process-memory readings.
func Read() (Snapshot, error) {
	return Snapshot{}, ErrUnsupported
}
