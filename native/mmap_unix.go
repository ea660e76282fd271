//go:build unix

package native

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapAnon obtains an anonymous, private, read+write mapping of exactly size
// bytes. The returned slice is the handle the unmap primitive requires back.
func mapAnon(size int) ([]byte, error) {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("native: failed to map anonymous region: %w", err)
	}
	return mem, nil
}

// unmapAnon releases a mapping obtained from mapAnon. It must be passed the
// same slice (not a derived slice) that mapAnon returned.
func unmapAnon(mem []byte) error {
	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("native: failed to unmap region: %w", err)
	}
	return nil
}
