//go:build !unix && !windows

package native

// mapAnon falls back to a runtime-heap block on platforms without an
// anonymous mapping primitive. The registry's ledger keeps the block
// reachable until release; the demo still shows process growth, just not
// outside the managed heap.
func mapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// unmapAnon drops the fallback block; the runtime reclaims it once the
// ledger lets go of the slice.
func unmapAnon(mem []byte) error {
	return nil
}
