//go:build !cgo

package native

import "unsafe"

// heapAlloc falls back to a runtime-heap block when cgo is disabled. The
// ledger's reference keeps the block alive until release, preserving the
// registry's observable behavior even though the bytes live on the managed
// heap.
func heapAlloc(size int) (unsafe.Pointer, []byte, error) {
	mem := make([]byte, size)
	return unsafe.Pointer(&mem[0]), mem, nil
}

// heapFree is a no-op in the fallback; dropping the ledger's slice is what
// releases the block.
func heapFree(ptr unsafe.Pointer) {}
