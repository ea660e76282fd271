//go:build cgo

package native

// #include <stdlib.h>
import "C"

import "unsafe"

// heapAlloc obtains size bytes from the C heap. The memory is invisible to
// the Go runtime, so host-level observers see it as native growth rather
// than managed-heap growth. Returns the pointer that heapFree requires plus
// a writable view over the region.
func heapAlloc(size int) (unsafe.Pointer, []byte, error) {
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil, nil, ErrHeapFailed
	}
	return ptr, unsafe.Slice((*byte)(ptr), size), nil
}

// heapFree returns a heapAlloc region to the C heap.
func heapFree(ptr unsafe.Pointer) {
	C.free(ptr)
}
