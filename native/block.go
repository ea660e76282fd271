package native

import "unsafe"

// Origin identifies the source a block's memory came from. The origin is
// fixed at allocation time and permanently determines which primitive must
// release the block; deriving it later from address properties is not
// portable.
type Origin uint8

const (
	// OriginMapped marks blocks backed by an anonymous private page mapping.
	OriginMapped Origin = iota

	// OriginHeap marks blocks obtained from the general-purpose heap.
	OriginHeap
)

// String returns the origin tag as used in diagnostics.
func (o Origin) String() string {
	switch o {
	case OriginMapped:
		return "mapped"
	case OriginHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Block describes one live allocation. Blocks are created only by
// Registry.Allocate, never mutated, and destroyed only by
// Registry.ReleaseAll.
//
// The data slice is the writable view over the whole region. For mapped
// blocks it is the exact slice returned by the mapping primitive, which the
// unmap primitive requires back. addr is the start of the region; for heap
// blocks it is the pointer that must be handed to the heap free primitive.
type Block struct {
	data   []byte
	addr   unsafe.Pointer
	size   int64
	origin Origin
}

// Size returns the block's byte count.
func (b Block) Size() int64 { return b.size }

// Origin returns the source the block's memory came from.
func (b Block) Origin() Origin { return b.origin }

// live reports whether the descriptor satisfies the ledger invariants:
// non-nil address and strictly positive size.
func (b Block) live() bool {
	return b.addr != nil && b.size > 0
}
