package native

import "unsafe"

const (
	// bytesPerMB converts the host-facing MiB sizing to bytes.
	bytesPerMB = 1 << 20

	// fillByte is written over every byte of a fresh block. A non-zero
	// pattern forces the kernel to back the pages with physical frames
	// immediately; external memory observers then see the growth without
	// waiting for a first touch.
	fillByte = 0x5A
)

// Registry issues native memory blocks, tracks them in a ledger, and
// releases each through the primitive matching its origin. The zero value
// is an empty registry ready for use.
//
// A Registry performs no internal locking; see the package documentation
// for the single-caller contract.
type Registry struct {
	ledger ledger
}

// Default is the process-wide registry. It starts empty at process init and
// lives for the process lifetime; regions still held at exit are reclaimed
// by the OS.
var Default Registry

// Allocate obtains blockCount blocks of blockSizeMB MiB each and appends
// every success to the ledger. Even-indexed blocks use an anonymous private
// page mapping, odd-indexed blocks use the general-purpose heap, so both
// release paths exercise for any count of at least two.
//
// Non-positive arguments perform no allocation. Blocks the underlying
// primitive refuses are skipped. Either way the return value is the total
// byte count across all blocks live after the call, including blocks from
// previous calls, so callers detect under-allocation by comparing the delta
// against the request.
func (r *Registry) Allocate(blockCount, blockSizeMB int) int64 {
	if blockCount <= 0 || blockSizeMB <= 0 {
		return r.ledger.totalBytes()
	}

	size := int64(blockSizeMB) * bytesPerMB
	for i := 0; i < blockCount; i++ {
		block, err := allocBlock(i, size)
		if err != nil {
			continue
		}
		fill(block.data, fillByte)
		if err := r.ledger.append(block); err != nil {
			// allocBlock only returns live descriptors; an append
			// rejection means the block must go straight back.
			releaseBlock(&block)
		}
	}
	return r.ledger.totalBytes()
}

// ReleaseAll returns every held block to the system, using the unmap
// primitive for mapped blocks and the heap free primitive for heap blocks,
// in insertion order. It empties the ledger and returns the total byte
// count that was held immediately before the release. Calling it on an
// empty registry is safe and returns 0.
func (r *Registry) ReleaseAll() int64 {
	freed := r.ledger.totalBytes()
	for i := range r.ledger.blocks {
		releaseBlock(&r.ledger.blocks[i])
	}
	r.ledger.clear()
	return freed
}

// Count returns the number of live blocks.
func (r *Registry) Count() int {
	return r.ledger.count()
}

// TotalBytes returns the sum of sizes across all live blocks.
func (r *Registry) TotalBytes() int64 {
	return r.ledger.totalBytes()
}

// releaseBlock hands one block's region back through the primitive matching
// its origin. Descriptors that violate the ledger invariants are skipped
// without invoking any primitive.
func releaseBlock(b *Block) {
	if !b.live() {
		return
	}
	switch b.origin {
	case OriginMapped:
		_ = unmapAnon(b.data)
	case OriginHeap:
		heapFree(b.addr)
	}
	b.data = nil
	b.addr = nil
}

// allocBlock obtains one block of the given size from the origin selected
// by the block's index within the bulk request.
func allocBlock(index int, size int64) (Block, error) {
	if size > int64(^uint(0)>>1) {
		return Block{}, ErrSizeRange
	}

	if index%2 == 0 {
		mem, err := mapAnon(int(size))
		if err != nil {
			return Block{}, err
		}
		return Block{
			data:   mem,
			addr:   unsafe.Pointer(&mem[0]),
			size:   size,
			origin: OriginMapped,
		}, nil
	}

	addr, mem, err := heapAlloc(int(size))
	if err != nil {
		return Block{}, err
	}
	return Block{
		data:   mem,
		addr:   addr,
		size:   size,
		origin: OriginHeap,
	}, nil
}

// fill overwrites the entire region with the given pattern.
func fill(data []byte, pattern byte) {
	for i := range data {
		data[i] = pattern
	}
}

// Allocate calls Allocate on the process-wide Default registry.
func Allocate(blockCount, blockSizeMB int) int64 {
	return Default.Allocate(blockCount, blockSizeMB)
}

// ReleaseAll calls ReleaseAll on the process-wide Default registry.
func ReleaseAll() int64 {
	return Default.ReleaseAll()
}

// Stats calls Stats on the process-wide Default registry.
func Stats() string {
	return Default.Stats()
}
