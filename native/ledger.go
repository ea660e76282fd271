package native

// ledger is the ordered sequence of live block descriptors owned by a
// registry. Insertion order is preserved (release walks it front to back for
// deterministic behavior) but carries no other meaning; the ledger is never
// indexed by address.
type ledger struct {
	blocks []Block
}

// append adds a descriptor to the tail. Descriptors that violate the ledger
// invariants are rejected so the ledger never holds a dead block.
func (l *ledger) append(b Block) error {
	if !b.live() {
		return ErrBadBlock
	}
	l.blocks = append(l.blocks, b)
	return nil
}

// clear removes every descriptor without touching the underlying memory.
// The release path has already returned the regions by the time it calls
// this.
func (l *ledger) clear() {
	l.blocks = nil
}

// count returns the number of live descriptors.
func (l *ledger) count() int {
	return len(l.blocks)
}

// totalBytes returns the sum of sizes across all live descriptors.
func (l *ledger) totalBytes() int64 {
	var total int64
	for i := range l.blocks {
		total += l.blocks[i].size
	}
	return total
}
