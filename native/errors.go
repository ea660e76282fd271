package native

import "errors"

var (
	// ErrBadBlock indicates a block descriptor with a nil address or
	// non-positive size was offered to the ledger.
	ErrBadBlock = errors.New("native: bad block descriptor")

	// ErrHeapFailed indicates the general-purpose heap returned no memory.
	ErrHeapFailed = errors.New("native: heap allocation failed")

	// ErrSizeRange indicates a block size that does not fit the platform's
	// addressable range.
	ErrSizeRange = errors.New("native: block size out of range")
)
