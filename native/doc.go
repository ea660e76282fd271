// Package native implements a registry of memory blocks allocated outside
// the Go-managed heap, so a host process can make the operating system's
// view of its memory grow (and shrink) independently of the runtime heap.
//
// # Overview
//
// Blocks come from two origins: anonymous private page mappings and the
// general-purpose C heap. Every live block is tracked in an ordered ledger
// together with its origin, and released through the primitive that matches
// that origin. Freshly allocated regions are fully overwritten with a fixed
// byte pattern so the kernel backs them with physical frames immediately;
// without the write, zero-fill-on-demand would hide mapped blocks from
// external memory observers until first touch.
//
// # Operations
//
// The registry exposes three operations:
//
//   - Allocate(blockCount, blockSizeMB): obtain blockCount blocks of
//     blockSizeMB MiB each, alternating origins per block
//   - ReleaseAll(): return every held block to the system
//   - Stats(): render a three-line human-readable snapshot
//
// Allocate and ReleaseAll both return the relevant total byte count, so a
// host can detect under-allocation by comparing the delta against the
// request. Individual allocation failures are skipped, never surfaced.
//
// # Thread Safety
//
// A Registry is not thread-safe. All operations assume a single caller at a
// time; hosts that share a registry across goroutines must serialize access
// externally with one exclusive section around all three operations.
package native
