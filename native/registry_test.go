package native

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocate_Conservation tests that a bulk allocation from empty reports
// exactly the requested blocks and bytes.
func TestAllocate_Conservation(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	got := r.Allocate(4, 1)
	require.Equal(t, int64(4*bytesPerMB), got, "Allocate should return the live total")

	stats := r.Stats()
	assert.Contains(t, stats, "nativeBlocks=4")
	assert.Contains(t, stats, "nativeBytes=4194304")
}

// TestAllocate_Additive tests that totals accumulate across calls.
func TestAllocate_Additive(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	first := r.Allocate(2, 2)
	require.Equal(t, int64(2*2*bytesPerMB), first)

	second := r.Allocate(3, 1)
	require.Equal(t, int64(2*2*bytesPerMB+3*1*bytesPerMB), second,
		"second call should report the combined live total")
	assert.Equal(t, 5, r.Count())
}

// TestAllocate_NoOpArguments tests that non-positive arguments leave the
// registry unchanged and return the current total.
func TestAllocate_NoOpArguments(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	prior := r.Allocate(2, 1)
	require.Equal(t, int64(2*bytesPerMB), prior)

	cases := []struct {
		name   string
		blocks int
		sizeMB int
	}{
		{"zero blocks", 0, 5},
		{"zero size", 3, 0},
		{"negative blocks", -1, 4},
		{"negative size", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Allocate(tc.blocks, tc.sizeMB)
			assert.Equal(t, prior, got, "no-op allocate should return the unchanged total")
			assert.Equal(t, 2, r.Count(), "no-op allocate should not touch the ledger")
		})
	}
}

// TestAllocate_NoOpOnEmpty tests scenario 4: a no-op allocate against an
// empty registry returns 0.
func TestAllocate_NoOpOnEmpty(t *testing.T) {
	var r Registry

	assert.Equal(t, int64(0), r.Allocate(0, 5))
	assert.Contains(t, r.Stats(), "nativeBlocks=0")
}

// TestReleaseAll_Identity tests that release returns exactly what stats
// reported immediately before it.
func TestReleaseAll_Identity(t *testing.T) {
	var r Registry

	r.Allocate(2, 2)
	r.Allocate(3, 1)

	held := r.TotalBytes()
	require.Equal(t, int64(7*bytesPerMB), held)

	freed := r.ReleaseAll()
	assert.Equal(t, held, freed, "ReleaseAll should return the prior total")
	assert.Equal(t, 0, r.Count(), "ledger should be empty after release")
	assert.Equal(t, int64(0), r.TotalBytes())
}

// TestReleaseAll_Idempotent tests that a second release returns 0 and the
// ledger stays empty.
func TestReleaseAll_Idempotent(t *testing.T) {
	var r Registry

	r.Allocate(1, 1)
	require.Equal(t, int64(bytesPerMB), r.ReleaseAll())

	assert.Equal(t, int64(0), r.ReleaseAll(), "second release should return 0")
	assert.Equal(t, 0, r.Count())
}

// TestReleaseAll_EmptyRegistry tests that releasing a fresh registry is safe.
func TestReleaseAll_EmptyRegistry(t *testing.T) {
	var r Registry

	assert.Equal(t, int64(0), r.ReleaseAll())
	assert.Contains(t, r.Stats(), "nativeBlocks=0")
}

// TestStats_Format tests the exact three-line report layout.
func TestStats_Format(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	assert.Equal(t, "nativeBlocks=0\nnativeBytes=0\nnativeMb=0.000000", r.Stats())

	r.Allocate(4, 1)
	assert.Equal(t, "nativeBlocks=4\nnativeBytes=4194304\nnativeMb=4.000000", r.Stats())

	r.Allocate(1, 1)
	assert.Equal(t, fmt.Sprintf("nativeBlocks=5\nnativeBytes=%d\nnativeMb=5.000000", 5*bytesPerMB), r.Stats())
}

// TestOriginAlternation tests the white-box origin mix: even indices map
// pages, odd indices use the heap.
func TestOriginAlternation(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	r.Allocate(4, 1)
	require.Equal(t, 4, r.Count())

	var mapped, heap int
	for i, b := range r.ledger.blocks {
		want := OriginMapped
		if i%2 == 1 {
			want = OriginHeap
		}
		assert.Equal(t, want, b.Origin(), "block %d origin", i)
		switch b.Origin() {
		case OriginMapped:
			mapped++
		case OriginHeap:
			heap++
		}
	}
	assert.Equal(t, 2, mapped, "even N should split origins evenly")
	assert.Equal(t, 2, heap)
}

// TestAllocate_FillsRegions tests that every byte of every block carries the
// residency pattern after allocation.
func TestAllocate_FillsRegions(t *testing.T) {
	var r Registry
	defer r.ReleaseAll()

	r.Allocate(2, 1)
	require.Equal(t, 2, r.Count())

	for i := range r.ledger.blocks {
		b := &r.ledger.blocks[i]
		require.Equal(t, b.Size(), int64(len(b.data)), "block %d view should cover the region", i)
		for off, v := range b.data {
			if v != fillByte {
				t.Fatalf("block %d byte %d = %#x, want %#x", i, off, v, fillByte)
			}
		}
	}
}

// TestDefaultRegistry tests the package-level operations against the
// process-wide registry.
func TestDefaultRegistry(t *testing.T) {
	defer ReleaseAll()

	got := Allocate(1, 1)
	require.Equal(t, int64(bytesPerMB), got)
	assert.Contains(t, Stats(), "nativeBlocks=1")

	assert.Equal(t, int64(bytesPerMB), ReleaseAll())
	assert.Contains(t, Stats(), "nativeBytes=0")
}
