//go:build linux

package native

import (
	"testing"

	"github.com/memlab/memlab/internal/procmem"
	"github.com/stretchr/testify/require"
)

// TestResidency_VisibleToOS tests the host-level property the registry
// exists for: after Allocate, the OS resident set has grown by roughly the
// requested amount, because every region was fully written.
func TestResidency_VisibleToOS(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping residency test in short mode")
	}

	var r Registry
	defer r.ReleaseAll()

	before, err := procmem.Read()
	require.NoError(t, err)
	require.Positive(t, before.RSSBytes, "linux should report a current RSS")

	const blocks, sizeMB = 8, 4
	want := int64(blocks*sizeMB) * bytesPerMB
	require.Equal(t, want, r.Allocate(blocks, sizeMB))

	after, err := procmem.Read()
	require.NoError(t, err)

	delta := after.RSSBytes - before.RSSBytes
	// Allow slack for unrelated runtime activity; residency of the filled
	// regions alone accounts for the full amount.
	require.GreaterOrEqual(t, delta, want*8/10,
		"RSS should grow with native allocation (grew %d of %d)", delta, want)
}
