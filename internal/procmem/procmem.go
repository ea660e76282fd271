// Package procmem reports the operating system's view of the current
// process's memory, so hosts can watch native allocations land in the
// resident set instead of trusting the allocator's own accounting.
package procmem

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Snapshot holds process-level memory readings in bytes. Fields the
// platform cannot provide are left zero.
type Snapshot struct {
	// RSSBytes is the current resident set size.
	RSSBytes int64

	// MaxRSSBytes is the peak resident set size over the process lifetime.
	MaxRSSBytes int64
}

// ErrUnsupported indicates the platform offers no process-memory readings.
var ErrUnsupported = errors.New("procmem: not supported on this platform")

var printer = message.NewPrinter(language.English)

// FormatBytes renders a byte count with grouped digits for human-readable
// output, e.g. 4194304 -> "4,194,304 B".
func FormatBytes(n int64) string {
	return printer.Sprintf("%d B", n)
}

// parseKBField extracts the numeric value of a "Field:   N kB" line from
// proc-style output. Returns false when the field is absent or malformed.
func parseKBField(data []byte, field string) (int64, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		rest, ok := strings.CutPrefix(line, field+":")
		if !ok {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			return 0, false
		}
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
