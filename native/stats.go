package native

import "fmt"

// Stats renders a snapshot of the registry as three newline-separated
// name=value fields: live block count, total bytes, and total mebibytes
// with six fractional digits.
func (r *Registry) Stats() string {
	blocks := r.ledger.count()
	bytes := r.ledger.totalBytes()
	mb := float64(bytes) / float64(bytesPerMB)
	return fmt.Sprintf("nativeBlocks=%d\nnativeBytes=%d\nnativeMb=%f", blocks, bytes, mb)
}
