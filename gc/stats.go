// ABOUTME: Collection statistics for a collector
// ABOUTME: Tracks live counts, heap size, and reclamation totals

package gc

import (
	"fmt"

	bytesize "github.com/inhies/go-bytesize"
)

// Stats is a point-in-time account of a collector.
type Stats struct {
	Blocks      int    // live blocks in the table
	Links       int    // live links, root references included
	HeapBytes   int64  // bytes currently held as block storage
	Collections uint64 // garbage components detected so far
	Reclaimed   uint64 // blocks finalized by those collections
}

// Stats returns the collector's current statistics.
func (c *Collector) Stats() Stats {
	return Stats{
		Blocks:      c.blocks.Len(),
		Links:       c.totalLinks,
		HeapBytes:   c.heapBytes,
		Collections: c.collections,
		Reclaimed:   c.reclaimed,
	}
}

// String renders the statistics with a human-readable heap size.
func (s Stats) String() string {
	return fmt.Sprintf("blocks=%d links=%d heap=%s collections=%d reclaimed=%d",
		s.Blocks, s.Links, bytesize.New(float64(s.HeapBytes)), s.Collections, s.Reclaimed)
}
