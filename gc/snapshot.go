// ABOUTME: Exports the live managed heap as an analyzable object graph
// ABOUTME: Recovers forward edges and roots from the inbound lists

package gc

import (
	"fmt"

	"github.com/prateek/btgc/graph"
)

// Snapshot captures the live heap as a graph: one object per block,
// identified by the block's allocation serial, with forward pointer
// edges recovered from the inbound lists. Blocks held by at least one
// root reference become graph roots. The snapshot is a copy; analyzing
// or serializing it does not touch the collector.
func (c *Collector) Snapshot() *graph.Graph {
	g := graph.New()
	for i := 0; i < c.blocks.Len(); i++ {
		b := c.blocks.At(i)
		g.Add(&graph.Object{
			ID:   graph.ObjID(b.serial),
			Type: fmt.Sprintf("%T", b.payload),
			Size: uint64(b.size),
			Ptrs: []graph.ObjID{},
		})
	}
	var roots []graph.ObjID
	for i := 0; i < c.blocks.Len(); i++ {
		b := c.blocks.At(i)
		rooted := false
		for l := b.inlinks.next; l != b.sentinel(); l = l.next {
			if l.from == nil {
				rooted = true
				continue
			}
			src := g.Object(graph.ObjID(l.from.serial))
			src.Ptrs = append(src.Ptrs, graph.ObjID(b.serial))
		}
		if rooted {
			roots = append(roots, graph.ObjID(b.serial))
		}
	}
	g.SetRoots(roots)
	return g
}
