// ABOUTME: The incremental back-tracing collector and its state machine
// ABOUTME: Owns the block table, search state, pacing, and shutdown

// Package gc implements a back-tracing incremental garbage collector.
//
// Instead of tracing forward from an enumerated root set, the
// collector picks a random candidate block and walks its inbound
// edges backwards. If the walk exhausts the candidate's back-reachable
// component without ever crossing an edge whose source is a root, the
// whole component is unreachable and is finalized and freed. The walk
// is split into constant-time ticks interleaved with allocation, and a
// write barrier restarts any search whose view of the heap has gone
// stale. Cycles need no special handling: a garbage cycle simply has
// no root edge anywhere in its component.
package gc

// mode is the phase of the collection state machine.
type mode int

const (
	modeInitialize mode = iota
	modeSearch
	modeClear
	modeFinalize
	modeDestroy
)

// Config carries the tunables for a collector.
type Config struct {
	// Effort scales how many ticks each allocation performs. Zero
	// makes allocation perform no ticks; Advance still drives
	// collection, and Close still reclaims everything.
	Effort float64

	// Allocator supplies block storage. Nil selects the default
	// make-backed allocator.
	Allocator Allocator

	// OnCollect, when non-nil, is called with the size of each garbage
	// component just before its finalization begins.
	OnCollect func(blocks int)

	// Seed seeds the candidate picker. Every seed, the zero default
	// included, yields a fixed sequence of picks, so runs are
	// reproducible.
	Seed uint64
}

// Collector owns a managed heap: the table of live blocks, the state
// of the collection in progress, and the pacing that interleaves
// collection with allocation. A Collector is not safe for concurrent
// use; it assumes a single mutator.
type Collector struct {
	blocks      Array[*Block]
	rnd         fnvRand
	totalLinks  int
	searchStack Array[*Block]
	searchList  Array[*Block]
	pos         int
	curBlk      *Block
	curLink     *Link
	mode        mode
	effort      float64
	alloc       Allocator
	onCollect   func(int)
	nextSerial  uint64
	heapBytes   int64
	collections uint64
	reclaimed   uint64
	closed      bool
}

// New creates a collector with the given effort and default hooks.
func New(effort float64) *Collector {
	return NewWith(Config{Effort: effort})
}

// NewWith creates a collector from a Config.
func NewWith(cfg Config) *Collector {
	c := &Collector{
		mode:      modeInitialize,
		effort:    cfg.Effort,
		alloc:     cfg.Allocator,
		onCollect: cfg.OnCollect,
	}
	if c.alloc == nil {
		c.alloc = sysAllocator{}
	}
	c.rnd.seed(cfg.Seed)
	return c
}

// NumBlocks returns the number of live blocks.
func (c *Collector) NumBlocks() int { return c.blocks.Len() }

// Effort returns the pacing multiplier.
func (c *Collector) Effort() float64 { return c.effort }

// SetEffort replaces the pacing multiplier.
func (c *Collector) SetEffort(e float64) { c.effort = e }

// Advance runs n collector ticks. Allocation performs ticks on its
// own; Advance exists for hosts that want to drive collection forward
// during idle time.
func (c *Collector) Advance(n int) {
	for i := 0; i < n; i++ {
		c.step()
	}
}

// poke tells the collector that a visited block was touched. A search
// built on stale inbound lists must not be allowed to conclude, so the
// search in progress is abandoned and the clear phase resets the
// visited flags. Outside the initialize and search phases this is a
// no-op.
func (c *Collector) poke(b *Block) {
	if b.visited && (c.mode == modeInitialize || c.mode == modeSearch) {
		c.mode = modeClear
		c.pos = 0
	}
}

// allocBlock paces the collector, then obtains storage for one block
// and enters it into the table.
func (c *Collector) allocBlock(size int, fin func(any)) *Block {
	if c.closed {
		panic("gc: allocation on a closed collector")
	}
	if n := c.blocks.Len(); n > 0 {
		steps := int(c.effort * float64(2*(c.totalLinks/n)+7))
		for i := 0; i < steps; i++ {
			c.step()
		}
	}
	total := size + blockOverhead
	mem := c.alloc.Alloc(total)
	if mem == nil {
		panic("gc: allocator returned no memory")
	}
	c.nextSerial++
	b := newBlock(c.blocks.Len(), c.nextSerial, total, mem, fin)
	c.blocks.Add(b)
	c.heapBytes += int64(total)
	return b
}

func (c *Collector) step() {
	switch c.mode {
	case modeInitialize:
		c.initializeStep()
	case modeSearch:
		c.searchStep()
	case modeClear:
		c.clearStep()
	case modeFinalize:
		c.finalizeStep()
	case modeDestroy:
		c.destroyStep()
	}
}

// initializeStep picks the next block to expand: a random candidate
// when the frontier is empty, otherwise the top of the frontier.
func (c *Collector) initializeStep() {
	if c.searchStack.Len() == 0 {
		if c.blocks.Len() == 0 {
			return
		}
		c.curBlk = c.blocks.At(c.rnd.intn(c.blocks.Len()))
		c.curBlk.visited = true
		c.searchList.Add(c.curBlk)
	} else {
		c.curBlk = c.searchStack.Pop()
	}
	c.mode = modeSearch
	c.curLink = c.curBlk.inlinks.next
}

// searchStep inspects one inbound edge of the block being expanded.
func (c *Collector) searchStep() {
	if c.curLink == c.curBlk.sentinel() {
		if c.searchStack.Len() == 0 {
			// Every inbound edge of the component came from inside it:
			// no root reaches these blocks.
			c.mode = modeFinalize
			c.pos = 0
			c.collections++
			if c.onCollect != nil {
				c.onCollect(c.searchList.Len())
			}
			return
		}
		c.mode = modeInitialize
		return
	}

	from := c.curLink.from
	if from == nil {
		// Root edge: the component is reachable.
		c.mode = modeClear
		c.pos = 0
		return
	}
	if !from.visited {
		from.visited = true
		c.searchList.Add(from)
		c.searchStack.Add(from)
	}
	c.curLink = c.curLink.next
}

// clearStep resets one visited flag after a live or abandoned search.
func (c *Collector) clearStep() {
	c.searchList.At(c.pos).visited = false
	c.pos++
	if c.pos >= c.searchList.Len() {
		c.mode = modeInitialize
		c.searchStack.Clear()
		c.searchList.Clear()
	}
}

// finalizeStep finalizes one block of a condemned component. Storage
// is not freed until the whole component has been finalized, so
// finalizers may still dereference sibling blocks.
func (c *Collector) finalizeStep() {
	c.finalizeBlock(c.searchList.At(c.pos))
	c.pos++
	if c.pos >= c.searchList.Len() {
		c.mode = modeDestroy
		c.pos = 0
	}
}

// destroyStep returns one finalized block's storage to the allocator.
func (c *Collector) destroyStep() {
	c.free(c.searchList.At(c.pos))
	c.pos++
	if c.pos >= c.searchList.Len() {
		c.mode = modeInitialize
		c.searchList.Clear()
	}
}

// finalizeBlock removes blk from the table and runs its finalizer.
// Only called when blk's entire component is condemned; the inbound
// lists of the component need no repair beyond what the released field
// links do themselves.
func (c *Collector) finalizeBlock(blk *Block) {
	id := blk.id
	c.blocks.Del(id)
	if id < c.blocks.Len() {
		c.blocks.At(id).id = id
	}
	blk.finalize()
	c.reclaimed++
}

// free returns blk's storage to the allocator. finalizeBlock must have
// run first.
func (c *Collector) free(blk *Block) {
	c.heapBytes -= int64(blk.size)
	c.alloc.Free(blk.mem)
	blk.mem = nil
	blk.payload = nil
}

// Close finalizes every live block in table order, then returns every
// block's storage, then renders the collector unusable. The two passes
// mirror the incremental finalize/destroy split: no storage is freed
// until every finalizer has run.
func (c *Collector) Close() {
	if c.closed {
		panic("gc: collector closed twice")
	}
	c.closed = true

	// A collection caught between its finalize and destroy phases has
	// blocks that are already finalized and out of the table but still
	// hold storage; collect them for the free pass below.
	var pending []*Block
	switch c.mode {
	case modeFinalize:
		for i := 0; i < c.pos; i++ {
			pending = append(pending, c.searchList.At(i))
		}
	case modeDestroy:
		for i := c.pos; i < c.searchList.Len(); i++ {
			pending = append(pending, c.searchList.At(i))
		}
	}

	for i := 0; i < c.blocks.Len(); i++ {
		c.blocks.At(i).finalize()
	}
	for i := 0; i < c.blocks.Len(); i++ {
		c.free(c.blocks.At(i))
	}
	for _, b := range pending {
		c.free(b)
	}
	c.blocks.Clear()
	c.searchStack.Clear()
	c.searchList.Clear()
	c.curBlk = nil
	c.curLink = nil
}
