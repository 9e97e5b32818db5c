// ABOUTME: Block headers and link edges forming the managed object graph
// ABOUTME: Maintains each block's circular doubly-linked inbound-edge list

package gc

import "unsafe"

// blockOverhead is the header cost charged to the allocator on top of
// every payload, the analogue of a malloc'd [header][payload] layout.
const blockOverhead = int(unsafe.Sizeof(Block{}))

// A Link is one directed reference into the managed heap. Links with a
// non-nil target are threaded onto the target block's inbound list. A
// nil from marks a root edge, one originating outside the managed
// heap; a nil to marks an empty reference.
//
// Position in the inbound list carries meaning: root edges are spliced
// at the head, heap edges at the tail, so a search walking the list
// from the front meets roots first and diagnoses a reachable component
// as early as possible.
type Link struct {
	next, prev *Link
	from, to   *Block
	c          *Collector
	dead       bool
}

// A Block is the header of a managed allocation. Its inlinks field is
// the sentinel node anchoring the circular list of inbound edges; the
// sentinel is itself a Link so the splice operations apply uniformly
// to every node in the list.
type Block struct {
	inlinks Link
	id      int
	serial  uint64
	size    int
	mem     []byte
	payload any
	fin     func(payload any)
	fields  []*Link
	visited bool
}

func newBlock(id int, serial uint64, size int, mem []byte, fin func(any)) *Block {
	b := &Block{id: id, serial: serial, size: size, mem: mem, fin: fin}
	b.inlinks.next = &b.inlinks
	b.inlinks.prev = &b.inlinks
	return b
}

// sentinel returns the anchor node of b's inbound list.
func (b *Block) sentinel() *Link { return &b.inlinks }

// finalize runs the user finalizer, then releases the block's field
// links: body first, members after. The payload stays readable until
// the block's storage is returned, so finalizers of sibling blocks in
// a condemned component may still dereference into this one.
func (b *Block) finalize() {
	if b.fin != nil {
		b.fin(b.payload)
	}
	for _, l := range b.fields {
		l.destroy()
	}
	b.fields = nil
}

// newLink creates a link and, when it has a target, splices it into
// the target's inbound list under the head/tail policy.
func newLink(c *Collector, from, to *Block) *Link {
	c.totalLinks++
	l := &Link{c: c, from: from, to: to}
	if to != nil {
		c.poke(to)
		l.splice(to)
	}
	return l
}

// splice inserts l into to's inbound list: heap edges at the tail,
// root edges at the head.
func (l *Link) splice(to *Block) {
	if l.from != nil {
		l.next = to.sentinel()
		l.prev = to.inlinks.prev
	} else {
		l.next = to.inlinks.next
		l.prev = to.sentinel()
	}
	l.prev.next = l
	l.next.prev = l
}

// unlink removes l from its target's inbound list.
func (l *Link) unlink() {
	l.next.prev = l.prev
	l.prev.next = l.next
	l.next = nil
	l.prev = nil
}

// relink retargets the link, preserving the head/tail policy. Both the
// old and the new target are poked before their lists change.
func (l *Link) relink(to *Block) {
	if l.dead {
		return
	}
	if l.to != nil {
		l.c.poke(l.to)
		l.unlink()
	}
	l.to = to
	if to != nil {
		l.c.poke(to)
		l.splice(to)
	}
}

// destroy removes the link from its target's list and drops it from
// the link count. Destroying a link twice is a no-op.
func (l *Link) destroy() {
	if l.dead {
		return
	}
	l.dead = true
	l.c.totalLinks--
	if l.to != nil {
		l.c.poke(l.to)
		l.unlink()
		l.to = nil
	}
}

// deref pokes the target and returns its payload, or nil for an empty
// link.
func (l *Link) deref() any {
	if l.to == nil {
		return nil
	}
	l.c.poke(l.to)
	return l.to.payload
}
