// ABOUTME: Smart references binding client code to managed blocks
// ABOUTME: Every graph mutation flows through a Ref so inbound lists stay coherent

package gc

import "unsafe"

// A Ref is the client-visible handle to a managed object. It wraps
// exactly one link; every retargeting, dereference, and release goes
// through that link, so the target's inbound list stays consistent and
// the collector hears about every touch of a block it has visited.
//
// Refs held in local or global variables are root references; release
// them with Release when done. Refs embedded in managed objects must
// be built with Field or FieldTo so the edge records its containing
// block — containment is declared structurally, never discovered at
// runtime — and are released automatically when that block is
// finalized.
type Ref[T any] struct {
	link *Link
}

// Owner identifies a managed block while the refs embedded in its
// payload are being constructed.
type Owner struct {
	c   *Collector
	blk *Block
}

// Finalizer is implemented by payloads that need cleanup when their
// block is collected. It runs before the block's field refs drop, and
// may still dereference refs into the same condemned component.
type Finalizer interface {
	Finalize()
}

// NewRef returns an empty root reference.
func NewRef[T any](c *Collector) *Ref[T] {
	return &Ref[T]{link: newLink(c, nil, nil)}
}

// Make allocates a managed block holding v and returns a root
// reference to it. Use MakeWith when T embeds Ref fields.
func Make[T any](c *Collector, v *T) *Ref[T] {
	return MakeWith(c, func(Owner) *T { return v })
}

// MakeWith allocates a managed block and invokes build with the new
// block's Owner token, so the payload's embedded refs can be
// constructed with the right containing block. Allocation runs the
// collector's paced ticks first, then the payload is built in place.
func MakeWith[T any](c *Collector, build func(self Owner) *T) *Ref[T] {
	var zero T
	blk := c.allocBlock(int(unsafe.Sizeof(zero)), runFinalizer)
	blk.payload = build(Owner{c: c, blk: blk})
	return &Ref[T]{link: newLink(c, nil, blk)}
}

func runFinalizer(payload any) {
	if f, ok := payload.(Finalizer); ok {
		f.Finalize()
	}
}

// Field returns an empty reference owned by the block under
// construction. Any edge it later carries is a heap edge, not a root.
func Field[T any](o Owner) *Ref[T] {
	r := &Ref[T]{link: newLink(o.c, o.blk, nil)}
	o.blk.fields = append(o.blk.fields, r.link)
	return r
}

// FieldTo returns a reference owned by the block under construction,
// already pointing at target's block.
func FieldTo[T any](o Owner, target *Ref[T]) *Ref[T] {
	r := &Ref[T]{link: newLink(o.c, o.blk, target.link.to)}
	o.blk.fields = append(o.blk.fields, r.link)
	return r
}

// Clone returns a new root reference to the same target. The clone is
// a root edge even when r itself is a field of a managed object:
// containment is never inherited, only declared through Field and
// FieldTo.
func (r *Ref[T]) Clone() *Ref[T] {
	return &Ref[T]{link: newLink(r.link.c, nil, r.link.to)}
}

// Set retargets r at other's block.
func (r *Ref[T]) Set(other *Ref[T]) { r.link.relink(other.link.to) }

// SetNil empties the reference.
func (r *Ref[T]) SetNil() { r.link.relink(nil) }

// Get returns the referenced payload, or nil for an empty reference.
func (r *Ref[T]) Get() *T {
	p := r.link.deref()
	if p == nil {
		return nil
	}
	return p.(*T)
}

// IsNil reports whether the reference is empty.
func (r *Ref[T]) IsNil() bool { return r.link.to == nil }

// Eq reports whether two references share a target.
func (r *Ref[T]) Eq(other *Ref[T]) bool { return r.link.to == other.link.to }

// Release drops the reference. Releasing twice is a no-op. A field
// reference released early is dropped at once, and the release that
// its block's finalization later performs on it is then a no-op.
func (r *Ref[T]) Release() { r.link.destroy() }
