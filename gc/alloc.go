// ABOUTME: Allocator hooks backing block storage
// ABOUTME: Provides the default allocator and a counting wrapper for leak checks

package gc

// Allocator supplies and reclaims block storage. The returned slice is
// retained by its block for the block's whole lifetime and handed back
// to Free verbatim. A nil return means the allocation failed; the
// collector treats that as fatal.
type Allocator interface {
	Alloc(size int) []byte
	Free(mem []byte)
}

// sysAllocator is the default make-backed allocator.
type sysAllocator struct{}

func (sysAllocator) Alloc(size int) []byte { return make([]byte, size) }
func (sysAllocator) Free(mem []byte)       {}

// CountingAllocator wraps another allocator and tracks the number of
// outstanding allocations, in the manner of a leak-checking malloc.
type CountingAllocator struct {
	Inner       Allocator
	Outstanding int
}

// NewCountingAllocator returns a counting wrapper over the default
// allocator.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{Inner: sysAllocator{}}
}

// Alloc obtains storage from the inner allocator.
func (a *CountingAllocator) Alloc(size int) []byte {
	a.Outstanding++
	return a.Inner.Alloc(size)
}

// Free returns storage to the inner allocator.
func (a *CountingAllocator) Free(mem []byte) {
	a.Outstanding--
	a.Inner.Free(mem)
}
