// ABOUTME: Core types for snapshot object graphs
// ABOUTME: Defines ObjID and Object as captured from a live collector

package graph

// ObjID identifies an object within a snapshot. ID 0 is reserved for
// the synthetic super-root used by the dominator analyses; collectors
// never assign it.
type ObjID uint64

// Object is a single heap object in a snapshot.
type Object struct {
	ID   ObjID   `json:"id"`   // Allocation serial of the block
	Type string  `json:"type"` // Payload type name (e.g. "*main.Node")
	Size uint64  `json:"size"` // Block size in bytes, header included
	Ptrs []ObjID `json:"ptrs"` // IDs of objects this object points to
}
