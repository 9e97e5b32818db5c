// ABOUTME: Retained-size computation over the dominator tree
// ABOUTME: Answers how much heap a single object keeps alive

package graph

// RetainedSize computes, for every reachable object, the total size
// that would become collectable if that object were removed: its own
// size plus the retained sizes of everything it dominates.
func RetainedSize(g *Graph) map[ObjID]uint64 {
	idom := Dominators(g)
	tree := DominatorTree(idom)

	sizes := make(map[ObjID]uint64, g.Len()+1)
	g.Each(func(obj *Object) {
		sizes[obj.ID] = obj.Size
	})
	sizes[0] = 0

	retained := make(map[ObjID]uint64)

	var accumulate func(ObjID) uint64
	accumulate = func(node ObjID) uint64 {
		if size, done := retained[node]; done {
			return size
		}
		size := sizes[node]
		for _, child := range tree[node] {
			size += accumulate(child)
		}
		retained[node] = size
		return size
	}

	for node := range tree {
		accumulate(node)
	}

	delete(retained, 0)
	return retained
}
