// ABOUTME: Reverse-edge index over a snapshot graph
// ABOUTME: Maps every object to the objects referring to it

package graph

// ReverseEdges maps an object to its referrers.
type ReverseEdges map[ObjID][]ObjID

// BuildReverseEdges indexes the graph by inbound edge. The live
// collector maintains this index incrementally; for a snapshot it is
// rebuilt in one pass.
func BuildReverseEdges(g *Graph) ReverseEdges {
	reverse := make(ReverseEdges)
	g.Each(func(obj *Object) {
		for _, target := range obj.Ptrs {
			reverse[target] = append(reverse[target], obj.ID)
		}
	})
	return reverse
}
