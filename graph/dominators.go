// ABOUTME: Lengauer-Tarjan dominator computation over snapshot graphs
// ABOUTME: Immediate dominators answer which single object keeps another alive

package graph

// Dominators computes the immediate dominator of every reachable
// object using the Lengauer-Tarjan algorithm. A synthetic super-root
// (ID 0) points at every root, so objects reachable through more than
// one root are dominated by the super-root. Unreachable objects do
// not appear in the result.
func Dominators(g *Graph) map[ObjID]ObjID {
	// Forward adjacency, super-root included.
	adj := make(map[ObjID][]ObjID, g.Len()+1)
	if roots := g.Roots(); len(roots) > 0 {
		adj[0] = append([]ObjID{}, roots...)
	}
	g.Each(func(obj *Object) {
		adj[obj.ID] = append([]ObjID{}, obj.Ptrs...)
	})

	// Predecessor lists, so the semidominator pass does not rescan the
	// whole graph per vertex.
	preds := make(map[ObjID][]ObjID)
	for v, outs := range adj {
		for _, w := range outs {
			preds[w] = append(preds[w], v)
		}
	}

	var dfsNum int
	vertex := make([]ObjID, 0, g.Len()+1) // DFS number -> vertex ID
	parent := make(map[ObjID]int)         // vertex -> DFS number of spanning-tree parent
	dfnum := make(map[ObjID]int)          // vertex -> DFS number
	semi := make(map[ObjID]int)           // vertex -> DFS number of semidominator
	ancestor := make(map[ObjID]int)       // link-eval forest
	idom := make(map[ObjID]ObjID)         // vertex -> immediate dominator
	samedom := make(map[ObjID]ObjID)      // link-eval forest
	best := make(map[ObjID]ObjID)         // link-eval forest
	bucket := make(map[int][]ObjID)       // semidominator -> vertices

	var dfs func(v ObjID, p int)
	dfs = func(v ObjID, p int) {
		if _, seen := dfnum[v]; seen {
			return
		}
		dfnum[v] = dfsNum
		vertex = append(vertex, v)
		parent[v] = p
		semi[v] = dfsNum
		ancestor[v] = -1
		best[v] = v
		samedom[v] = v
		dfsNum++
		for _, w := range adj[v] {
			dfs(w, dfnum[v])
		}
	}
	dfs(0, -1)

	var compress func(v ObjID)
	compress = func(v ObjID) {
		anc := ancestor[v]
		if anc == -1 {
			return
		}
		ancID := vertex[anc]
		if ancestor[ancID] != -1 {
			compress(ancID)
			if semi[best[ancID]] < semi[best[v]] {
				best[v] = best[ancID]
			}
			ancestor[v] = ancestor[ancID]
		}
	}

	eval := func(v ObjID) ObjID {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return best[v]
	}

	// considerEdge folds the edge v->w into w's semidominator.
	considerEdge := func(v, w ObjID) {
		vNum, reachable := dfnum[v]
		if !reachable {
			return
		}
		var u ObjID
		if vNum <= dfnum[w] {
			u = v
		} else {
			u = eval(v)
		}
		if semi[u] < semi[w] {
			semi[w] = semi[u]
		}
	}

	// Vertices in reverse DFS order.
	for i := dfsNum - 1; i > 0; i-- {
		w := vertex[i]

		for _, v := range preds[w] {
			considerEdge(v, w)
		}

		bucket[semi[w]] = append(bucket[semi[w]], w)

		if parent[w] != -1 {
			ancestor[w] = parent[w]
		}

		for _, v := range bucket[parent[w]] {
			u := eval(v)
			if semi[u] == semi[v] {
				idom[v] = vertex[parent[w]]
			} else {
				samedom[v] = u
			}
		}
		bucket[parent[w]] = nil
	}

	for i := 1; i < dfsNum; i++ {
		w := vertex[i]
		if samedom[w] != w {
			idom[w] = idom[samedom[w]]
		}
	}

	delete(idom, 0)
	return idom
}

// DominatorTree inverts an immediate-dominator map into a tree: each
// node maps to the nodes it immediately dominates.
func DominatorTree(idom map[ObjID]ObjID) map[ObjID][]ObjID {
	tree := make(map[ObjID][]ObjID)
	for node := range idom {
		tree[node] = []ObjID{}
	}
	tree[0] = []ObjID{}
	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	return tree
}
