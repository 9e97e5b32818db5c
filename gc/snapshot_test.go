// ABOUTME: Tests for heap snapshots and their graph analyses
// ABOUTME: Verifies recovered edges, roots, and paths back to root refs

package gc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/btgc/gc"
	"github.com/prateek/btgc/graph"
)

func TestSnapshotChain(t *testing.T) {
	c := gc.New(0)

	a := newNode(c)
	b := newNode(c)
	d := newNode(c)
	a.Get().next.Set(b)
	b.Get().next.Set(d)
	b.Release()
	d.Release()

	g := c.Snapshot()

	require.Equal(t, 3, g.Len())
	require.Len(t, g.Roots(), 1, "Only a is held by a root ref")

	// The chain shows up as forward edges: root -> mid -> leaf.
	var leaf, root *graph.Object
	g.Each(func(obj *graph.Object) {
		assert.Equal(t, "*gc_test.node", obj.Type)
		if len(obj.Ptrs) == 0 {
			leaf = obj
		}
		if obj.ID == g.Roots()[0] {
			root = obj
		}
	})
	require.NotNil(t, leaf)
	require.NotNil(t, root)
	require.Len(t, root.Ptrs, 1)

	paths := graph.PathsToRoots(g, leaf.ID, 5)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].IDs, 3)
	assert.Equal(t, leaf.ID, paths[0].IDs[0])
	assert.Equal(t, root.ID, paths[0].IDs[2])
}

func TestSnapshotRetainedSizes(t *testing.T) {
	c := gc.New(0)

	a := newNode(c)
	b := newNode(c)
	a.Get().next.Set(b)
	b.Release()

	g := c.Snapshot()
	retained := graph.RetainedSize(g)

	var total uint64
	g.Each(func(obj *graph.Object) { total += obj.Size })

	require.Len(t, g.Roots(), 1)
	assert.Equal(t, total, retained[g.Roots()[0]], "The root retains the whole chain")
}

func TestSnapshotCycle(t *testing.T) {
	c := gc.New(0)

	a := newNode(c)
	b := newNode(c)
	a.Get().next.Set(b)
	b.Get().next.Set(a)
	b.Release()

	g := c.Snapshot()

	require.Equal(t, 2, g.Len())
	require.Len(t, g.Roots(), 1)

	// Both objects point at each other.
	g.Each(func(obj *graph.Object) {
		require.Len(t, obj.Ptrs, 1)
		assert.NotEqual(t, obj.ID, obj.Ptrs[0])
	})
}

func TestSnapshotIsolatedFromCollector(t *testing.T) {
	c := gc.New(1)
	a := newNode(c)

	g := c.Snapshot()
	a.Release()
	c.Advance(500)

	// The snapshot is a copy; collecting the block does not change it.
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, c.NumBlocks())
}
