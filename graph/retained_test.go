// ABOUTME: Tests for retained-size computation
// ABOUTME: Validates sizes against hand-computed dominator structures

package graph

import "testing"

func TestRetainedSizeChain(t *testing.T) {
	// 1 (root, 10) -> 2 (20) -> 3 (30)
	g := New()
	g.Add(&Object{ID: 1, Type: "root", Size: 10, Ptrs: []ObjID{2}})
	g.Add(&Object{ID: 2, Type: "mid", Size: 20, Ptrs: []ObjID{3}})
	g.Add(&Object{ID: 3, Type: "leaf", Size: 30, Ptrs: []ObjID{}})
	g.SetRoots([]ObjID{1})

	retained := RetainedSize(g)

	if retained[3] != 30 {
		t.Errorf("Expected leaf to retain 30, got %d", retained[3])
	}
	if retained[2] != 50 {
		t.Errorf("Expected mid to retain 50, got %d", retained[2])
	}
	if retained[1] != 60 {
		t.Errorf("Expected root to retain 60, got %d", retained[1])
	}
}

func TestRetainedSizeDiamond(t *testing.T) {
	// 1 (10) -> 2 (20) -> 4 (40)
	//        -> 3 (30) -> 4
	g := New()
	g.Add(&Object{ID: 1, Type: "root", Size: 10, Ptrs: []ObjID{2, 3}})
	g.Add(&Object{ID: 2, Type: "left", Size: 20, Ptrs: []ObjID{4}})
	g.Add(&Object{ID: 3, Type: "right", Size: 30, Ptrs: []ObjID{4}})
	g.Add(&Object{ID: 4, Type: "merge", Size: 40, Ptrs: []ObjID{}})
	g.SetRoots([]ObjID{1})

	retained := RetainedSize(g)

	// Neither 2 nor 3 retains 4; only the root does.
	if retained[2] != 20 {
		t.Errorf("Expected left to retain 20, got %d", retained[2])
	}
	if retained[3] != 30 {
		t.Errorf("Expected right to retain 30, got %d", retained[3])
	}
	if retained[1] != 100 {
		t.Errorf("Expected root to retain 100, got %d", retained[1])
	}
}

func TestRetainedSizeCycle(t *testing.T) {
	// 1 (10) -> 2 (20) <-> 3 (30)
	g := New()
	g.Add(&Object{ID: 1, Type: "root", Size: 10, Ptrs: []ObjID{2}})
	g.Add(&Object{ID: 2, Type: "a", Size: 20, Ptrs: []ObjID{3}})
	g.Add(&Object{ID: 3, Type: "b", Size: 30, Ptrs: []ObjID{2}})
	g.SetRoots([]ObjID{1})

	retained := RetainedSize(g)

	if retained[1] != 60 {
		t.Errorf("Expected root to retain the whole cycle, got %d", retained[1])
	}
	if retained[2] != 50 {
		t.Errorf("Expected 2 to retain itself and 3, got %d", retained[2])
	}
	if retained[3] != 30 {
		t.Errorf("Expected 3 to retain only itself, got %d", retained[3])
	}
}

func TestRetainedSizeUnreachable(t *testing.T) {
	g := New()
	g.Add(&Object{ID: 1, Type: "root", Size: 10, Ptrs: []ObjID{}})
	g.Add(&Object{ID: 2, Type: "stranded", Size: 20, Ptrs: []ObjID{}})
	g.SetRoots([]ObjID{1})

	retained := RetainedSize(g)

	if _, ok := retained[2]; ok {
		t.Error("Expected unreachable object to be absent from retained sizes")
	}
	if retained[1] != 10 {
		t.Errorf("Expected root to retain 10, got %d", retained[1])
	}
}
