package octree

import (
	"testing"

	"github.com/nchie/octree/internal/octmask"
)

// buildSample returns a 4-node tree in depth-first storage order:
//
//	0: root   Branch{BLF, TRB}
//	1:  BLF   Branch{BLF}
//	2:   BLF   Leaf(1)
//	3:  TRB   Leaf(2)
func buildSample() []Node[int] {
	rootMask := octmask.Mask(0).MustSet(uint8(BLF)).MustSet(uint8(TRB))
	midMask := octmask.Mask(0).MustSet(uint8(BLF))
	return []Node[int]{
		NewBranch[int](rootMask),
		NewBranch[int](midMask),
		NewLeaf[int](1),
		NewLeaf[int](2),
	}
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	t.Parallel()
	nodes := buildSample()
	root := NewRoot()

	var order []int
	walk(root, nodes, func(_ NodeLocation, idx int) {
		order = append(order, idx)
	})

	want := []int{0, 1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestCountFromIndex(t *testing.T) {
	t.Parallel()
	nodes := buildSample()

	if got := countFromIndex(0, nodes); got != 4 {
		t.Fatalf("countFromIndex(root) = %d, want 4", got)
	}
	if got := countFromIndex(1, nodes); got != 2 {
		t.Fatalf("countFromIndex(mid branch) = %d, want 2", got)
	}
	if got := countFromIndex(3, nodes); got != 1 {
		t.Fatalf("countFromIndex(leaf) = %d, want 1", got)
	}
}

func TestSubtreeDepth(t *testing.T) {
	t.Parallel()
	nodes := buildSample()

	if got := subtreeDepth(0, nodes); got != 2 {
		t.Fatalf("subtreeDepth(root) = %d, want 2", got)
	}
	if got := subtreeDepth(1, nodes); got != 1 {
		t.Fatalf("subtreeDepth(mid branch) = %d, want 1", got)
	}
	if got := subtreeDepth(3, nodes); got != 0 {
		t.Fatalf("subtreeDepth(leaf) = %d, want 0", got)
	}
}

func TestGenAndRemoveLookup(t *testing.T) {
	t.Parallel()
	nodes := buildSample()
	root := NewRoot()

	lookup := make(map[NodeLocation]int)
	genLookup(root, 0, nodes, lookup)

	if len(lookup) != 4 {
		t.Fatalf("genLookup populated %d entries, want 4", len(lookup))
	}
	if idx, ok := lookup[root]; !ok || idx != 0 {
		t.Fatalf("lookup[root] = (%d, %v), want (0, true)", idx, ok)
	}

	removeLookup(root, nodes, lookup)
	if len(lookup) != 0 {
		t.Fatalf("removeLookup left %d entries, want 0", len(lookup))
	}
}
