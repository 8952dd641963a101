package octree

import (
	"testing"

	"github.com/nchie/octree/internal/octmask"
)

func TestNewLeaf(t *testing.T) {
	t.Parallel()
	n := NewLeaf[string]("hello")
	if !n.IsLeaf() || n.IsBranch() {
		t.Fatalf("NewLeaf should be a leaf")
	}
	if n.Value() != "hello" {
		t.Fatalf("Value() = %q, want hello", n.Value())
	}
}

func TestNewBranch(t *testing.T) {
	t.Parallel()
	mask := octmask.Mask(0).MustSet(3).MustSet(5)
	n := NewBranch[int](mask)
	if !n.IsBranch() || n.IsLeaf() {
		t.Fatalf("NewBranch should be a branch")
	}
	if n.Mask() != mask {
		t.Fatalf("Mask() = %08b, want %08b", n.Mask(), mask)
	}
}

func TestNodeWithChild(t *testing.T) {
	t.Parallel()
	n := NewBranch[int](0)
	n = n.withChild(TRB)
	if !n.Mask().Test(uint8(TRB)) {
		t.Fatalf("withChild(TRB) did not set the TRB bit")
	}
}
