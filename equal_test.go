package octree

import "testing"

func buildFixture(t *testing.T) *SparseOctree[int] {
	t.Helper()
	tree := New[int]()
	root := NewRoot()
	if err := tree.Set(mustChild(t, root, BLF), 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tree.Set(mustChild(t, root, TRB), 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return tree
}

func TestEqualIgnoresStorageOrder(t *testing.T) {
	t.Parallel()
	a := buildFixture(t)
	a.Sort()

	b := New[int]()
	root := NewRoot()
	// insert in reverse order: unsorted internal layout, same data.
	if err := b.Set(mustChild(t, root, TRB), 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set(mustChild(t, root, BLF), 1); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if !Equal(a, b) {
		t.Fatalf("trees with the same data in different storage order should be Equal")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	t.Parallel()
	a := buildFixture(t)
	b := buildFixture(t)
	if err := b.Set(mustChild(t, NewRoot(), TRB), 99); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if Equal(a, b) {
		t.Fatalf("trees with different leaf values should not be Equal")
	}
}

func TestEqualSameInstance(t *testing.T) {
	t.Parallel()
	a := buildFixture(t)
	if !Equal(a, a) {
		t.Fatalf("a tree should be Equal to itself")
	}
}

type customEqualer struct{ v int }

func (c customEqualer) Equal(other customEqualer) bool {
	return c.v%2 == other.v%2
}

func TestEqualerOverridesDeepEqual(t *testing.T) {
	t.Parallel()
	a := New[customEqualer]()
	b := New[customEqualer]()
	loc := mustChild(t, NewRoot(), BLF)

	if err := a.Set(loc, customEqualer{v: 2}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set(loc, customEqualer{v: 4}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if !Equal(a, b) {
		t.Fatalf("Equaler should make equal-parity values compare equal")
	}
}
