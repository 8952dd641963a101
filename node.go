package octree

import "github.com/nchie/octree/internal/octmask"

// Node is a tagged value stored in a SparseOctree: either an interior
// Branch recording which of its 8 children exist, or a terminal Leaf
// carrying a payload value.
//
// Go has no sum types, so the tag is explicit rather than a type switch;
// this also keeps Node a fixed-layout value suitable for a flat []Node[V]
// slice, which is the whole point of the pointerless storage design.
type Node[V any] struct {
	mask   octmask.Mask
	value  V
	isLeaf bool
}

// NewBranch returns a Branch node with the given child-presence mask.
func NewBranch[V any](mask octmask.Mask) Node[V] {
	return Node[V]{mask: mask}
}

// NewLeaf returns a Leaf node carrying value.
func NewLeaf[V any](value V) Node[V] {
	return Node[V]{value: value, isLeaf: true}
}

// IsBranch reports whether n is an interior node.
func (n Node[V]) IsBranch() bool {
	return !n.isLeaf
}

// IsLeaf reports whether n is a terminal node.
func (n Node[V]) IsLeaf() bool {
	return n.isLeaf
}

// Mask returns the child-presence bitmask. Only meaningful if IsBranch.
func (n Node[V]) Mask() octmask.Mask {
	return n.mask
}

// Value returns the leaf payload. Only meaningful if IsLeaf.
func (n Node[V]) Value() V {
	return n.value
}

// withChild returns a copy of n (which must be a Branch) with c's flag set.
func (n Node[V]) withChild(c ChildId) Node[V] {
	n.mask = n.mask.MustSet(uint8(c))
	return n
}
