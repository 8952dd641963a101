package octree

// Clone returns an independent copy of o. Leaf payloads are deep-copied
// via Cloner[V] if V implements it, otherwise copied by value.
func (o *SparseOctree[V]) Clone() *SparseOctree[V] {
	storage := make([]Node[V], len(o.storage))
	for i, n := range o.storage {
		storage[i] = cloneOrCopyNode(n)
	}

	lookup := make(map[NodeLocation]int, len(o.lookup))
	for loc, idx := range o.lookup {
		lookup[loc] = idx
	}

	unsorted := make(map[NodeLocation]struct{}, len(o.unsorted))
	for loc := range o.unsorted {
		unsorted[loc] = struct{}{}
	}

	unused := make([]int, len(o.unused))
	copy(unused, o.unused)

	return &SparseOctree[V]{
		storage:  storage,
		lookup:   lookup,
		depth:    o.depth,
		unsorted: unsorted,
		unused:   unused,
	}
}
