package octree

// SetPersist is like Set but the receiver isn't modified: o is cloned via
// Clone and the write is applied to the clone, which is returned. This
// octree's storage is one flat slice with no independent sub-path to
// clone, so unlike a pointer-tree's path-copy, this clones the whole tree;
// it is orders of magnitude slower than Set and intended for callers that
// need a previous version to remain valid for concurrent readers.
func (o *SparseOctree[V]) SetPersist(loc NodeLocation, v V) (*SparseOctree[V], error) {
	clone := o.Clone()
	if err := clone.Set(loc, v); err != nil {
		return nil, err
	}
	return clone, nil
}

// SetSubtreePersist is the copy-on-write form of SetSubtree.
func (o *SparseOctree[V]) SetSubtreePersist(loc NodeLocation, subtree *SparseOctree[V]) (*SparseOctree[V], error) {
	clone := o.Clone()
	if err := clone.SetSubtree(loc, subtree); err != nil {
		return nil, err
	}
	return clone, nil
}

// SortPersist is the copy-on-write form of Sort.
func (o *SparseOctree[V]) SortPersist() *SparseOctree[V] {
	clone := o.Clone()
	clone.Sort()
	return clone
}
