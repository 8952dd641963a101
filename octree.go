package octree

import "slices"

// SparseOctree is a pointerless sparse octree over generic payload V. Nodes
// are stored flat in storage, addressed by an index map keyed on
// NodeLocation. After every Set/SetSubtree, previously-sorted regions of
// storage may fall out of depth-first order relative to the rest of the
// tree; those regions are tracked in unsorted until the next Sort, at which
// point storage is rebuilt into one contiguous depth-first ordering.
type SparseOctree[V any] struct {
	storage  []Node[V]
	lookup   map[NodeLocation]int
	depth    uint32
	unsorted map[NodeLocation]struct{}
	unused   []int
}

// New returns an empty SparseOctree.
func New[V any]() *SparseOctree[V] {
	return &SparseOctree[V]{
		lookup:   make(map[NodeLocation]int),
		unsorted: make(map[NodeLocation]struct{}),
	}
}

// Len returns the number of nodes in storage, including stale entries
// pending reclamation by the next Sort.
func (o *SparseOctree[V]) Len() int {
	return len(o.storage)
}

// Depth returns the deepest level any Set or SetSubtree call has reached.
func (o *SparseOctree[V]) Depth() uint32 {
	return o.depth
}

// GetSingle returns the value at loc, and false if loc is unmapped or
// names a Branch rather than a Leaf.
func (o *SparseOctree[V]) GetSingle(loc NodeLocation) (V, bool) {
	var zero V
	idx, ok := o.lookup[loc]
	if !ok {
		return zero, false
	}
	n := o.storage[idx]
	if !n.IsLeaf() {
		return zero, false
	}
	return n.Value(), true
}

// GetNode returns the node (Branch or Leaf) stored at loc.
func (o *SparseOctree[V]) GetNode(loc NodeLocation) (Node[V], bool) {
	idx, ok := o.lookup[loc]
	if !ok {
		return Node[V]{}, false
	}
	return o.storage[idx], true
}

// pendingAncestor is an ancestor of a location being set, discovered while
// walking toward the root, that either needs a fresh Branch node or needs
// an existing Branch's mask updated.
type pendingAncestor struct {
	loc NodeLocation
	id  ChildId
}

// planAncestors walks from loc toward the root without mutating o,
// collecting every ancestor that must be created or flag-updated to make
// loc settable. It fails with ErrAncestorIsLeaf, and mutates nothing, if
// any ancestor along the way is already a Leaf. Entries are ordered
// nearest-loc-first; applying them in reverse walks the tree top-down.
func (o *SparseOctree[V]) planAncestors(loc NodeLocation) ([]pendingAncestor, error) {
	var pending []pendingAncestor

	cur := loc
	for {
		parent, id, hasParent := cur.Disown()
		if !hasParent {
			return pending, nil
		}

		if idx, exists := o.lookup[parent]; exists {
			if o.storage[idx].IsLeaf() {
				return nil, ErrAncestorIsLeaf
			}
			pending = append(pending, pendingAncestor{parent, id})
			return pending, nil
		}

		pending = append(pending, pendingAncestor{parent, id})
		cur = parent
	}
}

// updateAncestors ensures every ancestor of loc exists as a Branch with
// loc's path flagged, creating missing Branch nodes top-down. It either
// fully succeeds or leaves o entirely unmodified.
func (o *SparseOctree[V]) updateAncestors(loc NodeLocation) error {
	pending, err := o.planAncestors(loc)
	if err != nil {
		return err
	}

	for i := len(pending) - 1; i >= 0; i-- {
		p := pending[i]
		if idx, exists := o.lookup[p.loc]; exists {
			o.storage[idx] = o.storage[idx].withChild(p.id)
			continue
		}

		o.storage = append(o.storage, NewBranch[V](p.id.flag()))
		o.lookup[p.loc] = len(o.storage) - 1
		o.markAncestorsUnsorted(p.loc)
		if d := p.loc.Depth(); d > o.depth {
			o.depth = d
		}
	}
	return nil
}

// markAncestorsUnsorted marks every strict ancestor of loc as unsorted,
// stopping as soon as it reaches one already marked: that ancestor's own
// ancestors must already be marked from whenever it was first recorded.
func (o *SparseOctree[V]) markAncestorsUnsorted(loc NodeLocation) {
	cur := loc
	for {
		parent, hasParent := cur.Parent()
		if !hasParent {
			return
		}
		if _, already := o.unsorted[parent]; already {
			return
		}
		o.unsorted[parent] = struct{}{}
		cur = parent
	}
}

// Set writes v as a Leaf at loc, creating any missing Branch ancestors. It
// returns ErrAncestorIsLeaf if an ancestor of loc is already a Leaf; on
// error no location becomes newly mapped.
func (o *SparseOctree[V]) Set(loc NodeLocation, v V) error {
	if err := o.updateAncestors(loc); err != nil {
		return err
	}

	if d := loc.Depth(); d > o.depth {
		o.depth = d
	}

	if idx, exists := o.lookup[loc]; exists {
		o.storage[idx] = NewLeaf[V](v)
		return nil
	}

	o.storage = append(o.storage, NewLeaf[V](v))
	o.lookup[loc] = len(o.storage) - 1
	o.markAncestorsUnsorted(loc)
	return nil
}

// SetSubtree grafts subtree's own storage, as a contiguous unit, at loc,
// replacing whatever was there. subtree must be sorted; pass a freshly
// Sort-ed tree or one returned by CloneSubtree. If loc is already mapped
// in o, the old contents at loc must also be clean (not in o's unsorted
// set) since locating and reclaiming its storage range depends on it
// being contiguous; Sort o first if a prior Set touched inside loc.
// Returns ErrNotSorted if subtree has unsorted regions, ErrTooDeep if
// grafting would exceed MaxDepth, and ErrAncestorIsLeaf under the same
// condition as Set.
func (o *SparseOctree[V]) SetSubtree(loc NodeLocation, subtree *SparseOctree[V]) error {
	if len(subtree.unsorted) != 0 {
		return ErrNotSorted
	}
	if _, dirty := o.unsorted[loc]; dirty {
		return ErrNotSorted
	}
	if loc.Depth()+subtree.depth > MaxDepth {
		return ErrTooDeep
	}

	if err := o.updateAncestors(loc); err != nil {
		return err
	}

	if d := loc.Depth() + subtree.depth; d > o.depth {
		o.depth = d
	}

	grafted := make([]Node[V], len(subtree.storage))
	copy(grafted, subtree.storage)

	if idx, exists := o.lookup[loc]; exists {
		oldSize := countFromIndex(idx, o.storage)
		removeLookup(loc, o.storage[idx:idx+oldSize], o.lookup)

		if len(grafted) <= oldSize {
			copy(o.storage[idx:], grafted)
			for i := idx + len(grafted); i < idx+oldSize; i++ {
				o.unused = append(o.unused, i)
			}
			genLookup(loc, idx, o.storage[idx:idx+len(grafted)], o.lookup)
		} else {
			for i := idx; i < idx+oldSize; i++ {
				o.unused = append(o.unused, i)
			}
			base := len(o.storage)
			o.storage = append(o.storage, grafted...)
			genLookup(loc, base, o.storage[base:], o.lookup)
		}
	} else {
		base := len(o.storage)
		o.storage = append(o.storage, grafted...)
		genLookup(loc, base, o.storage[base:], o.lookup)
	}

	o.markAncestorsUnsorted(loc)
	return nil
}

// GetSlice returns the contiguous depth-first slice of storage
// representing the subtree rooted at loc. It returns (nil, nil) if loc is
// unmapped but clean (the location simply has no data), and
// (nil, ErrNotSorted) if loc's subtree has pending unsorted writes: call
// Sort and retry.
func (o *SparseOctree[V]) GetSlice(loc NodeLocation) ([]Node[V], error) {
	if _, dirty := o.unsorted[loc]; dirty {
		return nil, ErrNotSorted
	}

	idx, ok := o.lookup[loc]
	if !ok {
		return nil, nil
	}

	size := countFromIndex(idx, o.storage)
	return o.storage[idx : idx+size], nil
}

// CloneSubtree materializes an independent SparseOctree containing a copy
// of the subtree rooted at loc, re-rooted so loc itself becomes the clone's
// root. Same preconditions and errors as GetSlice.
func (o *SparseOctree[V]) CloneSubtree(loc NodeLocation) (*SparseOctree[V], error) {
	slice, err := o.GetSlice(loc)
	if err != nil {
		return nil, err
	}
	if slice == nil {
		return New[V](), nil
	}

	storage := make([]Node[V], len(slice))
	for i, n := range slice {
		storage[i] = cloneOrCopyNode(n)
	}

	clone := &SparseOctree[V]{
		storage:  storage,
		lookup:   make(map[NodeLocation]int, len(storage)),
		unsorted: make(map[NodeLocation]struct{}),
	}
	genLookup(NewRoot(), 0, storage, clone.lookup)
	clone.depth = subtreeDepth(0, storage)
	return clone, nil
}

// Sort rebuilds storage into one contiguous depth-first ordering, dropping
// any slots left behind by SetSubtree overwrites, and clears the unsorted
// and reclaimed-slot tracking. After Sort, GetSlice succeeds for every
// mapped location.
func (o *SparseOctree[V]) Sort() {
	type entry struct {
		loc NodeLocation
		idx int
	}

	entries := make([]entry, 0, len(o.lookup))
	for loc, idx := range o.lookup {
		entries = append(entries, entry{loc, idx})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return a.loc.Compare(b.loc)
	})

	storage := make([]Node[V], len(entries))
	lookup := make(map[NodeLocation]int, len(entries))
	for i, e := range entries {
		storage[i] = o.storage[e.idx]
		lookup[e.loc] = i
	}

	o.storage = storage
	o.lookup = lookup
	o.unsorted = make(map[NodeLocation]struct{})
	o.unused = nil
}
