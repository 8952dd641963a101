package octree

import "encoding/json"

// DumpListNode represents one node of a subtree in a sorted, recursive
// shape suited to serialization: Location names the node's path from the
// root, IsLeaf/Value apply only to Leaf nodes, and Children holds one
// entry per populated octant, in ascending ChildId order.
type DumpListNode[V any] struct {
	Location uint64            `json:"location"`
	IsLeaf   bool              `json:"isLeaf"`
	Value    V                 `json:"value,omitempty"`
	Children []DumpListNode[V] `json:"children,omitempty"`
}

// DumpList renders the whole tree as a DumpListNode, or nil if the tree is
// empty. It returns ErrNotSorted if the root's subtree has pending writes:
// call Sort and retry.
func (o *SparseOctree[V]) DumpList() (*DumpListNode[V], error) {
	root := NewRoot()
	if _, dirty := o.unsorted[root]; dirty {
		return nil, ErrNotSorted
	}

	idx, ok := o.lookup[root]
	if !ok {
		return nil, nil
	}

	node, err := o.dumpListRec(root, idx)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (o *SparseOctree[V]) dumpListRec(loc NodeLocation, idx int) (DumpListNode[V], error) {
	n := o.storage[idx]

	elem := DumpListNode[V]{Location: loc.code, IsLeaf: n.IsLeaf()}
	if n.IsLeaf() {
		elem.Value = n.Value()
		return elem, nil
	}

	offset := idx + 1
	for bit, ok := n.Mask().FirstSet(); ok; bit, ok = n.Mask().NextSet(bit + 1) {
		childLoc, has := loc.Child(ChildId(bit))
		if !has {
			continue
		}

		child, err := o.dumpListRec(childLoc, offset)
		if err != nil {
			return DumpListNode[V]{}, err
		}
		elem.Children = append(elem.Children, child)
		offset += countFromIndex(offset, o.storage)
	}
	return elem, nil
}

// MarshalJSON renders o via DumpList. The tree must be sorted.
func (o *SparseOctree[V]) MarshalJSON() ([]byte, error) {
	root, err := o.DumpList()
	if err != nil {
		return nil, err
	}
	return json.Marshal(root)
}

// UnmarshalJSON rebuilds o from the shape MarshalJSON produces. o is reset
// to a fresh, empty tree before decoding. Each node's position comes from
// the Children nesting plus the low 3 bits of its Location field, which
// name its octant within the parent; the rest of Location is not read.
func (o *SparseOctree[V]) UnmarshalJSON(data []byte) error {
	var root *DumpListNode[V]
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}

	*o = *New[V]()
	if root == nil {
		return nil
	}
	if err := o.setFromDumpList(NewRoot(), *root); err != nil {
		return err
	}
	o.Sort()
	return nil
}

func (o *SparseOctree[V]) setFromDumpList(loc NodeLocation, n DumpListNode[V]) error {
	if n.IsLeaf {
		return o.Set(loc, n.Value)
	}
	return o.setChildrenFromDumpList(loc, n.Children)
}

func (o *SparseOctree[V]) setChildrenFromDumpList(loc NodeLocation, children []DumpListNode[V]) error {
	for _, child := range children {
		childLoc, ok := loc.Child(childIdFromCode(child.Location))
		if !ok {
			return ErrOutOfBounds
		}
		if err := o.setFromDumpList(childLoc, child); err != nil {
			return err
		}
	}
	return nil
}
