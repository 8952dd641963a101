package octree

import "reflect"

// Equaler is implemented by payload types that want to override the
// default [reflect.DeepEqual] comparison Equal uses, e.g. because V holds
// a field that should be ignored, or DeepEqual would be too expensive.
type Equaler[V any] interface {
	Equal(other V) bool
}

func valuesEqual[V any](a, b V) bool {
	if ea, ok := any(a).(Equaler[V]); ok {
		return ea.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Equal reports whether o and other hold exactly the same set of mapped
// locations, with the same node kind (Branch vs Leaf) at each, and equal
// values at every Leaf. It ignores unsorted/unused bookkeeping: two trees
// built by different sequences of Set calls that end up holding the same
// data compare equal regardless of storage order or pending Sort state.
func Equal[V any](o, other *SparseOctree[V]) bool {
	if o == other {
		return true
	}
	if len(o.lookup) != len(other.lookup) {
		return false
	}

	for loc, idx := range o.lookup {
		otherIdx, ok := other.lookup[loc]
		if !ok {
			return false
		}

		n, on := o.storage[idx], other.storage[otherIdx]
		if n.IsLeaf() != on.IsLeaf() {
			return false
		}
		if n.IsLeaf() {
			if !valuesEqual(n.Value(), on.Value()) {
				return false
			}
			continue
		}
		if n.Mask() != on.Mask() {
			return false
		}
	}
	return true
}
