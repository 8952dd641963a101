package octree

// Cloner is implemented by payload types that need an explicit deep copy
// instead of a plain Go value copy, e.g. when V itself holds a slice, map,
// or pointer. CloneSubtree and the Persist family use it automatically;
// payloads that are already safe to copy by value need not implement it.
type Cloner[V any] interface {
	Clone() V
}

// cloneOrCopyValue returns an independent copy of v: v.Clone() if V
// implements Cloner[V], otherwise a plain value copy.
func cloneOrCopyValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

// cloneOrCopyNode returns an independent copy of n, deep-copying a Leaf's
// payload via cloneOrCopyValue. A Branch has no payload to clone.
func cloneOrCopyNode[V any](n Node[V]) Node[V] {
	if n.IsLeaf() {
		return NewLeaf[V](cloneOrCopyValue(n.Value()))
	}
	return NewBranch[V](n.Mask())
}
