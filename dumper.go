package octree

import (
	"fmt"
	"io"
	"strings"
)

// String returns the same text dump produces, for use in debuggers and
// test failure messages.
func (o *SparseOctree[V]) String() string {
	w := new(strings.Builder)
	if err := o.dump(w); err != nil {
		panic(err)
	}
	return w.String()
}

// dump writes a human-readable, indented rendering of every clean subtree
// to w. Dirty regions (those with a pending Sort) are rendered as a single
// "[DIRTY]" line naming the location, since their storage range isn't
// contiguous.
//
//	Output:
//
//	[BRANCH] loc: 1 depth: 0 mask: 10000010
//	.[LEAF] loc: 9 depth: 1 value: 42
//	.[LEAF] loc: 15 depth: 1 value: 7
func (o *SparseOctree[V]) dump(w io.Writer) error {
	if len(o.storage) == 0 {
		_, err := fmt.Fprintln(w, "[EMPTY]")
		return err
	}
	return o.dumpRec(w, NewRoot(), 0)
}

func (o *SparseOctree[V]) dumpRec(w io.Writer, loc NodeLocation, depth int) error {
	indent := strings.Repeat(".", depth)

	if _, dirty := o.unsorted[loc]; dirty {
		_, err := fmt.Fprintf(w, "%s[DIRTY] loc: %d\n", indent, loc.code)
		return err
	}

	idx, ok := o.lookup[loc]
	if !ok {
		return nil
	}
	n := o.storage[idx]

	if n.IsLeaf() {
		_, err := fmt.Fprintf(w, "%s[LEAF] loc: %d depth: %d value: %v\n", indent, loc.code, depth, n.Value())
		return err
	}

	if _, err := fmt.Fprintf(w, "%s[BRANCH] loc: %d depth: %d mask: %08b\n", indent, loc.code, depth, n.Mask()); err != nil {
		return err
	}

	for bit, ok := n.Mask().FirstSet(); ok; bit, ok = n.Mask().NextSet(bit + 1) {
		childLoc, has := loc.Child(ChildId(bit))
		if !has {
			continue
		}
		if err := o.dumpRec(w, childLoc, depth+1); err != nil {
			return err
		}
	}
	return nil
}
