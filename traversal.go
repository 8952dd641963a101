package octree

// walk performs a depth-first traversal of nodes, which must start with
// the root of a well-formed subtree at index 0 followed by its
// descendants in depth-first order. visit is called for every node
// reachable from the root with its derived NodeLocation and index
// (relative to nodes[0]).
func walk[V any](loc NodeLocation, nodes []Node[V], visit func(NodeLocation, int)) {
	walkAt(0, loc, nodes, visit)
}

// walkAt is the recursive workhorse: index is the position of loc within
// nodes. For a Branch, the k-th set bit (bit order ascending 0..7)
// addresses the subtree immediately following the sizes of all earlier
// siblings. Returns the size (node count) of the subtree rooted at index.
func walkAt[V any](index int, loc NodeLocation, nodes []Node[V], visit func(NodeLocation, int)) int {
	visit(loc, index)

	node := nodes[index]
	if node.IsLeaf() {
		return 1
	}

	size := 1
	for bit, ok := node.mask.FirstSet(); ok; bit, ok = node.mask.NextSet(bit + 1) {
		childLoc, has := loc.Child(ChildId(bit))
		if !has {
			// MaxDepth exceeded: cannot happen for a well-formed tree,
			// since a branch only exists because some descendant was set.
			continue
		}

		size += walkAt(index+size, childLoc, nodes, visit)
	}
	return size
}

// countFromIndex returns the number of nodes in the subtree starting at
// index, including the node at index itself (1 for a leaf).
func countFromIndex[V any](index int, nodes []Node[V]) int {
	node := nodes[index]
	if node.IsLeaf() {
		return 1
	}

	count := 1
	offset := 1
	for bit, ok := node.mask.FirstSet(); ok; bit, ok = node.mask.NextSet(bit + 1) {
		size := countFromIndex(index+offset, nodes)
		count += size
		offset += size
	}
	return count
}

// subtreeDepth returns the maximum depth reachable below the node at
// index, relative to that node (0 if it's a leaf).
func subtreeDepth[V any](index int, nodes []Node[V]) uint32 {
	node := nodes[index]
	if node.IsLeaf() {
		return 0
	}

	var maxDepth uint32
	offset := 1
	for bit, ok := node.mask.FirstSet(); ok; bit, ok = node.mask.NextSet(bit + 1) {
		d := subtreeDepth(index+offset, nodes)
		if d+1 > maxDepth {
			maxDepth = d + 1
		}
		offset += countFromIndex(index+offset, nodes)
	}
	return maxDepth
}

// genLookup inserts (location -> baseIndex+relativeIndex) for every node
// visited while walking nodes rooted at loc.
func genLookup[V any](loc NodeLocation, baseIndex int, nodes []Node[V], lookup map[NodeLocation]int) {
	walk(loc, nodes, func(l NodeLocation, i int) {
		lookup[l] = baseIndex + i
	})
}

// removeLookup deletes every location visited while walking nodes rooted
// at loc from lookup.
func removeLookup[V any](loc NodeLocation, nodes []Node[V], lookup map[NodeLocation]int) {
	walk(loc, nodes, func(l NodeLocation, _ int) {
		delete(lookup, l)
	})
}
