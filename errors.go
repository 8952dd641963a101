package octree

import "errors"

// ErrOutOfBounds is returned by UnmarshalJSON when a decoded child would
// lie deeper than MaxDepth. NewLocation reports out-of-range coordinates
// or depth through its ok result instead.
var ErrOutOfBounds = errors.New("octree: coordinate or depth out of bounds")

// ErrAncestorIsLeaf is returned by Set/SetSubtree when an existing leaf
// would need to become a branch to accommodate the write. The caller
// must remove the leaf first; this library never auto-demotes it.
var ErrAncestorIsLeaf = errors.New("octree: ancestor is a leaf")

// ErrNotSorted is returned by GetSlice/CloneSubtree/DumpList when the
// requested location is itself in the unsorted set, i.e. something below
// it changed since the last Sort; a dirty ancestor alone does not cause
// it. Call Sort and retry.
var ErrNotSorted = errors.New("octree: subtree is not sorted")

// ErrTooDeep is returned by SetSubtree when grafting the subtree at loc
// would exceed MaxDepth.
var ErrTooDeep = errors.New("octree: subtree would exceed max depth")
