// Package octmask implements a fixed 8-bit presence bitset, used to
// record which of a branch node's 8 octants are populated.
//
// This is a specialized, single-word sibling of a general popcount
// bitset: the octree's branching factor is always 8, so a full
// slice-backed bitset would be pure overhead. The method set mirrors
// one regardless, to keep Rank/PopCount/Test semantics familiar.
package octmask

import "math/bits"

// Mask represents presence of up to 8 children, bit i means octant i exists.
type Mask uint8

// Test reports whether bit is set. bit must be in [0,8), callers already
// derive bit from a 3-bit ChildId so this never needs a bounds check.
func (m Mask) Test(bit uint8) bool {
	return m&(1<<bit) != 0
}

// MustSet returns m with bit set.
func (m Mask) MustSet(bit uint8) Mask {
	return m | (1 << bit)
}

// MustClear returns m with bit cleared.
func (m Mask) MustClear(bit uint8) Mask {
	return m &^ (1 << bit)
}

// PopCount returns the number of set bits.
func (m Mask) PopCount() int {
	return bits.OnesCount8(uint8(m))
}

// Rank0 returns the number of set bits strictly below bit, i.e. the
// 0-based position bit would occupy among the set bits if bit were set.
func (m Mask) Rank0(bit uint8) int {
	return bits.OnesCount8(uint8(m) & (1<<bit - 1))
}

// FirstSet returns the lowest set bit and true, or (0, false) if empty.
func (m Mask) FirstSet() (bit uint8, ok bool) {
	if m == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros8(uint8(m))), true
}

// NextSet returns the lowest set bit >= from, or (0, false) if none.
func (m Mask) NextSet(from uint8) (bit uint8, ok bool) {
	if from >= 8 {
		return 0, false
	}
	shifted := uint8(m) &^ (1<<from - 1)
	if shifted == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros8(shifted)), true
}
