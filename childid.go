package octree

import "github.com/nchie/octree/internal/octmask"

// ChildId identifies one of the 8 octants of a cube. Bit assignment is
// fixed: bit 0 = +X, bit 1 = +Z, bit 2 = +Y.
type ChildId uint8

// The 8 named octants (B=bottom, T=top, L=left, R=right, F=front, B=back).
const (
	BLF ChildId = 0b000
	BRF ChildId = 0b001
	BLB ChildId = 0b010
	BRB ChildId = 0b011

	TLF ChildId = 0b100
	TRF ChildId = 0b101
	TLB ChildId = 0b110
	TRB ChildId = 0b111
)

// childIdFromCode masks the low 3 bits of code into a ChildId.
func childIdFromCode(code uint64) ChildId {
	return ChildId(code & 0b111)
}

// flag projects this ChildId to its bit in an octmask.Mask.
func (c ChildId) flag() octmask.Mask {
	return octmask.Mask(1 << uint8(c))
}

// String renders the canonical three-letter name.
func (c ChildId) String() string {
	switch c {
	case BLF:
		return "BLF"
	case BRF:
		return "BRF"
	case BLB:
		return "BLB"
	case BRB:
		return "BRB"
	case TLF:
		return "TLF"
	case TRF:
		return "TRF"
	case TLB:
		return "TLB"
	case TRB:
		return "TRB"
	default:
		return "???"
	}
}
