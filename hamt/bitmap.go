package hamt

import "math/bits"

// bitmap32 tracks which of a branch node's 32 possible child slots (one
// per 5-bit hash group, spec.md §3.2) are actually populated, adapted
// from the teacher's bitfield256 (bitfield.go) down to the 32 slots a
// single hash group needs instead of 256.
type bitmap32 uint32

func (b bitmap32) has(slot byte) bool {
	return b&(1<<uint(slot)) != 0
}

func (b bitmap32) set(slot byte) bitmap32 {
	return b | (1 << uint(slot))
}

func (b bitmap32) clear(slot byte) bitmap32 {
	return b &^ (1 << uint(slot))
}

func (b bitmap32) count() int {
	return bits.OnesCount32(uint32(b))
}

// index returns the position slot's child occupies within the dense
// children array: the number of populated slots below it.
func (b bitmap32) index(slot byte) int {
	return bits.OnesCount32(uint32(b) & (1<<uint(slot) - 1))
}
