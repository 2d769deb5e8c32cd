// Package hamt implements the hash-array-mapped-trie engine of
// spec.md §3.2/§4.B: persistent Leaf | Branch | Collision nodes
// addressed by 5-bit slices of a 32-bit hash, six slices deep. Every
// operation is pure and shares unchanged subtrees with its input,
// returning the input root by reference whenever the result is
// value-identical to it.
//
// The node sum type is realized as an unexported interface implemented
// by three pointer-typed structs, in the same style the BarrensZeppelin
// patricia-trie example uses
// (_examples/other_examples/826bb59b_BarrensZeppelin-pmmap__tree.go.go)
// rather than the teacher's own unsafe.Pointer ART node-casting scheme
// (art_node.go/art/node_types.go), which assumes in-place-mutable fixed
// layouts incompatible with this package's frozen, structurally-shared
// nodes (see DESIGN.md). The Collision bucket is a wbt.Map, per
// spec.md's explicit note that this is "the only place the two engines
// interact."
package hamt

import "github.com/TomTonic/immutable-collections/wbt"

const (
	bitsPerSlice = 5
	maxDepth     = 6 // 6 * 5 = 30 bits consumed; 2 high bits of the hash are never routed on.
)

// node is the closed sum type Leaf | Branch | Collision from spec.md
// §3.2. A nil node value is the absent/empty root.
type node[K, V any] interface {
	isHAMTNode()
}

type leaf[K, V any] struct {
	hash  uint32
	key   K
	value V
}

func (*leaf[K, V]) isHAMTNode() {}

// branch holds its children densely packed in bit order: children[i]
// corresponds to the i'th set bit of bitmap, per spec.md §4.B's bitmap
// arithmetic. When bitmap is all-ones the branch is "full" (32 of 32
// slots populated) and children is indexable directly by slice index.
type branch[K, V any] struct {
	bitmap   bitmap32
	children []node[K, V]
}

func (*branch[K, V]) isHAMTNode() {}

// collision holds 2+ entries that share a full 30-bit hash prefix and
// differ only by key comparison (spec.md §3.2); the bucket is itself a
// weight-balanced tree so lookups inside a pathological collision
// remain O(log n).
type collision[K, V any] struct {
	hash   uint32
	bucket wbt.Map[K, V]
}

func (*collision[K, V]) isHAMTNode() {}

func slice(hash uint32, depth int) byte {
	return byte((hash >> (depth * bitsPerSlice)) & 31)
}

func asBranch[K, V any](n node[K, V]) *branch[K, V] {
	b, ok := n.(*branch[K, V])
	if !ok {
		panic("immutable-collections: internal invariant violated: expected *branch HAMT node")
	}
	return b
}

func asLeaf[K, V any](n node[K, V]) *leaf[K, V] {
	l, ok := n.(*leaf[K, V])
	if !ok {
		panic("immutable-collections: internal invariant violated: expected *leaf HAMT node")
	}
	return l
}

func asCollision[K, V any](n node[K, V]) *collision[K, V] {
	c, ok := n.(*collision[K, V])
	if !ok {
		panic("immutable-collections: internal invariant violated: expected *collision HAMT node")
	}
	return c
}

func newBranch2[K, V any](slotA byte, childA node[K, V], slotB byte, childB node[K, V]) *branch[K, V] {
	bm := bitmap32(0).set(slotA).set(slotB)
	children := make([]node[K, V], 2)
	children[bm.index(slotA)] = childA
	children[bm.index(slotB)] = childB
	return &branch[K, V]{bitmap: bm, children: children}
}
