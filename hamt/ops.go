package hamt

import (
	"github.com/TomTonic/immutable-collections/internal/refeq"
	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/wbt"
)

const prefixMask = uint32(1)<<30 - 1 // the 30 bits spent after 6 five-bit slices.

func collisionConfig[K any](cfg keycap.HashConfig[K]) keycap.OrderedConfig[K] {
	return keycap.OrderedConfig[K]{Compare: cfg.Less}
}

func lookup[K, V any](cfg keycap.HashConfig[K], k K, h uint32, n node[K, V]) (V, bool) {
	depth := 0
	for n != nil {
		switch t := n.(type) {
		case *leaf[K, V]:
			if t.hash == h && cfg.Equal(t.key, k) {
				return t.value, true
			}
			var zero V
			return zero, false
		case *branch[K, V]:
			s := slice(h, depth)
			if !t.bitmap.has(s) {
				var zero V
				return zero, false
			}
			n = t.children[t.bitmap.index(s)]
			depth++
		case *collision[K, V]:
			if t.hash&prefixMask == h&prefixMask {
				return t.bucket.Get(k)
			}
			var zero V
			return zero, false
		}
	}
	var zero V
	return zero, false
}

// AlterOp mirrors wbt.AlterOp as the hash engine's own "unchanged" tag,
// per spec.md §9's design note on simulating reference identity for
// value types that lack it natively.
type AlterOp = wbt.AlterOp

const (
	AlterKeep   = wbt.AlterKeep
	AlterSet    = wbt.AlterSet
	AlterDelete = wbt.AlterDelete
)

// alter is the combined insert/modify/delete primitive of spec.md
// §4.B's insert/alter/remove contracts, unified behind one recursive
// walk the way the BST engine's alter is: f sees the current value (and
// whether the key was present) and tags the outcome.
func alter[K, V any](cfg keycap.HashConfig[K], k K, h uint32, f func(V, bool) (V, AlterOp), n node[K, V], depth int) (node[K, V], int) {
	if n == nil {
		var zero V
		nv, op := f(zero, false)
		if op != AlterSet {
			return nil, 0
		}
		return &leaf[K, V]{hash: h, key: k, value: nv}, 1
	}
	switch t := n.(type) {
	case *leaf[K, V]:
		if t.hash == h && cfg.Equal(t.key, k) {
			nv, op := f(t.value, true)
			switch op {
			case AlterKeep:
				return n, 0
			case AlterDelete:
				return nil, -1
			default:
				if refeq.Unchanged(t.value, nv) {
					return n, 0
				}
				return &leaf[K, V]{hash: h, key: k, value: nv}, 0
			}
		}
		var zero V
		nv, op := f(zero, false)
		if op != AlterSet {
			return n, 0
		}
		return mergeTwoLeaves(cfg, depth, t, &leaf[K, V]{hash: h, key: k, value: nv}), 1
	case *branch[K, V]:
		s := slice(h, depth)
		idx := t.bitmap.index(s)
		if !t.bitmap.has(s) {
			var zero V
			nv, op := f(zero, false)
			if op != AlterSet {
				return n, 0
			}
			return insertChild(t, s, idx, &leaf[K, V]{hash: h, key: k, value: nv}), 1
		}
		child2, delta := alter(cfg, k, h, f, t.children[idx], depth+1)
		if child2 == t.children[idx] {
			return n, 0
		}
		if child2 == nil {
			return removeChild(t, s, idx), delta
		}
		return replaceChild(t, idx, child2), delta
	case *collision[K, V]:
		if t.hash&prefixMask != h&prefixMask {
			var zero V
			nv, op := f(zero, false)
			if op != AlterSet {
				return n, 0
			}
			return mergeCollisionWithLeaf(cfg, depth, t, &leaf[K, V]{hash: h, key: k, value: nv}), 1
		}
		before := t.bucket
		after := before.Alter(k, f)
		if after.SameRootAs(before) {
			return n, 0
		}
		delta := after.Size() - before.Size()
		if after.Size() == 1 {
			// a deletion collapsed the collision bucket down to one
			// entry; demote back to a Leaf per spec.md §3.2's "a
			// collision node has >= 2 entries" invariant.
			k2, v2, _ := after.At(0)
			return &leaf[K, V]{hash: cfg.Hash(k2), key: k2, value: v2}, delta
		}
		return &collision[K, V]{hash: t.hash, bucket: after}, delta
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

func insertChild[K, V any](b *branch[K, V], s byte, idx int, child node[K, V]) node[K, V] {
	newBitmap := b.bitmap.set(s)
	children := make([]node[K, V], len(b.children)+1)
	copy(children[:idx], b.children[:idx])
	children[idx] = child
	copy(children[idx+1:], b.children[idx:])
	return &branch[K, V]{bitmap: newBitmap, children: children}
}

func replaceChild[K, V any](b *branch[K, V], idx int, child node[K, V]) node[K, V] {
	children := make([]node[K, V], len(b.children))
	copy(children, b.children)
	children[idx] = child
	return &branch[K, V]{bitmap: b.bitmap, children: children}
}

// removeChild drops the child at idx; a branch reduced to one Leaf or
// Collision child collapses to that child directly. A remaining Branch
// child stays under a one-child branch, because its bitmap is keyed by
// the slice of the next depth down.
func removeChild[K, V any](b *branch[K, V], s byte, idx int) node[K, V] {
	if len(b.children) == 2 {
		other := b.children[1-idx]
		if _, isBranch := other.(*branch[K, V]); !isBranch {
			return other
		}
	}
	newBitmap := b.bitmap.clear(s)
	children := make([]node[K, V], len(b.children)-1)
	copy(children[:idx], b.children[:idx])
	copy(children[idx:], b.children[idx+1:])
	return &branch[K, V]{bitmap: newBitmap, children: children}
}

// mergeTwoLeaves builds the subtree housing two distinct-key leaves
// starting at depth: a Collision node if their full hashes share the
// 30-bit routed prefix (including an exact hash match), otherwise one
// one-child branch per leading slice the two hashes share, ending in a
// two-child branch at the first differing slice.
func mergeTwoLeaves[K, V any](cfg keycap.HashConfig[K], depth int, a, b *leaf[K, V]) node[K, V] {
	if depth >= maxDepth || a.hash&prefixMask == b.hash&prefixMask {
		ocfg := collisionConfig(cfg)
		bucket := wbt.Empty[K, V](ocfg).Set(a.key, a.value).Set(b.key, b.value)
		return &collision[K, V]{hash: a.hash, bucket: bucket}
	}
	sa, sb := slice(a.hash, depth), slice(b.hash, depth)
	if sa == sb {
		child := mergeTwoLeaves(cfg, depth+1, a, b)
		bm := bitmap32(0).set(sa)
		return &branch[K, V]{bitmap: bm, children: []node[K, V]{child}}
	}
	return newBranch2[K, V](sa, a, sb, b)
}

// mergeCollisionWithLeaf builds the subtree housing an existing
// Collision node and a new leaf whose hash differs in the routed 30
// bits, by walking down from depth until their slices diverge.
func mergeCollisionWithLeaf[K, V any](cfg keycap.HashConfig[K], depth int, c *collision[K, V], l *leaf[K, V]) node[K, V] {
	sc, sl := slice(c.hash, depth), slice(l.hash, depth)
	if sc == sl {
		child := mergeCollisionWithLeaf(cfg, depth+1, c, l)
		bm := bitmap32(0).set(sc)
		return &branch[K, V]{bitmap: bm, children: []node[K, V]{child}}
	}
	return newBranch2[K, V](sc, c, sl, l)
}

func fold[K, V, A any](f func(A, K, V) A, zero A, n node[K, V]) A {
	if n == nil {
		return zero
	}
	switch t := n.(type) {
	case *leaf[K, V]:
		return f(zero, t.key, t.value)
	case *branch[K, V]:
		acc := zero
		for _, c := range t.children {
			acc = fold(f, acc, c)
		}
		return acc
	case *collision[K, V]:
		acc := zero
		t.bucket.IterateAsc(func(k K, v V) bool {
			acc = f(acc, k, v)
			return true
		})
		return acc
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

// iterate walks n in bitmap/pre-order, the order spec.md §4.B leaves
// unspecified but deterministic for a given root instance; yield
// returning false stops the walk early.
func iterate[K, V any](n node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	switch t := n.(type) {
	case *leaf[K, V]:
		return yield(t.key, t.value)
	case *branch[K, V]:
		for _, c := range t.children {
			if !iterate(c, yield) {
				return false
			}
		}
		return true
	case *collision[K, V]:
		cont := true
		t.bucket.IterateAsc(func(k K, v V) bool {
			cont = yield(k, v)
			return cont
		})
		return cont
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

// mapValues rebuilds n with f applied to every value, returning n
// unchanged by reference when every produced value is unchanged.
func mapValues[K, V any](f func(K, V) V, n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	switch t := n.(type) {
	case *leaf[K, V]:
		nv := f(t.key, t.value)
		if refeq.Unchanged(nv, t.value) {
			return n
		}
		return &leaf[K, V]{hash: t.hash, key: t.key, value: nv}
	case *branch[K, V]:
		children := make([]node[K, V], len(t.children))
		changed := false
		for i, c := range t.children {
			c2 := mapValues(f, c)
			children[i] = c2
			if c2 != c {
				changed = true
			}
		}
		if !changed {
			return n
		}
		return &branch[K, V]{bitmap: t.bitmap, children: children}
	case *collision[K, V]:
		b2 := t.bucket.MapValues(f)
		if b2.SameRootAs(t.bucket) {
			return n
		}
		return &collision[K, V]{hash: t.hash, bucket: b2}
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

// collectValues rebuilds n, dropping any key whose f result reports
// keep=false; demotes a Collision whose bucket falls to one entry back
// to a Leaf, and a Branch whose children fall to one Leaf or Collision
// back to that child. A lone Branch child is kept under a one-child
// branch, since its bitmap is keyed by the next depth's slice.
func collectValues[K, V any](f func(K, V) (V, bool), n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	switch t := n.(type) {
	case *leaf[K, V]:
		nv, keep := f(t.key, t.value)
		if !keep {
			return nil
		}
		if refeq.Unchanged(nv, t.value) {
			return n
		}
		return &leaf[K, V]{hash: t.hash, key: t.key, value: nv}
	case *branch[K, V]:
		var children []node[K, V]
		var slots []byte
		bm := t.bitmap
		slot := byte(0)
		remaining := bm
		for remaining != 0 {
			if remaining.has(slot) {
				c2 := collectValues(f, t.children[bm.index(slot)])
				if c2 != nil {
					children = append(children, c2)
					slots = append(slots, slot)
				}
				remaining = remaining.clear(slot)
			}
			slot++
		}
		if len(children) == 0 {
			return nil
		}
		if len(children) == 1 {
			if _, isBranch := children[0].(*branch[K, V]); !isBranch {
				return children[0]
			}
		}
		newBitmap := bitmap32(0)
		for _, s := range slots {
			newBitmap = newBitmap.set(s)
		}
		return &branch[K, V]{bitmap: newBitmap, children: children}
	case *collision[K, V]:
		b2 := t.bucket.CollectValues(f)
		switch b2.Size() {
		case 0:
			return nil
		case 1:
			k2, v2, _ := b2.At(0)
			return &leaf[K, V]{hash: t.hash, key: k2, value: v2}
		default:
			return &collision[K, V]{hash: t.hash, bucket: b2}
		}
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}
