package hamt

import (
	"github.com/TomTonic/immutable-collections/internal/refeq"
	"github.com/TomTonic/immutable-collections/keycap"
)

// count returns the number of entries held under n, used to credit the
// "same node object on both sides" structural-sharing shortcut of
// spec.md §4.B with the entries it short-circuits.
func count[K, V any](n node[K, V]) int {
	switch t := n.(type) {
	case nil:
		return 0
	case *leaf[K, V]:
		return 1
	case *branch[K, V]:
		c := 0
		for _, ch := range t.children {
			c += count(ch)
		}
		return c
	case *collision[K, V]:
		return t.bucket.Size()
	}
	return 0
}

func sameNode[K, V any](a, b node[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// mergeDisjoint builds the branch chain housing two nodes whose hashes
// are known to diverge before consuming all 30 routed bits (the leaf-
// leaf, leaf-collision, and collision-collision disjoint-prefix cases
// of spec.md §3.2 all reduce to this).
func mergeDisjoint[K, V any](depth int, hashA, hashB uint32, a, b node[K, V]) node[K, V] {
	sa, sb := slice(hashA, depth), slice(hashB, depth)
	if sa == sb {
		child := mergeDisjoint(depth+1, hashA, hashB, a, b)
		bm := bitmap32(0).set(sa)
		return &branch[K, V]{bitmap: bm, children: []node[K, V]{child}}
	}
	return newBranch2[K, V](sa, a, sb, b)
}

// union implements spec.md §4.B's union contract: walks both trees in
// lockstep, splices unmatched subtrees in directly, and returns rootA
// by reference when rootB contributed nothing new or different.
func union[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, a, b node[K, V]) (node[K, V], int) {
	if a == nil {
		return b, 0
	}
	if b == nil {
		return a, 0
	}
	if sameNode(a, b) {
		return a, count(a)
	}
	switch at := a.(type) {
	case *leaf[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			if at.hash == bt.hash && cfg.Equal(at.key, bt.key) {
				nv := merge(at.key, at.value, bt.value)
				if refeq.Unchanged(nv, at.value) {
					return at, 1
				}
				return &leaf[K, V]{hash: at.hash, key: at.key, value: nv}, 1
			}
			return mergeTwoLeaves(cfg, depth, at, bt), 0
		case *branch[K, V]:
			return unionLeafBranch(cfg, merge, depth, at, bt)
		case *collision[K, V]:
			return unionLeafCollision(cfg, merge, depth, at, bt)
		}
	case *branch[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			return unionBranchLeaf(cfg, merge, depth, at, bt)
		case *branch[K, V]:
			return unionBranchBranch(cfg, merge, depth, at, bt)
		case *collision[K, V]:
			return unionBranchCollision(cfg, merge, depth, at, bt)
		}
	case *collision[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			return unionCollisionLeaf(cfg, merge, depth, at, bt)
		case *branch[K, V]:
			return unionCollisionBranch(cfg, merge, depth, at, bt)
		case *collision[K, V]:
			return unionCollisionCollision(merge, depth, at, bt)
		}
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

func unionLeafBranch[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, l *leaf[K, V], br *branch[K, V]) (node[K, V], int) {
	s := slice(l.hash, depth)
	idx := br.bitmap.index(s)
	if !br.bitmap.has(s) {
		return insertChild(br, s, idx, l), 0
	}
	c2, isect := union(cfg, merge, depth+1, l, br.children[idx])
	if c2 == br.children[idx] {
		return br, isect
	}
	return replaceChild(br, idx, c2), isect
}

func unionBranchLeaf[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, br *branch[K, V], l *leaf[K, V]) (node[K, V], int) {
	s := slice(l.hash, depth)
	idx := br.bitmap.index(s)
	if !br.bitmap.has(s) {
		return insertChild(br, s, idx, l), 0
	}
	c2, isect := union(cfg, merge, depth+1, br.children[idx], l)
	if c2 == br.children[idx] {
		return br, isect
	}
	return replaceChild(br, idx, c2), isect
}

func unionBranchCollision[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, br *branch[K, V], c *collision[K, V]) (node[K, V], int) {
	s := slice(c.hash, depth)
	idx := br.bitmap.index(s)
	if !br.bitmap.has(s) {
		return insertChild(br, s, idx, c), 0
	}
	c2, isect := union(cfg, merge, depth+1, br.children[idx], c)
	if c2 == br.children[idx] {
		return br, isect
	}
	return replaceChild(br, idx, c2), isect
}

func unionCollisionBranch[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, c *collision[K, V], br *branch[K, V]) (node[K, V], int) {
	s := slice(c.hash, depth)
	idx := br.bitmap.index(s)
	if !br.bitmap.has(s) {
		return insertChild(br, s, idx, c), 0
	}
	c2, isect := union(cfg, merge, depth+1, c, br.children[idx])
	if c2 == br.children[idx] {
		return br, isect
	}
	return replaceChild(br, idx, c2), isect
}

// unionBranchBranch is the explicit common/onlyA/onlyB split of
// spec.md §4.B's "two-tree algorithm (union illustrated)".
func unionBranchBranch[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, a, b *branch[K, V]) (node[K, V], int) {
	resultBitmap := a.bitmap | b.bitmap
	children := make([]node[K, V], resultBitmap.count())
	isect := 0
	sameAsA := resultBitmap == a.bitmap
	slot, rem := byte(0), resultBitmap
	for rem != 0 {
		if rem.has(slot) {
			pos := resultBitmap.index(slot)
			switch {
			case a.bitmap.has(slot) && b.bitmap.has(slot):
				childA := a.children[a.bitmap.index(slot)]
				childB := b.children[b.bitmap.index(slot)]
				c2, n := union(cfg, merge, depth+1, childA, childB)
				isect += n
				children[pos] = c2
				if c2 != childA {
					sameAsA = false
				}
			case a.bitmap.has(slot):
				children[pos] = a.children[a.bitmap.index(slot)]
			default:
				children[pos] = b.children[b.bitmap.index(slot)]
				sameAsA = false
			}
			rem = rem.clear(slot)
		}
		slot++
	}
	if sameAsA {
		return a, isect
	}
	return &branch[K, V]{bitmap: resultBitmap, children: children}, isect
}

func unionLeafCollision[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, l *leaf[K, V], c *collision[K, V]) (node[K, V], int) {
	if l.hash&prefixMask != c.hash&prefixMask {
		return mergeDisjoint(depth, l.hash, c.hash, l, c), 0
	}
	had := c.bucket.Has(l.key)
	after := c.bucket.Alter(l.key, func(v V, ok bool) (V, AlterOp) {
		if ok {
			return merge(l.key, l.value, v), AlterSet
		}
		return l.value, AlterSet
	})
	isect := 0
	if had {
		isect = 1
	}
	return &collision[K, V]{hash: c.hash, bucket: after}, isect
}

func unionCollisionLeaf[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, c *collision[K, V], l *leaf[K, V]) (node[K, V], int) {
	if c.hash&prefixMask != l.hash&prefixMask {
		return mergeDisjoint(depth, c.hash, l.hash, c, l), 0
	}
	had := c.bucket.Has(l.key)
	after := c.bucket.Alter(l.key, func(v V, ok bool) (V, AlterOp) {
		if ok {
			return merge(l.key, v, l.value), AlterSet
		}
		return l.value, AlterSet
	})
	isect := 0
	if had {
		isect = 1
	}
	if after.SameRootAs(c.bucket) {
		return c, isect
	}
	return &collision[K, V]{hash: c.hash, bucket: after}, isect
}

func unionCollisionCollision[K, V any](merge func(K, V, V) V, depth int, a, b *collision[K, V]) (node[K, V], int) {
	if a.hash&prefixMask != b.hash&prefixMask {
		return mergeDisjoint(depth, a.hash, b.hash, a, b), 0
	}
	before := a.bucket
	after := before.Union(merge, b.bucket)
	isect := before.Size() + b.bucket.Size() - after.Size()
	if after.SameRootAs(before) {
		return a, isect
	}
	return &collision[K, V]{hash: a.hash, bucket: after}, isect
}

// intersection implements spec.md §4.B's intersection contract.
func intersection[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, a, b node[K, V]) (node[K, V], int) {
	if a == nil || b == nil {
		return nil, 0
	}
	if sameNode(a, b) {
		return a, count(a)
	}
	switch at := a.(type) {
	case *leaf[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			if at.hash == bt.hash && cfg.Equal(at.key, bt.key) {
				nv := merge(at.key, at.value, bt.value)
				if refeq.Unchanged(nv, at.value) {
					return at, 1
				}
				return &leaf[K, V]{hash: at.hash, key: at.key, value: nv}, 1
			}
			return nil, 0
		case *branch[K, V]:
			s := slice(at.hash, depth)
			if !bt.bitmap.has(s) {
				return nil, 0
			}
			return intersection(cfg, merge, depth+1, at, bt.children[bt.bitmap.index(s)])
		case *collision[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return nil, 0
			}
			v, ok := bt.bucket.Get(at.key)
			if !ok {
				return nil, 0
			}
			nv := merge(at.key, at.value, v)
			if refeq.Unchanged(nv, at.value) {
				return at, 1
			}
			return &leaf[K, V]{hash: at.hash, key: at.key, value: nv}, 1
		}
	case *branch[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			s := slice(bt.hash, depth)
			if !at.bitmap.has(s) {
				return nil, 0
			}
			return intersection(cfg, merge, depth+1, at.children[at.bitmap.index(s)], bt)
		case *branch[K, V]:
			return intersectionBranchBranch(cfg, merge, depth, at, bt)
		case *collision[K, V]:
			s := slice(bt.hash, depth)
			if !at.bitmap.has(s) {
				return nil, 0
			}
			return intersection(cfg, merge, depth+1, at.children[at.bitmap.index(s)], bt)
		}
	case *collision[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return nil, 0
			}
			v, ok := at.bucket.Get(bt.key)
			if !ok {
				return nil, 0
			}
			nv := merge(bt.key, v, bt.value)
			return &leaf[K, V]{hash: bt.hash, key: bt.key, value: nv}, 1
		case *branch[K, V]:
			s := slice(at.hash, depth)
			if !bt.bitmap.has(s) {
				return nil, 0
			}
			return intersection(cfg, merge, depth+1, at, bt.children[bt.bitmap.index(s)])
		case *collision[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return nil, 0
			}
			before := at.bucket
			after := before.Intersection(merge, bt.bucket)
			isect := after.Size()
			switch after.Size() {
			case 0:
				return nil, isect
			case 1:
				k2, v2, _ := after.At(0)
				return &leaf[K, V]{hash: cfg.Hash(k2), key: k2, value: v2}, isect
			default:
				if after.SameRootAs(before) {
					return at, isect
				}
				return &collision[K, V]{hash: at.hash, bucket: after}, isect
			}
		}
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

func intersectionBranchBranch[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, depth int, a, b *branch[K, V]) (node[K, V], int) {
	var children []node[K, V]
	var slots []byte
	isect := 0
	unchanged := true
	slot, rem := byte(0), a.bitmap
	for rem != 0 {
		if rem.has(slot) {
			idx := a.bitmap.index(slot)
			childA := a.children[idx]
			var c2 node[K, V]
			if b.bitmap.has(slot) {
				var n int
				c2, n = intersection(cfg, merge, depth+1, childA, b.children[b.bitmap.index(slot)])
				isect += n
			}
			if c2 != childA {
				unchanged = false
			}
			if c2 != nil {
				children = append(children, c2)
				slots = append(slots, slot)
			}
			rem = rem.clear(slot)
		}
		slot++
	}
	if unchanged && len(children) == len(a.children) {
		return a, isect
	}
	if len(children) == 0 {
		return nil, isect
	}
	if len(children) == 1 {
		if _, isBranch := children[0].(*branch[K, V]); !isBranch {
			return children[0], isect
		}
	}
	bm := bitmap32(0)
	for _, s := range slots {
		bm = bm.set(s)
	}
	return &branch[K, V]{bitmap: bm, children: children}, isect
}

// difference implements spec.md §4.B's difference contract: rootA
// filtered to drop every key also present in rootB.
func difference[K, V any](cfg keycap.HashConfig[K], depth int, a, b node[K, V]) (node[K, V], int) {
	if a == nil {
		return nil, 0
	}
	if b == nil {
		return a, 0
	}
	if sameNode(a, b) {
		return nil, count(a)
	}
	switch at := a.(type) {
	case *leaf[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			if at.hash == bt.hash && cfg.Equal(at.key, bt.key) {
				return nil, 1
			}
			return at, 0
		case *branch[K, V]:
			s := slice(at.hash, depth)
			if !bt.bitmap.has(s) {
				return at, 0
			}
			return difference(cfg, depth+1, at, bt.children[bt.bitmap.index(s)])
		case *collision[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return at, 0
			}
			if bt.bucket.Has(at.key) {
				return nil, 1
			}
			return at, 0
		}
	case *branch[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			s := slice(bt.hash, depth)
			if !at.bitmap.has(s) {
				return at, 0
			}
			idx := at.bitmap.index(s)
			c2, removed := difference(cfg, depth+1, at.children[idx], bt)
			if c2 == at.children[idx] {
				return at, removed
			}
			if c2 == nil {
				return removeChild(at, s, idx), removed
			}
			return replaceChild(at, idx, c2), removed
		case *branch[K, V]:
			return differenceBranchBranch(cfg, depth, at, bt)
		case *collision[K, V]:
			s := slice(bt.hash, depth)
			if !at.bitmap.has(s) {
				return at, 0
			}
			idx := at.bitmap.index(s)
			c2, removed := difference(cfg, depth+1, at.children[idx], bt)
			if c2 == at.children[idx] {
				return at, removed
			}
			if c2 == nil {
				return removeChild(at, s, idx), removed
			}
			return replaceChild(at, idx, c2), removed
		}
	case *collision[K, V]:
		switch bt := b.(type) {
		case *leaf[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return at, 0
			}
			if !at.bucket.Has(bt.key) {
				return at, 0
			}
			after := at.bucket.Delete(bt.key)
			if after.Size() == 1 {
				k2, v2, _ := after.At(0)
				return &leaf[K, V]{hash: cfg.Hash(k2), key: k2, value: v2}, 1
			}
			return &collision[K, V]{hash: at.hash, bucket: after}, 1
		case *branch[K, V]:
			s := slice(at.hash, depth)
			if !bt.bitmap.has(s) {
				return at, 0
			}
			return difference(cfg, depth+1, at, bt.children[bt.bitmap.index(s)])
		case *collision[K, V]:
			if at.hash&prefixMask != bt.hash&prefixMask {
				return at, 0
			}
			before := at.bucket
			after := before.Difference(bt.bucket)
			removed := before.Size() - after.Size()
			if after.SameRootAs(before) {
				return at, 0
			}
			switch after.Size() {
			case 0:
				return nil, removed
			case 1:
				k2, v2, _ := after.At(0)
				return &leaf[K, V]{hash: cfg.Hash(k2), key: k2, value: v2}, removed
			default:
				return &collision[K, V]{hash: at.hash, bucket: after}, removed
			}
		}
	}
	panic("immutable-collections: internal invariant violated: unknown HAMT node kind")
}

func differenceBranchBranch[K, V any](cfg keycap.HashConfig[K], depth int, a, b *branch[K, V]) (node[K, V], int) {
	var children []node[K, V]
	var slots []byte
	removed := 0
	unchanged := true
	slot, rem := byte(0), a.bitmap
	for rem != 0 {
		if rem.has(slot) {
			idx := a.bitmap.index(slot)
			childA := a.children[idx]
			c2 := childA
			if b.bitmap.has(slot) {
				var n int
				c2, n = difference(cfg, depth+1, childA, b.children[b.bitmap.index(slot)])
				removed += n
			}
			if c2 != childA {
				unchanged = false
			}
			if c2 != nil {
				children = append(children, c2)
				slots = append(slots, slot)
			}
			rem = rem.clear(slot)
		}
		slot++
	}
	if unchanged && len(children) == len(a.children) {
		return a, removed
	}
	if len(children) == 0 {
		return nil, removed
	}
	if len(children) == 1 {
		if _, isBranch := children[0].(*branch[K, V]); !isBranch {
			return children[0], removed
		}
	}
	bm := bitmap32(0)
	for _, s := range slots {
		bm = bm.set(s)
	}
	return &branch[K, V]{bitmap: bm, children: children}, removed
}

// adjust implements spec.md §4.B's adjust contract: for every key in
// rootHelper, f is given A's current value (if any) and the helper's
// value, and decides whether to keep, set, or delete. Implemented as
// one pass over the helper's entries rather than a joint structural
// descent (spec.md §10's open-question decision on symmetric
// difference is built on top of exactly this single pass).
func adjust[K, V, H any](cfg keycap.HashConfig[K], f func(k K, old V, found bool, helperVal H) (V, AlterOp), root node[K, V], helper node[K, H]) (node[K, V], int) {
	result := root
	delta := 0
	iterate(helper, func(k K, hv H) bool {
		h := cfg.Hash(k)
		child, d := alter(cfg, k, h, func(v V, found bool) (V, AlterOp) {
			return f(k, v, found, hv)
		}, result, 0)
		result = child
		delta += d
		return true
	})
	return result, delta
}
