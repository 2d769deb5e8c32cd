package wbt

import "github.com/TomTonic/immutable-collections/keycap"

// Map is the engine-level persistent ordered map: a weight-balanced
// tree paired with the comparator it was built with. The root immut
// package wraps Map behind the public OrderedMap/OrderedSet façade;
// Map itself stays unexported-root but otherwise ready to embed.
type Map[K, V any] struct {
	cfg  keycap.OrderedConfig[K]
	root node[K, V]
}

func Empty[K, V any](cfg keycap.OrderedConfig[K]) Map[K, V] {
	return Map[K, V]{cfg: cfg}
}

func (m Map[K, V]) cmp() Comparator[K] { return m.cfg.Compare }

func (m Map[K, V]) Size() int { return size[K, V](m.root) }

func (m Map[K, V]) Get(k K) (V, bool) { return lookup[K, V](m.cmp(), k, m.root) }

func (m Map[K, V]) Has(k K) bool {
	_, ok := lookup[K, V](m.cmp(), k, m.root)
	return ok
}

func (m Map[K, V]) Alter(k K, f func(V, bool) (V, AlterOp)) Map[K, V] {
	return Map[K, V]{cfg: m.cfg, root: alter(m.cmp(), k, f, m.root)}
}

func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	return m.Alter(k, func(V, bool) (V, AlterOp) { return v, AlterSet })
}

func (m Map[K, V]) Delete(k K) Map[K, V] {
	return m.Alter(k, func(V, bool) (V, AlterOp) { return *new(V), AlterDelete })
}

func (m Map[K, V]) LookupMin() (K, V, bool) { return lookupMin[K, V](m.root) }
func (m Map[K, V]) LookupMax() (K, V, bool) { return lookupMax[K, V](m.root) }

func (m Map[K, V]) MinView() (K, V, Map[K, V], bool) {
	k, v, rest, ok := minView[K, V](m.root)
	return k, v, Map[K, V]{cfg: m.cfg, root: rest}, ok
}

func (m Map[K, V]) MaxView() (K, V, Map[K, V], bool) {
	k, v, rest, ok := maxView[K, V](m.root)
	return k, v, Map[K, V]{cfg: m.cfg, root: rest}, ok
}

func (m Map[K, V]) DeleteMin() Map[K, V] { return Map[K, V]{cfg: m.cfg, root: deleteMin[K, V](m.root)} }
func (m Map[K, V]) DeleteMax() Map[K, V] { return Map[K, V]{cfg: m.cfg, root: deleteMax[K, V](m.root)} }

func (m Map[K, V]) Split(k K) (below Map[K, V], present V, found bool, above Map[K, V]) {
	b, v, f, a := split[K, V](m.cmp(), k, m.root)
	return Map[K, V]{cfg: m.cfg, root: b}, v, f, Map[K, V]{cfg: m.cfg, root: a}
}

func (m Map[K, V]) Partition(pred func(K, V) bool) (yes, no Map[K, V]) {
	y, n := partition(pred, m.root)
	return Map[K, V]{cfg: m.cfg, root: y}, Map[K, V]{cfg: m.cfg, root: n}
}

func (m Map[K, V]) MapValues(f func(K, V) V) Map[K, V] {
	return Map[K, V]{cfg: m.cfg, root: mapValues(f, m.root)}
}

func (m Map[K, V]) CollectValues(f func(K, V) (V, bool)) Map[K, V] {
	return Map[K, V]{cfg: m.cfg, root: collectValues(f, m.root)}
}

func (m Map[K, V]) Rank(k K) (int, bool) { return rank[K, V](m.cmp(), k, m.root) }
func (m Map[K, V]) At(i int) (K, V, bool) { return at[K, V](i, m.root) }

func (m Map[K, V]) Fold(zero V, f func(V, K, V) V) V { return fold(f, zero, m.root) }

func (m Map[K, V]) IterateAsc(yield func(K, V) bool)  { iterateAsc(m.root, yield) }
func (m Map[K, V]) IterateDesc(yield func(K, V) bool) { iterateDesc(m.root, yield) }

// Union merges o into m, resolving collisions with merge and returning
// m by reference when o contributes nothing new (spec.md §4.C).
func (m Map[K, V]) Union(merge func(K, V, V) V, o Map[K, V]) Map[K, V] {
	r := union(m.cmp(), merge, m.root, o.root)
	if r == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: r}
}

func (m Map[K, V]) Intersection(merge func(K, V, V) V, o Map[K, V]) Map[K, V] {
	r := intersection(m.cmp(), merge, m.root, o.root)
	if r == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: r}
}

// Difference removes every key of o from m. Difference can only shrink
// m, so a post-hoc size comparison recovers the reference-equality
// short-circuit without threading extra state through the recursion
// (see twotree.go's difference doc comment).
func (m Map[K, V]) Difference(o Map[K, V]) Map[K, V] {
	r := difference[K, V](m.cmp(), m.root, o.root)
	if size[K, V](r) == m.Size() {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: r}
}

// SymmetricDifference is built from two differences and a union, per
// spec.md §10's decision to reserve the single-pass adjust-based
// approach for the HAMT engine (see hamt's symmetric-difference note)
// and keep the wbt engine's composition simple and obviously correct.
func (m Map[K, V]) SymmetricDifference(o Map[K, V]) Map[K, V] {
	onlyM := difference[K, V](m.cmp(), m.root, o.root)
	onlyO := difference[K, V](m.cmp(), o.root, m.root)
	r := union(m.cmp(), func(k K, a, b V) V { return a }, onlyM, onlyO)
	return Map[K, V]{cfg: m.cfg, root: r}
}

// Adjust applies f to every key present in helper, merging it into m
// (see twotree.go's adjust doc comment).
func Adjust[K, V, H any](f func(K, V, bool, H) (V, AlterOp), m Map[K, V], helper Map[K, H]) Map[K, V] {
	return Map[K, V]{cfg: m.cfg, root: adjust(m.cmp(), f, m.root, helper.root)}
}

func (m Map[K, V]) Config() keycap.OrderedConfig[K] { return m.cfg }

// SameRootAs reports whether m and o share the exact same root object,
// the reference-equality primitive callers outside this package need
// (e.g. hamt's Collision bucket) since root itself is unexported.
func (m Map[K, V]) SameRootAs(o Map[K, V]) bool { return m.root == o.root }
