package hamt

import "github.com/TomTonic/immutable-collections/keycap"

// Map is the engine-level persistent hash map: a HAMT root plus the
// hash configuration it was built with and a cached size (spec.md
// §3.4: "Size is cached because HAMT nodes don't carry it"). The root
// immut package wraps Map behind the public HashMap/HashSet façade.
type Map[K, V any] struct {
	cfg  keycap.HashConfig[K]
	root node[K, V]
	size int
}

func Empty[K, V any](cfg keycap.HashConfig[K]) Map[K, V] {
	return Map[K, V]{cfg: cfg}
}

func (m Map[K, V]) Size() int { return m.size }

func (m Map[K, V]) Get(k K) (V, bool) { return lookup(m.cfg, k, m.cfg.Hash(k), m.root) }

func (m Map[K, V]) Has(k K) bool {
	_, ok := lookup(m.cfg, k, m.cfg.Hash(k), m.root)
	return ok
}

func (m Map[K, V]) Alter(k K, f func(V, bool) (V, AlterOp)) Map[K, V] {
	root2, delta := alter(m.cfg, k, m.cfg.Hash(k), f, m.root, 0)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size + delta}
}

func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	return m.Alter(k, func(V, bool) (V, AlterOp) { return v, AlterSet })
}

func (m Map[K, V]) Delete(k K) Map[K, V] {
	return m.Alter(k, func(V, bool) (V, AlterOp) { return *new(V), AlterDelete })
}

func (m Map[K, V]) Fold(zero V, f func(V, K, V) V) V { return fold(f, zero, m.root) }

func (m Map[K, V]) Iterate(yield func(K, V) bool) { iterate(m.root, yield) }

func (m Map[K, V]) MapValues(f func(K, V) V) Map[K, V] {
	root2 := mapValues(f, m.root)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size}
}

func (m Map[K, V]) CollectValues(f func(K, V) (V, bool)) Map[K, V] {
	root2 := collectValues(f, m.root)
	if root2 == m.root {
		return m
	}
	n := 0
	iterate(root2, func(K, V) bool { n++; return true })
	return Map[K, V]{cfg: m.cfg, root: root2, size: n}
}

// Union merges o into m, resolving collisions with merge and returning
// m by reference when o contributes nothing new (spec.md §4.B).
func (m Map[K, V]) Union(merge func(K, V, V) V, o Map[K, V]) Map[K, V] {
	root2, isect := union(m.cfg, merge, 0, m.root, o.root)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size + o.size - isect}
}

func (m Map[K, V]) Intersection(merge func(K, V, V) V, o Map[K, V]) Map[K, V] {
	root2, isect := intersection(m.cfg, merge, 0, m.root, o.root)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: isect}
}

func (m Map[K, V]) Difference(o Map[K, V]) Map[K, V] {
	root2, removed := difference(m.cfg, 0, m.root, o.root)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size - removed}
}

// SymmetricDifference is implemented with one adjust pass and an
// XOR-style callback (spec.md §10's open-question decision): keys
// present in both are deleted, keys present only in o are inserted.
func (m Map[K, V]) SymmetricDifference(o Map[K, V]) Map[K, V] {
	root2, delta := adjust(m.cfg, func(k K, old V, found bool, helperVal V) (V, AlterOp) {
		if found {
			return old, AlterDelete
		}
		return helperVal, AlterSet
	}, m.root, o.root)
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size + delta}
}

// Adjust applies f to every key present in helper, merging it into m.
func Adjust[K, V, H any](f func(K, V, bool, H) (V, AlterOp), m Map[K, V], helper Map[K, H]) Map[K, V] {
	root2, delta := adjust(m.cfg, f, m.root, helper.root)
	if root2 == m.root {
		return m
	}
	return Map[K, V]{cfg: m.cfg, root: root2, size: m.size + delta}
}

func (m Map[K, V]) Config() keycap.HashConfig[K] { return m.cfg }

// SameRootAs reports whether m and o share the exact same root object.
func (m Map[K, V]) SameRootAs(o Map[K, V]) bool { return m.root == o.root }
