package wbt

import (
	"github.com/TomTonic/immutable-collections/internal/refeq"
	"github.com/TomTonic/immutable-collections/keycap"
)

// Comparator is the subset of keycap.OrderedConfig the engine needs;
// kept as its own type so engine functions don't import keycap directly
// for every call site.
type Comparator[K any] func(K, K) int

func FromConfig[K any](cfg keycap.OrderedConfig[K]) Comparator[K] { return cfg.Compare }

func lookup[K, V any](cmp Comparator[K], k K, n node[K, V]) (V, bool) {
	for n != nil {
		t := asTreeNode[K, V](n)
		c := cmp(k, t.key)
		switch {
		case c < 0:
			n = t.left
		case c > 0:
			n = t.right
		default:
			return t.value, true
		}
	}
	var zero V
	return zero, false
}

// AlterOp tags what alter should do with the value a callback produced,
// the "unchanged tag" spec.md §9 recommends in place of reference
// identity for value types with no natural notion of it.
type AlterOp int

const (
	AlterKeep AlterOp = iota
	AlterSet
	AlterDelete
)

// alter is the combined insert/modify/delete primitive of spec.md §4.C.
// f is called with the current value (and whether the key was present);
// AlterKeep returns n unchanged by reference, AlterSet installs the
// returned value, AlterDelete removes the key.
func alter[K, V any](cmp Comparator[K], k K, f func(V, bool) (V, AlterOp), n node[K, V]) node[K, V] {
	if n == nil {
		var zero V
		nv, op := f(zero, false)
		if op != AlterSet {
			return nil
		}
		return newNode(k, nv, nil, nil)
	}
	t := asTreeNode[K, V](n)
	c := cmp(k, t.key)
	switch {
	case c < 0:
		l2 := alter(cmp, k, f, t.left)
		if l2 == t.left {
			return n
		}
		return balanceL(t.key, t.value, l2, t.right)
	case c > 0:
		r2 := alter(cmp, k, f, t.right)
		if r2 == t.right {
			return n
		}
		return balanceR(t.key, t.value, t.left, r2)
	default:
		nv, op := f(t.value, true)
		switch op {
		case AlterKeep:
			return n
		case AlterDelete:
			return link2[K, V](t.left, t.right)
		default:
			if refeq.Unchanged(t.value, nv) {
				return n
			}
			return newNode(k, nv, t.left, t.right)
		}
	}
}

// minView pops the smallest entry off n in O(log n); ok is false when n
// is empty (spec.md §7's EmptyOnRequiredElement, surfaced here as an
// absent-value sentinel rather than a panic).
func minView[K, V any](n node[K, V]) (k K, v V, rest node[K, V], ok bool) {
	if n == nil {
		return k, v, nil, false
	}
	k, v, rest = deleteFindMin[K, V](n)
	return k, v, rest, true
}

func maxView[K, V any](n node[K, V]) (k K, v V, rest node[K, V], ok bool) {
	if n == nil {
		return k, v, nil, false
	}
	k, v, rest = deleteFindMax[K, V](n)
	return k, v, rest, true
}

func lookupMin[K, V any](n node[K, V]) (k K, v V, ok bool) {
	if n == nil {
		return k, v, false
	}
	t := asTreeNode[K, V](n)
	for t.left != nil {
		t = asTreeNode[K, V](t.left)
	}
	return t.key, t.value, true
}

func lookupMax[K, V any](n node[K, V]) (k K, v V, ok bool) {
	if n == nil {
		return k, v, false
	}
	t := asTreeNode[K, V](n)
	for t.right != nil {
		t = asTreeNode[K, V](t.right)
	}
	return t.key, t.value, true
}

func deleteMin[K, V any](n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	_, _, rest := deleteFindMin[K, V](n)
	return rest
}

func deleteMax[K, V any](n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	_, _, rest := deleteFindMax[K, V](n)
	return rest
}

// split partitions n around k in O(log n): below holds every key < k,
// above every key > k, and (present, found) report whether k itself was
// in n, per spec.md §4.C.
func split[K, V any](cmp Comparator[K], k K, n node[K, V]) (below node[K, V], present V, found bool, above node[K, V]) {
	if n == nil {
		return nil, present, false, nil
	}
	t := asTreeNode[K, V](n)
	c := cmp(k, t.key)
	switch {
	case c < 0:
		b, v, f, a := split[K, V](cmp, k, t.left)
		return b, v, f, link(t.key, t.value, a, t.right)
	case c > 0:
		b, v, f, a := split[K, V](cmp, k, t.right)
		return link(t.key, t.value, t.left, b), v, f, a
	default:
		return t.left, t.value, true, t.right
	}
}

// partition splits n in O(n) into the subtree of entries satisfying
// pred and the subtree of entries that don't, preserving
// reference-identity on whichever side is unaffected (spec.md §4.C).
func partition[K, V any](pred func(K, V) bool, n node[K, V]) (yes, no node[K, V]) {
	if n == nil {
		return nil, nil
	}
	t := asTreeNode[K, V](n)
	ly, ln := partition(pred, t.left)
	ry, rn := partition(pred, t.right)
	if pred(t.key, t.value) {
		if ly == t.left && ry == t.right {
			return n, link2[K, V](ln, rn)
		}
		return link(t.key, t.value, ly, ry), link2[K, V](ln, rn)
	}
	if ln == t.left && rn == t.right {
		return link2[K, V](ly, ry), n
	}
	return link2[K, V](ly, ry), link(t.key, t.value, ln, rn)
}

// mapValues rebuilds n with f applied to every value, returning n
// unchanged by reference if every produced value is unchanged
// (spec.md §4.C).
func mapValues[K, V any](f func(K, V) V, n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	t := asTreeNode[K, V](n)
	l2 := mapValues(f, t.left)
	r2 := mapValues(f, t.right)
	nv := f(t.key, t.value)
	if l2 == t.left && r2 == t.right && refeq.Unchanged(nv, t.value) {
		return n
	}
	return newNode(t.key, nv, l2, r2)
}

// collectValues rebuilds n, dropping any key whose f result reports
// keep=false, preserving reference identity when nothing changed.
func collectValues[K, V any](f func(K, V) (V, bool), n node[K, V]) node[K, V] {
	if n == nil {
		return nil
	}
	t := asTreeNode[K, V](n)
	l2 := collectValues(f, t.left)
	r2 := collectValues(f, t.right)
	nv, keep := f(t.key, t.value)
	if !keep {
		return link2[K, V](l2, r2)
	}
	if l2 == t.left && r2 == t.right && refeq.Unchanged(nv, t.value) {
		return n
	}
	return newNode(t.key, nv, l2, r2)
}

// rank returns the 0-based in-order position of k and whether it is
// present, using the cached subtree size at every node (O(log n)).
func rank[K, V any](cmp Comparator[K], k K, n node[K, V]) (int, bool) {
	idx := 0
	for n != nil {
		t := asTreeNode[K, V](n)
		c := cmp(k, t.key)
		switch {
		case c < 0:
			n = t.left
		case c > 0:
			idx += size[K, V](t.left) + 1
			n = t.right
		default:
			return idx + size[K, V](t.left), true
		}
	}
	return 0, false
}

// at returns the i'th smallest entry (0-based), using cached subtree
// sizes to descend directly to it in O(log n).
func at[K, V any](i int, n node[K, V]) (k K, v V, ok bool) {
	for n != nil {
		t := asTreeNode[K, V](n)
		ls := size[K, V](t.left)
		switch {
		case i < ls:
			n = t.left
		case i > ls:
			i -= ls + 1
			n = t.right
		default:
			return t.key, t.value, true
		}
	}
	return k, v, false
}

func fold[K, V, A any](f func(A, K, V) A, zero A, n node[K, V]) A {
	if n == nil {
		return zero
	}
	t := asTreeNode[K, V](n)
	acc := fold(f, zero, t.left)
	acc = f(acc, t.key, t.value)
	return fold(f, acc, t.right)
}
