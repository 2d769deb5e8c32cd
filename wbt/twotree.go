package wbt

import "github.com/TomTonic/immutable-collections/internal/refeq"

// union implements the hedge-union algorithm of spec.md §4.C: pick a's
// root as pivot, split b around it, recurse into the two halves, then
// link the pivot back in (merged with b's value if b also had the key).
// Complexity O(m*log(n/m)). Returns a by reference when b contributed
// nothing new or different under any node of a.
func union[K, V any](cmp Comparator[K], merge func(K, V, V) V, a, b node[K, V]) node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if sameNode[K, V](a, b) {
		return a
	}
	at := asTreeNode[K, V](a)
	belowB, presentB, found, aboveB := split[K, V](cmp, at.key, b)
	l := union(cmp, merge, at.left, belowB)
	r := union(cmp, merge, at.right, aboveB)
	v := at.value
	if found {
		v = merge(at.key, at.value, presentB)
	}
	if l == at.left && r == at.right && (!found || refeq.Unchanged(v, at.value)) {
		return a
	}
	return link(at.key, v, l, r)
}

// intersection implements spec.md §4.C's symmetric split-based
// intersection: split b by a's pivot, keep the pivot only if b also had
// it, link2 away the recursive results when it's dropped.
func intersection[K, V any](cmp Comparator[K], merge func(K, V, V) V, a, b node[K, V]) node[K, V] {
	if a == nil || b == nil {
		return nil
	}
	if sameNode[K, V](a, b) {
		return a
	}
	at := asTreeNode[K, V](a)
	belowB, presentB, found, aboveB := split[K, V](cmp, at.key, b)
	l := intersection(cmp, merge, at.left, belowB)
	r := intersection(cmp, merge, at.right, aboveB)
	if !found {
		return link2[K, V](l, r)
	}
	v := merge(at.key, at.value, presentB)
	if l == at.left && r == at.right && refeq.Unchanged(v, at.value) {
		return a
	}
	return link(at.key, v, l, r)
}

// difference implements spec.md §4.C's split-based difference: split a
// by b's pivot, drop the pivot, link2 the recursive results. Difference
// never introduces or modifies a value, so callers can cheaply recover
// the reference-equality short-circuit contract by comparing sizes
// before and after (wired in at the Map wrapper, per spec.md §9's open
// question on which engine threads an explicit size/intersection
// counter: wbt recomputes from cached subtree sizes rather than
// threading a counter through the recursion).
func difference[K, V any](cmp Comparator[K], a, b node[K, V]) node[K, V] {
	if a == nil {
		return nil
	}
	if b == nil {
		return a
	}
	if sameNode[K, V](a, b) {
		return nil
	}
	bt := asTreeNode[K, V](b)
	belowA, _, _, aboveA := split[K, V](cmp, bt.key, a)
	l := difference[K, V](cmp, belowA, bt.left)
	r := difference[K, V](cmp, aboveA, bt.right)
	return link2[K, V](l, r)
}

// adjust implements the joint pass of spec.md §4.C: for every key in
// helper, f is given A's current value for that key (if any) and
// helper's value, and decides whether to keep, set, or delete it. Keys
// of a that are absent from helper are left untouched.
func adjust[K, V, H any](cmp Comparator[K], f func(k K, old V, found bool, helperVal H) (V, AlterOp), a node[K, V], helper node[K, H]) node[K, V] {
	if helper == nil {
		return a
	}
	ht := asTreeNode[K, H](helper)
	var belowA, aboveA node[K, V]
	var presentA V
	var found bool
	if a == nil {
		belowA, aboveA = nil, nil
	} else {
		belowA, presentA, found, aboveA = split[K, V](cmp, ht.key, a)
	}
	l := adjust(cmp, f, belowA, ht.left)
	r := adjust(cmp, f, aboveA, ht.right)
	var oldV V
	if found {
		oldV = presentA
	}
	nv, op := f(ht.key, oldV, found, ht.value)
	switch op {
	case AlterDelete:
		return link2[K, V](l, r)
	case AlterSet:
		return link(ht.key, nv, l, r)
	default:
		if found {
			return link(ht.key, presentA, l, r)
		}
		return link2[K, V](l, r)
	}
}

func sameNode[K, V any](a, b node[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}
