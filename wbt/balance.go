package wbt

// delta and gamma are the weight-balanced tree parameters from
// spec.md §3.3: delta controls when a rotation is required, gamma
// controls whether a single or double rotation restores balance.
const (
	delta = 3
	gamma = 2
)

// balanceL and balanceR are the smart constructors of spec.md §4.C:
// each assumes l and r are themselves individually balanced and that
// the pair is imbalanced by at most one insertion/deletion on the named
// side. Both are realized by the same general rebalance routine, which
// is correct for any relative imbalance (not only single-step), at the
// cost of a redundant size comparison in the common single-step case.
func balanceL[K, V any](k K, v V, l, r node[K, V]) node[K, V] {
	return balance(k, v, l, r)
}

func balanceR[K, V any](k K, v V, l, r node[K, V]) node[K, V] {
	return balance(k, v, l, r)
}

func balance[K, V any](k K, v V, l, r node[K, V]) node[K, V] {
	sl, sr := size[K, V](l), size[K, V](r)
	if sl+sr <= 1 {
		return newNode(k, v, l, r)
	}
	if sr > delta*sl {
		rn := asTreeNode[K, V](r)
		if size[K, V](rn.left) < gamma*size[K, V](rn.right) {
			return singleLeft(k, v, l, rn)
		}
		return doubleLeft(k, v, l, rn)
	}
	if sl > delta*sr {
		ln := asTreeNode[K, V](l)
		if size[K, V](ln.right) < gamma*size[K, V](ln.left) {
			return singleRight(k, v, ln, r)
		}
		return doubleRight(k, v, ln, r)
	}
	return newNode(k, v, l, r)
}

func singleLeft[K, V any](k K, v V, l node[K, V], r *treeNode[K, V]) node[K, V] {
	return newNode(r.key, r.value, newNode(k, v, l, r.left), r.right)
}

func singleRight[K, V any](k K, v V, l *treeNode[K, V], r node[K, V]) node[K, V] {
	return newNode(l.key, l.value, l.left, newNode(k, v, l.right, r))
}

func doubleLeft[K, V any](k K, v V, l node[K, V], r *treeNode[K, V]) node[K, V] {
	rl := asTreeNode[K, V](r.left)
	return newNode(rl.key, rl.value, newNode(k, v, l, rl.left), newNode(r.key, r.value, rl.right, r.right))
}

func doubleRight[K, V any](k K, v V, l *treeNode[K, V], r node[K, V]) node[K, V] {
	lr := asTreeNode[K, V](l.right)
	return newNode(lr.key, lr.value, newNode(l.key, l.value, l.left, lr.left), newNode(k, v, lr.right, r))
}

// link builds a balanced subtree out of a pivot (k, v) and two trees
// that may differ in size by an arbitrary amount, in O(log n) by
// descending along whichever side is too heavy and rebalancing on the
// way back up (spec.md §4.C). When one side is empty the pivot is
// simply inserted at that extreme end.
func link[K, V any](k K, v V, l, r node[K, V]) node[K, V] {
	if l == nil {
		return insertMin(k, v, r)
	}
	if r == nil {
		return insertMax(k, v, l)
	}
	ln, rn := asTreeNode[K, V](l), asTreeNode[K, V](r)
	if delta*ln.size < rn.size {
		return balanceL(rn.key, rn.value, link(k, v, l, rn.left), rn.right)
	}
	if delta*rn.size < ln.size {
		return balanceR(ln.key, ln.value, ln.left, link(k, v, ln.right, r))
	}
	return newNode(k, v, l, r)
}

func insertMin[K, V any](k K, v V, n node[K, V]) node[K, V] {
	if n == nil {
		return newNode(k, v, nil, nil)
	}
	t := asTreeNode[K, V](n)
	return balanceL(t.key, t.value, insertMin(k, v, t.left), t.right)
}

func insertMax[K, V any](k K, v V, n node[K, V]) node[K, V] {
	if n == nil {
		return newNode(k, v, nil, nil)
	}
	t := asTreeNode[K, V](n)
	return balanceR(t.key, t.value, t.left, insertMax(k, v, t.right))
}

// link2 concatenates two trees whose elements are known to be entirely
// separated by a missing pivot (spec.md §4.C), lifting the extremal
// element of whichever side is large enough to require rebalancing, or
// of the larger side directly once the two are close enough in size
// (glue).
func link2[K, V any](l, r node[K, V]) node[K, V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	ln, rn := asTreeNode[K, V](l), asTreeNode[K, V](r)
	if delta*ln.size < rn.size {
		return balanceL(rn.key, rn.value, link2[K, V](l, rn.left), rn.right)
	}
	if delta*rn.size < ln.size {
		return balanceR(ln.key, ln.value, ln.left, link2[K, V](ln.right, r))
	}
	return glue[K, V](l, r)
}

func glue[K, V any](l, r node[K, V]) node[K, V] {
	ln, rn := asTreeNode[K, V](l), asTreeNode[K, V](r)
	if ln.size > rn.size {
		k, v, l2 := deleteFindMax[K, V](l)
		return balanceR(k, v, l2, r)
	}
	k, v, r2 := deleteFindMin[K, V](r)
	return balanceL(k, v, l, r2)
}

func deleteFindMax[K, V any](n node[K, V]) (K, V, node[K, V]) {
	t := asTreeNode[K, V](n)
	if t.right == nil {
		return t.key, t.value, t.left
	}
	k, v, r2 := deleteFindMax[K, V](t.right)
	return k, v, balanceL(t.key, t.value, t.left, r2)
}

func deleteFindMin[K, V any](n node[K, V]) (K, V, node[K, V]) {
	t := asTreeNode[K, V](n)
	if t.left == nil {
		return t.key, t.value, t.right
	}
	k, v, l2 := deleteFindMin[K, V](t.left)
	return k, v, balanceR(t.key, t.value, l2, t.right)
}
