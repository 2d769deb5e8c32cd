package immut

import (
	"iter"

	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/seq"
	"github.com/TomTonic/immutable-collections/wbt"
)

// OrderedMap is a persistent map keyed by K, iterating ascending or
// descending by key (spec.md §5: "iteration of an ordered container is
// ascending-by-key ... the descending variants yield the reverse").
type OrderedMap[K, V any] struct {
	m wbt.Map[K, any]
}

// EmptyOrderedMap returns an OrderedMap with no entries, ordered by cfg.
func EmptyOrderedMap[K, V any](cfg keycap.OrderedConfig[K]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: wbt.Empty[K, any](cfg)}
}

// FromOrderedMap builds an OrderedMap from entries, using merge to
// resolve duplicate keys. A nil merge keeps the last value seen.
func FromOrderedMap[K, V any](cfg keycap.OrderedConfig[K], merge func(K, V, V) V, entries ...Entry[K, V]) OrderedMap[K, V] {
	m := wbt.Empty[K, any](cfg)
	for _, e := range entries {
		m = m.Alter(e.Key, func(old any, found bool) (any, AlterOp) {
			if !found || merge == nil {
				return e.Value, AlterSet
			}
			return merge(e.Key, old.(V), e.Value), AlterSet
		})
	}
	return OrderedMap[K, V]{m: m}
}

// BuildOrderedMap builds an OrderedMap from arbitrary source elements,
// deriving the key and value of each with keyExtract/valExtract.
func BuildOrderedMap[T, K, V any](cfg keycap.OrderedConfig[K], items []T, keyExtract func(T) K, valExtract func(T) V) OrderedMap[K, V] {
	m := wbt.Empty[K, any](cfg)
	for _, it := range items {
		m = m.Set(keyExtract(it), valExtract(it))
	}
	return OrderedMap[K, V]{m: m}
}

func (m OrderedMap[K, V]) Size() int { return m.m.Size() }

func (m OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (m OrderedMap[K, V]) Has(k K) bool { return m.m.Has(k) }

func (m OrderedMap[K, V]) Set(k K, v V) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.Set(k, v)}
}

func (m OrderedMap[K, V]) Modify(k K, f func(V, bool) V) OrderedMap[K, V] {
	return m.Alter(k, func(old V, found bool) (V, AlterOp) { return f(old, found), AlterSet })
}

func (m OrderedMap[K, V]) Alter(k K, f func(V, bool) (V, AlterOp)) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.Alter(k, func(old any, found bool) (any, AlterOp) {
		var cur V
		if found {
			cur = old.(V)
		}
		nv, op := f(cur, found)
		return nv, op
	})}
}

func (m OrderedMap[K, V]) Delete(k K) OrderedMap[K, V] { return OrderedMap[K, V]{m: m.m.Delete(k)} }

// LookupMin returns the entry with the smallest key.
func (m OrderedMap[K, V]) LookupMin() (K, V, bool) {
	k, v, ok := m.m.LookupMin()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, v.(V), true
}

// LookupMax returns the entry with the largest key.
func (m OrderedMap[K, V]) LookupMax() (K, V, bool) {
	k, v, ok := m.m.LookupMax()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, v.(V), true
}

func (m OrderedMap[K, V]) DeleteMin() OrderedMap[K, V] { return OrderedMap[K, V]{m: m.m.DeleteMin()} }
func (m OrderedMap[K, V]) DeleteMax() OrderedMap[K, V] { return OrderedMap[K, V]{m: m.m.DeleteMax()} }

// MinView pops the smallest entry, returning it alongside the rest.
func (m OrderedMap[K, V]) MinView() (K, V, OrderedMap[K, V], bool) {
	k, v, rest, ok := m.m.MinView()
	if !ok {
		var zero V
		return k, zero, m, false
	}
	return k, v.(V), OrderedMap[K, V]{m: rest}, true
}

// MaxView pops the largest entry, returning it alongside the rest.
func (m OrderedMap[K, V]) MaxView() (K, V, OrderedMap[K, V], bool) {
	k, v, rest, ok := m.m.MaxView()
	if !ok {
		var zero V
		return k, zero, m, false
	}
	return k, v.(V), OrderedMap[K, V]{m: rest}, true
}

// Split divides m at k into entries below k, the entry at k (if any),
// and entries above k, in O(log n).
func (m OrderedMap[K, V]) Split(k K) (below OrderedMap[K, V], present V, found bool, above OrderedMap[K, V]) {
	b, v, f, a := m.m.Split(k)
	if f {
		present = v.(V)
	}
	return OrderedMap[K, V]{m: b}, present, f, OrderedMap[K, V]{m: a}
}

// ForEach calls f for every entry in ascending key order; f returning
// false stops iteration.
func (m OrderedMap[K, V]) ForEach(f func(K, V) bool) {
	m.m.IterateAsc(func(k K, v any) bool { return f(k, v.(V)) })
}

// ForEachDesc calls f for every entry in descending key order.
func (m OrderedMap[K, V]) ForEachDesc(f func(K, V) bool) {
	m.m.IterateDesc(func(k K, v any) bool { return f(k, v.(V)) })
}

// All adapts ForEach (ascending) to Go 1.23+ range-over-func iteration.
func (m OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.ForEach(yield) }
}

// ToAscLazySeq returns a true incremental (non-materializing) lazy
// sequence of m's entries in ascending key order, backed by wbt's
// resumable Cursor (spec.md §4.C's explicit-stack iterator).
func (m OrderedMap[K, V]) ToAscLazySeq() seq.Seq[Entry[K, V]] {
	root := m.m
	return seq.OfIterator(func() func() (Entry[K, V], bool) {
		c := wbt.NewAscCursor(root)
		return func() (Entry[K, V], bool) {
			k, v, ok := c.Next()
			if !ok {
				var zero Entry[K, V]
				return zero, false
			}
			return Entry[K, V]{Key: k, Value: v.(V)}, true
		}
	})
}

// ToDescLazySeq is ToAscLazySeq's descending mirror.
func (m OrderedMap[K, V]) ToDescLazySeq() seq.Seq[Entry[K, V]] {
	root := m.m
	return seq.OfIterator(func() func() (Entry[K, V], bool) {
		c := wbt.NewDescCursor(root)
		return func() (Entry[K, V], bool) {
			k, v, ok := c.Next()
			if !ok {
				var zero Entry[K, V]
				return zero, false
			}
			return Entry[K, V]{Key: k, Value: v.(V)}, true
		}
	})
}

// ToLazySeq is an alias for ToAscLazySeq, the default ordering.
func (m OrderedMap[K, V]) ToLazySeq() seq.Seq[Entry[K, V]] { return m.ToAscLazySeq() }

func (m OrderedMap[K, V]) Union(merge func(K, V, V) V, o OrderedMap[K, V]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.Union(func(k K, a, b any) any { return merge(k, a.(V), b.(V)) }, o.m)}
}

func (m OrderedMap[K, V]) Intersection(merge func(K, V, V) V, o OrderedMap[K, V]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.Intersection(func(k K, a, b any) any { return merge(k, a.(V), b.(V)) }, o.m)}
}

func (m OrderedMap[K, V]) Difference(o OrderedMap[K, V]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.Difference(o.m)}
}

func (m OrderedMap[K, V]) SymmetricDifference(o OrderedMap[K, V]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.SymmetricDifference(o.m)}
}

// WithoutKeys removes every key in keys from m.
func (m OrderedMap[K, V]) WithoutKeys(keys ...K) OrderedMap[K, V] {
	r := m.m
	for _, k := range keys {
		r = r.Delete(k)
	}
	return OrderedMap[K, V]{m: r}
}

// Append bulk-inserts entries, last write wins on duplicate keys.
func (m OrderedMap[K, V]) Append(entries ...Entry[K, V]) OrderedMap[K, V] {
	r := m.m
	for _, e := range entries {
		r = r.Set(e.Key, e.Value)
	}
	return OrderedMap[K, V]{m: r}
}

func (m OrderedMap[K, V]) Filter(pred func(K, V) bool) OrderedMap[K, V] {
	return m.CollectValues(func(k K, v V) (V, bool) { return v, pred(k, v) })
}

func (m OrderedMap[K, V]) MapValues(f func(K, V) V) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.MapValues(func(k K, v any) any { return f(k, v.(V)) })}
}

func (m OrderedMap[K, V]) CollectValues(f func(K, V) (V, bool)) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: m.m.CollectValues(func(k K, v any) (any, bool) { return f(k, v.(V)) })}
}

// Partition splits m by pred in O(n), using the wbt engine's own
// partition traversal (spec.md §4.C) rather than two filter passes.
func (m OrderedMap[K, V]) Partition(pred func(K, V) bool) (yes, no OrderedMap[K, V]) {
	y, n := m.m.Partition(func(k K, v any) bool { return pred(k, v.(V)) })
	return OrderedMap[K, V]{m: y}, OrderedMap[K, V]{m: n}
}

// AdjustOrdered applies f to every key present in helper, merging the
// result into m.
func AdjustOrdered[K, V, H any](f func(K, V, bool, H) (V, AlterOp), m OrderedMap[K, V], helper OrderedMap[K, H]) OrderedMap[K, V] {
	return OrderedMap[K, V]{m: wbt.Adjust(func(k K, old any, found bool, hv any) (any, AlterOp) {
		var cur V
		if found {
			cur = old.(V)
		}
		nv, op := f(k, cur, found, hv.(H))
		return nv, op
	}, m.m, helper.m)}
}

// KeySet returns the keys of m as an OrderedSet sharing m's root in O(1).
func (m OrderedMap[K, V]) KeySet() OrderedSet[K] { return OrderedSet[K]{m: m.m} }

func (m OrderedMap[K, V]) Config() keycap.OrderedConfig[K] { return m.m.Config() }

// UnionAllOrdered folds Union left-to-right over maps.
func UnionAllOrdered[K, V any](merge func(K, V, V) V, maps ...OrderedMap[K, V]) OrderedMap[K, V] {
	var acc OrderedMap[K, V]
	started := false
	for _, m := range maps {
		if m.Size() == 0 {
			continue
		}
		if !started {
			acc, started = m, true
			continue
		}
		acc = acc.Union(merge, m)
	}
	return acc
}

// IntersectionAllOrdered folds Intersection left-to-right over maps.
func IntersectionAllOrdered[K, V any](merge func(K, V, V) V, maps ...OrderedMap[K, V]) OrderedMap[K, V] {
	if len(maps) == 0 {
		var zero OrderedMap[K, V]
		return zero
	}
	acc := maps[0]
	for _, m := range maps[1:] {
		acc = acc.Intersection(merge, m)
	}
	return acc
}

// FoldOrdered reduces every entry of m into a single accumulator in
// ascending key order.
func FoldOrdered[K, V, A any](m OrderedMap[K, V], zero A, f func(A, K, V) A) A {
	acc := zero
	m.ForEach(func(k K, v V) bool { acc = f(acc, k, v); return true })
	return acc
}
