package immut

import (
	"iter"

	set3 "github.com/TomTonic/Set3"
	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/seq"
	"github.com/TomTonic/immutable-collections/wbt"
)

// OrderedSet is a persistent set keyed by K, iterating ascending or
// descending by key, sharing its representation with
// OrderedMap[K, any] so OrderedMap.KeySet() is O(1).
type OrderedSet[K any] struct {
	m wbt.Map[K, any]
}

// EmptyOrderedSet returns an OrderedSet with no elements, ordered by cfg.
func EmptyOrderedSet[K any](cfg keycap.OrderedConfig[K]) OrderedSet[K] {
	return OrderedSet[K]{m: wbt.Empty[K, any](cfg)}
}

// FromOrderedSet builds an OrderedSet from a fixed list of elements.
func FromOrderedSet[K any](cfg keycap.OrderedConfig[K], elems ...K) OrderedSet[K] {
	m := wbt.Empty[K, any](cfg)
	for _, k := range elems {
		m = m.Set(k, unit{})
	}
	return OrderedSet[K]{m: m}
}

// BuildOrderedSet builds an OrderedSet from arbitrary source elements.
func BuildOrderedSet[T, K any](cfg keycap.OrderedConfig[K], items []T, keyExtract func(T) K) OrderedSet[K] {
	m := wbt.Empty[K, any](cfg)
	for _, it := range items {
		m = m.Set(keyExtract(it), unit{})
	}
	return OrderedSet[K]{m: m}
}

func (s OrderedSet[K]) Size() int         { return s.m.Size() }
func (s OrderedSet[K]) Contains(k K) bool { return s.m.Has(k) }

func (s OrderedSet[K]) Add(k K) OrderedSet[K]    { return OrderedSet[K]{m: s.m.Set(k, unit{})} }
func (s OrderedSet[K]) Remove(k K) OrderedSet[K] { return OrderedSet[K]{m: s.m.Delete(k)} }

// LookupMin returns the smallest element.
func (s OrderedSet[K]) LookupMin() (K, bool) {
	k, _, ok := s.m.LookupMin()
	return k, ok
}

// LookupMax returns the largest element.
func (s OrderedSet[K]) LookupMax() (K, bool) {
	k, _, ok := s.m.LookupMax()
	return k, ok
}

func (s OrderedSet[K]) DeleteMin() OrderedSet[K] { return OrderedSet[K]{m: s.m.DeleteMin()} }
func (s OrderedSet[K]) DeleteMax() OrderedSet[K] { return OrderedSet[K]{m: s.m.DeleteMax()} }

// MinView pops the smallest element, returning it alongside the rest.
func (s OrderedSet[K]) MinView() (K, OrderedSet[K], bool) {
	k, _, rest, ok := s.m.MinView()
	return k, OrderedSet[K]{m: rest}, ok
}

// MaxView pops the largest element, returning it alongside the rest.
func (s OrderedSet[K]) MaxView() (K, OrderedSet[K], bool) {
	k, _, rest, ok := s.m.MaxView()
	return k, OrderedSet[K]{m: rest}, ok
}

// Split divides s at k into elements below k, whether k itself is
// present, and elements above k.
func (s OrderedSet[K]) Split(k K) (below OrderedSet[K], found bool, above OrderedSet[K]) {
	b, _, f, a := s.m.Split(k)
	return OrderedSet[K]{m: b}, f, OrderedSet[K]{m: a}
}

func (s OrderedSet[K]) ForEach(f func(K) bool) {
	s.m.IterateAsc(func(k K, _ any) bool { return f(k) })
}

func (s OrderedSet[K]) ForEachDesc(f func(K) bool) {
	s.m.IterateDesc(func(k K, _ any) bool { return f(k) })
}

func (s OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) { s.ForEach(yield) }
}

// ToAscLazySeq returns a true incremental lazy sequence of s's elements
// in ascending order, backed by wbt's resumable Cursor.
func (s OrderedSet[K]) ToAscLazySeq() seq.Seq[K] {
	root := s.m
	return seq.OfIterator(func() func() (K, bool) {
		c := wbt.NewAscCursor(root)
		return func() (K, bool) {
			k, _, ok := c.Next()
			return k, ok
		}
	})
}

// ToDescLazySeq is ToAscLazySeq's descending mirror.
func (s OrderedSet[K]) ToDescLazySeq() seq.Seq[K] {
	root := s.m
	return seq.OfIterator(func() func() (K, bool) {
		c := wbt.NewDescCursor(root)
		return func() (K, bool) {
			k, _, ok := c.Next()
			return k, ok
		}
	})
}

func (s OrderedSet[K]) ToLazySeq() seq.Seq[K] { return s.ToAscLazySeq() }

func (s OrderedSet[K]) Union(o OrderedSet[K]) OrderedSet[K] {
	return OrderedSet[K]{m: s.m.Union(func(K, any, any) any { return unit{} }, o.m)}
}

func (s OrderedSet[K]) Intersection(o OrderedSet[K]) OrderedSet[K] {
	return OrderedSet[K]{m: s.m.Intersection(func(K, any, any) any { return unit{} }, o.m)}
}

func (s OrderedSet[K]) Difference(o OrderedSet[K]) OrderedSet[K] {
	return OrderedSet[K]{m: s.m.Difference(o.m)}
}

func (s OrderedSet[K]) SymmetricDifference(o OrderedSet[K]) OrderedSet[K] {
	return OrderedSet[K]{m: s.m.SymmetricDifference(o.m)}
}

func (s OrderedSet[K]) Filter(pred func(K) bool) OrderedSet[K] {
	return OrderedSet[K]{m: s.m.CollectValues(func(k K, v any) (any, bool) { return v, pred(k) })}
}

func (s OrderedSet[K]) Partition(pred func(K) bool) (yes, no OrderedSet[K]) {
	y, n := s.m.Partition(func(k K, _ any) bool { return pred(k) })
	return OrderedSet[K]{m: y}, OrderedSet[K]{m: n}
}

func (s OrderedSet[K]) IsSubsetOf(o OrderedSet[K]) bool {
	ok := true
	s.ForEach(func(k K) bool {
		if !o.Contains(k) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func (s OrderedSet[K]) IsSupersetOf(o OrderedSet[K]) bool { return o.IsSubsetOf(s) }

func (s OrderedSet[K]) IsDisjointFrom(o OrderedSet[K]) bool {
	disjoint := true
	s.ForEach(func(k K) bool {
		if o.Contains(k) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}

// ToSet3 exports s's elements into a mutable github.com/TomTonic/Set3.
func (s OrderedSet[K]) ToSet3() *set3.Set3[K] {
	out := set3.EmptyWithCapacity[K](uint32(s.Size()))
	s.ForEach(func(k K) bool { out.Add(k); return true })
	return out
}

func (s OrderedSet[K]) Config() keycap.OrderedConfig[K] { return s.m.Config() }

// UnionAllOrderedSets folds Union left-to-right over sets.
func UnionAllOrderedSets[K any](sets ...OrderedSet[K]) OrderedSet[K] {
	var acc OrderedSet[K]
	started := false
	for _, s := range sets {
		if s.Size() == 0 {
			continue
		}
		if !started {
			acc, started = s, true
			continue
		}
		acc = acc.Union(s)
	}
	return acc
}

// IntersectionAllOrderedSets folds Intersection left-to-right over sets.
func IntersectionAllOrderedSets[K any](sets ...OrderedSet[K]) OrderedSet[K] {
	if len(sets) == 0 {
		var zero OrderedSet[K]
		return zero
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = acc.Intersection(s)
	}
	return acc
}
