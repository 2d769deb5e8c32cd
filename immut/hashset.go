package immut

import (
	"iter"

	set3 "github.com/TomTonic/Set3"
	"github.com/TomTonic/immutable-collections/hamt"
	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/seq"
)

// unit is the sentinel value HashSet/OrderedSet store so the same
// engine tree serves as both a map and a set (spec.md §3.4).
type unit = struct{}

// HashSet is a persistent set keyed by K, sharing its representation
// with HashMap[K, any] so that HashMap.KeySet() is O(1) (immut's
// package doc comment).
type HashSet[K any] struct {
	m hamt.Map[K, any]
}

// EmptyHashSet returns a HashSet with no elements.
func EmptyHashSet[K any](cfg keycap.HashConfig[K]) HashSet[K] {
	return HashSet[K]{m: hamt.Empty[K, any](cfg)}
}

// FromHashSet builds a HashSet from a fixed list of elements.
func FromHashSet[K any](cfg keycap.HashConfig[K], elems ...K) HashSet[K] {
	m := hamt.Empty[K, any](cfg)
	for _, k := range elems {
		m = m.Set(k, unit{})
	}
	return HashSet[K]{m: m}
}

// BuildHashSet builds a HashSet from arbitrary source elements, keyed
// by keyExtract.
func BuildHashSet[T, K any](cfg keycap.HashConfig[K], items []T, keyExtract func(T) K) HashSet[K] {
	m := hamt.Empty[K, any](cfg)
	for _, it := range items {
		m = m.Set(keyExtract(it), unit{})
	}
	return HashSet[K]{m: m}
}

func (s HashSet[K]) Size() int       { return s.m.Size() }
func (s HashSet[K]) Contains(k K) bool { return s.m.Has(k) }

// Add inserts k, returning s unchanged if k is already present.
func (s HashSet[K]) Add(k K) HashSet[K] { return HashSet[K]{m: s.m.Set(k, unit{})} }

// Remove deletes k, returning s unchanged if k was absent.
func (s HashSet[K]) Remove(k K) HashSet[K] { return HashSet[K]{m: s.m.Delete(k)} }

// ForEach calls f for every element; f returning false stops iteration.
func (s HashSet[K]) ForEach(f func(K) bool) {
	s.m.Iterate(func(k K, _ any) bool { return f(k) })
}

// All adapts ForEach to Go 1.23+ range-over-func iteration.
func (s HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) { s.ForEach(yield) }
}

// ToLazySeq returns a restartable lazy sequence of s's elements (see
// HashMap.ToLazySeq's doc comment on the materialized-snapshot tradeoff).
func (s HashSet[K]) ToLazySeq() seq.Seq[K] {
	var elems []K
	s.ForEach(func(k K) bool { elems = append(elems, k); return true })
	return seq.Of(elems)
}

// Union merges o into s.
func (s HashSet[K]) Union(o HashSet[K]) HashSet[K] {
	return HashSet[K]{m: s.m.Union(func(K, any, any) any { return unit{} }, o.m)}
}

// Intersection keeps only elements present in both s and o.
func (s HashSet[K]) Intersection(o HashSet[K]) HashSet[K] {
	return HashSet[K]{m: s.m.Intersection(func(K, any, any) any { return unit{} }, o.m)}
}

// Difference removes every element of o from s.
func (s HashSet[K]) Difference(o HashSet[K]) HashSet[K] {
	return HashSet[K]{m: s.m.Difference(o.m)}
}

// SymmetricDifference keeps only elements unique to one side.
func (s HashSet[K]) SymmetricDifference(o HashSet[K]) HashSet[K] {
	return HashSet[K]{m: s.m.SymmetricDifference(o.m)}
}

// Filter keeps only elements satisfying pred.
func (s HashSet[K]) Filter(pred func(K) bool) HashSet[K] {
	return HashSet[K]{m: s.m.CollectValues(func(k K, v any) (any, bool) { return v, pred(k) })}
}

// Partition splits s into elements satisfying pred and elements that don't.
func (s HashSet[K]) Partition(pred func(K) bool) (yes, no HashSet[K]) {
	return s.Filter(pred), s.Filter(func(k K) bool { return !pred(k) })
}

// IsSubsetOf reports whether every element of s is also in o.
func (s HashSet[K]) IsSubsetOf(o HashSet[K]) bool {
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

// IsSupersetOf reports whether every element of o is also in s.
func (s HashSet[K]) IsSupersetOf(o HashSet[K]) bool { return o.IsSubsetOf(s) }

// IsDisjointFrom reports whether s and o share no elements.
func (s HashSet[K]) IsDisjointFrom(o HashSet[K]) bool {
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

// ToSet3 exports s's elements into a mutable github.com/TomTonic/Set3,
// for callers that need Set3's mutable bulk-membership operations once
// they're done with persistence.
func (s HashSet[K]) ToSet3() *set3.Set3[K] {
	out := set3.EmptyWithCapacity[K](uint32(s.Size()))
	s.ForEach(func(k K) bool { out.Add(k); return true })
	return out
}

func (s HashSet[K]) Config() keycap.HashConfig[K] { return s.m.Config() }

// UnionAllSets folds Union left-to-right over sets.
func UnionAllSets[K any](sets ...HashSet[K]) HashSet[K] {
	var acc HashSet[K]
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

// IntersectionAllSets folds Intersection left-to-right over sets.
func IntersectionAllSets[K any](sets ...HashSet[K]) HashSet[K] {
	if len(sets) == 0 {
		var zero HashSet[K]
		return zero
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = acc.Intersection(s)
	}
	return acc
}
