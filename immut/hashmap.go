package immut

import (
	"iter"

	"github.com/TomTonic/immutable-collections/hamt"
	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/seq"
)

// HashMap is a persistent hash map keyed by K, unspecified-but-stable
// iteration order for a given root (spec.md §5).
type HashMap[K, V any] struct {
	m hamt.Map[K, any]
}

// EmptyHashMap returns a HashMap with no entries, configured with cfg.
func EmptyHashMap[K, V any](cfg keycap.HashConfig[K]) HashMap[K, V] {
	return HashMap[K, V]{m: hamt.Empty[K, any](cfg)}
}

// FromHashMap builds a HashMap from entries, using merge to resolve
// duplicate keys (first-seen value first, then the newly-seen value).
// A nil merge keeps the last value seen, mirroring repeated Set calls.
func FromHashMap[K, V any](cfg keycap.HashConfig[K], merge func(K, V, V) V, entries ...Entry[K, V]) HashMap[K, V] {
	m := hamt.Empty[K, any](cfg)
	for _, e := range entries {
		m = m.Alter(e.Key, func(old any, found bool) (any, AlterOp) {
			if !found || merge == nil {
				return e.Value, AlterSet
			}
			return merge(e.Key, old.(V), e.Value), AlterSet
		})
	}
	return HashMap[K, V]{m: m}
}

// BuildHashMap builds a HashMap from arbitrary source elements,
// deriving the key and value of each with keyExtract/valExtract.
func BuildHashMap[T, K, V any](cfg keycap.HashConfig[K], items []T, keyExtract func(T) K, valExtract func(T) V) HashMap[K, V] {
	m := hamt.Empty[K, any](cfg)
	for _, it := range items {
		k, v := keyExtract(it), valExtract(it)
		m = m.Set(k, v)
	}
	return HashMap[K, V]{m: m}
}

func (m HashMap[K, V]) Size() int { return m.m.Size() }

func (m HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m.Get(k)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (m HashMap[K, V]) Has(k K) bool { return m.m.Has(k) }

// Set installs k -> v, returning m unchanged if v is already installed.
func (m HashMap[K, V]) Set(k K, v V) HashMap[K, V] { return HashMap[K, V]{m: m.m.Set(k, v)} }

// Modify applies f to the current value (or the zero value if absent),
// installing the result.
func (m HashMap[K, V]) Modify(k K, f func(V, bool) V) HashMap[K, V] {
	return m.Alter(k, func(old V, found bool) (V, AlterOp) { return f(old, found), AlterSet })
}

// Alter is the general single-key mutation primitive: f decides
// whether to keep, set, or delete the entry at k.
func (m HashMap[K, V]) Alter(k K, f func(V, bool) (V, AlterOp)) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.Alter(k, func(old any, found bool) (any, AlterOp) {
		var cur V
		if found {
			cur = old.(V)
		}
		nv, op := f(cur, found)
		return nv, op
	})}
}

func (m HashMap[K, V]) Delete(k K) HashMap[K, V] { return HashMap[K, V]{m: m.m.Delete(k)} }

// ForEach calls f for every entry; f returning false stops iteration.
func (m HashMap[K, V]) ForEach(f func(K, V) bool) {
	m.m.Iterate(func(k K, v any) bool { return f(k, v.(V)) })
}

// All adapts ForEach to Go 1.23+ range-over-func iteration.
func (m HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.ForEach(yield) }
}

// Keys iterates only the keys.
func (m HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) { m.ForEach(func(k K, _ V) bool { return yield(k) }) }
}

// Values iterates only the values.
func (m HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) { m.ForEach(func(_ K, v V) bool { return yield(v) }) }
}

// ToLazySeq returns a restartable lazy sequence of m's entries, in the
// same unspecified-but-stable order as ForEach. The HAMT engine only
// exposes a push-based Iterate (spec.md §4.B has no resumable-cursor
// requirement for hash containers, unlike wbt's explicit-stack
// iterateAsc/Desc, §4.C), so the sequence is backed by a materialized
// snapshot rather than a true incremental pull — still correct and
// still restartable, just not lazy over the underlying tree walk.
func (m HashMap[K, V]) ToLazySeq() seq.Seq[Entry[K, V]] {
	var entries []Entry[K, V]
	m.ForEach(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return seq.Of(entries)
}

// Union merges o into m, resolving shared keys with merge.
func (m HashMap[K, V]) Union(merge func(K, V, V) V, o HashMap[K, V]) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.Union(func(k K, a, b any) any { return merge(k, a.(V), b.(V)) }, o.m)}
}

// Intersection keeps only keys present in both m and o.
func (m HashMap[K, V]) Intersection(merge func(K, V, V) V, o HashMap[K, V]) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.Intersection(func(k K, a, b any) any { return merge(k, a.(V), b.(V)) }, o.m)}
}

// Difference removes every key of o from m; o's values are ignored.
func (m HashMap[K, V]) Difference(o HashMap[K, V]) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.Difference(o.m)}
}

// SymmetricDifference keeps only keys unique to one side.
func (m HashMap[K, V]) SymmetricDifference(o HashMap[K, V]) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.SymmetricDifference(o.m)}
}

// WithoutKeys removes every key in keys from m.
func (m HashMap[K, V]) WithoutKeys(keys ...K) HashMap[K, V] {
	r := m.m
	for _, k := range keys {
		r = r.Delete(k)
	}
	if r.SameRootAs(m.m) {
		return m
	}
	return HashMap[K, V]{m: r}
}

// Append bulk-inserts entries, last write wins on duplicate keys.
func (m HashMap[K, V]) Append(entries ...Entry[K, V]) HashMap[K, V] {
	r := m.m
	for _, e := range entries {
		r = r.Set(e.Key, e.Value)
	}
	return HashMap[K, V]{m: r}
}

// Filter keeps only entries satisfying pred.
func (m HashMap[K, V]) Filter(pred func(K, V) bool) HashMap[K, V] {
	return m.CollectValues(func(k K, v V) (V, bool) { return v, pred(k, v) })
}

// MapValues rebuilds every value with f, preserving keys.
func (m HashMap[K, V]) MapValues(f func(K, V) V) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.MapValues(func(k K, v any) any { return f(k, v.(V)) })}
}

// CollectValues is filter+mapValues fused: f returns (new value, keep).
func (m HashMap[K, V]) CollectValues(f func(K, V) (V, bool)) HashMap[K, V] {
	return HashMap[K, V]{m: m.m.CollectValues(func(k K, v any) (any, bool) { return f(k, v.(V)) })}
}

// Partition splits m into entries satisfying pred and entries that
// don't. The HAMT engine has no dedicated partition traversal (unlike
// wbt's, spec.md §4.C), so this façade builds both halves from two
// CollectValues passes rather than one joint descent.
func (m HashMap[K, V]) Partition(pred func(K, V) bool) (yes, no HashMap[K, V]) {
	return m.Filter(pred), m.Filter(func(k K, v V) bool { return !pred(k, v) })
}

// Adjust applies f to every key present in helper, merging the result
// into m. f receives m's current value (or the zero value) and found,
// plus helper's value for that key.
func Adjust[K, V, H any](f func(K, V, bool, H) (V, AlterOp), m HashMap[K, V], helper HashMap[K, H]) HashMap[K, V] {
	return HashMap[K, V]{m: hamt.Adjust(func(k K, old any, found bool, hv any) (any, AlterOp) {
		var cur V
		if found {
			cur = old.(V)
		}
		nv, op := f(k, cur, found, hv.(H))
		return nv, op
	}, m.m, helper.m)}
}

// KeySet returns the keys of m as a HashSet sharing m's root in O(1);
// mutating the returned set never affects m, since every mutation
// produces a fresh root (spec.md §4.D).
func (m HashMap[K, V]) KeySet() HashSet[K] { return HashSet[K]{m: m.m} }

// Config returns the HashConfig m was built with.
func (m HashMap[K, V]) Config() keycap.HashConfig[K] { return m.m.Config() }

// UnionAll folds Union left-to-right over maps, skipping empties and
// returning the first non-empty input unchanged if no merge was needed.
func UnionAll[K, V any](merge func(K, V, V) V, maps ...HashMap[K, V]) HashMap[K, V] {
	var acc HashMap[K, V]
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

// IntersectionAll folds Intersection left-to-right over maps.
func IntersectionAll[K, V any](merge func(K, V, V) V, maps ...HashMap[K, V]) HashMap[K, V] {
	if len(maps) == 0 {
		var zero HashMap[K, V]
		return zero
	}
	acc := maps[0]
	for _, m := range maps[1:] {
		acc = acc.Intersection(merge, m)
	}
	return acc
}

// Fold reduces every entry of m into a single accumulator, in
// unspecified but stable order. A package-level function, not a
// method, because Go methods cannot introduce their own type
// parameter (the accumulator type A) beyond the receiver's K, V.
func Fold[K, V, A any](m HashMap[K, V], zero A, f func(A, K, V) A) A {
	acc := zero
	m.ForEach(func(k K, v V) bool { acc = f(acc, k, v); return true })
	return acc
}
