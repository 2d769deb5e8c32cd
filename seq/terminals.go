package seq

import (
	"sort"

	"github.com/TomTonic/immutable-collections/hamt"
	"github.com/TomTonic/immutable-collections/keycap"
	"github.com/TomTonic/immutable-collections/wbt"
)

// FoldLeft drains s, threading acc through f.
func FoldLeft[T, A any](s Seq[T], zero A, f func(A, T) A) A {
	next := s.pull()
	acc := zero
	for {
		v, ok := next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// Head returns the first element, or ok=false if s is empty.
func Head[T any](s Seq[T]) (T, bool) { return s.pull()() }

// Find returns the first element satisfying pred.
func Find[T any](s Seq[T], pred func(T) bool) (T, bool) {
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			var zero T
			return zero, false
		}
		if pred(v) {
			return v, true
		}
	}
}

// Length drains s and counts its elements.
func Length[T any](s Seq[T]) int {
	return FoldLeft(s, 0, func(acc int, _ T) int { return acc + 1 })
}

// AllMatch reports whether every element satisfies pred (vacuously true on empty).
func AllMatch[T any](s Seq[T], pred func(T) bool) bool {
	_, failed := Find(s, func(v T) bool { return !pred(v) })
	return !failed
}

// AnyMatch reports whether at least one element satisfies pred.
func AnyMatch[T any](s Seq[T], pred func(T) bool) bool {
	_, ok := Find(s, pred)
	return ok
}

// MinBy returns the element with the smallest key(v).
func MinBy[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K) (T, bool) {
	return extremeBy(s, key, -1)
}

// MaxBy returns the element with the largest key(v).
func MaxBy[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K) (T, bool) {
	return extremeBy(s, key, 1)
}

func extremeBy[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K, want int) (T, bool) {
	next := s.pull()
	best, ok := next()
	if !ok {
		var zero T
		return zero, false
	}
	bestKey := key(best)
	for {
		v, ok := next()
		if !ok {
			return best, true
		}
		k := key(v)
		better := false
		switch {
		case k < bestKey:
			better = want < 0
		case k > bestKey:
			better = want > 0
		}
		if better {
			best, bestKey = v, k
		}
	}
}

// SumBy adds amount(v) over every element.
func SumBy[T any, N int | int64 | float64](s Seq[T], amount func(T) N) N {
	return FoldLeft(s, N(0), func(acc N, v T) N { return acc + amount(v) })
}

// ToArray drains s into a plain slice, preserving order.
func ToArray[T any](s Seq[T]) []T {
	var out []T
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ToSortedArray drains s into a slice sorted by cmp.
func ToSortedArray[T any](s Seq[T], cmp func(T, T) int) []T {
	out := ToArray(s)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// ToHashMap drains s, keying each element by keyExtract, last write wins.
func ToHashMap[T, K any](s Seq[T], cfg keycap.HashConfig[K], keyExtract func(T) K) hamt.Map[K, T] {
	return BuildHashMap(s, cfg, keyExtract, func(v T) T { return v })
}

// BuildHashMap drains s into a HAMT, deriving both key and value per element.
func BuildHashMap[T, K, V any](s Seq[T], cfg keycap.HashConfig[K], keyExtract func(T) K, valExtract func(T) V) hamt.Map[K, V] {
	m := hamt.Empty[K, V](cfg)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return m
		}
		m = m.Set(keyExtract(v), valExtract(v))
	}
}

// ToOrderedMap drains s, keying each element by keyExtract, last write wins.
func ToOrderedMap[T, K any](s Seq[T], cfg keycap.OrderedConfig[K], keyExtract func(T) K) wbt.Map[K, T] {
	return BuildOrderedMap(s, cfg, keyExtract, func(v T) T { return v })
}

// BuildOrderedMap drains s into a weight-balanced tree, deriving both key and value per element.
func BuildOrderedMap[T, K, V any](s Seq[T], cfg keycap.OrderedConfig[K], keyExtract func(T) K, valExtract func(T) V) wbt.Map[K, V] {
	m := wbt.Empty[K, V](cfg)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return m
		}
		m = m.Set(keyExtract(v), valExtract(v))
	}
}

// ToHashSet drains s into a HAMT keyed by the elements themselves, values unused.
func ToHashSet[T any](s Seq[T], cfg keycap.HashConfig[T]) hamt.Map[T, struct{}] {
	return BuildHashMap(s, cfg, func(v T) T { return v }, func(T) struct{} { return struct{}{} })
}

// ToOrderedSet drains s into a weight-balanced tree keyed by the elements themselves.
func ToOrderedSet[T any](s Seq[T], cfg keycap.OrderedConfig[T]) wbt.Map[T, struct{}] {
	return BuildOrderedMap(s, cfg, func(v T) T { return v }, func(T) struct{} { return struct{}{} })
}

// ToLookup groups s by key into a plain unordered multi-value map.
func ToLookup[T any, K comparable](s Seq[T], key func(T) K) map[K][]T {
	return GroupBy(s, key)
}

// ToOrderedLookup groups s by key into key-ascending groups.
func ToOrderedLookup[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K) []Group[K, T] {
	return OrderedGroupBy(s, key)
}

// ToLookupMap groups s by key into a HAMT of key to element slice.
func ToLookupMap[T, K any](s Seq[T], cfg keycap.HashConfig[K], key func(T) K) hamt.Map[K, []T] {
	m := hamt.Empty[K, []T](cfg)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return m
		}
		k := key(v)
		m = m.Alter(k, func(cur []T, found bool) ([]T, hamt.AlterOp) {
			return append(cur, v), hamt.AlterSet
		})
	}
}

// ToLookupOrderedMap groups s by key into a weight-balanced tree of key to element slice.
func ToLookupOrderedMap[T, K any](s Seq[T], cfg keycap.OrderedConfig[K], key func(T) K) wbt.Map[K, []T] {
	m := wbt.Empty[K, []T](cfg)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return m
		}
		k := key(v)
		m = m.Alter(k, func(cur []T, found bool) ([]T, wbt.AlterOp) {
			return append(cur, v), wbt.AlterSet
		})
	}
}

// ToObject drains s into a plain Go map, last write wins.
func ToObject[T any, K comparable, V any](s Seq[T], keyExtract func(T) K, valExtract func(T) V) map[K]V {
	out := make(map[K]V)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return out
		}
		out[keyExtract(v)] = valExtract(v)
	}
}

// Transform applies a whole-sequence combinator f to s, useful for
// slotting a user-defined pipeline stage into a chain of method calls.
func Transform[T, U any](s Seq[T], f func(Seq[T]) Seq[U]) Seq[U] { return f(s) }
