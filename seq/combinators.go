package seq

import "sort"

// Map applies f lazily to every element.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return OfIterator(func() puller[U] {
		next := s.pull()
		return func() (U, bool) {
			v, ok := next()
			if !ok {
				var zero U
				return zero, false
			}
			return f(v), true
		}
	})
}

// Filter keeps only elements satisfying pred.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		return func() (T, bool) {
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
	})
}

// Collect is filter+map fused: f returns (mapped value, keep).
func Collect[T, U any](s Seq[T], f func(T) (U, bool)) Seq[U] {
	return OfIterator(func() puller[U] {
		next := s.pull()
		return func() (U, bool) {
			for {
				v, ok := next()
				if !ok {
					var zero U
					return zero, false
				}
				if u, keep := f(v); keep {
					return u, true
				}
			}
		}
	})
}

// FlatMap maps each element to a sub-sequence and concatenates them.
func FlatMap[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	return OfIterator(func() puller[U] {
		next := s.pull()
		var cur puller[U]
		return func() (U, bool) {
			for {
				if cur != nil {
					if v, ok := cur(); ok {
						return v, true
					}
					cur = nil
				}
				v, ok := next()
				if !ok {
					var zero U
					return zero, false
				}
				cur = f(v).pull()
			}
		}
	})
}

// Take yields at most n elements.
func Take[T any](s Seq[T], n int) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		count := 0
		return func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		}
	})
}

// Drop skips the first n elements.
func Drop[T any](s Seq[T], n int) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		skipped := 0
		return func() (T, bool) {
			for skipped < n {
				if _, ok := next(); !ok {
					var zero T
					return zero, false
				}
				skipped++
			}
			return next()
		}
	})
}

// TakeWhile yields elements while pred holds, stopping at the first failure.
func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		done := false
		return func() (T, bool) {
			if done {
				var zero T
				return zero, false
			}
			v, ok := next()
			if !ok || !pred(v) {
				done = true
				var zero T
				return zero, false
			}
			return v, true
		}
	})
}

// DropWhile skips elements while pred holds, then yields the rest.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		dropping := true
		return func() (T, bool) {
			for dropping {
				v, ok := next()
				if !ok {
					var zero T
					return zero, false
				}
				if !pred(v) {
					dropping = false
					return v, true
				}
			}
			return next()
		}
	})
}

// Chunk groups elements into fixed-size slices; the final chunk may be shorter.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	return OfIterator(func() puller[[]T] {
		next := s.pull()
		return func() ([]T, bool) {
			chunk := make([]T, 0, size)
			for len(chunk) < size {
				v, ok := next()
				if !ok {
					break
				}
				chunk = append(chunk, v)
			}
			if len(chunk) == 0 {
				return nil, false
			}
			return chunk, true
		}
	})
}

// Concat yields every element of a, then every element of b.
func Concat[T any](a, b Seq[T]) Seq[T] {
	return OfIterator(func() puller[T] {
		nextA := a.pull()
		nextB := b.pull()
		onA := true
		return func() (T, bool) {
			if onA {
				if v, ok := nextA(); ok {
					return v, true
				}
				onA = false
			}
			return nextB()
		}
	})
}

// Append yields s's elements followed by tail.
func Append[T any](s Seq[T], tail ...T) Seq[T] { return Concat(s, Of(tail)) }

// Prepend yields head followed by s's elements.
func Prepend[T any](s Seq[T], head ...T) Seq[T] { return Concat(Of(head), s) }

// Zip pairs up elements of a and b, stopping at the shorter sequence.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return OfIterator(func() puller[Pair[A, B]] {
		nextA := a.pull()
		nextB := b.pull()
		return func() (Pair[A, B], bool) {
			va, oka := nextA()
			vb, okb := nextB()
			if !oka || !okb {
				return Pair[A, B]{}, false
			}
			return Pair[A, B]{First: va, Second: vb}, true
		}
	})
}

// Pair is a simple two-element tuple, used by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Distinct drops elements equal (by ==) to one already yielded.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy drops elements whose key (by ==) has already been yielded.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return OfIterator(func() puller[T] {
		next := s.pull()
		seen := make(map[K]struct{})
		return func() (T, bool) {
			for {
				v, ok := next()
				if !ok {
					var zero T
					return zero, false
				}
				k := key(v)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				return v, true
			}
		}
	})
}

// SortBy materializes s and returns it sorted ascending by key(v).
func SortBy[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K) Seq[T] {
	return SortWith(s, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// SortWith materializes s and returns it sorted by cmp.
func SortWith[T any](s Seq[T], cmp func(T, T) int) Seq[T] {
	arr := ToArray(s)
	sort.SliceStable(arr, func(i, j int) bool { return cmp(arr[i], arr[j]) < 0 })
	return Of(arr)
}

// GroupBy materializes s into a plain map of key to elements, with no
// guaranteed iteration order over groups; see OrderedGroupBy for a
// key-ordered variant.
func GroupBy[T any, K comparable](s Seq[T], key func(T) K) map[K][]T {
	out := make(map[K][]T)
	next := s.pull()
	for {
		v, ok := next()
		if !ok {
			return out
		}
		k := key(v)
		out[k] = append(out[k], v)
	}
}

// OrderedGroupBy groups s by key, returning groups in ascending key order.
func OrderedGroupBy[T any, K int | int64 | float64 | string](s Seq[T], key func(T) K) []Group[K, T] {
	groups := GroupBy(s, key)
	keys := make([]K, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]Group[K, T], len(keys))
	for i, k := range keys {
		out[i] = Group[K, T]{Key: k, Values: groups[k]}
	}
	return out
}

// Group pairs a key with the elements OrderedGroupBy collected for it.
type Group[K, T any] struct {
	Key    K
	Values []T
}

// Aggregate is a stateful scan: it folds zero across every element,
// yielding the running accumulator after each step.
func Aggregate[T, A any](s Seq[T], zero A, f func(A, T) A) Seq[A] {
	return OfIterator(func() puller[A] {
		next := s.pull()
		acc := zero
		return func() (A, bool) {
			v, ok := next()
			if !ok {
				var z A
				return z, false
			}
			acc = f(acc, v)
			return acc, true
		}
	})
}
