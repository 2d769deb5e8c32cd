// Package seq implements the pull-based lazy sequence pipeline of
// spec.md §4.E: a single-use iterable with combinators, restartable
// only by re-creating it from its originating factory. Seq[T] is a
// thin wrapper around a puller function, in the teacher's
// non-generic-iterator style, with a Std method adapting it to Go
// 1.23+'s iter.Seq for range-over-func callers — the same push/pull
// bridge the pmmap example exposes via All/Keys/Values
// (_examples/other_examples/826bb59b_BarrensZeppelin-pmmap__tree.go.go).
package seq

import "iter"

// puller returns the next element and true, or the zero value and
// false once exhausted. Pullers are stateful and single-use; Seq wraps
// a factory that produces a fresh puller so the sequence can be
// restarted from OfIterator.
type puller[T any] func() (T, bool)

// Seq is a lazy, pull-based sequence of T, restartable only via
// OfIterator's factory (spec.md §4.E's "Contract").
type Seq[T any] struct {
	factory func() puller[T]
}

// OfIterator builds a restartable Seq from a factory that produces a
// fresh puller on every call.
func OfIterator[T any](factory func() puller[T]) Seq[T] {
	return Seq[T]{factory: factory}
}

// Of builds a restartable Seq over a fixed slice of values.
func Of[T any](values []T) Seq[T] {
	return OfIterator(func() puller[T] {
		i := 0
		return func() (T, bool) {
			if i >= len(values) {
				var zero T
				return zero, false
			}
			v := values[i]
			i++
			return v, true
		}
	})
}

// Empty returns a Seq with no elements.
func Empty[T any]() Seq[T] { return Of[T](nil) }

func (s Seq[T]) pull() puller[T] { return s.factory() }

// Std adapts s to Go's range-over-func iterator protocol.
func (s Seq[T]) Std() iter.Seq[T] {
	return func(yield func(T) bool) {
		next := s.pull()
		for {
			v, ok := next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
