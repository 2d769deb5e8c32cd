package keycap

import "sync/atomic"

// Specializer implements the one-shot runtime specialization described
// in spec.md §4.A/§5: a dynamically-keyed container has no compile-time
// K, so on its first insertion it must pick a capability appropriate to
// the key's runtime category and stick with it. The store is an
// idempotent compare-and-swap: if two callers race to specialize the
// same empty container, both compute the same capability for the same
// category, so either winning store is correct (spec.md §5).
type Specializer[T any] struct {
	v atomic.Pointer[T]
}

// Get returns the specialized value and true, or the zero value and
// false if specialization has not happened yet.
func (s *Specializer[T]) Get() (T, bool) {
	p := s.v.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Specialize idempotently installs value as the specialized capability
// if none has been installed yet, returning the value now in effect
// (which may be a different, concurrently-installed value for the same
// category).
func (s *Specializer[T]) Specialize(value T) T {
	for {
		if existing, ok := s.Get(); ok {
			return existing
		}
		if s.v.CompareAndSwap(nil, &value) {
			return value
		}
	}
}

// Category is the runtime key category a dynamically-keyed container
// can specialize to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryString
	CategoryInt
	CategoryUint
	CategoryBool
	CategoryTime
	CategoryUserSupplied
)

// DetectCategory inspects v and reports its built-in key category, or
// CategoryUnknown if v's runtime type has no built-in HashConfig/
// OrderedConfig and the caller must supply one explicitly
// (immuterr.ErrKeyCategoryMismatch, spec.md §7).
func DetectCategory(v any) Category {
	switch v.(type) {
	case string:
		return CategoryString
	case int, int8, int16, int32, int64:
		return CategoryInt
	case uint, uint8, uint16, uint32, uint64:
		return CategoryUint
	case bool:
		return CategoryBool
	default:
		if _, ok := v.(interface{ UnixNano() int64 }); ok {
			return CategoryTime
		}
		return CategoryUnknown
	}
}
