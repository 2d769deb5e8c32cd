package keycap

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderedConfig describes the capability a key type K must provide to be
// usable in a weight-balanced-tree container: a total order returning
// negative/zero/positive, mirroring Go's cmp.Compare convention.
type OrderedConfig[K any] struct {
	Compare func(K, K) int
}

// defaultCollator is package-level so every string-keyed OrderedConfig
// shares one compiled collation table instead of rebuilding it per
// container, the same "build once, reuse" posture the teacher applies
// to its package-level norm.NFC singleton (key.go).
var defaultCollator = collate.New(language.Und)

// StringOrderedConfig returns the built-in OrderedConfig for string keys
// using locale-aware collation for the default (root) locale, per
// spec.md §4.A ("strings compare by locale-aware comparison").
func StringOrderedConfig() OrderedConfig[string] {
	return OrderedConfig[string]{Compare: defaultCollator.CompareString}
}

// StringOrderedConfigForLocale returns a locale-specific string
// OrderedConfig, e.g. StringOrderedConfigForLocale(language.German) for
// German collation rules.
func StringOrderedConfigForLocale(tag language.Tag) OrderedConfig[string] {
	c := collate.New(tag)
	return OrderedConfig[string]{Compare: c.CompareString}
}

// IntOrderedConfig returns the built-in OrderedConfig for any signed
// integer key type.
func IntOrderedConfig[K int | int8 | int16 | int32 | int64]() OrderedConfig[K] {
	return OrderedConfig[K]{
		Compare: func(a, b K) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		},
	}
}

// UintOrderedConfig returns the built-in OrderedConfig for any unsigned
// integer key type.
func UintOrderedConfig[K uint | uint8 | uint16 | uint32 | uint64]() OrderedConfig[K] {
	return OrderedConfig[K]{
		Compare: func(a, b K) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		},
	}
}

// BoolOrderedConfig returns the built-in OrderedConfig for bool keys
// (false < true).
func BoolOrderedConfig() OrderedConfig[bool] {
	return OrderedConfig[bool]{
		Compare: func(a, b bool) int {
			if a == b {
				return 0
			}
			if !a && b {
				return -1
			}
			return 1
		},
	}
}

// TimeOrderedConfig returns the built-in OrderedConfig for time.Time
// keys, ordered chronologically.
func TimeOrderedConfig() OrderedConfig[time.Time] {
	return OrderedConfig[time.Time]{
		Compare: func(a, b time.Time) int {
			switch {
			case a.Before(b):
				return -1
			case a.After(b):
				return 1
			default:
				return 0
			}
		},
	}
}

// FieldSpec describes one key in a compose-multiple-properties
// comparator: extract a sortable projection of K, then order ascending
// or descending with the stated null placement.
type FieldSpec[K, F any] struct {
	Extract    func(K) F
	Compare    func(F, F) int
	Descending bool
	// IsNull reports whether the extracted field should be treated as
	// null for the purposes of nulls-first/nulls-last placement. May be
	// nil if F is never null for this field.
	IsNull func(F) bool
}

// Ascending builds a FieldSpec that sorts by Extract/Compare in
// ascending order, nulls last.
func Ascending[K, F any](extract func(K) F, compare func(F, F) int) FieldSpec[K, F] {
	return FieldSpec[K, F]{Extract: extract, Compare: compare, Descending: false}
}

// Descending builds a FieldSpec that sorts by Extract/Compare in
// descending order, nulls first.
func Descending[K, F any](extract func(K) F, compare func(F, F) int) FieldSpec[K, F] {
	return FieldSpec[K, F]{Extract: extract, Compare: compare, Descending: true}
}

// WithNullCheck attaches a null predicate to a FieldSpec, activating
// nulls-last (ascending) / nulls-first (descending) placement for that
// field, per spec.md §4.A.
func (f FieldSpec[K, F]) WithNullCheck(isNull func(F) bool) FieldSpec[K, F] {
	f.IsNull = isNull
	return f
}

func (f FieldSpec[K, F]) compareKeys(a, b K) int {
	fa, fb := f.Extract(a), f.Extract(b)
	var aNull, bNull bool
	if f.IsNull != nil {
		aNull, bNull = f.IsNull(fa), f.IsNull(fb)
	}
	if aNull || bNull {
		if aNull && bNull {
			return 0
		}
		// nulls-last ascending, nulls-first descending
		if aNull {
			if f.Descending {
				return -1
			}
			return 1
		}
		if f.Descending {
			return 1
		}
		return -1
	}
	c := f.Compare(fa, fb)
	if f.Descending {
		return -c
	}
	return c
}

// anyFieldSpec erases the field type F so ComposeOrdered can hold a
// heterogeneous list of specs for a single key type K.
type anyFieldSpec[K any] func(a, b K) int

func erase[K, F any](f FieldSpec[K, F]) anyFieldSpec[K] {
	return f.compareKeys
}

// ComposeOrdered builds an OrderedConfig[K] from an ordered list of
// per-field comparators: the first field that disagrees between two
// keys decides their order, exactly like a SQL multi-column ORDER BY.
func ComposeOrdered[K any](fields ...anyFieldSpec[K]) OrderedConfig[K] {
	return OrderedConfig[K]{
		Compare: func(a, b K) int {
			for _, f := range fields {
				if c := f(a, b); c != 0 {
					return c
				}
			}
			return 0
		},
	}
}

// Field adapts a FieldSpec for use as a ComposeOrdered argument.
func Field[K, F any](f FieldSpec[K, F]) anyFieldSpec[K] {
	return erase(f)
}
