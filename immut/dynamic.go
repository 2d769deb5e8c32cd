package immut

import (
	"github.com/TomTonic/immutable-collections/hamt"
	"github.com/TomTonic/immutable-collections/immuterr"
	"github.com/TomTonic/immutable-collections/keycap"
)

// DynamicMap is the dynamically-keyed façade variant of spec.md §4.A:
// its key type is any, and it specializes itself to the runtime
// category of the first key it sees (string, int, uint, bool, time.Time)
// via keycap.Specializer's one-shot CAS, rather than taking a
// HashConfig at construction like the generic HashMap[K,V] does.
// Inserting a key whose category disagrees with an already-specialized
// container returns immuterr.ErrKeyCategoryMismatch.
type DynamicMap[V any] struct {
	spec *keycap.Specializer[keycap.HashConfig[any]]
	m    hamt.Map[any, V]
}

// EmptyDynamicMap returns an unspecialized DynamicMap: its key category
// is decided by the first Set call.
func EmptyDynamicMap[V any]() DynamicMap[V] {
	return DynamicMap[V]{spec: &keycap.Specializer[keycap.HashConfig[any]]{}}
}

// builtinDynamicConfig returns the HashConfig[any] for k's runtime
// category, or an error if k's category has no built-in capability
// (spec.md §7's ErrKeyCategoryMismatch).
func builtinDynamicConfig(k any) (keycap.HashConfig[any], error) {
	switch keycap.DetectCategory(k) {
	case keycap.CategoryString:
		return liftHashConfig(keycap.StringHashConfig()), nil
	case keycap.CategoryInt:
		return liftHashConfig(keycap.IntHashConfig[int]()), nil
	case keycap.CategoryUint:
		return liftHashConfig(keycap.UintHashConfig[uint]()), nil
	case keycap.CategoryBool:
		return liftHashConfig(keycap.BoolHashConfig()), nil
	case keycap.CategoryTime:
		return liftHashConfig(keycap.TimeHashConfig()), nil
	default:
		return keycap.HashConfig[any]{}, &immuterr.ErrKeyCategoryMismatch{Have: "unknown", Want: "string, int, uint, bool, or time.Time"}
	}
}

// liftHashConfig widens a HashConfig[K] into a HashConfig[any] that
// type-asserts its argument back to K before delegating — the bridge
// letting DynamicMap reuse the same built-in configs the generic
// façades use, despite DynamicMap's key type being any.
func liftHashConfig[K any](cfg keycap.HashConfig[K]) keycap.HashConfig[any] {
	return keycap.HashConfig[any]{
		Hash:  func(k any) uint32 { return cfg.Hash(k.(K)) },
		Equal: func(a, b any) bool { return cfg.Equal(a.(K), b.(K)) },
		Less:  func(a, b any) int { return cfg.Less(a.(K), b.(K)) },
	}
}

// Set installs k -> v, specializing m's key category on the first call
// and rejecting a key whose category disagrees with that specialization.
func (m DynamicMap[V]) Set(k any, v V) (DynamicMap[V], error) {
	kcfg, err := builtinDynamicConfig(k)
	if err != nil {
		var zero DynamicMap[V]
		return zero, err
	}
	cfg := m.spec.Specialize(kcfg)
	root := m.m
	if m.m.Config().Hash == nil {
		root = hamt.Empty[any, V](cfg)
	}
	return DynamicMap[V]{spec: m.spec, m: root.Set(k, v)}, nil
}

func (m DynamicMap[V]) Get(k any) (V, bool) { return m.m.Get(k) }
func (m DynamicMap[V]) Has(k any) bool      { return m.m.Has(k) }
func (m DynamicMap[V]) Size() int           { return m.m.Size() }
