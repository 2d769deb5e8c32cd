// Package immut provides the four public persistent containers —
// HashMap, HashSet, OrderedMap, OrderedSet — as thin façades over the
// hamt and wbt engines. Every façade method that would produce a
// container equal to one of its inputs returns that input by
// reference: the reference-equality short-circuit is a contract, not
// an optimization (spec.md §6), and every façade here just forwards
// the engines' own short-circuits.
//
// Values are boxed as any internally (HashMap[K,V] wraps a
// hamt.Map[K, any], OrderedMap[K,V] a wbt.Map[K, any]) so that
// HashMap.KeySet()/OrderedMap.KeySet() can hand back a HashSet/
// OrderedSet sharing the exact same root object in O(1): a set built
// this way is just a map whose engine root happens to also be usable
// through HashSet's narrower interface, with no conversion pass over
// the tree. Method names and doc-comment density follow the teacher's
// own façade style: a package doc comment, one-liners on most exported
// methods, and a longer comment only where the semantics are non-obvious
// (range queries, keySet sharing).
package immut

import "github.com/TomTonic/immutable-collections/wbt"

// AlterOp tags what Alter/Modify should do with a callback's returned
// value; re-exported from wbt so callers never need to import the
// engine packages directly.
type AlterOp = wbt.AlterOp

const (
	AlterKeep   = wbt.AlterKeep
	AlterSet    = wbt.AlterSet
	AlterDelete = wbt.AlterDelete
)

// Entry is a key/value pair, used by the lazy-sequence and bulk
// constructor surfaces (ToLazySeq, From).
type Entry[K, V any] struct {
	Key   K
	Value V
}
