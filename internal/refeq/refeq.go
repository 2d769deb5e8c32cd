// Package refeq implements the "unchanged" check the engines use to
// decide whether a freshly-computed value is identical to the one it
// would replace, per spec.md's design note on the reference-equality
// short-circuit: "in a value-typed implementation without natural
// reference identity, simulate this with ... compare by content."
//
// reflect.DeepEqual reports two equal pointers as equal without walking
// what they point to, so callers that do preserve reference identity
// (the contract callers are expected to honor, per spec.md §9) get a
// cheap path; distinct pointers, including pointers held in interfaces,
// are compared by the values they point to.
package refeq

import "reflect"

// Unchanged reports whether b should be treated as the same value as a
// for the purposes of the reference-equality short-circuit contract.
func Unchanged[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}
