package hamt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/TomTonic/immutable-collections/keycap"
)

// checkBitmapIntegrityRapid walks n and fails via require if any Branch's
// bitmap/children invariant (spec.md §8 item 17) is violated.
func checkBitmapIntegrityRapid[K, V any](t *rapid.T, n node[K, V], depth int) {
	switch tn := n.(type) {
	case nil:
		return
	case *branch[K, V]:
		require.Equal(t, tn.bitmap.count(), len(tn.children),
			"popcount(bitmap) must equal len(children)")
		for slot := byte(0); slot < 32; slot++ {
			if !tn.bitmap.has(slot) {
				continue
			}
			checkBitmapIntegrityRapid(t, tn.children[tn.bitmap.index(slot)], depth+1)
		}
	}
}

func TestBitmapIntegrityHoldsUnderRandomInsertAndDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := rapid.SliceOfN(rapid.IntRange(-500, 500), 1, 300).Draw(t, "ops")
		m := Empty[int, int](keycap.IntHashConfig[int]())
		for _, k := range ops {
			if k < 0 {
				m = m.Delete(-k)
			} else {
				m = m.Set(k, k*10)
			}
			checkBitmapIntegrityRapid[int, int](t, m.root, 0)
		}
	})
}

func TestUnionWithSameObjectShortCircuits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.IntRange(0, 200), 1, 100).Draw(t, "keys")
		m := Empty[int, int](keycap.IntHashConfig[int]())
		for _, k := range keys {
			m = m.Set(k, k)
		}
		u := m.Union(func(_ int, a, _ int) int { return a }, m)
		require.Same(t, m.root, u.root, "unioning a map with itself must short-circuit to the same root")
	})
}

func TestDifferenceWithSelfIsEmptyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.IntRange(0, 200), 1, 100).Draw(t, "keys")
		m := Empty[int, int](keycap.IntHashConfig[int]())
		for _, k := range keys {
			m = m.Set(k, k)
		}
		d := m.Difference(m)
		require.Equal(t, 0, d.Size(), "difference with self must be empty")
	})
}
