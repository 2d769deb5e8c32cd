package wbt

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/TomTonic/immutable-collections/keycap"
)

// checkBalance walks n and fails via require if the weight-balance
// invariant (spec.md §8 item 16) or the cached size is violated
// anywhere in the subtree.
func checkBalance[K, V any](t *rapid.T, n node[K, V]) {
	if n == nil {
		return
	}
	tn := asTreeNode(n)
	l, r := size(tn.left), size(tn.right)
	require.LessOrEqual(t, max(l, r), delta*max(1, min(l, r)),
		"weight-balance invariant violated: left=%d right=%d", l, r)
	require.Equal(t, l+r+1, tn.size, "cached size does not match actual subtree count")
	checkBalance(t, tn.left)
	checkBalance(t, tn.right)
}

func TestBalanceInvariantHoldsUnderRandomSetAndDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := rapid.SliceOfN(rapid.IntRange(-200, 200), 1, 300).Draw(t, "ops")
		m := Empty[int, int](keycap.IntOrderedConfig[int]())
		for _, k := range ops {
			if k < 0 {
				m = m.Delete(-k)
			} else {
				m = m.Set(k, k*10)
			}
			checkBalance(t, m.root)
		}
	})
}

func TestSplitPartitionsAroundPivot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.IntRange(0, 500), 1, 200).Draw(t, "keys")
		pivot := rapid.IntRange(0, 500).Draw(t, "pivot")
		m := Empty[int, int](keycap.IntOrderedConfig[int]())
		for _, k := range keys {
			m = m.Set(k, k)
		}
		below, present, found, above := m.Split(pivot)
		below.IterateAsc(func(k, _ int) bool {
			require.Less(t, k, pivot, "below must hold only keys < pivot")
			return true
		})
		above.IterateAsc(func(k, _ int) bool {
			require.Greater(t, k, pivot, "above must hold only keys > pivot")
			return true
		})
		wantFound := m.Has(pivot)
		require.Equal(t, wantFound, found)
		if found {
			require.Equal(t, pivot, present)
		}
		require.Equal(t, m.Size(), below.Size()+above.Size()+boolToInt(found))
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
