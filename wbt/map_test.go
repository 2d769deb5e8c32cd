package wbt

import (
	"testing"

	"github.com/TomTonic/immutable-collections/keycap"
)

func build(t *testing.T, kvs ...int) Map[int, int] {
	t.Helper()
	m := Empty[int, int](keycap.IntOrderedConfig[int]())
	for _, k := range kvs {
		m = m.Set(k, k*10)
	}
	return m
}

func TestSetGetAndSize(t *testing.T) {
	m := build(t, 5, 1, 9, 3, 7)
	if m.Size() != 5 {
		t.Fatalf("expected size 5, got %d", m.Size())
	}
	v, ok := m.Get(3)
	if !ok || v != 30 {
		t.Fatalf("expected Get(3) = 30, true; got %d, %v", v, ok)
	}
	if _, ok := m.Get(100); ok {
		t.Fatalf("expected Get(100) = false")
	}
}

func TestSetOverwriteKeepsSize(t *testing.T) {
	m := build(t, 1, 2)
	m2 := m.Set(1, 999)
	if m2.Size() != 2 {
		t.Fatalf("expected size unchanged on overwrite, got %d", m2.Size())
	}
	v, _ := m2.Get(1)
	if v != 999 {
		t.Fatalf("expected overwritten value 999, got %d", v)
	}
}

func TestDeleteShrinksAndLeavesOriginalUntouched(t *testing.T) {
	m := build(t, 1, 2, 3)
	m2 := m.Delete(2)
	if m2.Size() != 2 {
		t.Fatalf("expected size 2 after delete, got %d", m2.Size())
	}
	if m.Size() != 3 {
		t.Fatalf("original map must be unaffected by Delete, got size %d", m.Size())
	}
	if m2.Has(2) {
		t.Fatalf("expected key 2 gone after delete")
	}
}

func TestDeleteOfAbsentKeyReturnsSameRoot(t *testing.T) {
	m := build(t, 1, 2, 3)
	m2 := m.Delete(42)
	if m2.root != m.root {
		t.Fatalf("deleting an absent key must return the same root by reference")
	}
}

func TestLookupMinMax(t *testing.T) {
	m := build(t, 5, 1, 9, 3, 7)
	k, v, ok := m.LookupMin()
	if !ok || k != 1 || v != 10 {
		t.Fatalf("expected min (1, 10), got (%d, %d, %v)", k, v, ok)
	}
	k, v, ok = m.LookupMax()
	if !ok || k != 9 || v != 90 {
		t.Fatalf("expected max (9, 90), got (%d, %d, %v)", k, v, ok)
	}
}

func TestMinViewMaxView(t *testing.T) {
	m := build(t, 5, 1, 9)
	k, v, rest, ok := m.MinView()
	if !ok || k != 1 || v != 10 || rest.Size() != 2 {
		t.Fatalf("unexpected MinView result: %d %d %v size=%d", k, v, ok, rest.Size())
	}
	_, _, _, ok = Map[int, int]{}.MinView()
	if ok {
		t.Fatalf("MinView on empty map must report ok=false")
	}
}

func TestRankAndAt(t *testing.T) {
	m := build(t, 5, 1, 9, 3, 7)
	r, ok := m.Rank(7)
	if !ok || r != 3 {
		t.Fatalf("expected rank(7) = 3, got %d, %v", r, ok)
	}
	k, v, ok := m.At(0)
	if !ok || k != 1 || v != 10 {
		t.Fatalf("expected At(0) = (1, 10), got (%d, %d, %v)", k, v, ok)
	}
	if _, _, ok := m.At(100); ok {
		t.Fatalf("At out of range must report ok=false")
	}
}

func TestIterateAscOrder(t *testing.T) {
	m := build(t, 5, 1, 9, 3, 7)
	var got []int
	m.IterateAsc(func(k, v int) bool {
		got = append(got, k)
		return true
	})
	want := []int{1, 3, 5, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ascending order %v, got %v", want, got)
		}
	}
}

func TestIterateDescOrder(t *testing.T) {
	m := build(t, 5, 1, 9, 3, 7)
	var got []int
	m.IterateDesc(func(k, v int) bool {
		got = append(got, k)
		return true
	})
	want := []int{9, 7, 5, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected descending order %v, got %v", want, got)
		}
	}
}

func TestIterateAscEarlyStop(t *testing.T) {
	m := build(t, 1, 2, 3, 4, 5)
	count := 0
	m.IterateAsc(func(k, v int) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("expected early stop after 2 yields, got %d", count)
	}
}

func TestUnionAbsorption(t *testing.T) {
	m := build(t, 1, 2, 3)
	empty := Empty[int, int](keycap.IntOrderedConfig[int]())
	r := m.Union(func(k, a, b int) int { return a }, empty)
	if r.root != m.root {
		t.Fatalf("union with empty must return m by reference")
	}
}

func TestUnionIdempotence(t *testing.T) {
	m := build(t, 1, 2, 3)
	r := m.Union(func(k, a, b int) int { return a }, m)
	if r.root != m.root {
		t.Fatalf("union of m with itself must return m by reference")
	}
}

func TestUnionMergesAndPrefersLeftOnConflict(t *testing.T) {
	a := build(t, 1, 2, 3)
	b := build(t, 3, 4, 5)
	r := a.Union(func(k, av, bv int) int { return av }, b)
	if r.Size() != 5 {
		t.Fatalf("expected union size 5, got %d", r.Size())
	}
	v, _ := r.Get(3)
	if v != 30 {
		t.Fatalf("expected left value to win on conflict, got %d", v)
	}
}

func TestIntersectionOnlyKeepsSharedKeys(t *testing.T) {
	a := build(t, 1, 2, 3)
	b := build(t, 2, 3, 4)
	r := a.Intersection(func(k, av, bv int) int { return av }, b)
	if r.Size() != 2 {
		t.Fatalf("expected intersection size 2, got %d", r.Size())
	}
	if r.Has(1) || r.Has(4) {
		t.Fatalf("intersection must drop keys not present on both sides")
	}
}

func TestIntersectionWithEmptyIsEmpty(t *testing.T) {
	a := build(t, 1, 2, 3)
	empty := Empty[int, int](keycap.IntOrderedConfig[int]())
	r := a.Intersection(func(k, av, bv int) int { return av }, empty)
	if r.Size() != 0 {
		t.Fatalf("expected intersection with empty to be empty, got size %d", r.Size())
	}
}

func TestDifferenceRemovesSharedKeysOnly(t *testing.T) {
	a := build(t, 1, 2, 3, 4)
	b := build(t, 2, 4, 9)
	r := a.Difference(b)
	if r.Size() != 2 {
		t.Fatalf("expected difference size 2, got %d", r.Size())
	}
	if r.Has(2) || r.Has(4) {
		t.Fatalf("difference must drop keys present in the other map")
	}
	if !r.Has(1) || !r.Has(3) {
		t.Fatalf("difference must keep keys absent from the other map")
	}
}

func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	a := build(t, 1, 2, 3)
	r := a.Difference(a)
	if r.Size() != 0 {
		t.Fatalf("expected a.Difference(a) to be empty, got size %d", r.Size())
	}
}

func TestDifferenceWithEmptyReturnsSameRoot(t *testing.T) {
	a := build(t, 1, 2, 3)
	empty := Empty[int, int](keycap.IntOrderedConfig[int]())
	r := a.Difference(empty)
	if r.root != a.root {
		t.Fatalf("difference with empty must return a by reference")
	}
}

func TestDifferenceWithDisjointReturnsSameRoot(t *testing.T) {
	a := build(t, 1, 2, 3)
	b := build(t, 100, 200)
	r := a.Difference(b)
	if r.root != a.root {
		t.Fatalf("difference with a disjoint map must leave a unchanged by reference")
	}
}

func TestSymmetricDifference(t *testing.T) {
	a := build(t, 1, 2, 3)
	b := build(t, 2, 3, 4)
	r := a.SymmetricDifference(b)
	if r.Size() != 2 {
		t.Fatalf("expected symmetric difference size 2, got %d", r.Size())
	}
	if !r.Has(1) || !r.Has(4) {
		t.Fatalf("expected symmetric difference to keep keys unique to each side")
	}
}

func TestAdjustAppliesOnlyToHelperKeys(t *testing.T) {
	a := build(t, 1, 2, 3)
	helper := Empty[int, string](keycap.IntOrderedConfig[int]())
	helper = helper.Set(2, "x").Set(4, "y")
	r := Adjust(func(k, old int, found bool, h string) (int, AlterOp) {
		if !found {
			return 0, AlterSet
		}
		return old + 1000, AlterSet
	}, a, helper)
	v, ok := r.Get(2)
	if !ok || v != 1020 {
		t.Fatalf("expected key 2 bumped to 1020, got %d, %v", v, ok)
	}
	v, ok = r.Get(4)
	if !ok || v != 0 {
		t.Fatalf("expected key 4 inserted with 0, got %d, %v", v, ok)
	}
	v, ok = r.Get(1)
	if !ok || v != 10 {
		t.Fatalf("expected key 1 untouched, got %d, %v", v, ok)
	}
}

func TestPartitionPreservesReferenceOnUnaffectedSide(t *testing.T) {
	a := build(t, 1, 2, 3, 4, 5, 6)
	yes, no := a.Partition(func(k, v int) bool { return k%2 == 0 })
	if yes.Size() != 3 || no.Size() != 3 {
		t.Fatalf("expected 3/3 split, got %d/%d", yes.Size(), no.Size())
	}
	all, none := a.Partition(func(k, v int) bool { return true })
	if all.root != a.root || none.Size() != 0 {
		t.Fatalf("a partition that keeps every entry must return a's root by reference on the yes side")
	}
}

func TestMapValuesUnchangedReturnsSameRoot(t *testing.T) {
	a := build(t, 1, 2, 3)
	r := a.MapValues(func(k, v int) int { return v })
	if r.root != a.root {
		t.Fatalf("MapValues with an identity function must return the same root")
	}
}

func TestCollectValuesDrops(t *testing.T) {
	a := build(t, 1, 2, 3, 4)
	r := a.CollectValues(func(k, v int) (int, bool) { return v, k%2 == 0 })
	if r.Size() != 2 {
		t.Fatalf("expected 2 entries kept, got %d", r.Size())
	}
}

func TestFold(t *testing.T) {
	a := build(t, 1, 2, 3, 4)
	sum := a.Fold(0, func(acc, k, v int) int { return acc + v })
	if sum != 100 {
		t.Fatalf("expected fold sum 100, got %d", sum)
	}
}

func TestBalanceInvariantHoldsAfterManyInserts(t *testing.T) {
	cfg := keycap.IntOrderedConfig[int]()
	m := Empty[int, int](cfg)
	for i := 0; i < 500; i++ {
		m = m.Set((i*37)%500, i)
	}
	if m.Size() != 500 {
		t.Fatalf("expected 500 distinct keys, got %d", m.Size())
	}
	checkBalanced(t, m.root)
}

func TestBalanceInvariantHoldsAfterDeletes(t *testing.T) {
	cfg := keycap.IntOrderedConfig[int]()
	m := Empty[int, int](cfg)
	for i := 0; i < 300; i++ {
		m = m.Set(i, i)
	}
	for i := 0; i < 300; i += 2 {
		m = m.Delete(i)
	}
	if m.Size() != 150 {
		t.Fatalf("expected 150 keys remaining, got %d", m.Size())
	}
	checkBalanced(t, m.root)
}

func checkBalanced(t *testing.T, n node[int, int]) {
	t.Helper()
	if n == nil {
		return
	}
	tn := asTreeNode(n)
	sl, sr := size(tn.left), size(tn.right)
	if sl+sr > 1 {
		if sr > delta*sl || sl > delta*sr {
			t.Fatalf("weight-balance invariant violated at key %v: sizes %d/%d", tn.key, sl, sr)
		}
	}
	if tn.size != sl+sr+1 {
		t.Fatalf("cached size at key %v is stale: have %d, want %d", tn.key, tn.size, sl+sr+1)
	}
	checkBalanced(t, tn.left)
	checkBalanced(t, tn.right)
}
