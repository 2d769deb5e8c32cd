package immut

import (
	"testing"

	"github.com/TomTonic/immutable-collections/keycap"
)

func buildOrderedMap(t *testing.T, kvs ...int) OrderedMap[int, int] {
	t.Helper()
	m := EmptyOrderedMap[int, int](keycap.IntOrderedConfig[int]())
	for _, k := range kvs {
		m = m.Set(k, k*10)
	}
	return m
}

func TestOrderedMapIteratesAscending(t *testing.T) {
	m := buildOrderedMap(t, 3, 1, 4, 1, 5, 9, 2, 6)
	var keys []int
	m.ForEach(func(k, v int) bool { keys = append(keys, k); return true })
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("expected strictly ascending keys, got %v", keys)
		}
	}
}

func TestOrderedMapForEachDescIsReverse(t *testing.T) {
	m := buildOrderedMap(t, 1, 2, 3)
	var asc, desc []int
	m.ForEach(func(k, v int) bool { asc = append(asc, k); return true })
	m.ForEachDesc(func(k, v int) bool { desc = append(desc, k); return true })
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("expected ForEachDesc to be the reverse of ForEach: %v vs %v", asc, desc)
		}
	}
}

func TestOrderedMapLookupMinMax(t *testing.T) {
	m := buildOrderedMap(t, 5, 3, 8, 1)
	k, v, ok := m.LookupMin()
	if !ok || k != 1 || v != 10 {
		t.Fatalf("expected min (1, 10), got (%d, %d, %v)", k, v, ok)
	}
	k, v, ok = m.LookupMax()
	if !ok || k != 8 || v != 80 {
		t.Fatalf("expected max (8, 80), got (%d, %d, %v)", k, v, ok)
	}
}

func TestOrderedMapMinViewMaxView(t *testing.T) {
	m := buildOrderedMap(t, 1, 2, 3)
	k, v, rest, ok := m.MinView()
	if !ok || k != 1 || v != 10 {
		t.Fatalf("expected minview (1, 10), got (%d, %d, %v)", k, v, ok)
	}
	if rest.Size() != 2 || rest.Has(1) {
		t.Fatalf("expected rest without key 1, size %d", rest.Size())
	}
}

func TestOrderedMapSplit(t *testing.T) {
	m := buildOrderedMap(t, 1, 2, 3, 4, 5)
	below, present, found, above := m.Split(3)
	if !found || present != 30 {
		t.Fatalf("expected present=30, found=true; got %d, %v", present, found)
	}
	if below.Size() != 2 || above.Size() != 2 {
		t.Fatalf("expected 2/2 split around the pivot, got %d/%d", below.Size(), above.Size())
	}
}

func TestOrderedMapToAscDescLazySeq(t *testing.T) {
	m := buildOrderedMap(t, 3, 1, 2)
	var asc []int
	for e := range m.ToAscLazySeq().Std() {
		asc = append(asc, e.Key)
	}
	want := []int{1, 2, 3}
	for i := range want {
		if asc[i] != want[i] {
			t.Fatalf("expected ascending %v, got %v", want, asc)
		}
	}
	var desc []int
	for e := range m.ToDescLazySeq().Std() {
		desc = append(desc, e.Key)
	}
	wantDesc := []int{3, 2, 1}
	for i := range wantDesc {
		if desc[i] != wantDesc[i] {
			t.Fatalf("expected descending %v, got %v", wantDesc, desc)
		}
	}
}

func TestOrderedMapLazySeqIsRestartable(t *testing.T) {
	m := buildOrderedMap(t, 1, 2, 3)
	s := m.ToAscLazySeq()
	var a, b []int
	for e := range s.Std() {
		a = append(a, e.Key)
	}
	for e := range s.Std() {
		b = append(b, e.Key)
	}
	if len(a) != len(b) || len(a) != 3 {
		t.Fatalf("expected the same restartable sequence twice, got %v and %v", a, b)
	}
}

func TestOrderedMapKeySetSharesRoot(t *testing.T) {
	m := buildOrderedMap(t, 1, 2, 3)
	ks := m.KeySet()
	if ks.Size() != 3 {
		t.Fatalf("expected keyset size 3, got %d", ks.Size())
	}
	if !ks.m.SameRootAs(m.m) {
		t.Fatalf("expected the keyset to share m's engine root")
	}
	k, ok := ks.LookupMin()
	if !ok || k != 1 {
		t.Fatalf("expected keyset min 1, got %d, %v", k, ok)
	}
}

func TestOrderedMapUnionIntersectionDifference(t *testing.T) {
	a := buildOrderedMap(t, 1, 2, 3)
	b := buildOrderedMap(t, 2, 3, 4)
	u := a.Union(func(k, x, y int) int { return x }, b)
	if u.Size() != 4 {
		t.Fatalf("expected union size 4, got %d", u.Size())
	}
	i := a.Intersection(func(k, x, y int) int { return x }, b)
	if i.Size() != 2 {
		t.Fatalf("expected intersection size 2, got %d", i.Size())
	}
	sd := a.SymmetricDifference(b)
	if sd.Size() != 2 {
		t.Fatalf("expected symmetric difference size 2, got %d", sd.Size())
	}
}

func TestOrderedMapPartition(t *testing.T) {
	a := buildOrderedMap(t, 1, 2, 3, 4, 5)
	yes, no := a.Partition(func(k, v int) bool { return k%2 == 0 })
	if yes.Size() != 2 || no.Size() != 3 {
		t.Fatalf("expected 2/3 split, got %d/%d", yes.Size(), no.Size())
	}
	k, _, ok := yes.LookupMin()
	if !ok || k != 2 {
		t.Fatalf("expected ascending order preserved in yes-half, got min %d", k)
	}
}

func TestAdjustOrdered(t *testing.T) {
	a := buildOrderedMap(t, 1, 2, 3)
	helper := EmptyOrderedMap[int, string](keycap.IntOrderedConfig[int]())
	helper = helper.Set(2, "x")
	r := AdjustOrdered(func(k, old int, found bool, h string) (int, AlterOp) {
		return old + 1, AlterSet
	}, a, helper)
	v, _ := r.Get(2)
	if v != 21 {
		t.Fatalf("expected 21, got %d", v)
	}
}

func TestFoldOrderedVisitsAscending(t *testing.T) {
	a := buildOrderedMap(t, 3, 1, 2)
	var seen []int
	FoldOrdered(a, 0, func(acc, k, v int) int { seen = append(seen, k); return acc + v })
	for i := 1; i < len(seen); i++ {
		if seen[i-1] >= seen[i] {
			t.Fatalf("expected ascending visitation order, got %v", seen)
		}
	}
}
