package immut

import (
	"testing"

	"github.com/TomTonic/immutable-collections/keycap"
)

func buildHashMap(t *testing.T, kvs ...int) HashMap[int, int] {
	t.Helper()
	m := EmptyHashMap[int, int](keycap.IntHashConfig[int]())
	for _, k := range kvs {
		m = m.Set(k, k*10)
	}
	return m
}

func TestHashMapSetGetDelete(t *testing.T) {
	m := buildHashMap(t, 1, 2, 3)
	if m.Size() != 3 {
		t.Fatalf("expected size 3, got %d", m.Size())
	}
	v, ok := m.Get(2)
	if !ok || v != 20 {
		t.Fatalf("expected Get(2) = 20, true; got %d, %v", v, ok)
	}
	m2 := m.Delete(2)
	if m2.Has(2) {
		t.Fatalf("expected key 2 gone after delete")
	}
	if !m.Has(2) {
		t.Fatalf("original map must be unaffected by Delete")
	}
}

func TestHashMapFromResolvesDuplicatesWithMerge(t *testing.T) {
	cfg := keycap.IntHashConfig[int]()
	m := FromHashMap(cfg, func(k, a, b int) int { return a + b },
		Entry[int, int]{Key: 1, Value: 10},
		Entry[int, int]{Key: 1, Value: 5},
		Entry[int, int]{Key: 2, Value: 20},
	)
	if m.Size() != 2 {
		t.Fatalf("expected size 2, got %d", m.Size())
	}
	v, _ := m.Get(1)
	if v != 15 {
		t.Fatalf("expected merged value 15, got %d", v)
	}
}

func TestHashMapKeySetSharesRoot(t *testing.T) {
	m := buildHashMap(t, 1, 2, 3)
	ks := m.KeySet()
	if ks.Size() != 3 {
		t.Fatalf("expected keyset size 3, got %d", ks.Size())
	}
	if !ks.Contains(2) {
		t.Fatalf("expected keyset to contain 2")
	}
	if !ks.m.SameRootAs(m.m) {
		t.Fatalf("expected the keyset to share m's engine root")
	}
	ks2 := ks.Remove(2)
	if !m.Has(2) {
		t.Fatalf("mutating a keyset derived from m must not affect m")
	}
	if ks2.Contains(2) {
		t.Fatalf("expected key 2 gone from the derived set")
	}
}

func TestHashMapUnionIntersectionDifference(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3)
	b := buildHashMap(t, 2, 3, 4)
	u := a.Union(func(k, x, y int) int { return x }, b)
	if u.Size() != 4 {
		t.Fatalf("expected union size 4, got %d", u.Size())
	}
	i := a.Intersection(func(k, x, y int) int { return x }, b)
	if i.Size() != 2 {
		t.Fatalf("expected intersection size 2, got %d", i.Size())
	}
	d := a.Difference(b)
	if d.Size() != 1 || !d.Has(1) {
		t.Fatalf("expected difference to contain only key 1, got size %d", d.Size())
	}
	sd := a.SymmetricDifference(b)
	if sd.Size() != 2 || !sd.Has(1) || !sd.Has(4) {
		t.Fatalf("expected symmetric difference {1, 4}, got size %d", sd.Size())
	}
}

func TestHashMapWithoutKeysAppendFilterMapValues(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3, 4)
	w := a.WithoutKeys(2, 4)
	if w.Size() != 2 || w.Has(2) || w.Has(4) {
		t.Fatalf("expected keys 2 and 4 removed, got size %d", w.Size())
	}
	ap := a.Append(Entry[int, int]{Key: 5, Value: 50})
	if ap.Size() != 5 {
		t.Fatalf("expected size 5 after append, got %d", ap.Size())
	}
	f := a.Filter(func(k, v int) bool { return k%2 == 0 })
	if f.Size() != 2 {
		t.Fatalf("expected 2 even keys, got %d", f.Size())
	}
	mv := a.MapValues(func(k, v int) int { return v + 1 })
	v, _ := mv.Get(1)
	if v != 11 {
		t.Fatalf("expected mapped value 11, got %d", v)
	}
}

func TestHashMapPartition(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3, 4)
	yes, no := a.Partition(func(k, v int) bool { return k%2 == 0 })
	if yes.Size() != 2 || no.Size() != 2 {
		t.Fatalf("expected 2/2 split, got %d/%d", yes.Size(), no.Size())
	}
}

func TestHashMapAdjust(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3)
	helper := EmptyHashMap[int, string](keycap.IntHashConfig[int]())
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
}

func TestHashMapForEachAndToLazySeq(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3)
	sum := 0
	a.ForEach(func(k, v int) bool { sum += v; return true })
	if sum != 60 {
		t.Fatalf("expected sum 60, got %d", sum)
	}
	entries := a.ToLazySeq()
	count := 0
	for range entries.Std() {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 entries from ToLazySeq, got %d", count)
	}
}

func TestFold(t *testing.T) {
	a := buildHashMap(t, 1, 2, 3, 4)
	sum := Fold(a, 0, func(acc, k, v int) int { return acc + v })
	if sum != 100 {
		t.Fatalf("expected fold sum 100, got %d", sum)
	}
}

func TestUnionAllAndIntersectionAll(t *testing.T) {
	a := buildHashMap(t, 1, 2)
	b := buildHashMap(t, 2, 3)
	c := buildHashMap(t, 3, 4)
	u := UnionAll(func(k, x, y int) int { return x }, a, b, c)
	if u.Size() != 4 {
		t.Fatalf("expected union-all size 4, got %d", u.Size())
	}
	i2 := IntersectionAll(func(k, x, y int) int { return x }, a, b)
	if i2.Size() != 1 || !i2.Has(2) {
		t.Fatalf("expected intersection-all of a, b to be {2}, got size %d", i2.Size())
	}
	i3 := IntersectionAll(func(k, x, y int) int { return x }, a, b, c)
	if i3.Size() != 0 {
		t.Fatalf("expected empty intersection-all across a, b, c, got size %d", i3.Size())
	}
	empty := EmptyHashMap[int, int](keycap.IntHashConfig[int]())
	u2 := UnionAll(func(k, x, y int) int { return x }, empty, a)
	if u2.Size() != 2 {
		t.Fatalf("expected empty to be skipped, got size %d", u2.Size())
	}
}
