package keycap

import "testing"

func TestIntOrderedConfig(t *testing.T) {
	cfg := IntOrderedConfig[int]()
	if cfg.Compare(1, 2) >= 0 {
		t.Fatalf("expected 1 < 2")
	}
	if cfg.Compare(2, 2) != 0 {
		t.Fatalf("expected 2 == 2")
	}
}

func TestStringOrderedConfigLocaleAware(t *testing.T) {
	cfg := StringOrderedConfig()
	if cfg.Compare("a", "b") >= 0 {
		t.Fatalf("expected a < b")
	}
	if cfg.Compare("a", "a") != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestComposeOrderedMultiField(t *testing.T) {
	type person struct {
		last, first string
	}
	byLast := Ascending(func(p person) string { return p.last }, StringOrderedConfig().Compare)
	byFirst := Ascending(func(p person) string { return p.first }, StringOrderedConfig().Compare)
	cfg := ComposeOrdered(Field(byLast), Field(byFirst))

	a := person{last: "Smith", first: "Alice"}
	b := person{last: "Smith", first: "Bob"}
	c := person{last: "Adams", first: "Zoe"}

	if cfg.Compare(a, b) >= 0 {
		t.Fatalf("expected Alice Smith < Bob Smith (tie-break on first name)")
	}
	if cfg.Compare(c, a) >= 0 {
		t.Fatalf("expected Adams < Smith")
	}
}

func TestComposeOrderedDescendingNullsFirst(t *testing.T) {
	type item struct {
		priority *int
	}
	spec := Descending(func(i item) *int { return i.priority }, func(a, b *int) int { return *a - *b }).
		WithNullCheck(func(p *int) bool { return p == nil })
	cfg := ComposeOrdered(Field(spec))

	p1, p2 := 1, 2
	withNull := item{priority: nil}
	withHigh := item{priority: &p2}
	withLow := item{priority: &p1}

	if cfg.Compare(withNull, withHigh) >= 0 {
		t.Fatalf("expected null to sort first in descending order")
	}
	if cfg.Compare(withHigh, withLow) >= 0 {
		t.Fatalf("expected higher priority to sort before lower in descending order")
	}
}
