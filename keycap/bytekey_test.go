package keycap

import (
	"bytes"
	"testing"
)

func TestBytesFromStringNormalization(t *testing.T) {
	// 'ä' can be U+00E4 or 'a' + U+0308; NFC normalization should unify them.
	precomposed := "ä"
	decomposed := "ä"
	p := BytesFromString(precomposed)
	d := BytesFromString(decomposed)
	if !bytes.Equal(p, d) {
		t.Fatalf("normalization mismatch: %v vs %v", []byte(p), []byte(d))
	}
}

func TestBytesFromInt64SignOrdering(t *testing.T) {
	neg := BytesFromInt64(-1)
	zero := BytesFromInt64(0)
	pos := BytesFromInt64(1)
	if neg.Compare(zero) >= 0 {
		t.Fatalf("expected -1 < 0 in encoded order")
	}
	if zero.Compare(pos) >= 0 {
		t.Fatalf("expected 0 < 1 in encoded order")
	}
}

func TestBytesFromUint64EqualsInt64ForSameValue(t *testing.T) {
	if !BytesFromInt64(0).Equal(BytesFromUint64(0)) {
		t.Fatalf("FromInt64(0) should equal FromUint64(0)")
	}
	if !BytesFromInt64(5).Equal(BytesFromUint64(5)) {
		t.Fatalf("FromInt64(5) should equal FromUint64(5)")
	}
}

func TestByteKeyStringFormatting(t *testing.T) {
	k := ByteKey([]byte{0x01, 0xAB, 0x00})
	if got := k.String(); got != "[01,AB,00]" {
		t.Fatalf("String() formatted incorrectly: %s", got)
	}
	if got := ByteKey(nil).String(); got != "[]" {
		t.Fatalf("empty ByteKey should format as []: got %s", got)
	}
}

func TestByteKeyCompareAndEqual(t *testing.T) {
	a := ByteKey([]byte{1, 2, 3})
	b := ByteKey([]byte{1, 2, 4})
	c := ByteKey([]byte{1, 2})

	if a.Compare(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Compare(a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected a == a")
	}
	if c.Compare(a) >= 0 {
		t.Fatalf("expected shorter prefix %v < %v", c, a)
	}
	if a.Equal(b) {
		t.Fatalf("a and b should not be equal")
	}
}
