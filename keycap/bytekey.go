// Package keycap implements the key-capability layer: HashKey and
// OrderedKey descriptors (hash/equal, and total-order compare,
// respectively) plus the built-in capabilities for strings, integers,
// booleans and timestamps that the hamt and wbt engines are configured
// with.
//
// Composite keys are supported through ByteKey, a canonical byte
// encoding that orders and hashes consistently across integer widths
// and signedness, grounded on the teacher multimap's Key type (key.go):
// integers are encoded 8-byte big-endian with a sign offset of 1<<63 so
// that byte-wise comparison tracks numeric order, and strings are
// normalized to Unicode NFC before encoding so that canonically
// equivalent strings produce identical keys.
package keycap

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ByteKey is a canonical byte encoding of a key, used internally by the
// built-in HashConfig/OrderedConfig implementations and available to
// callers building capabilities for composite keys.
type ByteKey []byte

const signOffset = uint64(1) << 63

// BytesFromString returns the UTF-8 encoding of s after NFC
// normalization, so that 'ä' (precomposed) and 'a'+combining-diaeresis
// (decomposed) produce the same ByteKey.
func BytesFromString(s string) ByteKey {
	return ByteKey(norm.NFC.String(s))
}

// BytesFromInt64 returns an order-preserving 8-byte big-endian encoding
// of i: negative values sort before zero and positive values because
// the sign offset shifts the entire int64 range into the unsigned range.
func BytesFromInt64(i int64) ByteKey {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+signOffset)
	return ByteKey(b[:])
}

// BytesFromUint64 returns an 8-byte big-endian encoding of u that
// preserves order for u < 1<<63; from 1<<63 upward the offset wraps
// around, so those values sort before BytesFromUint64(0).
// BytesFromUint64(0) equals BytesFromInt64(0): both constructors add the
// same offset, so values below 1<<63 sourced from different signedness
// but equal numerically produce identical keys.
func BytesFromUint64(u uint64) ByteKey {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+signOffset)
	return ByteKey(b[:])
}

// Equal reports whether a and b have identical contents.
func (a ByteKey) Equal(b ByteKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare returns a negative, zero, or positive value according to a's
// lexicographic byte order relative to b, with a shorter-but-otherwise-
// equal prefix sorting first.
func (a ByteKey) Compare(b ByteKey) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// String renders k as uppercase hex byte pairs, e.g. "[01,AB,00]".
func (k ByteKey) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}
