package keycap

import (
	"time"

	"github.com/dolthub/maphash"
)

// HashConfig describes the capability a key type K must provide to be
// usable in a hash-mapped-trie container: a 32-bit hash, an equality
// test, and (only so that Collision nodes can maintain a weight-balanced
// tree bucket, §3.2) a total ordering.
type HashConfig[K any] struct {
	Hash  func(K) uint32
	Equal func(K, K) bool
	Less  func(K, K) int
}

// bytesHasher produces 64-bit hashes of byte slices, reused across all
// built-in ByteKey-backed HashConfig instances. maphash.Hasher draws its
// seed once at process start, so hashes are stable for the lifetime of
// the process but (per spec.md §1 Non-goals) are never guaranteed stable
// across runs or library versions.
var bytesHasher = maphash.NewHasher[string]()

func hash32OfBytes(b ByteKey) uint32 {
	h := bytesHasher.Hash(string(b))
	// fold the 64-bit hash into 32 bits; xor-fold spreads entropy from
	// both halves instead of truncating, which matters once the result
	// is sliced into 5-bit HAMT routing groups (§3.1).
	return uint32(h) ^ uint32(h>>32)
}

// StringHashConfig returns the built-in HashConfig for string keys:
// NFC-normalized before hashing so canonically equivalent strings
// collide to the same bucket, and byte-wise ordered for Collision
// buckets.
func StringHashConfig() HashConfig[string] {
	return HashConfig[string]{
		Hash:  func(s string) uint32 { return hash32OfBytes(BytesFromString(s)) },
		Equal: func(a, b string) bool { return a == b },
		Less:  func(a, b string) int { return BytesFromString(a).Compare(BytesFromString(b)) },
	}
}

// IntHashConfig returns the built-in HashConfig for any signed integer
// key type, encoded via BytesFromInt64 so that differently-widthed
// integer keys sharing a numeric value would hash identically.
func IntHashConfig[K int | int8 | int16 | int32 | int64]() HashConfig[K] {
	return HashConfig[K]{
		Hash:  func(k K) uint32 { return hash32OfBytes(BytesFromInt64(int64(k))) },
		Equal: func(a, b K) bool { return a == b },
		Less:  func(a, b K) int { return int(a) - int(b) },
	}
}

// UintHashConfig returns the built-in HashConfig for any unsigned
// integer key type.
func UintHashConfig[K uint | uint8 | uint16 | uint32 | uint64]() HashConfig[K] {
	return HashConfig[K]{
		Hash: func(k K) uint32 { return hash32OfBytes(BytesFromUint64(uint64(k))) },
		Equal: func(a, b K) bool { return a == b },
		Less: func(a, b K) int {
			if a < b {
				return -1
			} else if a > b {
				return 1
			}
			return 0
		},
	}
}

// BoolHashConfig returns the built-in HashConfig for bool keys.
func BoolHashConfig() HashConfig[bool] {
	return HashConfig[bool]{
		Hash: func(b bool) uint32 {
			if b {
				return 1
			}
			return 0
		},
		Equal: func(a, b bool) bool { return a == b },
		Less: func(a, b bool) int {
			if a == b {
				return 0
			}
			if !a && b {
				return -1
			}
			return 1
		},
	}
}

// TimeHashConfig returns the built-in HashConfig for time.Time keys,
// comparing and hashing by UnixNano so that two Time values representing
// the same instant (regardless of monotonic reading or location) are
// treated as the same key.
func TimeHashConfig() HashConfig[time.Time] {
	return HashConfig[time.Time]{
		Hash:  func(t time.Time) uint32 { return hash32OfBytes(BytesFromInt64(t.UnixNano())) },
		Equal: func(a, b time.Time) bool { return a.Equal(b) },
		Less: func(a, b time.Time) int {
			an, bn := a.UnixNano(), b.UnixNano()
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		},
	}
}
