package rhash

import "hash/maphash"

// Hasher lets a caller override both the hash function and the equality
// relation used for a key type. Installing a Hasher switches a Table onto
// the Robin-Hood insertion/lookup path: see WithHasher and WithRobinHood.
type Hasher[K comparable] interface {
	// Hash returns a 64-bit hash code for k. It need not be adversary
	// resistant; the table's own perturbation does that job.
	Hash(k K) uint64
	// Equal reports whether a and b denote the same key.
	Equal(a, b K) bool
}

// rawSeed fixes the raw, pre-perturbation hash function for the default
// (no installed Hasher) path. It is shared process-wide, the same way the
// Go runtime shares one hash seed across all builtin maps; the per-Table
// perturbation, not this seed, is what decorrelates probe sequences
// between instances (spec §4.1).
var rawSeed = maphash.MakeSeed()

// rawHash produces the unmixed hash code for k: the user-supplied Hasher's
// code when one is installed, otherwise maphash's type-aware hash over k's
// value. This is the "raw_hash" of spec §4.1.
func rawHash[K comparable](k K, h Hasher[K]) uint64 {
	if h != nil {
		return h.Hash(k)
	}
	return maphash.Comparable(rawSeed, k)
}

// mixPrimitive is the multiplicative mixer used for the default (no
// installed Hasher) path: a Fibonacci-hashing multiply followed by a single
// xorshift fold, enough to spread maphash's already-avalanched bits across
// the low-order bits the slot mask selects.
func mixPrimitive(raw, perturbation uint64) uint64 {
	h := (raw ^ perturbation) * 0x9E3779B97F4A7C15
	h ^= h >> 29
	return h
}

// mixScrambled is the SplitMix64-style finalizer applied to a user-supplied
// hash code, which may be poorly distributed or adversarially chosen. It
// runs two full multiply-xorshift rounds rather than mixPrimitive's one.
func mixScrambled(raw, perturbation uint64) uint64 {
	h := raw ^ perturbation
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return h
}
