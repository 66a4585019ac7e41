// Package hashmap provides Map, an open-addressed hash map built on the
// same linear-probing, Robin-Hood-capable engine as package hashset.
package hashmap

import (
	"iter"

	"github.com/zhangdinet/hppcrt/internal/rhash"
)

// Map is an open-addressed hash map from comparable keys to values of any
// type. The zero Map is not usable; construct one with New. Maps are not
// safe for concurrent use without external synchronization.
type Map[K comparable, V any] struct {
	t *rhash.Table[K, V]
}

// Option configures a Map at construction time.
type Option[K comparable, V any] = rhash.Option[K, V]

// WithLoadFactor overrides the default load factor (0.75).
func WithLoadFactor[K comparable, V any](loadFactor float64) Option[K, V] {
	return rhash.WithLoadFactor[K, V](loadFactor)
}

// WithHasher installs a custom hash/equality strategy and switches the
// map onto the Robin-Hood insertion/lookup path.
func WithHasher[K comparable, V any](hasher rhash.Hasher[K]) Option[K, V] {
	return rhash.WithHasher[K, V](hasher)
}

// WithRobinHood force-enables or force-disables Robin-Hood displacement.
func WithRobinHood[K comparable, V any](enabled bool) Option[K, V] {
	return rhash.WithRobinHood[K, V](enabled)
}

// WithDefaultValue sets the value Get, GetOrDefault and Remove return for
// an absent key. AddTo and PutOrAdd do not use it.
func WithDefaultValue[K comparable, V any](value V) Option[K, V] {
	return rhash.WithDefaultValue[K, V](value)
}

// WithAllocator overrides the default make()-based slot-array allocator.
func WithAllocator[K comparable, V any](allocator rhash.Allocator[K, V]) Option[K, V] {
	return rhash.WithAllocator[K, V](allocator)
}

// New constructs an empty Map sized to hold expectedElements without
// triggering a grow.
func New[K comparable, V any](expectedElements int, opts ...Option[K, V]) (*Map[K, V], error) {
	t, err := rhash.New[K, V](expectedElements, opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// From constructs a Map from an existing key/value slice pair; keys and
// values must have equal length.
func From[K comparable, V any](keys []K, values []V, opts ...Option[K, V]) (*Map[K, V], error) {
	if len(keys) != len(values) {
		return nil, rhash.ErrConfig
	}
	m, err := New[K, V](len(keys), opts...)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		if _, err := m.t.Put(k, values[i]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Put inserts or overwrites key/value and reports whether key was newly
// inserted.
func (m *Map[K, V]) Put(key K, value V) (bool, error) {
	return m.t.Put(key, value)
}

// PutAll copies every key/value pair of other into m and returns the
// count newly inserted.
func (m *Map[K, V]) PutAll(other *Map[K, V]) (int, error) {
	return m.t.PutAllFrom(other.t)
}

// PutIfAbsent inserts key/value only if key is not already present, and
// reports whether it did so.
func (m *Map[K, V]) PutIfAbsent(key K, value V) (bool, error) {
	if m.t.ContainsKey(key) {
		return false, nil
	}
	return m.t.Put(key, value)
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

// GetOrDefault returns the value for key, or the map's configured
// default value (see WithDefaultValue) if key is absent.
func (m *Map[K, V]) GetOrDefault(key K) V {
	v, ok := m.t.Get(key)
	if ok {
		return v
	}
	return m.defaultValue()
}

func (m *Map[K, V]) defaultValue() V {
	// Lookup on the zero key only to probe defaultValue would be wrong
	// (it would consult the sentinel slot); defaultValue lives on Table
	// itself, exposed indirectly through a zero-cost accessor.
	return m.t.DefaultValue()
}

// ContainsKey reports whether key is present, memoizing the slot it was
// found at for a subsequent l* accessor call (spec §6).
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.t.ContainsKey(key)
}

// Remove deletes key if present and returns its value and whether it was
// present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.t.Remove(key)
}

// RemoveFunc deletes every key/value pair for which pred reports true and
// returns the count removed.
func (m *Map[K, V]) RemoveFunc(pred func(K, V) bool) int {
	return m.t.RemoveAllFunc(pred)
}

// RetainFunc keeps only the key/value pairs for which pred reports true,
// removing the rest, and returns the count removed.
func (m *Map[K, V]) RetainFunc(pred func(K, V) bool) int {
	return m.t.RetainAllFunc(pred)
}

// Clear removes every entry without reallocating the backing storage.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.Len() == 0 }

// Cap returns the current backing-array capacity.
func (m *Map[K, V]) Cap() int { return m.t.Cap() }

// EnsureCapacity grows the map, if necessary, so it can hold
// expectedAdditional more entries without triggering a grow mid-insert.
func (m *Map[K, V]) EnsureCapacity(expectedAdditional int) error {
	return m.t.EnsureCapacity(expectedAdditional)
}

// Keys returns an iterator over the map's keys, in decreasing slot order
// with the sentinel (zero-value) key last, if present (spec §4.8).
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) { m.t.Keys(yield) }
}

// Values returns an iterator over the map's values, in the same order as
// Keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.t.Entries(func(_ K, v V) bool { return yield(v) })
	}
}

// All returns an iterator over the map's key/value pairs, in the same
// order as Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.t.Entries(yield) }
}

// ForEach calls fn for every key/value pair, stopping early if fn returns
// false, in the same order as Keys.
func (m *Map[K, V]) ForEach(fn func(K, V) bool) { m.t.Entries(fn) }

// Equal reports whether m and other contain the same key/value pairs,
// comparing values with valueEqual.
func (m *Map[K, V]) Equal(other *Map[K, V], valueEqual func(a, b V) bool) bool {
	return m.t.Equal(other.t, valueEqual)
}

// HashCode returns an order-independent hash of the map's contents,
// combining each key's hash with valueHash(value) when valueHash is
// non-nil.
func (m *Map[K, V]) HashCode(valueHash func(v V) uint64) uint64 {
	return m.t.HashCode(valueHash)
}

// Clone returns an independent copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{t: m.t.Clone()} }

// Lookup finds key and, if present, returns a Cursor positioned on it for
// a subsequent LGet/LSet without a second probe. Call Cursor.Release when
// done with it. This is the recommended, non-fragile alternative to the
// classic l* accessors below (spec §9 open question).
func (m *Map[K, V]) Lookup(key K) (*Cursor[K, V], bool) {
	return m.t.Lookup(key)
}

// LKey returns the key at the slot memoized by the most recent successful
// ContainsKey call (spec §6). Calling it without such a preceding call is
// a precondition violation reported as a StateError.
func (m *Map[K, V]) LKey() (K, error) { return m.t.LKey() }

// LGet returns the value at the slot memoized by the most recent
// successful ContainsKey call. Same precondition as LKey.
func (m *Map[K, V]) LGet() (V, error) { return m.t.LGet() }

// LSet overwrites the value at the slot memoized by the most recent
// successful ContainsKey call, without re-probing. Same precondition as
// LKey.
func (m *Map[K, V]) LSet(value V) error { return m.t.LSet(value) }

// LSlot returns the backing slot index memoized by the most recent
// successful ContainsKey call, or -1 for the sentinel key. Same
// precondition as LKey.
func (m *Map[K, V]) LSlot() (int, error) { return m.t.LSlot() }

// Number is the set of value types AddTo and PutOrAdd accept, mirroring
// HPPC-RT's KTypeVTypeOpenHashMap.putOrAdd/addTo (available only on the
// numeric VType specializations in the original template).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PutOrAdd inserts putValue if key is absent, or adds incrementValue to
// the existing value if present, and returns the value now stored.
func PutOrAdd[K comparable, V Number](m *Map[K, V], key K, putValue, incrementValue V) (V, error) {
	if v, ok := m.t.Get(key); ok {
		sum := v + incrementValue
		if _, err := m.t.Put(key, sum); err != nil {
			return sum, err
		}
		return sum, nil
	}
	if _, err := m.t.Put(key, putValue); err != nil {
		return putValue, err
	}
	return putValue, nil
}

// AddTo adds incrementValue to the value stored at key, inserting
// incrementValue itself if key is absent, and returns the value now
// stored (HPPC-RT's addTo(key, v) = putOrAdd(key, v, v); the map's
// configured default value, if any, plays no part here).
func AddTo[K comparable, V Number](m *Map[K, V], key K, incrementValue V) (V, error) {
	return PutOrAdd(m, key, incrementValue, incrementValue)
}
