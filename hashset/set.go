// Package hashset provides Set, an open-addressed hash set built on the
// same linear-probing, Robin-Hood-capable engine as package hashmap.
package hashset

import (
	"iter"

	"github.com/zhangdinet/hppcrt/internal/rhash"
)

// Set is an open-addressed hash set of comparable keys. The zero Set is
// not usable; construct one with New. Sets are not safe for concurrent
// use without external synchronization.
type Set[K comparable] struct {
	t *rhash.Table[K, struct{}]
}

// Option configures a Set at construction time.
type Option[K comparable] = rhash.Option[K, struct{}]

// WithLoadFactor overrides the default load factor (0.75).
func WithLoadFactor[K comparable](loadFactor float64) Option[K] {
	return rhash.WithLoadFactor[K, struct{}](loadFactor)
}

// WithHasher installs a custom hash/equality strategy and switches the
// set onto the Robin-Hood insertion/lookup path.
func WithHasher[K comparable](hasher rhash.Hasher[K]) Option[K] {
	return rhash.WithHasher[K, struct{}](hasher)
}

// WithRobinHood force-enables or force-disables Robin-Hood displacement.
func WithRobinHood[K comparable](enabled bool) Option[K] {
	return rhash.WithRobinHood[K, struct{}](enabled)
}

// New constructs an empty Set sized to hold expectedElements without
// triggering a grow.
func New[K comparable](expectedElements int, opts ...Option[K]) (*Set[K], error) {
	t, err := rhash.New[K, struct{}](expectedElements, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{t: t}, nil
}

// From constructs a Set containing every element of keys.
func From[K comparable](keys []K, opts ...Option[K]) (*Set[K], error) {
	s, err := New[K](len(keys), opts...)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if _, err := s.t.Put(k, struct{}{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts key if absent and reports whether it was newly inserted.
func (s *Set[K]) Add(key K) (bool, error) {
	return s.t.Put(key, struct{}{})
}

// AddAll inserts every element of other and returns the count newly
// inserted.
func (s *Set[K]) AddAll(other *Set[K]) (int, error) {
	return s.t.PutAllFrom(other.t)
}

// AddAllSlice inserts every element of keys and returns the count newly
// inserted.
func (s *Set[K]) AddAllSlice(keys []K) (int, error) {
	added := 0
	for _, k := range keys {
		wasNew, err := s.t.Put(k, struct{}{})
		if err != nil {
			return added, err
		}
		if wasNew {
			added++
		}
	}
	return added, nil
}

// Contains reports whether key is a member of the set, memoizing the slot
// it was found at for a subsequent LKey/LSlot call (spec §6).
func (s *Set[K]) Contains(key K) bool {
	return s.t.ContainsKey(key)
}

// Remove deletes key if present and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.t.Remove(key)
	return ok
}

// RemoveAll deletes every element of other present in s and returns the
// count removed.
func (s *Set[K]) RemoveAll(other *Set[K]) int {
	removed := 0
	other.Keys()(func(k K) bool {
		if s.Remove(k) {
			removed++
		}
		return true
	})
	return removed
}

// RetainAll keeps only the elements also present in other, removing the
// rest, and returns the count removed.
func (s *Set[K]) RetainAll(other *Set[K]) int {
	return s.t.RetainAllFunc(func(k K, _ struct{}) bool { return other.Contains(k) })
}

// RemoveFunc deletes every key for which pred reports true and returns
// the count removed.
func (s *Set[K]) RemoveFunc(pred func(K) bool) int {
	return s.t.RemoveAllFunc(func(k K, _ struct{}) bool { return pred(k) })
}

// RetainFunc keeps only the keys for which pred reports true, removing
// the rest, and returns the count removed.
func (s *Set[K]) RetainFunc(pred func(K) bool) int {
	return s.t.RetainAllFunc(func(k K, _ struct{}) bool { return pred(k) })
}

// Clear removes every element without reallocating the backing storage.
func (s *Set[K]) Clear() { s.t.Clear() }

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int { return s.t.Len() }

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool { return s.t.Len() == 0 }

// Cap returns the current backing-array capacity.
func (s *Set[K]) Cap() int { return s.t.Cap() }

// EnsureCapacity grows the set, if necessary, so it can hold
// expectedAdditional more elements without triggering a grow mid-insert.
func (s *Set[K]) EnsureCapacity(expectedAdditional int) error {
	return s.t.EnsureCapacity(expectedAdditional)
}

// Keys returns an iterator over the set's elements, in decreasing slot
// order with the sentinel (zero-value) element last, if present (spec
// §4.8).
func (s *Set[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) { s.t.Keys(yield) }
}

// ForEach calls fn for every element, stopping early if fn returns false,
// in the same order as Keys.
func (s *Set[K]) ForEach(fn func(K) bool) { s.t.Keys(fn) }

// ToSlice returns every element as a new slice, in the same order as Keys.
func (s *Set[K]) ToSlice() []K { return s.t.ToSlice(nil) }

// Equal reports whether s and other contain exactly the same elements.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.t.Equal(other.t, nil)
}

// HashCode returns an order-independent hash of the set's contents,
// suitable for use as a map key's component or a quick inequality check.
func (s *Set[K]) HashCode() uint64 { return s.t.HashCode(nil) }

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] { return &Set[K]{t: s.t.Clone()} }

// LKey returns the element at the slot memoized by the most recent
// successful Contains call (spec §6). Calling it without such a
// preceding call is a precondition violation reported as a StateError.
// HPPC-RT's set families expose lkey()/lslot() but no lget()/lset(): a
// set carries no value array to read or overwrite.
func (s *Set[K]) LKey() (K, error) { return s.t.LKey() }

// LSlot returns the backing slot index memoized by the most recent
// successful Contains call, or -1 for the sentinel element. Same
// precondition as LKey.
func (s *Set[K]) LSlot() (int, error) { return s.t.LSlot() }
