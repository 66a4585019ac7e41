// Package rhash is the open-addressed, linear-probing hash table engine
// that underpins both the hashset and hashmap facades. It is internal: the
// only operations a caller of this module sees are the Set/Map shapes in
// the hashset and hashmap packages.
package rhash

import "math/bits"

// MinCapacity is the smallest slot-array size a Table ever allocates.
const MinCapacity = 8

// DefaultLoadFactor mirrors the teacher's default and HPPC-RT's
// DEFAULT_LOAD_FACTOR: the fraction of slots that may be filled before a
// grow is triggered.
const DefaultLoadFactor = 0.75

// Table is the shared engine for both a hash set (V instantiated as
// struct{}, which occupies zero bytes per element) and a hash map (V
// instantiated as the value type). See spec §3 for the field-level
// invariants.
type Table[K comparable, V any] struct {
	keys   []K
	values []V
	// ideal caches each occupied slot's ideal bucket. It is nil unless
	// Robin-Hood is enabled (hasher != nil or forced via WithRobinHood);
	// when nil, distance is recomputed from keys[s] on demand (probe.go).
	ideal []int32

	assigned       int
	hasSentinelKey bool
	sentinelValue  V

	resizeAt   int
	loadFactor float64

	perturbation uint64
	defaultValue V
	robinHood    bool
	hasher       Hasher[K]
	allocator    Allocator[K, V]

	// lastSlot/lastSlotOK back the l* memo accessors (LKey/LGet/LSet/
	// LSlot in table.go), set by ContainsKey; a Cursor (cursor.go) keeps
	// its own slot instead. See spec §6 and SPEC_FULL.md OQ-1.
	lastSlot   int
	lastSlotOK bool

	// modCount increments on every structural mutation (insert, remove,
	// grow, clear). Cursor.LSet compares against the value captured at
	// Lookup time to reject a stale cursor; see cursor.go.
	modCount uint32

	pool cursorPool[K, V]
}

// zeroOf returns the zero value of K, which doubles as this Table's
// sentinel key (spec §3).
func zeroOf[K comparable]() K {
	var z K
	return z
}

// New constructs a Table sized to hold expectedElements without triggering
// a grow, per spec §3's lifecycle clause and P10. loadFactor must be in
// (0, 1]; invalid parameters report a ConfigError as soon as they're
// noticed, per spec §7.
func New[K comparable, V any](expectedElements int, opts ...Option[K, V]) (*Table[K, V], error) {
	t := &Table[K, V]{
		loadFactor:   DefaultLoadFactor,
		allocator:    defaultAllocator[K, V]{},
		perturbation: newPerturbation(),
		lastSlot:     -1,
	}
	for _, opt := range opts {
		opt.apply(t)
	}
	if t.loadFactor <= 0 || t.loadFactor > 1 {
		return nil, newConfigError("load factor %v must be in (0, 1]", t.loadFactor)
	}
	if expectedElements < 0 {
		return nil, newConfigError("expected elements %d must be >= 0", expectedElements)
	}

	capacity := capacityFor(expectedElements, t.loadFactor)
	t.allocate(capacity)
	return t, nil
}

// capacityFor returns the smallest power of two capacity that can hold
// expectedElements at loadFactor without a reallocation (spec §3
// lifecycle, P10), with HashContainerUtils.MIN_CAPACITY-style headroom.
func capacityFor(expectedElements int, loadFactor float64) int {
	internal := int(float64(expectedElements)/loadFactor) + MinCapacity
	return roundPow2(internal)
}

func roundPow2(n int) int {
	if n < MinCapacity {
		return MinCapacity
	}
	return 1 << bits.Len(uint(n-1))
}

// allocate installs fresh, empty backing arrays of the given capacity and
// recomputes resizeAt. It never mutates assigned/hasSentinelKey; callers
// that are replacing a live table's storage (grow.go) are responsible for
// reinserting elements afterward.
func (t *Table[K, V]) allocate(capacity int) {
	t.keys = t.allocator.AllocKeys(capacity)
	t.values = t.allocator.AllocValues(capacity)
	if t.robinHood {
		t.ideal = t.allocator.AllocIdeal(capacity)
	} else {
		t.ideal = nil
	}
	t.recalcResizeAt(capacity)
}

// isOccupied reports whether slot i holds a live key. The zero-value
// sentinel convention (spec §3, SPEC_FULL.md OQ-2) is used uniformly for
// every K, not just primitive types: it is the only occupancy test that is
// expressible for an arbitrary comparable type parameter in Go.
func (t *Table[K, V]) isOccupied(i int) bool {
	return t.keys[i] != zeroOf[K]()
}

func (t *Table[K, V]) eq(a, b K) bool {
	if t.hasher != nil {
		return t.hasher.Equal(a, b)
	}
	return a == b
}

func (t *Table[K, V]) hash(k K) uint64 {
	raw := rawHash(k, t.hasher)
	if t.hasher != nil {
		return mixScrambled(raw, t.perturbation)
	}
	return mixPrimitive(raw, t.perturbation)
}

// Len returns the number of live elements, including the sentinel key if
// present.
func (t *Table[K, V]) Len() int {
	n := t.assigned
	if t.hasSentinelKey {
		n++
	}
	return n
}

// Cap returns the current slot-array length.
func (t *Table[K, V]) Cap() int {
	return len(t.keys)
}

// DefaultValue returns the "missing key" value installed via
// WithDefaultValue, or V's zero value if none was set.
func (t *Table[K, V]) DefaultValue() V {
	return t.defaultValue
}

// Clear resets the table to empty in place, per spec §4.10: it does not
// reallocate.
func (t *Table[K, V]) Clear() {
	zero := zeroOf[K]()
	var zeroV V
	for i := range t.keys {
		t.keys[i] = zero
		t.values[i] = zeroV
	}
	if t.ideal != nil {
		for i := range t.ideal {
			t.ideal[i] = 0
		}
	}
	t.assigned = 0
	t.hasSentinelKey = false
	t.sentinelValue = zeroV
	t.lastSlotOK = false
	t.modCount++
	t.checkInvariants()
}
