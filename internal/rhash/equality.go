package rhash

// Keys calls fn for every occupied slot's key, stopping early if fn
// returns false. This is the shared engine under hashset/hashmap's All
// iterator views built on iter.Seq. Per spec §4.8, the primary order is
// decreasing slot index, with the sentinel off-band cell (if present)
// visited last: this gives shorter probe chains on average when the
// callback reinserts into another hash container sharing a related
// perturbation.
func (t *Table[K, V]) Keys(fn func(K) bool) {
	zero := zeroOf[K]()
	for i := len(t.keys) - 1; i >= 0; i-- {
		if t.keys[i] == zero {
			continue
		}
		if !fn(t.keys[i]) {
			return
		}
	}
	if t.hasSentinelKey {
		fn(zero)
	}
}

// Entries calls fn for every occupied slot's key/value pair, stopping
// early if fn returns false. Ordering follows Keys (spec §4.8).
func (t *Table[K, V]) Entries(fn func(K, V) bool) {
	zero := zeroOf[K]()
	for i := len(t.keys) - 1; i >= 0; i-- {
		if t.keys[i] == zero {
			continue
		}
		if !fn(t.keys[i], t.values[i]) {
			return
		}
	}
	if t.hasSentinelKey {
		fn(zero, t.sentinelValue)
	}
}

// Equal reports whether t and other contain the same set of keys (for a
// set-shaped Table, V is struct{} and values are ignored) or the same
// key/value pairs (for a map-shaped Table), independent of internal slot
// order or either table's perturbation (spec §9, "container equality is
// order-independent").
func (t *Table[K, V]) Equal(other *Table[K, V], valueEqual func(a, b V) bool) bool {
	if t.Len() != other.Len() {
		return false
	}
	equal := true
	t.Entries(func(k K, v V) bool {
		ov, ok := other.Get(k)
		if !ok || (valueEqual != nil && !valueEqual(v, ov)) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// HashCode computes an order-independent hash of t's contents by summing
// each element's own hash, mirroring HPPC-RT's HashContainers.hashCode
// convention (XOR/sum combiners are order independent; plain concatenation
// is not).
func (t *Table[K, V]) HashCode(valueHash func(v V) uint64) uint64 {
	var sum uint64
	t.Entries(func(k K, v V) bool {
		h := rawHash(k, t.hasher)
		if valueHash != nil {
			h = mixScrambled(h, valueHash(v))
		}
		sum += h
		return true
	})
	return sum
}

// ToSlice appends every occupied key to dst and returns the result, in
// the same order as Keys (spec §6 bulk views).
func (t *Table[K, V]) ToSlice(dst []K) []K {
	t.Keys(func(k K) bool {
		dst = append(dst, k)
		return true
	})
	return dst
}

// Clone returns an independent copy of t with its own freshly drawn
// perturbation (spec §4.1: perturbation is per-instance, so a clone's
// probe sequence for the same keys generally differs from its source's)
// and its own cursor pool.
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		loadFactor:     t.loadFactor,
		allocator:      t.allocator,
		perturbation:   newPerturbation(),
		lastSlot:       -1,
		hasher:         t.hasher,
		robinHood:      t.robinHood,
		defaultValue:   t.defaultValue,
		assigned:       t.assigned,
		hasSentinelKey: t.hasSentinelKey,
		sentinelValue:  t.sentinelValue,
	}
	c.allocate(len(t.keys))

	if !c.robinHood {
		// Plain linear probing has no per-instance-dependent ordering
		// beyond the hash itself already folded through perturbation, so
		// a clone drawing its own perturbation must still reinsert: the
		// slot each key lands in depends on c.perturbation, not t's.
		c.assigned = 0
		zero := zeroOf[K]()
		for i, k := range t.keys {
			if k == zero {
				continue
			}
			c.putLinear(k, t.values[i])
		}
		return c
	}

	c.assigned = 0
	zero := zeroOf[K]()
	for i, k := range t.keys {
		if k == zero {
			continue
		}
		c.putRobinHood(k, t.values[i])
	}
	return c
}
