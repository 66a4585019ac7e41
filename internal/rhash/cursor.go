package rhash

// Cursor is a handle onto a single occupied slot, returned by Lookup. It
// generalizes the classic l* accessors (LKey/LGet/LSet/LSlot) that HPPC-RT
// exposes as bare fields on the container itself (lkey/lvalue/lslot) into
// an explicit, poolable value so that concurrent lookups on the same
// Table don't clobber each other's memoized slot (SPEC_FULL.md OQ-1).
type Cursor[K comparable, V any] struct {
	table            *Table[K, V]
	slot             int
	sentinel         bool
	valid            bool
	modCountAtLookup uint32
}

// Lookup finds key and, if present, returns a Cursor positioned on it.
// The Cursor remains valid until the table is next mutated or the Cursor
// is released. Call Release when done with it to return it to the
// table's cursor pool.
func (t *Table[K, V]) Lookup(key K) (*Cursor[K, V], bool) {
	c := t.pool.acquire()
	c.table = t
	c.modCountAtLookup = t.modCount

	if key == zeroOf[K]() {
		if !t.hasSentinelKey {
			c.valid = false
			return c, false
		}
		c.sentinel = true
		c.valid = true
		return c, true
	}

	s, ok := t.find(key)
	if !ok {
		c.valid = false
		return c, false
	}
	c.sentinel = false
	c.slot = s
	c.valid = true
	return c, true
}

// Key returns the key the cursor is positioned on.
func (c *Cursor[K, V]) Key() K {
	if c.sentinel {
		return zeroOf[K]()
	}
	return c.table.keys[c.slot]
}

// LGet returns the value the cursor is positioned on (HPPC-RT's lvalue).
func (c *Cursor[K, V]) LGet() V {
	if c.sentinel {
		return c.table.sentinelValue
	}
	return c.table.values[c.slot]
}

// LSet overwrites the value the cursor is positioned on, in place,
// without touching the key or re-probing (HPPC-RT's convention for
// mutating in response to a prior containsKey/lget check).
func (c *Cursor[K, V]) LSet(value V) error {
	if !c.valid || c.table == nil {
		return newStateError("LSet called on an invalid or released cursor")
	}
	if c.modCountAtLookup != c.table.modCount {
		return newStateError("LSet called after the table was mutated since Lookup")
	}
	if c.sentinel {
		c.table.sentinelValue = value
		return nil
	}
	c.table.values[c.slot] = value
	return nil
}

// LSlot returns the backing slot index the cursor is positioned on, or -1
// for the sentinel key (HPPC-RT's lslot).
func (c *Cursor[K, V]) LSlot() int {
	if c.sentinel {
		return -1
	}
	return c.slot
}
