package rhash

// Put inserts or overwrites key/value, growing the table first if the
// insertion would push it past resizeAt (spec §4.4, §4.7). It reports
// whether the key was newly inserted (false means an existing value was
// overwritten).
func (t *Table[K, V]) Put(key K, value V) (inserted bool, err error) {
	if key == zeroOf[K]() {
		wasNew := !t.hasSentinelKey
		t.hasSentinelKey = true
		t.sentinelValue = value
		t.lastSlot = -1
		t.lastSlotOK = false
		t.modCount++
		return wasNew, nil
	}

	if t.assigned >= t.resizeAt {
		if _, present := t.find(key); !present {
			if err := t.grow(); err != nil {
				return false, err
			}
		}
	}

	var wasInserted bool
	if t.robinHood {
		wasInserted = t.putRobinHood(key, value)
	} else {
		wasInserted = t.putLinear(key, value)
	}
	t.lastSlotOK = false
	t.checkInvariants()
	return wasInserted, nil
}

// putLinear implements plain linear-probe insertion: walk the probe
// sequence until an empty slot or an equal key is found (spec §4.4,
// non-Robin-Hood path).
func (t *Table[K, V]) putLinear(key K, value V) bool {
	mask := len(t.keys) - 1
	h := t.hash(key)
	for seq := makeProbeSeq(h, mask); ; seq = seq.next() {
		s := seq.offset
		if !t.isOccupied(s) {
			t.keys[s] = key
			t.values[s] = value
			t.assigned++
			t.modCount++
			return true
		}
		if t.eq(t.keys[s], key) {
			t.values[s] = value
			return false
		}
	}
}

// putRobinHood implements Robin-Hood insertion: the probing element swaps
// into any slot whose current occupant has traveled a shorter distance
// than it has, carrying the displaced occupant onward to continue probing
// (spec §4.4, glossary "Robin-Hood displacement").
func (t *Table[K, V]) putRobinHood(key K, value V) bool {
	mask := len(t.keys) - 1
	h := t.hash(key)
	ideal := int(h) & mask
	curKey, curValue, curIdeal := key, value, ideal
	dist := 0
	inserted := false
	first := true

	for seq := makeProbeSeq(h, mask); ; seq = seq.next() {
		s := seq.offset
		if !t.isOccupied(s) {
			t.keys[s] = curKey
			t.values[s] = curValue
			t.ideal[s] = int32(curIdeal)
			if first {
				t.assigned++
				inserted = true
			}
			t.modCount++
			return inserted
		}
		if first && t.eq(t.keys[s], key) {
			t.values[s] = value
			return false
		}

		existingDist := t.distance(s)
		if dist > existingDist {
			// The probing occupant has traveled farther than the current
			// resident: swap, and let the displaced resident continue
			// probing from here (the "steal from the rich" step).
			t.keys[s], curKey = curKey, t.keys[s]
			t.values[s], curValue = curValue, t.values[s]
			displacedIdeal := t.idealBucket(s)
			t.ideal[s] = int32(curIdeal)
			curIdeal = displacedIdeal
			dist = existingDist
			if first {
				t.assigned++
				inserted = true
				first = false
			}
		}
		dist++
	}
}

// Get returns the value associated with key and whether it was present
// (spec §4.4 lookup); for an absent key it returns the configured default
// value (see WithDefaultValue). It leaves the slot memoized for the l*
// accessors untouched: only ContainsKey sets that memo.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if key == zeroOf[K]() {
		if t.hasSentinelKey {
			return t.sentinelValue, true
		}
		return t.defaultValue, false
	}

	s, ok := t.find(key)
	if !ok {
		return t.defaultValue, false
	}
	return t.values[s], true
}

// ContainsKey reports whether key is present, memoizing the slot it was
// found at for a subsequent l* accessor call (spec §6: "the l* accessors
// ... read/modify the slot memoized by the most recent containsKey").
func (t *Table[K, V]) ContainsKey(key K) bool {
	if key == zeroOf[K]() {
		t.lastSlot = -1
		t.lastSlotOK = t.hasSentinelKey
		return t.hasSentinelKey
	}
	s, ok := t.find(key)
	if !ok {
		t.lastSlotOK = false
		return false
	}
	t.lastSlot = s
	t.lastSlotOK = true
	return true
}

// LKey returns the key at the slot memoized by the most recent successful
// ContainsKey (spec §6, HPPC-RT's lkey()). Calling it without such a
// preceding call, or after any intervening mutation, is a precondition
// violation (spec §7): reported as a StateError.
func (t *Table[K, V]) LKey() (K, error) {
	if !t.lastSlotOK {
		return zeroOf[K](), newStateError("LKey called without a preceding successful ContainsKey")
	}
	if t.lastSlot == -1 {
		return zeroOf[K](), nil
	}
	return t.keys[t.lastSlot], nil
}

// LGet returns the value at the slot memoized by the most recent
// successful ContainsKey (spec §6, HPPC-RT's lget()). Same precondition
// as LKey.
func (t *Table[K, V]) LGet() (V, error) {
	if !t.lastSlotOK {
		var zero V
		return zero, newStateError("LGet called without a preceding successful ContainsKey")
	}
	if t.lastSlot == -1 {
		return t.sentinelValue, nil
	}
	return t.values[t.lastSlot], nil
}

// LSet overwrites the value at the slot memoized by the most recent
// successful ContainsKey, in place, without re-probing (spec §6, HPPC-RT's
// lset()). Same precondition as LKey.
func (t *Table[K, V]) LSet(value V) error {
	if !t.lastSlotOK {
		return newStateError("LSet called without a preceding successful ContainsKey")
	}
	if t.lastSlot == -1 {
		t.sentinelValue = value
		return nil
	}
	t.values[t.lastSlot] = value
	return nil
}

// LSlot returns the backing slot index memoized by the most recent
// successful ContainsKey, or -1 for the sentinel key (spec §6, HPPC-RT's
// lslot()). Same precondition as LKey.
func (t *Table[K, V]) LSlot() (int, error) {
	if !t.lastSlotOK {
		return 0, newStateError("LSlot called without a preceding successful ContainsKey")
	}
	return t.lastSlot, nil
}

// find returns the slot holding key, if any. It does not handle the
// sentinel key; callers check that first.
func (t *Table[K, V]) find(key K) (int, bool) {
	mask := len(t.keys) - 1
	h := t.hash(key)

	if t.robinHood {
		dist := 0
		for seq := makeProbeSeq(h, mask); ; seq = seq.next() {
			s := seq.offset
			if !t.isOccupied(s) {
				return 0, false
			}
			if t.eq(t.keys[s], key) {
				return s, true
			}
			// Robin-Hood early exit: once every occupant we've passed has
			// traveled at least as far as we have, key cannot be further
			// down this probe sequence (spec §4.4 lookup short-circuit).
			if t.distance(s) < dist {
				return 0, false
			}
			dist++
		}
	}

	for seq := makeProbeSeq(h, mask); ; seq = seq.next() {
		s := seq.offset
		if !t.isOccupied(s) {
			return 0, false
		}
		if t.eq(t.keys[s], key) {
			return s, true
		}
	}
}

// Remove deletes key if present and reports whether it was present,
// returning the removed value, or the configured default value for an
// absent key. It uses backward-shift deletion (spec §4.4 remove): no
// tombstones are ever written, so the probe invariant (P1) never needs a
// tombstone-aware lookup path.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	if key == zeroOf[K]() {
		if !t.hasSentinelKey {
			return t.defaultValue, false
		}
		v := t.sentinelValue
		t.hasSentinelKey = false
		var zeroV V
		t.sentinelValue = zeroV
		t.lastSlotOK = false
		t.modCount++
		return v, true
	}

	s, ok := t.find(key)
	if !ok {
		t.lastSlotOK = false
		return t.defaultValue, false
	}
	v := t.values[s]
	t.removeSlot(s)
	t.lastSlotOK = false
	t.checkInvariants()
	return v, true
}

// removeSlot implements backward-shift deletion exactly per spec §4.6: g
// is the gap left by the just-removed key. Walking forward from g+1, each
// occupied slot s at step k (s = (g+k)&mask) is examined: if its distance
// from its own ideal bucket is >= k, its ideal lies on or before the gap,
// so it is moved into g, the gap moves to s, and the walk restarts with
// k=0; otherwise the slot is left untouched and the walk continues past
// it. The walk stops at the first empty slot. A slot with distance 0 at
// the first step (k=1) does not by itself end the walk — a later occupant
// further down the same probe run can still have a smaller ideal bucket
// that depends on g being filled, so scanning must continue regardless of
// what any single intermediate slot needs.
func (t *Table[K, V]) removeSlot(s int) {
	mask := len(t.keys) - 1
	zero := zeroOf[K]()
	var zeroV V

	gap := s
	k := 1
	for {
		next := (gap + k) & mask
		if !t.isOccupied(next) {
			break
		}
		if t.distance(next) >= k {
			t.keys[gap] = t.keys[next]
			t.values[gap] = t.values[next]
			if t.ideal != nil {
				t.ideal[gap] = t.ideal[next]
			}
			gap = next
			k = 0
		}
		k++
	}

	t.keys[gap] = zero
	t.values[gap] = zeroV
	if t.ideal != nil {
		t.ideal[gap] = 0
	}
	t.assigned--
	t.modCount++
}
