package rhash

// grow doubles the table's capacity and reinserts every live element,
// drawing a fresh perturbation so the new table's probe sequences are not
// correlated with the old one's (spec §4.7, glossary "perturbation"). The
// new arrays are allocated before anything in the live table is touched:
// if AllocKeys/AllocValues/AllocIdeal panics or the allocator reports
// failure, the table is left exactly as it was (spec §4.7, §7 AllocError).
func (t *Table[K, V]) grow() error {
	oldKeys := t.keys
	oldValues := t.values
	newCapacity := len(t.keys) * 2
	if newCapacity == 0 {
		newCapacity = MinCapacity
	}

	newKeys := t.allocator.AllocKeys(newCapacity)
	newValues := t.allocator.AllocValues(newCapacity)
	var newIdeal []int32
	if t.robinHood {
		newIdeal = t.allocator.AllocIdeal(newCapacity)
	}
	if len(newKeys) != newCapacity || len(newValues) != newCapacity {
		return newAllocError("allocator returned %d/%d slots for capacity %d", len(newKeys), len(newValues), newCapacity)
	}
	if t.robinHood && len(newIdeal) != newCapacity {
		return newAllocError("allocator returned %d ideal slots for capacity %d", len(newIdeal), newCapacity)
	}

	oldAllocator := t.allocator
	oldIdealArr := t.ideal

	t.keys = newKeys
	t.values = newValues
	t.ideal = newIdeal
	t.perturbation = newPerturbation()
	t.assigned = 0
	t.recalcResizeAt(newCapacity)

	// Reinsert in reverse slot order (spec §4.7): this minimizes the
	// length of transient probe chains built up while refilling, since
	// the highest-probed occupants of the old table (the ones most likely
	// to have traveled furthest) are reinserted first, into an otherwise
	// still-empty table.
	zero := zeroOf[K]()
	for i := len(oldKeys) - 1; i >= 0; i-- {
		if oldKeys[i] == zero {
			continue
		}
		if t.robinHood {
			t.putRobinHood(oldKeys[i], oldValues[i])
		} else {
			t.putLinear(oldKeys[i], oldValues[i])
		}
	}

	oldAllocator.FreeKeys(oldKeys)
	oldAllocator.FreeValues(oldValues)
	if oldIdealArr != nil {
		oldAllocator.FreeIdeal(oldIdealArr)
	}

	t.lastSlotOK = false
	t.modCount++
	t.checkInvariants()
	return nil
}

// recalcResizeAt recomputes resizeAt for a capacity the caller has already
// installed into t.keys/t.values/t.ideal; it is grow's counterpart to
// allocate, which additionally performs the allocation itself. resizeAt
// caps out at capacity-1 so at least one slot is always empty,
// guaranteeing probe termination (spec §4.7, P1).
func (t *Table[K, V]) recalcResizeAt(capacity int) {
	t.resizeAt = capacity - 1
	if at := int(float64(capacity) * t.loadFactor); at < t.resizeAt {
		t.resizeAt = at
	}
	if t.resizeAt < 1 {
		t.resizeAt = 1
	}
}

// EnsureCapacity grows the table, if necessary, so that it can hold
// expectedAdditional more elements without triggering a grow
// mid-insert. This is HPPC's ensureCapacity, supplemented into the spec
// per SPEC_FULL.md §6.
func (t *Table[K, V]) EnsureCapacity(expectedAdditional int) error {
	if expectedAdditional < 0 {
		return newConfigError("expected additional %d must be >= 0", expectedAdditional)
	}
	want := t.assigned + expectedAdditional
	for want > t.resizeAt {
		if err := t.grow(); err != nil {
			return err
		}
	}
	return nil
}
