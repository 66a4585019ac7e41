package rhash

// PutAllFrom copies every key/value pair of other into t, overwriting any
// existing values for keys both tables share, and returns the number of
// keys that were newly inserted (spec §6, HPPC-RT's putAll(container)).
func (t *Table[K, V]) PutAllFrom(other *Table[K, V]) (int, error) {
	if err := t.EnsureCapacity(other.Len()); err != nil {
		return 0, err
	}
	added := 0
	var putErr error
	other.Entries(func(k K, v V) bool {
		wasNew, err := t.Put(k, v)
		if err != nil {
			putErr = err
			return false
		}
		if wasNew {
			added++
		}
		return true
	})
	return added, putErr
}

// RemoveAllFunc removes every key for which pred reports true and returns
// the count removed (spec §4.10, HPPC-RT's removeAll(predicate)): a
// forward scan over physical slots that, on a match, runs the §4.6
// backward-shift starting at that slot and does not advance past it,
// since the shift may have just moved another live element into the
// slot just vacated. If pred panics, the slots already removed stay
// removed and the table is left consistent; the panic propagates.
func (t *Table[K, V]) RemoveAllFunc(pred func(K, V) bool) int {
	removed := 0

	if t.hasSentinelKey && pred(zeroOf[K](), t.sentinelValue) {
		t.hasSentinelKey = false
		var zeroV V
		t.sentinelValue = zeroV
		t.lastSlotOK = false
		t.modCount++
		removed++
	}

	for s := 0; s < len(t.keys); {
		if !t.isOccupied(s) {
			s++
			continue
		}
		if pred(t.keys[s], t.values[s]) {
			t.removeSlot(s)
			t.lastSlotOK = false
			removed++
			continue
		}
		s++
	}

	t.checkInvariants()
	return removed
}

// RetainAllFunc keeps only the keys for which pred reports true, removing
// the rest, and returns the count removed (spec §6, HPPC-RT's
// retainAll(predicate)).
func (t *Table[K, V]) RetainAllFunc(pred func(K, V) bool) int {
	return t.RemoveAllFunc(func(k K, v V) bool { return !pred(k, v) })
}
