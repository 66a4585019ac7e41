package rhash

import "fmt"

// invariants gates the expensive, whole-table consistency walk in
// checkInvariants. It mirrors the teacher's own debug/invariants
// constants (map.go's "debug" const and its dangling "invariants"
// reference in checkInvariants): false in production, flipped to true by
// tests that want the slot-array checks below run after a mutation.
var invariants = false

// checkInvariants walks every slot and panics if the slot array is
// inconsistent: an occupied slot not reachable from its ideal bucket
// without crossing an empty slot, an assigned count that differs from the
// actual occupied count, or a Robin-Hood slot whose cached ideal bucket
// differs from a fresh rehash of its key. It is a no-op unless invariants
// is true.
func (t *Table[K, V]) checkInvariants() {
	if !invariants {
		return
	}
	mask := len(t.keys) - 1
	zero := zeroOf[K]()
	occupied := 0
	for s, k := range t.keys {
		if k == zero {
			continue
		}
		occupied++

		ideal := int(t.hash(k)) & mask
		if t.ideal != nil {
			if int(t.ideal[s]) != ideal {
				panic(fmt.Sprintf("rhash: slot %d cached ideal %d, want %d (key=%v)", s, t.ideal[s], ideal, k))
			}
		}

		// Every slot strictly between ideal and s (walking forward) must
		// be occupied; otherwise the key would be unreachable by find.
		for p := ideal; p != s; p = (p + 1) & mask {
			if !t.isOccupied(p) {
				panic(fmt.Sprintf("rhash: key %v at slot %d unreachable from ideal %d: gap at %d", k, s, ideal, p))
			}
		}
	}
	if occupied != t.assigned {
		panic(fmt.Sprintf("rhash: assigned=%d but found %d occupied slots", t.assigned, occupied))
	}
}
