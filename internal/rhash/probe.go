package rhash

// probeSeq walks the linear probe sequence slot0, slot0+1, slot0+2, ...
// modulo the table's mask (spec §4.2). Unlike the teacher's quadratic,
// group-stepping probeSeq, this is a plain linear probe: there is no
// control-byte group to skip over.
type probeSeq struct {
	mask   int
	offset int
}

func makeProbeSeq(hash uint64, mask int) probeSeq {
	return probeSeq{mask: mask, offset: int(hash) & mask}
}

func (s probeSeq) next() probeSeq {
	return probeSeq{mask: s.mask, offset: (s.offset + 1) & s.mask}
}

// idealBucket returns slot s's ideal bucket: the cached value when
// Robin-Hood is enabled, else the bucket recomputed from the live key
// (spec §4.3).
func (t *Table[K, V]) idealBucket(s int) int {
	if t.ideal != nil {
		return int(t.ideal[s])
	}
	mask := len(t.keys) - 1
	return int(t.hash(t.keys[s])) & mask
}

// distance returns the number of probe steps occupant s took to reach its
// current slot from its ideal bucket (spec §4.3, the Robin-Hood "distance"
// of the glossary).
func (t *Table[K, V]) distance(s int) int {
	mask := len(t.keys) - 1
	return (s - t.idealBucket(s)) & mask
}
