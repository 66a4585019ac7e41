package rhash

import (
	"hash/maphash"
	"sync/atomic"
)

// perturbCounter is the process-wide monotonic counter of spec §4.1: every
// Table draws a perturbation that folds in both this counter and a fresh
// maphash seed, so that two Tables created back-to-back never collide even
// if the scheduler interleaves their construction.
var perturbCounter atomic.Uint64

// newPerturbation draws a fresh per-instance hash-mixing seed. It is called
// once at construction and once more for every Clone, which is why Clone
// cannot simply copy a source Table's slot arrays: the clone's probe
// sequence for the same keys will generally differ from the source's.
func newPerturbation() uint64 {
	count := perturbCounter.Add(1)
	seed := maphash.MakeSeed()
	// Mix the counter through the same seed so that a counter that
	// happens to share low bits with another instance's doesn't produce
	// a correlated perturbation.
	return mixScrambled(count, maphash.Comparable(seed, count))
}
