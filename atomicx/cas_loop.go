//go:build !amd64 || noasm || race

package atomicx

import "sync/atomic"

// casValue32 emulates a value-returning compare-and-exchange on top of the
// boolean CompareAndSwap.  A mismatch is reported with the value the load
// observed, which is the linearization point of the failed exchange.  The
// loop only repeats when the word moved away from old between the load and
// the exchange.
func casValue32(p *uint32, old, desired uint32) uint32 {
	for {
		cur := atomic.LoadUint32(p)
		if cur != old {
			return cur
		}
		if atomic.CompareAndSwapUint32(p, old, desired) {
			return old
		}
	}
}

// casValue64 is casValue32 for 64-bit words.
func casValue64(p *uint64, old, desired uint64) uint64 {
	for {
		cur := atomic.LoadUint64(p)
		if cur != old {
			return cur
		}
		if atomic.CompareAndSwapUint64(p, old, desired) {
			return old
		}
	}
}
