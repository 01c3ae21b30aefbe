//go:build mips || mipsle || lockedatomics

// rep64_locked.go
//
// Critical-section fallback for targets without indivisible 64-bit
// accesses.  Every operation on every 64-bit cell takes the same mutex,
// dedicated to the 64-bit family, so operations on one cell are totally
// ordered and a reader can never observe half of a write.  Lock-freedom is
// lost; atomicity and the ordering contract are not.  The mutex acquire
// and release give each operation acquire/release semantics, and since all
// 64-bit cells share one lock the default operations are also totally
// ordered with each other.
//
// The lockedatomics tag forces this path on any target so the fallback can
// be exercised by the regular test suite.

package atomicx

import golock "github.com/viney-shih/go-lock"

var lock64 = golock.NewCASMutex()

// rep64 is a plain word; the fallback never touches it outside lock64.
type rep64 struct {
	v uint64
}

// LockFree64 reports whether 64-bit cells use hardware atomics.
const LockFree64 = false

func (r *rep64) init(v uint64) { r.v = v }

func (r *rep64) load() uint64 {
	lock64.Lock()
	v := r.v
	lock64.Unlock()
	return v
}

func (r *rep64) loadRelaxed() uint64 { return r.load() }

func (r *rep64) loadAcquire() uint64 { return r.load() }

func (r *rep64) store(v uint64) {
	lock64.Lock()
	r.v = v
	lock64.Unlock()
}

func (r *rep64) storeRelaxed(v uint64) { r.store(v) }

func (r *rep64) storeRelease(v uint64) { r.store(v) }

func (r *rep64) add(d uint64) uint64 {
	lock64.Lock()
	r.v += d
	v := r.v
	lock64.Unlock()
	return v
}

func (r *rep64) swap(v uint64) uint64 {
	lock64.Lock()
	old := r.v
	r.v = v
	lock64.Unlock()
	return old
}

func (r *rep64) cas(old, desired uint64) uint64 {
	lock64.Lock()
	cur := r.v
	if cur == old {
		r.v = desired
	}
	lock64.Unlock()
	return cur
}
