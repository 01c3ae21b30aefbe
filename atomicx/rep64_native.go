//go:build !mips && !mipsle && !lockedatomics

package atomicx

import "sync/atomic"

// Hardware-backed 64-bit representation.  Default operations use
// sync/atomic; the weak variants route through the per-arch helpers.

//go:nosplit
func (r *rep64) init(v uint64) { *r.ptr() = v }

//go:nosplit
func (r *rep64) load() uint64 { return atomic.LoadUint64(r.ptr()) }

//go:nosplit
func (r *rep64) loadRelaxed() uint64 { return loadRelaxed64(r.ptr()) }

//go:nosplit
func (r *rep64) loadAcquire() uint64 { return loadAcquire64(r.ptr()) }

//go:nosplit
func (r *rep64) store(v uint64) { atomic.StoreUint64(r.ptr(), v) }

//go:nosplit
func (r *rep64) storeRelaxed(v uint64) { storeRelaxed64(r.ptr(), v) }

//go:nosplit
func (r *rep64) storeRelease(v uint64) { storeRelease64(r.ptr(), v) }

// add returns the new value.
//
//go:nosplit
func (r *rep64) add(d uint64) uint64 { return atomic.AddUint64(r.ptr(), d) }

// swap returns the old value.
//
//go:nosplit
func (r *rep64) swap(v uint64) uint64 { return atomic.SwapUint64(r.ptr(), v) }

// cas returns the value found in the word before the operation.
//
//go:nosplit
func (r *rep64) cas(old, desired uint64) uint64 { return casValue64(r.ptr(), old, desired) }
