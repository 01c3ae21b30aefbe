// ════════════════════════════════════════════════════════════════════════════════════════════════
// 32-bit Atomic Cells
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Int32 / Uint32 operation catalogue
//
// Description:
//   One generic operation set over a 32-bit word, instantiated for signed and unsigned kinds.
//   Signed arithmetic wraps in two's complement and unsigned wraps modulo 2^32, exactly like
//   the machine word: both kinds share the same uint32 storage and the same hardware add.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package atomicx

import "sync/atomic"

// Word32 is the set of kinds stored in a 32-bit cell.
type Word32 interface {
	~int32 | ~uint32
}

// Cell32 is an atomic 32-bit cell.  The zero value holds zero and is ready
// for use.  A Cell32 must not be copied after first use.
type Cell32[T Word32] struct {
	_ noCopy
	v uint32
}

// Int32 is an atomic int32.
type Int32 = Cell32[int32]

// Uint32 is an atomic uint32.
type Uint32 = Cell32[uint32]

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Init sets the cell without synchronization.  Only valid before the cell
// is visible to any other goroutine.
//
//go:nosplit
func (c *Cell32[T]) Init(v T) {
	c.v = uint32(v)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// LOADS & STORES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Get is a sequentially consistent load.
//
//go:nosplit
func (c *Cell32[T]) Get() T {
	return T(atomic.LoadUint32(&c.v))
}

// GetRelaxed loads the cell with no ordering beyond atomicity.
//
//go:nosplit
func (c *Cell32[T]) GetRelaxed() T {
	return T(loadRelaxed32(&c.v))
}

// GetAcquire loads the cell with acquire ordering.
//
//go:nosplit
func (c *Cell32[T]) GetAcquire() T {
	return T(loadAcquire32(&c.v))
}

// Set is a sequentially consistent store.
//
//go:nosplit
func (c *Cell32[T]) Set(v T) {
	atomic.StoreUint32(&c.v, uint32(v))
}

// SetRelaxed stores v with no ordering beyond atomicity.
//
//go:nosplit
func (c *Cell32[T]) SetRelaxed(v T) {
	storeRelaxed32(&c.v, uint32(v))
}

// SetRelease stores v with release ordering.
//
//go:nosplit
func (c *Cell32[T]) SetRelease(v T) {
	storeRelease32(&c.v, uint32(v))
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ARITHMETIC
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Go exposes a single strength for read-modify-write operations, so the
// AcqRel and Relaxed variants are served by the same instruction.  They keep
// their names so call sites document the order the algorithm relies on.

// Add atomically adds d.
//
//go:nosplit
func (c *Cell32[T]) Add(d T) {
	atomic.AddUint32(&c.v, uint32(d))
}

// AddAcqRel atomically adds d with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) AddAcqRel(d T) {
	atomic.AddUint32(&c.v, uint32(d))
}

// AddRelaxed atomically adds d with no ordering guarantee.
//
//go:nosplit
func (c *Cell32[T]) AddRelaxed(d T) {
	atomic.AddUint32(&c.v, uint32(d))
}

// AddNv atomically adds d and returns the new value.
//
//go:nosplit
func (c *Cell32[T]) AddNv(d T) T {
	return T(atomic.AddUint32(&c.v, uint32(d)))
}

// AddNvAcqRel is AddNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) AddNvAcqRel(d T) T {
	return T(atomic.AddUint32(&c.v, uint32(d)))
}

// AddNvRelaxed is AddNv with no ordering guarantee.
//
//go:nosplit
func (c *Cell32[T]) AddNvRelaxed(d T) T {
	return T(atomic.AddUint32(&c.v, uint32(d)))
}

// Subtract atomically subtracts d.
//
//go:nosplit
func (c *Cell32[T]) Subtract(d T) {
	atomic.AddUint32(&c.v, -uint32(d))
}

// SubtractAcqRel atomically subtracts d with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) SubtractAcqRel(d T) {
	atomic.AddUint32(&c.v, -uint32(d))
}

// SubtractRelaxed atomically subtracts d with no ordering guarantee.
//
//go:nosplit
func (c *Cell32[T]) SubtractRelaxed(d T) {
	atomic.AddUint32(&c.v, -uint32(d))
}

// SubtractNv atomically subtracts d and returns the new value.
//
//go:nosplit
func (c *Cell32[T]) SubtractNv(d T) T {
	return T(atomic.AddUint32(&c.v, -uint32(d)))
}

// SubtractNvAcqRel is SubtractNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) SubtractNvAcqRel(d T) T {
	return T(atomic.AddUint32(&c.v, -uint32(d)))
}

// SubtractNvRelaxed is SubtractNv with no ordering guarantee.
//
//go:nosplit
func (c *Cell32[T]) SubtractNvRelaxed(d T) T {
	return T(atomic.AddUint32(&c.v, -uint32(d)))
}

// Increment atomically adds one.
//
//go:nosplit
func (c *Cell32[T]) Increment() {
	atomic.AddUint32(&c.v, 1)
}

// IncrementAcqRel atomically adds one with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) IncrementAcqRel() {
	atomic.AddUint32(&c.v, 1)
}

// IncrementNv atomically adds one and returns the new value.
//
//go:nosplit
func (c *Cell32[T]) IncrementNv() T {
	return T(atomic.AddUint32(&c.v, 1))
}

// IncrementNvAcqRel is IncrementNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) IncrementNvAcqRel() T {
	return T(atomic.AddUint32(&c.v, 1))
}

// Decrement atomically subtracts one.
//
//go:nosplit
func (c *Cell32[T]) Decrement() {
	atomic.AddUint32(&c.v, ^uint32(0))
}

// DecrementAcqRel atomically subtracts one with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) DecrementAcqRel() {
	atomic.AddUint32(&c.v, ^uint32(0))
}

// DecrementNv atomically subtracts one and returns the new value.
//
//go:nosplit
func (c *Cell32[T]) DecrementNv() T {
	return T(atomic.AddUint32(&c.v, ^uint32(0)))
}

// DecrementNvAcqRel is DecrementNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) DecrementNvAcqRel() T {
	return T(atomic.AddUint32(&c.v, ^uint32(0)))
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// EXCHANGE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Swap atomically stores v and returns the previous value.
//
//go:nosplit
func (c *Cell32[T]) Swap(v T) T {
	return T(atomic.SwapUint32(&c.v, uint32(v)))
}

// SwapAcqRel is Swap with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) SwapAcqRel(v T) T {
	return T(atomic.SwapUint32(&c.v, uint32(v)))
}

// TestAndSwap replaces the value with desired if it equals expected.  It
// always returns the value held before the operation: the exchange took
// place exactly when the result equals expected.
//
//go:nosplit
func (c *Cell32[T]) TestAndSwap(expected, desired T) T {
	return T(casValue32(&c.v, uint32(expected), uint32(desired)))
}

// TestAndSwapAcqRel is TestAndSwap with acquire/release ordering.
//
//go:nosplit
func (c *Cell32[T]) TestAndSwapAcqRel(expected, desired T) T {
	return T(casValue32(&c.v, uint32(expected), uint32(desired)))
}
