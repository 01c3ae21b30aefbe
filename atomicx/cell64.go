// ════════════════════════════════════════════════════════════════════════════════════════════════
// 64-bit Atomic Cells
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Int64 / Uint64 operation catalogue
//
// Description:
//   The 64-bit twin of cell32.go.  Storage is a rep64, whose layout and locking are chosen per
//   target by build tags (rep64_aligned64.go, rep64_aligned32.go, rep64_locked.go).  Signed
//   arithmetic wraps in two's complement and unsigned wraps modulo 2^64.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package atomicx

// Word64 is the set of kinds stored in a 64-bit cell.
type Word64 interface {
	~int64 | ~uint64
}

// Cell64 is an atomic 64-bit cell.  The zero value holds zero and is ready
// for use.  A Cell64 must not be copied after first use.
type Cell64[T Word64] struct {
	_ noCopy
	r rep64
}

// Int64 is an atomic int64.
type Int64 = Cell64[int64]

// Uint64 is an atomic uint64.
type Uint64 = Cell64[uint64]

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Init sets the cell without synchronization.  Only valid before the cell
// is visible to any other goroutine.
//
//go:nosplit
func (c *Cell64[T]) Init(v T) {
	c.r.init(uint64(v))
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// LOADS & STORES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Get is a sequentially consistent load.
//
//go:nosplit
func (c *Cell64[T]) Get() T {
	return T(c.r.load())
}

// GetRelaxed loads the cell with no ordering beyond atomicity.
//
//go:nosplit
func (c *Cell64[T]) GetRelaxed() T {
	return T(c.r.loadRelaxed())
}

// GetAcquire loads the cell with acquire ordering.
//
//go:nosplit
func (c *Cell64[T]) GetAcquire() T {
	return T(c.r.loadAcquire())
}

// Set is a sequentially consistent store.
//
//go:nosplit
func (c *Cell64[T]) Set(v T) {
	c.r.store(uint64(v))
}

// SetRelaxed stores v with no ordering beyond atomicity.
//
//go:nosplit
func (c *Cell64[T]) SetRelaxed(v T) {
	c.r.storeRelaxed(uint64(v))
}

// SetRelease stores v with release ordering.
//
//go:nosplit
func (c *Cell64[T]) SetRelease(v T) {
	c.r.storeRelease(uint64(v))
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
func (c *Cell64[T]) Add(d T) {
	c.r.add(uint64(d))
}

// AddAcqRel atomically adds d with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) AddAcqRel(d T) {
	c.r.add(uint64(d))
}

// AddRelaxed atomically adds d with no ordering guarantee.
//
//go:nosplit
func (c *Cell64[T]) AddRelaxed(d T) {
	c.r.add(uint64(d))
}

// AddNv atomically adds d and returns the new value.
//
//go:nosplit
func (c *Cell64[T]) AddNv(d T) T {
	return T(c.r.add(uint64(d)))
}

// AddNvAcqRel is AddNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) AddNvAcqRel(d T) T {
	return T(c.r.add(uint64(d)))
}

// AddNvRelaxed is AddNv with no ordering guarantee.
//
//go:nosplit
func (c *Cell64[T]) AddNvRelaxed(d T) T {
	return T(c.r.add(uint64(d)))
}

// Subtract atomically subtracts d.
//
//go:nosplit
func (c *Cell64[T]) Subtract(d T) {
	c.r.add(-uint64(d))
}

// SubtractAcqRel atomically subtracts d with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) SubtractAcqRel(d T) {
	c.r.add(-uint64(d))
}

// SubtractRelaxed atomically subtracts d with no ordering guarantee.
//
//go:nosplit
func (c *Cell64[T]) SubtractRelaxed(d T) {
	c.r.add(-uint64(d))
}

// SubtractNv atomically subtracts d and returns the new value.
//
//go:nosplit
func (c *Cell64[T]) SubtractNv(d T) T {
	return T(c.r.add(-uint64(d)))
}

// SubtractNvAcqRel is SubtractNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) SubtractNvAcqRel(d T) T {
	return T(c.r.add(-uint64(d)))
}

// SubtractNvRelaxed is SubtractNv with no ordering guarantee.
//
//go:nosplit
func (c *Cell64[T]) SubtractNvRelaxed(d T) T {
	return T(c.r.add(-uint64(d)))
}

// Increment atomically adds one.
//
//go:nosplit
func (c *Cell64[T]) Increment() {
	c.r.add(1)
}

// IncrementAcqRel atomically adds one with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) IncrementAcqRel() {
	c.r.add(1)
}

// IncrementNv atomically adds one and returns the new value.
//
//go:nosplit
func (c *Cell64[T]) IncrementNv() T {
	return T(c.r.add(1))
}

// IncrementNvAcqRel is IncrementNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) IncrementNvAcqRel() T {
	return T(c.r.add(1))
}

// Decrement atomically subtracts one.
//
//go:nosplit
func (c *Cell64[T]) Decrement() {
	c.r.add(^uint64(0))
}

// DecrementAcqRel atomically subtracts one with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) DecrementAcqRel() {
	c.r.add(^uint64(0))
}

// DecrementNv atomically subtracts one and returns the new value.
//
//go:nosplit
func (c *Cell64[T]) DecrementNv() T {
	return T(c.r.add(^uint64(0)))
}

// DecrementNvAcqRel is DecrementNv with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) DecrementNvAcqRel() T {
	return T(c.r.add(^uint64(0)))
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// EXCHANGE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Swap atomically stores v and returns the previous value.
//
//go:nosplit
func (c *Cell64[T]) Swap(v T) T {
	return T(c.r.swap(uint64(v)))
}

// SwapAcqRel is Swap with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) SwapAcqRel(v T) T {
	return T(c.r.swap(uint64(v)))
}

// TestAndSwap replaces the value with desired if it equals expected.  It
// always returns the value held before the operation: the exchange took
// place exactly when the result equals expected.
//
//go:nosplit
func (c *Cell64[T]) TestAndSwap(expected, desired T) T {
	return T(c.r.cas(uint64(expected), uint64(desired)))
}

// TestAndSwapAcqRel is TestAndSwap with acquire/release ordering.
//
//go:nosplit
func (c *Cell64[T]) TestAndSwapAcqRel(expected, desired T) T {
	return T(c.r.cas(uint64(expected), uint64(desired)))
}
