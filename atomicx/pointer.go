package atomicx

import "sync/atomic"

// Pointer is an atomic *T cell.  Values compare by address identity.
//
// Pointer words always go through sync/atomic, whatever the target: stores
// must run the garbage collector's write barrier, which hand-written
// loads and stores would bypass.  The weak variants are therefore at least
// as strong as requested.
//
// The zero value holds nil.  A Pointer must not be copied after first use.
type Pointer[T any] struct {
	_ noCopy
	p atomic.Pointer[T]
}

// Init sets the cell before it is shared.  A pointer store needs the write
// barrier even here, so Init is an ordinary atomic store.
func (c *Pointer[T]) Init(v *T) {
	c.p.Store(v)
}

// Get is a sequentially consistent load.
func (c *Pointer[T]) Get() *T {
	return c.p.Load()
}

// GetRelaxed loads the cell with no ordering beyond atomicity.
func (c *Pointer[T]) GetRelaxed() *T {
	return c.p.Load()
}

// GetAcquire loads the cell with acquire ordering.
func (c *Pointer[T]) GetAcquire() *T {
	return c.p.Load()
}

// Set is a sequentially consistent store.
func (c *Pointer[T]) Set(v *T) {
	c.p.Store(v)
}

// SetRelaxed stores v with no ordering beyond atomicity.
func (c *Pointer[T]) SetRelaxed(v *T) {
	c.p.Store(v)
}

// SetRelease stores v with release ordering.
func (c *Pointer[T]) SetRelease(v *T) {
	c.p.Store(v)
}

// Swap stores v and returns the previous pointer.
func (c *Pointer[T]) Swap(v *T) *T {
	return c.p.Swap(v)
}

// SwapAcqRel is Swap with acquire/release ordering.
func (c *Pointer[T]) SwapAcqRel(v *T) *T {
	return c.p.Swap(v)
}

// TestAndSwap replaces the pointer with desired if it is expected and
// returns the pointer held before the operation.
func (c *Pointer[T]) TestAndSwap(expected, desired *T) *T {
	for {
		cur := c.p.Load()
		if cur != expected {
			return cur
		}
		if c.p.CompareAndSwap(expected, desired) {
			return expected
		}
	}
}

// TestAndSwapAcqRel is TestAndSwap with acquire/release ordering.
func (c *Pointer[T]) TestAndSwapAcqRel(expected, desired *T) *T {
	return c.TestAndSwap(expected, desired)
}
