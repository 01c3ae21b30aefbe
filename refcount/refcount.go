// ════════════════════════════════════════════════════════════════════════════════════════════════
// Intrusive Reference-Counted Handle
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Derived concurrency pattern (shared ownership)
//
// Description:
//   A Handle points at a shared representation holding an Int32 count, the payload and its
//   destructor.  The count is the only synchronization: Clone increments with the plain form
//   because the caller does not need the result, Release decrements with the Nv form because
//   the caller must learn whether it reached zero.  Exactly one Release observes zero and runs
//   the destructor; the AcqRel decrement orders every earlier use of the payload by any owner
//   before the destruction.
//
// Lifecycle:
//   New          → count = 1
//   Clone        → count + 1, returns a second handle to the same rep
//   Release      → count − 1, destroys on 0, empties the handle
//
// Misuse (releasing the same handle twice from two goroutines, cloning a released handle from
// another goroutine) is undefined; a released handle is empty and Release on it is a no-op.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package refcount

import "github.com/parsa/bde/atomicx"

type rep[T any] struct {
	count   atomicx.Int32
	value   *T
	destroy func(*T)
}

// Handle is a non-owning reference to a shared rep.  Copying a Handle value
// does not add a reference; call Clone.
type Handle[T any] struct {
	r *rep[T]
}

// New creates the shared representation with a count of 1.  destroy may be
// nil.
func New[T any](v *T, destroy func(*T)) Handle[T] {
	r := &rep[T]{value: v, destroy: destroy}
	r.count.Init(1)
	return Handle[T]{r: r}
}

// Clone adds a reference and returns a new handle to the same payload.
func (h Handle[T]) Clone() Handle[T] {
	if h.r == nil {
		return Handle[T]{}
	}
	h.r.count.Increment()
	return Handle[T]{r: h.r}
}

// Release drops this handle's reference.  It reports whether this call
// destroyed the payload.
func (h *Handle[T]) Release() bool {
	r := h.r
	if r == nil {
		return false
	}
	h.r = nil
	if r.count.DecrementNvAcqRel() != 0 {
		return false
	}
	if r.destroy != nil {
		r.destroy(r.value)
	}
	r.value = nil
	return true
}

// Get returns the payload, or nil for an empty handle.
func (h Handle[T]) Get() *T {
	if h.r == nil {
		return nil
	}
	return h.r.value
}

// Count returns the current reference count.  Under concurrency it is
// stale as soon as it returns.
func (h Handle[T]) Count() int32 {
	if h.r == nil {
		return 0
	}
	return h.r.count.GetAcquire()
}

// Valid reports whether the handle still holds a reference.
func (h Handle[T]) Valid() bool {
	return h.r != nil
}

// Same reports whether two handles share one representation.
func (h Handle[T]) Same(o Handle[T]) bool {
	return h.r == o.r
}
