// ring.go
//
// Single-producer/single-consumer hand-off ring built on the atomicx
// Acquire/Release pair.  Each slot carries a sequence cell: the producer
// writes the payload and then SetRelease()s the sequence, the consumer
// GetAcquire()s the sequence before touching the payload.  That pairing is
// the only synchronisation in the hot path; head and tail are each owned by
// exactly one side and never shared.
//
// Producer and consumer fields sit on separate cache lines so the two
// sides never false-share.

package ring

import (
	"unsafe"

	"github.com/parsa/bde/atomicx"
	"github.com/parsa/bde/spin"
	"golang.org/x/sys/cpu"
)

// slot couples a payload pointer with its sequence stamp.
type slot struct {
	seq atomicx.Uint64 // position in the sequence space
	ptr unsafe.Pointer // user payload, guarded by seq
}

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer.
type Ring struct {
	_    cpu.CacheLinePad
	head uint64 // consumer only
	_    cpu.CacheLinePad
	tail uint64 // producer only
	_    cpu.CacheLinePad
	mask uint64
	buf  []slot
}

// New allocates a ring whose size must be a power of two; otherwise it
// panics so that the bit-masking arithmetic stays valid.
func New(size int) *Ring {
	if size <= 0 || size&(size-1) != 0 {
		panic("ring: size must be >0 and a power of two")
	}
	r := &Ring{
		mask: uint64(size - 1),
		buf:  make([]slot, size),
	}
	for i := range r.buf {
		r.buf[i].seq.Init(uint64(i))
	}
	return r
}

// Cap returns the number of slots.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Push enqueues p, returning false if the buffer is full.  Producer only.
//
//go:nosplit
func (r *Ring) Push(p unsafe.Pointer) bool {
	t := r.tail
	s := &r.buf[t&r.mask]
	if s.seq.GetAcquire() != t {
		return false // consumer has not yet reclaimed the slot
	}
	s.ptr = p
	s.seq.SetRelease(t + 1)
	r.tail = t + 1
	return true
}

// Pop dequeues one pointer or nil if the buffer is empty.  Consumer only.
//
//go:nosplit
func (r *Ring) Pop() unsafe.Pointer {
	h := r.head
	s := &r.buf[h&r.mask]
	if s.seq.GetAcquire() != h+1 {
		return nil // producer has not yet published to the slot
	}
	p := s.ptr
	s.ptr = nil
	s.seq.SetRelease(h + uint64(len(r.buf)))
	r.head = h + 1
	return p
}

// PopWait spins until an item becomes available, relaxing and eventually
// yielding between polls.
func (r *Ring) PopWait() unsafe.Pointer {
	var b spin.Backoff
	for {
		if p := r.Pop(); p != nil {
			return p
		}
		b.Wait()
	}
}
