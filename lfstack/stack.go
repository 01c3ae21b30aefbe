// ════════════════════════════════════════════════════════════════════════════════════════════════
// Lock-Free Stack with Node Recycling
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Derived concurrency pattern (CAS retry loops over one head cell)
//
// Description:
//   Two singly linked lists share one node arena: the active list holds pushed values and the
//   free list holds nodes waiting for reuse.  Each list head is a single 64-bit atomic cell, so
//   the whole mutable state of a list is one word and every mutation is one TestAndSwap.
//
// Retry idiom (push, pop, allocateNode, freeNode):
//   1. Get the current head.
//   2. Compute the new head linked through the node being pushed or popped.
//   3. TestAndSwap(head, observed, new).
//   4. If the returned value differs from the observed one, another goroutine committed first:
//      back off and retry from step 1.  Otherwise the operation has committed.
//   Popping an observed-empty list returns immediately.
//
// Head word layout:
//   bits 63..32   generation, bumped by every successful TestAndSwap
//   bits 31..0    node handle (arena index + 1), 0 = empty
//
//   Nodes are recycled, so a bare handle would be exposed to ABA: a popper could observe head A
//   with successor B, stall while A and B are popped and A is pushed back, then install the
//   stale B.  The generation makes the stalled TestAndSwap fail.
//
// Arena:
//   Nodes are never freed individually while the stack is live.  They live in geometrically
//   growing chunks (64, 128, 256, ... nodes) installed lock-free with a Pointer TestAndSwap;
//   a goroutine that loses the install race drops its chunk.  Destroy releases everything
//   and must only run once no other goroutine uses the stack.
//
// Consistency:
//   Len and FreeLen are separate cells updated after the list operation commits.  They are
//   advisory under concurrency; no multi-cell invariant is maintained.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package lfstack

import (
	"context"
	"math/bits"

	"github.com/parsa/bde/atomicx"
	"github.com/parsa/bde/spin"
	"golang.org/x/sys/cpu"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ARENA GEOMETRY
// ═══════════════════════════════════════════════════════════════════════════════════════════════

const (
	// chunkBase is the node count of the first arena chunk.
	chunkBase = 64

	// maxChunks bounds the arena to chunkBase × (2^maxChunks − 1) nodes,
	// which still leaves every handle representable in 32 bits.
	maxChunks = 26

	// Capacity is the maximum number of distinct nodes a stack can own.
	Capacity = chunkBase * (1<<maxChunks - 1)

	handleMask = 1<<32 - 1
)

// locate maps an arena index to its chunk and offset.
func locate(i uint32) (int, uint32) {
	k := bits.Len32(i/chunkBase+1) - 1
	return k, i - chunkBase*(1<<k-1)
}

//go:nosplit
func pack(gen uint64, h uint32) uint64 {
	return gen<<32 | uint64(h)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE DATA STRUCTURES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

type node[T any] struct {
	next  atomicx.Uint32 // handle of the successor, 0 terminates
	value T
}

type chunk[T any] struct {
	nodes []node[T]
}

// Stack is a lock-free LIFO.  The zero value is an empty stack that retries
// CAS failures without backoff; New enables backoff and applies options.
//
// Push, Pop, PopWait, Reserve, Len and FreeLen are safe for concurrent use.
// Destroy is not.
type Stack[T any] struct {
	_    cpu.CacheLinePad
	head atomicx.Uint64 // active list
	_    cpu.CacheLinePad
	free atomicx.Uint64 // recycled nodes
	_    cpu.CacheLinePad

	claimed  atomicx.Uint32 // arena indices handed out so far
	size     atomicx.Int64
	freeSize atomicx.Int64

	backoff bool
	chunks  [maxChunks]atomicx.Pointer[chunk[T]]
}

// Option configures a Stack.
type Option func(*config)

type config struct {
	backoff bool
	reserve int
}

// WithBackoff toggles the spin-then-yield policy between CAS retries.  With
// false the loops retry immediately, which is the raw unbounded spin.
func WithBackoff(enabled bool) Option {
	return func(c *config) { c.backoff = enabled }
}

// WithReserve pre-allocates n nodes onto the free list.
func WithReserve(n int) Option {
	return func(c *config) { c.reserve = n }
}

// New creates an empty stack.  Backoff is enabled by default.
func New[T any](opts ...Option) *Stack[T] {
	cfg := config{backoff: true}
	for _, o := range opts {
		o(&cfg)
	}
	s := &Stack[T]{backoff: cfg.backoff}
	if cfg.reserve > 0 {
		s.Reserve(cfg.reserve)
	}
	return s
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ARENA ACCESS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// node returns the node for handle h (h ≥ 1).  The chunk is guaranteed to
// exist: a handle only becomes reachable after its chunk was installed.
func (s *Stack[T]) node(h uint32) *node[T] {
	k, off := locate(h - 1)
	return &s.chunks[k].Get().nodes[off]
}

// grow claims a never-used arena index and returns its handle.
func (s *Stack[T]) grow() uint32 {
	n := s.claimed.IncrementNv()
	if n == 0 || n > Capacity {
		panic("lfstack: node arena exhausted")
	}
	k, _ := locate(n - 1)
	if s.chunks[k].Get() == nil {
		fresh := &chunk[T]{nodes: make([]node[T], chunkBase<<k)}
		s.chunks[k].TestAndSwap(nil, fresh) // losing the race is fine
	}
	return n
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// LIST PRIMITIVES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// pushList links handle h in front of the list rooted at head.
func (s *Stack[T]) pushList(head *atomicx.Uint64, h uint32) {
	n := s.node(h)
	var b spin.Backoff
	for {
		old := head.Get()
		n.next.Set(uint32(old & handleMask))
		if head.TestAndSwap(old, pack(old>>32+1, h)) == old {
			return
		}
		if s.backoff {
			b.Wait()
		}
	}
}

// popList unlinks the first node of the list rooted at head.  It returns 0
// when the list was observed empty.
func (s *Stack[T]) popList(head *atomicx.Uint64) uint32 {
	var b spin.Backoff
	for {
		old := head.Get()
		h := uint32(old & handleMask)
		if h == 0 {
			return 0
		}
		// A stale node may be mid-reuse; its next is only trusted if the
		// generation still matches at the TestAndSwap below.
		next := s.node(h).next.Get()
		if head.TestAndSwap(old, pack(old>>32+1, next)) == old {
			return h
		}
		if s.backoff {
			b.Wait()
		}
	}
}

// allocateNode recycles a free node or grows the arena.
func (s *Stack[T]) allocateNode() uint32 {
	if h := s.popList(&s.free); h != 0 {
		s.freeSize.DecrementAcqRel()
		return h
	}
	return s.grow()
}

// freeNode clears the payload and returns the node to the free list.
func (s *Stack[T]) freeNode(h uint32) {
	var zero T
	s.node(h).value = zero
	s.pushList(&s.free, h)
	s.freeSize.IncrementAcqRel()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PUBLIC OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	h := s.allocateNode()
	s.node(h).value = v // published by the TestAndSwap in pushList
	s.pushList(&s.head, h)
	s.size.IncrementAcqRel()
}

// Pop removes and returns the top value.  On an empty stack it returns the
// zero value and false without retrying.
func (s *Stack[T]) Pop() (T, bool) {
	h := s.popList(&s.head)
	if h == 0 {
		var zero T
		return zero, false
	}
	v := s.node(h).value
	s.size.DecrementAcqRel()
	s.freeNode(h)
	return v, true
}

// PopWait pops, retrying with backoff while the stack is empty, until a
// value arrives or ctx is done.
func (s *Stack[T]) PopWait(ctx context.Context) (T, error) {
	var b spin.Backoff
	for {
		if v, ok := s.Pop(); ok {
			return v, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		b.Wait()
	}
}

// Reserve moves n fresh nodes onto the free list so later pushes do not
// grow the arena.
func (s *Stack[T]) Reserve(n int) {
	for i := 0; i < n; i++ {
		s.pushList(&s.free, s.grow())
		s.freeSize.IncrementAcqRel()
	}
}

// Empty reports whether the active list was observed empty.
func (s *Stack[T]) Empty() bool {
	return s.head.Get()&handleMask == 0
}

// Len returns the advisory number of values on the stack.
func (s *Stack[T]) Len() int {
	return int(s.size.GetAcquire())
}

// FreeLen returns the advisory number of nodes waiting for reuse.
func (s *Stack[T]) FreeLen() int {
	return int(s.freeSize.GetAcquire())
}

// Allocated returns the number of nodes ever taken from the arena.
func (s *Stack[T]) Allocated() int {
	return int(s.claimed.GetAcquire())
}

// Destroy walks both lists, drops every payload and releases the arena.  It
// returns the number of nodes found on the two lists.  The stack is empty
// and reusable afterwards.
//
// ⚠️  Single-goroutine only: no other operation may run concurrently.
func (s *Stack[T]) Destroy() int {
	var zero T
	walked := 0
	for _, head := range []*atomicx.Uint64{&s.head, &s.free} {
		for h := uint32(head.GetRelaxed() & handleMask); h != 0; walked++ {
			n := s.node(h)
			n.value = zero
			h = n.next.GetRelaxed()
		}
		head.Init(0)
	}
	for k := range s.chunks {
		s.chunks[k].Init(nil)
	}
	s.claimed.Init(0)
	s.size.Init(0)
	s.freeSize.Init(0)
	return walked
}
