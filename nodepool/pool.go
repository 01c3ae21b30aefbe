// ════════════════════════════════════════════════════════════════════════════════════════════════
// Bidirectional Node Pool
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Node storage for doubly linked containers
//
// Description:
//   Hands out Node[V] values (a Link header followed by the payload) carved from blocks that
//   come from an Allocator.  Deleted nodes go onto an intrusive free list threaded through
//   Link.Next and are reused before any new block is requested.  Blocks are only returned to
//   the allocator by Release.
//
// Growth:
//   Each replenish requests a block twice the size of the previous one, starting at 1 and
//   capped at MaxBlockNodes.  ReserveNodes requests exactly the asked-for count.
//
// ⚠️  Not safe for concurrent use; a Pool belongs to one container.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package nodepool

import "unsafe"

// MaxBlockNodes caps the geometric block growth.
const MaxBlockNodes = 32

// Link is the header every container node starts with.
type Link struct {
	Prev *Link
	Next *Link
}

// Node is a Link plus its payload.  Link must stay the first field so a
// *Link obtained from a Node converts back with FromLink.
type Node[V any] struct {
	Link
	Value V
}

// FromLink recovers the Node that embeds l.  l must have come from a
// Node[V] of the same V.
func FromLink[V any](l *Link) *Node[V] {
	return (*Node[V])(unsafe.Pointer(l))
}

// Pool owns node blocks for a single container.  Create pools with New.
type Pool[V any] struct {
	alloc      Allocator[V]
	blocks     [][]Node[V]
	free       *Link
	blockNodes int // size of the next replenish block
}

// New creates an empty pool.  A nil alloc selects HeapAllocator.
func New[V any](alloc Allocator[V]) *Pool[V] {
	if alloc == nil {
		alloc = HeapAllocator[V]{}
	}
	return &Pool[V]{alloc: alloc, blockNodes: 1}
}

// Allocator returns the allocator supplying this pool.
func (p *Pool[V]) Allocator() Allocator[V] {
	return p.alloc
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// FREE LIST
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func (p *Pool[V]) addBlock(n int) {
	block := p.alloc.Allocate(n)
	p.blocks = append(p.blocks, block)
	for i := len(block) - 1; i >= 0; i-- {
		block[i].Link = Link{Next: p.free}
		p.free = &block[i].Link
	}
}

func (p *Pool[V]) allocate() *Node[V] {
	if p.free == nil {
		p.addBlock(p.blockNodes)
		if p.blockNodes < MaxBlockNodes {
			p.blockNodes *= 2
		}
	}
	l := p.free
	p.free = l.Next
	*l = Link{}
	return FromLink[V](l)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// NODE LIFECYCLE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// EmplaceIntoNewNode returns a fresh unlinked node holding v.
func (p *Pool[V]) EmplaceIntoNewNode(v V) *Node[V] {
	n := p.allocate()
	n.Value = v
	return n
}

// CloneNode returns a fresh node holding a copy of orig's value.
func (p *Pool[V]) CloneNode(orig *Node[V]) *Node[V] {
	return p.EmplaceIntoNewNode(orig.Value)
}

// MoveIntoNewNode returns a fresh node holding orig's value and leaves orig
// with the zero value.
func (p *Pool[V]) MoveIntoNewNode(orig *Node[V]) *Node[V] {
	v := orig.Value
	var zero V
	orig.Value = zero
	return p.EmplaceIntoNewNode(v)
}

// DeleteNode drops n's value and returns n to the free list.  n must have
// been obtained from this pool and must already be unlinked.
func (p *Pool[V]) DeleteNode(n *Node[V]) {
	if n == nil {
		panic("nodepool: DeleteNode(nil)")
	}
	var zero V
	n.Value = zero
	n.Link = Link{Next: p.free}
	p.free = &n.Link
}

// ReserveNodes makes at least n nodes available without further
// allocation.  n must be positive.
func (p *Pool[V]) ReserveNodes(n int) {
	if n <= 0 {
		panic("nodepool: ReserveNodes requires n > 0")
	}
	p.addBlock(n)
}

// Release returns every block to the allocator.  Nodes handed out earlier
// become invalid.
func (p *Pool[V]) Release() {
	for _, b := range p.blocks {
		p.alloc.Deallocate(b)
	}
	p.blocks = nil
	p.free = nil
	p.blockNodes = 1
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OWNERSHIP TRANSFER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Adopt takes over other's blocks and free list, leaving other empty.  p
// must own no blocks and both pools must use equal allocators.
func (p *Pool[V]) Adopt(other *Pool[V]) {
	if len(p.blocks) != 0 {
		panic("nodepool: Adopt into a pool that owns storage")
	}
	if p.alloc != other.alloc {
		panic("nodepool: Adopt across different allocators")
	}
	p.blocks, p.free, p.blockNodes = other.blocks, other.free, other.blockNodes
	other.blocks, other.free, other.blockNodes = nil, nil, 1
}

// SwapRetainAllocators exchanges storage with other; each pool keeps its
// allocator.  The allocators must be equal.
func (p *Pool[V]) SwapRetainAllocators(other *Pool[V]) {
	if p.alloc != other.alloc {
		panic("nodepool: SwapRetainAllocators with different allocators")
	}
	p.swapStorage(other)
}

// SwapExchangeAllocators exchanges storage and allocators with other.
func (p *Pool[V]) SwapExchangeAllocators(other *Pool[V]) {
	p.swapStorage(other)
	p.alloc, other.alloc = other.alloc, p.alloc
}

func (p *Pool[V]) swapStorage(other *Pool[V]) {
	p.blocks, other.blocks = other.blocks, p.blocks
	p.free, other.free = other.free, p.free
	p.blockNodes, other.blockNodes = other.blockNodes, p.blockNodes
}

// Swap is a.SwapRetainAllocators(b).
func Swap[V any](a, b *Pool[V]) {
	a.SwapRetainAllocators(b)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INTROSPECTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// FreeNodes counts the nodes currently on the free list.
func (p *Pool[V]) FreeNodes() int {
	n := 0
	for l := p.free; l != nil; l = l.Next {
		n++
	}
	return n
}

// Capacity returns the total node count of all owned blocks.
func (p *Pool[V]) Capacity() int {
	n := 0
	for _, b := range p.blocks {
		n += len(b)
	}
	return n
}
