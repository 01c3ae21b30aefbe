package nodepool

// Allocator supplies the node blocks a Pool carves up.  Implementations
// must be comparable with ==: pools with equal allocators may exchange
// storage, pools with different ones may not.
type Allocator[V any] interface {
	Allocate(n int) []Node[V]
	Deallocate(block []Node[V])
}

// HeapAllocator allocates from the Go heap.  All HeapAllocator values are
// equal and interchangeable.
type HeapAllocator[V any] struct{}

func (HeapAllocator[V]) Allocate(n int) []Node[V] {
	return make([]Node[V], n)
}

// Deallocate leaves the block to the garbage collector.
func (HeapAllocator[V]) Deallocate([]Node[V]) {}

// CountingAllocator is a heap allocator that tracks outstanding blocks and
// nodes.  Compare it through a pointer; every *CountingAllocator is a
// distinct allocator.
type CountingAllocator[V any] struct {
	Blocks      int // outstanding blocks
	Nodes       int // outstanding nodes
	TotalBlocks int // blocks ever allocated
}

func (a *CountingAllocator[V]) Allocate(n int) []Node[V] {
	a.Blocks++
	a.Nodes += n
	a.TotalBlocks++
	return make([]Node[V], n)
}

func (a *CountingAllocator[V]) Deallocate(block []Node[V]) {
	a.Blocks--
	a.Nodes -= len(block)
}
