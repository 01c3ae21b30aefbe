package atomicx

import (
	"sync/atomic"
	"testing"
)

// ============================================================================
// SINGLE-THREADED COST
// ============================================================================

func BenchmarkInt32Get(b *testing.B) {
	var c Int32
	var sink int32
	for i := 0; i < b.N; i++ {
		sink += c.Get()
	}
	_ = sink
}

func BenchmarkInt32GetAcquire(b *testing.B) {
	var c Int32
	var sink int32
	for i := 0; i < b.N; i++ {
		sink += c.GetAcquire()
	}
	_ = sink
}

func BenchmarkUint64Set(b *testing.B) {
	var c Uint64
	for i := 0; i < b.N; i++ {
		c.Set(uint64(i))
	}
}

func BenchmarkUint64SetRelease(b *testing.B) {
	var c Uint64
	for i := 0; i < b.N; i++ {
		c.SetRelease(uint64(i))
	}
}

func BenchmarkUint64SetRelaxed(b *testing.B) {
	var c Uint64
	for i := 0; i < b.N; i++ {
		c.SetRelaxed(uint64(i))
	}
}

func BenchmarkInt64IncrementNv(b *testing.B) {
	var c Int64
	for i := 0; i < b.N; i++ {
		c.IncrementNv()
	}
}

func BenchmarkUint32TestAndSwap(b *testing.B) {
	var c Uint32
	for i := 0; i < b.N; i++ {
		c.TestAndSwap(uint32(i), uint32(i+1))
	}
}

// BenchmarkStdlibCompareAndSwap is the baseline for TestAndSwap.
func BenchmarkStdlibCompareAndSwap(b *testing.B) {
	var w uint32
	for i := 0; i < b.N; i++ {
		atomic.CompareAndSwapUint32(&w, uint32(i), uint32(i+1))
	}
}

// ============================================================================
// CONTENDED COST
// ============================================================================

func BenchmarkInt64IncrementParallel(b *testing.B) {
	var c Int64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Increment()
		}
	})
}

func BenchmarkUint64TestAndSwapLoopParallel(b *testing.B) {
	var c Uint64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for {
				old := c.Get()
				if c.TestAndSwap(old, old+1) == old {
					break
				}
			}
		}
	})
}
