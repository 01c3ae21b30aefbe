// ============================================================================
// ATOMICITY UNDER CONTENTION
// ============================================================================
//
// Multi-goroutine validation of the no-lost-update and no-torn-read
// guarantees.
//
// Validation methodology:
//   - N writers × M increments must land on exactly N×M
//   - Concurrent observers must only ever see values inside [0, N×M] and,
//     because increments are the only writes, never see the value go down
//   - Swap partition: two-valued swaps only ever return one of the two values
//     and every call is accounted for
//   - TestAndSwap retry loops must produce the same totals as fetch-add
//   - 64-bit cells use values whose high and low halves both change so a
//     torn read is detectable

package atomicx

import (
	"runtime"
	"sync"
	"testing"
)

const (
	stressWriters   = 8
	stressPerWriter = 20000
	stressObservers = 2
)

// counterCell is the subset exercised by the contention runs.
type counterCell[T any] interface {
	Init(T)
	Get() T
	GetRelaxed() T
	IncrementNv() T
}

// runContention launches writers and observers against c and checks the
// final value and every observation.
func runContention[T integer](t *testing.T, c counterCell[T], bump func()) {
	t.Helper()
	c.Init(0)
	total := T(stressWriters * stressPerWriter)

	var (
		writers sync.WaitGroup
		obs     sync.WaitGroup
		done    Uint32
		bad     Uint32
	)

	for o := 0; o < stressObservers; o++ {
		obs.Add(1)
		go func() {
			defer obs.Done()
			var last T
			for done.Get() == 0 {
				v := c.GetRelaxed()
				if v < last || v > total {
					bad.Increment()
					return
				}
				last = v
				runtime.Gosched()
			}
		}()
	}

	for w := 0; w < stressWriters; w++ {
		writers.Add(1)
		go func() {
			defer writers.Done()
			for i := 0; i < stressPerWriter; i++ {
				bump()
			}
		}()
	}

	writers.Wait()
	done.Set(1)
	obs.Wait()

	if bad.Get() != 0 {
		t.Fatal("observer saw a value outside the set of partial sums")
	}
	if got := c.Get(); got != total {
		t.Fatalf("final value = %v, want %v (lost updates)", got, total)
	}
}

func TestContentionIncrementNv(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		c := new(Int32)
		runContention[int32](t, c, func() { c.IncrementNv() })
	})
	t.Run("uint32", func(t *testing.T) {
		c := new(Uint32)
		runContention[uint32](t, c, func() { c.Increment() })
	})
	t.Run("int64", func(t *testing.T) {
		c := new(Int64)
		runContention[int64](t, c, func() { c.AddAcqRel(1) })
	})
	t.Run("uint64", func(t *testing.T) {
		c := new(Uint64)
		runContention[uint64](t, c, func() { c.IncrementNvAcqRel() })
	})
}

// TestContentionTestAndSwapLoop builds fetch-add out of TestAndSwap, the
// way every derived algorithm does.
func TestContentionTestAndSwapLoop(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		c := new(Int32)
		runContention[int32](t, c, func() {
			for {
				old := c.Get()
				if c.TestAndSwap(old, old+1) == old {
					return
				}
			}
		})
	})
	t.Run("uint64", func(t *testing.T) {
		c := new(Uint64)
		runContention[uint64](t, c, func() {
			for {
				old := c.GetRelaxed()
				if c.TestAndSwapAcqRel(old, old+1) == old {
					return
				}
			}
		})
	})
}

// TestNoTornReads64 alternates two values that differ in both halves.
func TestNoTornReads64(t *testing.T) {
	const (
		a = uint64(0x0000_0000_ffff_ffff)
		b = uint64(0xffff_ffff_0000_0000)
	)
	var (
		c    Uint64
		stop Uint32
		wg   sync.WaitGroup
		torn uint64
		seen bool
	)
	c.Init(a)

	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; stop.Get() == 0; i++ {
				if (i+w)&1 == 0 {
					c.SetRelaxed(a)
				} else {
					c.Set(b)
				}
			}
		}(w)
	}

	for i := 0; i < 200000; i++ {
		if v := c.GetRelaxed(); v != a && v != b {
			torn, seen = v, true
			break
		}
	}
	stop.Set(1)
	wg.Wait()

	if seen {
		t.Fatalf("torn read observed: %#x", torn)
	}
}

// TestSwapPartition has K goroutines swapping between two values starting
// from A.  Every returned old value must be A or B, and the tallies must add
// up to the number of swaps performed.
func TestSwapPartition(t *testing.T) {
	const (
		k      = 8
		perK   = 10000
		valueA = int64(-1)
		valueB = int64(1) << 40
	)

	var (
		c  Int64
		wg sync.WaitGroup
	)
	c.Init(valueA)

	counts := make([][3]int, k) // [A, B, other]
	for g := 0; g < k; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perK; i++ {
				next := valueA
				if (g+i)&1 == 0 {
					next = valueB
				}
				var old int64
				if i&1 == 0 {
					old = c.Swap(next)
				} else {
					old = c.SwapAcqRel(next)
				}
				switch old {
				case valueA:
					counts[g][0]++
				case valueB:
					counts[g][1]++
				default:
					counts[g][2]++
				}
			}
		}(g)
	}
	wg.Wait()

	var seenA, seenB, other int
	for _, cnt := range counts {
		seenA += cnt[0]
		seenB += cnt[1]
		other += cnt[2]
	}
	if other != 0 {
		t.Fatalf("%d swaps returned a value that was never stored", other)
	}
	if seenA+seenB != k*perK {
		t.Fatalf("A(%d)+B(%d) = %d, want %d", seenA, seenB, seenA+seenB, k*perK)
	}
	if final := c.Get(); final != valueA && final != valueB {
		t.Fatalf("final value %d is neither A nor B", final)
	}
}

// TestTestAndSwapSingleWinner races many goroutines on the same expected
// value; exactly one may observe its own expected value returned.
func TestTestAndSwapSingleWinner(t *testing.T) {
	for round := 0; round < 200; round++ {
		var (
			c       Uint32
			winners Uint32
			start   sync.WaitGroup
			wg      sync.WaitGroup
		)
		start.Add(1)
		for g := 0; g < 16; g++ {
			wg.Add(1)
			go func(g uint32) {
				defer wg.Done()
				start.Wait()
				if c.TestAndSwap(0, g+1) == 0 {
					winners.Increment()
				}
			}(uint32(g))
		}
		start.Done()
		wg.Wait()

		if w := winners.Get(); w != 1 {
			t.Fatalf("round %d: %d winners, want exactly 1", round, w)
		}
		if c.Get() == 0 {
			t.Fatalf("round %d: cell never changed", round)
		}
	}
}
