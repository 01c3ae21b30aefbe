// ════════════════════════════════════════════════════════════════════════════════════════════════
// Torture Scenarios
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Each scenario drives one primitive or derived pattern with g goroutines × n operations and
// checks the property that must survive any interleaving.  Operands come from utils.Mix64 of
// the goroutine and iteration index, so two runs with the same flags do the same work.
//
// Every loop polls control.ShuttingDown() so SIGINT ends a long run promptly; an interrupted
// scenario is reported as failed with detail "interrupted".
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"math"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/parsa/bde/atomicx"
	"github.com/parsa/bde/control"
	"github.com/parsa/bde/lfstack"
	"github.com/parsa/bde/refcount"
	"github.com/parsa/bde/ring"
	"github.com/parsa/bde/utils"
)

// pollEvery is how many operations a worker runs between shutdown checks.
const pollEvery = 1024

var errInterrupted = errors.New("interrupted")

// Scenario is one named torture test.
type Scenario struct {
	Name string
	Run  func(g, n int) error
}

var scenarios = []Scenario{
	{"increment", runIncrement},
	{"swap", runSwap},
	{"cas", runCAS},
	{"stack", runStack},
	{"refcount", runRefcount},
	{"ring", runRing},
}

func scenarioNames() []string {
	out := make([]string, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.Name
	}
	return out
}

func findScenario(name string) *Scenario {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i]
		}
	}
	return nil
}

// parallel runs fn(worker) on g goroutines and waits for all of them.
func parallel(g int, fn func(w int)) {
	var wg sync.WaitGroup
	wg.Add(g)
	for w := 0; w < g; w++ {
		go func(w int) {
			defer wg.Done()
			fn(w)
		}(w)
	}
	wg.Wait()
}

func interrupted(i int) bool {
	return i%pollEvery == 0 && control.ShuttingDown()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INCREMENT: atomicity and per-observer monotonicity for every integer kind
// ═══════════════════════════════════════════════════════════════════════════════════════════════

type counter[T any] interface {
	Increment()
	GetAcquire() T
	Get() T
}

func hammer[T int32 | int64 | uint32 | uint64](kind string, c counter[T], g, n int) error {
	total := uint64(g) * uint64(n)
	var stopped atomicx.Uint32
	var regressed atomicx.Uint32
	done := make(chan struct{})

	// The observer only checks monotonicity when the count cannot wrap.
	monotone := total <= math.MaxInt32
	go func() {
		defer close(done)
		var prev T
		for stopped.GetAcquire() == 0 {
			cur := c.GetAcquire()
			if monotone && cur < prev {
				regressed.Set(1)
			}
			prev = cur
			runtime.Gosched()
		}
	}()

	parallel(g, func(int) {
		for i := 0; i < n; i++ {
			if interrupted(i) {
				return
			}
			c.Increment()
		}
	})
	stopped.SetRelease(1)
	<-done

	if control.ShuttingDown() {
		return errInterrupted
	}
	if got, want := c.Get(), T(total); got != want {
		return errors.Errorf("%s: final count %d, want %d", kind, got, want)
	}
	if regressed.Get() != 0 {
		return errors.Errorf("%s: observer saw the counter go backwards", kind)
	}
	return nil
}

func runIncrement(g, n int) error {
	if err := hammer[int32]("int32", new(atomicx.Int32), g, n); err != nil {
		return err
	}
	if err := hammer[int64]("int64", new(atomicx.Int64), g, n); err != nil {
		return err
	}
	if err := hammer[uint32]("uint32", new(atomicx.Uint32), g, n); err != nil {
		return err
	}
	return hammer[uint64]("uint64", new(atomicx.Uint64), g, n)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SWAP: every value swapped in is swapped out exactly once
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runSwap has each worker swap in unique tokens.  Every token except the
// last one left in the cell must come back out of exactly one Swap.
func runSwap(g, n int) error {
	var cell atomicx.Uint64
	seen := make([][]uint64, g)

	parallel(g, func(w int) {
		out := make([]uint64, 0, n)
		for i := 0; i < n; i++ {
			if interrupted(i) {
				break
			}
			token := uint64(w)<<32 | uint64(i+1)
			out = append(out, cell.SwapAcqRel(token))
		}
		seen[w] = out
	})
	if control.ShuttingDown() {
		return errInterrupted
	}

	returned := make(map[uint64]int, g*n)
	for _, out := range seen {
		for _, v := range out {
			returned[v]++
		}
	}
	final := cell.Get()
	if returned[0] != 1 {
		return errors.Errorf("initial value returned %d times, want 1", returned[0])
	}
	for w := 0; w < g; w++ {
		for i := 0; i < n; i++ {
			token := uint64(w)<<32 | uint64(i+1)
			want := 1
			if token == final {
				want = 0
			}
			if returned[token] != want {
				return errors.Errorf("token %#x returned %d times, want %d", token, returned[token], want)
			}
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CAS: TestAndSwap retry loops lose no update
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func runCAS(g, n int) error {
	var cell atomicx.Int64
	var retries atomicx.Int64
	sums := make([]int64, g)

	parallel(g, func(w int) {
		var local, tries int64
		for i := 0; i < n; i++ {
			if interrupted(i) {
				break
			}
			d := int64(utils.Mix64(uint64(w)<<32|uint64(i)) & 0xff)
			for {
				old := cell.Get()
				if cell.TestAndSwap(old, old+d) == old {
					break
				}
				tries++
			}
			local += d
		}
		sums[w] = local
		retries.AddRelaxed(tries)
	})
	if control.ShuttingDown() {
		return errInterrupted
	}

	var want int64
	for _, s := range sums {
		want += s
	}
	if got := cell.Get(); got != want {
		return errors.Errorf("cas: final %d, want %d (%d retries)", got, want, retries.Get())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// STACK: concurrent push/pop conservation
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func runStack(g, n int) error {
	s := lfstack.New[uint64]()
	producers := (g + 1) / 2
	consumers := g - producers
	if consumers == 0 {
		consumers = 1
	}

	var produced atomicx.Int64
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				if interrupted(i) {
					return
				}
				s.Push(uint64(p)<<32 | uint64(i))
				produced.IncrementAcqRel()
			}
		}(p)
	}

	var doneProducing atomicx.Uint32
	counts := make([]map[uint64]int, consumers)
	var cwg sync.WaitGroup
	cwg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func(c int) {
			defer cwg.Done()
			seen := map[uint64]int{}
			for {
				v, ok := s.Pop()
				if ok {
					seen[v]++
					continue
				}
				if doneProducing.GetAcquire() != 0 && s.Empty() {
					break
				}
				runtime.Gosched()
			}
			counts[c] = seen
		}(c)
	}

	wg.Wait()
	doneProducing.SetRelease(1)
	cwg.Wait()
	if control.ShuttingDown() {
		return errInterrupted
	}

	merged := map[uint64]int{}
	for _, m := range counts {
		for v, k := range m {
			merged[v] += k
		}
	}
	if int64(len(merged)) != produced.Get() {
		return errors.Errorf("stack: %d distinct values popped, %d pushed", len(merged), produced.Get())
	}
	for v, k := range merged {
		if k != 1 {
			return errors.Errorf("stack: value %#x popped %d times", v, k)
		}
	}
	if allocated, walked := s.Allocated(), s.Destroy(); walked != allocated {
		return errors.Errorf("stack: %d nodes allocated, %d reachable at teardown", allocated, walked)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// REFCOUNT: destructor runs exactly once, after the last release
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func runRefcount(g, n int) error {
	var destroyed atomicx.Int32
	var early atomicx.Int32
	type shared struct{ live atomicx.Int32 }

	obj := &shared{}
	obj.live.Init(1)
	root := refcount.New(obj, func(s *shared) {
		if s.live.Get() != 1 {
			early.Set(1)
		}
		s.live.Set(0)
		destroyed.Increment()
	})

	handles := make([]refcount.Handle[shared], g)
	for i := range handles {
		handles[i] = root.Clone()
	}
	root.Release()

	parallel(g, func(w int) {
		h := handles[w]
		for i := 0; i < n; i++ {
			if interrupted(i) {
				break
			}
			c := h.Clone()
			if c.Get().live.Get() != 1 {
				early.Set(1)
			}
			c.Release()
		}
		h.Release()
	})

	if d := destroyed.Get(); d != 1 {
		return errors.Errorf("refcount: destructor ran %d times, want 1", d)
	}
	if early.Get() != 0 {
		return errors.New("refcount: payload destroyed while still referenced")
	}
	if control.ShuttingDown() {
		return errInterrupted
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RING: SPSC hand-off through a pinned consumer
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runRing pushes g×n payloads through one ring into a PinnedConsumer and
// checks order and payload integrity.  The producer refreshes the global hot
// flag as it goes so the consumer stays in hot-spin during the burst.
func runRing(g, n int) error {
	total := g * n
	r := ring.New(1024)
	payloads := make([]uint64, total)

	var stop atomicx.Uint32
	_, hot := control.Flags()
	done := make(chan struct{})

	var consumed, bad atomicx.Int64
	ring.PinnedConsumer(0, r, &stop, hot, func(p unsafe.Pointer) {
		seq := consumed.GetRelaxed() // only the consumer writes it
		if *(*uint64)(p) != utils.Mix64(uint64(seq)) {
			bad.Increment()
		}
		consumed.SetRelease(seq + 1)
	}, done)

	pushed := 0
	for ; pushed < total; pushed++ {
		if interrupted(pushed) {
			break
		}
		if pushed%pollEvery == 0 {
			control.SignalActivity()
		}
		payloads[pushed] = utils.Mix64(uint64(pushed))
		for !r.Push(unsafe.Pointer(&payloads[pushed])) && !control.ShuttingDown() {
			runtime.Gosched()
		}
	}

	deadline := time.Now().Add(10 * time.Second)
	for consumed.GetAcquire() < int64(pushed) && time.Now().Before(deadline) && !control.ShuttingDown() {
		runtime.Gosched()
	}
	stop.SetRelease(1)
	<-done
	control.PollCooldown()

	if control.ShuttingDown() {
		return errInterrupted
	}
	if got := consumed.Get(); got != int64(total) {
		return errors.Errorf("ring: consumer saw %d of %d payloads", got, total)
	}
	if b := bad.Get(); b != 0 {
		return errors.Errorf("ring: %d payloads out of order or stale", b)
	}
	return nil
}
