// ════════════════════════════════════════════════════════════════════════════════════════════════
// 🧪 TEST SUITE: RUN CONTROL FLAGS
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Covers flag transitions, cooldown clearance, shutdown visibility and concurrent signalling.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package control

import (
	"sync"
	"testing"
	"time"
)

// ============================================================================
// UNIT TESTS
// ============================================================================

func TestControl_InitialState(t *testing.T) {
	Reset()
	s, h := Flags()
	if s.Get() != 0 || h.Get() != 0 {
		t.Fatal("flags should start cleared")
	}
	if ShuttingDown() {
		t.Fatal("ShuttingDown true before Shutdown")
	}
}

func TestControl_SignalActivity(t *testing.T) {
	Reset()
	before := time.Now().UnixNano()
	SignalActivity()
	_, h := Flags()
	if h.Get() != 1 {
		t.Fatal("hot not set")
	}
	if lastHot.Get() < before {
		t.Fatal("lastHot not recorded")
	}
}

func TestControl_PollCooldown(t *testing.T) {
	Reset()
	SetCooldown(10 * time.Millisecond)
	defer SetCooldown(defaultCooldown)

	SignalActivity()
	PollCooldown()
	_, h := Flags()
	if h.Get() != 1 {
		t.Fatal("hot cleared before cooldown elapsed")
	}

	time.Sleep(20 * time.Millisecond)
	PollCooldown()
	if h.Get() != 0 {
		t.Fatal("hot not cleared after cooldown")
	}
}

func TestControl_Shutdown(t *testing.T) {
	Reset()
	Shutdown()
	s, _ := Flags()
	if s.Get() != 1 || !ShuttingDown() {
		t.Fatal("stop not visible after Shutdown")
	}
	Reset()
	if ShuttingDown() {
		t.Fatal("Reset did not clear stop")
	}
}

func TestControl_FlagsStable(t *testing.T) {
	s1, h1 := Flags()
	s2, h2 := Flags()
	if s1 != s2 || h1 != h2 {
		t.Fatal("Flags must return the same cells every call")
	}
}

// ============================================================================
// CONCURRENCY
// ============================================================================

func TestControl_ConcurrentSignalAndPoll(t *testing.T) {
	Reset()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				SignalActivity()
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				PollCooldown()
			}
		}()
	}
	wg.Wait()
	_, h := Flags()
	if h.Get() != 1 {
		t.Fatal("hot cleared despite activity within cooldown")
	}
}

// SetCooldown may run while consumers poll; the last value set wins.
func TestControl_SetCooldownWhilePolling(t *testing.T) {
	Reset()
	defer SetCooldown(defaultCooldown)

	SignalActivity()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			SetCooldown(time.Duration(i+1) * time.Hour)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			PollCooldown()
		}
	}()
	wg.Wait()

	_, h := Flags()
	if h.Get() != 1 {
		t.Fatal("hot cleared with an hour-long cooldown")
	}
	if got := time.Duration(cooldownNs.Get()); got != 1000*time.Hour {
		t.Fatalf("cooldown = %v, want %v", got, 1000*time.Hour)
	}
	SetCooldown(time.Nanosecond)
	time.Sleep(time.Millisecond)
	PollCooldown()
	if h.Get() != 0 {
		t.Fatal("hot not cleared after the shortened cooldown")
	}
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkSignalActivity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SignalActivity()
	}
}

func BenchmarkPollCooldown(b *testing.B) {
	SignalActivity()
	for i := 0; i < b.N; i++ {
		PollCooldown()
	}
}
