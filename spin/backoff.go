// ════════════════════════════════════════════════════════════════════════════════════════════════
// Spin-Then-Yield Backoff
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Retry policy for compare-and-swap loops
//
// Description:
//   A failed TestAndSwap means another goroutine committed first, so the global system made
//   progress.  Retrying immediately is correct but hammers the contended cache line.  Backoff
//   executes an exponentially growing burst of CPU relax hints for the first attempts and
//   then yields the processor, keeping loops lock-free (no sleeping, no blocking) while
//   letting a descheduled winner run on oversubscribed machines.
//
// Schedule (per Backoff value):
//   attempt 0..SpinLimit-1   2^attempt relax hints  (1, 2, 4, ... 64)
//   attempt ≥ SpinLimit      runtime.Gosched()
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package spin

import "runtime"

// SpinLimit is the number of relax bursts before Backoff starts yielding.
const SpinLimit = 7

// Relax executes a single architecture pause hint.
//
//go:nosplit
func Relax() {
	cpuRelax()
}

// Backoff tracks the retry count of one loop.  The zero value is ready to
// use; keep one per loop invocation, on the stack.
type Backoff struct {
	attempt uint32
	yields  uint32
}

// Wait pauses according to the schedule and advances it.
func (b *Backoff) Wait() {
	if b.attempt < SpinLimit {
		for i := 0; i < 1<<b.attempt; i++ {
			cpuRelax()
		}
		b.attempt++
		return
	}
	b.yields++
	runtime.Gosched()
}

// Spinning reports whether the next Wait still busy-spins.
func (b *Backoff) Spinning() bool {
	return b.attempt < SpinLimit
}

// Attempts returns the number of Wait calls so far.
func (b *Backoff) Attempts() int {
	return int(b.attempt + b.yields)
}

// Reset restarts the schedule after the loop made progress.
func (b *Backoff) Reset() {
	b.attempt, b.yields = 0, 0
}
