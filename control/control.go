// control.go - Global control flags and activity management for pinned consumers
// ============================================================================
// RUN CONTROL
// ============================================================================
//
// Process-wide hot/stop flags shared by every PinnedConsumer and by the
// torture harness.  All four words are atomicx cells, so producers,
// consumers and the signal handler can touch them from any goroutine.
//
// Threading model:
//   • Producers signal activity via SignalActivity()
//   • Consumer threads poll flags via Flags() (GetAcquire on both cells)
//   • PollCooldown clears hot after cooldown of silence
//   • Shutdown sets stop; consumers observe it and exit
//
// Ordering:
//   SignalActivity stores lastHot before releasing hot, so a consumer whose
//   acquire load observes hot == 1 also observes the matching timestamp.

package control

import (
	"time"

	"github.com/parsa/bde/atomicx"
)

// ============================================================================
// GLOBAL STATE MANAGEMENT
// ============================================================================

var (
	hot  atomicx.Uint32 // 1 = producer active, 0 = idle
	stop atomicx.Uint32 // 1 = shutdown requested

	lastHot    atomicx.Int64 // UnixNano of the last SignalActivity
	cooldownNs atomicx.Int64 // idle period before hot is cleared
)

const defaultCooldown = 1 * time.Second

func init() {
	cooldownNs.Init(int64(defaultCooldown))
}

// ============================================================================
// ACTIVITY SIGNALING
// ============================================================================

// SignalActivity marks the system as active and records the time.
func SignalActivity() {
	lastHot.SetRelaxed(time.Now().UnixNano())
	hot.SetRelease(1)
}

// ============================================================================
// COOLDOWN MANAGEMENT
// ============================================================================

// PollCooldown clears the hot flag once cooldown has elapsed since the last
// activity.  A racing SignalActivity may be overwritten by the clear only if
// its timestamp was already older than the cooldown, so the flag never stays
// cleared across fresh activity for longer than one poll.
func PollCooldown() {
	if hot.GetAcquire() == 1 && time.Now().UnixNano()-lastHot.GetRelaxed() > cooldownNs.GetRelaxed() {
		hot.TestAndSwap(1, 0)
	}
}

// ============================================================================
// SHUTDOWN
// ============================================================================

// Shutdown requests termination of every consumer watching the stop flag.
func Shutdown() {
	stop.Set(1)
}

// ShuttingDown reports whether Shutdown has been called.
func ShuttingDown() bool {
	return stop.GetAcquire() != 0
}

// ============================================================================
// FLAG ACCESS
// ============================================================================

// Flags returns the global (stop, hot) cells for PinnedConsumer.  The
// pointers remain valid for the lifetime of the process.
func Flags() (*atomicx.Uint32, *atomicx.Uint32) {
	return &stop, &hot
}

// Reset clears all flags.  Only for use between runs, when no consumer is
// watching them.
func Reset() {
	stop.Set(0)
	hot.Set(0)
	lastHot.Set(0)
}

// SetCooldown changes the idle period.  Pollers pick it up on their next
// PollCooldown.
func SetCooldown(d time.Duration) {
	cooldownNs.Set(int64(d))
}
