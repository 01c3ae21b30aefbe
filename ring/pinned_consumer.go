// pinned_consumer.go
//
// Low-latency SPSC consumer.
//
//   • Dedicated OS thread pinned to `core`.
//   • Stays in hot-spin (tight loop, no relax hint) while
//       – new work has arrived within hotTimeout, OR
//       – the producer keeps hot != 0.
//   • After the grace window and once hot == 0 it drops to the cold path:
//     spin.Backoff between polls, so an idle consumer relaxes and then
//     yields instead of burning the core.
//   • Exits only when stop != 0 and closes `done` exactly once.
//
// hot flag contract:
//     Producer             Consumer
//     --------             ------------------------------
//     SetRelease(1) ────▶  GetAcquire (wake / stay hot-spin)
//     ...push items…
//     (optionally) SetRelease(0)   ◀─ consumer never writes

package ring

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/parsa/bde/atomicx"
	"github.com/parsa/bde/debug"
	"github.com/parsa/bde/spin"
	"github.com/parsa/bde/utils"
)

// hotTimeout is the hot-spin grace window after the last delivery.
var hotTimeout = 15 * time.Second

// PinnedConsumer drains r on its own goroutine until stop is set.  Affinity
// failures (containers, cgroup masks) are reported once and the consumer
// keeps running unpinned.
func PinnedConsumer(
	core int,
	r *Ring,
	stop, hot *atomicx.Uint32,
	fn func(unsafe.Pointer),
	done chan<- struct{},
) {
	go func() {
		runtime.LockOSThread()
		if err := setAffinity(core); err != nil {
			debug.DropError("ring: pin consumer to core "+utils.Itoa(core), err)
		}
		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()

		last := time.Now() // last time Pop delivered
		var b spin.Backoff

		for {
			if p := r.Pop(); p != nil {
				fn(p)
				last = time.Now()
				b.Reset()
				continue
			}

			if stop.GetAcquire() != 0 {
				return
			}

			if hot.GetAcquire() != 0 || time.Since(last) <= hotTimeout {
				continue
			}

			b.Wait()
		}
	}()
}
