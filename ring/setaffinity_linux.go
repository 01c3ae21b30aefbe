//go:build linux

// setaffinity_linux.go
//
// Pins the calling OS thread to one logical CPU through
// sched_setaffinity(2).  Callers must hold runtime.LockOSThread, otherwise
// the goroutine may migrate off the pinned thread.

package ring

import (
	"golang.org/x/sys/unix"
)

// setAffinity pins the current thread to cpu (0-based).  Negative indices
// are rejected; indices past the kernel's CPU count fail with EINVAL.
func setAffinity(cpu int) error {
	if cpu < 0 {
		return unix.EINVAL
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set) // pid 0 → current thread
}
