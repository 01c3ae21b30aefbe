//go:build !linux

package ring

// setAffinity is a no-op where the platform has no per-thread affinity call
// worth binding.
func setAffinity(int) error { return nil }
