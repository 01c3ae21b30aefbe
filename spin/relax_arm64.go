//go:build arm64 && !noasm

// relax_arm64.go
//
// cpuRelax on ARM64 emits YIELD from relax_arm64.s.  The hint lets the core
// hand pipeline resources to a sibling thread while a CAS loop spins.

package spin

//go:noescape
func cpuRelax()
