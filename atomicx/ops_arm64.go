//go:build arm64 && !noasm && !race

// ops_arm64.go
//
// Stubs for ops_arm64.s.  ARMv8 is weakly ordered: acquire loads use LDAR,
// release stores use STLR, and relaxed accesses are plain single-copy
// atomic MOVs.  Compare-and-swap goes through cas_loop.go.

package atomicx

//go:noescape
//go:nosplit
func loadRelaxed32(p *uint32) uint32

//go:noescape
//go:nosplit
func loadRelaxed64(p *uint64) uint64

//go:noescape
//go:nosplit
func loadAcquire32(p *uint32) uint32

//go:noescape
//go:nosplit
func loadAcquire64(p *uint64) uint64

//go:noescape
//go:nosplit
func storeRelaxed32(p *uint32, v uint32)

//go:noescape
//go:nosplit
func storeRelaxed64(p *uint64, v uint64)

//go:noescape
//go:nosplit
func storeRelease32(p *uint32, v uint32)

//go:noescape
//go:nosplit
func storeRelease64(p *uint64, v uint64)
