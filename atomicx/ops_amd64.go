//go:build amd64 && !noasm && !race

// ops_amd64.go
//
// Function stubs whose bodies live in ops_amd64.s.  x86-64 is TSO: every
// plain MOV load already has acquire semantics and every plain MOV store
// release semantics, so the weak variants skip the XCHG the default store
// pays for.  The calls also act as compiler barriers.

package atomicx

// loadRelaxed32 returns *p with no ordering beyond atomicity.
//
//go:noescape
//go:nosplit
func loadRelaxed32(p *uint32) uint32

// loadRelaxed64 returns *p with no ordering beyond atomicity.
//
//go:noescape
//go:nosplit
func loadRelaxed64(p *uint64) uint64

// storeRelaxed32 performs *p = v as a single MOVL.
//
//go:noescape
//go:nosplit
func storeRelaxed32(p *uint32, v uint32)

// storeRelaxed64 performs *p = v as a single MOVQ.
//
//go:noescape
//go:nosplit
func storeRelaxed64(p *uint64, v uint64)

// casValue32 is LOCK CMPXCHGL returning the value found at p.
//
//go:noescape
//go:nosplit
func casValue32(p *uint32, old, desired uint32) uint32

// casValue64 is LOCK CMPXCHGQ returning the value found at p.
//
//go:noescape
//go:nosplit
func casValue64(p *uint64, old, desired uint64) uint64

//go:nosplit
func loadAcquire32(p *uint32) uint32 { return loadRelaxed32(p) }

//go:nosplit
func loadAcquire64(p *uint64) uint64 { return loadRelaxed64(p) }

//go:nosplit
func storeRelease32(p *uint32, v uint32) { storeRelaxed32(p, v) }

//go:nosplit
func storeRelease64(p *uint64, v uint64) { storeRelaxed64(p, v) }
