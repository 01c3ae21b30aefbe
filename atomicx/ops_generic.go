//go:build (!amd64 && !arm64) || noasm || race

// ops_generic.go
//
// Portable weak-order helpers using sync/atomic.  Seq-cst is a
// conservative superset of every order requested here, and it is the only
// path the race detector can see.

package atomicx

import "sync/atomic"

func loadRelaxed32(p *uint32) uint32 { return atomic.LoadUint32(p) }

func loadRelaxed64(p *uint64) uint64 { return atomic.LoadUint64(p) }

func loadAcquire32(p *uint32) uint32 { return atomic.LoadUint32(p) }

func loadAcquire64(p *uint64) uint64 { return atomic.LoadUint64(p) }

func storeRelaxed32(p *uint32, v uint32) { atomic.StoreUint32(p, v) }

func storeRelaxed64(p *uint64, v uint64) { atomic.StoreUint64(p, v) }

func storeRelease32(p *uint32, v uint32) { atomic.StoreUint32(p, v) }

func storeRelease64(p *uint64, v uint64) { atomic.StoreUint64(p, v) }
