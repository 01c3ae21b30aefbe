// ════════════════════════════════════════════════════════════════════════════════════════════════
// Portable Atomic Cells
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Atomic Representation & Operation Catalogue
//
// Description:
//   Fixed-size cells whose whole-cell reads and writes are indivisible, plus the operation
//   catalogue every lock-free structure in this module is built from.  One generic operation
//   set per word width is instantiated for each kind:
//
//     Int32, Uint32   → Cell32[T]   (32-bit word)
//     Int64, Uint64   → Cell64[T]   (64-bit word, aligned even on 32-bit targets)
//     Pointer[T]      → typed pointer word
//
// Memory ordering:
//   - Relaxed:  atomicity of the cell only.  No ordering is imposed on any other access.
//   - Acquire:  no later access (program order) may be observed before the operation.
//   - Release:  no earlier access may be observed after the operation; writes made before a
//               release become visible to a thread whose acquire load observes that value.
//   - AcqRel:   both of the above, for read-modify-write operations.
//   - default:  unsuffixed operations are sequentially consistent.
//
//   The weaker variants exist for hot paths only.  Never replace a default operation with a
//   weaker one unless the surrounding algorithm is correct under the weaker order.  Every
//   implementation is allowed to be stronger than requested; on targets without a dedicated
//   fast path all variants fall back to sync/atomic, which is sequentially consistent.
//
// Representation selection (build tags, never runtime branching):
//   - ops_amd64.go / ops_amd64.s    amd64 && !noasm && !race   plain MOV loads/stores, CMPXCHG
//   - ops_arm64.go / ops_arm64.s    arm64 && !noasm && !race   LDAR / STLR
//   - ops_generic.go                everything else            sync/atomic
//   - rep64_aligned64.go            64-bit targets             natural 8-byte alignment
//   - rep64_aligned32.go            386, arm                   12-byte cell, aligned window
//   - rep64_locked.go               mips, mipsle, lockedatomics  single CAS mutex per family
//
// Undefined behaviour (not errors):
//   - Copying a cell after first use (go vet copylocks flags it).
//   - Touching the cell through any path other than these methods while it is shared.
//   - Calling Init after the cell has been published to other goroutines.
//
// None of the operations can fail.  A TestAndSwap whose expected value does not match is a
// normal outcome; the caller compares the returned value with the expected one.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

// Package atomicx provides portable atomic cells with an explicit memory-order catalogue.
package atomicx
