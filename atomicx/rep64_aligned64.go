//go:build !386 && !arm && !mips && !mipsle && !lockedatomics

package atomicx

// rep64 is a naturally aligned 64-bit word.  On 64-bit targets every
// uint64 field is 8-byte aligned, so the word itself is the cell.
type rep64 struct {
	v uint64
}

//go:nosplit
func (r *rep64) ptr() *uint64 {
	return &r.v
}

// LockFree64 reports whether 64-bit cells use hardware atomics.
const LockFree64 = true
