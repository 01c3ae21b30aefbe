//go:build (386 || arm) && !lockedatomics

package atomicx

import "unsafe"

// rep64 is a 64-bit word that stays 8-byte aligned on 32-bit targets.
//
// On 386 and arm a struct field is only guaranteed 4-byte alignment, so the
// cell reserves 12 bytes: somewhere inside them there are always 8
// contiguous bytes on an 8-byte boundary, and ptr returns that window.
//
// Don't add fields to this struct.
type rep64 struct {
	w [3]uint32
}

//go:nosplit
func (r *rep64) ptr() *uint64 {
	return (*uint64)(unsafe.Pointer((uintptr(unsafe.Pointer(&r.w[0])) + 4) &^ 7))
}

// LockFree64 reports whether 64-bit cells use hardware atomics.
const LockFree64 = true
