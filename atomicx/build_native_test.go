//go:build !mips && !mipsle && !lockedatomics

package atomicx

import (
	"testing"
	"unsafe"
)

const lockedBuild = false

// TestRep64Alignment places 64-bit cells after 4-byte fields, the layout
// that breaks naive uint64 atomics on 32-bit targets.
func TestRep64Alignment(t *testing.T) {
	type packed struct {
		a uint8
		c Int64
		b uint32
		d Uint64
	}
	var xs [5]packed
	for i := range xs {
		for _, p := range []*uint64{xs[i].c.r.ptr(), xs[i].d.r.ptr()} {
			if uintptr(unsafe.Pointer(p))%8 != 0 {
				t.Fatalf("element %d: 64-bit word at %p is not 8-byte aligned", i, p)
			}
		}
	}
	xs[3].c.Set(-1)
	xs[3].d.Set(^uint64(0))
	if xs[3].c.Get() != -1 || xs[3].d.Get() != ^uint64(0) {
		t.Fatal("aligned window lost the stored value")
	}
	if xs[2].c.Get() != 0 || xs[4].d.Get() != 0 {
		t.Fatal("store leaked into a neighbouring cell")
	}
}
