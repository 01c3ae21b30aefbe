package ring

import (
	"testing"
	"time"
	"unsafe"
)

func ptr(v *[32]byte) unsafe.Pointer { return unsafe.Pointer(v) }

func val(p unsafe.Pointer) *[32]byte { return (*[32]byte)(p) }

// TestNewPanicsOnBadSize verifies that the constructor rejects sizes that are
// either non-power-of-two or ≤ 0.
func TestNewPanicsOnBadSize(t *testing.T) {
	bad := []int{0, -4, 3, 1000}
	for _, sz := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d) should panic", sz)
				}
			}()
			_ = New(sz)
		}()
	}
}

// TestPushPopRoundTrip pushes one element, pops it, and confirms the ring is
// empty afterwards.
func TestPushPopRoundTrip(t *testing.T) {
	r := New(8)
	v := &[32]byte{1, 2, 3}

	if !r.Push(ptr(v)) {
		t.Fatal("first push must succeed")
	}
	got := r.Pop()
	if got == nil || *val(got) != *v {
		t.Fatalf("got %v, want %v", got, v)
	}
	if r.Pop() != nil {
		t.Fatal("ring should now be empty")
	}
}

// TestPushFailsWhenFull fills the ring to capacity and checks that a further
// Push returns false.
func TestPushFailsWhenFull(t *testing.T) {
	r := New(4)
	v := &[32]byte{7}
	for i := 0; i < r.Cap(); i++ {
		if !r.Push(ptr(v)) {
			t.Fatalf("push %d unexpectedly failed", i)
		}
	}
	if r.Push(ptr(v)) {
		t.Fatal("push into full ring should return false")
	}
	r.Pop()
	if !r.Push(ptr(v)) {
		t.Fatal("push after freeing a slot should succeed")
	}
}

// TestPopWaitBlocksUntilItem asserts PopWait blocks and eventually returns
// the value pushed after a short delay.
func TestPopWaitBlocksUntilItem(t *testing.T) {
	r := New(2)
	want := &[32]byte{42}

	go func() {
		time.Sleep(5 * time.Millisecond)
		r.Push(ptr(want))
	}()

	if got := r.PopWait(); got == nil || *val(got) != *want {
		t.Fatalf("PopWait returned %v, want %v", got, want)
	}
}

func TestPopNil(t *testing.T) {
	r := New(4)
	if r.Pop() != nil {
		t.Fatal("Pop on empty ring returned non-nil")
	}
}

// TestWrapAround exercises more than mask iterations so head and tail wrap.
func TestWrapAround(t *testing.T) {
	r := New(4)
	for i := 0; i < 10; i++ {
		v := &[32]byte{byte(i)}
		if !r.Push(ptr(v)) {
			t.Fatalf("push %d failed unexpectedly", i)
		}
		got := r.Pop()
		if got == nil || val(got)[0] != byte(i) {
			t.Fatalf("iteration %d: got %v, want %d", i, got, i)
		}
	}
}

// TestFIFOOrder fills and drains the ring repeatedly.
func TestFIFOOrder(t *testing.T) {
	r := New(8)
	items := make([][32]byte, 8)
	for round := 0; round < 3; round++ {
		for i := range items {
			items[i][0] = byte(round*8 + i)
			if !r.Push(ptr(&items[i])) {
				t.Fatalf("round %d push %d failed", round, i)
			}
		}
		for i := range items {
			got := r.Pop()
			if got == nil || val(got)[0] != byte(round*8+i) {
				t.Fatalf("round %d pop %d out of order", round, i)
			}
		}
	}
}

// TestPopDropsReference checks the consumer clears the slot payload.
func TestPopDropsReference(t *testing.T) {
	r := New(2)
	r.Push(ptr(&[32]byte{1}))
	r.Pop()
	if r.buf[0].ptr != nil {
		t.Fatal("slot still references the popped payload")
	}
}
