package ring

import (
	"testing"
	"unsafe"

	"github.com/parsa/bde/spin"
)

// TestSPSCHandOff moves a long sequence through a small ring and checks the
// consumer sees every payload in order.  The payload bytes are written
// before Push and read after Pop, so any missing acquire/release edge shows
// up as a stale value (and as a race under -race).
func TestSPSCHandOff(t *testing.T) {
	const n = 200000
	r := New(16)
	items := make([]uint64, n)

	done := make(chan int)
	go func() {
		bad := 0
		for i := 0; i < n; i++ {
			p := r.PopWait()
			if *(*uint64)(p) != uint64(i)*3+1 {
				bad++
			}
		}
		done <- bad
	}()

	for i := 0; i < n; i++ {
		items[i] = uint64(i)*3 + 1
		var b spin.Backoff
		for !r.Push(unsafe.Pointer(&items[i])) {
			b.Wait() // yields once the consumer has had its spin window
		}
	}
	if bad := <-done; bad != 0 {
		t.Fatalf("%d payloads observed out of order or stale", bad)
	}
	if r.Pop() != nil {
		t.Fatal("ring not empty after hand-off")
	}
}
