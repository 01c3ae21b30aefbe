package refcount

import (
	"sync"
	"sync/atomic"
	"testing"
)

type payload struct {
	id   int
	data [16]byte
}

func counter() (*atomic.Int32, func(*payload)) {
	var n atomic.Int32
	return &n, func(*payload) { n.Add(1) }
}

func TestNewStartsAtOne(t *testing.T) {
	h := New(&payload{id: 1}, nil)
	if h.Count() != 1 || !h.Valid() {
		t.Fatalf("Count = %d Valid = %v", h.Count(), h.Valid())
	}
	if h.Get().id != 1 {
		t.Fatal("Get returned the wrong payload")
	}
}

func TestDestroyAfterLastRelease(t *testing.T) {
	destroyed, fn := counter()
	a := New(&payload{}, fn)
	b := a.Clone()
	c := b.Clone()
	if a.Count() != 3 || !a.Same(c) {
		t.Fatalf("Count = %d after two clones", a.Count())
	}

	cases := []struct {
		name string
		h    *Handle[payload]
		last bool
	}{
		{"middle", &b, false},
		{"first", &a, false},
		{"last", &c, true},
	}
	for _, tc := range cases {
		if got := tc.h.Release(); got != tc.last {
			t.Fatalf("%s: Release = %v, want %v", tc.name, got, tc.last)
		}
		if tc.h.Valid() {
			t.Fatalf("%s: handle still valid after Release", tc.name)
		}
		want := int32(0)
		if tc.last {
			want = 1
		}
		if destroyed.Load() != want {
			t.Fatalf("%s: destroyed %d times, want %d", tc.name, destroyed.Load(), want)
		}
	}
}

func TestReleaseEmptyIsNoop(t *testing.T) {
	destroyed, fn := counter()
	h := New(&payload{}, fn)
	h.Release()
	if h.Release() {
		t.Fatal("second Release on the same handle reported destruction")
	}
	var zero Handle[payload]
	if zero.Release() || zero.Get() != nil || zero.Count() != 0 {
		t.Fatal("zero handle misbehaves")
	}
	if zero.Clone().Valid() {
		t.Fatal("clone of empty handle is valid")
	}
	if destroyed.Load() != 1 {
		t.Fatalf("destroyed %d times", destroyed.Load())
	}
}

func TestDestructorSeesPayload(t *testing.T) {
	var got int
	h := New(&payload{id: 77}, func(p *payload) { got = p.id })
	h.Release()
	if got != 77 {
		t.Fatalf("destructor saw id %d", got)
	}
}

// Every goroutine clones and releases its own handles; the root handle is
// released last from the test goroutine after all of them finish or, in the
// second case, first, leaving the workers to race for the zero transition.
func TestConcurrentCloneRelease(t *testing.T) {
	for _, releaseFirst := range []bool{false, true} {
		destroyed, fn := counter()
		root := New(&payload{}, fn)

		const workers = 16
		const rounds = 2000
		handles := make([]Handle[payload], workers)
		for i := range handles {
			handles[i] = root.Clone()
		}
		if releaseFirst {
			root.Release()
		}

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(h Handle[payload]) {
				defer wg.Done()
				for r := 0; r < rounds; r++ {
					c := h.Clone()
					_ = c.Get().id
					c.Release()
				}
				h.Release()
			}(handles[i])
		}
		wg.Wait()

		if !releaseFirst {
			if destroyed.Load() != 0 {
				t.Fatal("destroyed while root still held")
			}
			if root.Count() != 1 {
				t.Fatalf("root Count = %d, want 1", root.Count())
			}
			root.Release()
		}
		if destroyed.Load() != 1 {
			t.Fatalf("releaseFirst=%v: destroyed %d times, want 1", releaseFirst, destroyed.Load())
		}
	}
}

// The destructor must observe every write made by any owner before its
// release.
func TestReleaseOrdersPayloadWrites(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		const owners = 4
		p := &payload{}
		sums := make([]int, owners)
		var seen [owners]byte
		h := New(p, func(p *payload) { copy(seen[:], p.data[:owners]) })

		var wg sync.WaitGroup
		for i := 0; i < owners; i++ {
			c := h.Clone()
			wg.Add(1)
			go func(i int, c Handle[payload]) {
				defer wg.Done()
				c.Get().data[i] = byte(i + 1)
				sums[i] = i + 1
				c.Release()
			}(i, c)
		}
		h.Release()
		wg.Wait()

		for i := 0; i < owners; i++ {
			if seen[i] != byte(sums[i]) {
				t.Fatalf("trial %d: destructor saw data[%d]=%d", trial, i, seen[i])
			}
		}
	}
}

func BenchmarkCloneRelease(b *testing.B) {
	h := New(&payload{}, nil)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c := h.Clone()
			c.Release()
		}
	})
}
