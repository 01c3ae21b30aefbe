package spin

import "testing"

func TestBackoffSchedule(t *testing.T) {
	var b Backoff
	for i := 0; i < SpinLimit; i++ {
		if !b.Spinning() {
			t.Fatalf("attempt %d: should still spin", i)
		}
		b.Wait()
	}
	if b.Spinning() {
		t.Fatal("backoff should yield after SpinLimit attempts")
	}
	for i := 0; i < 3; i++ {
		b.Wait()
	}
	if got := b.Attempts(); got != SpinLimit+3 {
		t.Fatalf("Attempts = %d, want %d", got, SpinLimit+3)
	}

	b.Reset()
	if !b.Spinning() || b.Attempts() != 0 {
		t.Fatal("Reset must restart the schedule")
	}
}

func TestRelaxDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		Relax()
		var b Backoff
		b.Wait()
	})
	if allocs != 0 {
		t.Fatalf("Relax/Wait allocated %.1f times per run", allocs)
	}
}

func BenchmarkRelax(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Relax()
	}
}
