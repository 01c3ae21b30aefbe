package lfstack

import "testing"

func BenchmarkPushPop(b *testing.B) {
	s := New[int](WithReserve(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		s.Pop()
	}
}

func BenchmarkPushPopParallel(b *testing.B) {
	s := New[int](WithReserve(1024))
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Push(i)
			s.Pop()
			i++
		}
	})
}

func BenchmarkPushPopParallelNoBackoff(b *testing.B) {
	s := New[int](WithBackoff(false), WithReserve(1024))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Push(1)
			s.Pop()
		}
	})
}

func BenchmarkPopEmpty(b *testing.B) {
	s := New[int]()
	for i := 0; i < b.N; i++ {
		s.Pop()
	}
}
