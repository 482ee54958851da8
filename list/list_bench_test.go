package list

import "testing"

const benchN = 10000

func BenchmarkSingly_InsertRemoveHead(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewSingly[int]()
		for j := 0; j < benchN; j++ {
			_ = l.InsertHead(j)
		}
		for !l.IsEmpty() {
			_, _ = l.RemoveHead()
		}
	}
}

func BenchmarkSingly_InsertTail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewSingly[int]()
		for j := 0; j < 1000; j++ {
			_ = l.InsertTail(j)
		}
	}
}

func BenchmarkDoubly_InsertRemoveTail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewDoubly[int]()
		for j := 0; j < benchN; j++ {
			_ = l.InsertTail(j)
		}
		for !l.IsEmpty() {
			_, _ = l.RemoveTail()
		}
	}
}

func BenchmarkDoubly_Traverse(b *testing.B) {
	l := NewDoubly[int]()
	for j := 0; j < benchN; j++ {
		_ = l.InsertTail(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range l.Backward() {
			sum += v
		}
		_ = sum
	}
}
