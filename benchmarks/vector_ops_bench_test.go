package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkPush measures amortized append cost across growth reallocations,
// against a plain built-in slice as the baseline.
func BenchmarkPush(b *testing.B) {
	sizes := []int{100, 10_000, 1_000_000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("Vec_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				for j := 0; j < n; j++ {
					v.Push(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < n; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkPushPreReserved shows the effect of the Reserve hint: a single
// exact allocation instead of the doubling ladder.
func BenchmarkPushPreReserved(b *testing.B) {
	const n = 100_000
	b.Run("Reserved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vec.WithCapacity[int](n)
			for j := 0; j < n; j++ {
				v.Push(j)
			}
		}
	})
	b.Run("Unreserved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			for j := 0; j < n; j++ {
				v.Push(j)
			}
		}
	})
}

// BenchmarkInsertFront is the worst case for the shifting insert: every call
// moves the whole live region.
func BenchmarkInsertFront(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.WithCapacity[int](n)
				for j := 0; j < n; j++ {
					v.Insert(0, j)
				}
			}
		})
	}
}

func BenchmarkRetain(b *testing.B) {
	src := vec.FromFunc(100_000, func(i int) int { return i })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := src.Clone()
		v.Retain(func(x int) bool { return x%2 == 0 })
	}
}

func BenchmarkDrain(b *testing.B) {
	src := vec.FromFunc(100_000, func(i int) int { return i })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := src.Clone()
		_ = v.Drain(1000, 99_000)
	}
}

func BenchmarkSort(b *testing.B) {
	src := vec.FromFunc(10_000, func(i int) int { return (i * 2654435761) % 10_000 })
	b.Run("Sort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := src.Clone()
			vec.Sort[int](v)
		}
	})
	b.Run("StableSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := src.Clone()
			vec.StableSort[int](v)
		}
	})
}

func BenchmarkFoldLeft(b *testing.B) {
	v := vec.FromFunc(100_000, func(i int) int { return i })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vec.FoldLeft[int](v, 0, func(acc, x int) int { return acc + x })
	}
}
