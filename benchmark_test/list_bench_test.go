package benchmark_test

import (
	"testing"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/testutil"
)

func BenchmarkPushPop(b *testing.B) {
	for _, level := range []slotlist.ValidationLevel{slotlist.ValidateWeak, slotlist.ValidateMedium, slotlist.ValidateStrong} {
		b.Run(level.String(), func(b *testing.B) {
			l, err := slotlist.New[int](64, slotlist.WithValidation(level))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := range b.N {
				if _, err := l.PushBack(i); err != nil {
					b.Fatal(err)
				}
				if _, err := l.PopFront(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGrowth(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		l, err := slotlist.New[int](2)
		if err != nil {
			b.Fatal(err)
		}
		for i := range sizeSmall {
			if _, err := l.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkGet compares the O(1) path of a sorted list with the chain walk
// of an unsorted one.
func BenchmarkGet(b *testing.B) {
	for _, n := range []int{sizeSmall, sizeMedium} {
		sorted := NewBenchList(b, n)
		unsorted := NewBenchList(b, n)
		Scramble(b, unsorted)
		idx := testutil.NewRNG(benchSeed).Ints(1024, n)

		b.Run("Sorted/"+itoa(n), func(b *testing.B) {
			for i := range b.N {
				if _, err := sorted.Get(idx[i%len(idx)]); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("Unsorted/"+itoa(n), func(b *testing.B) {
			for i := range b.N {
				if _, err := unsorted.Get(idx[i%len(idx)]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompact(b *testing.B) {
	l := NewBenchList(b, sizeSmall)
	Scramble(b, l)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if err := l.Compact(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheck(b *testing.B) {
	l := NewBenchList(b, sizeMedium)
	b.ResetTimer()
	for range b.N {
		if err := l.Check(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSafeListParallel(b *testing.B) {
	l, err := slotlist.NewSafe[int](1024, slotlist.WithValidation(slotlist.ValidateWeak))
	if err != nil {
		b.Fatal(err)
	}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := l.PushBack(1); err != nil {
				b.Fatal(err)
			}
			if _, err := l.PopFront(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func itoa(n int) string {
	switch n {
	case sizeSmall:
		return "1K"
	case sizeMedium:
		return "100K"
	default:
		return "N"
	}
}
