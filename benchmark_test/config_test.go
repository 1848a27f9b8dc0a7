package benchmark_test

import (
	"testing"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard list sizes.
const (
	sizeSmall  = 1_000   // Quick iteration
	sizeMedium = 100_000 // Default CI
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// NewBenchList creates a list holding n values in physical order.
// Validation is weak so the measurement covers the operation itself.
func NewBenchList(b *testing.B, n int, opts ...slotlist.Option) *slotlist.List[int] {
	b.Helper()
	defaultOpts := []slotlist.Option{
		slotlist.WithValidation(slotlist.ValidateWeak),
	}
	l, err := slotlist.New[int](n+1, append(defaultOpts, opts...)...)
	if err != nil {
		b.Fatalf("failed to create list: %v", err)
	}
	for i := range n {
		if _, err := l.PushBack(i); err != nil {
			b.Fatalf("push_back failed: %v", err)
		}
	}
	return l
}

// Scramble turns a sorted list into an unsorted one of the same length by
// moving every other element to the front.
func Scramble(b *testing.B, l *slotlist.List[int]) {
	b.Helper()
	rng := testutil.NewRNG(benchSeed)
	for range l.Len() / 2 {
		v, err := l.PopBack()
		if err != nil {
			b.Fatal(err)
		}
		if _, err := l.PushFront(v + rng.Intn(2)); err != nil {
			b.Fatal(err)
		}
	}
	if l.IsSorted() {
		b.Fatal("list is still sorted")
	}
}
