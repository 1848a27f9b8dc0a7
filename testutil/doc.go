// Package testutil provides testing utilities for slotlist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, random operation sequences and a
// reference deque model that list behavior is compared against.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, 0.6) // 60% pushes
//
// # Reference Model
//
//	var model testutil.Deque[int]
//	model.PushBack(1)
//	model.PushFront(0)
//	model.Values() // [0 1]
package testutil
