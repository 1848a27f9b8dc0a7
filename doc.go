// Package slotlist provides an array-backed doubly-linked list.
//
// Elements are stored in a single slice of cells and chained by slot index
// instead of by pointer. Slot 0 is a sentinel that never holds an element.
// Vacated slots are threaded into an intrusive free list and reused in
// O(1), so a list that stays within its capacity never allocates.
//
// # Quick Start
//
//	l, _ := slotlist.New[int](16)
//	l.PushBack(10)
//	l.PushBack(20)
//	l.PushFront(5)
//	v, _ := l.Get(0) // 5
//
// # Slots and Logical Indexes
//
// Insertions return a SlotID, the physical handle of the element. It stays
// valid until the element is removed or the list is compacted. InsertAfter
// and RemoveAt work on slots; Get works on logical indexes (the position in
// traversal order).
//
// While the chain occupies a contiguous ascending run of slots the list is
// sorted and Get is O(1). Inserting in the middle or at the front usually
// breaks that; Get then walks the chain. Compact rewrites the storage in
// traversal order and restores the fast path:
//
//	if !l.IsSorted() {
//	    _ = l.Compact()
//	}
//
// # Growth
//
// When the free list is exhausted an insert doubles the capacity and logs
// a warning. Growth reallocates the storage; slot ids survive it. Use
// WithMemoryLimit or WithMemoryBudget to bound the storage, in which case
// growth fails with OutOfMemory instead.
//
// # Validation
//
// Every mutating operation validates the list before and after acting. An
// operation that finds the list broken on entry fails without touching it.
// An operation that leaves it broken marks it corrupted; every later call
// returns ErrCorrupted. WithValidation(ValidateStrong) adds a full walk of
// the chain and the free list after every mutation.
//
// # Diagnostics
//
// A Reporter receives a Snapshot whenever an operation fails and whenever
// the list grows. The dump package renders snapshots as text tables,
// Graphviz graphs and HTML logs; the archive package persists them.
//
// # Concurrency
//
// A List must be used by one goroutine at a time. SafeList wraps a List
// with a mutex.
package slotlist
