package slotlist

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/slotlist/internal/resource"
)

// sortFlag is the tri-state sorted marker. flagPoisoned is only ever held
// by a destroyed list.
type sortFlag int8

const (
	flagPoisoned sortFlag = -1
	flagUnsorted sortFlag = 0
	flagSorted   sortFlag = 1
)

// List is an array-backed doubly-linked list.
//
// Elements live in a fixed arena of cells chained through SlotIDs. Vacated
// cells go to an intrusive free list and are reused in O(1). When the
// chain occupies a contiguous ascending run of slots the list is sorted and
// Get is O(1); Compact restores that state.
//
// A List is not safe for concurrent use. Use SafeList or serialize access.
type List[T any] struct {
	cells     []cell[T]
	head      SlotID
	tail      SlotID
	capacity  int
	firstFree SlotID
	sorted    sortFlag
	size      int

	cellSize   int64
	reserved   int64
	budget     MemoryBudget
	controller *resource.Controller
	validation ValidationLevel
	logger     *Logger
	metrics    MetricsCollector
	reporter   Reporter[T]

	// corrupt is set once an operation broke the invariants.
	corrupt error
}

// New creates a list with room for capacity-1 elements (slot 0 is the
// sentinel). It fails with InvalidCapacity if capacity <= 0 and with
// OutOfMemory if the storage cannot be reserved.
func New[T any](capacity int, optFns ...Option) (*List[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if capacity <= 0 || capacity > MaxCapacity {
		return nil, newError("create", InvalidCapacity).withCause(fmt.Errorf("capacity %d", capacity))
	}

	l := &List[T]{
		cellSize:   int64(unsafe.Sizeof(cell[T]{})),
		controller: resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit, AdvisoryInterval: o.advisoryInterval}),
		validation: o.validation,
		logger:     o.logger,
		metrics:    o.metricsCollector,
	}
	l.budget = l.controller
	if o.budget != nil {
		l.budget = o.budget
	}

	if o.reporter != nil {
		r, ok := o.reporter.(Reporter[T])
		if !ok {
			return nil, fmt.Errorf("slotlist: reporter %T does not accept snapshots of %T", o.reporter, *new(T))
		}
		l.reporter = r
	}

	bytes := int64(capacity) * l.cellSize
	if err := l.budget.AcquireMemory(bytes); err != nil {
		return nil, newError("create", OutOfMemory).withCause(err)
	}
	l.reserved = bytes

	l.cells = make([]cell[T], capacity)
	l.cells[0] = cell[T]{next: Sentinel, prev: Sentinel, state: CellSentinel}
	initFree(l.cells, 1, capacity)

	l.capacity = capacity
	l.head, l.tail = Sentinel, Sentinel
	l.sorted = flagSorted
	l.firstFree = 1
	if capacity == 1 {
		l.firstFree = Sentinel
	}

	if code := l.Validate(); code != OK {
		return nil, l.fail(newError("create", code))
	}
	return l, nil
}

// NewDefault creates a list with DefaultCapacity.
func NewDefault[T any](optFns ...Option) (*List[T], error) {
	return New[T](DefaultCapacity, optFns...)
}

// Destroy releases the storage. Afterwards every operation fails with
// InvalidCapacity. With ValidateMedium or stronger every cell is poisoned
// first, so stale snapshots taken during teardown show the release.
func (l *List[T]) Destroy() error {
	if l == nil {
		return newError("destroy", InvalidList)
	}
	if code := l.Validate(); code != OK {
		return l.fail(newError("destroy", code))
	}

	if l.validation >= ValidateMedium {
		var zero T
		for i := range l.cells {
			l.cells[i] = cell[T]{value: zero, next: noSlot, prev: noSlot, state: CellFreed}
		}
	}

	l.capacity = -1
	l.head, l.tail, l.firstFree = noSlot, noSlot, noSlot
	l.sorted = flagPoisoned
	l.size = 0
	l.cells = nil

	l.budget.ReleaseMemory(l.reserved)
	l.reserved = 0
	return nil
}

// Len returns the number of live elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Cap returns the number of slots including the sentinel (-1 once destroyed).
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return l.capacity
}

// Head returns the slot of the first element (Sentinel if empty).
func (l *List[T]) Head() SlotID { return l.head }

// Tail returns the slot of the last element (Sentinel if empty).
func (l *List[T]) Tail() SlotID { return l.tail }

// FirstFree returns the head of the free list (Sentinel if exhausted).
func (l *List[T]) FirstFree() SlotID { return l.firstFree }

// IsSorted reports whether logical positions map directly to slots.
func (l *List[T]) IsSorted() bool {
	return l != nil && l.sorted == flagSorted
}

// Next returns the slot following slot in the chain.
func (l *List[T]) Next(slot SlotID) (SlotID, error) {
	if err := l.checkLive("next", slot); err != nil {
		return Sentinel, err
	}
	return l.cells[slot].next, nil
}

// Prev returns the slot preceding slot in the chain.
func (l *List[T]) Prev(slot SlotID) (SlotID, error) {
	if err := l.checkLive("prev", slot); err != nil {
		return Sentinel, err
	}
	return l.cells[slot].prev, nil
}

// At returns the value stored in a live slot.
func (l *List[T]) At(slot SlotID) (T, error) {
	if err := l.checkLive("at", slot); err != nil {
		var zero T
		return zero, err
	}
	return l.cells[slot].value, nil
}

func (l *List[T]) checkLive(op string, slot SlotID) error {
	return l.read(op, func() error {
		if slot <= Sentinel || int(slot) >= l.capacity || !l.cells[slot].live() {
			return newError(op, InvalidSlot).atSlot(slot)
		}
		return nil
	})
}
