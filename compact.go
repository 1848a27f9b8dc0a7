package slotlist

import (
	"fmt"
	"time"
)

// Compact rewrites the storage so the chain occupies slots 1..Len() in
// logical order, which makes Get O(1) again. It reserves a second block of
// the current capacity for the duration of the call; if that fails the
// list is left untouched and OutOfMemory is returned.
func (l *List[T]) Compact() error {
	start := time.Now()
	err := l.mutate("compact", l.compact)
	if l != nil {
		l.metrics.RecordCompact(time.Since(start), err)
		l.logger.LogCompact(l.size, err)
	}
	return err
}

func (l *List[T]) compact() error {
	bytes := int64(l.capacity) * l.cellSize
	if err := l.budget.AcquireMemory(bytes); err != nil {
		return newError("compact", OutOfMemory).withCause(err)
	}

	cells := make([]cell[T], l.capacity)
	cells[0] = l.cells[0]
	n := 0
	for slot := l.head; slot != Sentinel; slot = l.cells[slot].next {
		if n >= l.capacity-1 || slot < 0 || int(slot) >= l.capacity || !l.cells[slot].live() {
			l.budget.ReleaseMemory(bytes)
			return newError("compact", BrokenChain).atSlot(slot)
		}
		n++
		cells[n] = cell[T]{value: l.cells[slot].value, next: SlotID(n + 1), prev: SlotID(n - 1), state: CellLive}
	}
	if n != l.size {
		l.budget.ReleaseMemory(bytes)
		return newError("compact", BrokenChain).withCause(fmt.Errorf("chain holds %d elements, length is %d", n, l.size))
	}
	if n > 0 {
		cells[n].next = Sentinel
	}
	initFree(cells, n+1, l.capacity)

	l.cells = cells
	l.head, l.tail = Sentinel, SlotID(n)
	if n > 0 {
		l.head = 1
	}
	l.firstFree = Sentinel
	if n+1 < l.capacity {
		l.firstFree = SlotID(n + 1)
	}
	l.sorted = flagSorted

	// The new block replaces the old one, so the reservation stays the same.
	l.budget.ReleaseMemory(bytes)
	return nil
}
