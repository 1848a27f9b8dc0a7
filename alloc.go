package slotlist

import "fmt"

// findFreeSlot pops the head of the free list. It returns Sentinel when
// the free list is exhausted.
func (l *List[T]) findFreeSlot() SlotID {
	s := l.firstFree
	if s == Sentinel {
		return Sentinel
	}
	l.firstFree = l.cells[s].next
	return s
}

// allocate returns a free slot, doubling the capacity when none is left.
func (l *List[T]) allocate(op string) (SlotID, error) {
	if s := l.findFreeSlot(); s != Sentinel {
		return s, nil
	}
	newCap := min(l.capacity*2, MaxCapacity)
	if newCap <= l.capacity {
		return Sentinel, newError(op, OutOfMemory).withCause(fmt.Errorf("capacity already at %d", l.capacity))
	}
	if err := l.grow(op, newCap); err != nil {
		return Sentinel, err
	}
	return l.findFreeSlot(), nil
}

// Grow enlarges the storage to newCapacity slots and returns the new
// capacity. Existing slot ids stay valid; the new slots are prepended to
// the free list.
func (l *List[T]) Grow(newCapacity int) (int, error) {
	err := l.mutate("grow", func() error {
		if newCapacity <= l.capacity {
			return newError("grow", InvalidCapacity).withCause(fmt.Errorf("capacity %d is not above %d", newCapacity, l.capacity))
		}
		return l.grow("grow", newCapacity)
	})
	return l.Cap(), err
}

// grow swaps in a bigger block. On failure the list is unchanged.
func (l *List[T]) grow(op string, newCap int) error {
	if newCap > MaxCapacity {
		return newError(op, OutOfMemory).withCause(fmt.Errorf("capacity %d exceeds %d", newCap, MaxCapacity))
	}
	extra := int64(newCap-l.capacity) * l.cellSize
	if err := l.budget.AcquireMemory(extra); err != nil {
		return newError(op, OutOfMemory).withCause(err)
	}

	oldCap := l.capacity
	cells := make([]cell[T], newCap)
	copy(cells, l.cells)
	initFree(cells, oldCap, newCap)
	cells[newCap-1].next = l.firstFree

	l.cells = cells
	l.capacity = newCap
	l.firstFree = SlotID(oldCap)
	l.reserved += extra

	if l.controller.AllowAdvisory() {
		l.logger.LogGrow(oldCap, newCap)
	}
	l.metrics.RecordGrow(oldCap, newCap)
	l.report(fmt.Sprintf("%s: capacity increased from %d to %d", op, oldCap, newCap))
	return nil
}
