package slotlist

import "time"

// InsertAfter links value after the live slot anchor and returns the slot
// it was stored in. Anchor Sentinel inserts before the current head. When
// no free slot is left the storage grows first.
func (l *List[T]) InsertAfter(value T, anchor SlotID) (SlotID, error) {
	start := time.Now()
	var slot SlotID
	err := l.mutate("insert_after", func() (err error) {
		slot, err = l.insertAfter("insert_after", value, anchor)
		return err
	})
	l.observeInsert("insert_after", start, slot, err)
	return slot, err
}

// RemoveAt unlinks the live slot and returns its value. The slot goes to
// the front of the free list.
func (l *List[T]) RemoveAt(slot SlotID) (T, error) {
	start := time.Now()
	var v T
	err := l.mutate("remove_at", func() (err error) {
		v, err = l.removeAt("remove_at", slot)
		return err
	})
	l.observeRemove("remove_at", start, slot, err)
	return v, err
}

// PushBack appends value after the tail.
func (l *List[T]) PushBack(value T) (SlotID, error) {
	start := time.Now()
	var slot SlotID
	err := l.mutate("push_back", func() error {
		wasSorted, oldTail := l.sorted == flagSorted, l.tail
		wasEmpty := l.size == 0
		s, err := l.insertAfter("push_back", value, l.tail)
		if err != nil {
			return err
		}
		if wasEmpty || (wasSorted && s == oldTail+1) {
			l.sorted = flagSorted
		}
		slot = s
		return nil
	})
	l.observeInsert("push_back", start, slot, err)
	return slot, err
}

// PushFront prepends value before the head.
func (l *List[T]) PushFront(value T) (SlotID, error) {
	start := time.Now()
	var slot SlotID
	err := l.mutate("push_front", func() error {
		wasSorted, oldHead := l.sorted == flagSorted, l.head
		wasEmpty := l.size == 0
		s, err := l.insertAfter("push_front", value, Sentinel)
		if err != nil {
			return err
		}
		if wasEmpty || (wasSorted && s+1 == oldHead) {
			l.sorted = flagSorted
		}
		slot = s
		return nil
	})
	l.observeInsert("push_front", start, slot, err)
	return slot, err
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	return l.pop("pop_back", func() SlotID { return l.tail })
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	return l.pop("pop_front", func() SlotID { return l.head })
}

// pop removes an end of the chain. Dropping an end of a contiguous run
// leaves a contiguous run, so the sorted flag is kept.
func (l *List[T]) pop(op string, end func() SlotID) (T, error) {
	start := time.Now()
	var (
		v    T
		slot SlotID
	)
	err := l.mutate(op, func() error {
		wasSorted := l.sorted
		slot = end()
		val, err := l.removeAt(op, slot)
		if err != nil {
			return err
		}
		l.sorted = wasSorted
		if l.size == 0 {
			l.sorted = flagSorted
		}
		v = val
		return nil
	})
	l.observeRemove(op, start, slot, err)
	return v, err
}

func (l *List[T]) insertAfter(op string, value T, anchor SlotID) (SlotID, error) {
	if anchor < 0 || int(anchor) >= l.capacity {
		return Sentinel, newError(op, InvalidSlot).atSlot(anchor)
	}
	if anchor != Sentinel && !l.cells[anchor].live() {
		return Sentinel, newError(op, InvalidSlot).atSlot(anchor)
	}

	s, err := l.allocate(op)
	if err != nil {
		return Sentinel, err
	}

	next := l.head
	if anchor != Sentinel {
		next = l.cells[anchor].next
	}
	l.cells[s] = cell[T]{value: value, next: next, prev: anchor, state: CellLive}
	if next != Sentinel {
		l.cells[next].prev = s
	}
	if anchor != Sentinel {
		l.cells[anchor].next = s
	} else {
		l.head = s
	}
	if anchor == l.tail {
		l.tail = s
	}

	l.size++
	l.sorted = flagUnsorted
	return s, nil
}

func (l *List[T]) removeAt(op string, slot SlotID) (T, error) {
	var zero T
	if l.head == Sentinel && l.tail == Sentinel {
		return zero, newError(op, EmptyList)
	}
	if slot <= Sentinel || int(slot) >= l.capacity || !l.cells[slot].live() {
		return zero, newError(op, InvalidSlot).atSlot(slot)
	}

	c := l.cells[slot]
	if slot == l.head {
		l.head = c.next
	}
	if slot == l.tail {
		l.tail = c.prev
	}
	if c.prev != Sentinel {
		l.cells[c.prev].next = c.next
	}
	if c.next != Sentinel {
		l.cells[c.next].prev = c.prev
	}

	l.cells[slot] = cell[T]{value: zero, next: l.firstFree, prev: noSlot, state: CellFreed}
	l.firstFree = slot
	l.size--
	l.sorted = flagUnsorted
	return c.value, nil
}

func (l *List[T]) observeInsert(op string, start time.Time, slot SlotID, err error) {
	if l == nil {
		return
	}
	l.metrics.RecordInsert(time.Since(start), err)
	l.logger.LogInsert(op, slot, err)
}

func (l *List[T]) observeRemove(op string, start time.Time, slot SlotID, err error) {
	if l == nil {
		return
	}
	l.metrics.RecordRemove(time.Since(start), err)
	l.logger.LogRemove(op, slot, err)
}
