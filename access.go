package slotlist

import "iter"

// Get returns the element at the logical index. A sorted list answers in
// O(1) from head+index; otherwise the chain is walked from head.
func (l *List[T]) Get(index int) (T, error) {
	var (
		v    T
		fast bool
	)
	err := l.read("get", func() error {
		if index < 0 || index >= l.capacity-1 || index >= l.size {
			return newError("get", BadLogicalIndex).atIndex(index)
		}
		if l.sorted == flagSorted {
			fast = true
			slot := l.head + SlotID(index)
			if int(slot) >= l.capacity || !l.cells[slot].live() {
				return newError("get", BadLogicalIndex).atIndex(index).atSlot(slot)
			}
			v = l.cells[slot].value
			return nil
		}
		slot := l.head
		for i := 0; i < index; i++ {
			slot = l.cells[slot].next
			if slot <= Sentinel || int(slot) >= l.capacity {
				return newError("get", BadLogicalIndex).atIndex(index).atSlot(slot)
			}
		}
		if !l.cells[slot].live() {
			return newError("get", BadLogicalIndex).atIndex(index).atSlot(slot)
		}
		v = l.cells[slot].value
		return nil
	})
	if l != nil {
		l.metrics.RecordGet(fast, err)
	}
	return v, err
}

// All returns an iterator over (logical index, value) pairs in order.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.Validate() != OK || l.corrupt != nil {
			return
		}
		slot := l.head
		for i := 0; i < l.size && slot > Sentinel && int(slot) < l.capacity; i++ {
			if !yield(i, l.cells[slot].value) {
				return
			}
			slot = l.cells[slot].next
		}
	}
}

// Slots returns an iterator over (logical index, slot) pairs in order.
func (l *List[T]) Slots() iter.Seq2[int, SlotID] {
	return func(yield func(int, SlotID) bool) {
		if l.Validate() != OK || l.corrupt != nil {
			return
		}
		slot := l.head
		for i := 0; i < l.size && slot > Sentinel && int(slot) < l.capacity; i++ {
			if !yield(i, slot) {
				return
			}
			slot = l.cells[slot].next
		}
	}
}

// Values returns the elements in logical order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}
