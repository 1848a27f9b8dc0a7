package slotlist

// Cell is the read-only view of one slot.
type Cell[T any] struct {
	Slot  SlotID    `json:"slot"`
	State CellState `json:"state"`
	Value T         `json:"value"`
	Next  SlotID    `json:"next"`
	Prev  SlotID    `json:"prev"`
}

// Snapshot is a copy of a list's complete state. It is what diagnostics
// render; producing one never mutates the list.
type Snapshot[T any] struct {
	Cells     []Cell[T] `json:"cells"`
	Head      SlotID    `json:"head"`
	Tail      SlotID    `json:"tail"`
	Capacity  int       `json:"capacity"`
	FirstFree SlotID    `json:"first_free"`
	Sorted    bool      `json:"sorted"`
	SortFlag  int8      `json:"sort_flag"`
	Len       int       `json:"len"`
	Code      ErrorCode `json:"code"`
}

// Snapshot returns a copy of the list state together with its current
// validation code. A nil list yields nil.
func (l *List[T]) Snapshot() *Snapshot[T] {
	if l == nil {
		return nil
	}
	return l.snapshot(l.Validate())
}

func (l *List[T]) snapshot(code ErrorCode) *Snapshot[T] {
	s := &Snapshot[T]{
		Head:      l.head,
		Tail:      l.tail,
		Capacity:  l.capacity,
		FirstFree: l.firstFree,
		Sorted:    l.sorted == flagSorted,
		SortFlag:  int8(l.sorted),
		Len:       l.size,
		Code:      code,
	}
	if len(l.cells) > 0 {
		s.Cells = make([]Cell[T], len(l.cells))
		for i := range l.cells {
			c := &l.cells[i]
			s.Cells[i] = Cell[T]{
				Slot:  SlotID(i),
				State: c.state,
				Value: c.value,
				Next:  c.next,
				Prev:  c.prev,
			}
		}
	}
	return s
}

// Chain returns the slots of the live chain in logical order. The walk is
// bounded by the number of cells, so it terminates on corrupted snapshots.
func (s *Snapshot[T]) Chain() []SlotID {
	if s == nil {
		return nil
	}
	var chain []SlotID
	for slot := s.Head; s.valid(slot) && slot != Sentinel && len(chain) < len(s.Cells); slot = s.Cells[slot].Next {
		chain = append(chain, slot)
	}
	return chain
}

// FreeSlots returns the slots of the free list in allocation order.
func (s *Snapshot[T]) FreeSlots() []SlotID {
	if s == nil {
		return nil
	}
	var free []SlotID
	for slot := s.FirstFree; s.valid(slot) && slot != Sentinel && len(free) < len(s.Cells); slot = s.Cells[slot].Next {
		free = append(free, slot)
	}
	return free
}

// Values returns the element values in logical order.
func (s *Snapshot[T]) Values() []T {
	chain := s.Chain()
	values := make([]T, 0, len(chain))
	for _, slot := range chain {
		values = append(values, s.Cells[slot].Value)
	}
	return values
}

func (s *Snapshot[T]) valid(slot SlotID) bool {
	return slot >= 0 && int(slot) < len(s.Cells)
}
