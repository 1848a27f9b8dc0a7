package slotlist

import (
	"fmt"
	"strconv"
)

// SlotID is the physical index of a cell in the list's backing storage.
//
// A SlotID is stable until the next Compact or Grow. Logical positions are
// plain ints and are never converted to SlotID implicitly.
type SlotID int

// Sentinel is the reserved slot 0. It never holds a live element, anchors
// both ends of the chain and terminates the free list.
const Sentinel SlotID = 0

// noSlot marks a link that does not point anywhere (the prev link of a
// non-live cell) and the bookkeeping fields of a destroyed list.
const noSlot SlotID = -1

// String implements fmt.Stringer.
func (s SlotID) String() string {
	if s == noSlot {
		return "-"
	}
	return strconv.Itoa(int(s))
}

// CellState is the tagged state of a cell.
type CellState uint8

const (
	// CellEmpty marks a cell that was never allocated.
	CellEmpty CellState = iota
	// CellFreed marks a cell that was live and has been released.
	CellFreed
	// CellLive marks a cell holding an element of the list.
	CellLive
	// CellSentinel marks slot 0.
	CellSentinel
)

var cellStateNames = [...]string{
	CellEmpty:    "empty",
	CellFreed:    "freed",
	CellLive:     "live",
	CellSentinel: "sentinel",
}

// String implements fmt.Stringer.
func (c CellState) String() string {
	if int(c) < len(cellStateNames) {
		return cellStateNames[c]
	}
	return "CellState(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c CellState) MarshalText() ([]byte, error) {
	if int(c) >= len(cellStateNames) {
		return nil, fmt.Errorf("slotlist: invalid cell state %d", c)
	}
	return []byte(cellStateNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CellState) UnmarshalText(b []byte) error {
	for i, name := range cellStateNames {
		if name == string(b) {
			*c = CellState(i)
			return nil
		}
	}
	return fmt.Errorf("slotlist: unknown cell state %q", b)
}

// cell is one slot of the arena. For free cells next threads the free list;
// prev is noSlot for every cell that is not live.
type cell[T any] struct {
	value T
	next  SlotID
	prev  SlotID
	state CellState
}

func (c *cell[T]) live() bool { return c.state == CellLive }

// initFree links cells [from, to) into a free chain ending in Sentinel.
func initFree[T any](cells []cell[T], from, to int) {
	for i := from; i < to; i++ {
		cells[i] = cell[T]{next: SlotID(i + 1), prev: noSlot, state: CellEmpty}
	}
	if to > from {
		cells[to-1].next = Sentinel
	}
}
