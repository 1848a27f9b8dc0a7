package slotlist

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorCode classifies every failure a List can report.
type ErrorCode int

const (
	// OK means the list passed validation.
	OK ErrorCode = iota
	// InvalidList is returned for a nil *List.
	InvalidList
	// InvalidCapacity means capacity <= 0 (also the state of a destroyed list).
	InvalidCapacity
	// IncorrectHeadIndex means head is outside [0, capacity).
	IncorrectHeadIndex
	// IncorrectTailIndex means tail is outside [0, capacity).
	IncorrectTailIndex
	// IncorrectFreeListHead means first_free is outside [0, capacity).
	IncorrectFreeListHead
	// IncorrectSortedFlag means the sorted flag is neither set nor cleared,
	// or (strong validation) it is set but the chain is not contiguous.
	IncorrectSortedFlag
	// EmptyList is returned when removing from an empty list.
	EmptyList
	// InvalidSlot means a physical index does not name a live or allocatable cell.
	InvalidSlot
	// BadLogicalIndex means a logical index is out of the live range.
	BadLogicalIndex
	// OutOfMemory means growth or compaction could not reserve storage.
	OutOfMemory
	// BrokenChain means the live chain and the free list do not partition
	// the non-sentinel slots.
	BrokenChain
)

var codeNames = [...]string{
	OK:                    "ok",
	InvalidList:           "invalid list",
	InvalidCapacity:       "invalid capacity",
	IncorrectHeadIndex:    "incorrect head index",
	IncorrectTailIndex:    "incorrect tail index",
	IncorrectFreeListHead: "incorrect free list head",
	IncorrectSortedFlag:   "incorrect sorted flag",
	EmptyList:             "list is empty",
	InvalidSlot:           "invalid slot",
	BadLogicalIndex:       "bad logical index",
	OutOfMemory:           "out of memory",
	BrokenChain:           "broken chain",
}

var codeDescriptions = [...]string{
	OK:                    "ok",
	InvalidList:           "Invalid list pointer",
	InvalidCapacity:       "Incorrect capacity: capacity (<= 0)",
	IncorrectHeadIndex:    "Incorrect head index: index (< 0) or (>= capacity)",
	IncorrectTailIndex:    "Incorrect tail index: index (< 0) or (>= capacity)",
	IncorrectFreeListHead: "Incorrect first_free index: (< 0) or (>= capacity)",
	IncorrectSortedFlag:   "Incorrect is_sorted field: not a valid flag or does not match storage order",
	EmptyList:             "List is empty",
	InvalidSlot:           "Function received bad physical index. Check element on this index, it most likely damaged",
	BadLogicalIndex:       "Function received bad logical index. No element at this logical index",
	OutOfMemory:           "Not enough memory to increase capacity",
	BrokenChain:           "Live chain and free list do not partition the slots",
}

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Description returns the human readable explanation of the code.
func (c ErrorCode) Description() string {
	if c >= 0 && int(c) < len(codeDescriptions) {
		return codeDescriptions[c]
	}
	return "Unknown error"
}

// ErrorDescription maps an error code to human text.
func ErrorDescription(code ErrorCode) string { return code.Description() }

var (
	// ErrInvalidList is matched by errors carrying InvalidList.
	ErrInvalidList = errors.New("invalid list")
	// ErrInvalidCapacity is matched by errors carrying InvalidCapacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrIncorrectHead is matched by errors carrying IncorrectHeadIndex.
	ErrIncorrectHead = errors.New("incorrect head index")
	// ErrIncorrectTail is matched by errors carrying IncorrectTailIndex.
	ErrIncorrectTail = errors.New("incorrect tail index")
	// ErrIncorrectFreeList is matched by errors carrying IncorrectFreeListHead.
	ErrIncorrectFreeList = errors.New("incorrect free list head")
	// ErrIncorrectSorted is matched by errors carrying IncorrectSortedFlag.
	ErrIncorrectSorted = errors.New("incorrect sorted flag")
	// ErrEmptyList is matched by errors carrying EmptyList.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidSlot is matched by errors carrying InvalidSlot.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrBadLogicalIndex is matched by errors carrying BadLogicalIndex.
	ErrBadLogicalIndex = errors.New("bad logical index")
	// ErrOutOfMemory is matched by errors carrying OutOfMemory.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrBrokenChain is matched by errors carrying BrokenChain.
	ErrBrokenChain = errors.New("broken chain")

	// ErrCorrupted is returned by every call on a list whose own operation
	// broke its invariants. The list must not be used any further.
	ErrCorrupted = errors.New("slotlist: list corrupted")
)

var codeErrors = [...]error{
	InvalidList:           ErrInvalidList,
	InvalidCapacity:       ErrInvalidCapacity,
	IncorrectHeadIndex:    ErrIncorrectHead,
	IncorrectTailIndex:    ErrIncorrectTail,
	IncorrectFreeListHead: ErrIncorrectFreeList,
	IncorrectSortedFlag:   ErrIncorrectSorted,
	EmptyList:             ErrEmptyList,
	InvalidSlot:           ErrInvalidSlot,
	BadLogicalIndex:       ErrBadLogicalIndex,
	OutOfMemory:           ErrOutOfMemory,
	BrokenChain:           ErrBrokenChain,
}

// Error is returned by every List operation that fails.
//
// Use errors.Is with the Err* sentinels, or errors.As to read the code.
// The underlying cause (if any) can be accessed via errors.Unwrap.
type Error struct {
	Op    string
	Code  ErrorCode
	Slot  SlotID // physical index involved, noSlot if none
	Index int    // logical index involved, -1 if none
	cause error
}

func newError(op string, code ErrorCode) *Error {
	return &Error{Op: op, Code: code, Slot: noSlot, Index: -1}
}

func (e *Error) atSlot(s SlotID) *Error {
	e.Slot = s
	return e
}

func (e *Error) atIndex(i int) *Error {
	e.Index = i
	return e
}

func (e *Error) withCause(err error) *Error {
	e.cause = err
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("slotlist: %s: %s", e.Op, e.Code)
	if e.Slot != noSlot {
		msg += fmt.Sprintf(" (slot %d)", e.Slot)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (index %d)", e.Index)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for e.Code.
func (e *Error) Is(target error) bool {
	if e.Code > OK && int(e.Code) < len(codeErrors) {
		return codeErrors[e.Code] == target
	}
	return false
}

// CodeOf extracts the ErrorCode carried by err. It returns OK for a nil
// error and false if err does not come from a List.
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return OK, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return OK, false
}
