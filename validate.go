package slotlist

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Validate checks the bookkeeping fields and returns the first violated
// invariant, in the fixed order capacity, first_free, sorted flag, head,
// tail. It never mutates the list.
func (l *List[T]) Validate() ErrorCode {
	if l == nil {
		return InvalidList
	}
	if l.capacity <= 0 || len(l.cells) != l.capacity {
		return InvalidCapacity
	}
	if l.firstFree < 0 || int(l.firstFree) >= l.capacity {
		return IncorrectFreeListHead
	}
	if l.sorted != flagSorted && l.sorted != flagUnsorted {
		return IncorrectSortedFlag
	}
	if l.head < 0 || int(l.head) >= l.capacity {
		return IncorrectHeadIndex
	}
	if l.tail < 0 || int(l.tail) >= l.capacity {
		return IncorrectTailIndex
	}
	return OK
}

// Check runs Validate followed by a full walk of the live chain and the
// free list. Together they must partition the slots [1, capacity), every
// prev link must mirror its next link and, if the list claims to be
// sorted, the chain must be a contiguous ascending run starting at head.
func (l *List[T]) Check() error {
	if code := l.Validate(); code != OK {
		return newError("check", code)
	}
	return l.checkLinks()
}

func (l *List[T]) checkLinks() error {
	live := roaring.New()
	prev := Sentinel
	contiguous := true
	n := 0
	for slot := l.head; slot != Sentinel; slot = l.cells[slot].next {
		if slot < 0 || int(slot) >= l.capacity {
			return newError("check", BrokenChain).atSlot(slot).withCause(fmt.Errorf("chain leaves storage after slot %d", prev))
		}
		c := &l.cells[slot]
		if !c.live() {
			return newError("check", BrokenChain).atSlot(slot).withCause(fmt.Errorf("chain reaches %s cell", c.state))
		}
		if live.Contains(uint32(slot)) {
			return newError("check", BrokenChain).atSlot(slot).withCause(errors.New("chain is cyclic"))
		}
		if c.prev != prev {
			return newError("check", BrokenChain).atSlot(slot).withCause(fmt.Errorf("prev is %s, want %s", c.prev, prev))
		}
		if slot != l.head+SlotID(n) {
			contiguous = false
		}
		live.Add(uint32(slot))
		prev = slot
		n++
	}
	if prev != l.tail {
		return newError("check", IncorrectTailIndex).atSlot(l.tail).withCause(fmt.Errorf("chain ends at %s", prev))
	}
	if n != l.size {
		return newError("check", BrokenChain).withCause(fmt.Errorf("chain holds %d elements, length is %d", n, l.size))
	}

	free := roaring.New()
	for slot := l.firstFree; slot != Sentinel; slot = l.cells[slot].next {
		if slot < 0 || int(slot) >= l.capacity {
			return newError("check", IncorrectFreeListHead).atSlot(slot)
		}
		if l.cells[slot].live() || live.Contains(uint32(slot)) {
			return newError("check", BrokenChain).atSlot(slot).withCause(errors.New("free list reaches a live cell"))
		}
		if free.Contains(uint32(slot)) {
			return newError("check", BrokenChain).atSlot(slot).withCause(errors.New("free list is cyclic"))
		}
		free.Add(uint32(slot))
	}

	lost := roaring.New()
	lost.AddRange(1, uint64(l.capacity))
	lost.AndNot(roaring.Or(live, free))
	if !lost.IsEmpty() {
		return newError("check", BrokenChain).atSlot(SlotID(lost.Minimum())).
			withCause(fmt.Errorf("%d slots unreachable", lost.GetCardinality()))
	}

	if l.sorted == flagSorted && !contiguous {
		return newError("check", IncorrectSortedFlag)
	}
	return nil
}

// mutate runs fn between a pre- and a post-condition check. A failed
// pre-check or an error from fn leaves the list untouched. A failed
// post-check means fn broke the list: it is marked corrupted and every
// later call fails with ErrCorrupted.
func (l *List[T]) mutate(op string, fn func() error) error {
	if l == nil {
		return newError(op, InvalidList)
	}
	if l.corrupt != nil {
		return l.corrupt
	}
	if code := l.Validate(); code != OK {
		l.logger.LogValidation(op, code, false)
		return l.fail(newError(op, code))
	}
	if err := fn(); err != nil {
		return l.fail(err)
	}
	if err := l.postCheck(op); err != nil {
		l.corrupt = fmt.Errorf("%w: %w", ErrCorrupted, err)
		l.report(l.corrupt.Error())
		return l.corrupt
	}
	return nil
}

// read is mutate without the post-check, for operations that never write.
func (l *List[T]) read(op string, fn func() error) error {
	if l == nil {
		return newError(op, InvalidList)
	}
	if l.corrupt != nil {
		return l.corrupt
	}
	if code := l.Validate(); code != OK {
		l.logger.LogValidation(op, code, false)
		return l.fail(newError(op, code))
	}
	if err := fn(); err != nil {
		return l.fail(err)
	}
	return nil
}

func (l *List[T]) postCheck(op string) error {
	if code := l.Validate(); code != OK {
		l.logger.LogValidation(op, code, true)
		return newError(op, code)
	}
	if l.validation >= ValidateStrong {
		if err := l.checkLinks(); err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Op = op
				l.logger.LogValidation(op, e.Code, true)
			}
			return err
		}
	}
	return nil
}

func (l *List[T]) fail(err error) error {
	l.report(err.Error())
	return err
}

func (l *List[T]) report(reason string) {
	if l.reporter == nil {
		return
	}
	l.reporter.Report(reason, l.snapshot(l.Validate()))
}
