package slotlist

import (
	"iter"
	"sync"
)

// SafeList is a mutex-protected wrapper around List for concurrent access.
// Every operation takes the lock, since nearly all of them touch the
// shared head, tail and free list bookkeeping.
type SafeList[T any] struct {
	mu sync.RWMutex
	l  *List[T]
}

// NewSafe creates a thread-safe list with the given capacity.
func NewSafe[T any](capacity int, optFns ...Option) (*SafeList[T], error) {
	l, err := New[T](capacity, optFns...)
	if err != nil {
		return nil, err
	}
	return &SafeList[T]{l: l}, nil
}

// Synchronized wraps an existing list. The caller must stop using l directly.
func Synchronized[T any](l *List[T]) *SafeList[T] {
	return &SafeList[T]{l: l}
}

// InsertAfter thread-safely calls List.InsertAfter.
func (s *SafeList[T]) InsertAfter(value T, anchor SlotID) (SlotID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.InsertAfter(value, anchor)
}

// RemoveAt thread-safely calls List.RemoveAt.
func (s *SafeList[T]) RemoveAt(slot SlotID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(slot)
}

// PushBack thread-safely calls List.PushBack.
func (s *SafeList[T]) PushBack(value T) (SlotID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PushBack(value)
}

// PushFront thread-safely calls List.PushFront.
func (s *SafeList[T]) PushFront(value T) (SlotID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PushFront(value)
}

// PopBack thread-safely calls List.PopBack.
func (s *SafeList[T]) PopBack() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PopBack()
}

// PopFront thread-safely calls List.PopFront.
func (s *SafeList[T]) PopFront() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.PopFront()
}

// Compact thread-safely calls List.Compact.
func (s *SafeList[T]) Compact() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Compact()
}

// Grow thread-safely calls List.Grow.
func (s *SafeList[T]) Grow(newCapacity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Grow(newCapacity)
}

// Destroy thread-safely calls List.Destroy.
func (s *SafeList[T]) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Destroy()
}

// Get thread-safely calls List.Get. It takes the write lock because a
// failed lookup invokes the reporter.
func (s *SafeList[T]) Get(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

// Len returns the number of live elements.
func (s *SafeList[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

// Cap returns the number of slots.
func (s *SafeList[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Cap()
}

// Validate thread-safely calls List.Validate.
func (s *SafeList[T]) Validate() ErrorCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Validate()
}

// Check thread-safely calls List.Check.
func (s *SafeList[T]) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Check()
}

// Values returns a copy of the elements in logical order.
func (s *SafeList[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Values()
}

// Snapshot returns a copy of the list state.
func (s *SafeList[T]) Snapshot() *Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Snapshot()
}

// All iterates over a copy of the values taken under the read lock, so the
// loop body may call back into s.
func (s *SafeList[T]) All() iter.Seq2[int, T] {
	values := s.Values()
	return func(yield func(int, T) bool) {
		for i, v := range values {
			if !yield(i, v) {
				return
			}
		}
	}
}
