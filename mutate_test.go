package slotlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	l, err := New[int](4, WithValidation(ValidateStrong))
	require.NoError(t, err)

	for _, v := range []int{10, 20, 30} {
		_, err := l.PushBack(v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{10, 20, 30}, l.Values())
	assert.True(t, l.IsSorted())
	assert.Empty(t, l.Snapshot().FreeSlots())

	v, err := l.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	assert.Equal(t, []int{10, 20}, l.Values())

	_, err = l.PushFront(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 20}, l.Values())
	assert.False(t, l.IsSorted())

	require.NoError(t, l.Compact())
	assert.True(t, l.IsSorted())
	v, err = l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	require.NoError(t, l.Check())
}

func TestInsertAfter(t *testing.T) {
	t.Run("Middle", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)
		a, _ := l.PushBack(1)
		_, _ = l.PushBack(3)

		s, err := l.InsertAfter(2, a)
		require.NoError(t, err)
		assert.Equal(t, SlotID(3), s)
		assert.Equal(t, []int{1, 2, 3}, l.Values())
		assert.False(t, l.IsSorted())

		prev, err := l.Prev(s)
		require.NoError(t, err)
		assert.Equal(t, a, prev)
		next, err := l.Next(s)
		require.NoError(t, err)
		assert.Equal(t, SlotID(2), next)
	})

	t.Run("AfterTailMovesTail", func(t *testing.T) {
		l, err := New[int](8)
		require.NoError(t, err)
		s1, _ := l.PushBack(1)

		s2, err := l.InsertAfter(2, s1)
		require.NoError(t, err)
		assert.Equal(t, s2, l.Tail())
		assert.False(t, l.IsSorted())
	})

	t.Run("SentinelPrepends", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)

		s1, err := l.InsertAfter(1, Sentinel)
		require.NoError(t, err)
		assert.Equal(t, s1, l.Head())
		assert.Equal(t, s1, l.Tail())

		s0, err := l.InsertAfter(0, Sentinel)
		require.NoError(t, err)
		assert.Equal(t, s0, l.Head())
		assert.Equal(t, s1, l.Tail())
		assert.Equal(t, []int{0, 1}, l.Values())
	})

	t.Run("InvalidAnchor", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		first := l.FirstFree()

		for _, anchor := range []SlotID{-1, 2, 4, 100} {
			_, err := l.InsertAfter(1, anchor)
			require.ErrorIs(t, err, ErrInvalidSlot, "anchor %d", anchor)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, anchor, e.Slot)
		}
		assert.Equal(t, first, l.FirstFree())
		assert.Equal(t, 0, l.Len())
	})
}

func TestRemoveAt(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		first := l.FirstFree()

		_, err = l.RemoveAt(1)
		require.ErrorIs(t, err, ErrEmptyList)
		assert.Equal(t, first, l.FirstFree())

		_, err = l.PopBack()
		require.ErrorIs(t, err, ErrEmptyList)
		_, err = l.PopFront()
		require.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("Middle", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)
		_, _ = l.PushBack(1)
		mid, _ := l.PushBack(2)
		_, _ = l.PushBack(3)

		v, err := l.RemoveAt(mid)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, []int{1, 3}, l.Values())
		assert.Equal(t, mid, l.FirstFree())
		assert.False(t, l.IsSorted())
		assert.Equal(t, CellFreed, l.Snapshot().Cells[mid].State)
	})

	t.Run("InvalidSlot", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		s, _ := l.PushBack(1)

		for _, slot := range []SlotID{Sentinel, -3, 2, 9} {
			_, err := l.RemoveAt(slot)
			require.ErrorIs(t, err, ErrInvalidSlot, "slot %d", slot)
		}

		_, err = l.RemoveAt(s)
		require.NoError(t, err)
		_, _ = l.PushBack(2)
		_, err = l.RemoveAt(2)
		require.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("LastElement", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		s, _ := l.PushFront(1)

		_, err = l.RemoveAt(s)
		require.NoError(t, err)
		assert.Equal(t, Sentinel, l.Head())
		assert.Equal(t, Sentinel, l.Tail())
		assert.Equal(t, 0, l.Len())
	})
}

func TestPushPop(t *testing.T) {
	t.Run("RoundTripOnEmpty", func(t *testing.T) {
		l, err := New[string](4)
		require.NoError(t, err)

		_, err = l.PushBack("x")
		require.NoError(t, err)
		v, err := l.PopBack()
		require.NoError(t, err)
		assert.Equal(t, "x", v)
		assert.Equal(t, Sentinel, l.Head())
		assert.Equal(t, Sentinel, l.Tail())
		assert.True(t, l.IsSorted())
	})

	t.Run("PushBackKeepsSorted", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)
		for i := range 5 {
			_, err := l.PushBack(i)
			require.NoError(t, err)
			assert.True(t, l.IsSorted())
		}
	})

	t.Run("PushBackAfterPopFront", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)
		for i := range 3 {
			_, _ = l.PushBack(i)
		}

		_, err = l.PopFront()
		require.NoError(t, err)
		assert.True(t, l.IsSorted())

		// Reuses slot 1, which is not tail+1.
		s, err := l.PushBack(3)
		require.NoError(t, err)
		assert.Equal(t, SlotID(1), s)
		assert.False(t, l.IsSorted())
		assert.Equal(t, []int{1, 2, 3}, l.Values())
	})

	t.Run("PushFrontIntoPreviousHead", func(t *testing.T) {
		l, err := New[int](8, WithValidation(ValidateStrong))
		require.NoError(t, err)
		for i := range 3 {
			_, _ = l.PushBack(i)
		}
		v, err := l.PopFront()
		require.NoError(t, err)

		s, err := l.PushFront(v)
		require.NoError(t, err)
		assert.Equal(t, SlotID(1), s)
		assert.True(t, l.IsSorted())
		assert.Equal(t, []int{0, 1, 2}, l.Values())
	})

	t.Run("PopKeepsUnsorted", func(t *testing.T) {
		l, err := New[int](8)
		require.NoError(t, err)
		_, _ = l.PushBack(1)
		_, _ = l.PushFront(0)
		_, _ = l.PushBack(2)
		require.False(t, l.IsSorted())

		_, err = l.PopBack()
		require.NoError(t, err)
		assert.False(t, l.IsSorted())
	})
}

func TestGrowth(t *testing.T) {
	t.Run("PushWhenFull", func(t *testing.T) {
		l, err := New[int](4, WithValidation(ValidateStrong))
		require.NoError(t, err)
		for i := range 3 {
			_, _ = l.PushBack(i)
		}
		require.Equal(t, Sentinel, l.FirstFree())

		s, err := l.PushBack(42)
		require.NoError(t, err)
		assert.Greater(t, l.Cap(), 4)
		assert.Equal(t, SlotID(4), s)
		assert.True(t, l.IsSorted())

		v, err := l.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("KeepsFreeList", func(t *testing.T) {
		l, err := New[int](4, WithValidation(ValidateStrong))
		require.NoError(t, err)
		_, _ = l.PushBack(1)

		newCap, err := l.Grow(8)
		require.NoError(t, err)
		assert.Equal(t, 8, newCap)
		assert.Equal(t, SlotID(4), l.FirstFree())
		assert.Equal(t, []SlotID{4, 5, 6, 7, 2, 3}, l.Snapshot().FreeSlots())
		require.NoError(t, l.Check())
	})

	t.Run("NotLarger", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)

		_, err = l.Grow(4)
		require.ErrorIs(t, err, ErrInvalidCapacity)
		assert.Equal(t, 4, l.Cap())
	})

	t.Run("OutOfMemory", func(t *testing.T) {
		size := cellSizeOf[int]()
		l, err := New[int](4, WithMemoryLimit(4*size))
		require.NoError(t, err)
		for i := range 3 {
			_, _ = l.PushBack(i)
		}

		_, err = l.PushBack(3)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, 4, l.Cap())
		assert.Equal(t, []int{0, 1, 2}, l.Values())
		assert.Equal(t, OK, l.Validate())
		require.NoError(t, l.Check())
	})

	t.Run("Advisory", func(t *testing.T) {
		var reasons []string
		l, err := New[int](2, WithReporter[int](ReporterFunc[int](func(reason string, snap *Snapshot[int]) {
			reasons = append(reasons, reason)
			assert.Equal(t, OK, snap.Code)
		})))
		require.NoError(t, err)

		_, _ = l.PushBack(1)
		_, _ = l.PushBack(2)
		require.Len(t, reasons, 1)
		assert.Contains(t, reasons[0], "capacity increased from 2 to 4")
	})
}

func cellSizeOf[T any]() int64 {
	l, _ := New[T](1)
	return l.cellSize
}
