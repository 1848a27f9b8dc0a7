package slotlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("FastAndSlowAgree", func(t *testing.T) {
		sorted, err := New[int](16)
		require.NoError(t, err)
		unsorted, err := New[int](16)
		require.NoError(t, err)

		for i := range 8 {
			_, _ = sorted.PushBack(i)
		}
		for i := 7; i >= 0; i-- {
			_, _ = unsorted.PushFront(i)
		}
		_, _ = unsorted.PopBack()
		_, _ = unsorted.PushBack(7)
		require.True(t, sorted.IsSorted())
		require.False(t, unsorted.IsSorted())

		for i := range 8 {
			a, err := sorted.Get(i)
			require.NoError(t, err)
			b, err := unsorted.Get(i)
			require.NoError(t, err)
			assert.Equal(t, a, b, "index %d", i)
		}
	})

	t.Run("BadLogicalIndex", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		_, _ = l.PushBack(1)
		_, _ = l.PushFront(0)

		for _, i := range []int{-1, 2, 3, 4} {
			_, err := l.Get(i)
			require.ErrorIs(t, err, ErrBadLogicalIndex, "index %d", i)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, i, e.Index)
		}
	})

	t.Run("AfterPopFront", func(t *testing.T) {
		l, err := New[int](8)
		require.NoError(t, err)
		for i := range 4 {
			_, _ = l.PushBack(i)
		}
		_, _ = l.PopFront()
		require.True(t, l.IsSorted())

		v, err := l.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		v, err = l.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("Metrics", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		l, err := New[int](8, WithMetricsCollector(mc))
		require.NoError(t, err)
		_, _ = l.PushBack(1)
		_, _ = l.PushFront(0)

		_, _ = l.Get(0)
		require.NoError(t, l.Compact())
		_, _ = l.Get(1)
		_, _ = l.Get(5)

		stats := mc.GetStats()
		assert.Equal(t, int64(1), stats.GetSlowCount)
		assert.Equal(t, int64(1), stats.GetFastCount)
		assert.Equal(t, int64(1), stats.GetErrors)
	})
}

func TestIteration(t *testing.T) {
	l, err := New[string](8)
	require.NoError(t, err)
	_, _ = l.PushBack("b")
	_, _ = l.PushBack("c")
	a, _ := l.PushFront("a")

	var got []string
	for i, v := range l.All() {
		assert.Equal(t, len(got), i)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	var slots []SlotID
	for _, s := range l.Slots() {
		slots = append(slots, s)
	}
	assert.Equal(t, []SlotID{a, 1, 2}, slots)

	for i := range l.All() {
		if i == 1 {
			break
		}
	}

	v, err := l.At(a)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	_, err = l.At(Sentinel)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}
