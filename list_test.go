package slotlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("FreeListAscending", func(t *testing.T) {
		l, err := New[int](5)
		require.NoError(t, err)

		assert.Equal(t, 5, l.Cap())
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, Sentinel, l.Head())
		assert.Equal(t, Sentinel, l.Tail())
		assert.Equal(t, SlotID(1), l.FirstFree())
		assert.True(t, l.IsSorted())
		assert.Equal(t, []SlotID{1, 2, 3, 4}, l.Snapshot().FreeSlots())
		assert.Equal(t, CellSentinel, l.cells[0].state)
		assert.Equal(t, Sentinel, l.cells[0].next)
		assert.Equal(t, Sentinel, l.cells[0].prev)
		require.NoError(t, l.Check())
	})

	t.Run("Default", func(t *testing.T) {
		l, err := NewDefault[string]()
		require.NoError(t, err)
		assert.Equal(t, DefaultCapacity, l.Cap())
	})

	t.Run("InvalidCapacity", func(t *testing.T) {
		for _, c := range []int{0, -1} {
			_, err := New[int](c)
			require.ErrorIs(t, err, ErrInvalidCapacity)
		}
	})

	t.Run("CapacityOne", func(t *testing.T) {
		l, err := New[int](1)
		require.NoError(t, err)
		assert.Equal(t, Sentinel, l.FirstFree())
		require.NoError(t, l.Check())

		slot, err := l.PushBack(7)
		require.NoError(t, err)
		assert.Equal(t, SlotID(1), slot)
		assert.Equal(t, 2, l.Cap())
		assert.Equal(t, []int{7}, l.Values())
	})

	t.Run("MemoryLimit", func(t *testing.T) {
		_, err := New[int](16, WithMemoryLimit(8))
		require.ErrorIs(t, err, ErrOutOfMemory)
	})

	t.Run("ReporterTypeMismatch", func(t *testing.T) {
		r := ReporterFunc[string](func(string, *Snapshot[string]) {})
		_, err := New[int](4, WithReporter[string](r))
		require.Error(t, err)
	})
}

func TestDestroy(t *testing.T) {
	t.Run("PoisonsCells", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		_, err = l.PushBack(1)
		require.NoError(t, err)

		cells := l.cells
		require.NoError(t, l.Destroy())

		for _, c := range cells {
			assert.Equal(t, CellFreed, c.state)
			assert.Equal(t, noSlot, c.next)
			assert.Equal(t, noSlot, c.prev)
		}
		assert.Equal(t, -1, l.Cap())
		assert.Equal(t, noSlot, l.Head())
		assert.Equal(t, noSlot, l.Tail())
		assert.Equal(t, noSlot, l.FirstFree())
		assert.False(t, l.IsSorted())
		assert.Equal(t, InvalidCapacity, l.Validate())
	})

	t.Run("WeakSkipsPoison", func(t *testing.T) {
		l, err := New[int](4, WithValidation(ValidateWeak))
		require.NoError(t, err)
		_, err = l.PushBack(1)
		require.NoError(t, err)

		cells := l.cells
		require.NoError(t, l.Destroy())
		assert.Equal(t, CellLive, cells[1].state)
	})

	t.Run("UseAfterDestroy", func(t *testing.T) {
		l, err := New[int](4)
		require.NoError(t, err)
		require.NoError(t, l.Destroy())

		_, err = l.PushBack(1)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		_, err = l.PopFront()
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		_, err = l.Get(0)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		assert.ErrorIs(t, l.Compact(), ErrInvalidCapacity)
		assert.ErrorIs(t, l.Destroy(), ErrInvalidCapacity)
		assert.Empty(t, l.Values())
	})

	t.Run("ReleasesBudget", func(t *testing.T) {
		budget := &countingBudget{}
		l, err := New[int](8, WithMemoryBudget(budget))
		require.NoError(t, err)
		assert.Positive(t, budget.used)

		_, err = l.Grow(16)
		require.NoError(t, err)
		require.NoError(t, l.Destroy())
		assert.Zero(t, budget.used)
	})
}

func TestNilList(t *testing.T) {
	var l *List[int]

	assert.Equal(t, InvalidList, l.Validate())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())
	assert.False(t, l.IsSorted())
	assert.Nil(t, l.Snapshot())
	assert.Empty(t, l.Values())

	_, err := l.PushBack(1)
	assert.ErrorIs(t, err, ErrInvalidList)
	_, err = l.Get(0)
	assert.ErrorIs(t, err, ErrInvalidList)
	assert.ErrorIs(t, l.Destroy(), ErrInvalidList)
	assert.ErrorIs(t, l.Check(), ErrInvalidList)
}

type countingBudget struct {
	used int64
}

func (b *countingBudget) AcquireMemory(bytes int64) error {
	b.used += bytes
	return nil
}

func (b *countingBudget) ReleaseMemory(bytes int64) {
	b.used -= bytes
}
