package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)

	a := rng.Ints(16, 100)
	rng.Reset()
	b := rng.Ints(16, 100)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)

	t.Run("AllPushes", func(t *testing.T) {
		ops := rng.Ops(64, 1)
		require.Len(t, ops, 64)
		for _, op := range ops {
			assert.Contains(t, []OpKind{OpPushBack, OpPushFront}, op.Kind)
		}
	})

	t.Run("AllPops", func(t *testing.T) {
		ops := rng.Ops(64, 0)
		for _, op := range ops {
			assert.Contains(t, []OpKind{OpPopBack, OpPopFront}, op.Kind)
			assert.Zero(t, op.Value)
		}
	})

	assert.Equal(t, "pop_front", OpPopFront.String())
	assert.Equal(t, "unknown", OpKind(42).String())
}

func TestDeque(t *testing.T) {
	var d Deque[int]

	_, ok := d.PopBack()
	assert.False(t, ok)
	_, ok = d.PopFront()
	assert.False(t, ok)

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	assert.Equal(t, []int{1, 2, 3}, d.Values())

	d.InsertAt(1, 9)
	assert.Equal(t, []int{1, 9, 2, 3}, d.Values())
	assert.Equal(t, 9, d.RemoveAt(1))

	v, ok := d.Get(2)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = d.Get(3)
	assert.False(t, ok)

	v, _ = d.PopBack()
	assert.Equal(t, 3, v)
	v, _ = d.PopFront()
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, d.Len())
}
