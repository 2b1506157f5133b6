package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/modkit/internal/core/item"
)

func TestReserveIsStrictlyIncreasing(t *testing.T) {
	a := NewAllocator(100)
	seen := make(map[item.ID]struct{})
	prev := item.ID(-1)
	for i := 0; i < 50; i++ {
		id, err := a.Reserve()
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup, "id %d handed out twice", id)
		seen[id] = struct{}{}
		prev = id
	}
	assert.Equal(t, item.ID(150), a.Next())
}

func TestResetRestoresNativeStart(t *testing.T) {
	a := NewAllocator(100)
	first, _ := a.Reserve()
	_, _ = a.Reserve()
	a.Reset()

	assert.Equal(t, item.ID(100), a.Next())
	again, err := a.Reserve()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestDefaultNative(t *testing.T) {
	a := NewAllocator(0)
	assert.Equal(t, DefaultNative, a.Native())
	assert.False(t, a.IsExtension(DefaultNative-1))
	assert.True(t, a.IsExtension(DefaultNative))
}

func TestReserveStopsBelowLimit(t *testing.T) {
	a := NewAllocator(Limit - 1)
	last, err := a.Reserve()
	require.NoError(t, err)
	assert.Equal(t, Limit-1, last)

	for range 2 {
		id, err := a.Reserve()
		assert.ErrorIs(t, err, ErrExhausted)
		assert.Equal(t, item.None, id)
	}
	assert.Equal(t, Limit, a.Next())
	assert.False(t, a.IsExtension(item.None))
}

func TestNativeAtLimitHasNoExtensions(t *testing.T) {
	a := NewAllocator(Limit)
	_, err := a.Reserve()
	assert.ErrorIs(t, err, ErrExhausted)
}
