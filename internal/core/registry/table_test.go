package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableResizeKeepsPrefix(t *testing.T) {
	tbl := NewTable[string](2)
	assert.True(t, tbl.Set(1, "wood"))
	assert.False(t, tbl.Set(2, "stone"))
	assert.False(t, tbl.Set(-1, "void"))

	tbl.Resize(4)
	v, ok := tbl.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "wood", v)
	assert.True(t, tbl.Set(3, "stone"))

	tbl.Resize(1)
	_, ok = tbl.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
}
