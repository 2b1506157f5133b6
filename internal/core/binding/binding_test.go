package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

const native item.ID = 10

type counter struct {
	item.Base
	hits int
}

func setup(t *testing.T) (*Binder, *registry.Descriptor) {
	t.Helper()
	reg := registry.New(ids.NewAllocator(native), log.NewNop(), nil)
	mod, err := reg.AddModule("arcana", nil)
	require.NoError(t, err)
	id, err := mod.AddItem("Counter", func() item.Behavior { return &counter{} })
	require.NoError(t, err)
	desc, ok := reg.Lookup(id)
	require.True(t, ok)
	return New(reg), desc
}

func TestBindProducesDistinctObjects(t *testing.T) {
	b, desc := setup(t)
	first, second := item.New(), item.New()

	fb, err := b.Bind(first, desc)
	require.NoError(t, err)
	sb, err := b.Bind(second, desc)
	require.NoError(t, err)

	assert.NotSame(t, fb, sb)
	fb.(*counter).hits = 5
	assert.Zero(t, sb.(*counter).hits, "instances must not share state")

	assert.Same(t, first, fb.Item())
	assert.Same(t, desc.Module, fb.Mod())
	assert.Equal(t, desc.ID, fb.Type())
}

func TestRebindReplaces(t *testing.T) {
	b, desc := setup(t)
	it := item.New()

	old, _ := b.Bind(it, desc)
	fresh, _ := b.Bind(it, desc)

	assert.Same(t, fresh, it.Behavior())
	assert.Nil(t, old.Item())
}

func TestCloneNeverAliases(t *testing.T) {
	b, desc := setup(t)
	it := item.New()
	it.Type = desc.ID
	_, err := b.Setup(it)
	require.NoError(t, err)
	it.Stack = 4

	c, err := b.Clone(it)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Stack)
	require.NotNil(t, c.Behavior())
	assert.NotSame(t, it.Behavior(), c.Behavior())
	assert.Same(t, c, c.Behavior().Item())
	assert.Same(t, it, it.Behavior().Item())
}

func TestSetupNativeDetaches(t *testing.T) {
	b, desc := setup(t)
	it := item.New()
	it.Type = desc.ID
	_, _ = b.Setup(it)

	it.Type = 3
	beh, err := b.Setup(it)
	assert.NoError(t, err)
	assert.Nil(t, beh)
	assert.Nil(t, it.Behavior())
}

func TestSetupUnknownExtension(t *testing.T) {
	b, desc := setup(t)
	it := item.New()
	it.Type = desc.ID + 7

	_, err := b.Setup(it)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Nil(t, it.Behavior())
}
