package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

const native item.ID = 100

// loaded builds an active registry with the given modules, each registering
// the listed item names in order.
func loaded(t *testing.T, modules ...[]string) *registry.Registry {
	t.Helper()
	reg := registry.New(ids.NewAllocator(native), log.NewNop(), nil)
	for _, entry := range modules {
		mod, err := reg.AddModule(entry[0], nil)
		require.NoError(t, err)
		for _, name := range entry[1:] {
			_, err = mod.AddItem(name, func() item.Behavior { return &plain{} })
			require.NoError(t, err)
		}
	}
	require.NoError(t, reg.Activate())
	return reg
}

type plain struct {
	item.Base
}

func idOf(t *testing.T, reg *registry.Registry, module, name string) item.ID {
	t.Helper()
	id, ok := reg.LookupByName(module, name)
	require.True(t, ok)
	return id
}

func TestNativeRoundTrip(t *testing.T) {
	reg := loaded(t)
	var buf bytes.Buffer

	require.NoError(t, NewEncoder(&buf, reg).WriteID(42))
	assert.Equal(t, []byte{42, 0, 0, 0}, buf.Bytes())

	id, err := NewDecoder(&buf, reg, nil).ReadID()
	require.NoError(t, err)
	assert.Equal(t, item.ID(42), id)
}

func TestExtensionLayout(t *testing.T) {
	reg := loaded(t, []string{"ExampleMod", "Sword"})
	var buf bytes.Buffer

	require.NoError(t, NewEncoder(&buf, reg).WriteID(idOf(t, reg, "ExampleMod", "Sword")))

	want := []byte{0xff, 0xff, 0xff, 0x7f, 10}
	want = append(want, "ExampleMod"...)
	want = append(want, 5)
	want = append(want, "Sword"...)
	assert.Equal(t, want, buf.Bytes())
}

func TestExtensionRoundTrip(t *testing.T) {
	reg := loaded(t, []string{"alpha", "Sword", "Shield"})
	sword := idOf(t, reg, "alpha", "Sword")
	shield := idOf(t, reg, "alpha", "Shield")

	var buf bytes.Buffer
	enc := NewEncoder(&buf, reg)
	require.NoError(t, enc.WriteID(shield))
	require.NoError(t, enc.WriteID(3))
	require.NoError(t, enc.WriteID(sword))

	dec := NewDecoder(&buf, reg, nil)
	for _, want := range []item.ID{shield, 3, sword} {
		got, err := dec.ReadID()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, dec.Degraded())
}

func TestSurvivesIDShift(t *testing.T) {
	before := loaded(t, []string{"alpha", "A1", "A2"}, []string{"beta", "Bow"})
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, before).WriteID(idOf(t, before, "beta", "Bow")))

	after := loaded(t, []string{"beta", "Bow"})
	id, err := NewDecoder(&buf, after, nil).ReadID()
	require.NoError(t, err)
	assert.Equal(t, idOf(t, after, "beta", "Bow"), id)
	assert.Equal(t, native, id)
}

func TestAbsentModuleDecodesToNone(t *testing.T) {
	saved := loaded(t, []string{"gone", "Relic"})
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, saved).WriteID(idOf(t, saved, "gone", "Relic")))

	core, logs := observer.New(zapcore.DebugLevel)
	dec := NewDecoder(&buf, loaded(t), log.FromZap(zap.New(core)))

	id, err := dec.ReadID()
	require.NoError(t, err)
	assert.Equal(t, item.None, id)
	assert.Equal(t, 1, dec.Degraded())

	entries := logs.FilterMessage("unresolved item reference").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gone", entries[0].ContextMap()["module"])
	assert.Equal(t, "module not loaded", entries[0].ContextMap()["reason"])
}

func TestAbsentItemDecodesToNone(t *testing.T) {
	saved := loaded(t, []string{"alpha", "Old"})
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, saved).WriteID(idOf(t, saved, "alpha", "Old")))

	dec := NewDecoder(&buf, loaded(t, []string{"alpha", "New"}), nil)
	id, err := dec.ReadID()
	require.NoError(t, err)
	assert.Equal(t, item.None, id)
	assert.Equal(t, 1, dec.Degraded())
}

func TestDecoderDoesNotOverRead(t *testing.T) {
	reg := loaded(t, []string{"alpha", "Sword"})
	var buf bytes.Buffer
	enc := NewEncoder(&buf, reg)
	require.NoError(t, enc.WriteID(idOf(t, reg, "alpha", "Sword")))
	buf.WriteString("tail")

	// Hide bytes.Buffer's ByteReader.
	r := struct{ io.Reader }{&buf}
	id, err := NewDecoder(r, reg, nil).ReadID()
	require.NoError(t, err)
	assert.Equal(t, idOf(t, reg, "alpha", "Sword"), id)
	assert.Equal(t, "tail", buf.String())
}

func TestWriteItem(t *testing.T) {
	reg := loaded(t)
	var buf bytes.Buffer
	enc := NewEncoder(&buf, reg)

	require.NoError(t, enc.WriteItem(nil))
	require.NoError(t, enc.WriteItem(&item.Item{Type: 9}))
	assert.Equal(t, []byte{0, 0, 0, 0, 9, 0, 0, 0}, buf.Bytes())
}

func TestErrors(t *testing.T) {
	reg := loaded(t, []string{"alpha", "Sword"})

	t.Run("unregistered extension id", func(t *testing.T) {
		err := NewEncoder(io.Discard, reg).WriteID(native + 7)
		assert.ErrorIs(t, err, ErrUnregisteredID)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewDecoder(bytes.NewReader(nil), reg, nil).ReadID()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("truncated name", func(t *testing.T) {
		data := []byte{0xff, 0xff, 0xff, 0x7f, 5, 'a', 'l'}
		_, err := NewDecoder(bytes.NewReader(data), reg, nil).ReadID()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("oversized name", func(t *testing.T) {
		data := []byte{0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0x03}
		_, err := NewDecoder(bytes.NewReader(data), reg, nil).ReadID()
		assert.ErrorIs(t, err, ErrStringTooLong)
	})
}

func TestHeader(t *testing.T) {
	reg := loaded(t, []string{"alpha", "Sword"})

	t.Run("same module set", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf, reg).WriteHeader())
		assert.Equal(t, headerSize, buf.Len())

		h, err := NewDecoder(&buf, reg, nil).ReadHeader()
		require.NoError(t, err)
		assert.Equal(t, Version, h.Version)
		assert.Equal(t, reg.Fingerprint(), h.Fingerprint)
		assert.False(t, h.Drift)
	})

	t.Run("drift", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf, reg).WriteHeader())

		core, logs := observer.New(zapcore.InfoLevel)
		other := loaded(t, []string{"beta", "Bow"})
		h, err := NewDecoder(&buf, other, log.FromZap(zap.New(core))).ReadHeader()
		require.NoError(t, err)
		assert.True(t, h.Drift)
		assert.Equal(t, 1, logs.FilterMessage("module set changed since save").Len())
	})

	t.Run("bad magic", func(t *testing.T) {
		data := make([]byte, headerSize)
		copy(data, "NOPE")
		_, err := NewDecoder(bytes.NewReader(data), reg, nil).ReadHeader()
		assert.ErrorIs(t, err, ErrBadHeader)
	})

	t.Run("future version", func(t *testing.T) {
		data := make([]byte, headerSize)
		copy(data, Magic[:])
		data[len(Magic)] = Version + 1
		_, err := NewDecoder(bytes.NewReader(data), reg, nil).ReadHeader()
		assert.ErrorIs(t, err, ErrBadHeader)
	})
}

func TestSlots(t *testing.T) {
	saved := loaded(t, []string{"alpha", "Potion"}, []string{"beta", "Arrow"})
	potion := item.New()
	potion.Type, potion.Stack = idOf(t, saved, "alpha", "Potion"), 7
	arrow := item.New()
	arrow.Type, arrow.Stack = idOf(t, saved, "beta", "Arrow"), 250
	wood := item.New()
	wood.Type, wood.Stack = 9, 99

	var buf bytes.Buffer
	enc := NewEncoder(&buf, saved)
	for _, it := range []*item.Item{potion, item.New(), arrow, wood, nil} {
		require.NoError(t, enc.WriteSlot(it))
	}

	current := loaded(t, []string{"beta", "Arrow"})
	dec := NewDecoder(&buf, current, nil)
	var got []Slot
	for range 5 {
		s, err := dec.ReadSlot()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []Slot{
		{},
		{},
		{ID: idOf(t, current, "beta", "Arrow"), Stack: 250},
		{ID: 9, Stack: 99},
		{},
	}, got)

	_, err := dec.ReadSlot()
	assert.ErrorIs(t, err, io.EOF)
}
