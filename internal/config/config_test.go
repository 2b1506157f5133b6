package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/observability/log"
)

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(`
native_items: 1000
log_level: debug
modules:
  - name: sample
  - name: extras
    enabled: false
  - name: tweaks
    enabled: true
`))
	require.NoError(t, err)
	assert.Equal(t, int32(1000), c.NativeItems)
	assert.Equal(t, log.LevelDebug, c.Level())
	assert.Equal(t, "inventory.sav", c.SaveFile)
	assert.Equal(t, []string{"sample", "tweaks"}, c.EnabledModules())
}

func TestLoad_EmptyIsDefault(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, int32(ids.DefaultNative), c.NativeItems)
	assert.Empty(t, c.EnabledModules())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"negative native", "native_items: -1", ErrInvalidNative},
		{"native at id limit", "native_items: 2147483647", ErrInvalidNative},
		{"bad level", "log_level: loud", ErrInvalidLogLevel},
		{"empty save", `save_file: ""`, ErrInvalidSaveFile},
		{"unnamed module", "modules: [{enabled: true}]", ErrEmptyModuleName},
		{"duplicate module", "modules: [{name: a}, {name: a}]", ErrDuplicateModule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("natve_items: 5"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modhost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save_file: world.sav\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "world.sav", c.SaveFile)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MODHOST_LOG_LEVEL", "warn")
	t.Setenv("MODHOST_NATIVE_ITEMS", "64")

	c, err := Load(strings.NewReader("log_level: debug\nsave_file: a.sav\n"))
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, c.Level())
	assert.Equal(t, int32(64), c.NativeItems)
	assert.Equal(t, "a.sav", c.SaveFile)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("MODHOST_NATIVE_ITEMS", "many")

	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadHCL(t *testing.T) {
	c, err := LoadHCL([]byte(`
native_items = 1200
log_level    = "error"

module "ExampleMod" {}

module "Tweaks" {
  enabled = false
}
`), "modhost.hcl")
	require.NoError(t, err)
	assert.Equal(t, int32(1200), c.NativeItems)
	assert.Equal(t, log.LevelError, c.Level())
	assert.Equal(t, []string{"ExampleMod"}, c.EnabledModules())
	require.Len(t, c.Modules, 2)
	assert.False(t, c.Modules[1].IsEnabled())
}

func TestLoadHCL_Errors(t *testing.T) {
	_, err := LoadHCL([]byte(`native_items = `), "broken.hcl")
	assert.Error(t, err)

	_, err = LoadHCL([]byte(`colour = "red"`), "unknown.hcl")
	assert.Error(t, err)

	_, err = LoadHCL([]byte("module \"a\" {}\nmodule \"a\" {}\n"), "dup.hcl")
	assert.ErrorIs(t, err, ErrDuplicateModule)
}

func TestLoadHCL_NativeOutOfRange(t *testing.T) {
	for _, src := range []string{
		"native_items = 4294967297",
		"native_items = -4294967295",
		"native_items = 2147483647",
	} {
		c, err := LoadHCL([]byte(src), "range.hcl")
		assert.ErrorIs(t, err, ErrInvalidNative, src)
		assert.Nil(t, c, src)
	}
}

func TestLoadFile_HCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modhost.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`save_file = "w.sav"`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "w.sav", c.SaveFile)
}
