// Package config loads the modhost configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
)

var (
	ErrInvalidNative   = errors.New("config: native_items must be positive and below the extension id limit")
	ErrDuplicateModule = errors.New("config: module listed twice")
	ErrEmptyModuleName = errors.New("config: module name is empty")
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	ErrInvalidSaveFile = errors.New("config: save file is empty")
)

type Config struct {
	// NativeItems is the size of the host's built-in item range.
	NativeItems int32          `json:"native_items" yaml:"native_items"`
	LogLevel    string         `json:"log_level" yaml:"log_level"`
	SaveFile    string         `json:"save_file,omitempty" yaml:"save_file,omitempty"`
	Modules     []ModuleConfig `json:"modules" yaml:"modules"`
}

// ModuleConfig selects a module by name. Modules load in list order, which
// is also the order their globals run in.
type ModuleConfig struct {
	Name    string `json:"name" yaml:"name"`
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the module should load. Modules are enabled
// unless switched off explicitly.
func (m ModuleConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

func Default() *Config {
	return &Config{
		NativeItems: int32(ids.DefaultNative),
		LogLevel:    log.LevelInfo.String(),
		SaveFile:    "inventory.sav",
	}
}

// Load decodes YAML from r on top of Default, applies environment
// overrides and validates the result.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return c.finish()
}

// LoadFile reads a YAML file, or an HCL file when path ends in ".hcl".
func LoadFile(path string) (*Config, error) {
	if filepath.Ext(path) == ".hcl" {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return LoadHCL(src, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

func (c *Config) finish() (*Config, error) {
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// envOverrides lists the settings the environment may override. Unset
// variables leave the pointers nil.
type envOverrides struct {
	NativeItems *int32  `env:"MODHOST_NATIVE_ITEMS"`
	LogLevel    *string `env:"MODHOST_LOG_LEVEL"`
	SaveFile    *string `env:"MODHOST_SAVE_FILE"`
}

// ApplyEnv overrides c with MODHOST_* environment variables.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if o.NativeItems != nil {
		c.NativeItems = *o.NativeItems
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.SaveFile != nil {
		c.SaveFile = *o.SaveFile
	}
	return nil
}

func (c *Config) Validate() error {
	if c.NativeItems <= 0 || item.ID(c.NativeItems) >= ids.Limit {
		return fmt.Errorf("%w: %d", ErrInvalidNative, c.NativeItems)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.SaveFile == "" {
		return ErrInvalidSaveFile
	}
	seen := make(map[string]struct{}, len(c.Modules))
	for i, m := range c.Modules {
		if m.Name == "" {
			return fmt.Errorf("%w: modules[%d]", ErrEmptyModuleName, i)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return lvl
}

// EnabledModules lists the names of enabled modules in load order.
func (c *Config) EnabledModules() []string {
	out := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		if m.IsEnabled() {
			out = append(out, m.Name)
		}
	}
	return out
}
