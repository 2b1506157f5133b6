package config

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclFile mirrors Config for HCL sources:
//
//	native_items = 3601
//	log_level    = "debug"
//
//	module "ExampleMod" {}
//	module "Tweaks" {
//	  enabled = false
//	}
type hclFile struct {
	NativeItems *int64      `hcl:"native_items,optional"`
	LogLevel    *string     `hcl:"log_level,optional"`
	SaveFile    *string     `hcl:"save_file,optional"`
	Modules     []hclModule `hcl:"module,block"`
}

type hclModule struct {
	Name    string `hcl:"name,label"`
	Enabled *bool  `hcl:"enabled,optional"`
}

// LoadHCL decodes an HCL config on top of Default. filename is only used in
// diagnostics.
func LoadHCL(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", filename, diags)
	}

	var raw hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", filename, diags)
	}

	c := Default()
	if raw.NativeItems != nil {
		n := *raw.NativeItems
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidNative, n)
		}
		c.NativeItems = int32(n)
	}
	if raw.LogLevel != nil {
		c.LogLevel = *raw.LogLevel
	}
	if raw.SaveFile != nil {
		c.SaveFile = *raw.SaveFile
	}
	for _, m := range raw.Modules {
		c.Modules = append(c.Modules, ModuleConfig{Name: m.Name, Enabled: m.Enabled})
	}
	return c.finish()
}
