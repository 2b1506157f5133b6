// Package sample ships the content mods the demo host loads: ExampleMod,
// which adds weapons, consumables, wings and an armor set, and Tweaks, a
// global-only mod that adjusts every item.
package sample

import (
	"sync/atomic"

	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/modloader"
	"github.com/zeusync/modkit/internal/core/registry"
)

const (
	ExampleModName = "ExampleMod"
	TweaksName     = "Tweaks"
)

var (
	_ modloader.Mod      = (*ExampleMod)(nil)
	_ modloader.Unloader = (*ExampleMod)(nil)
	_ modloader.Mod      = (*Tweaks)(nil)
)

// Stats counts things the example items did during a load cycle.
type Stats struct {
	BagsOpened atomic.Int64
	Heals      atomic.Int64
}

type ExampleMod struct {
	stats *Stats
}

func NewExampleMod() *ExampleMod {
	return &ExampleMod{stats: &Stats{}}
}

func (m *ExampleMod) Name() string { return ExampleModName }

func (m *ExampleMod) Stats() *Stats { return m.stats }

func (m *ExampleMod) Global() item.Global {
	return &ExampleGlobal{}
}

func (m *ExampleMod) Load(mod *registry.Module) error {
	kinds := []struct {
		name string
		new  registry.Factory
	}{
		{"CopperBlade", func() item.Behavior { return &CopperBlade{} }},
		{"StarWand", func() item.Behavior { return &StarWand{} }},
		{"HealingFlask", func() item.Behavior { return &HealingFlask{stats: m.stats} }},
		{"TreasureBag", func() item.Behavior { return &TreasureBag{stats: m.stats} }},
		{"FeatherWings", func() item.Behavior { return &FeatherWings{} }},
		{"IronHelmet", func() item.Behavior { return &IronHelmet{} }},
		{"IronMail", func() item.Behavior { return &IronMail{} }},
		{"IronGreaves", func() item.Behavior { return &IronGreaves{} }},
	}
	for _, k := range kinds {
		if _, err := mod.AddItem(k.name, k.new); err != nil {
			return err
		}
	}
	return nil
}

// Unload resets the counters so a reload starts clean.
func (m *ExampleMod) Unload() {
	m.stats.BagsOpened.Store(0)
	m.stats.Heals.Store(0)
}

// Tweaks registers no items, only a global.
type Tweaks struct{}

func NewTweaks() *Tweaks { return &Tweaks{} }

func (Tweaks) Name() string { return TweaksName }

func (Tweaks) Global() item.Global { return &TweaksGlobal{} }

func (Tweaks) Load(*registry.Module) error { return nil }

// Mods returns every sample mod, ready for a modloader.Catalog.
func Mods() []modloader.Mod {
	return []modloader.Mod{NewExampleMod(), NewTweaks()}
}
