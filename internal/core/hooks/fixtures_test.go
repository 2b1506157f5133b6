package hooks

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/modkit/internal/core/binding"
	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

const native item.ID = 50

// answers scripts what a participant returns and how it mutates parameters.
type answers struct {
	allow     bool
	frame     bool
	use       bool
	alpha     *item.Color
	damageMul int
	damageAdd int
	armorSet  string
	rotate    float32
}

func allowAll() answers { return answers{allow: true} }

type recorder struct {
	calls []string
}

func (r *recorder) add(who string, h Hook) {
	r.calls = append(r.calls, fmt.Sprintf("%s:%s", who, h))
}

type scripted struct {
	item.Base
	rec *recorder
	a   answers
}

func (s *scripted) note(h Hook) { s.rec.add("E", h) }

func (s *scripted) SetDefaults() {
	s.note(HookSetDefaults)
	s.Item().UseTime = 17
}
func (s *scripted) CanUseItem(*item.Player) bool   { s.note(HookCanUseItem); return s.a.allow }
func (s *scripted) HoldStyle(*item.Player)         { s.note(HookHoldStyle) }
func (s *scripted) ConsumeAmmo(*item.Player) bool  { s.note(HookConsumeAmmo); return s.a.allow }
func (s *scripted) UseItem(*item.Player) bool      { s.note(HookUseItem); return s.a.use }
func (s *scripted) ConsumeItem(*item.Player) bool  { s.note(HookConsumeItem); return s.a.allow }
func (s *scripted) UseItemFrame(*item.Player) bool { s.note(HookUseItemFrame); return s.a.frame }
func (s *scripted) CanRightClick() bool            { s.note(HookCanRightClick); return s.a.frame }
func (s *scripted) RightClick(*item.Player)        { s.note(HookRightClick) }
func (s *scripted) DrawHead() bool                 { s.note(HookDrawHead); return s.a.allow }
func (s *scripted) IsArmorSet(_, _, _ *item.Item) bool {
	return s.a.armorSet != ""
}
func (s *scripted) UpdateArmorSet(*item.Player) { s.note(HookUpdateArmorSet) }
func (s *scripted) Shoot(_ *item.Player, shot *item.Shot) bool {
	s.note(HookShoot)
	if s.a.damageMul != 0 {
		shot.Damage *= s.a.damageMul
	}
	return s.a.allow
}
func (s *scripted) ModifyHitNPC(_ *item.Player, _ *item.NPC, damage *int, _ *float32, crit *bool) {
	s.note(HookModifyHitNPC)
	if s.a.damageMul != 0 {
		*damage *= s.a.damageMul
	}
	*crit = true
}
func (s *scripted) HorizontalWingSpeeds(speed, acceleration *float32) {
	s.note(HookHorizontalWingSpeeds)
	*speed *= 2
	*acceleration += 1
}
func (s *scripted) GetAlpha(item.Color) (item.Color, bool) {
	s.note(HookGetAlpha)
	if s.a.alpha == nil {
		return item.Color{}, false
	}
	return *s.a.alpha, true
}
func (s *scripted) PreDrawInWorld(_ item.SpriteBatch, _, _ item.Color, rotation, _ *float32) bool {
	s.note(HookPreDrawInWorld)
	*rotation += s.a.rotate
	return s.a.allow
}

type scriptedGlobal struct {
	item.GlobalBase
	who string
	rec *recorder
	a   answers
}

func (g *scriptedGlobal) note(h Hook) { g.rec.add(g.who, h) }

func (g *scriptedGlobal) SetDefaults(*item.Item) { g.note(HookSetDefaults) }
func (g *scriptedGlobal) CanUseItem(*item.Item, *item.Player) bool {
	g.note(HookCanUseItem)
	return g.a.allow
}
func (g *scriptedGlobal) HoldStyle(*item.Item, *item.Player) { g.note(HookHoldStyle) }
func (g *scriptedGlobal) ConsumeAmmo(it *item.Item, _ *item.Player) bool {
	g.note(HookConsumeAmmo)
	return g.a.allow
}
func (g *scriptedGlobal) UseItem(*item.Item, *item.Player) bool {
	g.note(HookUseItem)
	return g.a.use
}
func (g *scriptedGlobal) ConsumeItem(*item.Item, *item.Player) bool {
	g.note(HookConsumeItem)
	return g.a.allow
}
func (g *scriptedGlobal) UseItemFrame(*item.Item, *item.Player) bool {
	g.note(HookUseItemFrame)
	return g.a.frame
}
func (g *scriptedGlobal) CanRightClick(*item.Item) bool {
	g.note(HookCanRightClick)
	return g.a.frame
}
func (g *scriptedGlobal) RightClick(*item.Item, *item.Player) { g.note(HookRightClick) }
func (g *scriptedGlobal) DrawHead(*item.Item) bool {
	g.note(HookDrawHead)
	return g.a.allow
}
func (g *scriptedGlobal) IsArmorSet(_, _, _ *item.Item) string { return g.a.armorSet }
func (g *scriptedGlobal) UpdateArmorSet(_ *item.Player, set string) {
	g.rec.add(g.who+"["+set+"]", HookUpdateArmorSet)
}
func (g *scriptedGlobal) Shoot(_ *item.Item, _ *item.Player, shot *item.Shot) bool {
	g.note(HookShoot)
	shot.Damage += g.a.damageAdd
	return g.a.allow
}
func (g *scriptedGlobal) ModifyHitNPC(_ *item.Item, _ *item.Player, _ *item.NPC, damage *int, _ *float32, crit *bool) {
	g.note(HookModifyHitNPC)
	*damage += g.a.damageAdd
	if *crit {
		*damage++
	}
}
func (g *scriptedGlobal) HorizontalWingSpeeds(_ *item.Item, speed, _ *float32) {
	g.note(HookHorizontalWingSpeeds)
	*speed += 3
}
func (g *scriptedGlobal) GetAlpha(*item.Item, item.Color) (item.Color, bool) {
	g.note(HookGetAlpha)
	if g.a.alpha == nil {
		return item.Color{}, false
	}
	return *g.a.alpha, true
}
func (g *scriptedGlobal) PreDrawInWorld(_ *item.Item, _ item.SpriteBatch, _, _ item.Color, rotation, _ *float32) bool {
	g.note(HookPreDrawInWorld)
	*rotation += g.a.rotate
	return g.a.allow
}

type fakeHost struct {
	NopHost
	mouseRight   bool
	release      bool
	sounds       []int
	stackSplit   int
	recipeChecks int
	natives      []item.ID
}

func (h *fakeHost) NativeDefaults(it *item.Item) {
	h.natives = append(h.natives, it.Type)
	if it.Type != item.None {
		it.Stack, it.MaxStack = 1, 999
	}
}
func (h *fakeHost) MouseRight() bool        { return h.mouseRight }
func (h *fakeHost) MouseRightRelease() bool { return h.release }
func (h *fakeHost) ReleaseMouseRight()      { h.release = false }
func (h *fakeHost) SetStackSplit(n int)     { h.stackSplit = n }
func (h *fakeHost) PlaySound(s int)         { h.sounds = append(h.sounds, s) }
func (h *fakeHost) FindRecipes()            { h.recipeChecks++ }

type harness struct {
	t    *testing.T
	reg  *registry.Registry
	d    *Dispatcher
	host *fakeHost
	rec  *recorder
	kind item.ID
}

// newHarness registers one extension kind scripted by ent, plus one module
// per entry of globals, named G1, G2, ... in load order.
func newHarness(t *testing.T, ent answers, globals ...answers) *harness {
	t.Helper()
	h := &harness{t: t, host: &fakeHost{}, rec: &recorder{}}
	h.reg = registry.New(ids.NewAllocator(native), log.NewNop(), nil)

	mod, err := h.reg.AddModule("entity", nil)
	require.NoError(t, err)
	h.kind, err = mod.AddItem("Probe", func() item.Behavior {
		return &scripted{rec: h.rec, a: ent}
	})
	require.NoError(t, err)

	for i, a := range globals {
		who := fmt.Sprintf("G%d", i+1)
		_, err = h.reg.AddModule(who, &scriptedGlobal{who: who, rec: h.rec, a: a})
		require.NoError(t, err)
	}
	require.NoError(t, h.reg.Activate())

	h.d = New(h.reg, binding.New(h.reg), h.host, log.NewNop())
	return h
}

// spawn returns a fresh item of the scripted extension kind.
func (h *harness) spawn() *item.Item {
	it := item.New()
	h.d.SetDefaults(it, h.kind)
	h.rec.calls = nil
	return it
}

func (h *harness) native(id item.ID) *item.Item {
	it := item.New()
	h.d.SetDefaults(it, id)
	h.rec.calls = nil
	return it
}

func (h *harness) calls() []string {
	return h.rec.calls
}
