package sample

import (
	"github.com/zeusync/modkit/internal/core/item"
)

// ExampleGlobal applies to every item, native or not.
type ExampleGlobal struct {
	item.GlobalBase
}

// ModifyHitNPC turns hits on badly wounded targets into crits.
func (g *ExampleGlobal) ModifyHitNPC(_ *item.Item, _ *item.Player, target *item.NPC, _ *int, _ *float32, crit *bool) {
	if target.LifeMax > 0 && target.Life*4 < target.LifeMax {
		*crit = true
	}
}

// GetAlpha draws magic items at full brightness.
func (g *ExampleGlobal) GetAlpha(it *item.Item, _ item.Color) (item.Color, bool) {
	if !it.Magic {
		return item.Color{}, false
	}
	return item.Color{R: 255, G: 255, B: 255, A: 255}, true
}

type TweaksGlobal struct {
	item.GlobalBase
}

const unarmoredSet = "unarmored"

// Shoot adds a tenth of the weapon's damage to magic projectiles.
func (g *TweaksGlobal) Shoot(it *item.Item, _ *item.Player, shot *item.Shot) bool {
	if it.Magic {
		shot.Damage += it.Damage / 10
	}
	return true
}

// DrawHair keeps the short hair style visible under hats.
func (g *TweaksGlobal) DrawHair(it *item.Item, _, drawAltHair *bool) {
	if it.HeadSlot >= 0 {
		*drawAltHair = true
	}
}

func (g *TweaksGlobal) IsArmorSet(head, body, legs *item.Item) string {
	if head.IsAir() && body.IsAir() && legs.IsAir() {
		return unarmoredSet
	}
	return ""
}

func (g *TweaksGlobal) UpdateArmorSet(p *item.Player, set string) {
	if set == unarmoredSet {
		p.RunAcceleration *= 1.1
	}
}
