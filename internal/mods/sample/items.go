package sample

import (
	"github.com/zeusync/modkit/internal/core/item"
)

// ProjectileStar is the host projectile StarWand fires.
const ProjectileStar = 12

const (
	useStyleSwing = 1
	useStyleHold  = 4
	useStyleDrink = 2
)

type CopperBlade struct {
	item.Base
}

func (b *CopperBlade) SetDefaults() {
	it := b.Item()
	it.Damage = 9
	it.Melee = true
	it.Knockback = 5
	it.UseTime, it.UseAnimation = 20, 20
	it.UseStyle = useStyleSwing
	it.Width, it.Height = 32, 32
}

func (b *CopperBlade) UseItemHitbox(_ *item.Player, hitbox *item.Rectangle, _ *bool) {
	hitbox.Width += 8
}

// ModifyHitNPC pierces armored targets.
func (b *CopperBlade) ModifyHitNPC(_ *item.Player, target *item.NPC, damage *int, _ *float32, _ *bool) {
	if target.Defense > 10 {
		*damage += 2
	}
}

type StarWand struct {
	item.Base
}

func (w *StarWand) Animation() *item.Animation {
	return &item.Animation{FrameCount: 4, TicksPerFrame: 6}
}

func (w *StarWand) SetDefaults() {
	it := w.Item()
	it.Damage = 14
	it.Magic = true
	it.UseTime, it.UseAnimation = 25, 25
	it.UseStyle = useStyleHold
	it.Width, it.Height = 28, 30
}

func (w *StarWand) Shoot(_ *item.Player, shot *item.Shot) bool {
	shot.Projectile = ProjectileStar
	shot.SpeedX *= 1.5
	shot.SpeedY *= 1.5
	return true
}

type HealingFlask struct {
	item.Base
	stats *Stats
}

const flaskHeal = 50

func (f *HealingFlask) SetDefaults() {
	it := f.Item()
	it.MaxStack = 30
	it.Consumable = true
	it.UseTime, it.UseAnimation = 17, 17
	it.UseStyle = useStyleDrink
}

func (f *HealingFlask) CanUseItem(p *item.Player) bool {
	return p.StatLife < p.StatLifeMax
}

func (f *HealingFlask) UseItem(p *item.Player) bool {
	p.StatLife = min(p.StatLife+flaskHeal, p.StatLifeMax)
	f.stats.Heals.Add(1)
	return true
}

type TreasureBag struct {
	item.Base
	stats *Stats
}

func (b *TreasureBag) SetDefaults() {
	b.Item().MaxStack = 99
}

func (b *TreasureBag) CanRightClick() bool { return true }

func (b *TreasureBag) RightClick(*item.Player) {
	b.stats.BagsOpened.Add(1)
}

type FeatherWings struct {
	item.Base
}

func (w *FeatherWings) SetDefaults() {
	it := w.Item()
	it.WingSlot = 1
	it.Width, it.Height = 22, 20
}

func (w *FeatherWings) VerticalWingSpeeds(s *item.WingSpeeds) {
	s.AscentWhenFalling = 0.85
	s.AscentWhenRising = 0.15
	s.MaxCanAscendMultiplier = 1
	s.MaxAscentMultiplier = 3
	s.ConstantAscend = 0.135
}

func (w *FeatherWings) HorizontalWingSpeeds(speed, acceleration *float32) {
	*speed = 6.75
	*acceleration *= 2.5
}
