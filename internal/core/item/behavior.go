package item

// Owner is the non-owning back-reference a behavior keeps to the module that
// registered it.
type Owner interface {
	Name() string
}

// Shot carries the mutable projectile parameters of a Shoot hook.
type Shot struct {
	Position   Vector2
	SpeedX     float32
	SpeedY     float32
	Projectile int
	Damage     int
	Knockback  float32
}

// WingSpeeds carries the mutable vertical flight parameters.
type WingSpeeds struct {
	AscentWhenFalling      float32
	AscentWhenRising       float32
	MaxCanAscendMultiplier float32
	MaxAscentMultiplier    float32
	ConstantAscend         float32
}

// Behavior is the per-instance object for an extension item kind. A fresh one
// is produced by the kind's factory for every item instance.
//
// Implementations embed Base, which supplies the back-references and the
// default answer for every hook; override only what the kind changes.
type Behavior interface {
	Item() *Item
	Mod() Owner
	Type() ID

	// Animation is consulted once, at registration.
	Animation() *Animation

	SetDefaults()
	CanUseItem(p *Player) bool
	UseStyle(p *Player)
	HoldStyle(p *Player)
	HoldItem(p *Player)
	ConsumeAmmo(p *Player) bool
	Shoot(p *Player, shot *Shot) bool
	UseItemHitbox(p *Player, hitbox *Rectangle, noHitbox *bool)
	MeleeEffects(p *Player, hitbox Rectangle)
	ModifyHitNPC(p *Player, target *NPC, damage *int, knockback *float32, crit *bool)
	OnHitNPC(p *Player, target *NPC, damage int, knockback float32, crit bool)
	ModifyHitPvp(p *Player, target *Player, damage *int, crit *bool)
	OnHitPvp(p *Player, target *Player, damage int, crit bool)
	UseItem(p *Player) bool
	ConsumeItem(p *Player) bool
	UseItemFrame(p *Player) bool
	HoldItemFrame(p *Player) bool
	UpdateInventory(p *Player)
	UpdateEquip(p *Player)
	UpdateAccessory(p *Player)
	IsArmorSet(head, body, legs *Item) bool
	UpdateArmorSet(p *Player)
	CanRightClick() bool
	RightClick(p *Player)
	DrawHair(drawHair, drawAltHair *bool)
	DrawHead() bool
	VerticalWingSpeeds(w *WingSpeeds)
	HorizontalWingSpeeds(speed, acceleration *float32)
	Update(gravity, maxFallSpeed *float32)
	GetAlpha(lightColor Color) (Color, bool)
	PreDrawInWorld(sb SpriteBatch, lightColor, alphaColor Color, rotation, scale *float32) bool
	PostDrawInWorld(sb SpriteBatch, lightColor, alphaColor Color, rotation, scale float32)

	base() *Base
}

// Base is embedded by every Behavior implementation.
type Base struct {
	item *Item
	mod  Owner
	typ  ID
}

func (b *Base) base() *Base { return b }

func (b *Base) Item() *Item { return b.item }
func (b *Base) Mod() Owner  { return b.mod }
func (b *Base) Type() ID    { return b.typ }

func (b *Base) Animation() *Animation { return nil }

func (b *Base) SetDefaults()                                                      {}
func (b *Base) CanUseItem(*Player) bool                                           { return true }
func (b *Base) UseStyle(*Player)                                                  {}
func (b *Base) HoldStyle(*Player)                                                 {}
func (b *Base) HoldItem(*Player)                                                  {}
func (b *Base) ConsumeAmmo(*Player) bool                                          { return true }
func (b *Base) Shoot(*Player, *Shot) bool                                         { return true }
func (b *Base) UseItemHitbox(*Player, *Rectangle, *bool)                          {}
func (b *Base) MeleeEffects(*Player, Rectangle)                                   {}
func (b *Base) ModifyHitNPC(*Player, *NPC, *int, *float32, *bool)                 {}
func (b *Base) OnHitNPC(*Player, *NPC, int, float32, bool)                        {}
func (b *Base) ModifyHitPvp(*Player, *Player, *int, *bool)                        {}
func (b *Base) OnHitPvp(*Player, *Player, int, bool)                              {}
func (b *Base) UseItem(*Player) bool                                              { return false }
func (b *Base) ConsumeItem(*Player) bool                                          { return true }
func (b *Base) UseItemFrame(*Player) bool                                         { return false }
func (b *Base) HoldItemFrame(*Player) bool                                        { return false }
func (b *Base) UpdateInventory(*Player)                                           {}
func (b *Base) UpdateEquip(*Player)                                               {}
func (b *Base) UpdateAccessory(*Player)                                           {}
func (b *Base) IsArmorSet(_, _, _ *Item) bool                                     { return false }
func (b *Base) UpdateArmorSet(*Player)                                            {}
func (b *Base) CanRightClick() bool                                               { return false }
func (b *Base) RightClick(*Player)                                                {}
func (b *Base) DrawHair(_, _ *bool)                                               {}
func (b *Base) DrawHead() bool                                                    { return true }
func (b *Base) VerticalWingSpeeds(*WingSpeeds)                                    {}
func (b *Base) HorizontalWingSpeeds(_, _ *float32)                                {}
func (b *Base) Update(_, _ *float32)                                              {}
func (b *Base) GetAlpha(Color) (Color, bool)                                      { return Color{}, false }
func (b *Base) PreDrawInWorld(SpriteBatch, Color, Color, *float32, *float32) bool { return true }
func (b *Base) PostDrawInWorld(SpriteBatch, Color, Color, float32, float32)       {}

// Attach makes b the behavior of it and points b back at it and mod. Any
// behavior previously bound to it is detached and must not be used again.
func Attach(it *Item, b Behavior, typ ID, mod Owner) {
	if prev := it.behavior; prev != nil && prev != b {
		*prev.base() = Base{}
	}
	*b.base() = Base{item: it, mod: mod, typ: typ}
	it.behavior = b
}

// Detach drops the behavior bound to it, if any.
func Detach(it *Item) {
	if prev := it.behavior; prev != nil {
		*prev.base() = Base{}
	}
	it.behavior = nil
}
