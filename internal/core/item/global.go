package item

// Global is a module-wide behavior consulted for every item, whatever its
// kind. Each module contributes at most one. Implementations embed GlobalBase.
type Global interface {
	Mod() Owner

	SetDefaults(it *Item)
	CanUseItem(it *Item, p *Player) bool
	UseStyle(it *Item, p *Player)
	HoldStyle(it *Item, p *Player)
	HoldItem(it *Item, p *Player)
	ConsumeAmmo(it *Item, p *Player) bool
	Shoot(it *Item, p *Player, shot *Shot) bool
	UseItemHitbox(it *Item, p *Player, hitbox *Rectangle, noHitbox *bool)
	MeleeEffects(it *Item, p *Player, hitbox Rectangle)
	ModifyHitNPC(it *Item, p *Player, target *NPC, damage *int, knockback *float32, crit *bool)
	OnHitNPC(it *Item, p *Player, target *NPC, damage int, knockback float32, crit bool)
	ModifyHitPvp(it *Item, p *Player, target *Player, damage *int, crit *bool)
	OnHitPvp(it *Item, p *Player, target *Player, damage int, crit bool)
	UseItem(it *Item, p *Player) bool
	ConsumeItem(it *Item, p *Player) bool
	UseItemFrame(it *Item, p *Player) bool
	HoldItemFrame(it *Item, p *Player) bool
	UpdateInventory(it *Item, p *Player)
	UpdateEquip(it *Item, p *Player)
	UpdateAccessory(it *Item, p *Player)
	// IsArmorSet names the set formed by the three pieces, or "" for none.
	IsArmorSet(head, body, legs *Item) string
	UpdateArmorSet(p *Player, set string)
	CanRightClick(it *Item) bool
	RightClick(it *Item, p *Player)
	DrawHair(it *Item, drawHair, drawAltHair *bool)
	DrawHead(it *Item) bool
	VerticalWingSpeeds(it *Item, w *WingSpeeds)
	HorizontalWingSpeeds(it *Item, speed, acceleration *float32)
	Update(it *Item, gravity, maxFallSpeed *float32)
	GetAlpha(it *Item, lightColor Color) (Color, bool)
	PreDrawInWorld(it *Item, sb SpriteBatch, lightColor, alphaColor Color, rotation, scale *float32) bool
	PostDrawInWorld(it *Item, sb SpriteBatch, lightColor, alphaColor Color, rotation, scale float32)

	globalBase() *GlobalBase
}

type GlobalBase struct {
	mod Owner
}

func (g *GlobalBase) globalBase() *GlobalBase { return g }

func (g *GlobalBase) Mod() Owner { return g.mod }

func (g *GlobalBase) SetDefaults(*Item)                                        {}
func (g *GlobalBase) CanUseItem(*Item, *Player) bool                           { return true }
func (g *GlobalBase) UseStyle(*Item, *Player)                                  {}
func (g *GlobalBase) HoldStyle(*Item, *Player)                                 {}
func (g *GlobalBase) HoldItem(*Item, *Player)                                  {}
func (g *GlobalBase) ConsumeAmmo(*Item, *Player) bool                          { return true }
func (g *GlobalBase) Shoot(*Item, *Player, *Shot) bool                         { return true }
func (g *GlobalBase) UseItemHitbox(*Item, *Player, *Rectangle, *bool)          {}
func (g *GlobalBase) MeleeEffects(*Item, *Player, Rectangle)                   {}
func (g *GlobalBase) ModifyHitNPC(*Item, *Player, *NPC, *int, *float32, *bool) {}
func (g *GlobalBase) OnHitNPC(*Item, *Player, *NPC, int, float32, bool)        {}
func (g *GlobalBase) ModifyHitPvp(*Item, *Player, *Player, *int, *bool)        {}
func (g *GlobalBase) OnHitPvp(*Item, *Player, *Player, int, bool)              {}
func (g *GlobalBase) UseItem(*Item, *Player) bool                              { return false }
func (g *GlobalBase) ConsumeItem(*Item, *Player) bool                          { return true }
func (g *GlobalBase) UseItemFrame(*Item, *Player) bool                         { return false }
func (g *GlobalBase) HoldItemFrame(*Item, *Player) bool                        { return false }
func (g *GlobalBase) UpdateInventory(*Item, *Player)                           {}
func (g *GlobalBase) UpdateEquip(*Item, *Player)                               {}
func (g *GlobalBase) UpdateAccessory(*Item, *Player)                           {}
func (g *GlobalBase) IsArmorSet(_, _, _ *Item) string                          { return "" }
func (g *GlobalBase) UpdateArmorSet(*Player, string)                           {}
func (g *GlobalBase) CanRightClick(*Item) bool                                 { return false }
func (g *GlobalBase) RightClick(*Item, *Player)                                {}
func (g *GlobalBase) DrawHair(*Item, *bool, *bool)                             {}
func (g *GlobalBase) DrawHead(*Item) bool                                      { return true }
func (g *GlobalBase) VerticalWingSpeeds(*Item, *WingSpeeds)                    {}
func (g *GlobalBase) HorizontalWingSpeeds(*Item, *float32, *float32)           {}
func (g *GlobalBase) Update(*Item, *float32, *float32)                         {}
func (g *GlobalBase) GetAlpha(*Item, Color) (Color, bool)                      { return Color{}, false }
func (g *GlobalBase) PreDrawInWorld(*Item, SpriteBatch, Color, Color, *float32, *float32) bool {
	return true
}
func (g *GlobalBase) PostDrawInWorld(*Item, SpriteBatch, Color, Color, float32, float32) {}

// AttachGlobal points g back at the module that owns it.
func AttachGlobal(g Global, mod Owner) {
	g.globalBase().mod = mod
}
