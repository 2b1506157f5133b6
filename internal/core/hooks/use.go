package hooks

import "github.com/zeusync/modkit/internal/core/item"

func (d *Dispatcher) CanUseItem(it *item.Item, p *item.Player) bool {
	return d.allow(HookCanUseItem, it,
		func(b item.Behavior) bool { return b.CanUseItem(p) },
		func(g item.Global) bool { return g.CanUseItem(it, p) },
	)
}

func (d *Dispatcher) UseStyle(it *item.Item, p *item.Player) {
	d.broadcast(HookUseStyle, it,
		func(b item.Behavior) { b.UseStyle(p) },
		func(g item.Global) { g.UseStyle(it, p) },
	)
}

// HoldStyle only runs while the player is neither on a pulley nor mid-swing.
func (d *Dispatcher) HoldStyle(it *item.Item, p *item.Player) {
	if p.Pulley || p.ItemAnimation > 0 {
		return
	}
	d.broadcast(HookHoldStyle, it,
		func(b item.Behavior) { b.HoldStyle(p) },
		func(g item.Global) { g.HoldStyle(it, p) },
	)
}

func (d *Dispatcher) HoldItem(it *item.Item, p *item.Player) {
	d.broadcast(HookHoldItem, it,
		func(b item.Behavior) { b.HoldItem(p) },
		func(g item.Global) { g.HoldItem(it, p) },
	)
}

// ConsumeAmmo asks the weapon, then the ammo, then each global about both.
// Any refusal keeps the ammo.
func (d *Dispatcher) ConsumeAmmo(weapon, ammo *item.Item, p *item.Player) bool {
	d.expect(HookConsumeAmmo, AllMustAllow)
	globals := d.globals()

	if b := d.entity(HookConsumeAmmo, weapon); b != nil && !b.ConsumeAmmo(p) {
		return false
	}
	if b := d.entity(HookConsumeAmmo, ammo); b != nil && !b.ConsumeAmmo(p) {
		return false
	}
	for _, g := range globals {
		if !g.ConsumeAmmo(weapon, p) || !g.ConsumeAmmo(ammo, p) {
			return false
		}
	}
	return true
}

// Shoot lets globals, then the weapon, rewrite the shot. Returning false from
// any participant cancels the host's projectile.
func (d *Dispatcher) Shoot(it *item.Item, p *item.Player, shot *item.Shot) bool {
	return d.allow(HookShoot, it,
		func(b item.Behavior) bool { return b.Shoot(p, shot) },
		func(g item.Global) bool { return g.Shoot(it, p, shot) },
	)
}

// UseItem sets the player's item time when any participant used the item.
func (d *Dispatcher) UseItem(it *item.Item, p *item.Player) {
	used := d.broadcastAny(HookUseItem, it,
		func(b item.Behavior) bool { return b.UseItem(p) },
		func(g item.Global) bool { return g.UseItem(it, p) },
	)
	if used {
		p.ItemTime = it.UseTime
	}
}

// ConsumeItem reports whether a consumable should be used up. Every
// participant runs even after a refusal.
func (d *Dispatcher) ConsumeItem(it *item.Item, p *item.Player) bool {
	return d.allow(HookConsumeItem, it,
		func(b item.Behavior) bool { return b.ConsumeItem(p) },
		func(g item.Global) bool { return g.ConsumeItem(it, p) },
	)
}

// UseItemFrame reports whether a participant set the player's use frame,
// in which case the host skips its own.
func (d *Dispatcher) UseItemFrame(it *item.Item, p *item.Player) bool {
	return d.firstTrue(HookUseItemFrame, it,
		func(b item.Behavior) bool { return b.UseItemFrame(p) },
		func(g item.Global) bool { return g.UseItemFrame(it, p) },
	)
}

func (d *Dispatcher) HoldItemFrame(it *item.Item, p *item.Player) bool {
	return d.firstTrue(HookHoldItemFrame, it,
		func(b item.Behavior) bool { return b.HoldItemFrame(p) },
		func(g item.Global) bool { return g.HoldItemFrame(it, p) },
	)
}

// CanRightClick reports whether a right-click on it in an inventory slot
// should open it. The answer is gated on the mouse button being down.
func (d *Dispatcher) CanRightClick(it *item.Item) bool {
	wants := d.firstTrue(HookCanRightClick, it,
		func(b item.Behavior) bool { return b.CanRightClick() },
		func(g item.Global) bool { return g.CanRightClick(it) },
	)
	return wants && d.host.MouseRight()
}

// RightClick opens it on mouse release: participants run, one item is taken
// from the stack, and an emptied slot becomes None.
func (d *Dispatcher) RightClick(it *item.Item, p *item.Player) {
	if !d.host.MouseRightRelease() {
		return
	}
	d.broadcast(HookRightClick, it,
		func(b item.Behavior) { b.RightClick(p) },
		func(g item.Global) { g.RightClick(it, p) },
	)

	it.Stack--
	if it.Stack == 0 {
		d.SetDefaults(it, item.None)
	}
	d.host.PlaySound(SoundGrab)
	d.host.SetStackSplit(StackSplitDelay)
	d.host.ReleaseMouseRight()
	d.host.FindRecipes()
}
