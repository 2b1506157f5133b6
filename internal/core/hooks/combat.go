package hooks

import "github.com/zeusync/modkit/internal/core/item"

func (d *Dispatcher) UseItemHitbox(it *item.Item, p *item.Player, hitbox *item.Rectangle, noHitbox *bool) {
	d.fold(HookUseItemHitbox, it,
		func(b item.Behavior) { b.UseItemHitbox(p, hitbox, noHitbox) },
		func(g item.Global) { g.UseItemHitbox(it, p, hitbox, noHitbox) },
	)
}

func (d *Dispatcher) MeleeEffects(it *item.Item, p *item.Player, hitbox item.Rectangle) {
	d.broadcast(HookMeleeEffects, it,
		func(b item.Behavior) { b.MeleeEffects(p, hitbox) },
		func(g item.Global) { g.MeleeEffects(it, p, hitbox) },
	)
}

// ModifyHitNPC runs between crit determination and damage application.
func (d *Dispatcher) ModifyHitNPC(it *item.Item, p *item.Player, target *item.NPC, damage *int, knockback *float32, crit *bool) {
	d.fold(HookModifyHitNPC, it,
		func(b item.Behavior) { b.ModifyHitNPC(p, target, damage, knockback, crit) },
		func(g item.Global) { g.ModifyHitNPC(it, p, target, damage, knockback, crit) },
	)
}

func (d *Dispatcher) OnHitNPC(it *item.Item, p *item.Player, target *item.NPC, damage int, knockback float32, crit bool) {
	d.broadcast(HookOnHitNPC, it,
		func(b item.Behavior) { b.OnHitNPC(p, target, damage, knockback, crit) },
		func(g item.Global) { g.OnHitNPC(it, p, target, damage, knockback, crit) },
	)
}

func (d *Dispatcher) ModifyHitPvp(it *item.Item, p *item.Player, target *item.Player, damage *int, crit *bool) {
	d.fold(HookModifyHitPvp, it,
		func(b item.Behavior) { b.ModifyHitPvp(p, target, damage, crit) },
		func(g item.Global) { g.ModifyHitPvp(it, p, target, damage, crit) },
	)
}

func (d *Dispatcher) OnHitPvp(it *item.Item, p *item.Player, target *item.Player, damage int, crit bool) {
	d.broadcast(HookOnHitPvp, it,
		func(b item.Behavior) { b.OnHitPvp(p, target, damage, crit) },
		func(g item.Global) { g.OnHitPvp(it, p, target, damage, crit) },
	)
}
