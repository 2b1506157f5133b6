package hooks

import "github.com/zeusync/modkit/internal/core/item"

func (d *Dispatcher) UpdateInventory(it *item.Item, p *item.Player) {
	d.broadcast(HookUpdateInventory, it,
		func(b item.Behavior) { b.UpdateInventory(p) },
		func(g item.Global) { g.UpdateInventory(it, p) },
	)
}

func (d *Dispatcher) UpdateEquip(it *item.Item, p *item.Player) {
	d.broadcast(HookUpdateEquip, it,
		func(b item.Behavior) { b.UpdateEquip(p) },
		func(g item.Global) { g.UpdateEquip(it, p) },
	)
}

func (d *Dispatcher) UpdateAccessory(it *item.Item, p *item.Player) {
	d.broadcast(HookUpdateAccessory, it,
		func(b item.Behavior) { b.UpdateAccessory(p) },
		func(g item.Global) { g.UpdateAccessory(it, p) },
	)
}

// UpdateArmorSet applies set bonuses. Each extension piece that recognizes
// the worn set applies its own bonus; each global names the set (if any) it
// recognizes and applies the bonus for that name.
func (d *Dispatcher) UpdateArmorSet(p *item.Player, head, body, legs *item.Item) {
	d.expect(HookUpdateArmorSet, Broadcast)
	globals := d.globals()

	for _, piece := range [...]*item.Item{head, body, legs} {
		if b := d.entity(HookUpdateArmorSet, piece); b != nil && b.IsArmorSet(head, body, legs) {
			b.UpdateArmorSet(p)
		}
	}
	for _, g := range globals {
		if set := g.IsArmorSet(head, body, legs); set != "" {
			g.UpdateArmorSet(p, set)
		}
	}
}

// DrawHair decides which hair layers show under the worn head item.
func (d *Dispatcher) DrawHair(p *item.Player, drawHair, drawAltHair *bool) {
	it := p.HeadItem()
	if it == nil {
		return
	}
	d.fold(HookDrawHair, it,
		func(b item.Behavior) { b.DrawHair(drawHair, drawAltHair) },
		func(g item.Global) { g.DrawHair(it, drawHair, drawAltHair) },
	)
}

// DrawHead reports whether the player's head should be drawn at all.
func (d *Dispatcher) DrawHead(p *item.Player) bool {
	it := p.HeadItem()
	if it == nil {
		return true
	}
	return d.allow(HookDrawHead, it,
		func(b item.Behavior) bool { return b.DrawHead() },
		func(g item.Global) bool { return g.DrawHead(it) },
	)
}

// VerticalWingSpeeds tunes flight for the player's equipped wings, if any.
func (d *Dispatcher) VerticalWingSpeeds(p *item.Player, w *item.WingSpeeds) {
	it := p.Wing()
	if it == nil {
		return
	}
	d.fold(HookVerticalWingSpeeds, it,
		func(b item.Behavior) { b.VerticalWingSpeeds(w) },
		func(g item.Global) { g.VerticalWingSpeeds(it, w) },
	)
}

// HorizontalWingSpeeds adjusts the player's run speed and acceleration while
// wings are equipped.
func (d *Dispatcher) HorizontalWingSpeeds(p *item.Player) {
	it := p.Wing()
	if it == nil {
		return
	}
	d.fold(HookHorizontalWingSpeeds, it,
		func(b item.Behavior) { b.HorizontalWingSpeeds(&p.AccRunSpeed, &p.RunAcceleration) },
		func(g item.Global) { g.HorizontalWingSpeeds(it, &p.AccRunSpeed, &p.RunAcceleration) },
	)
}
