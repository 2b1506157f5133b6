package hooks

import "github.com/zeusync/modkit/internal/core/item"

// GetAlpha asks globals first, then the item itself, for a color override.
// The first present answer wins; false means draw with the host's color.
func (d *Dispatcher) GetAlpha(it *item.Item, lightColor item.Color) (item.Color, bool) {
	return firstValue(d, HookGetAlpha, it,
		func(b item.Behavior) (item.Color, bool) { return b.GetAlpha(lightColor) },
		func(g item.Global) (item.Color, bool) { return g.GetAlpha(it, lightColor) },
	)
}

// PreDrawInWorld reports whether the host should draw it. Every participant
// runs, so all of them can adjust rotation and scale.
func (d *Dispatcher) PreDrawInWorld(it *item.Item, sb item.SpriteBatch, lightColor, alphaColor item.Color, rotation, scale *float32) bool {
	return d.allow(HookPreDrawInWorld, it,
		func(b item.Behavior) bool { return b.PreDrawInWorld(sb, lightColor, alphaColor, rotation, scale) },
		func(g item.Global) bool { return g.PreDrawInWorld(it, sb, lightColor, alphaColor, rotation, scale) },
	)
}

// PostDrawInWorld must be called on every exit from the host's item draw,
// including when PreDrawInWorld vetoed it.
func (d *Dispatcher) PostDrawInWorld(it *item.Item, sb item.SpriteBatch, lightColor, alphaColor item.Color, rotation, scale float32) {
	d.broadcast(HookPostDrawInWorld, it,
		func(b item.Behavior) { b.PostDrawInWorld(sb, lightColor, alphaColor, rotation, scale) },
		func(g item.Global) { g.PostDrawInWorld(it, sb, lightColor, alphaColor, rotation, scale) },
	)
}
