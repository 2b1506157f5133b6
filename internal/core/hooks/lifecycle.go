package hooks

import (
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
)

// SetDefaults turns it into a fresh item of kind id: state is reset, native
// stats come from the host, extension kinds get a newly bound behavior, then
// every participant applies its defaults. An id with no registered kind
// degrades to item.None.
func (d *Dispatcher) SetDefaults(it *item.Item, id item.ID) {
	d.globals()

	it.Reset()
	it.Type = id
	if d.reg.IsExtension(id) {
		if _, err := d.binder.Setup(it); err != nil {
			d.log.Warn("unbindable item kind, using none", log.Int32("id", int32(id)), log.Error(err))
			it.Type = item.None
		} else {
			desc, _ := d.reg.Lookup(id)
			it.Name = desc.Name
			it.Stack, it.MaxStack = 1, 1
		}
	}
	if it.Behavior() == nil {
		d.host.NativeDefaults(it)
	}

	d.broadcast(HookSetDefaults, it,
		func(b item.Behavior) { b.SetDefaults() },
		func(g item.Global) { g.SetDefaults(it) },
	)
}

// Copy duplicates it for the simulation, giving extension copies their own
// behavior.
func (d *Dispatcher) Copy(it *item.Item) (*item.Item, error) {
	return d.binder.Clone(it)
}

// Update runs before the host applies item physics.
func (d *Dispatcher) Update(it *item.Item, gravity, maxFallSpeed *float32) {
	d.fold(HookUpdate, it,
		func(b item.Behavior) { b.Update(gravity, maxFallSpeed) },
		func(g item.Global) { g.Update(it, gravity, maxFallSpeed) },
	)
}

// AnimateItem advances the frame counters of an animated extension item and
// returns the frame to draw. Items without an animation report false.
func (d *Dispatcher) AnimateItem(it *item.Item) (int, bool) {
	desc, ok := d.reg.Lookup(it.Type)
	if !ok || desc.Animation == nil {
		return 0, false
	}
	anim := desc.Animation

	it.FrameCounter++
	if it.FrameCounter >= anim.TicksPerFrame {
		it.FrameCounter = 0
		it.Frame++
	}
	if it.Frame >= anim.FrameCount {
		it.Frame = 0
	}
	return it.Frame, true
}
