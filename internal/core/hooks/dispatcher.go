// Package hooks fans host call-outs out to item behaviors.
//
// Every hook has exactly one entity participant for extension items (the
// item's bound behavior) and one participant per loaded module global, in
// module load order. Native items only see the globals. How the answers
// combine, and who goes first, is declared once per hook in the policy table.
package hooks

import (
	"fmt"

	"github.com/zeusync/modkit/internal/core/binding"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

type Dispatcher struct {
	reg    *registry.Registry
	binder *binding.Binder
	host   Host
	log    log.Log
}

func New(reg *registry.Registry, binder *binding.Binder, host Host, logger log.Log) *Dispatcher {
	if host == nil {
		host = NopHost{}
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Dispatcher{
		reg:    reg,
		binder: binder,
		host:   host,
		log:    logger.Named("hooks"),
	}
}

// globals returns the global extension set. Dispatching before the registry
// is active is a contract violation.
func (d *Dispatcher) globals() []item.Global {
	if err := d.reg.RequireActive(); err != nil {
		panic(err)
	}
	return d.reg.Globals()
}

// entity returns the bound behavior of an extension item, nil for native
// items, and panics if the binding is inconsistent.
func (d *Dispatcher) entity(h Hook, it *item.Item) item.Behavior {
	if it == nil || !d.reg.IsExtension(it.Type) {
		return nil
	}
	b := it.Behavior()
	desc, ok := d.reg.Lookup(it.Type)
	switch {
	case !ok:
		panic(&DispatchTypeMismatchError{Hook: h, ItemID: it.Type, Reason: "no kind registered"})
	case b == nil:
		panic(&DispatchTypeMismatchError{Hook: h, ItemID: it.Type, Reason: "no behavior bound"})
	case b.Type() != it.Type:
		panic(&DispatchTypeMismatchError{Hook: h, ItemID: it.Type, Reason: fmt.Sprintf("behavior built for kind %d", b.Type())})
	case b.Item() != it:
		panic(&DispatchTypeMismatchError{Hook: h, ItemID: it.Type, Reason: "behavior bound to another instance"})
	case b.Mod() != item.Owner(desc.Module):
		panic(&DispatchTypeMismatchError{Hook: h, ItemID: it.Type, Reason: "behavior owned by another module"})
	}
	return b
}

func (d *Dispatcher) expect(h Hook, p Policy) Spec {
	spec := table[h]
	if spec.Policy != p {
		panic(fmt.Sprintf("hooks: %s declared %s, dispatched as %s", h, spec.Policy, p))
	}
	return spec
}

// visit calls fn for each participant of h on it, in h's declared order.
// Exactly one of beh and glob is set per call; fn returns false to stop.
func (d *Dispatcher) visit(spec Spec, h Hook, it *item.Item, fn func(beh item.Behavior, glob item.Global) bool) {
	globals := d.globals()
	ent := d.entity(h, it)

	if spec.Order == GlobalsFirst {
		for _, g := range globals {
			if !fn(nil, g) {
				return
			}
		}
		if ent != nil {
			fn(ent, nil)
		}
		return
	}

	if ent != nil && !fn(ent, nil) {
		return
	}
	for _, g := range globals {
		if !fn(nil, g) {
			return
		}
	}
}

func (d *Dispatcher) allow(h Hook, it *item.Item, ent func(item.Behavior) bool, glob func(item.Global) bool) bool {
	spec := d.expect(h, AllMustAllow)
	allowed := true
	d.visit(spec, h, it, func(b item.Behavior, g item.Global) bool {
		var ok bool
		if b != nil {
			ok = ent(b)
		} else {
			ok = glob(g)
		}
		if !ok {
			allowed = false
			return !spec.ShortCircuit
		}
		return true
	})
	return allowed
}

func (d *Dispatcher) firstTrue(h Hook, it *item.Item, ent func(item.Behavior) bool, glob func(item.Global) bool) bool {
	spec := d.expect(h, FirstTrueWins)
	found := false
	d.visit(spec, h, it, func(b item.Behavior, g item.Global) bool {
		if b != nil {
			found = ent(b)
		} else {
			found = glob(g)
		}
		return !found
	})
	return found
}

func firstValue[T any](d *Dispatcher, h Hook, it *item.Item, ent func(item.Behavior) (T, bool), glob func(item.Global) (T, bool)) (T, bool) {
	spec := d.expect(h, FirstNonNullWins)
	var (
		out   T
		found bool
	)
	d.visit(spec, h, it, func(b item.Behavior, g item.Global) bool {
		if b != nil {
			out, found = ent(b)
		} else {
			out, found = glob(g)
		}
		return !found
	})
	if !found {
		var zero T
		return zero, false
	}
	return out, true
}

// fold runs every participant in order; each sees the parameters as left by
// the previous one.
func (d *Dispatcher) fold(h Hook, it *item.Item, ent func(item.Behavior), glob func(item.Global)) {
	d.run(d.expect(h, MutationFold), h, it, ent, glob)
}

func (d *Dispatcher) broadcast(h Hook, it *item.Item, ent func(item.Behavior), glob func(item.Global)) {
	d.run(d.expect(h, Broadcast), h, it, ent, glob)
}

// broadcastAny runs every participant and reports whether any returned true.
func (d *Dispatcher) broadcastAny(h Hook, it *item.Item, ent func(item.Behavior) bool, glob func(item.Global) bool) bool {
	spec := d.expect(h, Broadcast)
	hit := false
	d.visit(spec, h, it, func(b item.Behavior, g item.Global) bool {
		if b != nil {
			hit = ent(b) || hit
		} else {
			hit = glob(g) || hit
		}
		return true
	})
	return hit
}

func (d *Dispatcher) run(spec Spec, h Hook, it *item.Item, ent func(item.Behavior), glob func(item.Global)) {
	d.visit(spec, h, it, func(b item.Behavior, g item.Global) bool {
		if b != nil {
			ent(b)
		} else {
			glob(g)
		}
		return true
	})
}
