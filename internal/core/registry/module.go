package registry

import (
	"github.com/zeusync/modkit/internal/core/item"
)

// Factory builds a fresh behavior object for one item instance. It stands in
// for the kind's prototype: every call must return a new, independent value.
type Factory func() item.Behavior

// Descriptor is the registered record of one extension item kind. Immutable
// after registration.
type Descriptor struct {
	ID        item.ID
	Module    *Module
	Name      string
	New       Factory
	Animation *item.Animation
}

// Module is a loaded extension module. It owns the kinds it registered and
// at most one global behavior.
type Module struct {
	name   string
	reg    *Registry
	global item.Global
	items  map[string]item.ID
	order  []item.ID
}

var _ item.Owner = (*Module)(nil)

func (m *Module) Name() string { return m.name }

// Global returns the module's global behavior, or nil.
func (m *Module) Global() item.Global { return m.global }

// AddItem registers a new item kind owned by m.
func (m *Module) AddItem(name string, factory Factory) (item.ID, error) {
	return m.reg.Register(m, name, factory)
}

// Resolve maps an item name registered by m to its id, or item.None.
func (m *Module) Resolve(name string) item.ID {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return m.items[name]
}

// Items lists m's ids in registration order.
func (m *Module) Items() []item.ID {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return append([]item.ID(nil), m.order...)
}
