// Package registry maps extension item ids to the modules and behavior
// factories that define them.
//
// A Registry moves through two phases. While building, modules are added and
// item kinds registered; nothing may dispatch. Activate sizes every id-indexed
// table once, to the final id count, and opens dispatch. UnloadAll returns to
// building with an empty id space.
package registry

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/modkit/internal/core/events/bus"
	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
)

type Phase uint8

const (
	PhaseBuilding Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "building"
}

// Resizer is told the id-space size each time it changes.
type Resizer func(size int) error

type Registry struct {
	mu     sync.RWMutex
	log    log.Log
	events bus.EventBus
	alloc  *ids.Allocator

	phase   Phase
	modules []*Module
	byName  map[string]*Module
	// types[id-native] for every reserved id; nil marks a hole left by an
	// aborted module or a reservation made outside Register.
	types   []*Descriptor
	globals []item.Global

	names    *Table[string]
	resizers []Resizer
}

func New(alloc *ids.Allocator, logger log.Log, events bus.EventBus) *Registry {
	if logger == nil {
		logger = log.NewNop()
	}
	if events == nil {
		events = bus.New()
	}
	r := &Registry{
		log:    logger.Named("registry"),
		events: events,
		alloc:  alloc,
		byName: make(map[string]*Module),
		names:  NewTable[string](int(alloc.Native())),
	}
	Track(r, r.names)
	return r
}

func (r *Registry) Phase() Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

// Native is the size of the host's built-in id range.
func (r *Registry) Native() item.ID { return r.alloc.Native() }

// IsExtension reports whether id lies above the native range.
func (r *Registry) IsExtension(id item.ID) bool { return r.alloc.IsExtension(id) }

// Events exposes the lifecycle bus.
func (r *Registry) Events() bus.EventBus { return r.events }

// Names is the id-indexed display name table. Extension names are filled in
// on activation; the host owns the native entries.
func (r *Registry) Names() *Table[string] { return r.names }

// Reserve hands out an id without registering a kind for it. Lookup reports
// such ids as unregistered.
func (r *Registry) Reserve() (item.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseBuilding {
		return item.None, ErrRegistryActive
	}
	return r.alloc.Reserve()
}

// AddModule starts loading a module. global may be nil.
func (r *Registry) AddModule(name string, global item.Global) (*Module, error) {
	m, err := r.addModule(name, global)
	if err != nil {
		return nil, err
	}
	r.log.Debug("module added", log.String("module", name), log.Bool("global", global != nil))
	r.publish(EventModuleAdded, ModuleEvent{Module: name})
	return m, nil
}

func (r *Registry) addModule(name string, global item.Global) (*Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseBuilding {
		return nil, ErrRegistryActive
	}
	if name == "" {
		return nil, fmt.Errorf("module name: %w", ErrInvalidName)
	}
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateModule, name)
	}

	m := &Module{
		name:   name,
		reg:    r,
		global: global,
		items:  make(map[string]item.ID),
	}
	if global != nil {
		item.AttachGlobal(global, m)
	}
	r.modules = append(r.modules, m)
	r.byName[name] = m
	return m, nil
}

// Register reserves an id for a new item kind owned by mod.
func (r *Registry) Register(mod *Module, name string, factory Factory) (item.ID, error) {
	id, err := r.register(mod, name, factory)
	if err != nil {
		return item.None, err
	}
	r.log.Debug("item registered",
		log.String("module", mod.name),
		log.String("item", name),
		log.Int32("id", int32(id)),
	)
	r.publish(EventItemAdded, ItemEvent{Module: mod.name, Name: name, ID: id})
	return id, nil
}

func (r *Registry) register(mod *Module, name string, factory Factory) (item.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseBuilding {
		return item.None, ErrRegistryActive
	}
	if mod == nil || mod.reg != r || r.byName[mod.name] != mod {
		return item.None, fmt.Errorf("%w: %w", ErrRegistration, ErrUnknownModule)
	}
	if name == "" {
		return item.None, fmt.Errorf("%w: item name: %w", ErrRegistration, ErrInvalidName)
	}
	if factory == nil {
		return item.None, fmt.Errorf("%w: %s/%s: %w", ErrRegistration, mod.name, name, ErrNilFactory)
	}
	if existing, dup := mod.items[name]; dup {
		return item.None, &DuplicateNameError{Module: mod.name, Name: name, Existing: existing}
	}

	probe := factory()
	if probe == nil {
		return item.None, fmt.Errorf("%w: %s/%s: %w", ErrRegistration, mod.name, name, ErrNilFactory)
	}

	id, err := r.alloc.Reserve()
	if err != nil {
		return item.None, fmt.Errorf("%w: %s/%s: %w", ErrRegistration, mod.name, name, err)
	}
	desc := &Descriptor{
		ID:        id,
		Module:    mod,
		Name:      name,
		New:       factory,
		Animation: probe.Animation(),
	}
	r.setSlotLocked(id, desc)
	mod.items[name] = id
	mod.order = append(mod.order, id)
	return id, nil
}

func (r *Registry) setSlotLocked(id item.ID, desc *Descriptor) {
	idx := int(id - r.alloc.Native())
	for len(r.types) <= idx {
		r.types = append(r.types, nil)
	}
	r.types[idx] = desc
}

// AbortModule discards a module whose load failed. Its ids stay reserved so
// that nothing registered after it shifts.
func (r *Registry) AbortModule(mod *Module) {
	if !r.abortModule(mod) {
		return
	}
	r.log.Warn("module aborted", log.String("module", mod.name), log.Int("items", len(mod.order)))
	r.publish(EventModuleAborted, ModuleEvent{Module: mod.name, Items: len(mod.order)})
}

func (r *Registry) abortModule(mod *Module) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if mod == nil || r.byName[mod.name] != mod {
		return false
	}
	for _, id := range mod.order {
		r.types[id-r.alloc.Native()] = nil
	}
	delete(r.byName, mod.name)
	for i, m := range r.modules {
		if m == mod {
			r.modules = append(r.modules[:i:i], r.modules[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the descriptor registered for id.
func (r *Registry) Lookup(id item.ID) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(id)
}

func (r *Registry) lookupLocked(id item.ID) (*Descriptor, bool) {
	if !r.alloc.IsExtension(id) {
		return nil, false
	}
	idx := int(id - r.alloc.Native())
	if idx >= len(r.types) || r.types[idx] == nil {
		return nil, false
	}
	return r.types[idx], true
}

// LookupByName resolves a (module, item) pair. A module that is not loaded
// is an expected condition and yields false, not an error.
func (r *Registry) LookupByName(module, name string) (item.ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[module]
	if !ok {
		return item.None, false
	}
	id, ok := m.items[name]
	return id, ok
}

// Module finds a loaded module by name.
func (r *Registry) Module(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	return m, ok
}

// Modules lists loaded modules in load order.
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Module(nil), r.modules...)
}

// Globals is the global extension set in module load order. Only valid once
// active; the returned slice must not be modified.
func (r *Registry) Globals() []item.Global {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.globals
}

// OnResize registers a listener for id-space size changes.
func (r *Registry) OnResize(fn Resizer) {
	r.mu.Lock()
	r.resizers = append(r.resizers, fn)
	r.mu.Unlock()
}

// Activate ends the building phase: every resize listener is sized to the
// final id count and dispatch becomes legal.
func (r *Registry) Activate() error {
	ev, err := r.activate()
	if err != nil {
		return err
	}
	r.log.Info("registry activated",
		log.Int("size", ev.Size),
		log.Int("modules", ev.Modules),
		log.Uint64("fingerprint", ev.Fingerprint),
	)
	r.publish(EventActivated, ev)
	return nil
}

func (r *Registry) activate() (ActivatedEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseBuilding {
		return ActivatedEvent{}, ErrRegistryActive
	}

	size := int(r.alloc.Next())
	if err := r.notifyResizeLocked(size); err != nil {
		return ActivatedEvent{}, fmt.Errorf("resize to %d: %w", size, err)
	}
	for _, desc := range r.types {
		if desc != nil {
			r.names.Set(desc.ID, desc.Name)
		}
	}

	r.globals = make([]item.Global, 0, len(r.modules))
	for _, m := range r.modules {
		if m.global != nil {
			r.globals = append(r.globals, m.global)
		}
	}
	r.phase = PhaseActive

	return ActivatedEvent{Size: size, Modules: len(r.modules), Fingerprint: r.fingerprintLocked()}, nil
}

// RequireActive reports ErrRegistryBuilding until Activate succeeds.
func (r *Registry) RequireActive() error {
	if r.Phase() != PhaseActive {
		return ErrRegistryBuilding
	}
	return nil
}

// UnloadAll drops every module and kind and rewinds the allocator. The host
// must already have released every item holding an extension id.
func (r *Registry) UnloadAll() error {
	count, err := r.unloadAll()
	r.log.Info("registry unloaded", log.Int("modules", count))
	r.publish(EventUnloaded, UnloadedEvent{Modules: count})
	return err
}

func (r *Registry) unloadAll() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.modules)
	r.modules = nil
	r.byName = make(map[string]*Module)
	r.types = nil
	r.globals = nil
	r.alloc.Reset()
	r.phase = PhaseBuilding

	if err := r.notifyResizeLocked(int(r.alloc.Native())); err != nil {
		return count, fmt.Errorf("resize to native: %w", err)
	}
	return count, nil
}

// Listeners each own a distinct table, so they run concurrently; they must
// not call back into the registry.
func (r *Registry) notifyResizeLocked(size int) error {
	var g errgroup.Group
	for _, fn := range r.resizers {
		g.Go(func() error { return fn(size) })
	}
	return g.Wait()
}

// Fingerprint hashes the loaded (module, item, id) set in load order. Two
// sessions with equal fingerprints assign identical ids.
func (r *Registry) Fingerprint() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fingerprintLocked()
}

func (r *Registry) fingerprintLocked() uint64 {
	h := xxhash.New()
	var idBuf [4]byte
	for _, m := range r.modules {
		_, _ = h.WriteString(m.name)
		_, _ = h.Write([]byte{0})
		for _, id := range m.order {
			desc, _ := r.lookupLocked(id)
			_, _ = h.WriteString(desc.Name)
			binary.LittleEndian.PutUint32(idBuf[:], uint32(id))
			_, _ = h.Write(idBuf[:])
		}
		_, _ = h.Write([]byte{0xff})
	}
	return h.Sum64()
}

func (r *Registry) publish(typ string, data any) {
	if err := r.events.Publish(bus.NewEvent(typ, eventSource, data)); err != nil {
		r.log.Warn("event handler failed", log.String("event", typ), log.Error(err))
	}
}
