package modloader

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/registry"
)

var (
	ErrDuplicateMod = errors.New("modloader: mod already in catalog")
	ErrNilMod       = errors.New("modloader: nil mod")
)

// Mod is an extension module as seen by the loader.
type Mod interface {
	Name() string
	// Global returns the module's global behavior, or nil. Called once per
	// load cycle; the value must be fresh each time.
	Global() item.Global
	// Load registers the module's item kinds on m.
	Load(m *registry.Module) error
}

// Unloader is implemented by mods that hold state across a load cycle.
type Unloader interface {
	Unload()
}

// Catalog holds every mod the host knows about, loaded or not.
type Catalog struct {
	mu    sync.RWMutex
	mods  map[string]Mod
	order []string
}

func NewCatalog(mods ...Mod) (*Catalog, error) {
	c := &Catalog{mods: make(map[string]Mod, len(mods))}
	for _, m := range mods {
		if err := c.Add(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Add(m Mod) error {
	if m == nil {
		return ErrNilMod
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.mods[m.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMod, m.Name())
	}
	c.mods[m.Name()] = m
	c.order = append(c.order, m.Name())
	return nil
}

func (c *Catalog) Get(name string) (Mod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.mods[name]
	return m, ok
}

// Names lists catalog entries in the order they were added.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}
