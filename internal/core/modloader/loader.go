// Package modloader drives the two-phase load of extension modules: every
// module registers its kinds while the registry is building, then the
// registry is activated once and id-indexed tables are sized to the final
// count.
package modloader

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

// Result summarizes one load cycle.
type Result struct {
	// Loaded lists modules that registered successfully, in load order.
	Loaded []string
	// Aborted maps modules whose load failed to the failure.
	Aborted map[string]error
	// Missing lists requested names absent from the catalog.
	Missing []string
}

type Loader struct {
	reg     *registry.Registry
	catalog *Catalog
	log     log.Log
	loaded  []Mod
}

func New(reg *registry.Registry, catalog *Catalog, logger log.Log) *Loader {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Loader{
		reg:     reg,
		catalog: catalog,
		log:     logger.Named("modloader"),
	}
}

// Load unloads whatever is loaded, then loads the named mods in order and
// activates the registry. A mod that fails to register is aborted on its
// own; the others still load. The returned error is reserved for failures
// that leave no usable registry.
func (l *Loader) Load(ctx context.Context, names []string) (Result, error) {
	res := Result{Aborted: make(map[string]error)}

	if err := l.Unload(); err != nil {
		return res, err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		m, ok := l.catalog.Get(name)
		if !ok {
			l.log.Warn("mod not found", log.String("mod", name))
			res.Missing = append(res.Missing, name)
			continue
		}

		if err := l.loadOne(m); err != nil {
			l.log.Error("mod load failed", log.String("mod", name), log.Error(err))
			res.Aborted[name] = err
			continue
		}
		l.loaded = append(l.loaded, m)
		res.Loaded = append(res.Loaded, name)
	}

	if err := l.reg.Activate(); err != nil {
		return res, fmt.Errorf("activate registry: %w", err)
	}
	l.log.Info("mods loaded",
		log.Int("loaded", len(res.Loaded)),
		log.Int("aborted", len(res.Aborted)),
		log.Int("missing", len(res.Missing)),
	)
	return res, nil
}

func (l *Loader) loadOne(m Mod) (err error) {
	mod, err := l.reg.AddModule(m.Name(), m.Global())
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", registry.ErrRegistration, r)
		}
		if err != nil {
			l.reg.AbortModule(mod)
			if u, ok := m.(Unloader); ok {
				u.Unload()
			}
		}
	}()

	if err = m.Load(mod); err != nil && !errors.Is(err, registry.ErrRegistration) {
		err = fmt.Errorf("%w: %w", registry.ErrRegistration, err)
	}
	return err
}

// Unload returns the registry to the building phase, releasing every loaded
// mod in reverse load order. The host must have dropped all extension items.
func (l *Loader) Unload() error {
	for i := len(l.loaded) - 1; i >= 0; i-- {
		if u, ok := l.loaded[i].(Unloader); ok {
			u.Unload()
		}
	}
	l.loaded = nil
	return l.reg.UnloadAll()
}

// Loaded lists the currently loaded mods in load order.
func (l *Loader) Loaded() []string {
	out := make([]string, len(l.loaded))
	for i, m := range l.loaded {
		out[i] = m.Name()
	}
	return out
}
