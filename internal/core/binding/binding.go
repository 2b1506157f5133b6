// Package binding pairs item instances with their per-instance behavior.
package binding

import (
	"errors"
	"fmt"

	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/registry"
)

var (
	ErrUnknownType = errors.New("no kind registered for item id")
	ErrNilBehavior = errors.New("factory returned nil behavior")
)

type Binder struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Binder {
	return &Binder{reg: reg}
}

// Bind gives it a fresh behavior built from desc. A behavior already bound to
// it is discarded.
func (b *Binder) Bind(it *item.Item, desc *registry.Descriptor) (item.Behavior, error) {
	beh := desc.New()
	if beh == nil {
		return nil, fmt.Errorf("%s/%s: %w", desc.Module.Name(), desc.Name, ErrNilBehavior)
	}
	item.Attach(it, beh, desc.ID, desc.Module)
	return beh, nil
}

// Setup binds it according to its current Type. Native kinds end up with no
// behavior; extension kinds get a fresh one.
func (b *Binder) Setup(it *item.Item) (item.Behavior, error) {
	if !b.reg.IsExtension(it.Type) {
		item.Detach(it)
		return nil, nil
	}
	desc, ok := b.reg.Lookup(it.Type)
	if !ok {
		item.Detach(it)
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, it.Type)
	}
	return b.Bind(it, desc)
}

// Clone copies it. Extension copies receive their own behavior so the two
// instances never share one.
func (b *Binder) Clone(it *item.Item) (*item.Item, error) {
	c := it.Clone()
	if _, err := b.Setup(c); err != nil {
		return nil, err
	}
	return c, nil
}
