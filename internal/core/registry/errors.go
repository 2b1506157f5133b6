package registry

import (
	"errors"
	"fmt"

	"github.com/zeusync/modkit/internal/core/item"
)

var (
	// ErrRegistration is matched by every error that must abort the load of
	// the module that caused it.
	ErrRegistration = errors.New("item registration failed")

	ErrDuplicateModule  = errors.New("module already loaded")
	ErrUnknownModule    = errors.New("module not loaded")
	ErrInvalidName      = errors.New("invalid name")
	ErrNilFactory       = errors.New("nil behavior factory")
	ErrRegistryActive   = errors.New("registry is active: registration is closed")
	ErrRegistryBuilding = errors.New("registry is building: dispatch is not allowed yet")
)

// DuplicateNameError reports a second registration of an item name within
// one module.
type DuplicateNameError struct {
	Module   string
	Name     string
	Existing item.ID
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("module %q already registered item %q (id %d)", e.Module, e.Name, e.Existing)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrRegistration
}
