package registry

import "github.com/zeusync/modkit/internal/core/item"

// Lifecycle event types published on the registry's bus.
const (
	EventModuleAdded   = "module.added"
	EventModuleAborted = "module.aborted"
	EventItemAdded     = "item.registered"
	EventActivated     = "registry.activated"
	EventUnloaded      = "registry.unloaded"

	eventSource = "registry"
)

type ModuleEvent struct {
	Module string
	Items  int
}

type ItemEvent struct {
	Module string
	Name   string
	ID     item.ID
}

type ActivatedEvent struct {
	Size        int
	Modules     int
	Fingerprint uint64
}

type UnloadedEvent struct {
	Modules int
}
