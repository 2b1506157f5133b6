package hooks

import (
	"fmt"

	"github.com/zeusync/modkit/internal/core/item"
)

// DispatchTypeMismatchError is raised (as a panic) when an extension item's
// bound behavior does not belong to it: missing, built for another kind, or
// pointing at another instance or module. It means binding was bypassed.
type DispatchTypeMismatchError struct {
	Hook   Hook
	ItemID item.ID
	Reason string
}

func (e *DispatchTypeMismatchError) Error() string {
	return fmt.Sprintf("dispatch %s on item %d: %s", e.Hook, e.ItemID, e.Reason)
}
