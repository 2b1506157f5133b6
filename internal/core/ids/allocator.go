// Package ids hands out item kind identifiers above the host's native range.
package ids

import (
	"errors"
	"math"

	"github.com/zeusync/modkit/internal/core/item"
)

// DefaultNative is the native item count of the stock host build.
const DefaultNative item.ID = 3601

// Limit is the first id that is never handed out. Save files use it to mark
// name-encoded extension references.
const Limit item.ID = math.MaxInt32

// ErrExhausted is returned once every id below Limit has been reserved.
var ErrExhausted = errors.New("item id space exhausted")

// Allocator reserves sequential identifiers for one load session. It is not
// safe for concurrent use; all reservations happen during the load phase.
type Allocator struct {
	native item.ID
	next   item.ID
}

func NewAllocator(native item.ID) *Allocator {
	if native <= item.None {
		native = DefaultNative
	}
	return &Allocator{native: native, next: native}
}

// Reserve returns the next free identifier.
func (a *Allocator) Reserve() (item.ID, error) {
	if a.next >= Limit {
		return item.None, ErrExhausted
	}
	id := a.next
	a.next++
	return id, nil
}

// Reset forgets every reservation. Must run before a fresh load.
func (a *Allocator) Reset() {
	a.next = a.native
}

// Native is the size of the built-in range.
func (a *Allocator) Native() item.ID { return a.native }

// Next is one past the highest reserved id: the size id-indexed tables need.
func (a *Allocator) Next() item.ID { return a.next }

// IsExtension reports whether id was (or could be) handed out by Reserve.
func (a *Allocator) IsExtension(id item.ID) bool {
	return id >= a.native
}
