package registry

import "github.com/zeusync/modkit/internal/core/item"

// Table is a fixed-capacity array indexed by item id, the shape the host
// keeps per-kind data in (names, textures, flags). It is resized only when
// the registry activates, never during a load.
type Table[T any] struct {
	values []T
}

func NewTable[T any](size int) *Table[T] {
	return &Table[T]{values: make([]T, size)}
}

// Resize grows or shrinks the table, keeping the common prefix.
func (t *Table[T]) Resize(size int) {
	if size == len(t.values) {
		return
	}
	next := make([]T, size)
	copy(next, t.values)
	t.values = next
}

func (t *Table[T]) Len() int { return len(t.values) }

func (t *Table[T]) Get(id item.ID) (T, bool) {
	if id < 0 || int(id) >= len(t.values) {
		var zero T
		return zero, false
	}
	return t.values[id], true
}

// Set stores v at id. Out of range ids are rejected.
func (t *Table[T]) Set(id item.ID, v T) bool {
	if id < 0 || int(id) >= len(t.values) {
		return false
	}
	t.values[id] = v
	return true
}

// Track keeps t sized to the registry's id space.
func Track[T any](r *Registry, t *Table[T]) {
	r.OnResize(func(size int) error {
		t.Resize(size)
		return nil
	})
}
