// Package registry holds the identity-keyed collections that own the schema.
// Registries are pure data structures: they know nothing about undo, and every
// mutation is wrapped in a command at the call site.
package registry

import (
	"pkg.world.dev/hexforge/types"
)

// Registry is an identity-keyed collection that preserves insertion order.
type Registry[T any] struct {
	order []types.Identity
	items map[types.Identity]T
}

func New[T any]() *Registry[T] {
	return &Registry[T]{
		items: map[types.Identity]T{},
	}
}

// Get returns the definition stored under the given identity.
func (r *Registry[T]) Get(id types.Identity) (T, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Upsert inserts or replaces the definition stored under the given identity.
func (r *Registry[T]) Upsert(id types.Identity, item T) {
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = item
}

// Remove deletes the definition stored under the given identity and returns
// the removed value so callers can capture it for undo.
func (r *Registry[T]) Remove(id types.Identity) (T, bool) {
	item, ok := r.items[id]
	if !ok {
		return item, false
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return item, true
}

// List returns all definitions in insertion order.
func (r *Registry[T]) List() []T {
	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items
}

// IDs returns all identities in insertion order.
func (r *Registry[T]) IDs() []types.Identity {
	ids := make([]types.Identity, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry[T]) Len() int {
	return len(r.items)
}
