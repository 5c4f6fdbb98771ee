package registry

import (
	"pkg.world.dev/hexforge/types"
)

// EntityTypeRegistry owns the entity type definitions and adds role filtering
// on top of the generic registry.
type EntityTypeRegistry struct {
	Registry[types.EntityType]
}

func NewEntityTypes() *EntityTypeRegistry {
	return &EntityTypeRegistry{Registry: *New[types.EntityType]()}
}

// ByRole returns all entity types with the given role, in insertion order.
func (r *EntityTypeRegistry) ByRole(role types.Role) []types.EntityType {
	var matched []types.EntityType
	for _, et := range r.List() {
		if et.Role == role {
			matched = append(matched, et)
		}
	}
	return matched
}

// IndexByRole returns the position of the given entity type within its role's
// insertion-order list, the same ordering generation maps band ordinals onto.
func (r *EntityTypeRegistry) IndexByRole(role types.Role, id types.Identity) (int, bool) {
	for i, et := range r.ByRole(role) {
		if et.ID == id {
			return i, true
		}
	}
	return 0, false
}

// FirstByRole returns the first registered entity type with the given role.
func (r *EntityTypeRegistry) FirstByRole(role types.Role) (types.EntityType, bool) {
	for _, et := range r.List() {
		if et.Role == role {
			return et, true
		}
	}
	return types.EntityType{}, false
}
