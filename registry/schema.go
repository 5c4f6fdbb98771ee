package registry

import (
	"pkg.world.dev/hexforge/types"
)

// EnumRegistry owns the enum definitions.
type EnumRegistry struct {
	Registry[types.EnumDefinition]
}

func NewEnums() *EnumRegistry {
	return &EnumRegistry{Registry: *New[types.EnumDefinition]()}
}

// StructRegistry owns the struct definitions and satisfies
// types.StructResolver so default derivation and conformance checks can
// resolve struct identities through it.
type StructRegistry struct {
	Registry[types.StructDefinition]
}

func NewStructs() *StructRegistry {
	return &StructRegistry{Registry: *New[types.StructDefinition]()}
}

// Struct implements types.StructResolver.
func (r *StructRegistry) Struct(id types.Identity) (types.StructDefinition, bool) {
	return r.Get(id)
}

var _ types.StructResolver = (*StructRegistry)(nil)
