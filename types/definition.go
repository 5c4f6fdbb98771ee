package types

// Role is the immutable classification of an entity type. BoardPosition types
// occupy exactly one slot per hex tile; Token types may co-occupy a tile.
type Role string

const (
	RoleBoardPosition Role = "board_position"
	RoleToken         Role = "token"
)

// PropertyDefinition is a named, typed, defaulted field. Definitions are
// reusable across any number of entity types and are not owned by one.
type PropertyDefinition struct {
	ID      Identity      `json:"id"`
	Name    string        `json:"name"`
	Type    PropertyType  `json:"type"`
	Default PropertyValue `json:"default"`
}

// NewPropertyDefinition mints an identity and seeds the definition's default
// from its type so a definition is never created with a mismatched default.
func NewPropertyDefinition(name string, t PropertyType, structs StructResolver) (PropertyDefinition, error) {
	def, err := DefaultValue(t, structs)
	if err != nil {
		return PropertyDefinition{}, err
	}
	return PropertyDefinition{
		ID:      NewIdentity(),
		Name:    name,
		Type:    t,
		Default: def,
	}, nil
}

// EnumDefinition is a named, identity-keyed ordered set of option names.
type EnumDefinition struct {
	ID      Identity `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// StructDefinition is a named, identity-keyed schema reusable as a value type
// inside other types.
type StructDefinition struct {
	ID         Identity             `json:"id"`
	Name       string               `json:"name"`
	Properties []PropertyDefinition `json:"properties"`
}

// Property returns the property definition with the given identity.
func (sd StructDefinition) Property(id Identity) (PropertyDefinition, bool) {
	for _, def := range sd.Properties {
		if def.ID == id {
			return def, true
		}
	}
	return PropertyDefinition{}, false
}

// EntityType is a named schema with a role, a display color, and an ordered
// list of property definitions.
type EntityType struct {
	ID         Identity             `json:"id"`
	Name       string               `json:"name"`
	Role       Role                 `json:"role"`
	Color      Color                `json:"color"`
	Properties []PropertyDefinition `json:"properties"`
}

// Property returns the property definition with the given identity.
func (et EntityType) Property(id Identity) (PropertyDefinition, bool) {
	for _, def := range et.Properties {
		if def.ID == id {
			return def, true
		}
	}
	return PropertyDefinition{}, false
}

// DefaultProps derives the full default value set from the type's current
// property list. New instances are seeded with exactly this map.
func (et EntityType) DefaultProps(structs StructResolver) (map[Identity]PropertyValue, error) {
	props := make(map[Identity]PropertyValue, len(et.Properties))
	for _, def := range et.Properties {
		value, err := DefaultValue(def.Type, structs)
		if err != nil {
			return nil, err
		}
		props[def.ID] = value
	}
	return props, nil
}
