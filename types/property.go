package types

// Kind tags one variant of the property type/value algebra. Every PropertyType
// and PropertyValue carries exactly one Kind, and a stored value's Kind must
// match its definition's Kind structurally.
type Kind string

const (
	KindBool       Kind = "bool"
	KindInt        Kind = "int"
	KindFloat      Kind = "float"
	KindString     Kind = "string"
	KindColor      Kind = "color"
	KindEnum       Kind = "enum"
	KindEntityRef  Kind = "entity_ref"
	KindList       Kind = "list"
	KindMap        Kind = "map"
	KindStruct     Kind = "struct"
	KindIntRange   Kind = "int_range"
	KindFloatRange Kind = "float_range"
)

// PropertyType is the recursive type algebra. List and Map nest through Elem
// with no depth limit; Enum, Map keys and Struct reference their definitions
// by identity only, never by structural copy.
type PropertyType struct {
	Kind Kind `json:"kind"`

	// Enum holds the option source for KindEnum and the key enum for KindMap.
	Enum Identity `json:"enum,omitempty"`
	// Struct references a StructDefinition for KindStruct.
	Struct Identity `json:"struct,omitempty"`
	// RoleFilter restricts which entity types a KindEntityRef may point at.
	RoleFilter *Role `json:"roleFilter,omitempty"`
	// Elem is the list element type for KindList and the value type for KindMap.
	Elem *PropertyType `json:"elem,omitempty"`

	IntMin   int64   `json:"intMin,omitempty"`
	IntMax   int64   `json:"intMax,omitempty"`
	FloatMin float64 `json:"floatMin,omitempty"`
	FloatMax float64 `json:"floatMax,omitempty"`
}

func BoolType() PropertyType   { return PropertyType{Kind: KindBool} }
func IntType() PropertyType    { return PropertyType{Kind: KindInt} }
func FloatType() PropertyType  { return PropertyType{Kind: KindFloat} }
func StringType() PropertyType { return PropertyType{Kind: KindString} }
func ColorType() PropertyType  { return PropertyType{Kind: KindColor} }

func EnumType(enum Identity) PropertyType {
	return PropertyType{Kind: KindEnum, Enum: enum}
}

// EntityRefType returns an entity reference type. A nil filter accepts any role.
func EntityRefType(filter *Role) PropertyType {
	return PropertyType{Kind: KindEntityRef, RoleFilter: filter}
}

func ListType(elem PropertyType) PropertyType {
	return PropertyType{Kind: KindList, Elem: &elem}
}

func MapType(keyEnum Identity, value PropertyType) PropertyType {
	return PropertyType{Kind: KindMap, Enum: keyEnum, Elem: &value}
}

func StructType(structID Identity) PropertyType {
	return PropertyType{Kind: KindStruct, Struct: structID}
}

func IntRangeType(min, max int64) PropertyType {
	return PropertyType{Kind: KindIntRange, IntMin: min, IntMax: max}
}

func FloatRangeType(min, max float64) PropertyType {
	return PropertyType{Kind: KindFloatRange, FloatMin: min, FloatMax: max}
}

// Equal reports structural equality, recursing through Elem.
func (t PropertyType) Equal(o PropertyType) bool {
	if t.Kind != o.Kind || t.Enum != o.Enum || t.Struct != o.Struct {
		return false
	}
	if t.IntMin != o.IntMin || t.IntMax != o.IntMax ||
		t.FloatMin != o.FloatMin || t.FloatMax != o.FloatMax {
		return false
	}
	if (t.RoleFilter == nil) != (o.RoleFilter == nil) {
		return false
	}
	if t.RoleFilter != nil && *t.RoleFilter != *o.RoleFilter {
		return false
	}
	if (t.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*o.Elem) {
		return false
	}
	return true
}
