package types

import "github.com/rotisserie/eris"

var (
	ErrUnknownKind    = eris.New("unknown property kind")
	ErrKindMismatch   = eris.New("value kind does not match type kind")
	ErrStructCycle    = eris.New("struct definition references itself")
	ErrElementInvalid = eris.New("collection element does not match element type")
)

// StructResolver resolves a struct identity to its current definition. A
// failed resolution is a handled case (the definition may have been deleted),
// never a panic.
type StructResolver interface {
	Struct(id Identity) (StructDefinition, bool)
}

// DefaultValue returns the canonical default for the given type: false, zero,
// empty string or collection, the range minimum, or a struct seeded with every
// field's own default. It is total over kinds; an unknown kind is a core bug.
func DefaultValue(t PropertyType, structs StructResolver) (PropertyValue, error) {
	return defaultValue(t, structs, nil)
}

func defaultValue(t PropertyType, structs StructResolver, path []Identity) (PropertyValue, error) {
	switch t.Kind {
	case KindBool:
		return BoolValue(false), nil
	case KindInt:
		return IntValue(0), nil
	case KindFloat:
		return FloatValue(0), nil
	case KindString:
		return StringValue(""), nil
	case KindColor:
		return ColorValue(Color{}), nil
	case KindEnum:
		return EnumValue(""), nil
	case KindEntityRef:
		return EntityRefValue(""), nil
	case KindList:
		return ListValue(), nil
	case KindMap:
		return MapValue(), nil
	case KindIntRange:
		return IntRangeValue(t.IntMin), nil
	case KindFloatRange:
		return FloatRangeValue(t.FloatMin), nil
	case KindStruct:
		for _, seen := range path {
			if seen == t.Struct {
				return PropertyValue{}, eris.Wrapf(ErrStructCycle, "struct %s", t.Struct)
			}
		}
		fields := map[Identity]PropertyValue{}
		def, ok := structs.Struct(t.Struct)
		if !ok {
			// Dangling struct identity: the instance stays representable with
			// no fields, and readers fall back to current defaults.
			return StructValue(fields), nil
		}
		path = append(path, t.Struct)
		for _, prop := range def.Properties {
			value, err := defaultValue(prop.Type, structs, path)
			if err != nil {
				return PropertyValue{}, err
			}
			fields[prop.ID] = value
		}
		return StructValue(fields), nil
	}
	return PropertyValue{}, eris.Wrapf(ErrUnknownKind, "kind %q", t.Kind)
}

// Matches enforces the type/value pairing invariant: the value's variant must
// match the type's variant structurally, recursing through lists, maps and
// struct fields. It is called at the points where values enter stored state
// (board writes, project load), not scattered across call sites.
func Matches(t PropertyType, v PropertyValue, structs StructResolver) error {
	if t.Kind != v.Kind {
		return eris.Wrapf(ErrKindMismatch, "want %q, got %q", t.Kind, v.Kind)
	}
	switch t.Kind {
	case KindList:
		if t.Elem == nil {
			return eris.Wrap(ErrUnknownKind, "list type has no element type")
		}
		for i, elem := range v.List {
			if err := Matches(*t.Elem, elem, structs); err != nil {
				return eris.Wrapf(ErrElementInvalid, "list element %d: %v", i, err)
			}
		}
	case KindMap:
		if t.Elem == nil {
			return eris.Wrap(ErrUnknownKind, "map type has no value type")
		}
		for _, entry := range v.Entries {
			if err := Matches(*t.Elem, entry.Value, structs); err != nil {
				return eris.Wrapf(ErrElementInvalid, "map entry %q: %v", entry.Key, err)
			}
		}
	case KindStruct:
		def, ok := structs.Struct(t.Struct)
		if !ok {
			// Dangling identity: nothing to check fields against.
			return nil
		}
		for id, fv := range v.Fields {
			prop, ok := def.Property(id)
			if !ok {
				// A field for a deleted property is stale but harmless.
				continue
			}
			if err := Matches(prop.Type, fv, structs); err != nil {
				return eris.Wrapf(ErrElementInvalid, "struct field %q: %v", prop.Name, err)
			}
		}
	}
	return nil
}
