package types

// MapEntry is one (key name, value) pair of a map value. Entry order is
// significant for display and must survive serialization, which is why map
// values are stored as an ordered slice rather than a Go map.
type MapEntry struct {
	Key   string        `json:"key"`
	Value PropertyValue `json:"value"`
}

// PropertyValue is the value algebra: one arm per Kind, holding concrete data.
// A value is never partially typed; the arm in use is named by Kind and the
// remaining fields are zero.
type PropertyValue struct {
	Kind Kind `json:"kind"`

	Bool   bool    `json:"bool,omitempty"`
	Int    int64   `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
	String string  `json:"string,omitempty"`
	Color  Color   `json:"color,omitempty"`

	// Option is the selected option name for KindEnum.
	Option string `json:"option,omitempty"`
	// Ref is the referenced entity identity for KindEntityRef; empty means none.
	Ref Identity `json:"ref,omitempty"`

	List []PropertyValue `json:"list,omitempty"`
	// Entries holds KindMap data in insertion order.
	Entries []MapEntry `json:"entries,omitempty"`
	// Fields holds KindStruct data keyed by property identity, unordered.
	Fields map[Identity]PropertyValue `json:"fields,omitempty"`
}

func BoolValue(v bool) PropertyValue     { return PropertyValue{Kind: KindBool, Bool: v} }
func IntValue(v int64) PropertyValue     { return PropertyValue{Kind: KindInt, Int: v} }
func FloatValue(v float64) PropertyValue { return PropertyValue{Kind: KindFloat, Float: v} }
func StringValue(v string) PropertyValue { return PropertyValue{Kind: KindString, String: v} }
func ColorValue(c Color) PropertyValue   { return PropertyValue{Kind: KindColor, Color: c} }

func EnumValue(option string) PropertyValue {
	return PropertyValue{Kind: KindEnum, Option: option}
}

func EntityRefValue(ref Identity) PropertyValue {
	return PropertyValue{Kind: KindEntityRef, Ref: ref}
}

func ListValue(elems ...PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindList, List: elems}
}

func MapValue(entries ...MapEntry) PropertyValue {
	return PropertyValue{Kind: KindMap, Entries: entries}
}

func StructValue(fields map[Identity]PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindStruct, Fields: fields}
}

func IntRangeValue(v int64) PropertyValue {
	return PropertyValue{Kind: KindIntRange, Int: v}
}

func FloatRangeValue(v float64) PropertyValue {
	return PropertyValue{Kind: KindFloatRange, Float: v}
}

// Equal reports structural equality. Lists and map entries compare in order,
// struct fields compare by identity regardless of iteration order, and empty
// collections compare equal to nil ones so a serialization round trip cannot
// break equality. Numeric arms never compare across kinds.
func (v PropertyValue) Equal(o PropertyValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == o.Bool
	case KindInt, KindIntRange:
		return v.Int == o.Int
	case KindFloat, KindFloatRange:
		return v.Float == o.Float
	case KindString:
		return v.String == o.String
	case KindColor:
		return v.Color == o.Color
	case KindEnum:
		return v.Option == o.Option
	case KindEntityRef:
		return v.Ref == o.Ref
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Entries) != len(o.Entries) {
			return false
		}
		for i := range v.Entries {
			if v.Entries[i].Key != o.Entries[i].Key {
				return false
			}
			if !v.Entries[i].Value.Equal(o.Entries[i].Value) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.Fields) != len(o.Fields) {
			return false
		}
		for id, fv := range v.Fields {
			ov, ok := o.Fields[id]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}
