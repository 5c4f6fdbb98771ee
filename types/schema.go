package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"pkg.world.dev/hexforge/codec"
)

// SerializeDefinitionSchema returns the JSON schema of the definition model
// itself, for documenting the project file format.
func SerializeDefinitionSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&EntityType{})
	bz, err := schema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "definition model must be json serializable")
	}
	return bz, nil
}

// SchemaSample reconstitutes an entity type's schema sample: its name, role,
// and the full default value set keyed by property name. Exporters embed this
// in documentation so a reader can see what a fresh instance looks like.
func SchemaSample(et EntityType, structs StructResolver) ([]byte, error) {
	props := map[string]PropertyValue{}
	for _, def := range et.Properties {
		value, err := DefaultValue(def.Type, structs)
		if err != nil {
			return nil, err
		}
		props[def.Name] = value
	}
	sample := struct {
		Name       string                   `json:"name"`
		Role       Role                     `json:"role"`
		Properties map[string]PropertyValue `json:"properties"`
	}{et.Name, et.Role, props}
	return codec.Encode(sample)
}

// SameSchema reports whether two serialized schema documents are structurally
// identical, ignoring key order.
func SameSchema(a, b []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(a, b)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
