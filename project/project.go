// Package project serializes a whole editing session to a human-diffable JSON
// document and back. The round trip is lossless: identities survive exactly,
// registry insertion order and map value entry order are preserved, and every
// (definition, value) pair is checked for conformance before anything is
// installed on load.
package project

import (
	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
	"github.com/rotisserie/eris"

	"pkg.world.dev/hexforge/board"
	"pkg.world.dev/hexforge/codec"
	"pkg.world.dev/hexforge/registry"
	"pkg.world.dev/hexforge/types"
)

const Version = 1

var ErrUnsupportedVersion = eris.New("unsupported project file version")

// SavedTile pairs a coordinate with its tile instance.
type SavedTile struct {
	At   board.HexCoord `json:"at"`
	Tile board.Tile     `json:"tile"`
}

// File is the on-disk document. Registry sections are ordered maps keyed by
// identity so definition insertion order survives a reload and diffs stay
// stable.
type File struct {
	Version     int                    `json:"version"`
	Enums       *orderedmap.OrderedMap `json:"enums"`
	Structs     *orderedmap.OrderedMap `json:"structs"`
	EntityTypes *orderedmap.OrderedMap `json:"entityTypes"`
	Tiles       []SavedTile            `json:"tiles"`
	Tokens      []board.Token          `json:"tokens"`
}

// rawSections re-reads the registry sections as raw bytes. Definitions are
// decoded from these, not from the ordered maps: orderedmap parses values
// into interface{} where every number becomes a float64, which would corrupt
// int64 payloads above 2^53 on the re-encode. The ordered maps contribute key
// order only.
type rawSections struct {
	Enums       map[string]json.RawMessage `json:"enums"`
	Structs     map[string]json.RawMessage `json:"structs"`
	EntityTypes map[string]json.RawMessage `json:"entityTypes"`
}

// Data is the materialized session state a project file produces.
type Data struct {
	Enums       *registry.EnumRegistry
	Structs     *registry.StructRegistry
	EntityTypes *registry.EntityTypeRegistry
	Board       *board.Board
}

// Save serializes the session state to the project document format.
func Save(d *Data) ([]byte, error) {
	file := File{
		Version:     Version,
		Enums:       orderedmap.New(),
		Structs:     orderedmap.New(),
		EntityTypes: orderedmap.New(),
	}
	for _, id := range d.Enums.IDs() {
		def, _ := d.Enums.Get(id)
		file.Enums.Set(id.String(), def)
	}
	for _, id := range d.Structs.IDs() {
		def, _ := d.Structs.Get(id)
		file.Structs.Set(id.String(), def)
	}
	for _, id := range d.EntityTypes.IDs() {
		def, _ := d.EntityTypes.Get(id)
		file.EntityTypes.Set(id.String(), def)
	}
	for _, at := range d.Board.Positions() {
		tile, _ := d.Board.Tile(at)
		file.Tiles = append(file.Tiles, SavedTile{At: at, Tile: tile})
	}
	file.Tokens = d.Board.Tokens()
	return codec.EncodeIndented(file)
}

// Load parses and validates a project document. Validation happens fully
// before anything is returned, so a malformed file never produces a partially
// loaded session.
func Load(bz []byte) (*Data, error) {
	file, err := codec.Decode[File](bz)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse project file")
	}
	if file.Version != Version {
		return nil, eris.Wrapf(ErrUnsupportedVersion, "version %d", file.Version)
	}

	raw, err := codec.Decode[rawSections](bz)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse project file")
	}

	data := &Data{
		Enums:       registry.NewEnums(),
		Structs:     registry.NewStructs(),
		EntityTypes: registry.NewEntityTypes(),
		Board:       board.New(),
	}
	if err := loadSection(file.Enums, raw.Enums, func(def types.EnumDefinition) {
		data.Enums.Upsert(def.ID, def)
	}); err != nil {
		return nil, err
	}
	if err := loadSection(file.Structs, raw.Structs, func(def types.StructDefinition) {
		data.Structs.Upsert(def.ID, def)
	}); err != nil {
		return nil, err
	}
	if err := loadSection(file.EntityTypes, raw.EntityTypes, func(def types.EntityType) {
		data.EntityTypes.Upsert(def.ID, def)
	}); err != nil {
		return nil, err
	}

	// Conformance pass: every stored value must match its definition before
	// the data is handed to a session.
	for _, et := range data.EntityTypes.List() {
		for _, prop := range et.Properties {
			if err := types.Matches(prop.Type, prop.Default, data.Structs); err != nil {
				return nil, eris.Wrapf(err, "entity type %q, property %q", et.Name, prop.Name)
			}
		}
	}
	for _, saved := range file.Tiles {
		if err := validateProps(data, saved.Tile.Type, saved.Tile.Props); err != nil {
			return nil, eris.Wrapf(err, "tile at %+v", saved.At)
		}
	}
	for _, tok := range file.Tokens {
		if err := validateProps(data, tok.Type, tok.Props); err != nil {
			return nil, eris.Wrapf(err, "token %s", tok.ID)
		}
	}

	for _, saved := range file.Tiles {
		data.Board.AddPosition(saved.At, saved.Tile)
	}
	for _, tok := range file.Tokens {
		cmd := board.NewPlaceToken(data.Board, tok, "Load project")
		if err := cmd.Apply(); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// validateProps checks an instance property map against its entity type.
// A dangling entity type identity or an entry for a deleted property is
// tolerated: instances keep identities, lookups just miss.
func validateProps(data *Data, typeID types.Identity, props map[types.Identity]types.PropertyValue) error {
	et, ok := data.EntityTypes.Get(typeID)
	if !ok {
		return nil
	}
	for propID, value := range props {
		def, ok := et.Property(propID)
		if !ok {
			continue
		}
		if err := types.Matches(def.Type, value, data.Structs); err != nil {
			return eris.Wrapf(err, "property %q", def.Name)
		}
	}
	return nil
}

func loadSection[T any](section *orderedmap.OrderedMap, raw map[string]json.RawMessage, install func(T)) error {
	if section == nil {
		return nil
	}
	for _, key := range section.Keys() {
		bz, ok := raw[key]
		if !ok {
			return eris.Errorf("malformed definition %q", key)
		}
		def, err := codec.Decode[T](bz)
		if err != nil {
			return eris.Wrapf(err, "malformed definition %q", key)
		}
		install(def)
	}
	return nil
}
