// Package hexforge is the core of a hex wargame rule-system editor: a
// user-extensible recursive schema, registries owning the definitions, a
// snapshot-based undo engine, and a procedural terrain generator that records
// whole-board updates as single undo steps.
//
// Everything here runs on one logical thread. Registries, the board, and the
// undo stack are owned by the Session; no operation suspends or blocks, and
// all stateful mutation flows through the undo stack.
package hexforge

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"pkg.world.dev/hexforge/board"
	"pkg.world.dev/hexforge/command"
	"pkg.world.dev/hexforge/log"
	"pkg.world.dev/hexforge/mapgen"
	"pkg.world.dev/hexforge/project"
	"pkg.world.dev/hexforge/registry"
	"pkg.world.dev/hexforge/statsd"
	"pkg.world.dev/hexforge/types"
)

// Session owns all process-scoped editing state. It is created empty or
// seeded from a loaded project, and discarded on close; nothing here is a
// package-level singleton.
type Session struct {
	EntityTypes *registry.EntityTypeRegistry
	Enums       *registry.EnumRegistry
	Structs     *registry.StructRegistry
	Board       *board.Board
	Undo        *command.UndoStack

	logger *zerolog.Logger
}

func NewSession() *Session {
	cfg := GetSessionConfig()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.StatsdAddress != "" {
		if err := statsd.Init(cfg.StatsdAddress, nil); err != nil {
			zlog.Logger.Warn().Err(err).Msg("statsd disabled")
		}
	}
	return &Session{
		EntityTypes: registry.NewEntityTypes(),
		Enums:       registry.NewEnums(),
		Structs:     registry.NewStructs(),
		Board:       board.New(),
		Undo:        command.NewUndoStack(),
		logger:      &zlog.Logger,
	}
}

// record applies a freshly built command and records it on the undo stack.
func (s *Session) record(cmd command.Command) error {
	if err := cmd.Apply(); err != nil {
		return err
	}
	s.Undo.Record(cmd)
	return nil
}

// UpsertEntityType inserts or replaces an entity type as one undo step.
func (s *Session) UpsertEntityType(et types.EntityType) error {
	label := fmt.Sprintf("Edit entity type %q", et.Name)
	if err := s.record(registry.NewUpsert(&s.EntityTypes.Registry, et.ID, et, label)); err != nil {
		return err
	}
	log.EntityTypes(s.logger, s, zerolog.DebugLevel)
	return nil
}

// DeleteEntityType removes an entity type. Instances referencing it keep the
// identity; the deletion does not cascade.
func (s *Session) DeleteEntityType(id types.Identity) error {
	label := "Delete entity type"
	if et, ok := s.EntityTypes.Get(id); ok {
		label = fmt.Sprintf("Delete entity type %q", et.Name)
	}
	return s.record(registry.NewDelete(&s.EntityTypes.Registry, id, label))
}

// UpsertEnum inserts or replaces an enum definition as one undo step.
func (s *Session) UpsertEnum(def types.EnumDefinition) error {
	label := fmt.Sprintf("Edit enum %q", def.Name)
	return s.record(registry.NewUpsert(&s.Enums.Registry, def.ID, def, label))
}

// DeleteEnum removes an enum definition.
func (s *Session) DeleteEnum(id types.Identity) error {
	label := "Delete enum"
	if def, ok := s.Enums.Get(id); ok {
		label = fmt.Sprintf("Delete enum %q", def.Name)
	}
	return s.record(registry.NewDelete(&s.Enums.Registry, id, label))
}

// UpsertStruct inserts or replaces a struct definition as one undo step.
func (s *Session) UpsertStruct(def types.StructDefinition) error {
	label := fmt.Sprintf("Edit struct %q", def.Name)
	return s.record(registry.NewUpsert(&s.Structs.Registry, def.ID, def, label))
}

// DeleteStruct removes a struct definition.
func (s *Session) DeleteStruct(id types.Identity) error {
	label := "Delete struct"
	if def, ok := s.Structs.Get(id); ok {
		label = fmt.Sprintf("Delete struct %q", def.Name)
	}
	return s.record(registry.NewDelete(&s.Structs.Registry, id, label))
}

// AddPosition extends the board with a hex position seeded with the full
// default instance of the given BoardPosition type.
func (s *Session) AddPosition(at board.HexCoord, typeID types.Identity) error {
	et, ok := s.EntityTypes.Get(typeID)
	if !ok {
		return errUnknownDefinition(typeID)
	}
	props, err := et.DefaultProps(s.Structs)
	if err != nil {
		return err
	}
	s.Board.AddPosition(at, board.Tile{Type: typeID, Props: props})
	return nil
}

// SetTile replaces one tile's entity type, reseeding its full property map
// from the new type's defaults, as one undo step.
func (s *Session) SetTile(at board.HexCoord, typeID types.Identity) error {
	et, ok := s.EntityTypes.Get(typeID)
	if !ok {
		return errUnknownDefinition(typeID)
	}
	props, err := et.DefaultProps(s.Structs)
	if err != nil {
		return err
	}
	label := fmt.Sprintf("Set terrain to %q", et.Name)
	cmd, err := board.NewSetTile(s.Board, at, label, typeID, props)
	if err != nil {
		return err
	}
	if err := s.record(cmd); err != nil {
		return err
	}
	log.Tile(s.logger, zerolog.DebugLevel, typeID, len(props))
	return nil
}

// SetTileProp overwrites one property value on a tile, as one undo step. The
// value must conform to the property's declared type; this is the single
// gate where direct edits enter stored state.
func (s *Session) SetTileProp(at board.HexCoord, propID types.Identity, value types.PropertyValue) error {
	tile, ok := s.Board.Tile(at)
	if !ok {
		return board.ErrPositionNotCovered
	}
	et, ok := s.EntityTypes.Get(tile.Type)
	if !ok {
		return errUnknownDefinition(tile.Type)
	}
	def, ok := et.Property(propID)
	if !ok {
		return errUnknownDefinition(propID)
	}
	if err := types.Matches(def.Type, value, s.Structs); err != nil {
		return err
	}
	label := fmt.Sprintf("Edit %q", def.Name)
	cmd, err := board.NewSetTileProp(s.Board, at, label, propID, value)
	if err != nil {
		return err
	}
	return s.record(cmd)
}

// PlaceToken places a new token of the given type, seeded with defaults, as
// one undo step. It returns the new token's identity.
func (s *Session) PlaceToken(at board.HexCoord, typeID types.Identity) (types.Identity, error) {
	et, ok := s.EntityTypes.Get(typeID)
	if !ok {
		return "", errUnknownDefinition(typeID)
	}
	props, err := et.DefaultProps(s.Structs)
	if err != nil {
		return "", err
	}
	token := board.Token{
		ID:    types.NewIdentity(),
		Type:  typeID,
		At:    at,
		Props: props,
	}
	label := fmt.Sprintf("Place %q", et.Name)
	if err := s.record(board.NewPlaceToken(s.Board, token, label)); err != nil {
		return "", err
	}
	return token.ID, nil
}

// RemoveToken removes a token as one undo step.
func (s *Session) RemoveToken(id types.Identity) error {
	cmd, err := board.NewRemoveToken(s.Board, id, "Remove token")
	if err != nil {
		return err
	}
	return s.record(cmd)
}

// Generate runs the procedural generation pipeline over the whole board. The
// pass is recorded as a single undo step; the returned coordinates are the
// tiles that changed.
func (s *Session) Generate(params mapgen.NoiseParams, table mapgen.BiomeTable) ([]board.HexCoord, error) {
	gen := mapgen.NewGenerator(s.Board, s.EntityTypes, s.Structs, s.Undo)
	return gen.Generate(params, table)
}

// SaveProject serializes the session to the project document format.
func (s *Session) SaveProject() ([]byte, error) {
	return project.Save(&project.Data{
		Enums:       s.Enums,
		Structs:     s.Structs,
		EntityTypes: s.EntityTypes,
		Board:       s.Board,
	})
}

// LoadProject builds a fresh session seeded from a project document. The
// undo stack starts empty; loaded history is not replayable.
func LoadProject(bz []byte) (*Session, error) {
	data, err := project.Load(bz)
	if err != nil {
		return nil, err
	}
	s := NewSession()
	s.Enums = data.Enums
	s.Structs = data.Structs
	s.EntityTypes = data.EntityTypes
	s.Board = data.Board
	log.Schema(s.logger, s, zerolog.DebugLevel)
	return s, nil
}

func errUnknownDefinition(id types.Identity) error {
	return eris.Errorf("no definition registered for identity %s", id)
}

// Snapshot is a plain read-only copy of the session state for exporters and
// renderers. Consumers must never mutate the session through it; they cannot,
// because everything is copied.
type Snapshot struct {
	EntityTypes []types.EntityType
	Enums       []types.EnumDefinition
	Structs     []types.StructDefinition
	Positions   []board.HexCoord
	Tiles       map[board.HexCoord]board.Tile
	Tokens      []board.Token
}

func (s *Session) Snapshot() Snapshot {
	tiles := map[board.HexCoord]board.Tile{}
	positions := s.Board.Positions()
	for _, at := range positions {
		tile, _ := s.Board.Tile(at)
		tiles[at] = tile
	}
	return Snapshot{
		EntityTypes: s.EntityTypes.List(),
		Enums:       s.Enums.List(),
		Structs:     s.Structs.List(),
		Positions:   positions,
		Tiles:       tiles,
		Tokens:      s.Board.Tokens(),
	}
}

// Loggable implementation for the log helper package.

func (s *Session) RegisteredEntityTypes() []types.EntityType {
	return s.EntityTypes.List()
}

func (s *Session) RegisteredEnums() []types.EnumDefinition {
	return s.Enums.List()
}

func (s *Session) RegisteredStructs() []types.StructDefinition {
	return s.Structs.List()
}

var _ log.Loggable = (*Session)(nil)
