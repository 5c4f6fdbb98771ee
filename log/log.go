// Package log holds zerolog helpers for describing the session's registered
// schema in structured log events.
package log

import (
	"github.com/rs/zerolog"

	"pkg.world.dev/hexforge/types"
)

type Loggable interface {
	RegisteredEntityTypes() []types.EntityType
	RegisteredEnums() []types.EnumDefinition
	RegisteredStructs() []types.StructDefinition
}

func loadEntityTypeIntoArrayLogger(et types.EntityType, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("id", et.ID.String())
	dictLogger = dictLogger.Str("name", et.Name)
	dictLogger = dictLogger.Str("role", string(et.Role))
	dictLogger = dictLogger.Int("properties", len(et.Properties))
	return arrayLogger.Dict(dictLogger)
}

func loadEntityTypesToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	entityTypes := target.RegisteredEntityTypes()
	zeroLoggerEvent.Int("total_entity_types", len(entityTypes))
	arrayLogger := zerolog.Arr()
	for _, et := range entityTypes {
		arrayLogger = loadEntityTypeIntoArrayLogger(et, arrayLogger)
	}
	return zeroLoggerEvent.Array("entity_types", arrayLogger)
}

// EntityTypes logs every registered entity type.
func EntityTypes(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadEntityTypesToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Schema logs a summary of all registered definitions.
func Schema(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadEntityTypesToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Int("total_enums", len(target.RegisteredEnums()))
	zeroLoggerEvent.Int("total_structs", len(target.RegisteredStructs()))
	zeroLoggerEvent.Send()
}

// Tile logs one tile write.
func Tile(logger *zerolog.Logger, level zerolog.Level, typeID types.Identity, props int) {
	logger.WithLevel(level).
		Str("type", typeID.String()).
		Int("props", props).
		Msg("tile written")
}
