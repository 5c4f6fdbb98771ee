package log_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/log"
	"pkg.world.dev/hexforge/types"
)

type fakeTarget struct {
	entityTypes []types.EntityType
	enums       []types.EnumDefinition
	structs     []types.StructDefinition
}

func (f fakeTarget) RegisteredEntityTypes() []types.EntityType   { return f.entityTypes }
func (f fakeTarget) RegisteredEnums() []types.EnumDefinition     { return f.enums }
func (f fakeTarget) RegisteredStructs() []types.StructDefinition { return f.structs }

func TestEntityTypesLogsEveryType(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	target := fakeTarget{
		entityTypes: []types.EntityType{
			{ID: types.NewIdentity(), Name: "Hills", Role: types.RoleBoardPosition},
			{ID: types.NewIdentity(), Name: "Infantry", Role: types.RoleToken},
		},
	}

	log.EntityTypes(&logger, target, zerolog.InfoLevel)
	out := buf.String()
	assert.Contains(t, out, `"total_entity_types":2`)
	assert.Contains(t, out, `"Hills"`)
	assert.Contains(t, out, `"board_position"`)
	assert.Contains(t, out, `"Infantry"`)
}

func TestSchemaLogsCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	target := fakeTarget{
		enums:   []types.EnumDefinition{{ID: types.NewIdentity(), Name: "Weather"}},
		structs: []types.StructDefinition{{ID: types.NewIdentity(), Name: "Stats"}},
	}

	log.Schema(&logger, target, zerolog.InfoLevel)
	out := buf.String()
	assert.Contains(t, out, `"total_entity_types":0`)
	assert.Contains(t, out, `"total_enums":1`)
	assert.Contains(t, out, `"total_structs":1`)
}
