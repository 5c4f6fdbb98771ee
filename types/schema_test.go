package types_test

import (
	"testing"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/types"
)

func TestSchemaSampleReflectsDefaults(t *testing.T) {
	et := types.EntityType{
		ID:   types.NewIdentity(),
		Name: "Forest",
		Role: types.RoleBoardPosition,
		Properties: []types.PropertyDefinition{
			{ID: types.NewIdentity(), Name: "movement_cost", Type: types.IntRangeType(1, 4)},
			{ID: types.NewIdentity(), Name: "blocks_sight", Type: types.BoolType()},
		},
	}
	sample, err := types.SchemaSample(et, fakeStructs{})
	assert.NilError(t, err)
	assert.Contains(t, string(sample), "movement_cost")
	assert.Contains(t, string(sample), "blocks_sight")

	same, err := types.SameSchema(sample, sample)
	assert.NilError(t, err)
	assert.True(t, same)
}

func TestSameSchemaDetectsDifference(t *testing.T) {
	et := types.EntityType{
		ID:         types.NewIdentity(),
		Name:       "Plains",
		Role:       types.RoleBoardPosition,
		Properties: []types.PropertyDefinition{{ID: types.NewIdentity(), Name: "cover", Type: types.IntType()}},
	}
	before, err := types.SchemaSample(et, fakeStructs{})
	assert.NilError(t, err)

	et.Properties = append(et.Properties, types.PropertyDefinition{
		ID: types.NewIdentity(), Name: "passable", Type: types.BoolType(),
	})
	after, err := types.SchemaSample(et, fakeStructs{})
	assert.NilError(t, err)

	same, err := types.SameSchema(before, after)
	assert.NilError(t, err)
	assert.False(t, same)
}

func TestSerializeDefinitionSchema(t *testing.T) {
	bz, err := types.SerializeDefinitionSchema()
	assert.NilError(t, err)
	assert.Contains(t, string(bz), "properties")
}
