package mapgen_test

import (
	"testing"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/mapgen"
)

func TestValidateAcceptsCompletePartition(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.2, Name: "Water"},
		{Min: 0.2, Max: 0.4, Name: "Plains"},
		{Min: 0.4, Max: 1.0, Name: "Hills"},
	}
	assert.NilError(t, table.Validate())
}

func TestValidateRejectsEmptyTable(t *testing.T) {
	assert.ErrorIs(t, mapgen.BiomeTable{}.Validate(), mapgen.ErrTableEmpty)
}

func TestValidateRejectsStartGap(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.2, Max: 0.4, Name: "Plains"},
		{Min: 0.4, Max: 1.0, Name: "Hills"},
	}
	err := table.Validate()
	assert.ErrorIs(t, err, mapgen.ErrTableStartGap)
	assert.ErrorContains(t, err, "Plains")
}

func TestValidateRejectsEndGap(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.5, Name: "Water"},
		{Min: 0.5, Max: 0.9, Name: "Hills"},
	}
	err := table.Validate()
	assert.ErrorIs(t, err, mapgen.ErrTableEndGap)
	assert.ErrorContains(t, err, "Hills")
}

func TestValidateRejectsGapBetweenEntries(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.4, Name: "A"},
		{Min: 0.5, Max: 1.0, Name: "B"},
	}
	err := table.Validate()
	assert.ErrorIs(t, err, mapgen.ErrTableGap)
	assert.ErrorContains(t, err, "A")
	assert.ErrorContains(t, err, "B")
}

func TestValidateRejectsInvertedBand(t *testing.T) {
	// Start, end and contiguity all line up here; only the per-band bounds
	// check catches the inverted middle entry.
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.5, Name: "A"},
		{Min: 0.5, Max: 0.2, Name: "B"},
		{Min: 0.2, Max: 1.0, Name: "C"},
	}
	err := table.Validate()
	assert.ErrorIs(t, err, mapgen.ErrBandInverted)
	assert.ErrorContains(t, err, "B")
}

func TestValidateRejectsOverlap(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.6, Name: "Low"},
		{Min: 0.4, Max: 1.0, Name: "High"},
	}
	assert.ErrorIs(t, table.Validate(), mapgen.ErrTableGap)
}

func TestClassifyBoundaries(t *testing.T) {
	table := mapgen.BiomeTable{
		{Min: 0.0, Max: 0.5, Name: "Low"},
		{Min: 0.5, Max: 1.0, Name: "High"},
	}
	testCases := []struct {
		elevation float64
		want      int
	}{
		{0.0, 0},
		{0.4999, 0},
		{0.5, 1}, // min bound is inclusive
		{0.9999, 1},
		{1.0, 1}, // last entry is inclusive on both ends
	}
	for _, tc := range testCases {
		got, ok := table.Classify(tc.elevation)
		assert.True(t, ok, "elevation %v", tc.elevation)
		assert.Equal(t, tc.want, got, "elevation %v", tc.elevation)
	}

	_, ok := table.Classify(1.5)
	assert.False(t, ok)
}

func TestParseTable(t *testing.T) {
	src := `
0.0 0.2 "Deep Water"
0.2 0.5 Plains
0.5 1.0 Mountains
`
	table, err := mapgen.ParseTable(src)
	assert.NilError(t, err)
	assert.Len(t, table, 3)
	assert.Equal(t, "Deep Water", table[0].Name)
	assert.Equal(t, 0.2, table[1].Min)
	assert.Equal(t, "Mountains", table[2].Name)
	assert.NilError(t, table.Validate())
}

func TestParseTableRejectsGarbage(t *testing.T) {
	_, err := mapgen.ParseTable("not a table at all !!!")
	assert.ErrorContains(t, err, "invalid biome table")
}
