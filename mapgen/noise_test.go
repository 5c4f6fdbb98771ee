package mapgen_test

import (
	"testing"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/board"
	"pkg.world.dev/hexforge/mapgen"
)

func TestElevationIsDeterministic(t *testing.T) {
	params := mapgen.DefaultNoiseParams()
	params.Seed = 42
	for q := -5; q < 5; q++ {
		for r := -5; r < 5; r++ {
			at := board.HexCoord{Q: q, R: r}
			first := mapgen.Elevation(params, at)
			second := mapgen.Elevation(params, at)
			assert.Equal(t, first, second, "at %+v", at)
		}
	}
}

func TestElevationStaysInUnitInterval(t *testing.T) {
	params := mapgen.DefaultNoiseParams()
	params.Seed = 7
	params.Octaves = 6
	for q := -20; q < 20; q++ {
		for r := -20; r < 20; r++ {
			elev := mapgen.Elevation(params, board.HexCoord{Q: q, R: r})
			assert.True(t, elev >= 0 && elev <= 1, "elevation %v at %d,%d", elev, q, r)
		}
	}
}

func TestElevationDependsOnSeed(t *testing.T) {
	a := mapgen.DefaultNoiseParams()
	a.Seed = 1
	b := mapgen.DefaultNoiseParams()
	b.Seed = 2

	differs := false
	for q := 0; q < 10 && !differs; q++ {
		for r := 0; r < 10 && !differs; r++ {
			at := board.HexCoord{Q: q, R: r}
			if mapgen.Elevation(a, at) != mapgen.Elevation(b, at) {
				differs = true
			}
		}
	}
	assert.True(t, differs)
}

func TestElevationHandlesDegenerateOctaves(t *testing.T) {
	params := mapgen.DefaultNoiseParams()
	params.Octaves = 0
	elev := mapgen.Elevation(params, board.HexCoord{Q: 3, R: 3})
	assert.True(t, elev >= 0 && elev <= 1)
}
