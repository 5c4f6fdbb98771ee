package mapgen_test

import (
	"testing"

	"pkg.world.dev/hexforge/assert"
	"pkg.world.dev/hexforge/mapgen"
)

func TestNoiseParamsFromEnv(t *testing.T) {
	t.Setenv("HEXFORGE_NOISE_SEED", "1234567")
	t.Setenv("HEXFORGE_NOISE_OCTAVES", "3")
	t.Setenv("HEXFORGE_NOISE_PERSISTENCE", "0.75")

	params, err := mapgen.NoiseParamsFromEnv()
	assert.NilError(t, err)
	assert.Equal(t, uint64(1234567), params.Seed)
	assert.Equal(t, 3, params.Octaves)
	assert.Equal(t, 0.75, params.Persistence)

	// Variables left unset keep their defaults.
	defaults := mapgen.DefaultNoiseParams()
	assert.Equal(t, defaults.Frequency, params.Frequency)
	assert.Equal(t, defaults.Amplitude, params.Amplitude)
	assert.Equal(t, defaults.Lacunarity, params.Lacunarity)
}
