package mapgen

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// noiseEnv mirrors NoiseParams as environment variables, e.g.
// HEXFORGE_NOISE_SEED or HEXFORGE_NOISE_OCTAVES.
type noiseEnv struct {
	Seed        uint64  `config:"HEXFORGE_NOISE_SEED"`
	Octaves     int     `config:"HEXFORGE_NOISE_OCTAVES"`
	Frequency   float64 `config:"HEXFORGE_NOISE_FREQUENCY"`
	Amplitude   float64 `config:"HEXFORGE_NOISE_AMPLITUDE"`
	Lacunarity  float64 `config:"HEXFORGE_NOISE_LACUNARITY"`
	Persistence float64 `config:"HEXFORGE_NOISE_PERSISTENCE"`
}

// NoiseParamsFromEnv returns the default noise parameters overlaid with any
// values set in the environment.
func NoiseParamsFromEnv() (NoiseParams, error) {
	var env noiseEnv
	if err := config.FromEnv().To(&env); err != nil {
		return NoiseParams{}, eris.Wrap(err, "failed to load noise params from env")
	}
	params := DefaultNoiseParams()
	if env.Seed != 0 {
		params.Seed = env.Seed
	}
	if env.Octaves != 0 {
		params.Octaves = env.Octaves
	}
	if env.Frequency != 0 {
		params.Frequency = env.Frequency
	}
	if env.Amplitude != 0 {
		params.Amplitude = env.Amplitude
	}
	if env.Lacunarity != 0 {
		params.Lacunarity = env.Lacunarity
	}
	if env.Persistence != 0 {
		params.Persistence = env.Persistence
	}
	return params, nil
}
