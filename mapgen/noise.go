// Package mapgen is the procedural generation pipeline: deterministic
// multi-octave noise classified through a biome table into schema-conformant
// tile mutations, recorded as a single undo step.
package mapgen

import (
	"math"

	"pkg.world.dev/hexforge/board"
)

// NoiseParams controls the heightmap. Elevation is a pure function of
// (seed, position, params): the same inputs always produce the same value,
// independent of call order or prior map state.
type NoiseParams struct {
	Seed        uint64
	Octaves     int
	Frequency   float64
	Amplitude   float64
	Lacunarity  float64
	Persistence float64
}

func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Seed:        0,
		Octaves:     4,
		Frequency:   0.1,
		Amplitude:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
	}
}

// Elevation samples the fractal heightmap at a hex position, normalized into
// [0, 1]. Axial coordinates are skewed into cartesian space first so the
// noise field is isotropic across the hex grid.
func Elevation(p NoiseParams, at board.HexCoord) float64 {
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	x := float64(at.Q) + float64(at.R)/2
	y := float64(at.R) * math.Sqrt(3) / 2

	frequency := p.Frequency
	amplitude := p.Amplitude
	total := 0.0
	totalAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		total += valueNoise(p.Seed+uint64(i), x*frequency, y*frequency) * amplitude
		totalAmplitude += amplitude
		frequency *= p.Lacunarity
		amplitude *= p.Persistence
	}
	if totalAmplitude == 0 {
		return 0
	}
	elev := total / totalAmplitude
	return math.Min(1, math.Max(0, elev))
}

// valueNoise is lattice value noise: hash the four surrounding lattice points
// and blend with a smoothstep fade. Everything derives from the seed and the
// coordinates, nothing else.
func valueNoise(seed uint64, x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	xi := int64(x0)
	yi := int64(y0)
	v00 := latticeValue(seed, xi, yi)
	v10 := latticeValue(seed, xi+1, yi)
	v01 := latticeValue(seed, xi, yi+1)
	v11 := latticeValue(seed, xi+1, yi+1)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	return lerp(top, bottom, ty)
}

// latticeValue hashes a lattice point into [0, 1). The mixer is the
// splitmix64 finalizer, which gives uniform output for sequential inputs.
func latticeValue(seed uint64, x, y int64) float64 {
	h := seed
	h ^= uint64(x) * 0x9e3779b97f4a7c15
	h ^= uint64(y) * 0xbf58476d1ce4e5b9
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
