package mapgen

import (
	"github.com/rotisserie/eris"
)

// contiguityEpsilon absorbs floating-point drift when checking that adjacent
// bands meet exactly.
const contiguityEpsilon = 1e-9

var (
	ErrTableEmpty    = eris.New("biome table is empty")
	ErrTableStartGap = eris.New("biome table does not start at elevation 0.0")
	ErrTableEndGap   = eris.New("biome table does not end at elevation 1.0")
	ErrTableGap      = eris.New("biome table has a gap between entries")
	ErrBandInverted  = eris.New("biome table entry has min above max")
)

// BiomeBand names one terrain band of the unit elevation interval.
type BiomeBand struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Name string  `json:"name"`
}

// BiomeTable is an ordered partition of [0.0, 1.0] into named bands.
type BiomeTable []BiomeBand

// Validate checks that the table is a complete partition of the unit
// interval. It runs before any mutation; each failure mode is a distinct
// error naming the offending entries.
func (t BiomeTable) Validate() error {
	if len(t) == 0 {
		return eris.Wrap(ErrTableEmpty, "")
	}
	// Every band must be a forward interval. Together with the contiguity
	// check below this also forces the table to be sorted by min.
	for _, band := range t {
		if band.Max-band.Min < -contiguityEpsilon {
			return eris.Wrapf(ErrBandInverted, "entry %q spans %v to %v", band.Name, band.Min, band.Max)
		}
	}
	first := t[0]
	if first.Min > contiguityEpsilon || first.Min < -contiguityEpsilon {
		return eris.Wrapf(ErrTableStartGap, "first entry %q starts at %v", first.Name, first.Min)
	}
	for i := 0; i+1 < len(t); i++ {
		gap := t[i+1].Min - t[i].Max
		if gap > contiguityEpsilon || gap < -contiguityEpsilon {
			return eris.Wrapf(ErrTableGap, "between %q and %q", t[i].Name, t[i+1].Name)
		}
	}
	last := t[len(t)-1]
	if last.Max-1 > contiguityEpsilon || last.Max-1 < -contiguityEpsilon {
		return eris.Wrapf(ErrTableEndGap, "last entry %q ends at %v", last.Name, last.Max)
	}
	return nil
}

// Classify returns the index of the band covering the given elevation. Bands
// use inclusive-min/exclusive-max bounds except the last, which is inclusive
// on both ends so elevation 1.0 always classifies. The scan assumes a table
// that passed Validate.
func (t BiomeTable) Classify(elevation float64) (int, bool) {
	for i, band := range t {
		if i == len(t)-1 {
			if elevation >= band.Min && elevation <= band.Max {
				return i, true
			}
			continue
		}
		if elevation >= band.Min && elevation < band.Max {
			return i, true
		}
	}
	return 0, false
}
