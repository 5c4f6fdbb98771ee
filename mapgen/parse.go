package mapgen

import (
	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"
)

// Biome tables are editable as plain text, one band per line:
//
//	0.0 0.2 "Deep Water"
//	0.2 0.5 Plains
//	0.5 1.0 Mountains
//
// Parsing produces an ordinary BiomeTable; Validate still decides whether the
// result is usable.

type biomeEntry struct {
	Min  float64 `parser:"@(Float|Int)"`
	Max  float64 `parser:"@(Float|Int)"`
	Name string  `parser:"@(String|Ident)"`
}

type biomeScript struct {
	Entries []*biomeEntry `parser:"@@*"`
}

var biomeParser = participle.MustBuild[biomeScript](participle.Unquote("String"))

// ParseTable parses the biome table text format.
func ParseTable(src string) (BiomeTable, error) {
	script, err := biomeParser.ParseString("", src)
	if err != nil {
		return nil, eris.Wrap(err, "invalid biome table")
	}
	table := make(BiomeTable, 0, len(script.Entries))
	for _, entry := range script.Entries {
		table = append(table, BiomeBand{Min: entry.Min, Max: entry.Max, Name: entry.Name})
	}
	return table, nil
}
