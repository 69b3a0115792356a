package core

import (
	"regexp"
	"strings"
)

// SpeciesList is the built-in set of known species. Settings keep the
// union of this list and anything the user or an import adds.
var SpeciesList = []string{
	"Pleurotus ostreatus (Snow Oyster)",
	"Pholiota adiposa (Chestnut)",
	"Hericium erinaceus (Lion's Mane)",
	"Lentinula edodes (Shiitake)",
	"Pleurotus citrinolileatus (Golden Oyster)",
	"Pleurotus djamor (Pink Oyster)",
	"Pleurotus ostreatus (Blue Oyster)",
	"Pleurotus pulmonarius (Italian Oyster)",
	"Pleurotus sp. (Black King)",
	"King Trumpet (Pleurotus eryngii)",
	"Cyclocybe aegerita (Pioppino)",
	"Pholiota microspora (Nameko)",
	"Ganoderma lucidum (Reishi)",
}

// SpeciesPresets maps a species to its recommended target ranges.
// Temperatures are Fahrenheit. Reishi intentionally carries all-nil
// targets: it is in the list but has no established preset.
var SpeciesPresets = map[string]Targets{
	"Pleurotus ostreatus (Blue Oyster)": {
		TempMin: Float(55), TempMax: Float(75),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Pleurotus pulmonarius (Italian Oyster)": {
		TempMin: Float(65), TempMax: Float(75),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(800),
	},
	"Pleurotus citrinolileatus (Golden Oyster)": {
		TempMin: Float(65), TempMax: Float(80),
		HumidityMin: Float(88), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Pleurotus djamor (Pink Oyster)": {
		TempMin: Float(70), TempMax: Float(80),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Pleurotus ostreatus (Snow Oyster)": {
		TempMin: Float(45), TempMax: Float(65),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Hericium erinaceus (Lion's Mane)": {
		TempMin: Float(55), TempMax: Float(70),
		HumidityMin: Float(80), HumidityMax: Float(90),
		CO2Max: Float(1000),
	},
	"Pleurotus sp. (Black King)": {
		TempMin: Float(55), TempMax: Float(70),
		HumidityMin: Float(80), HumidityMax: Float(90),
		CO2Max: Float(800),
	},
	"King Trumpet (Pleurotus eryngii)": {
		TempMin: Float(50), TempMax: Float(65),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(2000),
	},
	"Pholiota adiposa (Chestnut)": {
		TempMin: Float(60), TempMax: Float(70),
		HumidityMin: Float(88), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Lentinula edodes (Shiitake)": {
		TempMin: Float(55), TempMax: Float(70),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Cyclocybe aegerita (Pioppino)": {
		TempMin: Float(55), TempMax: Float(65),
		HumidityMin: Float(85), HumidityMax: Float(95),
		CO2Max: Float(2000),
	},
	"Pholiota microspora (Nameko)": {
		TempMin: Float(45), TempMax: Float(65),
		HumidityMin: Float(88), HumidityMax: Float(95),
		CO2Max: Float(1000),
	},
	"Ganoderma lucidum (Reishi)": {},
}

// speciesAliases maps lowercased vendor spellings to the canonical
// form used by SpeciesList and SpeciesPresets. The canonical
// "citrinolileatus" spelling is what the preset table carries, so the
// correctly spelled variant must alias to it, not the other way round.
var speciesAliases = map[string]string{
	"pleurotus citrinopileatus (golden oyster)": "Pleurotus citrinolileatus (Golden Oyster)",
}

// CanonicalSpecies trims the raw species cell and rewrites known
// aliases to their canonical form. Unknown species pass through
// unchanged; lookup is case-insensitive.
func CanonicalSpecies(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := speciesAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

var commonNameRe = regexp.MustCompile(`\(([^)]+)\)`)

// CommonName extracts the parenthetical common name from a canonical
// species string, e.g. "Blue Oyster" from
// "Pleurotus ostreatus (Blue Oyster)". Falls back to the full species
// string when no parenthetical exists.
func CommonName(species string) string {
	if m := commonNameRe.FindStringSubmatch(species); m != nil {
		return m[1]
	}
	return species
}
