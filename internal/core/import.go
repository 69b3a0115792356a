package core

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Hard failure modes of ingestion. Everything else degrades per cell
// or per row without aborting the import.
var (
	ErrNoDataRows     = errors.New("CSV has no data rows")
	ErrMissingHeaders = errors.New("CSV headers missing Date or Species")
)

// headerAliases maps normalized header cells (lowercased, all
// non-alphanumerics stripped) to canonical field names. The grower's
// spreadsheet exports carry verbose headers like
// "Growth mm/day (from block outwards) (mm)" and "Rel Humidity %";
// normalization makes the lookup casing- and punctuation-insensitive.
var headerAliases = map[string]string{
	"date":                           "date",
	"species":                        "species",
	"treatment":                      "treatment",
	"block":                          "block",
	"growthmmdayfromblockoutwardsmm": "growth",
	"tempf":                          "temp",
	"relhumidity":                    "humidity",
	"co2ppm":                         "co2",
	"notes":                          "notes",
	"heightofflushmm":                "flushHeight",
}

// normalizeHeader lowercases a header cell and strips every character
// outside [a-z0-9].
func normalizeHeader(cell string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(cell) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Accepted per-cell date layouts. Layouts without a zone parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDateCell parses a date cell, coercing the common
// "YYYY-MM-DD HH:MM" spreadsheet form into ISO shape by replacing the
// first space with a T. Reports false for anything unparseable.
func parseDateCell(cell string) (time.Time, bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(trimmed, ' '); i >= 0 {
		trimmed = trimmed[:i] + "T" + trimmed[i+1:]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseNumberCell parses a numeric cell. Empty, unparseable, and
// non-finite values all become nil; bad numeric input never aborts a
// row.
func parseNumberCell(cell string) *float64 {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// BuildStateFromCSV tokenizes raw CSV text and reconstructs full
// application state from it. See BuildStateFromRows for the
// reconstruction rules.
func BuildStateFromCSV(text string, current *State) (*State, error) {
	return BuildStateFromRows(ParseCSV(text), current)
}

// BuildStateFromRows reconstructs Grow and Log entities from a parsed
// row grid plus the current application state.
//
// The first non-blank row is the header; it must contain cells
// mappable to Date and Species or the import fails with
// ErrMissingHeaders. Each data row yields one Log. Rows sharing a
// canonical species and block collapse into a single Grow whose
// StartDate tracks the earliest timestamp seen in the group. Grow and
// Log IDs are content-derived, so importing the same file twice yields
// the same ID set.
//
// Rows with an unparseable date or a blank species are dropped
// silently. Events and Harvests are always empty: the tabular format
// carries no such data. Settings are carried over from current state
// with the species list extended by every imported species and the
// built-in preset table overlaid with user-defined presets.
func BuildStateFromRows(grid [][]string, current *State) (*State, error) {
	rows := dropBlankRows(grid)
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	headerIdx := map[string]int{}
	for i, cell := range rows[0] {
		field, ok := headerAliases[normalizeHeader(cell)]
		if !ok {
			continue
		}
		// First occurrence wins for duplicate headers.
		if _, seen := headerIdx[field]; !seen {
			headerIdx[field] = i
		}
	}
	if _, ok := headerIdx["date"]; !ok {
		return nil, ErrMissingHeaders
	}
	if _, ok := headerIdx["species"]; !ok {
		return nil, ErrMissingHeaders
	}

	growsByKey := map[string]*Grow{}
	var keyOrder []string
	var logs []Log

	for rowIndex, row := range rows[1:] {
		cell := func(field string) string {
			pos, ok := headerIdx[field]
			if !ok || pos >= len(row) {
				return ""
			}
			return row[pos]
		}

		timestamp, ok := parseDateCell(cell("date"))
		species := CanonicalSpecies(cell("species"))
		if !ok || species == "" {
			continue
		}

		block := strings.TrimSpace(cell("block"))
		treatment := strings.TrimSpace(cell("treatment"))

		key := GrowKey(species, block)
		grow := growsByKey[key]
		if grow == nil {
			name := CommonName(species)
			if block != "" {
				name = name + " Block " + block
			}
			tags := []string{}
			if treatment != "" {
				tags = []string{treatment}
			}
			grow = &Grow{
				ID:        GrowID(key),
				Name:      name,
				Species:   species,
				Method:    "Block",
				StartDate: timestamp,
				Phase:     PhaseFruiting,
				Status:    StatusActive,
				Targets:   SpeciesPresets[species],
				Tags:      tags,
				CreatedAt: timestamp,
				UpdatedAt: timestamp,
			}
			growsByKey[key] = grow
			keyOrder = append(keyOrder, key)
		} else if timestamp.Before(grow.StartDate) {
			grow.StartDate = timestamp
			grow.CreatedAt = timestamp
		}

		logs = append(logs, Log{
			ID:             LogID(grow.ID, timestamp, rowIndex),
			GrowID:         grow.ID,
			Timestamp:      timestamp,
			Temp:           parseNumberCell(cell("temp")),
			Humidity:       parseNumberCell(cell("humidity")),
			CO2:            parseNumberCell(cell("co2")),
			GrowthMmPerDay: parseNumberCell(cell("growth")),
			FlushHeightMm:  parseNumberCell(cell("flushHeight")),
			Block:          block,
			Treatment:      treatment,
			Notes:          strings.TrimSpace(cell("notes")),
			CreatedAt:      timestamp,
		})
	}

	grows := make([]Grow, 0, len(keyOrder))
	for _, key := range keyOrder {
		grows = append(grows, *growsByKey[key])
	}

	var settings Settings
	if current != nil {
		settings = current.Settings
	}
	settings.SpeciesList = mergeSpeciesList(settings.SpeciesList, grows)
	settings.Presets = mergePresets(settings.Presets)

	return &State{
		Grows:    grows,
		Logs:     logs,
		Events:   []Event{},
		Harvests: []Harvest{},
		Settings: settings,
	}, nil
}

// dropBlankRows removes rows whose cells are all empty or whitespace.
func dropBlankRows(grid [][]string) [][]string {
	rows := make([][]string, 0, len(grid))
	for _, row := range grid {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows
}

// mergeSpeciesList unions the current list, the built-in list, and the
// imported species, sorted.
func mergeSpeciesList(current []string, grows []Grow) []string {
	seen := map[string]bool{}
	var merged []string
	add := func(species string) {
		if species != "" && !seen[species] {
			seen[species] = true
			merged = append(merged, species)
		}
	}
	for _, s := range current {
		add(s)
	}
	for _, s := range SpeciesList {
		add(s)
	}
	for _, g := range grows {
		add(g.Species)
	}
	sort.Strings(merged)
	return merged
}

// mergePresets overlays user-defined presets on the built-in table;
// user entries win.
func mergePresets(user map[string]Targets) map[string]Targets {
	merged := make(map[string]Targets, len(SpeciesPresets)+len(user))
	for species, targets := range SpeciesPresets {
		merged[species] = targets
	}
	for species, targets := range user {
		merged[species] = targets
	}
	return merged
}
