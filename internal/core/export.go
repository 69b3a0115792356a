package core

import (
	"regexp"
	"strconv"
	"strings"
)

// Column order of a per-grow export. Log rows and harvest rows share
// one grid; columns that do not apply to a row type stay empty.
var exportHeaders = []string{
	"type", "timestamp", "block", "treatment", "growth_mm_day",
	"flush_height_mm", "temp", "humidity", "co2", "fae", "lightHours",
	"surfaceCondition", "flushNumber", "weight", "quality", "notes",
}

// ExportGrowCSV renders one grow's logs and harvests as CSV text with
// RFC 4180 quoting. It produces text only; where that text goes is the
// caller's concern.
func ExportGrowCSV(grow *Grow, logs []Log, harvests []Harvest) string {
	rows := [][]string{exportHeaders}

	for _, l := range LogsForGrow(logs, grow.ID) {
		rows = append(rows, []string{
			"log",
			l.Timestamp.UTC().Format("2006-01-02 15:04"),
			l.Block,
			l.Treatment,
			numCell(l.GrowthMmPerDay),
			numCell(l.FlushHeightMm),
			numCell(l.Temp),
			numCell(l.Humidity),
			numCell(l.CO2),
			l.FAE,
			numCell(l.LightHours),
			l.SurfaceCondition,
			"", "", "",
			sanitizeNotes(l.Notes),
		})
	}
	for _, h := range HarvestsForGrow(harvests, grow.ID) {
		rows = append(rows, []string{
			"harvest",
			h.Date.UTC().Format("2006-01-02"),
			"", "", "", "", "", "", "", "", "", "",
			strconv.Itoa(h.FlushNumber),
			numCell(h.Weight),
			string(h.Quality),
			sanitizeNotes(h.Notes),
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = wrapCSVCell(cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// wrapCSVCell quotes a cell when it contains a comma, quote or
// newline, doubling embedded quotes per RFC 4180.
func wrapCSVCell(cell string) string {
	if strings.ContainsAny(cell, ",\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// sanitizeNotes collapses runs of whitespace so multi-line notes stay
// on one export row unquoted where possible.
func sanitizeNotes(notes string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(notes, " "))
}
