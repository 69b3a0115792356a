// Package ingest reads tabular grow exports from disk and feeds them
// through the core normalizer. CSV goes straight to the hand-rolled
// tokenizer; XLSX workbooks are flattened to the same row grid first,
// so both formats share every downstream rule (header aliases, species
// canonicalization, grow deduplication, ID derivation).
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mrlilholt/mycojournal/internal/core"
)

// StateFromFile builds full application state from a .csv or .xlsx
// export, dispatching on the file extension.
func StateFromFile(path string, current *core.State) (*core.State, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		grid, err := ReadXLSX(path)
		if err != nil {
			return nil, err
		}
		return core.BuildStateFromRows(grid, current)
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return core.BuildStateFromCSV(string(raw), current)
	}
}

// ReadXLSX flattens the first sheet of a workbook into a row grid
// shaped like ParseCSV output. Cell values come back as display
// strings, which is what the normalizer's per-cell parsers expect.
func ReadXLSX(path string) ([][]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
