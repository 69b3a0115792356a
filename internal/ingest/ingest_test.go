package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestStateFromFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	csv := "Date,Species,Block\n" +
		"2024-03-01,Pleurotus ostreatus (Blue Oyster),A\n" +
		"2024-03-02,Pleurotus ostreatus (Blue Oyster),A\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := StateFromFile(path, nil)
	if err != nil {
		t.Fatalf("StateFromFile: %v", err)
	}
	if len(state.Grows) != 1 || len(state.Logs) != 2 {
		t.Errorf("grows=%d logs=%d, want 1/2", len(state.Grows), len(state.Logs))
	}
}

func TestStateFromFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	cells := [][]interface{}{
		{"Date", "Species", "Block", "Temp (F)"},
		{"2024-03-01", "Lentinula edodes (Shiitake)", "B", 66},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := book.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := book.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	state, err := StateFromFile(path, nil)
	if err != nil {
		t.Fatalf("StateFromFile: %v", err)
	}
	if len(state.Grows) != 1 || len(state.Logs) != 1 {
		t.Fatalf("grows=%d logs=%d, want 1/1", len(state.Grows), len(state.Logs))
	}
	if state.Grows[0].Name != "Shiitake Block B" {
		t.Errorf("Name = %q", state.Grows[0].Name)
	}
	if state.Logs[0].Temp == nil || *state.Logs[0].Temp != 66 {
		t.Errorf("Temp = %v, want 66", state.Logs[0].Temp)
	}
}

func TestStateFromFileMissing(t *testing.T) {
	if _, err := StateFromFile(filepath.Join(t.TempDir(), "nope.csv"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}
