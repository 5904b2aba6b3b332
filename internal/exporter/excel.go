package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dqcli/internal/dataframe"
)

// WorkbookWriter accumulates check results as sheets of one Excel
// workbook.
type WorkbookWriter struct {
	f      *excelize.File
	sheets int
}

// NewWorkbookWriter creates an empty workbook.
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{f: excelize.NewFile()}
}

// AddTableSheet adds a sheet holding a row subset, with the original row
// positions in an Index column.
func (w *WorkbookWriter) AddTableSheet(name string, t *dataframe.Table) error {
	header := append([]string{"Index"}, t.ColumnNames()...)
	rows := make([][]string, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(t.Index()[i]))
		for _, v := range t.Row(i) {
			row = append(row, v.Format())
		}
		rows = append(rows, row)
	}
	return w.addSheet(name, header, rows)
}

// AddMappingSheet adds a sheet of label/value pairs.
func (w *WorkbookWriter) AddMappingSheet(name string, header [2]string, pairs [][2]string) error {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	return w.addSheet(name, []string{header[0], header[1]}, rows)
}

func (w *WorkbookWriter) addSheet(name string, header []string, rows [][]string) error {
	// The first added sheet replaces the default one excelize creates.
	if w.sheets == 0 {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to name sheet %s: %w", name, err)
		}
	} else {
		if _, err := w.f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}
	w.sheets++

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := w.f.SetSheetRow(name, "A1", &cells); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	for i, row := range rows {
		cells = make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d of %s: %w", i+2, name, err)
		}
		if err := w.f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
		}
	}
	return nil
}

// Save writes the workbook to path, creating the directory if needed.
func (w *WorkbookWriter) Save(path string) error {
	if w.sheets == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	slog.Info("Wrote Excel report",
		slog.String("path", path),
		slog.Int("sheets", w.sheets))
	return w.f.Close()
}
