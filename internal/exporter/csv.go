package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dqcli/internal/dataframe"
)

// CSVWriter writes check results as CSV files under one directory.
type CSVWriter struct {
	dir string
	bom bool
}

// NewCSVWriter creates a CSV writer rooted at dir. When bom is set, each
// file starts with a UTF-8 BOM so Excel opens it correctly.
func NewCSVWriter(dir string, bom bool) *CSVWriter {
	return &CSVWriter{dir: dir, bom: bom}
}

// WriteTable writes a row subset as <name>.csv with an Index column
// holding the original row positions.
func (w *CSVWriter) WriteTable(name string, t *dataframe.Table) error {
	header := append([]string{"Index"}, t.ColumnNames()...)
	records := make([][]string, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		record := make([]string, 0, len(header))
		record = append(record, strconv.Itoa(t.Index()[i]))
		for _, v := range t.Row(i) {
			record = append(record, v.Format())
		}
		records = append(records, record)
	}
	return w.write(name, header, records)
}

// WriteMapping writes label/value pairs as <name>.csv.
func (w *CSVWriter) WriteMapping(name string, header [2]string, rows [][2]string) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r[0], r[1]}
	}
	return w.write(name, []string{header[0], header[1]}, records)
}

func (w *CSVWriter) write(name string, header []string, records [][]string) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(w.dir, name+".csv")

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if w.bom {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	slog.Debug("Wrote CSV report",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}
