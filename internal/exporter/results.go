package exporter

import (
	"fmt"
	"path/filepath"
	"strconv"

	"dqcli/internal/checks"
	"dqcli/internal/dataframe"
)

// WriteResults writes the full check suite output under dir: one CSV per
// check plus a single workbook with one sheet per check.
func WriteResults(dir, workbook string, bom bool, res *checks.Results) error {
	cw := NewCSVWriter(dir, bom)
	wb := NewWorkbookWriter()

	missing := make([][2]string, len(res.Missing))
	for i, c := range res.Missing {
		missing[i] = [2]string{c.Column, strconv.Itoa(c.Count)}
	}
	types := make([][2]string, len(res.Types))
	for i, c := range res.Types {
		types[i] = [2]string{c.Column, c.Type}
	}
	products := make([][2]string, len(res.Products))
	for i, c := range res.Products {
		products[i] = [2]string{c.Value, strconv.Itoa(c.Count)}
	}

	mappings := []struct {
		name   string
		header [2]string
		rows   [][2]string
	}{
		{"missing_values", [2]string{"Column", "Missing"}, missing},
		{"data_types", [2]string{"Column", "Type"}, types},
		{"normalized_dates", [2]string{"Index", "TransactionDate"}, seriesRows(res.Dates, res.Index)},
		{"standardized_names", [2]string{"Index", "CustomerName"}, seriesRows(res.Names, res.Index)},
		{"unique_products", [2]string{"Product", "Count"}, products},
	}
	for _, m := range mappings {
		if err := cw.WriteMapping(m.name, m.header, m.rows); err != nil {
			return fmt.Errorf("export of %s failed: %w", m.name, err)
		}
		if err := wb.AddMappingSheet(m.name, m.header, m.rows); err != nil {
			return fmt.Errorf("export of %s failed: %w", m.name, err)
		}
	}

	subsets := []struct {
		name  string
		table *dataframe.Table
	}{
		{"outliers", res.Outliers},
		{"duplicates", res.Duplicates},
		{"invalid_prices", res.InvalidPrices},
		{"inconsistent_names", res.Inconsistent},
		{"multi_issue_rows", res.MultiIssue},
	}
	for _, s := range subsets {
		if s.table == nil {
			continue
		}
		if err := cw.WriteTable(s.name, s.table); err != nil {
			return fmt.Errorf("export of %s failed: %w", s.name, err)
		}
		if err := wb.AddTableSheet(s.name, s.table); err != nil {
			return fmt.Errorf("export of %s failed: %w", s.name, err)
		}
	}

	return wb.Save(filepath.Join(dir, workbook))
}

func seriesRows(s *dataframe.Series, index []int) [][2]string {
	if s == nil {
		return nil
	}
	rows := make([][2]string, s.Len())
	for i := range rows {
		label := i
		if i < len(index) {
			label = index[i]
		}
		rows[i] = [2]string{strconv.Itoa(label), s.At(i).Format()}
	}
	return rows
}
