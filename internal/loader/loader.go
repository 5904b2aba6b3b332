// Package loader builds the transaction table from the embedded sample
// dataset or from a CSV/Excel file with the same six columns.
package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	"dqcli/internal/dataframe"
	"dqcli/pkg/contracts/domain"
)

var validate = validator.New()

// Load reads transactions from path and builds the table. An empty path
// selects the built-in sample dataset. The file format is chosen by
// extension: .csv or .xlsx.
func Load(path string) (*dataframe.Table, error) {
	if path == "" {
		slog.Info("Using built-in sample dataset")
		return FromTransactions(domain.SampleTransactions())
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadExcel(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
}

// FromTransactions assembles the table from records. Nil pointer fields
// become null cells; TransactionDate stays a text column until the
// normalization check converts it.
func FromTransactions(txs []domain.Transaction) (*dataframe.Table, error) {
	n := len(txs)
	ids := make([]dataframe.Value, n)
	names := make([]dataframe.Value, n)
	products := make([]dataframe.Value, n)
	prices := make([]dataframe.Value, n)
	quantities := make([]dataframe.Value, n)
	dates := make([]dataframe.Value, n)

	for i, tx := range txs {
		if err := validate.Struct(tx); err != nil {
			return nil, fmt.Errorf("invalid transaction at row %d: %w", i, err)
		}
		ids[i] = dataframe.Int(tx.TransactionID)
		names[i] = optString(tx.CustomerName)
		products[i] = dataframe.String(tx.Product)
		prices[i] = optFloat(tx.Price)
		quantities[i] = optInt(tx.Quantity)
		dates[i] = optString(tx.TransactionDate)
	}

	return dataframe.New(
		dataframe.NewSeries(domain.ColTransactionID, ids...),
		dataframe.NewSeries(domain.ColCustomerName, names...),
		dataframe.NewSeries(domain.ColProduct, products...),
		dataframe.NewSeries(domain.ColPrice, prices...),
		dataframe.NewSeries(domain.ColQuantity, quantities...),
		dataframe.NewSeries(domain.ColTransactionDate, dates...),
	)
}

// LoadCSV reads a transaction dataset from a CSV file. The first row must
// be the canonical header; empty cells become nulls.
func LoadCSV(path string) (*dataframe.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return fromRows(path, rows)
}

// LoadExcel reads a transaction dataset from the first sheet of an Excel
// workbook, with the same layout as the CSV format.
func LoadExcel(path string) (*dataframe.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return fromRows(path, rows)
}

func fromRows(path string, rows [][]string) (*dataframe.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	txs := make([]domain.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		tx, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: %w", path, i+2, err)
		}
		txs = append(txs, tx)
	}

	slog.Info("Loaded dataset",
		slog.String("path", path),
		slog.Int("rows", len(txs)))
	return FromTransactions(txs)
}

func checkHeader(header []string) error {
	want := domain.ColumnNames()
	if len(header) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(header))
	}
	for i, name := range want {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("expected column %d to be %s, got %q", i+1, name, header[i])
		}
	}
	return nil
}

func parseRow(row []string) (domain.Transaction, error) {
	var tx domain.Transaction

	// Excel trims trailing empty cells from a row. Text cells keep
	// their raw spacing so the standardization check still has the
	// defect to fix; only emptiness tests and numeric parses trim.
	cells := make([]string, len(domain.ColumnNames()))
	for i := range cells {
		if i < len(row) {
			cells[i] = row[i]
		}
	}
	empty := func(i int) bool { return strings.TrimSpace(cells[i]) == "" }

	id, err := strconv.ParseInt(strings.TrimSpace(cells[0]), 10, 64)
	if err != nil {
		return tx, fmt.Errorf("invalid TransactionID %q: %w", cells[0], err)
	}
	tx.TransactionID = id

	if !empty(1) {
		name := cells[1]
		tx.CustomerName = &name
	}
	tx.Product = strings.TrimSpace(cells[2])

	if !empty(3) {
		price, err := strconv.ParseFloat(strings.TrimSpace(cells[3]), 64)
		if err != nil {
			return tx, fmt.Errorf("invalid Price %q: %w", cells[3], err)
		}
		tx.Price = &price
	}

	if !empty(4) {
		qty, err := strconv.ParseInt(strings.TrimSpace(cells[4]), 10, 64)
		if err != nil {
			return tx, fmt.Errorf("invalid Quantity %q: %w", cells[4], err)
		}
		tx.Quantity = &qty
	}

	if !empty(5) {
		date := strings.TrimSpace(cells[5])
		tx.TransactionDate = &date
	}
	return tx, nil
}

func optString(s *string) dataframe.Value {
	if s == nil {
		return dataframe.Null()
	}
	return dataframe.String(*s)
}

func optInt(i *int64) dataframe.Value {
	if i == nil {
		return dataframe.Null()
	}
	return dataframe.Int(*i)
}

func optFloat(f *float64) dataframe.Value {
	if f == nil {
		return dataframe.Null()
	}
	return dataframe.Float(*f)
}
