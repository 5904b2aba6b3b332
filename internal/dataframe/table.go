package dataframe

import (
	"fmt"
)

// Table is an ordered collection of equal-length columns. Row index labels
// survive row selection, so a filtered subset reports the original row
// positions of its members.
type Table struct {
	columns []*Series
	index   []int
}

// New builds a table from columns, which must all have the same length.
func New(columns ...*Series) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}
	n := columns[0].Len()
	for _, c := range columns[1:] {
		if c.Len() != n {
			return nil, fmt.Errorf("column %s has %d rows, want %d", c.Name, c.Len(), n)
		}
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return &Table{columns: columns, index: index}, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.index) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.columns) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, or an error when it does not exist.
func (t *Table) Column(name string) (*Series, error) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no column named %s", name)
}

// Columns returns the columns in table order.
func (t *Table) Columns() []*Series { return t.columns }

// Index returns the row index labels.
func (t *Table) Index() []int { return t.index }

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.At(i)
	}
	return row
}

// RowNullCount returns how many cells of row i are absent.
func (t *Table) RowNullCount(i int) int {
	n := 0
	for _, c := range t.columns {
		if c.At(i).IsNull() {
			n++
		}
	}
	return n
}

// Select returns a copy of the table restricted to the given row
// positions, keeping their original index labels.
func (t *Table) Select(rows []int) *Table {
	columns := make([]*Series, len(t.columns))
	for j, c := range t.columns {
		values := make([]Value, len(rows))
		for i, r := range rows {
			values[i] = c.At(r)
		}
		columns[j] = &Series{Name: c.Name, values: values}
	}
	index := make([]int, len(rows))
	for i, r := range rows {
		index[i] = t.index[r]
	}
	return &Table{columns: columns, index: index}
}

// Where returns the positions of rows for which pred is true.
func (t *Table) Where(pred func(row int) bool) []int {
	var rows []int
	for i := 0; i < t.NumRows(); i++ {
		if pred(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// Filter combines Where and Select.
func (t *Table) Filter(pred func(row int) bool) *Table {
	return t.Select(t.Where(pred))
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	columns := make([]*Series, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.clone()
	}
	index := make([]int, len(t.index))
	copy(index, t.index)
	return &Table{columns: columns, index: index}
}
