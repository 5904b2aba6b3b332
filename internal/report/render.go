// Package report renders tables, columns, and label→count mappings as
// aligned plain text. This is the tool's primary output surface; logs are
// diagnostics only.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dqcli/internal/dataframe"
)

// Heading writes a section label above a result block.
func Heading(w io.Writer, label string) {
	fmt.Fprintf(w, "\n%s:\n", label)
}

// Table writes the table with a leading row-index column. An empty table
// still shows its header so the reader sees which columns were checked.
func Table(w io.Writer, t *dataframe.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "\t")
	for _, name := range t.ColumnNames() {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)

	if t.NumRows() == 0 {
		fmt.Fprintln(tw, "(no rows)")
		return tw.Flush()
	}
	for i := 0; i < t.NumRows(); i++ {
		fmt.Fprintf(tw, "%d\t", t.Index()[i])
		for _, v := range t.Row(i) {
			fmt.Fprintf(tw, "%s\t", v.Format())
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Series writes a single column with its row index labels.
func Series(w io.Writer, s *dataframe.Series, index []int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := 0; i < s.Len(); i++ {
		label := i
		if i < len(index) {
			label = index[i]
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", label, s.At(i).Format())
	}
	return tw.Flush()
}

// Mapping writes label/value pairs, one per line.
func Mapping(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1])
	}
	return tw.Flush()
}

// Summary writes the row/column overview printed before the checks run.
func Summary(w io.Writer, t *dataframe.Table) {
	fmt.Fprintf(w, "%d rows x %d columns\n", t.NumRows(), t.NumCols())
}
