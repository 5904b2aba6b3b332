package checks

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dqcli/internal/dataframe"
	"dqcli/pkg/contracts/domain"
)

// ColumnCount pairs a column name with a count, in table column order.
type ColumnCount struct {
	Column string
	Count  int
}

// ColumnType pairs a column name with its inferred storage type.
type ColumnType struct {
	Column string
	Type   string
}

// ValueCount pairs a distinct value with its number of occurrences.
type ValueCount struct {
	Value string
	Count int
}

// MissingValues counts absent cells per column.
func MissingValues(t *dataframe.Table) []ColumnCount {
	counts := make([]ColumnCount, 0, t.NumCols())
	for _, col := range t.Columns() {
		counts = append(counts, ColumnCount{Column: col.Name, Count: col.NullCount()})
	}
	return counts
}

// ColumnTypes reports the inferred storage type of each column.
func ColumnTypes(t *dataframe.Table) []ColumnType {
	types := make([]ColumnType, 0, t.NumCols())
	for _, col := range t.Columns() {
		types = append(types, ColumnType{Column: col.Name, Type: col.Kind().String()})
	}
	return types
}

// NormalizeDates parses TransactionDate under the accepted formats and
// replaces the column values with date cells, in place. Anything that does
// not parse becomes a null cell rather than an error. Already-normalized
// date cells pass through, so reapplying the check changes nothing.
func NormalizeDates(t *dataframe.Table, formats []string) (*dataframe.Series, error) {
	col, err := t.Column(domain.ColTransactionDate)
	if err != nil {
		return nil, err
	}
	col.Transform(func(v dataframe.Value) dataframe.Value {
		switch v.Kind() {
		case dataframe.KindTime:
			return v
		case dataframe.KindString:
			return parseDate(v.Str(), formats)
		default:
			return dataframe.Null()
		}
	})
	return col, nil
}

func parseDate(s string, formats []string) dataframe.Value {
	for _, layout := range formats {
		if d, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return dataframe.Time(d)
		}
	}
	return dataframe.Null()
}

// NegativePrices selects rows whose Price is below zero, the
// domain-specific outlier signal for this dataset.
func NegativePrices(t *dataframe.Table) (*dataframe.Table, error) {
	price, err := t.Column(domain.ColPrice)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(row int) bool {
		v := price.At(row)
		return !v.IsNull() && v.Float64() < 0
	}), nil
}

// Duplicates flags every row whose (CustomerName, Product) pair occurs
// more than once, first occurrences included. TransactionID plays no part
// in the key, and a key containing a null never matches anything.
func Duplicates(t *dataframe.Table) (*dataframe.Table, error) {
	names, err := t.Column(domain.ColCustomerName)
	if err != nil {
		return nil, err
	}
	products, err := t.Column(domain.ColProduct)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int)
	for i := 0; i < t.NumRows(); i++ {
		if key, ok := dupKey(names.At(i), products.At(i)); ok {
			groups[key]++
		}
	}
	return t.Filter(func(row int) bool {
		key, ok := dupKey(names.At(row), products.At(row))
		return ok && groups[key] >= 2
	}), nil
}

func dupKey(name, product dataframe.Value) (string, bool) {
	if name.IsNull() || product.IsNull() {
		return "", false
	}
	return name.Format() + "\x00" + product.Format(), true
}

var titleCaser = cases.Title(language.Und)

// StandardizeNames trims surrounding whitespace and title-cases each word
// of CustomerName, in place. Null names pass through untouched.
func StandardizeNames(t *dataframe.Table) (*dataframe.Series, error) {
	col, err := t.Column(domain.ColCustomerName)
	if err != nil {
		return nil, err
	}
	col.Transform(func(v dataframe.Value) dataframe.Value {
		if v.Kind() != dataframe.KindString {
			return v
		}
		return dataframe.String(titleCaser.String(strings.TrimSpace(v.Str())))
	})
	return col, nil
}

// InvalidPriceRange selects rows whose Price falls outside [min, max].
// Both bounds are inclusive, so a price sitting exactly on a bound is
// valid and is not selected. An absent price lies between no bounds and
// is always selected.
func InvalidPriceRange(t *dataframe.Table, min, max float64) (*dataframe.Table, error) {
	price, err := t.Column(domain.ColPrice)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(row int) bool {
		v := price.At(row)
		if v.IsNull() {
			return true
		}
		p := v.Float64()
		return p < min || p > max
	}), nil
}

// ProductCounts tallies occurrences of each distinct Product value,
// descending by count with ties in first-seen order. Null products are
// not counted.
func ProductCounts(t *dataframe.Table) ([]ValueCount, error) {
	products, err := t.Column(domain.ColProduct)
	if err != nil {
		return nil, err
	}

	var order []string
	counts := make(map[string]int)
	for i := 0; i < products.Len(); i++ {
		v := products.At(i)
		if v.IsNull() {
			continue
		}
		s := v.Format()
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, s := range order {
		out = append(out, ValueCount{Value: s, Count: counts[s]})
	}
	// Stable sort keeps first-seen order within equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out, nil
}

var consecutiveUpper = regexp.MustCompile(`[A-Z]{2,}`)

// InconsistentNames selects rows whose CustomerName contains two or more
// consecutive uppercase letters, a heuristic for text that escaped title
// casing. Null names are never flagged.
func InconsistentNames(t *dataframe.Table) (*dataframe.Table, error) {
	names, err := t.Column(domain.ColCustomerName)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(row int) bool {
		v := names.At(row)
		return v.Kind() == dataframe.KindString && consecutiveUpper.MatchString(v.Str())
	}), nil
}

// IssueScores computes the per-row issue score: the count of absent cells
// across the row, plus one when Price is negative, plus one when
// TransactionDate is absent. The absent-cell count is deliberately not
// clamped to 0/1, so a row with several missing fields scores high on
// missing data alone.
func IssueScores(t *dataframe.Table) ([]int, error) {
	price, err := t.Column(domain.ColPrice)
	if err != nil {
		return nil, err
	}
	date, err := t.Column(domain.ColTransactionDate)
	if err != nil {
		return nil, err
	}

	scores := make([]int, t.NumRows())
	for i := range scores {
		score := t.RowNullCount(i)
		if v := price.At(i); !v.IsNull() && v.Float64() < 0 {
			score++
		}
		if date.At(i).IsNull() {
			score++
		}
		scores[i] = score
	}
	return scores, nil
}

// MultiIssueRows selects rows whose issue score exceeds one.
func MultiIssueRows(t *dataframe.Table) (*dataframe.Table, error) {
	scores, err := IssueScores(t)
	if err != nil {
		return nil, err
	}
	return t.Filter(func(row int) bool {
		return scores[row] > 1
	}), nil
}
