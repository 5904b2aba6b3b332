package checks

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"dqcli/internal/dataframe"
	"dqcli/internal/report"
)

// Config carries the tunable parts of the check suite.
type Config struct {
	DateFormats []string
	PriceMin    float64
	PriceMax    float64
}

// DefaultConfig returns the bounds and date formats the sample dataset
// was designed around.
func DefaultConfig() Config {
	return Config{
		DateFormats: []string{"2006-01-02", "2006/01/02", "02-01-2006"},
		PriceMin:    0,
		PriceMax:    5000,
	}
}

// Results collects every check outcome so callers can export them after
// the run has printed. Index holds the row labels of the checked table,
// for rendering the two mutated columns.
type Results struct {
	Index         []int
	Missing       []ColumnCount
	Types         []ColumnType
	Dates         *dataframe.Series
	Outliers      *dataframe.Table
	Duplicates    *dataframe.Table
	Names         *dataframe.Series
	InvalidPrices *dataframe.Table
	Products      []ValueCount
	Inconsistent  *dataframe.Table
	MultiIssue    *dataframe.Table
}

// Runner executes the ten checks in order against one shared table,
// printing each labelled result to a writer. Checks 3 and 6 mutate the
// table in place, so later checks see normalized dates and names.
type Runner struct {
	logger *slog.Logger
	cfg    Config
}

// NewRunner creates a runner. A nil logger falls back to slog.Default.
func NewRunner(logger *slog.Logger, cfg Config) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.DateFormats) == 0 {
		cfg.DateFormats = DefaultConfig().DateFormats
	}
	return &Runner{logger: logger, cfg: cfg}
}

// Run executes the full suite and returns the collected results.
func (r *Runner) Run(w io.Writer, t *dataframe.Table) (*Results, error) {
	res := &Results{Index: t.Index()}

	fmt.Fprintln(w, "Dataset:")
	if err := report.Table(w, t); err != nil {
		return nil, fmt.Errorf("failed to render dataset: %w", err)
	}
	report.Summary(w, t)

	r.logger.Info("Running data quality checks",
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()))

	res.Missing = MissingValues(t)
	report.Heading(w, "Missing Values")
	rows := make([][2]string, len(res.Missing))
	for i, c := range res.Missing {
		rows[i] = [2]string{c.Column, strconv.Itoa(c.Count)}
	}
	if err := report.Mapping(w, rows); err != nil {
		return nil, err
	}

	res.Types = ColumnTypes(t)
	report.Heading(w, "Data Types")
	rows = make([][2]string, len(res.Types))
	for i, c := range res.Types {
		rows[i] = [2]string{c.Column, c.Type}
	}
	if err := report.Mapping(w, rows); err != nil {
		return nil, err
	}

	dates, err := NormalizeDates(t, r.cfg.DateFormats)
	if err != nil {
		return nil, fmt.Errorf("date normalization failed: %w", err)
	}
	res.Dates = dates
	report.Heading(w, "Normalized Dates")
	if err := report.Series(w, dates, t.Index()); err != nil {
		return nil, err
	}

	if res.Outliers, err = NegativePrices(t); err != nil {
		return nil, fmt.Errorf("outlier check failed: %w", err)
	}
	report.Heading(w, "Outliers")
	if err := report.Table(w, res.Outliers); err != nil {
		return nil, err
	}

	if res.Duplicates, err = Duplicates(t); err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	report.Heading(w, "Duplicate Records")
	if err := report.Table(w, res.Duplicates); err != nil {
		return nil, err
	}

	names, err := StandardizeNames(t)
	if err != nil {
		return nil, fmt.Errorf("name standardization failed: %w", err)
	}
	res.Names = names
	report.Heading(w, "Standardized Names")
	if err := report.Series(w, names, t.Index()); err != nil {
		return nil, err
	}

	if res.InvalidPrices, err = InvalidPriceRange(t, r.cfg.PriceMin, r.cfg.PriceMax); err != nil {
		return nil, fmt.Errorf("price range check failed: %w", err)
	}
	report.Heading(w, "Invalid Prices")
	if err := report.Table(w, res.InvalidPrices); err != nil {
		return nil, err
	}

	if res.Products, err = ProductCounts(t); err != nil {
		return nil, fmt.Errorf("product count failed: %w", err)
	}
	report.Heading(w, "Unique Products")
	rows = make([][2]string, len(res.Products))
	for i, c := range res.Products {
		rows[i] = [2]string{c.Value, strconv.Itoa(c.Count)}
	}
	if err := report.Mapping(w, rows); err != nil {
		return nil, err
	}

	if res.Inconsistent, err = InconsistentNames(t); err != nil {
		return nil, fmt.Errorf("formatting check failed: %w", err)
	}
	report.Heading(w, "Inconsistent Formatting in Names")
	if err := report.Table(w, res.Inconsistent); err != nil {
		return nil, err
	}

	if res.MultiIssue, err = MultiIssueRows(t); err != nil {
		return nil, fmt.Errorf("issue scoring failed: %w", err)
	}
	report.Heading(w, "Rows with Multiple Issues")
	if err := report.Table(w, res.MultiIssue); err != nil {
		return nil, err
	}

	r.logger.Info("Check suite complete",
		slog.Int("outliers", res.Outliers.NumRows()),
		slog.Int("duplicates", res.Duplicates.NumRows()),
		slog.Int("invalid_prices", res.InvalidPrices.NumRows()),
		slog.Int("multi_issue_rows", res.MultiIssue.NumRows()))
	return res, nil
}
