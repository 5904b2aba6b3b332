// Package dataframe provides the small in-memory table the quality checks
// run against: ordered, equal-length columns of nullable cells with
// pandas-style missing-data semantics (null never compares equal to null).
//
// The table is deliberately minimal. It supports exactly what the checks
// need: per-column null counts and type inference, row selection that
// preserves original row index labels, and in-place column transforms for
// the two mutating checks (date normalization and name standardization).
package dataframe
