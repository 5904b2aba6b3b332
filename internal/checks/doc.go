// Package checks implements the ten data-quality checks and the runner
// that sequences them.
//
// The checks are independent queries over one shared table, run in a
// fixed order. Two of them repair the table in place — date normalization
// replaces the raw TransactionDate text with parsed date cells (coercing
// anything unparseable to null instead of failing), and name
// standardization trims and title-cases CustomerName. Both are idempotent.
// Every other check is a pure read: a filter, a count, or a per-column
// summary.
//
// The composite issue score in MultiIssueRows preserves the semantics of
// the computation it reproduces: the per-row count of absent cells is not
// clamped to 0/1 before the negative-price and missing-date indicators
// are added, so heavily incomplete rows are flagged on missing data alone.
package checks
