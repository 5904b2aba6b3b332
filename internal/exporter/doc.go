// Package exporter writes check results to disk: one CSV file per check
// and a single Excel workbook with one sheet per check. Exported row
// subsets carry an Index column with each row's original position in the
// dataset.
package exporter
