// SPDX-License-Identifier: MIT

// Package scenario reads scenario sets from CSV and writes assignment tables
// as CSV or as human-readable tables.
//
// Input format:
//
//	cost[,probability]
//
// One scenario per record; the record position is the scenario index. A
// leading header record is skipped when its first field is not numeric.
// Either every record carries a probability or none does.
//
// Output formats:
//
//   - WriteCSV:   scenario,cost,representative,probability
//   - WriteTable: a go-pretty table with a totals footer.
package scenario
