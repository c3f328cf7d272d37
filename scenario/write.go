// SPDX-License-Identifier: MIT

package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/scenred/reduction"
)

// csvHeader is the column layout of WriteCSV.
var csvHeader = []string{"scenario", "cost", "representative", "probability"}

// WriteCSV writes one record per original scenario, preceded by a header.
// Floats use the shortest representation that round-trips.
func WriteCSV(w io.Writer, t *reduction.AssignmentTable) error {
	if t == nil {
		return ErrNilTable
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("scenario.WriteCSV: %w", err)
	}
	for _, a := range t.Rows() {
		rec := []string{
			strconv.Itoa(a.Scenario),
			formatFloat(a.Cost),
			strconv.Itoa(a.Representative),
			formatFloat(a.Probability),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("scenario.WriteCSV: %w", err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("scenario.WriteCSV: %w", err)
	}

	return nil
}

// WriteTable renders t as a box-drawn table. The footer carries the total
// redistributed probability and the Kantorovich distance of the reduction.
func WriteTable(w io.Writer, t *reduction.AssignmentTable) error {
	if t == nil {
		return ErrNilTable
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Scenario", "Cost", "Representative", "Probability", "Distance"})
	for _, a := range t.Rows() {
		rep := strconv.Itoa(a.Representative)
		if a.IsRepresentative() {
			rep += " *"
		}
		tw.AppendRow(table.Row{a.Scenario, formatFloat(a.Cost), rep, formatFloat(a.Probability), formatFloat(a.Distance)})
	}
	tw.AppendFooter(table.Row{"", "", "Total", formatFloat(t.TotalProbability()), formatFloat(t.KantorovichDistance())})
	tw.Render()

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
