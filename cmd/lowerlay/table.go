package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// renderTable writes rows under header as an aligned text table.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return table.Render()
}
