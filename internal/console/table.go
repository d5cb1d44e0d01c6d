// File: internal/console/table.go
// Brief: Column-aligned plain-text tables for listing commands.

// Package console renders listing output. Column widths are computed with
// display-width semantics so wide runes in stack descriptions do not break
// alignment.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Table accumulates rows and renders them with aligned columns.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Missing cells render empty; extra cells are kept
// and widen the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Empty reports whether no rows were added.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// Render writes the headers and rows with padded columns. The last column is
// left unpadded to avoid trailing spaces.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.headers))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(columnGap)
			}
			if i == len(widths)-1 || i == len(cells)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	writeRow(t.headers)
	for _, row := range t.rows {
		writeRow(row)
	}
}
