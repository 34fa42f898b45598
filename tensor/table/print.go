// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"strings"
)

// Lines returns the table as lines of text: a header line with the
// column names, a rule line of dashes, and one line per row, with
// every column right aligned to its widest value. Masked values
// are shown as "--" and multiple cells are separated by commas.
func (dt *Table) Lines() []string {
	nc := dt.NumColumns()
	rows := dt.NumRows()
	cells := make([][]string, nc)
	widths := make([]int, nc)
	for ci, col := range dt.Columns.Values {
		widths[ci] = len(dt.Columns.Keys[ci])
		cells[ci] = make([]string, rows)
		for r := range rows {
			s := col.RowString(r)
			cells[ci][r] = s
			widths[ci] = max(widths[ci], len(s))
		}
	}
	lines := make([]string, 0, rows+2)
	line := func(val func(ci int) string) string {
		var b strings.Builder
		for ci := range nc {
			if ci > 0 {
				b.WriteByte(' ')
			}
			s := val(ci)
			b.WriteString(strings.Repeat(" ", widths[ci]-len(s)))
			b.WriteString(s)
		}
		return b.String()
	}
	lines = append(lines, line(func(ci int) string { return dt.Columns.Keys[ci] }))
	lines = append(lines, line(func(ci int) string { return strings.Repeat("-", widths[ci]) }))
	for r := range rows {
		lines = append(lines, line(func(ci int) string { return cells[ci][r] }))
	}
	return lines
}

// String returns the [Table.Lines] joined with newlines.
func (dt *Table) String() string {
	return strings.Join(dt.Lines(), "\n") + "\n"
}
