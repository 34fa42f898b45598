// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a Table of named [Column]s sharing a common
// number of rows, each holding a [tensor.Tensor] of values, an optional
// absence mask, and unit, format, description and meta attributes.
package table

import (
	"fmt"
	"reflect"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor"
)

// MaskedString is the string representation of a masked element.
const MaskedString = "--"

// Table is a table of Columns aligned by a common outermost row dimension.
type Table struct {
	// Columns has the list of columns for this table.
	Columns *Columns

	// Meta is misc metadata for the table. Use lower-case key names
	// following the struct tag convention:
	//	- name string = name of table
	//	- doc string = documentation, description
	//	- precision int = n for precision to write out floats in csv.
	Meta metadata.Data

	// Masked indicates that every column carries a mask,
	// which is guaranteed by [Table.SetMasked].
	Masked bool
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.Columns.Rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the column with given name, or nil if not found.
func (dt *Table) Column(name string) *Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (*Column, error) {
	cl := dt.Column(name)
	if cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: Column named %q not found", name)
}

// ColumnByIndex returns the column at given index.
func (dt *Table) ColumnByIndex(idx int) *Column {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnNames returns the names of all columns, in order.
func (dt *Table) ColumnNames() []string {
	return dt.Columns.Names()
}

// HasColumn returns true if the table has a column with given name.
func (dt *Table) HasColumn(name string) bool {
	return dt.Columns.Has(name)
}

// AddColumn adds the given column to the table, returning an error
// and not adding if the name is not unique or the rows differ.
// A mask is allocated if the table is masked.
func (dt *Table) AddColumn(name string, col *Column) error {
	if err := dt.Columns.AddColumn(name, col); err != nil {
		return err
	}
	if dt.Masked {
		col.EnsureMask()
	}
	return nil
}

// InsertColumn inserts the given column at given index, with the
// same checks as [Table.AddColumn].
func (dt *Table) InsertColumn(idx int, name string, col *Column) error {
	if err := dt.Columns.InsertColumn(idx, name, col); err != nil {
		return err
	}
	if dt.Masked {
		col.EnsureMask()
	}
	return nil
}

// AddColumnOfType adds a new column to the table, of given reflect type
// and column name (which must be unique), with the current number of rows.
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
// Supported types include string, bool, float32, float64, int, int32, int64 and byte.
func (dt *Table) AddColumnOfType(name string, typ reflect.Kind, cellSizes ...int) (*Column, error) {
	col := NewColumnOfType(typ, dt.NumRows(), cellSizes...)
	return col, dt.AddColumn(name, col)
}

// AddColumnValues adds a new column holding the given values, which
// sets the number of rows if it is the first column.
func AddColumnValues[T tensor.DataTypes](dt *Table, name string, vals ...T) (*Column, error) {
	tsr := tensor.New[T](len(vals))
	for i, v := range vals {
		setValue(tsr, i, v)
	}
	col := NewColumn(tsr)
	return col, dt.AddColumn(name, col)
}

func setValue(tsr tensor.Tensor, i int, v any) {
	switch x := v.(type) {
	case string:
		tsr.SetString1D(x, i)
	case bool:
		if x {
			tsr.SetInt1D(1, i)
		}
	case float64:
		tsr.SetFloat1D(x, i)
	case float32:
		tsr.SetFloat1D(float64(x), i)
	case int:
		tsr.SetInt1D(x, i)
	case int32:
		tsr.SetInt1D(int(x), i)
	case int64:
		tsr.SetInt1D(int(x), i)
	case byte:
		tsr.SetInt1D(int(x), i)
	}
}

// DeleteColumnName deletes column of given name.
// returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// SetMasked sets the masked flag. When true, every column is given
// a mask if it does not already have one. Existing masks are kept
// when set to false.
func (dt *Table) SetMasked(masked bool) *Table {
	dt.Masked = masked
	if masked {
		for _, col := range dt.Columns.Values {
			col.EnsureMask()
		}
	}
	return dt
}

// HasMaskedColumns returns true if any column carries a mask.
func (dt *Table) HasMaskedColumns() bool {
	for _, col := range dt.Columns.Values {
		if col.HasMask() {
			return true
		}
	}
	return false
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table {
	dt.Columns.SetNumRows(rows)
	return dt
}

// Clone returns a complete deep copy of this table.
func (dt *Table) Clone() *Table {
	cp := &Table{Masked: dt.Masked}
	cp.Columns = dt.Columns.Clone()
	cp.Meta.Copy(&dt.Meta)
	return cp
}

// Take returns a new table with the given rows, in the given order.
// Columns, attributes and metadata are deep copied.
func (dt *Table) Take(rows []int) *Table {
	cp := &Table{Masked: dt.Masked, Columns: NewColumns()}
	cp.Columns.Rows = len(rows)
	for i, col := range dt.Columns.Values {
		cp.Columns.Add(dt.Columns.Keys[i], col.Take(rows))
	}
	cp.Meta.Copy(&dt.Meta)
	return cp
}

// Slice returns a new table with the rows in [start, end).
func (dt *Table) Slice(start, end int) *Table {
	rows := make([]int, 0, max(0, end-start))
	for r := start; r < end; r++ {
		rows = append(rows, r)
	}
	return dt.Take(rows)
}
