// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/tablemerge/base/keylist"
)

// Columns is the underlying column list and number of rows for Table.
// Each column has the same number of rows, as the outermost
// dimension of its values.
type Columns struct {
	keylist.List[string, *Column]

	// number of rows, which is enforced to be the size of the
	// outermost row dimension of the column values.
	Rows int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows in the table, across all columns.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = rows
	for _, col := range cl.Values {
		col.SetNumRows(rows)
	}
	return cl
}

// AddColumn adds the given column with the given name, returning
// an error and not adding if the name is not unique or the number
// of rows does not match. The first column sets the number of rows.
func (cl *Columns) AddColumn(name string, col *Column) error {
	if err := cl.check(name, col); err != nil {
		return err
	}
	if err := cl.Add(name, col); err != nil {
		return fmt.Errorf("table: column name %q is not unique", name)
	}
	cl.Rows = col.NumRows()
	return nil
}

// InsertColumn inserts the given column at given index, with the
// same checks as [Columns.AddColumn].
func (cl *Columns) InsertColumn(idx int, name string, col *Column) error {
	if err := cl.check(name, col); err != nil {
		return err
	}
	if err := cl.Insert(idx, name, col); err != nil {
		return fmt.Errorf("table: column name %q is not unique", name)
	}
	cl.Rows = col.NumRows()
	return nil
}

func (cl *Columns) check(name string, col *Column) error {
	if err := col.validate(name); err != nil {
		return err
	}
	if cl.Len() > 0 && col.NumRows() != cl.Rows {
		return fmt.Errorf("table: column %q has %d rows, table has %d", name, col.NumRows(), cl.Rows)
	}
	return nil
}

// Names returns the column names, in order.
func (cl *Columns) Names() []string {
	return append([]string(nil), cl.Keys...)
}

// Clone returns a complete copy of this set of columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns()
	cp.Rows = cl.Rows
	for i, col := range cl.Values {
		cp.Add(cl.Keys[i], col.Clone())
	}
	return cp
}
