// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor"
)

// Attrs are the descriptive attributes of a [Column].
type Attrs struct {
	// Unit is the physical unit label of the values, e.g., "m" or "s".
	Unit string

	// Format is the display format string for the values.
	Format string

	// Description is free text describing the column.
	Description string

	// Meta is arbitrary additional metadata.
	Meta metadata.Data
}

// Clone returns a deep copy of the attributes.
func (at *Attrs) Clone() Attrs {
	cp := Attrs{Unit: at.Unit, Format: at.Format, Description: at.Description}
	cp.Meta.Copy(&at.Meta)
	return cp
}

// Column is one named column of a [Table]: a tensor of values
// with the row as the outermost dimension, an optional element-wise
// absence mask, and descriptive attributes.
type Column struct {
	// Values are the column data, with rows as the outermost dimension.
	Values tensor.Tensor

	// Mask, if non-nil, has the same shape as Values and is true
	// for every absent (masked) element.
	Mask *tensor.Bool

	// Attrs are the descriptive attributes.
	Attrs Attrs
}

// NewColumn returns a new column wrapping the given values.
func NewColumn(values tensor.Tensor) *Column {
	return &Column{Values: values}
}

// NewColumnOfType returns a new column of given element type
// with the given number of rows and cell sizes.
func NewColumnOfType(typ reflect.Kind, rows int, cellSizes ...int) *Column {
	sz := append([]int{rows}, cellSizes...)
	return NewColumn(tensor.NewOfType(typ, sz...))
}

// NumRows returns the number of rows.
func (cl *Column) NumRows() int {
	rows, _ := cl.Values.RowCellSize()
	return rows
}

// DataType returns the element type of the values.
func (cl *Column) DataType() reflect.Kind { return cl.Values.DataType() }

// CellSizes returns the per-row cell shape, empty for scalar cells.
func (cl *Column) CellSizes() []int { return tensor.CellShape(cl.Values) }

// HasMask returns true if the column carries a mask.
func (cl *Column) HasMask() bool { return cl.Mask != nil }

// EnsureMask allocates an all-false mask if the column has none.
func (cl *Column) EnsureMask() *tensor.Bool {
	if cl.Mask == nil {
		cl.Mask = tensor.NewBoolShape(cl.Values)
	}
	return cl.Mask
}

// IsMasked returns true if the given cell of the given row is masked.
func (cl *Column) IsMasked(row, cell int) bool {
	if cl.Mask == nil {
		return false
	}
	return cl.Mask.RowCell(row, cell)
}

// RowMasked returns true if any cell of the given row is masked.
func (cl *Column) RowMasked(row int) bool {
	if cl.Mask == nil {
		return false
	}
	return cl.Mask.RowAny(row)
}

// HasMaskedValues returns true if any element is masked.
func (cl *Column) HasMaskedValues() bool {
	return cl.Mask != nil && cl.Mask.Any()
}

// SetNumRows sets the number of rows of the values and mask.
func (cl *Column) SetNumRows(rows int) {
	cl.Values.SetNumRows(rows)
	if cl.Mask != nil {
		cl.Mask.SetNumRows(rows)
	}
}

// Clone returns a deep copy of the column.
func (cl *Column) Clone() *Column {
	cp := &Column{Values: cl.Values.Clone(), Attrs: cl.Attrs.Clone()}
	if cl.Mask != nil {
		cp.Mask = cl.Mask.Clone().(*tensor.Bool)
	}
	return cp
}

// Take returns a new column with the given rows of this column,
// in the given order. Attributes are deep copied.
func (cl *Column) Take(rows []int) *Column {
	sz := append([]int{len(rows)}, cl.CellSizes()...)
	cp := &Column{Values: tensor.NewOfType(cl.DataType(), sz...), Attrs: cl.Attrs.Clone()}
	if cl.Mask != nil {
		cp.Mask = tensor.NewBool(sz...)
	}
	for i, r := range rows {
		cp.Values.CopyRowFrom(i, cl.Values, r)
		if cl.Mask != nil {
			cp.Mask.CopyRowFrom(i, cl.Mask, r)
		}
	}
	return cp
}

// CellString returns the string form of the given row and cell,
// with "--" for a masked element.
func (cl *Column) CellString(row, cell int) string {
	if cl.IsMasked(row, cell) {
		return MaskedString
	}
	return cl.Values.StringRowCell(row, cell)
}

// RowString returns the string form of the given row, with multiple
// cells separated by commas.
func (cl *Column) RowString(row int) string {
	_, cells := cl.Values.RowCellSize()
	if cells == 1 {
		return cl.CellString(row, 0)
	}
	s := ""
	for c := range cells {
		if c > 0 {
			s += ","
		}
		s += cl.CellString(row, c)
	}
	return s
}

// validate returns an error if the mask does not match the values shape.
func (cl *Column) validate(name string) error {
	if cl.Values == nil {
		return fmt.Errorf("table: column %q has no values", name)
	}
	if cl.Mask != nil && !cl.Mask.Shape().IsEqual(cl.Values.Shape()) {
		return fmt.Errorf("table: column %q mask shape %v does not match values shape %v", name, cl.Mask.Shape(), cl.Values.Shape())
	}
	return nil
}
