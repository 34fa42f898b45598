// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"slices"
	"strconv"
)

// Bool is a tensor of bool values. It is also used as the
// element-wise absence mask of a table column.
type Bool struct {
	Base[bool]
}

// NewBool returns a new n-dimensional tensor of bool values
// with the given sizes per dimension (shape).
func NewBool(sizes ...int) *Bool {
	tsr := &Bool{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewBoolShape returns a new bool tensor with the same shape
// as the given tensor, with all values false.
func NewBoolShape(like Tensor) *Bool {
	return NewBool(like.Shape().Sizes...)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Bool) String() string {
	return stringOf(&tsr.Base, tsr.String1D)
}

func (tsr *Bool) IsString() bool { return false }

func (tsr *Bool) Float1D(i int) float64 { return boolToFloat(tsr.Values[i]) }

func (tsr *Bool) SetFloat1D(val float64, i int) { tsr.Values[i] = val != 0 }

func (tsr *Bool) Int1D(i int) int {
	if tsr.Values[i] {
		return 1
	}
	return 0
}

func (tsr *Bool) SetInt1D(val int, i int) { tsr.Values[i] = val != 0 }

func (tsr *Bool) String1D(i int) string { return strconv.FormatBool(tsr.Values[i]) }

func (tsr *Bool) SetString1D(val string, i int) {
	bv, err := strconv.ParseBool(val)
	if err != nil {
		bv = StringToFloat64(val) != 0
	}
	tsr.Values[i] = bv
}

func (tsr *Bool) FloatRowCell(row, cell int) float64 {
	return boolToFloat(tsr.RowCell(row, cell))
}

func (tsr *Bool) StringRowCell(row, cell int) string {
	return strconv.FormatBool(tsr.RowCell(row, cell))
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Bool) Clone() Tensor {
	return &Bool{Base: tsr.cloneBase()}
}

// CopyRowFrom copies the cells of the given row of the other tensor
// into the given row, with non-zero values converted to true.
func (tsr *Bool) CopyRowFrom(row int, from Tensor, fromRow int) {
	if fsm, ok := from.(*Bool); ok {
		tsr.copyRowValues(row, &fsm.Base, fromRow)
		return
	}
	_, sz := tsr.shape.RowCellSize()
	for c := range sz {
		if from.IsString() {
			tsr.SetString1D(from.String1D(fromRow*sz+c), row*sz+c)
		} else {
			tsr.Values[row*sz+c] = from.Float1D(fromRow*sz+c) != 0
		}
	}
}

// Any returns true if any value is true.
func (tsr *Bool) Any() bool {
	return slices.Contains(tsr.Values, true)
}

// RowAny returns true if any cell of the given row is true.
func (tsr *Bool) RowAny(row int) bool {
	_, sz := tsr.shape.RowCellSize()
	return slices.Contains(tsr.Values[row*sz:(row+1)*sz], true)
}

// SetRow sets all the cells of the given row to the given value.
func (tsr *Bool) SetRow(val bool, row int) {
	_, sz := tsr.shape.RowCellSize()
	for c := range sz {
		tsr.Values[row*sz+c] = val
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
