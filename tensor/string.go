// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
)

// String is a tensor of string values
type String struct {
	Base[string]
}

// NewString returns a new n-dimensional tensor of string values
// with the given sizes per dimension (shape).
func NewString(sizes ...int) *String {
	tsr := &String{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewStringFromValues returns a new 1-dimensional tensor of strings
// that wraps the given values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	tsr := &String{}
	tsr.Values = vals
	tsr.shape.SetShape(len(vals))
	return tsr
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts float64 to string value using strconv, g format
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *String) String() string {
	return stringOf(&tsr.Base, tsr.String1D)
}

func (tsr *String) IsString() bool { return true }

func (tsr *String) String1D(i int) string              { return tsr.Values[i] }
func (tsr *String) SetString1D(val string, i int)      { tsr.Values[i] = val }
func (tsr *String) StringRowCell(row, cell int) string { return tsr.RowCell(row, cell) }

func (tsr *String) Float1D(i int) float64 { return StringToFloat64(tsr.Values[i]) }

func (tsr *String) SetFloat1D(val float64, i int) { tsr.Values[i] = Float64ToString(val) }

func (tsr *String) Int1D(i int) int {
	iv, err := strconv.Atoi(tsr.Values[i])
	if err != nil {
		return int(StringToFloat64(tsr.Values[i]))
	}
	return iv
}

func (tsr *String) SetInt1D(val int, i int) { tsr.Values[i] = strconv.Itoa(val) }

func (tsr *String) FloatRowCell(row, cell int) float64 {
	return StringToFloat64(tsr.RowCell(row, cell))
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *String) Clone() Tensor {
	return &String{Base: tsr.cloneBase()}
}

// CopyRowFrom copies the cells of the given row of the other tensor
// into the given row, converting through strings for other types.
func (tsr *String) CopyRowFrom(row int, from Tensor, fromRow int) {
	if fsm, ok := from.(*String); ok {
		tsr.copyRowValues(row, &fsm.Base, fromRow)
		return
	}
	_, sz := tsr.shape.RowCellSize()
	for c := range sz {
		tsr.Values[row*sz+c] = from.String1D(fromRow*sz + c)
	}
}
