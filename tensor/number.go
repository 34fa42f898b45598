// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Numbers are the numeric value types supported by [Number].
type Numbers interface {
	constraints.Integer | constraints.Float
}

// Number is a tensor of numerical values
type Number[T Numbers] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Int64 is an alias for Number[int64].
type Int64 = Number[int64]

// Byte is an alias for Number[byte].
type Byte = Number[byte]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 { return NewNumber[float64](sizes...) }

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int { return NewNumber[int](sizes...) }

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T Numbers](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewNumberFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewNumberFromValues[T Numbers](vals ...T) *Number[T] {
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.shape.SetShape(len(vals))
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string {
	return stringOf(&tsr.Base, tsr.String1D)
}

func (tsr *Number[T]) IsString() bool { return false }

func (tsr *Number[T]) Float1D(i int) float64         { return float64(tsr.Values[i]) }
func (tsr *Number[T]) SetFloat1D(val float64, i int) { tsr.Values[i] = T(val) }
func (tsr *Number[T]) Int1D(i int) int               { return int(tsr.Values[i]) }
func (tsr *Number[T]) SetInt1D(val int, i int)       { tsr.Values[i] = T(val) }

func (tsr *Number[T]) FloatRowCell(row, cell int) float64 {
	return float64(tsr.RowCell(row, cell))
}

func (tsr *Number[T]) StringRowCell(row, cell int) string {
	_, sz := tsr.shape.RowCellSize()
	return tsr.String1D(row*sz + cell)
}

func (tsr *Number[T]) String1D(i int) string {
	if IsFloat(tsr.DataType()) {
		bits := 64
		if _, ok := any(tsr.Values[i]).(float32); ok {
			bits = 32
		}
		return strconv.FormatFloat(float64(tsr.Values[i]), 'g', -1, bits)
	}
	return strconv.FormatInt(int64(tsr.Values[i]), 10)
}

// SetString1D parses the string as a number, setting 0 if it does not parse.
func (tsr *Number[T]) SetString1D(val string, i int) {
	if IsFloat(tsr.DataType()) {
		fv, _ := strconv.ParseFloat(val, 64)
		tsr.Values[i] = T(fv)
		return
	}
	if iv, err := strconv.ParseInt(val, 10, 64); err == nil {
		tsr.Values[i] = T(iv)
		return
	}
	fv, _ := strconv.ParseFloat(val, 64)
	tsr.Values[i] = T(fv)
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Tensor {
	return &Number[T]{Base: tsr.cloneBase()}
}

// CopyRowFrom copies the cells of the given row of the other tensor
// into the given row, using an optimized copy if the other tensor
// is of the same type, and otherwise converting through int or float64.
func (tsr *Number[T]) CopyRowFrom(row int, from Tensor, fromRow int) {
	if fsm, ok := from.(*Number[T]); ok {
		tsr.copyRowValues(row, &fsm.Base, fromRow)
		return
	}
	_, sz := tsr.shape.RowCellSize()
	useInt := IsInteger(tsr.DataType()) && IsInteger(from.DataType())
	for c := range sz {
		fi := fromRow*sz + c
		if from.IsString() {
			tsr.SetString1D(from.String1D(fi), row*sz+c)
		} else if useInt {
			tsr.Values[row*sz+c] = T(from.Int1D(fi))
		} else {
			tsr.Values[row*sz+c] = T(from.Float1D(fi))
		}
	}
}
