// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides typed n-dimensional arrays organized
// by an outermost row dimension, which serve as the column storage
// of [table.Table]. Values are addressed either by a flat 1D index
// or by row and cell, where cell is a 1D index into the remaining
// inner dimensions.
package tensor

import (
	"fmt"
	"reflect"
)

// DataTypes are the primary tensor data types with specific support.
type DataTypes interface {
	string | bool | float32 | float64 | int | int32 | int64 | byte
}

// Tensor is the interface for n-dimensional tensors.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// It is implemented by the [Number], [String] and [Bool] types.
type Tensor interface {
	fmt.Stringer

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// SetShape sets the sizes parameters of the tensor, and resizes
	// backing storage appropriately, retaining all existing data that fits.
	SetShape(sizes ...int)

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// RowCellSize returns the size of the outermost Row shape dimension,
	// and the size of all the remaining inner dimensions (the "cell" size).
	RowCellSize() (rows, cells int)

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// IsString returns true if the data type is a String; otherwise it is numeric
	// (including bool).
	IsString() bool

	// Float1D returns the value of given 1-dimensional index as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index as a float64.
	SetFloat1D(val float64, i int)

	// Int1D returns the value of given 1-dimensional index as an int.
	Int1D(i int) int

	// SetInt1D sets the value of given 1-dimensional index as an int.
	SetInt1D(val int, i int)

	// String1D returns the value of given 1-dimensional index as a string.
	String1D(i int) string

	// SetString1D sets the value of given 1-dimensional index as a string.
	SetString1D(val string, i int)

	// FloatRowCell returns the value at given row and cell as a float64.
	FloatRowCell(row, cell int) float64

	// StringRowCell returns the value at given row and cell as a string.
	StringRowCell(row, cell int) string

	// SetNumRows sets the number of rows (outermost dimension).
	SetNumRows(rows int)

	// Clone clones this tensor, creating a duplicate copy of itself with its
	// own separate memory representation of all the values.
	Clone() Tensor

	// CopyRowFrom copies all the cell values of the given row of the
	// other tensor into the given row of this tensor, converting types
	// as needed. The cell sizes must match.
	CopyRowFrom(row int, from Tensor, fromRow int)
}

// New returns a new n-dimensional tensor of given value type
// with the given sizes per dimension (shape).
func New[T DataTypes](sizes ...int) Tensor {
	var v T
	return NewOfType(reflect.TypeOf(v).Kind(), sizes...)
}

// NewOfType returns a new n-dimensional tensor of given reflect.Kind type
// with the given sizes per dimension (shape).
// Supported types are string, bool, float32, float64, int, int32, int64, and byte.
func NewOfType(typ reflect.Kind, sizes ...int) Tensor {
	switch typ {
	case reflect.String:
		return NewString(sizes...)
	case reflect.Bool:
		return NewBool(sizes...)
	case reflect.Float64:
		return NewNumber[float64](sizes...)
	case reflect.Float32:
		return NewNumber[float32](sizes...)
	case reflect.Int:
		return NewNumber[int](sizes...)
	case reflect.Int32:
		return NewNumber[int32](sizes...)
	case reflect.Int64:
		return NewNumber[int64](sizes...)
	case reflect.Uint8:
		return NewNumber[byte](sizes...)
	default:
		panic(fmt.Sprintf("tensor.NewOfType: type not supported: %v", typ))
	}
}

// IsSupportedType returns true if the given kind can be used with [NewOfType].
func IsSupportedType(typ reflect.Kind) bool {
	switch typ {
	case reflect.String, reflect.Bool, reflect.Float64, reflect.Float32,
		reflect.Int, reflect.Int32, reflect.Int64, reflect.Uint8:
		return true
	}
	return false
}

// CellShape returns the sizes of the inner (non-row) dimensions.
func CellShape(tsr Tensor) []int {
	return tsr.Shape().CellSizes()
}
