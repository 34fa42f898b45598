// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"slices"
	"strings"
)

// Base is the base n-dim array, parameterized by the value type.
// It is embedded by the concrete tensor types.
type Base[T any] struct {
	shape  Shape
	Values []T
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// RowCellSize returns the size of the outer-most Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
// Used for Tensors that are columns in a data table.
func (tsr *Base[T]) RowCellSize() (rows, cells int) {
	return tsr.shape.RowCellSize()
}

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

func (tsr *Base[T]) Value(i ...int) T    { return tsr.Values[tsr.shape.Offset(i...)] }
func (tsr *Base[T]) Value1D(i int) T     { return tsr.Values[i] }
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.Offset(i...)] = val }
func (tsr *Base[T]) Set1D(val T, i int)  { tsr.Values[i] = val }

// RowCell returns the value at given row and cell index.
func (tsr *Base[T]) RowCell(row, cell int) T {
	_, sz := tsr.shape.RowCellSize()
	return tsr.Values[row*sz+cell]
}

// SetShape sets the shape params, resizing backing storage appropriately
func (tsr *Base[T]) SetShape(sizes ...int) {
	tsr.shape.SetShape(sizes...)
	tsr.Values = setLength(tsr.Values, tsr.Len())
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Base[T]) SetNames(names ...string) {
	tsr.shape.SetNames(names...)
}

// SetNumRows sets the number of rows (outer-most dimension) in a RowMajor organized tensor.
func (tsr *Base[T]) SetNumRows(rows int) {
	rows = max(0, rows)
	if tsr.shape.NumDims() == 0 {
		tsr.shape.SetShape(rows)
	}
	_, cells := tsr.shape.RowCellSize()
	tsr.shape.Sizes[0] = rows
	tsr.Values = setLength(tsr.Values, rows*cells)
}

// copyRowValues is the same-type fast path for CopyRowFrom.
func (tsr *Base[T]) copyRowValues(row int, from *Base[T], fromRow int) {
	_, sz := tsr.shape.RowCellSize()
	copy(tsr.Values[row*sz:(row+1)*sz], from.Values[fromRow*sz:(fromRow+1)*sz])
}

// cloneBase returns a copy of the shape and values.
func (tsr *Base[T]) cloneBase() Base[T] {
	cp := Base[T]{Values: slices.Clone(tsr.Values)}
	cp.shape.CopyShape(&tsr.shape)
	return cp
}

// stringOf returns a string representation of the tensor, one row per line,
// using the given per-element formatting function.
func stringOf[T any](tsr *Base[T], str func(i int) string) string {
	var b strings.Builder
	b.WriteString("Tensor: ")
	b.WriteString(tsr.shape.String())
	b.WriteString("\n")
	rows, cells := tsr.shape.RowCellSize()
	for r := range rows {
		for c := range cells {
			if c > 0 {
				b.WriteString(" ")
			}
			b.WriteString(str(r*cells + c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// setLength sets the length of the slice, reusing capacity
// and zeroing any new elements.
func setLength[T any](s []T, n int) []T {
	if len(s) >= n {
		return s[:n]
	}
	return append(s, make([]T, n-len(s))...)
}
