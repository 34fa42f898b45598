// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"cmp"
)

// CompareRows compares row ai of tensor a with row bi of tensor b,
// cell by cell in row-major order, returning -1, 0 or +1 like [cmp.Compare].
// Strings compare lexically, integers as int and everything else as float64.
// The tensors must have the same cell size.
func CompareRows(a Tensor, ai int, b Tensor, bi int) int {
	_, sz := a.RowCellSize()
	useString := a.IsString() || b.IsString()
	useInt := IsInteger(a.DataType()) && IsInteger(b.DataType())
	for c := range sz {
		x, y := ai*sz+c, bi*sz+c
		var r int
		switch {
		case useString:
			r = cmp.Compare(a.String1D(x), b.String1D(y))
		case useInt:
			r = cmp.Compare(a.Int1D(x), b.Int1D(y))
		default:
			r = cmp.Compare(a.Float1D(x), b.Float1D(y))
		}
		if r != 0 {
			return r
		}
	}
	return 0
}

// RowsEqual returns true if row ai of a has the same values as row bi of b.
func RowsEqual(a Tensor, ai int, b Tensor, bi int) bool {
	return CompareRows(a, ai, b, bi) == 0
}

// CompareKeys compares row ai across the key tensors as with row bi
// across the key tensors bs, returning the first non-zero comparison.
func CompareKeys(as []Tensor, ai int, bs []Tensor, bi int) int {
	for k := range as {
		if r := CompareRows(as[k], ai, bs[k], bi); r != 0 {
			return r
		}
	}
	return 0
}
