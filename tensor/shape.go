// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information, including sizes
// and optional names for each dimension. Indexes are Row-Major,
// with the outermost (row) dimension first.
type Shape struct {
	// Sizes is the size of each dimension.
	Sizes []int

	// Names are optional names for each dimension.
	Names []string
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShape(sizes...)
	return sh
}

// SetShape sets the shape size parameters, clearing any names
// if the number of dimensions changes.
func (sh *Shape) SetShape(sizes ...int) {
	if len(sh.Names) != len(sizes) {
		sh.Names = nil
	}
	sh.Sizes = slices.Clone(sizes)
}

// SetNames sets the names of each dimension.
func (sh *Shape) SetNames(names ...string) {
	sh.Names = slices.Clone(names)
}

// CopyShape copies the shape parameters from another Shape struct.
func (sh *Shape) CopyShape(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Names = slices.Clone(cp.Names)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// RowCellSize returns the size of the outermost Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
// A 1D shape has a cell size of 1.
func (sh *Shape) RowCellSize() (rows, cells int) {
	if len(sh.Sizes) == 0 {
		return 0, 1
	}
	rows = sh.Sizes[0]
	cells = 1
	for _, v := range sh.Sizes[1:] {
		cells *= v
	}
	return
}

// CellSizes returns the sizes of the inner (non-row) dimensions,
// which is empty for scalar cells.
func (sh *Shape) CellSizes() []int {
	if len(sh.Sizes) <= 1 {
		return nil
	}
	return slices.Clone(sh.Sizes[1:])
}

// IsEqual returns true if this shape is same as other (does not compare names)
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// Offset returns the "flat" 1D array index into an element at the given n-dimensional index.
// No checking is done on the length or size of the index values relative to the shape.
func (sh *Shape) Offset(index ...int) int {
	offset := 0
	for d, idx := range index {
		offset = offset*sh.Sizes[d] + idx
	}
	return offset
}

// Index returns the n-dimensional index from a "flat" 1D array index.
func (sh *Shape) Index(offset int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := offset
	for i := nd - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		if s == 0 {
			return index
		}
		index[i] = rem % s
		rem /= s
	}
	return index
}

// String satisfies the fmt.Stringer interface
func (sh *Shape) String() string {
	str := "["
	for i := range sh.Sizes {
		nm := ""
		if len(sh.Names) == len(sh.Sizes) {
			nm = sh.Names[i] + ": "
		}
		str += fmt.Sprintf("%v%v", nm, sh.Sizes[i])
		if i < len(sh.Sizes)-1 {
			str += ", "
		}
	}
	str += "]"
	return str
}
