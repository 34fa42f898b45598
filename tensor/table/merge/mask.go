// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"cogentcore.org/tablemerge/tensor"
	"cogentcore.org/tablemerge/tensor/table"
)

// cellRef is the source of one output row: a row of a source column,
// or a nil column where no source contributes to the output row.
type cellRef struct {
	col *table.Column
	row int
}

// rowRefs returns the refs for the given rows of the column,
// where a negative row has no source.
func rowRefs(col *table.Column, rows []int) []cellRef {
	refs := make([]cellRef, len(rows))
	for i, r := range rows {
		if r >= 0 && col != nil {
			refs[i] = cellRef{col: col, row: r}
		}
	}
	return refs
}

// needsMask returns true if any row has no source,
// or any source column has a mask.
func needsMask(refs []cellRef) bool {
	for _, rf := range refs {
		if rf.col == nil || rf.col.HasMask() {
			return true
		}
	}
	return false
}

// takeColumn returns a new column of the given colSpec with a row for each
// ref, copied from the source with type conversion as needed. A mask is
// allocated if forced or if [needsMask], where rows with no source are
// fully masked and masked source cells stay masked.
func takeColumn(sp colSpec, refs []cellRef, forceMask bool) *table.Column {
	sz := append([]int{len(refs)}, sp.cells...)
	col := table.NewColumn(tensor.NewOfType(sp.kind, sz...))
	col.Attrs = sp.attrs
	if forceMask || needsMask(refs) {
		col.EnsureMask()
	}
	for i, rf := range refs {
		if rf.col == nil {
			col.Mask.SetRow(true, i)
			continue
		}
		col.Values.CopyRowFrom(i, rf.col.Values, rf.row)
		if rf.col.Mask != nil {
			col.Mask.CopyRowFrom(i, rf.col.Mask, rf.row)
		}
	}
	return col
}
