// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor"
	"cogentcore.org/tablemerge/tensor/table"
)

// colSpec is the element type, cell shape and attributes of an output column.
type colSpec struct {
	kind  reflect.Kind
	cells []int
	attrs table.Attrs
}

// specOf returns the colSpec of an output column copied from a single column.
func specOf(col *table.Column) colSpec {
	return colSpec{kind: col.DataType(), cells: col.CellSizes(), attrs: col.Attrs.Clone()}
}

// reconcile returns the colSpec of the output column with the given name
// that merges the given columns, in order, skipping nil columns.
// The columns must all be of the same [tensor.Classes] and have the
// same cell shape. Numeric types are promoted with [tensor.CommonKind].
// Differing non-empty units are reported as conflicts and the last
// one wins. The first non-empty format and description win, with any
// other differing value reported. The meta attributes are merged.
func reconcile(name string, cols []*table.Column, mg *metadata.Merger) (colSpec, error) {
	var sp colSpec
	cols = slices.DeleteFunc(slices.Clone(cols), func(c *table.Column) bool { return c == nil })
	if len(cols) == 0 {
		return sp, fmt.Errorf("merge: no columns to reconcile for %q", name)
	}
	kinds := make([]reflect.Kind, len(cols))
	for i, col := range cols {
		kinds[i] = col.DataType()
	}
	kind, ok := tensor.CommonKind(kinds...)
	if !ok {
		kns := make([]string, len(kinds))
		for i, k := range kinds {
			kns[i] = k.String()
		}
		return sp, schemaErrorf("The '%s' columns have incompatible types: [%s]", name, strings.Join(kns, " "))
	}
	sp.kind = kind
	sp.cells = cols[0].CellSizes()
	for _, col := range cols[1:] {
		if !slices.Equal(sp.cells, col.CellSizes()) {
			return sp, schemaErrorf("The '%s' columns have different shape", name)
		}
	}
	am := *mg
	am.Describe = func(key string, left, right any) string {
		return fmt.Sprintf("In merged column '%s' the '%s' attribute does not match (%v != %v)", name, key, left, right)
	}
	var err error
	for i, col := range cols {
		ca := &col.Attrs
		if i == 0 {
			sp.attrs.Unit = ca.Unit
			sp.attrs.Format = ca.Format
			sp.attrs.Description = ca.Description
		} else {
			if sp.attrs.Unit, err = mergeAttr(&am, "unit", sp.attrs.Unit, ca.Unit, true); err != nil {
				return sp, err
			}
			if sp.attrs.Format, err = mergeAttr(&am, "format", sp.attrs.Format, ca.Format, false); err != nil {
				return sp, err
			}
			if sp.attrs.Description, err = mergeAttr(&am, "description", sp.attrs.Description, ca.Description, false); err != nil {
				return sp, err
			}
		}
		if err := mg.MergeInto(&sp.attrs.Meta, &ca.Meta); err != nil {
			return sp, err
		}
	}
	return sp, nil
}

// mergeAttr merges the current and next value of a string attribute,
// reporting differing non-empty values as a conflict. The next value
// wins if last is true.
func mergeAttr(mg *metadata.Merger, attr, cur, next string, last bool) (string, error) {
	switch {
	case next == "" || next == cur:
		return cur, nil
	case cur == "":
		return next, nil
	}
	if err := mg.Conflict(attr, cur, next); err != nil {
		return cur, err
	}
	if last {
		return next, nil
	}
	return cur, nil
}
