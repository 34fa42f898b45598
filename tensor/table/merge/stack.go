// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"log/slog"
	"slices"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor/table"
)

// VStack stacks the rows of the given tables, in order, returning a new
// table. Columns are matched by name, and columns of the same name are
// merged into one, which requires compatible types and cell shapes.
// With the Outer join type (the default) the output has every column
// of every table, masked in the rows of tables that lack it. With Inner
// it has only the columns common to all tables, and with Exact all
// tables must have the same columns. The table metadata and the column
// attributes are merged under the Conflicts policy.
func VStack(tables []*table.Table, opts *StackOptions) (*table.Table, error) {
	if opts == nil {
		opts = DefaultStackOptions()
	}
	mp, err := validateStack(tables, opts)
	if err != nil {
		return nil, err
	}
	if len(tables) == 1 {
		return tables[0].Clone(), nil
	}
	names, err := stackNames(tables, opts.JoinType)
	if err != nil {
		return nil, err
	}
	nrows := 0
	for _, dt := range tables {
		nrows += dt.NumRows()
	}
	out := table.NewTable()
	out.Masked = anyMasked(tables)
	cols := make([]*table.Column, len(tables))
	for _, name := range names {
		for ti, dt := range tables {
			cols[ti] = dt.Column(name)
			if cols[ti] == nil {
				out.Masked = true
			}
		}
		sp, err := reconcile(name, cols, mp.merger)
		if err != nil {
			return nil, err
		}
		refs := make([]cellRef, 0, nrows)
		for ti, dt := range tables {
			for r := range dt.NumRows() {
				if cols[ti] != nil {
					refs = append(refs, cellRef{col: cols[ti], row: r})
				} else {
					refs = append(refs, cellRef{})
				}
			}
		}
		if err := out.AddColumn(name, takeColumn(sp, refs, false)); err != nil {
			return nil, err
		}
	}
	if err := mergeTableMeta(out, tables, mp.merger); err != nil {
		return nil, err
	}
	slog.Debug("merge.VStack", "tables", len(tables), "rows", out.NumRows(), "columns", out.NumColumns())
	return out, nil
}

// VStackOne returns a copy of the given table, which is the same
// as stacking the table with itself alone.
func VStackOne(dt *table.Table, opts *StackOptions) (*table.Table, error) {
	return VStack([]*table.Table{dt}, opts)
}

// HStack stacks the columns of the given tables, in order, returning
// a new table. All the columns of all the tables are kept, and names
// that occur in more than one table are renamed using the UniqueName
// template. With the Outer join type (the default) the output has the
// maximum number of rows, masked in the tables that have fewer. With
// Inner it has the minimum number of rows, and with Exact all tables
// must have the same number of rows. The table metadata are merged
// under the Conflicts policy.
func HStack(tables []*table.Table, opts *StackOptions) (*table.Table, error) {
	if opts == nil {
		opts = DefaultStackOptions()
	}
	mp, err := validateStack(tables, opts)
	if err != nil {
		return nil, err
	}
	if len(tables) == 1 {
		return tables[0].Clone(), nil
	}
	nrows := tables[0].NumRows()
	minRows, maxRows := nrows, nrows
	for _, dt := range tables[1:] {
		minRows = min(minRows, dt.NumRows())
		maxRows = max(maxRows, dt.NumRows())
	}
	switch opts.JoinType {
	case Exact:
		if minRows != maxRows {
			return nil, schemaErrorf("Inconsistent number of rows in input tables (use 'inner' or 'outer' join_type to allow non-matching rows)")
		}
	case Inner:
		nrows = minRows
	case Outer:
		nrows = maxRows
	}
	names, err := colNameMap(tables, nil, mp.uniqueName, mp.tableNames)
	if err != nil {
		return nil, err
	}
	out := table.NewTable()
	out.Masked = anyMasked(tables) || (opts.JoinType == Outer && minRows != maxRows)
	rows := make([]int, nrows)
	for i, name := range names.Keys {
		ti := slices.IndexFunc(names.Values[i], func(s string) bool { return s != "" })
		dt := tables[ti]
		col := dt.Column(names.Values[i][ti])
		for r := range rows {
			rows[r] = r
			if r >= dt.NumRows() {
				rows[r] = -1
			}
		}
		if err := out.AddColumn(name, takeColumn(specOf(col), rowRefs(col, rows), false)); err != nil {
			return nil, err
		}
	}
	if err := mergeTableMeta(out, tables, mp.merger); err != nil {
		return nil, err
	}
	slog.Debug("merge.HStack", "tables", len(tables), "rows", out.NumRows(), "columns", out.NumColumns())
	return out, nil
}

// HStackOne returns a copy of the given table, which is the same
// as stacking the table with itself alone.
func HStackOne(dt *table.Table, opts *StackOptions) (*table.Table, error) {
	return HStack([]*table.Table{dt}, opts)
}

// validateStack checks the tables and options common to both stacks.
func validateStack(tables []*table.Table, opts *StackOptions) (*mergeParams, error) {
	if len(tables) == 0 {
		return nil, usageErrorf("tables must be a non-empty list of tables")
	}
	for i, dt := range tables {
		if dt == nil || dt.Columns == nil {
			return nil, usageErrorf("table %d is not a valid table", i)
		}
	}
	switch opts.JoinType {
	case Inner, Outer, Exact:
	default:
		return nil, usageErrorf("join_type arg must be one of 'inner', 'exact' or 'outer', not %q", opts.JoinType)
	}
	return newMergeParams(opts.UniqueName, opts.TableNames, opts.Conflicts, opts.Warnings)
}

// stackNames returns the names of the columns of the stacked
// tables for the given join type.
func stackNames(tables []*table.Table, jt JoinTypes) ([]string, error) {
	var all []string
	for _, dt := range tables {
		for _, name := range dt.ColumnNames() {
			if !slices.Contains(all, name) {
				all = append(all, name)
			}
		}
	}
	switch jt {
	case Inner:
		common := slices.DeleteFunc(slices.Clone(all), func(name string) bool {
			for _, dt := range tables {
				if !dt.HasColumn(name) {
					return true
				}
			}
			return false
		})
		if len(common) == 0 {
			return nil, schemaErrorf("Input tables have no columns in common")
		}
		return common, nil
	case Exact:
		for _, dt := range tables {
			if dt.NumColumns() != len(all) {
				return nil, schemaErrorf("Inconsistent columns in input tables (use 'inner' or 'outer' join_type to allow non-matching columns)")
			}
		}
	}
	return all, nil
}

func anyMasked(tables []*table.Table) bool {
	for _, dt := range tables {
		if dt.Masked {
			return true
		}
	}
	return false
}

// mergeTableMeta sets the metadata of the output table to the
// merged metadata of the given tables, and ensures that every
// column of a masked output table has a mask.
func mergeTableMeta(out *table.Table, tables []*table.Table, mg *metadata.Merger) error {
	for _, dt := range tables {
		if err := mg.MergeInto(&out.Meta, &dt.Meta); err != nil {
			return err
		}
	}
	out.SetMasked(out.Masked)
	return nil
}
