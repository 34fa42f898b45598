// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"log/slog"
	"slices"

	"cogentcore.org/tablemerge/tensor"
	"cogentcore.org/tablemerge/tensor/table"
)

// Unique returns a new table with one row for each distinct combination
// of key column values, which default to all the columns. The rows are
// grouped by key value, and the Keep option selects the first or last
// row of each group in the original order, or only the groups with a
// single row. The output rows are ordered by key value.
//
// Key columns with masked values are an error unless the Silent option
// is set, in which case they are dropped from the keys, and it is an
// error if no keys remain.
func Unique(dt *table.Table, opts *UniqueOptions) (*table.Table, error) {
	if opts == nil {
		opts = &UniqueOptions{}
	}
	if dt == nil || dt.Columns == nil {
		return nil, usageErrorf("unique requires a table")
	}
	if opts.Keep < 0 || opts.Keep >= KeepsN {
		return nil, errBadKeep()
	}
	keys := slices.Clone(opts.Keys)
	if len(keys) == 0 {
		keys = dt.ColumnNames()
	}
	if hasDuplicates(keys) {
		return nil, usageErrorf("duplicate key names")
	}
	for _, key := range keys {
		if !dt.HasColumn(key) {
			return nil, usageErrorf("table does not have key column '%s'", key)
		}
	}
	var kept []string
	for _, key := range keys {
		if !dt.Column(key).HasMaskedValues() {
			kept = append(kept, key)
			continue
		}
		if !opts.Silent {
			return nil, usageErrorf("cannot use columns with masked values as keys; remove column '%s' from keys and rerun unique()", key)
		}
	}
	if len(kept) == 0 {
		return nil, usageErrorf("no column remained in keys; unique() cannot work with masked value key columns")
	}
	keys = kept
	rows := uniqueRows(dt, keys, opts.Keep)
	slog.Debug("merge.Unique", "keys", keys, "keep", opts.Keep, "rows", len(rows))
	return dt.Take(rows), nil
}

// uniqueRows returns the selected row of each group of rows
// with equal keys, in key order.
func uniqueRows(dt *table.Table, keys []string, keep Keeps) []int {
	tsrs := keyTensors(dt, keys)
	compare := func(a, b int) int {
		return tensor.CompareKeys(tsrs, a, tsrs, b)
	}
	order := make([]int, dt.NumRows())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, compare)
	var rows []int
	for i := 0; i < len(order); {
		j := i + 1
		for j < len(order) && compare(order[i], order[j]) == 0 {
			j++
		}
		switch keep {
		case First:
			rows = append(rows, order[i])
		case Last:
			rows = append(rows, order[j-1])
		case None:
			if j-i == 1 {
				rows = append(rows, order[i])
			}
		}
		i = j
	}
	return rows
}
