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

// Join returns a new table joining the rows of the left and right tables
// whose key column values are all equal. Every combination of matching
// left and right rows gives one output row. With the Left, Right and
// Outer join types the unmatched rows of the left table, the right table,
// or both are also output, masked on the other side. The key columns are
// output once, merged from both sides, and the other columns of both
// tables are kept, with names in both tables renamed using the
// UniqueName template. The output rows are ordered by key value. The
// table metadata and the key column attributes are merged under the
// Conflicts policy.
func Join(left, right *table.Table, opts *JoinOptions) (*table.Table, error) {
	if opts == nil {
		opts = DefaultJoinOptions()
	}
	switch opts.JoinType {
	case Inner, Left, Right, Outer:
	default:
		return nil, usageErrorf("join_type arg must be one of 'inner', 'left', 'right' or 'outer', not %q", opts.JoinType)
	}
	mp, err := newMergeParams(opts.UniqueName, opts.TableNames, opts.Conflicts, opts.Warnings)
	if err != nil {
		return nil, err
	}
	if left == nil || left.Columns == nil || right == nil || right.Columns == nil {
		return nil, usageErrorf("join requires a left and a right table")
	}
	keys, err := joinKeys(left, right, opts.Keys)
	if err != nil {
		return nil, err
	}
	if left.NumRows() == 0 || right.NumRows() == 0 {
		return nil, usageErrorf("input tables for join must both have at least one row")
	}
	for _, side := range []struct {
		name string
		dt   *table.Table
	}{{"Left", left}, {"Right", right}} {
		for _, key := range keys {
			if side.dt.Column(key).HasMaskedValues() {
				return nil, schemaErrorf("%s key column '%s' has missing values", side.name, key)
			}
		}
	}
	names, err := colNameMap([]*table.Table{left, right}, keys, mp.uniqueName, mp.tableNames)
	if err != nil {
		return nil, err
	}
	specs := make(map[string]colSpec, len(keys))
	for _, key := range keys {
		sp, err := reconcile(key, []*table.Column{left.Column(key), right.Column(key)}, mp.merger)
		if err != nil {
			return nil, err
		}
		specs[key] = sp
	}
	lrows, rrows := joinRows(left, right, keys, opts.JoinType)

	out := table.NewTable()
	out.Masked = left.Masked || right.Masked || opts.JoinType != Inner
	for i, name := range names.Keys {
		src := names.Values[i]
		var col *table.Column
		switch {
		case slices.Contains(keys, name):
			lc, rc := left.Column(name), right.Column(name)
			refs := make([]cellRef, len(lrows))
			for k := range lrows {
				if lrows[k] >= 0 {
					refs[k] = cellRef{col: lc, row: lrows[k]}
				} else {
					refs[k] = cellRef{col: rc, row: rrows[k]}
				}
			}
			col = takeColumn(specs[name], refs, false)
		case src[0] != "":
			lc := left.Column(src[0])
			col = takeColumn(specOf(lc), rowRefs(lc, lrows), false)
		default:
			rc := right.Column(src[1])
			col = takeColumn(specOf(rc), rowRefs(rc, rrows), false)
		}
		if err := out.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	if err := mergeTableMeta(out, []*table.Table{left, right}, mp.merger); err != nil {
		return nil, err
	}
	slog.Debug("merge.Join", "type", opts.JoinType, "keys", keys, "rows", out.NumRows())
	return out, nil
}

// joinKeys returns the key column names, which default to the
// names common to both tables in the order of the left table.
func joinKeys(left, right *table.Table, keys []string) ([]string, error) {
	if len(keys) == 0 {
		for _, name := range left.ColumnNames() {
			if right.HasColumn(name) {
				keys = append(keys, name)
			}
		}
		if len(keys) == 0 {
			return nil, schemaErrorf("No keys in common between left and right tables")
		}
		return keys, nil
	}
	if hasDuplicates(keys) {
		return nil, usageErrorf("duplicate key names")
	}
	for _, key := range keys {
		if !left.HasColumn(key) {
			return nil, schemaErrorf("Left table does not have key column '%s'", key)
		}
		if !right.HasColumn(key) {
			return nil, schemaErrorf("Right table does not have key column '%s'", key)
		}
	}
	return slices.Clone(keys), nil
}

// joinRow is a row of the left or right table.
type joinRow struct {
	right bool
	row   int
}

// joinRows returns the left and right row of each output row, with -1
// where a side does not contribute. The rows of both tables are stably
// sorted together by key value, and within each group of equal keys
// every left row is paired with every right row, in order. Groups with
// rows from only one side are output for the matching join types.
func joinRows(left, right *table.Table, keys []string, jt JoinTypes) (lrows, rrows []int) {
	lkeys := keyTensors(left, keys)
	rkeys := keyTensors(right, keys)
	tsrs := func(jr joinRow) []tensor.Tensor {
		if jr.right {
			return rkeys
		}
		return lkeys
	}
	compare := func(a, b joinRow) int {
		return tensor.CompareKeys(tsrs(a), a.row, tsrs(b), b.row)
	}
	all := make([]joinRow, 0, left.NumRows()+right.NumRows())
	for r := range left.NumRows() {
		all = append(all, joinRow{row: r})
	}
	for r := range right.NumRows() {
		all = append(all, joinRow{right: true, row: r})
	}
	slices.SortStableFunc(all, compare)

	keepLeft := jt == Left || jt == Outer
	keepRight := jt == Right || jt == Outer
	for i := 0; i < len(all); {
		j := i + 1
		for j < len(all) && compare(all[i], all[j]) == 0 {
			j++
		}
		var ls, rs []int
		for _, jr := range all[i:j] {
			if jr.right {
				rs = append(rs, jr.row)
			} else {
				ls = append(ls, jr.row)
			}
		}
		switch {
		case len(ls) > 0 && len(rs) > 0:
			for _, l := range ls {
				for _, r := range rs {
					lrows = append(lrows, l)
					rrows = append(rrows, r)
				}
			}
		case len(ls) > 0 && keepLeft:
			for _, l := range ls {
				lrows = append(lrows, l)
				rrows = append(rrows, -1)
			}
		case len(rs) > 0 && keepRight:
			for _, r := range rs {
				lrows = append(lrows, -1)
				rrows = append(rrows, r)
			}
		}
		i = j
	}
	return
}

func keyTensors(dt *table.Table, keys []string) []tensor.Tensor {
	tsrs := make([]tensor.Tensor, len(keys))
	for i, key := range keys {
		tsrs[i] = dt.Column(key).Values
	}
	return tsrs
}

func hasDuplicates(names []string) bool {
	for i, name := range names {
		if slices.Contains(names[:i], name) {
			return true
		}
	}
	return false
}
