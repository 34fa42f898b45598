// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"errors"
	"strings"
	"testing"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, lines ...string) *table.Table {
	t.Helper()
	dt, err := table.ReadLines(lines...)
	require.NoError(t, err)
	return dt
}

// rowStrings returns each row as its column values separated by spaces.
func rowStrings(dt *table.Table) []string {
	rows := make([]string, dt.NumRows())
	for r := range rows {
		cells := make([]string, dt.NumColumns())
		for ci, col := range dt.Columns.Values {
			cells[ci] = col.RowString(r)
		}
		rows[r] = strings.Join(cells, " ")
	}
	return rows
}

func assertKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var me *Error
	if assert.True(t, errors.As(err, &me)) && msg != "" {
		assert.Contains(t, me.Error(), msg)
	}
}

func metaMerge() *metadata.Data {
	return metadata.New("b", []any{1, 2, 3, 4}, "c", metadata.New("a", 1, "b", 1), "d", 1, "a", 1)
}

func TestColNameMap(t *testing.T) {
	t1 := readTable(t, "a b c", "1 x y")
	t2 := readTable(t, "a b d", "1 x z")
	nm, err := colNameMap([]*table.Table{t1, t2}, []string{"a"}, DefaultUniqueName, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b_1", "c", "b_2", "d"}, nm.Keys)
	assert.Equal(t, []string{"a", "a"}, nm.At("a"))
	assert.Equal(t, []string{"b", ""}, nm.At("b_1"))
	assert.Equal(t, []string{"", "b"}, nm.At("b_2"))

	nm, err = colNameMap([]*table.Table{t1, t2}, nil, "x_{table_name}_{col_name}_y", []string{"L", "R"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x_L_a_y", "x_L_b_y", "c", "x_R_a_y", "x_R_b_y", "d"}, nm.Keys)

	_, err = colNameMap([]*table.Table{t1, t2}, nil, "{col_name}", nil)
	assertKind(t, err, ErrSchema, "Merging column names resulted in duplicates: [a b]")

	_, err = colNameMap([]*table.Table{t1, t2}, nil, DefaultUniqueName, []string{"L"})
	assertKind(t, err, ErrUsage, "")
}

func TestEnums(t *testing.T) {
	var jt JoinTypes
	require.NoError(t, jt.SetString("left"))
	assert.Equal(t, Left, jt)
	assert.Equal(t, "left", jt.String())
	assert.ErrorIs(t, jt.SetString("sideways"), ErrUsage)
	assert.Equal(t, "JoinTypes(42)", JoinTypes(42).String())

	var kp Keeps
	require.NoError(t, kp.SetString("last"))
	assert.Equal(t, Last, kp)
	err := kp.SetString("middle")
	assertKind(t, err, ErrUsage, "'keep' should be one of 'first', 'last', 'none'")
}

func TestPolicies(t *testing.T) {
	t1 := readTable(t, "a b", "0 foo", "1 bar")
	t2 := t1.Clone()
	t1.Meta.Set("k", 1)
	t2.Meta.Set("k", 2)

	var ws metadata.Warnings
	out, err := VStack([]*table.Table{t1, t2}, &StackOptions{JoinType: Outer, Warnings: &ws})
	require.NoError(t, err)
	assert.Len(t, ws, 1)
	assert.Equal(t, 2, out.Meta.At("k"))

	ws = nil
	out, err = VStack([]*table.Table{t1, t2}, &StackOptions{JoinType: Outer, Conflicts: metadata.Silent, Warnings: &ws})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Equal(t, 2, out.Meta.At("k"))

	_, err = HStack([]*table.Table{t1, t2}, &StackOptions{JoinType: Outer, Conflicts: metadata.Error})
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrConflict)

	_, err = Join(t1, t2, &JoinOptions{Conflicts: metadata.Policies(99)})
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, metadata.ErrInvalidPolicy)
}
