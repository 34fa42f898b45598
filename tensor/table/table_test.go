// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"testing"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddColumns(t *testing.T) {
	dt := NewTable("test")
	_, err := AddColumnValues(dt, "a", 1, 2, 3)
	require.NoError(t, err)
	_, err = AddColumnValues(dt, "b", "x", "y", "z")
	require.NoError(t, err)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, []string{"a", "b"}, dt.ColumnNames())
	assert.Equal(t, "test", dt.Meta.Name())
	assert.Equal(t, reflect.Int, dt.Column("a").DataType())

	_, err = AddColumnValues(dt, "a", 4, 5, 6)
	assert.Error(t, err)
	_, err = AddColumnValues(dt, "c", 4, 5)
	assert.Error(t, err)

	col, err := dt.AddColumnOfType("v", reflect.Float64, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, col.Values.Shape().Sizes)
	assert.Equal(t, []int{2}, col.CellSizes())

	_, err = dt.ColumnTry("nope")
	assert.Error(t, err)
	assert.True(t, dt.HasColumn("v"))
	assert.True(t, dt.DeleteColumnName("v"))
	assert.False(t, dt.HasColumn("v"))

	assert.NoError(t, dt.IsValidRow(2))
	assert.Error(t, dt.IsValidRow(3))
}

func TestMasked(t *testing.T) {
	dt := NewTable()
	AddColumnValues(dt, "a", 1, 2)
	assert.False(t, dt.HasMaskedColumns())
	dt.SetMasked(true)
	assert.True(t, dt.Column("a").HasMask())
	assert.False(t, dt.Column("a").HasMaskedValues())

	col, err := AddColumnValues(dt, "b", 1.5, 2.5)
	require.NoError(t, err)
	assert.True(t, col.HasMask())
	col.Mask.Set1D(true, 1)
	assert.True(t, col.IsMasked(1, 0))
	assert.True(t, col.RowMasked(1))
	assert.Equal(t, "--", col.CellString(1, 0))
	assert.Equal(t, "1.5", col.CellString(0, 0))

	bad := NewColumn(tensor.NewFloat64(2))
	bad.Mask = tensor.NewBool(3)
	assert.Error(t, dt.AddColumn("c", bad))
}

func TestCloneTake(t *testing.T) {
	dt := NewTable()
	a, _ := AddColumnValues(dt, "a", 1, 2, 3)
	a.Attrs.Unit = "m"
	a.Attrs.Meta.Set("x", []any{1, 2})
	dt.Meta.Set("k", metadata.New("z", 1))

	cp := dt.Clone()
	a.Attrs.Meta.Set("x", []any{3})
	a.Values.SetInt1D(10, 0)
	assert.Equal(t, []any{1, 2}, cp.Column("a").Attrs.Meta.At("x"))
	assert.Equal(t, 1, cp.Column("a").Values.Int1D(0))
	assert.Equal(t, "m", cp.Column("a").Attrs.Unit)

	tk := dt.Take([]int{2, 0})
	assert.Equal(t, 2, tk.NumRows())
	assert.Equal(t, 3, tk.Column("a").Values.Int1D(0))
	assert.Equal(t, 10, tk.Column("a").Values.Int1D(1))
	assert.True(t, tk.Meta.Has("k"))

	sl := dt.Slice(1, 3)
	assert.Equal(t, []string{"a", "-", "2", "3"}, sl.Lines())
}

func TestLines(t *testing.T) {
	dt, err := ReadLines(
		" a   b ",
		"--- ---",
		"  1 foo",
		" --  bar")
	require.NoError(t, err)
	assert.True(t, dt.Masked)
	assert.Equal(t, reflect.Int64, dt.Column("a").DataType())
	assert.Equal(t, reflect.String, dt.Column("b").DataType())
	assert.True(t, dt.Column("a").IsMasked(1, 0))
	assert.False(t, dt.Column("b").HasMaskedValues())
	assert.True(t, dt.Column("b").HasMask())
	assert.Equal(t, []string{
		" a   b",
		"-- ---",
		" 1 foo",
		"-- bar",
	}, dt.Lines())
	assert.Equal(t, " a   b\n-- ---\n 1 foo\n-- bar\n", dt.String())

	dt, err = ReadLines("x y", "1 2.5", "2 3")
	require.NoError(t, err)
	assert.False(t, dt.Masked)
	assert.Equal(t, reflect.Int64, dt.Column("x").DataType())
	assert.Equal(t, reflect.Float64, dt.Column("y").DataType())
}

func TestMetaData(t *testing.T) {
	dt := NewTable()
	a, _ := AddColumnValues(dt, "a", 1, 2)
	AddColumnValues(dt, "b", "x", "y")
	a.Attrs.Unit = "cm"
	a.Attrs.Description = "length"
	a.Attrs.Meta.Set("q", 1)
	dt.Meta.Set("name", "t1")

	md := dt.MetaData()
	assert.Equal(t, []string{"meta", "columns"}, md.Keys)

	cp := NewTable()
	AddColumnValues(cp, "a", 3, 4)
	AddColumnValues(cp, "b", "z", "w")
	require.NoError(t, cp.SetMetaData(md))
	assert.Equal(t, "cm", cp.Column("a").Attrs.Unit)
	assert.Equal(t, "length", cp.Column("a").Attrs.Description)
	assert.Equal(t, 1, cp.Column("a").Attrs.Meta.At("q"))
	assert.Equal(t, "t1", cp.Meta.Name())
	assert.Equal(t, "", cp.Column("b").Attrs.Unit)

	bad := metadata.New("columns", metadata.New("zz", metadata.New("unit", "m")))
	assert.Error(t, cp.SetMetaData(bad))
	bad = metadata.New("columns", metadata.New("a", metadata.New("color", "red")))
	assert.Error(t, cp.SetMetaData(bad))
}
