// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"reflect"
	"testing"

	"cogentcore.org/tablemerge/base/metadata"
	"cogentcore.org/tablemerge/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stackTables struct {
	t1, t2, t3, t4, t5 *table.Table
}

func newVStackTables(t *testing.T) *stackTables {
	st := &stackTables{}
	st.t1 = readTable(t,
		"a   b",
		"0. foo",
		"1. bar")
	st.t2 = readTable(t,
		"a    b   c",
		"2.  pez  4",
		"3.  sez  5")
	st.t3 = readTable(t,
		"a    b",
		"4.   7",
		"5.   8",
		"6.   9")
	st.t4 = st.t1.Clone().SetMasked(true)
	st.t5 = st.t1.Clone()
	st.setMeta()
	return st
}

func (st *stackTables) setMeta() {
	st.t1.Meta.Set("b", []any{1, 2})
	st.t1.Meta.Set("c", metadata.New("a", 1))
	st.t1.Meta.Set("d", 1)
	st.t2.Meta.Set("b", []any{3, 4})
	st.t2.Meta.Set("c", metadata.New("b", 1))
	st.t2.Meta.Set("a", 1)
	st.t4.Meta.Set("b", []any{5, 6})
	st.t4.Meta.Set("c", metadata.New("c", 1))
	st.t4.Meta.Set("e", 1)
	st.t5.Meta.Set("b", 3)
	st.t5.Meta.Set("c", "k")
	st.t5.Meta.Set("d", 1)
}

func stackMetaMerge() *metadata.Data {
	return metadata.New("b", []any{1, 2, 3, 4, 5, 6}, "c", metadata.New("a", 1, "b", 1, "c", 1), "d", 1, "a", 1, "e", 1)
}

func TestVStackRows(t *testing.T) {
	st := newVStackTables(t)
	t2 := st.t1.Slice(1, 2)
	t2.Meta.Clear()
	out, err := VStack([]*table.Table{st.t1, t2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 foo", "1 bar", "1 bar"}, rowStrings(out))
	assert.False(t, out.Masked)
}

func TestVStackMetaMerge(t *testing.T) {
	st := newVStackTables(t)
	var ws metadata.Warnings
	out, err := VStack([]*table.Table{st.t1, st.t2, st.t4}, &StackOptions{JoinType: Inner, Warnings: &ws})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.True(t, stackMetaMerge().Equal(&out.Meta), "meta: %v", out.Meta.String())
}

func TestVStackMetaConflict(t *testing.T) {
	st := newVStackTables(t)
	var ws metadata.Warnings
	out, err := VStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Warnings: &ws})
	require.NoError(t, err)
	assert.Len(t, ws, 2)
	assert.True(t, st.t5.Meta.Equal(&out.Meta))

	ws = nil
	out, err = VStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Conflicts: metadata.Silent, Warnings: &ws})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.True(t, st.t5.Meta.Equal(&out.Meta))

	_, err = VStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Conflicts: metadata.Error})
	assert.ErrorIs(t, err, metadata.ErrConflict)

	_, err = VStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Conflicts: metadata.Policies(5)})
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, metadata.ErrInvalidPolicy)
}

func TestVStackBadInput(t *testing.T) {
	st := newVStackTables(t)
	_, err := VStack(nil, nil)
	assertKind(t, err, ErrUsage, "")
	_, err = VStack([]*table.Table{st.t2, nil}, nil)
	assertKind(t, err, ErrUsage, "")
	_, err = VStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Left})
	assertKind(t, err, ErrUsage, "join_type arg must be one of")
}

func TestVStackBasic(t *testing.T) {
	st := newVStackTables(t)
	out, err := VStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Inner})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.ColumnNames())
	assert.False(t, out.Masked)
	assert.Equal(t, []string{"0 foo", "1 bar", "2 pez", "3 sez"}, rowStrings(out))

	out, err = VStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Outer})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out.ColumnNames())
	assert.True(t, out.Masked)
	assert.Equal(t, []string{"0 foo --", "1 bar --", "2 pez 4", "3 sez 5"}, rowStrings(out))

	out, err = VStack([]*table.Table{st.t1, st.t2, st.t4}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 foo --", "1 bar --", "2 pez 4", "3 sez 5", "0 foo --", "1 bar --"}, rowStrings(out))

	out, err = VStack([]*table.Table{st.t1, st.t2, st.t4}, &StackOptions{JoinType: Inner})
	require.NoError(t, err)
	assert.True(t, out.Masked)
	assert.Equal(t, []string{"0 foo", "1 bar", "2 pez", "3 sez", "0 foo", "1 bar"}, rowStrings(out))
	assert.Equal(t, reflect.Float64, out.Column("a").DataType())
}

func TestVStackIncompatible(t *testing.T) {
	st := newVStackTables(t)
	for _, jt := range []JoinTypes{Inner, Outer} {
		_, err := VStack([]*table.Table{st.t1, st.t3}, &StackOptions{JoinType: jt})
		assertKind(t, err, ErrSchema, "The 'b' columns have incompatible types: [string int64]")
	}
	_, err := VStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Exact})
	assertKind(t, err, ErrSchema, "Inconsistent columns in input tables")

	c := readTable(t, "c", "1")
	_, err = VStack([]*table.Table{st.t1, c}, &StackOptions{JoinType: Inner})
	assertKind(t, err, ErrSchema, "no columns in common")
}

func TestVStackExact(t *testing.T) {
	st := newVStackTables(t)
	out, err := VStack([]*table.Table{st.t1, st.t4}, &StackOptions{JoinType: Exact})
	require.NoError(t, err)
	assert.Equal(t, 4, out.NumRows())
}

func TestVStackShapeMismatch(t *testing.T) {
	st := newVStackTables(t)
	t2 := st.t1.Clone()
	b := t2.Column("b")
	b.Values.Shape().SetShape(2, 1)
	_, err := VStack([]*table.Table{st.t1, t2}, nil)
	assertKind(t, err, ErrSchema, "The 'b' columns have different shape")
}

func TestVStackNumericPromotion(t *testing.T) {
	t1 := readTable(t, "a", "1", "2")
	t2 := readTable(t, "a", "2.5")
	out, err := VStack([]*table.Table{t1, t2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "2.5"}, rowStrings(out))
	assert.Equal(t, reflect.Float64, out.Column("a").DataType())
}

func TestVStackOneMasked(t *testing.T) {
	st := newVStackTables(t)
	st.t4.Column("b").Mask.Values[1] = true
	out, err := VStack([]*table.Table{st.t1, st.t4}, nil)
	require.NoError(t, err)
	assert.True(t, out.Masked)
	assert.Equal(t, []string{"0 foo", "1 bar", "0 foo", "1 --"}, rowStrings(out))
}

func TestVStackColMetaMerge(t *testing.T) {
	st := newVStackTables(t)
	meta1 := metadata.New("b", []any{1, 2}, "c", metadata.New("a", 1), "d", 1)
	meta2 := metadata.New("b", []any{3, 4}, "c", metadata.New("b", 1), "a", 1)
	meta3 := metadata.New("b", []any{5, 6}, "c", metadata.New("c", 1), "e", 1)
	for i, dt := range []*table.Table{st.t1, st.t2, st.t4} {
		a := &dt.Column("a").Attrs
		a.Unit = []string{"cm", "m", "km"}[i]
		a.Format = "%0d"
		a.Meta.Copy([]*metadata.Data{meta1, meta2, meta3}[i])
	}
	st.t1.Column("b").Attrs.Description = "t1_b"
	st.t4.Column("b").Attrs.Format = "%6s"
	st.t2.Column("b").Attrs.Meta.Copy(meta2)
	st.t2.Column("c").Attrs = table.Attrs{Unit: "m", Format: "%6s", Description: "t2_c"}

	var ws metadata.Warnings
	out, err := VStack([]*table.Table{st.t1, st.t2, st.t4}, &StackOptions{JoinType: Outer, Warnings: &ws})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"In merged column 'a' the 'unit' attribute does not match (cm != m)",
		"In merged column 'a' the 'unit' attribute does not match (m != km)",
	}, ws.Messages())

	a := out.Column("a").Attrs
	assert.Equal(t, "km", a.Unit)
	assert.Equal(t, "%0d", a.Format)
	assert.True(t, stackMetaMerge().Equal(&a.Meta))
	b := out.Column("b").Attrs
	assert.Equal(t, "t1_b", b.Description)
	assert.Equal(t, "%6s", b.Format)
	assert.True(t, meta2.Equal(&b.Meta))
	assert.Equal(t, table.Attrs{Unit: "m", Format: "%6s", Description: "t2_c"}, out.Column("c").Attrs)
}

func TestVStackOne(t *testing.T) {
	st := newVStackTables(t)
	out, err := VStackOne(st.t1, nil)
	require.NoError(t, err)
	assert.Equal(t, st.t1.Lines(), out.Lines())
	assert.True(t, st.t1.Meta.Equal(&out.Meta))

	out.Column("b").Values.SetString1D("baz", 0)
	assert.Equal(t, "foo", st.t1.Column("b").Values.String1D(0))

	out, err = VStack([]*table.Table{st.t1}, nil)
	require.NoError(t, err)
	assert.Equal(t, st.t1.Lines(), out.Lines())
}

func newHStackTables(t *testing.T) *stackTables {
	st := &stackTables{}
	st.t1 = readTable(t,
		"a   b",
		"0 foo",
		"1 bar")
	st.t2 = readTable(t,
		"a    b   c",
		"2   pez  4",
		"3   sez  5")
	st.t3 = readTable(t,
		"d    e",
		"4   7",
		"5   8",
		"6   9")
	st.t4 = st.t1.Clone().SetMasked(true)
	require.NoError(t, st.t4.Columns.RenameIndex(0, "f"))
	require.NoError(t, st.t4.Columns.RenameIndex(1, "g"))
	st.t5 = st.t1.Clone()
	st.setMeta()
	return st
}

func TestHStackSameTable(t *testing.T) {
	st := newHStackTables(t)
	out, err := HStack([]*table.Table{st.t1, st.t1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_1", "b_1", "a_2", "b_2"}, out.ColumnNames())
	assert.Equal(t, []string{"0 foo 0 foo", "1 bar 1 bar"}, rowStrings(out))
}

func TestHStackRows(t *testing.T) {
	st := newHStackTables(t)
	out, err := HStack([]*table.Table{st.t1.Slice(0, 1), st.t2.Slice(1, 2)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_1", "b_1", "a_2", "b_2", "c"}, out.ColumnNames())
	assert.Equal(t, []string{"0 foo 3 sez 5"}, rowStrings(out))
}

func TestHStackMetaMerge(t *testing.T) {
	st := newHStackTables(t)
	var ws metadata.Warnings
	out, err := HStack([]*table.Table{st.t1, st.t2, st.t4}, &StackOptions{JoinType: Inner, Warnings: &ws})
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.True(t, stackMetaMerge().Equal(&out.Meta))
}

func TestHStackMetaConflict(t *testing.T) {
	st := newHStackTables(t)
	var ws metadata.Warnings
	out, err := HStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Warnings: &ws})
	require.NoError(t, err)
	assert.Len(t, ws, 2)
	assert.True(t, st.t5.Meta.Equal(&out.Meta))

	_, err = HStack([]*table.Table{st.t1, st.t5}, &StackOptions{JoinType: Inner, Conflicts: metadata.Error})
	assert.ErrorIs(t, err, metadata.ErrConflict)
}

func TestHStackBadInput(t *testing.T) {
	st := newHStackTables(t)
	_, err := HStack(nil, nil)
	assertKind(t, err, ErrUsage, "")
	_, err = HStack([]*table.Table{st.t2, nil}, nil)
	assertKind(t, err, ErrUsage, "")
	_, err = HStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Right})
	assertKind(t, err, ErrUsage, "")
	_, err = HStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Outer, TableNames: []string{"x"}})
	assertKind(t, err, ErrUsage, "")
}

func TestHStackBasic(t *testing.T) {
	st := newHStackTables(t)
	out, err := HStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Inner})
	require.NoError(t, err)
	assert.False(t, out.Masked)
	assert.Equal(t, []string{"a_1", "b_1", "a_2", "b_2", "c"}, out.ColumnNames())
	assert.Equal(t, []string{"0 foo 2 pez 4", "1 bar 3 sez 5"}, rowStrings(out))

	outer, err := HStack([]*table.Table{st.t1, st.t2}, nil)
	require.NoError(t, err)
	assert.False(t, outer.Masked)
	assert.Equal(t, out.Lines(), outer.Lines())

	out, err = HStack([]*table.Table{st.t1, st.t2, st.t3, st.t4}, nil)
	require.NoError(t, err)
	assert.True(t, out.Masked)
	assert.Equal(t, []string{"a_1", "b_1", "a_2", "b_2", "c", "d", "e", "f", "g"}, out.ColumnNames())
	assert.Equal(t, []string{
		"0 foo 2 pez 4 4 7 0 foo",
		"1 bar 3 sez 5 5 8 1 bar",
		"-- -- -- -- -- 6 9 -- --",
	}, rowStrings(out))

	out, err = HStack([]*table.Table{st.t1, st.t2, st.t3, st.t4}, &StackOptions{JoinType: Inner})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0 foo 2 pez 4 4 7 0 foo",
		"1 bar 3 sez 5 5 8 1 bar",
	}, rowStrings(out))
}

func TestHStackExact(t *testing.T) {
	st := newHStackTables(t)
	_, err := HStack([]*table.Table{st.t1, st.t3}, &StackOptions{JoinType: Exact})
	assertKind(t, err, ErrSchema, "Inconsistent number of rows in input tables")

	out, err := HStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Exact})
	require.NoError(t, err)
	assert.Equal(t, 2, out.NumRows())
}

func TestHStackOneMasked(t *testing.T) {
	st := newHStackTables(t)
	t2 := st.t1.Clone().SetMasked(true)
	t2.Meta.Clear()
	t2.Column("b").Mask.Values[1] = true
	out, err := HStack([]*table.Table{st.t1, t2}, nil)
	require.NoError(t, err)
	assert.True(t, out.Masked)
	assert.Equal(t, []string{"0 foo 0 foo", "1 bar 1 --"}, rowStrings(out))
}

func TestHStackColRename(t *testing.T) {
	st := newHStackTables(t)
	out, err := HStack([]*table.Table{st.t1, st.t2}, &StackOptions{JoinType: Outer, UniqueName: "{table_name}_{col_name}", TableNames: []string{"left", "right"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"left_a", "left_b", "right_a", "right_b", "c"}, out.ColumnNames())
}

func TestHStackColMeta(t *testing.T) {
	st := newHStackTables(t)
	meta1 := metadata.New("b", []any{1, 2}, "c", metadata.New("a", 1), "d", 1)
	st.t1.Column("a").Attrs = table.Attrs{Unit: "cm", Format: "%4d"}
	st.t1.Column("b").Attrs.Description = "t1_b"
	st.t1.Column("b").Attrs.Meta.Copy(meta1)
	st.t3.Column("d").Attrs = table.Attrs{Unit: "m", Format: "%6s", Description: "t3_c"}
	st.t4.Column("f").Attrs = table.Attrs{Unit: "kg", Format: "%6s"}

	var ws metadata.Warnings
	out, err := HStack([]*table.Table{st.t1, st.t3, st.t4}, &StackOptions{JoinType: Outer, Warnings: &ws})
	require.NoError(t, err)
	assert.Empty(t, ws)
	for _, dt := range []*table.Table{st.t1, st.t3, st.t4} {
		for i, name := range dt.ColumnNames() {
			at := dt.ColumnByIndex(i).Attrs
			oat := out.Column(name).Attrs
			assert.Equal(t, at.Unit, oat.Unit, name)
			assert.Equal(t, at.Format, oat.Format, name)
			assert.Equal(t, at.Description, oat.Description, name)
			assert.True(t, at.Meta.Equal(&oat.Meta), name)
		}
	}

	// output column meta is a deep copy
	st.t1.Column("b").Attrs.Meta.Set("b", nil)
	seq, ok := out.Column("b").Attrs.Meta.At("b").([]any)
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, seq)
}

func TestHStackOne(t *testing.T) {
	st := newHStackTables(t)
	out, err := HStackOne(st.t1, nil)
	require.NoError(t, err)
	assert.Equal(t, st.t1.Lines(), out.Lines())

	out, err = HStack([]*table.Table{st.t1}, nil)
	require.NoError(t, err)
	assert.Equal(t, st.t1.Lines(), out.Lines())
}
