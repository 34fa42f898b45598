// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/tablemerge/base/keylist"
	"cogentcore.org/tablemerge/tensor/table"
)

// nameMap maps each output column name, in output order, to the name of
// the input column in each table, with "" for a table that has none.
type nameMap = keylist.List[string, []string]

// colNameMap returns the output column names for combining the columns
// of the given tables. A common name is output once, mapped to the column
// of that name in every table that has it. Any other name that occurs in
// more than one table is renamed using the template, in which {col_name}
// is replaced by the column name and {table_name} by the table name.
// It is a schema error if the output names are not unique.
func colNameMap(tables []*table.Table, common []string, template string, tableNames []string) (*nameMap, error) {
	names, err := defaultTableNames(len(tables), tableNames)
	if err != nil {
		return nil, err
	}
	nm := &nameMap{}
	var outNames []string
	for ti, dt := range tables {
		for _, name := range dt.ColumnNames() {
			out := name
			if slices.Contains(common, name) {
				if !slices.Contains(outNames, name) {
					outNames = append(outNames, name)
				}
			} else {
				if inOtherTable(tables, ti, name) {
					out = renameColumn(template, name, names[ti])
				}
				outNames = append(outNames, out)
			}
			src, ok := nm.AtTry(out)
			if !ok {
				src = make([]string, len(tables))
				nm.Add(out, src)
			}
			src[ti] = name
		}
	}
	var dups []string
	for i, name := range outNames {
		if slices.Contains(outNames[:i], name) && !slices.Contains(dups, name) {
			dups = append(dups, name)
		}
	}
	if len(dups) > 0 {
		return nil, schemaErrorf("Merging column names resulted in duplicates: [%s]. Change UniqueName or TableNames to fix this", strings.Join(dups, " "))
	}
	return nm, nil
}

// defaultTableNames returns the given table names, or "1", "2", ...
// if none are given.
func defaultTableNames(n int, names []string) ([]string, error) {
	if len(names) == 0 {
		names = make([]string, n)
		for i := range names {
			names[i] = strconv.Itoa(i + 1)
		}
		return names, nil
	}
	if len(names) < n {
		return nil, usageErrorf("%d table names given for %d tables", len(names), n)
	}
	return names, nil
}

func inOtherTable(tables []*table.Table, ti int, name string) bool {
	for i, dt := range tables {
		if i != ti && dt.HasColumn(name) {
			return true
		}
	}
	return false
}

func renameColumn(template, colName, tableName string) string {
	return strings.NewReplacer("{col_name}", colName, "{table_name}", tableName).Replace(template)
}
