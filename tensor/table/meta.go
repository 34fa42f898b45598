// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/tablemerge/base/metadata"
)

// MetaData returns the table metadata and the column attributes as one
// [metadata.Data], with a "meta" entry for the table metadata and a
// "columns" entry mapping each column name to its non-empty unit,
// format, description and meta attributes. This is the form saved
// by [Table.SaveMeta].
func (dt *Table) MetaData() *metadata.Data {
	md := &metadata.Data{}
	if dt.Meta.Len() > 0 {
		md.Set("meta", dt.Meta.Clone())
	}
	cols := &metadata.Data{}
	for i, col := range dt.Columns.Values {
		at := &metadata.Data{}
		if col.Attrs.Unit != "" {
			at.Set("unit", col.Attrs.Unit)
		}
		if col.Attrs.Format != "" {
			at.Set("format", col.Attrs.Format)
		}
		if col.Attrs.Description != "" {
			at.Set("description", col.Attrs.Description)
		}
		if col.Attrs.Meta.Len() > 0 {
			at.Set("meta", col.Attrs.Meta.Clone())
		}
		if at.Len() > 0 {
			cols.Set(dt.Columns.Keys[i], at)
		}
	}
	if cols.Len() > 0 {
		md.Set("columns", cols)
	}
	return md
}

// SetMetaData sets the table metadata and column attributes from
// metadata of the form returned by [Table.MetaData]. Attributes of
// columns not in the table are an error.
func (dt *Table) SetMetaData(md *metadata.Data) error {
	if mv, ok := md.AtTry("meta"); ok {
		mm, ok := metadata.AsMapping(mv)
		if !ok {
			return fmt.Errorf("table.SetMetaData: meta is not a mapping: %v", mv)
		}
		dt.Meta.Copy(mm)
	}
	cv, ok := md.AtTry("columns")
	if !ok {
		return nil
	}
	cols, ok := metadata.AsMapping(cv)
	if !ok {
		return fmt.Errorf("table.SetMetaData: columns is not a mapping: %v", cv)
	}
	for i, name := range cols.Keys {
		col := dt.Column(name)
		if col == nil {
			return fmt.Errorf("table.SetMetaData: column %q not found", name)
		}
		at, ok := metadata.AsMapping(cols.Values[i])
		if !ok {
			return fmt.Errorf("table.SetMetaData: attributes of column %q are not a mapping", name)
		}
		for j, key := range at.Keys {
			val := at.Values[j]
			switch key {
			case "unit":
				col.Attrs.Unit = fmt.Sprint(val)
			case "format":
				col.Attrs.Format = fmt.Sprint(val)
			case "description":
				col.Attrs.Description = fmt.Sprint(val)
			case "meta":
				mm, ok := metadata.AsMapping(val)
				if !ok {
					return fmt.Errorf("table.SetMetaData: meta of column %q is not a mapping", name)
				}
				col.Attrs.Meta.Copy(mm)
			default:
				return fmt.Errorf("table.SetMetaData: unknown attribute %q of column %q", key, name)
			}
		}
	}
	return nil
}

// OpenMeta reads the table metadata and column attributes
// from the given YAML file, as written by [Table.SaveMeta].
func (dt *Table) OpenMeta(filename string) error {
	md, err := metadata.OpenYAML(filename)
	if err != nil {
		return err
	}
	return dt.SetMetaData(md)
}

// SaveMeta writes the table metadata and column attributes
// to the given YAML file.
func (dt *Table) SaveMeta(filename string) error {
	return metadata.SaveYAML(filename, dt.MetaData())
}
