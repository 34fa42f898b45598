// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/tablemerge/base/errors"
	"cogentcore.org/tablemerge/base/fsx"
	"cogentcore.org/tablemerge/tensor/table"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// metaFile returns the name of the metadata file of the given table file.
func metaFile(filename string) string {
	return filename + ".meta.yaml"
}

// openTables opens the given table files, with their metadata files
// if [Config.Meta] is set and they exist.
func (a *app) openTables(files []string) ([]*table.Table, error) {
	delim, _, err := a.cfg.delims()
	if err != nil {
		return nil, logError(err)
	}
	tables := make([]*table.Table, len(files))
	for i, fn := range files {
		fn, err := homedir.Expand(fn)
		if err != nil {
			return nil, logError(err)
		}
		dt := table.NewTable()
		if err := dt.OpenCSV(fn, delim); err != nil {
			return nil, err
		}
		if a.cfg.Meta {
			mf := metaFile(fn)
			ok, err := fsx.FileExists(mf)
			if err != nil {
				return nil, errors.Log(err)
			}
			if ok {
				if err := dt.OpenMeta(mf); err != nil {
					return nil, errors.Log(err)
				}
			}
		}
		slog.Info("opened table", "file", fn, "rows", dt.NumRows(), "columns", dt.NumColumns())
		tables[i] = dt
	}
	return tables, nil
}

// writeTable writes the table to [Config.Output], with its metadata
// file if [Config.Meta] is set, or to the command output if none.
func (a *app) writeTable(cmd *cobra.Command, dt *table.Table) error {
	_, delim, err := a.cfg.delims()
	if err != nil {
		return logError(err)
	}
	if a.cfg.Output == "" {
		return errors.Log(dt.WriteCSV(cmd.OutOrStdout(), delim, table.Headers))
	}
	if err := dt.SaveCSV(a.cfg.Output, delim, table.Headers); err != nil {
		return err
	}
	if a.cfg.Meta && dt.MetaData().Len() > 0 {
		if err := dt.SaveMeta(metaFile(a.cfg.Output)); err != nil {
			return errors.Log(err)
		}
	}
	slog.Info("saved table", "file", a.cfg.Output, "rows", dt.NumRows(), "columns", dt.NumColumns())
	return nil
}
