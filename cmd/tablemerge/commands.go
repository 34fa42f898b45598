// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/tablemerge/base/errors"
	"cogentcore.org/tablemerge/tensor/table"
	"cogentcore.org/tablemerge/tensor/table/merge"
	"github.com/spf13/cobra"
)

func (a *app) addCommands(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "join left.csv right.csv",
		Short: "Join the rows of two tables with equal key column values",
		Args:  cobra.ExactArgs(2),
		RunE:  a.join,
	})
	root.AddCommand(&cobra.Command{
		Use:   "vstack table.csv...",
		Short: "Stack the rows of tables",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.vstack,
	})
	root.AddCommand(&cobra.Command{
		Use:   "hstack table.csv...",
		Short: "Stack the columns of tables",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.hstack,
	})
	root.AddCommand(&cobra.Command{
		Use:   "unique table.csv",
		Short: "Keep one row for each distinct combination of key column values",
		Args:  cobra.ExactArgs(1),
		RunE:  a.unique,
	})
}

func (a *app) join(cmd *cobra.Command, args []string) error {
	opts, err := a.cfg.JoinOptions()
	if err != nil {
		return logError(err)
	}
	tables, err := a.openTables(args)
	if err != nil {
		return err
	}
	out, err := merge.Join(tables[0], tables[1], opts)
	if err != nil {
		return logError(err)
	}
	return a.writeTable(cmd, out)
}

func (a *app) vstack(cmd *cobra.Command, args []string) error {
	return a.stack(cmd, args, merge.VStack)
}

func (a *app) hstack(cmd *cobra.Command, args []string) error {
	return a.stack(cmd, args, merge.HStack)
}

func (a *app) stack(cmd *cobra.Command, args []string, fun func([]*table.Table, *merge.StackOptions) (*table.Table, error)) error {
	opts, err := a.cfg.StackOptions()
	if err != nil {
		return logError(err)
	}
	tables, err := a.openTables(args)
	if err != nil {
		return err
	}
	out, err := fun(tables, opts)
	if err != nil {
		return logError(err)
	}
	return a.writeTable(cmd, out)
}

func (a *app) unique(cmd *cobra.Command, args []string) error {
	opts, err := a.cfg.UniqueOptions()
	if err != nil {
		return logError(err)
	}
	tables, err := a.openTables(args)
	if err != nil {
		return err
	}
	out, err := merge.Unique(tables[0], opts)
	if err != nil {
		return logError(err)
	}
	return a.writeTable(cmd, out)
}

// logError logs the error with its kind, and returns it.
func logError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, merge.ErrUsage):
		slog.Error("invalid arguments", "err", err)
	case errors.Is(err, merge.ErrSchema):
		slog.Error("tables cannot be merged", "err", err)
	default:
		errors.Log(err)
	}
	return err
}
