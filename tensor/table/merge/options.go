// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"cogentcore.org/tablemerge/base/metadata"
)

// DefaultUniqueName is the default template for renaming columns
// whose names collide across tables.
const DefaultUniqueName = "{col_name}_{table_name}"

// StackOptions are the options for [VStack] and [HStack].
// A nil *StackOptions is the same as [DefaultStackOptions].
type StackOptions struct {
	// JoinType is Inner, Outer or Exact.
	JoinType JoinTypes

	// Conflicts is the policy for conflicting metadata and attributes.
	Conflicts metadata.Policies

	// Warnings, if non-nil, collects the conflicts reported under
	// the [metadata.Warn] policy. Otherwise they are logged.
	Warnings *metadata.Warnings

	// UniqueName is the template for renaming colliding column names
	// in [HStack], where {col_name} is replaced by the column name and
	// {table_name} by the table name. Defaults to [DefaultUniqueName].
	UniqueName string

	// TableNames are the names of the tables used in UniqueName,
	// which default to "1", "2", and so on.
	TableNames []string
}

// DefaultStackOptions returns the default stack options,
// with an Outer join type and the Warn conflicts policy.
func DefaultStackOptions() *StackOptions {
	return &StackOptions{JoinType: Outer}
}

// JoinOptions are the options for [Join].
// A nil *JoinOptions is the same as [DefaultJoinOptions].
type JoinOptions struct {
	// Keys are the names of the key columns.
	// Defaults to the names common to both tables.
	Keys []string

	// JoinType is Inner, Left, Right or Outer.
	JoinType JoinTypes

	// UniqueName is the template for renaming colliding non-key
	// column names, where {col_name} is replaced by the column name and
	// {table_name} by the table name. Defaults to [DefaultUniqueName].
	UniqueName string

	// TableNames are the names of the left and right tables used in
	// UniqueName, which default to "1" and "2".
	TableNames []string

	// Conflicts is the policy for conflicting metadata and attributes.
	Conflicts metadata.Policies

	// Warnings, if non-nil, collects the conflicts reported under
	// the [metadata.Warn] policy. Otherwise they are logged.
	Warnings *metadata.Warnings
}

// DefaultJoinOptions returns the default join options, with an Inner
// join type on the common keys and the Warn conflicts policy.
func DefaultJoinOptions() *JoinOptions {
	return &JoinOptions{JoinType: Inner}
}

// UniqueOptions are the options for [Unique].
// A nil *UniqueOptions keeps the first row for each distinct
// combination of all the column values.
type UniqueOptions struct {
	// Keys are the names of the key columns. Defaults to all columns.
	Keys []string

	// Keep selects which row of each group is kept.
	Keep Keeps

	// Silent drops key columns with masked values instead of
	// returning an error.
	Silent bool
}

// mergeParams are the options shared by all the merge operations.
type mergeParams struct {
	uniqueName string
	tableNames []string
	merger     *metadata.Merger
}

func newMergeParams(uniqueName string, tableNames []string, policy metadata.Policies, ws *metadata.Warnings) (*mergeParams, error) {
	if err := policy.Validate(); err != nil {
		return nil, &Error{Kind: ErrUsage, Msg: err.Error(), Err: err}
	}
	if uniqueName == "" {
		uniqueName = DefaultUniqueName
	}
	return &mergeParams{uniqueName: uniqueName, tableNames: tableNames, merger: &metadata.Merger{Policy: policy, Warnings: ws}}, nil
}
