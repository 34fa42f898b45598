// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is matched by errors from invalid arguments, such as an
	// unknown join type, an invalid keep value or duplicate key names.
	ErrUsage = errors.New("invalid argument")

	// ErrSchema is matched by errors from tables that cannot be merged,
	// such as incompatible column types or shapes, missing or masked key
	// columns, and duplicate output column names.
	ErrSchema = errors.New("table merge error")
)

// Error is the error returned for a usage or schema problem.
// Its Kind is [ErrUsage] or [ErrSchema], and it also unwraps
// to the underlying Err, if any.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func usageErrorf(format string, args ...any) error {
	return &Error{Kind: ErrUsage, Msg: fmt.Sprintf(format, args...)}
}

func schemaErrorf(format string, args ...any) error {
	return &Error{Kind: ErrSchema, Msg: fmt.Sprintf(format, args...)}
}
