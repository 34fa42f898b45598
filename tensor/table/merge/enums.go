// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import (
	"fmt"
)

// JoinTypes are the ways of combining tables whose rows
// or columns do not fully correspond.
type JoinTypes int32

const (
	// Inner keeps only what is present in all tables:
	// matched rows for [Join], common columns for [VStack],
	// and the minimum number of rows for [HStack].
	Inner JoinTypes = iota

	// Outer keeps everything, masking what is absent.
	Outer

	// Left keeps every row of the left table of a [Join].
	Left

	// Right keeps every row of the right table of a [Join].
	Right

	// Exact requires the stacked tables to have the same columns
	// for [VStack] or the same number of rows for [HStack].
	Exact

	JoinTypesN
)

var joinTypeNames = [...]string{"inner", "outer", "left", "right", "exact"}

func (jt JoinTypes) String() string {
	if jt < 0 || jt >= JoinTypesN {
		return fmt.Sprintf("JoinTypes(%d)", int32(jt))
	}
	return joinTypeNames[jt]
}

// SetString sets the join type from its lower-case name.
func (jt *JoinTypes) SetString(s string) error {
	for i, nm := range joinTypeNames {
		if nm == s {
			*jt = JoinTypes(i)
			return nil
		}
	}
	return usageErrorf("join type %q is not one of 'inner', 'outer', 'left', 'right', 'exact'", s)
}

// Keeps are the choices of which row of a group of rows with
// equal keys is kept by [Unique].
type Keeps int32

const (
	// First keeps the first row of each group.
	First Keeps = iota

	// Last keeps the last row of each group.
	Last

	// None keeps only groups with a single row.
	None

	KeepsN
)

var keepNames = [...]string{"first", "last", "none"}

func (kp Keeps) String() string {
	if kp < 0 || kp >= KeepsN {
		return fmt.Sprintf("Keeps(%d)", int32(kp))
	}
	return keepNames[kp]
}

// SetString sets the keep choice from its lower-case name.
func (kp *Keeps) SetString(s string) error {
	for i, nm := range keepNames {
		if nm == s {
			*kp = Keeps(i)
			return nil
		}
	}
	return errBadKeep()
}

func errBadKeep() error {
	return usageErrorf("'keep' should be one of 'first', 'last', 'none'")
}
