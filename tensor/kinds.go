// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
)

// Classes are the compatibility classes of tensor data types.
// Values of different classes cannot be combined in one tensor.
type Classes int32

const (
	// BoolClass is the class of bool values.
	BoolClass Classes = iota

	// NumericClass is the class of integer and floating point values.
	NumericClass

	// StringClass is the class of string values.
	StringClass

	ClassesN
)

var classNames = [...]string{"bool", "numeric", "string"}

func (c Classes) String() string {
	if c < 0 || c >= ClassesN {
		return "unknown"
	}
	return classNames[c]
}

// ClassOf returns the compatibility class of the given kind.
func ClassOf(typ reflect.Kind) Classes {
	switch {
	case typ == reflect.Bool:
		return BoolClass
	case typ == reflect.String:
		return StringClass
	default:
		return NumericClass
	}
}

// IsFloat returns true if the kind is a floating point type.
func IsFloat(typ reflect.Kind) bool {
	return typ == reflect.Float32 || typ == reflect.Float64
}

// IsInteger returns true if the kind is an integer type (including byte).
func IsInteger(typ reflect.Kind) bool {
	switch typ {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// CommonKind returns the kind that can hold values of all the given kinds,
// and false if they are not all of the same [Classes].
// Identical kinds are kept as is. Mixed numeric kinds promote to
// float64 if any is a float (float32 if all floats are float32),
// and otherwise to int64.
func CommonKind(kinds ...reflect.Kind) (reflect.Kind, bool) {
	if len(kinds) == 0 {
		return reflect.Invalid, false
	}
	first := kinds[0]
	same := true
	cls := ClassOf(first)
	for _, k := range kinds[1:] {
		if ClassOf(k) != cls {
			return reflect.Invalid, false
		}
		if k != first {
			same = false
		}
	}
	if same {
		return first, true
	}
	// only the numeric class can have differing kinds here
	anyFloat := false
	allF32 := true
	for _, k := range kinds {
		switch {
		case k == reflect.Float32:
			anyFloat = true
		case k == reflect.Float64:
			anyFloat = true
			allF32 = false
		default:
			allF32 = false
		}
	}
	switch {
	case anyFloat && allF32:
		return reflect.Float32, true
	case anyFloat:
		return reflect.Float64, true
	default:
		return reflect.Int64, true
	}
}
