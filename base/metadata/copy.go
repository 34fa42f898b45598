// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"log/slog"
	"reflect"

	"github.com/jinzhu/copier"
)

// CloneValue returns a deep copy of the given metadata value.
// Mappings and []any sequences are copied recursively here,
// and any other slice, map, pointer or struct value is deep
// copied with [copier]. Immutable scalar values are returned as-is.
func CloneValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *Data:
		if x == nil {
			return x
		}
		return x.Clone()
	case Data:
		return *x.Clone()
	case map[string]any:
		cp := make(map[string]any, len(x))
		for k, e := range x {
			cp[k] = CloneValue(e)
		}
		return cp
	case []any:
		cp := make([]any, len(x))
		for i, e := range x {
			cp[i] = CloneValue(e)
		}
		return cp
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, complex64, complex128:
		return x
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Type().Elem())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			slog.Warn("metadata.CloneValue: could not copy value, sharing it instead", "type", rv.Type().String(), "err", err)
			return v
		}
		return dst.Interface()
	case reflect.Slice, reflect.Map, reflect.Struct:
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			slog.Warn("metadata.CloneValue: could not copy value, sharing it instead", "type", rv.Type().String(), "err", err)
			return v
		}
		return dst.Elem().Interface()
	case reflect.Array:
		dst := reflect.New(rv.Type()).Elem()
		reflect.Copy(dst, rv)
		return dst.Interface()
	}
	return v
}

// concat returns the concatenation of the two sequences, left first,
// as a new slice with deep copied elements. If both are slices of the
// same type, the result has that type, and otherwise it is a []any.
func concat(left, right any) any {
	lv := reflect.ValueOf(left)
	rv := reflect.ValueOf(right)
	if lv.Type() == rv.Type() && lv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(lv.Type(), 0, lv.Len()+rv.Len())
		out = reflect.AppendSlice(out, reflect.ValueOf(CloneValue(left)))
		out = reflect.AppendSlice(out, reflect.ValueOf(CloneValue(right)))
		return out.Interface()
	}
	out := make([]any, 0, lv.Len()+rv.Len())
	for _, sv := range []reflect.Value{lv, rv} {
		for i := range sv.Len() {
			out = append(out, CloneValue(sv.Index(i).Interface()))
		}
	}
	return out
}
