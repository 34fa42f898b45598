// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides an ordered map of named any elements
// with generic support for type-safe Get and nil-safe Set, and
// a [Merger] that combines multiple metadata maps under a
// conflict [Policies] setting.
//
// Values are typically scalars, slices (sequences) or nested
// mappings, which are represented as *Data (map[string]any is
// also accepted as a mapping, with its keys taken in sorted order).
package metadata

import (
	"fmt"
	"reflect"
	"slices"
	"sort"

	"cogentcore.org/tablemerge/base/keylist"
)

// Data is metadata as an ordered map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// Keys retain the order in which they were first set.
// The zero value is ready to use.
type Data struct {
	keylist.List[string, any]
}

// New returns a new Data from the given key, value pairs, e.g.,
//
//	metadata.New("b", []any{1, 2}, "c", metadata.New("a", 1))
//
// It panics if a key is not a string.
func New(keyValues ...any) *Data {
	md := &Data{}
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("metadata.New: key %v is not a string", keyValues[i]))
		}
		md.Set(key, keyValues[i+1])
	}
	return md
}

// FromMap returns a new Data with the entries of the given map,
// in sorted key order, so that the result is deterministic.
func FromMap(m map[string]any) *Data {
	md := &Data{}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		md.Set(k, m[k])
	}
	return md
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md *Data, key string) (T, error) {
	var z T
	x, ok := md.AtTry(key)
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// Delete removes the given key, returning false if not present.
func (md *Data) Delete(key string) bool {
	return md.DeleteByKey(key)
}

// Clear removes all entries.
func (md *Data) Clear() {
	md.Reset()
}

// Clone returns a deep copy of the metadata: nested mappings,
// sequences and pointer values are all copied, so that changes
// to the source are never visible in the clone.
func (md *Data) Clone() *Data {
	cp := &Data{}
	if md == nil {
		return cp
	}
	for i, k := range md.Keys {
		cp.Set(k, CloneValue(md.Values[i]))
	}
	return cp
}

// Copy sets a deep copy of every entry of the source
// into this metadata, replacing existing values for the same keys.
func (md *Data) Copy(src *Data) {
	if src == nil {
		return
	}
	for i, k := range src.Keys {
		md.Set(k, CloneValue(src.Values[i]))
	}
}

// Equal returns true if both have the same keys in the same order,
// with equal values. Nested mappings are compared with Equal.
func (md *Data) Equal(other *Data) bool {
	if md.Len() != other.Len() {
		return false
	}
	if md.Len() == 0 {
		return true
	}
	if !slices.Equal(md.Keys, other.Keys) {
		return false
	}
	for i, v := range md.Values {
		if !ValuesEqual(v, other.Values[i]) {
			return false
		}
	}
	return true
}

// ValuesEqual returns true if the two metadata values are equal,
// comparing mappings in order with [Data.Equal] and everything else
// with [reflect.DeepEqual].
func ValuesEqual(a, b any) bool {
	am, aok := AsMapping(a)
	bm, bok := AsMapping(b)
	if aok || bok {
		return aok && bok && am.Equal(bm)
	}
	as, aok := a.([]any)
	bs, bok := b.([]any)
	if aok && bok {
		return slices.EqualFunc(as, bs, ValuesEqual)
	}
	return reflect.DeepEqual(a, b)
}

// AsMapping returns the given value as a *Data if it is
// a mapping (*Data, Data or map[string]any).
// A map[string]any is converted with [FromMap].
func AsMapping(v any) (*Data, bool) {
	switch x := v.(type) {
	case *Data:
		if x == nil {
			return nil, false
		}
		return x, true
	case Data:
		return &x, true
	case map[string]any:
		return FromMap(x), true
	}
	return nil, false
}

// IsSequence returns true if the given value is a slice or array,
// other than a string or []byte.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

// String returns a string representation of the metadata.
func (md *Data) String() string {
	if md == nil {
		return "{}"
	}
	return md.List.String()
}
