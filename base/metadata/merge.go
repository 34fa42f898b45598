// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"errors"
	"fmt"
	"log/slog"
)

// Policies are the ways of reacting to a metadata conflict,
// where two merged values for the same key differ and cannot
// be combined structurally.
type Policies int32

const (
	// Warn records a [Warning] for each conflict and keeps the latest value.
	Warn Policies = iota

	// Silent keeps the latest value without reporting anything.
	Silent

	// Error aborts the merge with a [ConflictError] on the first conflict.
	Error

	// PoliciesN is the number of valid policies.
	PoliciesN
)

var policyNames = [...]string{"warn", "silent", "error"}

// String returns the lower-case name of the policy.
func (p Policies) String() string {
	if p < 0 || p >= PoliciesN {
		return fmt.Sprintf("Policies(%d)", int32(p))
	}
	return policyNames[p]
}

// SetString sets the policy from its name (silent, warn, or error).
func (p *Policies) SetString(s string) error {
	for i, nm := range policyNames {
		if nm == s {
			*p = Policies(i)
			return nil
		}
	}
	return fmt.Errorf("%w: got %q", ErrInvalidPolicy, s)
}

// Validate returns an error if the policy is not one of the valid values.
func (p Policies) Validate() error {
	if p < 0 || p >= PoliciesN {
		return fmt.Errorf("%w: got %v", ErrInvalidPolicy, p)
	}
	return nil
}

var (
	// ErrConflict is the sentinel matched by every [ConflictError].
	ErrConflict = errors.New("metadata conflict")

	// ErrInvalidPolicy is returned for a policy that is not one of
	// silent, warn, or error.
	ErrInvalidPolicy = errors.New(`metadata conflicts policy must be one of "silent", "warn", or "error"`)
)

// ConflictError is returned under the [Error] policy for the
// first conflicting key.
type ConflictError struct {
	Key         string
	Left, Right any
	Message     string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// Warning is one conflict reported under the [Warn] policy.
type Warning struct {
	Key         string
	Left, Right any
	Message     string
}

func (w Warning) String() string { return w.Message }

// Warnings collects conflict warnings, in the order they occurred.
type Warnings []Warning

// Add adds a warning to the list.
func (ws *Warnings) Add(w Warning) {
	*ws = append(*ws, w)
}

// Messages returns the text of all warnings.
func (ws Warnings) Messages() []string {
	ms := make([]string, len(ws))
	for i, w := range ws {
		ms[i] = w.Message
	}
	return ms
}

// Merger merges metadata under a conflict [Policies] setting.
// The zero value uses the [Warn] policy and only logs warnings.
type Merger struct {
	// Policy determines what happens on a conflict.
	Policy Policies

	// Warnings, if non-nil, collects every warning under the [Warn] policy.
	// If nil, warnings are logged with [slog.Warn].
	Warnings *Warnings

	// Describe, if set, returns the text for a conflict between
	// the left (earlier) and right (later) values of the given key.
	Describe func(key string, left, right any) string
}

// DescribeConflict is the default conflict description.
func DescribeConflict(key string, left, right any) string {
	return fmt.Sprintf("Cannot merge meta key %q: %v (%T) != %v (%T), choosing %s=%v", key, left, left, right, right, key, right)
}

// Merge merges the given metadata in order, returning a new Data.
// See [Merger.MergeInto] for the merge rules.
func Merge(mg *Merger, items ...*Data) (*Data, error) {
	if err := mg.Policy.Validate(); err != nil {
		return nil, err
	}
	out := &Data{}
	for _, it := range items {
		if err := mg.MergeInto(out, it); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MergeInto merges the src metadata into out, which is modified.
// For each key of src, in order:
//   - a key absent from out is added with a deep copy of the value;
//   - two mappings are merged recursively;
//   - two sequences are concatenated, out's value first;
//   - a nil value on either side yields the other value;
//   - otherwise differing values are a conflict handled according to
//     the Policy, and the src value wins unless the policy is [Error].
func (mg *Merger) MergeInto(out, src *Data) error {
	if err := mg.Policy.Validate(); err != nil {
		return err
	}
	if src == nil {
		return nil
	}
	for i, key := range src.Keys {
		val := src.Values[i]
		cur, has := out.AtTry(key)
		if !has {
			out.Set(key, CloneValue(val))
			continue
		}
		if lm, ok := AsMapping(cur); ok {
			if rm, ok := AsMapping(val); ok {
				if _, owned := cur.(*Data); !owned {
					lm = lm.Clone()
				}
				if err := mg.MergeInto(lm, rm); err != nil {
					return err
				}
				out.Set(key, lm)
				continue
			}
		}
		if IsSequence(cur) && IsSequence(val) {
			out.Set(key, concat(cur, val))
			continue
		}
		switch {
		case cur == nil:
		case val == nil:
			continue
		case !ValuesEqual(cur, val):
			if err := mg.Conflict(key, cur, val); err != nil {
				return err
			}
		}
		out.Set(key, CloneValue(val))
	}
	return nil
}

// Conflict reports a conflict between the left and right values of
// the given key according to the Policy: it returns a [ConflictError]
// under [Error], records a [Warning] under [Warn], and does nothing
// under [Silent].
func (mg *Merger) Conflict(key string, left, right any) error {
	describe := mg.Describe
	if describe == nil {
		describe = DescribeConflict
	}
	switch mg.Policy {
	case Silent:
		return nil
	case Error:
		return &ConflictError{Key: key, Left: left, Right: right, Message: describe(key, left, right)}
	case Warn:
		w := Warning{Key: key, Left: left, Right: right, Message: describe(key, left, right)}
		if mg.Warnings != nil {
			mg.Warnings.Add(w)
			slog.Debug(w.Message)
		} else {
			slog.Warn(w.Message)
		}
		return nil
	}
	return mg.Policy.Validate()
}
