// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "cogentcore.org/tablemerge/base/errors"

// SetName sets the "name" standard key.
func (md *Data) SetName(name string) {
	md.Set("name", name)
}

// Name returns the "name" standard key value (empty if not set).
func (md *Data) Name() string {
	return errors.Ignore1(Get[string](md, "name"))
}

// SetDoc sets the "doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("doc", doc)
}

// Doc returns the "doc" standard key value (empty if not set).
func (md *Data) Doc() string {
	return errors.Ignore1(Get[string](md, "doc"))
}
