// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package basics

import "errors"

// ErrEmptyList is returned by Aggregate for an empty input list.
var ErrEmptyList = errors.New("empty list")
