// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package person

import "errors"

// Validation errors.
var (
	ErrEmptyName   = errors.New("name is empty after trimming")
	ErrNegativeAge = errors.New("age must be non-negative")
)
