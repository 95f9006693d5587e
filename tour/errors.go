// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tour

import "errors"

// ErrInvalidConfig is wrapped by all configuration-validation failures in
// this package.
var ErrInvalidConfig = errors.New("invalid configuration")
