// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import "github.com/pkg/errors"

// ErrInvalidWidth is returned when building a circuit with a bus width less
// than 1. Use errors.Cause to check for it.
//
var ErrInvalidWidth = errors.New("invalid width")
