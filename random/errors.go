// SPDX-License-Identifier: MIT
// Package: random
//
// errors.go: sentinel errors for the random package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Offending values are attached at the call site via %w wrapping,
//     never baked into the sentinel text.
//   • Sampling never panics on user input; option constructors may.

package random

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive bound for UniformInt/UniformInt64
// or an empty/inverted interval (a >= b) for UniformRange.
var ErrInvalidArgument = errors.New("random: invalid argument")

// Operation tags used in error wrapping (grep-friendly, no magic strings).
const (
	opUniformInt   = "UniformInt"
	opUniformInt64 = "UniformInt64"
	opUniformRange = "UniformRange"
)

// randomErrorf attaches the operation tag and the offending argument(s) to err.
// args is pre-formatted by the caller, e.g. "0" or "5, 2".
func randomErrorf(op, args string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, args, err)
}
