// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is matched by every [InvalidColorError] through
	// [errors.Is]. It indicates that the input is not a color expression
	// and never will be, regardless of the environment.
	ErrInvalidColor = errors.New("invalid color expression")

	// ErrUnavailable indicates that the rendering surface used for
	// canonicalization could not be acquired. It is an environment
	// limitation, not a property of the input.
	ErrUnavailable = errors.New("canonicalization unavailable")
)

// InvalidColorError is returned when a color expression cannot be parsed.
type InvalidColorError struct {
	// Input is the expression as given by the caller.
	Input string

	// Err is the underlying parse failure, if any.
	Err error
}

func (e *InvalidColorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("colors: %q is not a color: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("colors: %q is not a color", e.Input)
}

func (e *InvalidColorError) Unwrap() error { return e.Err }

// Is makes every InvalidColorError match [ErrInvalidColor].
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

func invalid(input string, format string, a ...any) error {
	return &InvalidColorError{Input: input, Err: fmt.Errorf(format, a...)}
}
