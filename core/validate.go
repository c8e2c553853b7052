// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"cogentcore.org/colorfield/base/errors"
	"cogentcore.org/colorfield/colors"
)

var (
	// ErrNotAColor is returned by [ColorField.Validate] while the
	// field is invalid.
	ErrNotAColor = errors.New("input is not a color")

	// ErrRequired is returned by [ColorField.Validate] while a
	// required field is empty.
	ErrRequired = errors.New("a color is required")

	// ErrMalformedValue is returned by [ColorField.SetValue] for
	// values not in #rrggbb form.
	ErrMalformedValue = errors.New("value must be of the form #rrggbb")
)

// Validate returns [ErrNotAColor] if the last free text was not a color,
// [ErrRequired] if the field is required and empty, and nil otherwise.
// The presentation layer shows [ColorField.ErrorMessage] when it fails.
func (cf *ColorField) Validate() error {
	switch {
	case cf.invalid && cf.value == nil:
		return ErrNotAColor
	case cf.Required && cf.value == nil:
		return ErrRequired
	}
	return nil
}

// SetValue sets the value programmatically. The value must be nil, for
// no value, or a #rrggbb string in any letter case; anything else returns
// an error wrapping [ErrMalformedValue] and leaves the field unchanged.
// A change event with FromUser false is sent if the value or invalid
// state changed. SetValue applies regardless of [ColorField.Disabled]
// and [ColorField.ReadOnly].
func (cf *ColorField) SetValue(value *string) error {
	if value == nil {
		cf.resetSurfaces(nil)
		cf.commit(nil, false, false, false)
		return nil
	}
	v := strings.ToLower(*value)
	if !colors.IsCanonical(v) {
		return fmt.Errorf("core.SetValue %q: %w", *value, ErrMalformedValue)
	}
	cf.selected = cf.matchingPreset(v)
	if cf.SuppressAutoClear {
		cf.presetText = v
	}
	cf.commit(&v, false, false, false)
	return nil
}
