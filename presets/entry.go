// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets provides the directory of named preset colors that a
// color field offers for selection, and the derived, searchable form
// of its captions.
package presets

import (
	"fmt"

	"cogentcore.org/colorfield/colors"
	"cogentcore.org/colorfield/enums"
)

// CaptionModes determines how the caption of an [Entry] is interpreted.
type CaptionModes int32

const (
	// Plain captions are displayed and matched verbatim.
	Plain CaptionModes = iota

	// Markup captions are HTML fragments; only their text
	// content is used for matching.
	Markup
)

var captionModesNames = []string{"Plain", "Markup"}

func (i CaptionModes) String() string { return enums.String(i, captionModesNames) }

// SetString sets the caption mode from its name.
func (i *CaptionModes) SetString(s string) error {
	return enums.SetString(i, s, captionModesNames, "CaptionModes")
}

// IsValid returns whether the value is a valid caption mode.
func (i CaptionModes) IsValid() bool { return i >= 0 && int(i) < len(captionModesNames) }

// Strings returns the names of all caption modes.
func (i CaptionModes) Strings() []string { return enums.Strings(captionModesNames) }

// Values returns all caption modes.
func (i CaptionModes) Values() []CaptionModes {
	return enums.Values[CaptionModes](len(captionModesNames))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i CaptionModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (i *CaptionModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Entry is one preset color. Entries are owned by whoever supplies the
// [Directory] and are never modified by this package.
type Entry struct {
	// Color is the color of the preset, in any accepted color expression;
	// it is canonicalized when the preset is selected.
	Color string

	// Caption is the displayed name of the preset.
	Caption string

	// CaptionMode is how Caption is interpreted.
	CaptionMode CaptionModes
}

// Validate returns an error if the entry color is not a color expression.
func (e Entry) Validate() error {
	if _, err := colors.Parse(e.Color); err != nil {
		return fmt.Errorf("presets: entry %q: %w", e.Caption, err)
	}
	if !e.CaptionMode.IsValid() {
		return fmt.Errorf("presets: entry %q: invalid caption mode %v", e.Caption, e.CaptionMode)
	}
	return nil
}
