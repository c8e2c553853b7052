// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/colorfield/enums"

// States are the reconciliation states of a [ColorField].
type States int32

const (
	// Empty has no value and is not invalid.
	Empty States = iota

	// Valid has a value.
	Valid

	// Invalid has no value because the last free text entered
	// was not a color.
	Invalid
)

var statesNames = []string{"Empty", "Valid", "Invalid"}

func (i States) String() string { return enums.String(i, statesNames) }

// SetString sets the state from its name.
func (i *States) SetString(s string) error { return enums.SetString(i, s, statesNames, "States") }

// IsValid returns whether the value is a valid state.
func (i States) IsValid() bool { return i >= 0 && int(i) < len(statesNames) }

// Strings returns the names of all states.
func (i States) Strings() []string { return enums.Strings(statesNames) }

// Surfaces are the two input surfaces of a [ColorField].
type Surfaces int32

const (
	// PresetSurface is the searchable preset list, which also
	// accepts free text.
	PresetSurface Surfaces = iota

	// SwatchSurface is the native color swatch.
	SwatchSurface
)

var surfacesNames = []string{"preset", "swatch"}

func (i Surfaces) String() string { return enums.String(i, surfacesNames) }

// SetString sets the surface from its name.
func (i *Surfaces) SetString(s string) error {
	return enums.SetString(i, s, surfacesNames, "Surfaces")
}

// IsValid returns whether the value is a valid surface.
func (i Surfaces) IsValid() bool { return i >= 0 && int(i) < len(surfacesNames) }

// Strings returns the names of all surfaces.
func (i Surfaces) Strings() []string { return enums.Strings(surfacesNames) }

// InputModes determine what the preset surface accepts.
type InputModes int32

const (
	// PresetAndCSS accepts presets and any color expression typed
	// as free text.
	PresetAndCSS InputModes = iota

	// NoCSSInput accepts presets only; free text is ignored.
	NoCSSInput
)

var inputModesNames = []string{"PresetAndCSS", "NoCSSInput"}

func (i InputModes) String() string { return enums.String(i, inputModesNames) }

// SetString sets the input mode from its name.
func (i *InputModes) SetString(s string) error {
	return enums.SetString(i, s, inputModesNames, "InputModes")
}

// IsValid returns whether the value is a valid input mode.
func (i InputModes) IsValid() bool { return i >= 0 && int(i) < len(inputModesNames) }

// Strings returns the names of all input modes.
func (i InputModes) Strings() []string { return enums.Strings(inputModesNames) }

// Values returns all input modes.
func (i InputModes) Values() []InputModes { return enums.Values[InputModes](len(inputModesNames)) }

// MarshalText implements the encoding.TextMarshaler interface.
func (i InputModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (i *InputModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Variants are theme variants of a [ColorField]. Their names are the
// theme names passed through to the presentation layer.
type Variants int32

const (
	// Compact hides the preset surface and routes focus to the swatch.
	Compact Variants = iota

	// Small uses the small size of the surfaces.
	Small

	// AlignLeft aligns the preset text to the left.
	AlignLeft

	// AlignCenter centers the preset text.
	AlignCenter

	// AlignRight aligns the preset text to the right.
	AlignRight

	// HelperAboveField shows the helper text above the surfaces.
	HelperAboveField
)

var variantsNames = []string{"compact", "small", "align-left", "align-center", "align-right", "helper-above-field"}

func (i Variants) String() string { return enums.String(i, variantsNames) }

// SetString sets the variant from its name.
func (i *Variants) SetString(s string) error {
	return enums.SetString(i, s, variantsNames, "Variants")
}

// IsValid returns whether the value is a valid variant.
func (i Variants) IsValid() bool { return i >= 0 && int(i) < len(variantsNames) }

// Strings returns the names of all variants.
func (i Variants) Strings() []string { return enums.Strings(variantsNames) }

// Values returns all variants.
func (i Variants) Values() []Variants { return enums.Values[Variants](len(variantsNames)) }

// MarshalText implements the encoding.TextMarshaler interface.
func (i Variants) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (i *Variants) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
