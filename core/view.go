// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strings"

	"cogentcore.org/colorfield/colors"
	"cogentcore.org/colorfield/presets"
)

// DefaultSwatchValue is shown by the swatch while the field has no
// value, since a native swatch always shows some color.
const DefaultSwatchValue = "#000000"

// View contains the instructions for rendering a [ColorField].
type View struct {
	// SwatchValue is the #rrggbb color shown by the swatch.
	SwatchValue string

	// PresetText is the text shown in the preset surface.
	PresetText string

	// Items are the presets offered by the preset surface.
	Items []presets.Item

	// SelectedIndex is the index of the selected preset in Items, or -1.
	SelectedIndex int

	// ShowPresetSurface is whether the preset surface is shown;
	// it is hidden in compact mode.
	ShowPresetSurface bool

	// AllowFreeText is whether the preset surface accepts free text.
	AllowFreeText bool

	// FocusTarget is the surface that receives focus requests.
	FocusTarget Surfaces

	// Invalid marks both surfaces as invalid.
	Invalid bool

	// Disabled, ReadOnly and Required are passed through from the field.
	Disabled, ReadOnly, Required bool

	// Label, HelperText and ErrorMessage are passed through from the field.
	Label, HelperText, ErrorMessage string

	// ShowError is whether ErrorMessage is shown.
	ShowError bool

	// HelperAboveField is whether the helper text goes above the surfaces.
	HelperAboveField bool

	// Theme is the theme of the field followed by its variant names,
	// separated by spaces.
	Theme string
}

// View returns the instructions for rendering the field in its
// current state.
func (cf *ColorField) View() View {
	v := View{
		SwatchValue:       DefaultSwatchValue,
		PresetText:        cf.presetText,
		Items:             cf.Items(),
		SelectedIndex:     cf.selected,
		ShowPresetSurface: !cf.IsCompact(),
		AllowFreeText:     !cf.SuppressFreeText,
		FocusTarget:       cf.FocusTarget(),
		Invalid:           cf.invalid,
		Disabled:          cf.Disabled,
		ReadOnly:          cf.ReadOnly,
		Required:          cf.Required,
		Label:             cf.Label,
		HelperText:        cf.HelperText,
		ErrorMessage:      cf.ErrorMessage,
		ShowError:         cf.invalid,
		HelperAboveField:  cf.HasVariant(HelperAboveField),
		Theme:             cf.theme(),
	}
	if val, ok := cf.Value(); ok && colors.IsCanonical(val) {
		v.SwatchValue = val
	}
	return v
}

// theme returns the theme joined with the variant names.
func (cf *ColorField) theme() string {
	names := strings.Fields(cf.Theme)
	for _, vr := range cf.variants {
		names = append(names, vr.String())
	}
	return strings.Join(names, " ")
}
