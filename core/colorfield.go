// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides [ColorField], the value reconciler behind a color
// input made of a native swatch and a searchable preset list. It keeps one
// canonical color value in sync with both surfaces, tracks whether the
// last free text was a color, and notifies listeners of every change.
//
// The presentation layer calls the Apply methods when the user interacts
// with a surface and renders the [View] the field returns.
package core

import (
	"log/slog"
	"slices"

	"cogentcore.org/colorfield/colors"
	"cogentcore.org/colorfield/events"
	"cogentcore.org/colorfield/presets"
)

// ColorField holds the state of one color input. Create it with
// [NewColorField]. A ColorField must not be used concurrently.
type ColorField struct {
	// Label is passed through to the presentation layer.
	Label string

	// HelperText is passed through to the presentation layer.
	HelperText string

	// ErrorMessage is shown by the presentation layer while the
	// field is invalid.
	ErrorMessage string

	// Theme is the theme name passed through to the presentation layer;
	// the names of the [Variants] are appended to it.
	Theme string

	// Disabled makes the field ignore user input.
	Disabled bool

	// ReadOnly makes the field ignore user input while
	// still showing its value normally.
	ReadOnly bool

	// Required makes [ColorField.Validate] fail while the field is empty.
	Required bool

	// Compact hides the preset surface and routes focus to the swatch.
	// The [Compact] variant has the same effect.
	Compact bool

	// SuppressFreeText makes the preset surface ignore free text,
	// so that only presets and the swatch can change the value.
	SuppressFreeText bool

	// SuppressAutoClear keeps the canonical value in the preset text
	// after a swatch change or preset selection, instead of
	// clearing the text.
	SuppressAutoClear bool

	// Canonicalizer converts free text and preset colors into canonical
	// values. If it is nil, [colors.DefaultCanonicalizer] is used.
	Canonicalizer *colors.Canonicalizer

	// variants are the theme variants.
	variants []Variants

	// value is the canonical value, or nil if there is none.
	value *string

	// invalid is whether the last free text was not a color.
	// It is never true while value is set.
	invalid bool

	// degraded is whether value holds raw input because
	// canonicalization was unavailable.
	degraded bool

	// presetText is the text shown in the preset surface.
	presetText string

	// selected is the index of the selected preset, or -1.
	selected int

	// presets is the directory of presets offered, owned by the caller.
	presets *presets.Directory

	// cache holds the captions derived from presets.
	cache presets.Cache

	// listeners are the event listeners.
	listeners events.Listeners
}

// NewColorField returns a new color field with the given initial value,
// which may be any color expression or empty for no value. An initial
// value that is not a color leaves the field empty.
func NewColorField(initial string) *ColorField {
	cf := &ColorField{}
	cf.value, cf.degraded = cf.initialValue(initial)
	cf.resetSurfaces(cf.value)
	return cf
}

// SetLabel sets [ColorField.Label].
func (cf *ColorField) SetLabel(v string) *ColorField { cf.Label = v; return cf }

// SetHelperText sets [ColorField.HelperText].
func (cf *ColorField) SetHelperText(v string) *ColorField { cf.HelperText = v; return cf }

// SetErrorMessage sets [ColorField.ErrorMessage].
func (cf *ColorField) SetErrorMessage(v string) *ColorField { cf.ErrorMessage = v; return cf }

// SetTheme sets [ColorField.Theme].
func (cf *ColorField) SetTheme(v string) *ColorField { cf.Theme = v; return cf }

// SetDisabled sets [ColorField.Disabled].
func (cf *ColorField) SetDisabled(v bool) *ColorField { cf.Disabled = v; return cf }

// SetReadOnly sets [ColorField.ReadOnly].
func (cf *ColorField) SetReadOnly(v bool) *ColorField { cf.ReadOnly = v; return cf }

// SetRequired sets [ColorField.Required].
func (cf *ColorField) SetRequired(v bool) *ColorField { cf.Required = v; return cf }

// SetCompact sets [ColorField.Compact].
func (cf *ColorField) SetCompact(v bool) *ColorField { cf.Compact = v; return cf }

// SetSuppressFreeText sets [ColorField.SuppressFreeText].
func (cf *ColorField) SetSuppressFreeText(v bool) *ColorField { cf.SuppressFreeText = v; return cf }

// SetSuppressAutoClear sets [ColorField.SuppressAutoClear].
func (cf *ColorField) SetSuppressAutoClear(v bool) *ColorField { cf.SuppressAutoClear = v; return cf }

// SetCanonicalizer sets [ColorField.Canonicalizer].
func (cf *ColorField) SetCanonicalizer(v *colors.Canonicalizer) *ColorField {
	cf.Canonicalizer = v
	return cf
}

// SetInputMode sets [ColorField.SuppressFreeText] from the given mode.
func (cf *ColorField) SetInputMode(mode InputModes) *ColorField {
	cf.SuppressFreeText = mode == NoCSSInput
	return cf
}

// InputMode returns the input mode that corresponds to
// [ColorField.SuppressFreeText].
func (cf *ColorField) InputMode() InputModes {
	if cf.SuppressFreeText {
		return NoCSSInput
	}
	return PresetAndCSS
}

// SetVariants sets the theme variants, dropping duplicates.
func (cf *ColorField) SetVariants(vs ...Variants) *ColorField {
	cf.variants = nil
	for _, v := range vs {
		if !slices.Contains(cf.variants, v) {
			cf.variants = append(cf.variants, v)
		}
	}
	return cf
}

// Variants returns the theme variants.
func (cf *ColorField) Variants() []Variants { return slices.Clone(cf.variants) }

// HasVariant returns whether the field has the given variant.
func (cf *ColorField) HasVariant(v Variants) bool { return slices.Contains(cf.variants, v) }

// IsCompact returns whether the field is in compact mode, either through
// [ColorField.Compact] or the [Compact] variant.
func (cf *ColorField) IsCompact() bool { return cf.Compact || cf.HasVariant(Compact) }

// SetPresets sets the directory of presets offered by the preset surface.
// The directory is not copied; the captions derived from it are cached
// until a different directory is set. The selection is dropped.
func (cf *ColorField) SetPresets(d *presets.Directory) *ColorField {
	if d != cf.presets {
		cf.selected = -1
		slog.Debug("colorfield: presets set", "entries", d.Len())
	}
	cf.presets = d
	return cf
}

// Presets returns the directory of presets.
func (cf *ColorField) Presets() *presets.Directory { return cf.presets }

// Items returns the rendering-ready presets.
func (cf *ColorField) Items() []presets.Item { return cf.cache.Items(cf.presets) }

// Search returns the presets matching the given query.
// See [presets.Cache.Search].
func (cf *ColorField) Search(query string) []presets.Item {
	return cf.cache.Search(cf.presets, query)
}

// Value returns the current value and whether there is one.
// The value is in canonical #rrggbb form unless [ColorField.Degraded].
func (cf *ColorField) Value() (string, bool) {
	if cf.value == nil {
		return "", false
	}
	return *cf.value, true
}

// HasValue returns whether the field has a value.
func (cf *ColorField) HasValue() bool { return cf.value != nil }

// IsInvalid returns whether the last free text entered was not a color.
// It is false whenever the field has a value.
func (cf *ColorField) IsInvalid() bool { return cf.invalid }

// Degraded returns whether the value is raw input, stored because the
// canonicalizer was unavailable when it was entered.
func (cf *ColorField) Degraded() bool { return cf.degraded }

// State returns the reconciliation state of the field.
func (cf *ColorField) State() States {
	switch {
	case cf.value != nil:
		return Valid
	case cf.invalid:
		return Invalid
	}
	return Empty
}

// PresetText returns the text shown in the preset surface.
func (cf *ColorField) PresetText() string { return cf.presetText }

// SelectedIndex returns the index of the selected preset, or -1.
func (cf *ColorField) SelectedIndex() int { return cf.selected }

// OnChange adds an event listener function for [events.Change] events.
// The event is an [*events.ChangeEvent]. Listeners run after the new
// state is committed, so marking the event handled or preventing its
// default does not undo the change.
func (cf *ColorField) OnChange(fun func(e events.Event)) *ColorField {
	cf.listeners.Add(events.Change, fun)
	return cf
}

// OnFocus adds an event listener function for [events.Focus] events.
func (cf *ColorField) OnFocus(fun func(e events.Event)) *ColorField {
	cf.listeners.Add(events.Focus, fun)
	return cf
}

// OnBlur adds an event listener function for [events.Blur] events.
func (cf *ColorField) OnBlur(fun func(e events.Event)) *ColorField {
	cf.listeners.Add(events.Blur, fun)
	return cf
}

// canonicalizer returns the canonicalizer in use.
func (cf *ColorField) canonicalizer() *colors.Canonicalizer {
	if cf.Canonicalizer != nil {
		return cf.Canonicalizer
	}
	return colors.DefaultCanonicalizer
}

// userEnabled returns whether user input is accepted.
func (cf *ColorField) userEnabled() bool { return !cf.Disabled && !cf.ReadOnly }
