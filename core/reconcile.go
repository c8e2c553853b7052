// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"strings"

	"cogentcore.org/colorfield/colors"
	"cogentcore.org/colorfield/events"
	"cogentcore.org/colorfield/presets"
)

// ApplySwatchChange applies a color picked on the swatch surface, which
// is always a #rrggbb string. Malformed input is ignored. With
// [ColorField.SuppressAutoClear] the preset text becomes the new value
// and the preset with that color, if any, is selected; otherwise the
// text is left alone. It returns whether the value changed, in which
// case a change event was sent.
func (cf *ColorField) ApplySwatchChange(hex string) bool {
	if !cf.userEnabled() {
		return false
	}
	v := strings.ToLower(strings.TrimSpace(hex))
	if !colors.IsCanonical(v) {
		slog.Debug("colorfield: ignoring malformed swatch value", "value", hex)
		return false
	}
	cf.selected = cf.matchingPreset(v)
	if cf.SuppressAutoClear {
		cf.presetText = v
	}
	return cf.commit(&v, false, false, true)
}

// ApplyPresetSelection applies the selection of the preset at the given
// index of the directory. An index out of range is ignored. The preset
// text is cleared, or with [ColorField.SuppressAutoClear] set to the new
// value. It returns whether the value changed, in which case a change
// event was sent; selecting the preset that matches the current value
// again sends nothing.
func (cf *ColorField) ApplyPresetSelection(index int) bool {
	if !cf.userEnabled() {
		return false
	}
	items := cf.cache.Items(cf.presets)
	if index < 0 || index >= len(items) {
		slog.Debug("colorfield: ignoring preset selection out of range", "index", index, "len", len(items))
		return false
	}
	return cf.selectPreset(items[index])
}

// ApplyFreeText applies text typed into the preset surface. It is ignored
// with [ColorField.SuppressFreeText]. Text equal to the caption of a
// preset selects that preset. Otherwise, text that is a color expression
// becomes the canonical value, and any other text empties the field and
// marks it invalid. Text that is only whitespace clears the preset text
// without changing the value or the invalid state: a field left invalid
// by earlier text stays invalid, and its view still shows the error,
// until a valid value or a [ColorField.Reset] arrives. It returns whether
// the value or invalid state changed, in which case a change event was
// sent.
func (cf *ColorField) ApplyFreeText(text string) bool {
	if !cf.userEnabled() || cf.SuppressFreeText {
		return false
	}
	if strings.TrimSpace(text) == "" {
		cf.presetText = ""
		cf.selected = -1
		return false
	}
	if it, ok := cf.cache.Lookup(cf.presets, text); ok {
		return cf.selectPreset(it)
	}
	cf.presetText = text
	cf.selected = -1
	if !cf.canonicalizer().IsValid(text) {
		return cf.commit(nil, true, false, true)
	}
	v, degraded, err := cf.canonicalize(text)
	if err != nil {
		return cf.commit(nil, true, false, true)
	}
	return cf.commit(&v, false, degraded, true)
}

// Reset derives the state again from the given initial value, as
// [NewColorField] does, dropping any invalid state, preset text and
// selection. It applies regardless of [ColorField.Disabled] and
// [ColorField.ReadOnly]. It returns whether the value or invalid state
// changed, in which case a change event was sent.
func (cf *ColorField) Reset(initial string) bool {
	v, degraded := cf.initialValue(initial)
	cf.resetSurfaces(v)
	return cf.commit(v, false, degraded, false)
}

// selectPreset applies the selection of the given preset item.
func (cf *ColorField) selectPreset(it presets.Item) bool {
	v, degraded, err := cf.canonicalize(it.Color)
	if err != nil {
		slog.Warn("colorfield: preset is not a color", "caption", it.PlainCaption, "err", err)
		return false
	}
	if cf.SuppressAutoClear {
		cf.presetText = v
		cf.selected = it.Index
	} else {
		cf.presetText = ""
		cf.selected = -1
	}
	return cf.commit(&v, false, degraded, true)
}

// initialValue returns the value derived from an initial value,
// or nil if it is empty or not a color.
func (cf *ColorField) initialValue(initial string) (value *string, degraded bool) {
	if strings.TrimSpace(initial) == "" {
		return nil, false
	}
	v, degraded, err := cf.canonicalize(initial)
	if err != nil {
		slog.Warn("colorfield: initial value is not a color", "value", initial, "err", err)
		return nil, false
	}
	return &v, degraded
}

// resetSurfaces sets the preset text and selection for the given value.
func (cf *ColorField) resetSurfaces(value *string) {
	cf.selected = -1
	cf.presetText = ""
	if cf.SuppressAutoClear && value != nil {
		cf.presetText = *value
		cf.selected = cf.matchingPreset(*value)
	}
}

// matchingPreset returns the index of the preset whose color is the
// given value. It is -1 when there is none or when
// [ColorField.SuppressAutoClear] is off, since the preset surface is
// then cleared.
func (cf *ColorField) matchingPreset(v string) int {
	if !cf.SuppressAutoClear {
		return -1
	}
	return cf.presets.IndexOfColor(cf.canonicalizer(), v)
}

// canonicalize converts the given color expression with the canonicalizer.
// When canonicalization is unavailable, it falls back to the trimmed,
// lowercased input and reports it as degraded. The only error it returns
// is an [colors.InvalidColorError].
func (cf *ColorField) canonicalize(input string) (value string, degraded bool, err error) {
	v, err := cf.canonicalizer().ToHex(input)
	if err == nil {
		return v, false, nil
	}
	if colors.IsUnavailable(err) {
		raw := strings.ToLower(strings.TrimSpace(input))
		slog.Warn("colorfield: canonicalization unavailable, keeping raw value", "value", raw, "err", err)
		return raw, true, nil
	}
	return "", false, err
}

// commit installs the given value and invalid state and sends a change
// event if either differs from the current one. It is the only place
// that clears invalid, which it does whenever there is a value.
func (cf *ColorField) commit(value *string, invalid, degraded, fromUser bool) bool {
	if value != nil {
		invalid = false
	}
	same := cf.invalid == invalid && (cf.value == nil) == (value == nil) &&
		(value == nil || *cf.value == *value)
	cf.value = value
	cf.invalid = invalid
	cf.degraded = degraded && value != nil
	if same {
		return false
	}
	ev := events.NewChange(cf.value, cf.invalid, fromUser)
	slog.Debug("colorfield: changed", "event", ev)
	cf.listeners.Call(ev)
	return true
}
