// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/colorfield/events"

// FocusTarget returns the surface that receives focus requests: the
// preset surface, or the swatch in compact mode, where the preset
// surface is hidden.
func (cf *ColorField) FocusTarget() Surfaces {
	if cf.IsCompact() {
		return SwatchSurface
	}
	return PresetSurface
}

// Focus routes a focus request to [ColorField.FocusTarget] and sends a
// [events.Focus] event for it. A disabled field cannot be focused; it
// returns false then.
func (cf *ColorField) Focus() (Surfaces, bool) {
	target := cf.FocusTarget()
	if cf.Disabled {
		return target, false
	}
	cf.ForwardFocus(target)
	return target, true
}

// ForwardFocus sends a [events.Focus] event for the given surface,
// which the presentation layer calls when the surface gains focus.
func (cf *ColorField) ForwardFocus(target Surfaces) {
	cf.listeners.Call(events.NewFocus(events.Focus, target.String()))
}

// ForwardBlur sends a [events.Blur] event for the given surface,
// which the presentation layer calls when the surface loses focus.
func (cf *ColorField) ForwardBlur(target Surfaces) {
	cf.listeners.Call(events.NewFocus(events.Blur, target.String()))
}
