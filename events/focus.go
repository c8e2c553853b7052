// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// FocusEvent is a [Focus] or [Blur] event, forwarded from the
// sub-element named by Target.
type FocusEvent struct {
	Base

	// Target is the name of the sub-element that gained or lost focus.
	Target string
}

// NewFocus returns a new [Focus] or [Blur] event for the given target.
// Focus events bubble and are composed but cannot be canceled.
func NewFocus(typ Types, target string) *FocusEvent {
	return &FocusEvent{Base: NewBase(typ, Flags{Bubbles: true, Composed: true}), Target: target}
}

func (ev *FocusEvent) String() string {
	return fmt.Sprintf("%v{Target: %s}", ev.Typ, ev.Target)
}
