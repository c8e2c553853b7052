// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// ChangeFlags are the propagation properties of every [ChangeEvent]:
// it bubbles, crosses encapsulation boundaries and is cancelable.
var ChangeFlags = Flags{Bubbles: true, Composed: true, Cancelable: true}

// ChangeEvent reports a change of the committed value of a color field.
type ChangeEvent struct {
	Base

	// Value is the committed value after the change, as a canonical
	// "#rrggbb" string, or nil if the field is now empty.
	Value *string

	// Invalid is whether the field is in the invalid state
	// after the change.
	Invalid bool

	// FromUser is whether the change came from a user interaction
	// rather than from a programmatic assignment.
	FromUser bool
}

// NewChange returns a new [Change] event for the given value.
// The value is copied.
func NewChange(value *string, invalid, fromUser bool) *ChangeEvent {
	ev := &ChangeEvent{Base: NewBase(Change, ChangeFlags), Invalid: invalid, FromUser: fromUser}
	if value != nil {
		v := *value
		ev.Value = &v
	}
	return ev
}

// HasValue returns whether the event carries a value.
func (ev *ChangeEvent) HasValue() bool { return ev.Value != nil }

func (ev *ChangeEvent) String() string {
	val := "<nil>"
	if ev.Value != nil {
		val = *ev.Value
	}
	return fmt.Sprintf("%v{Value: %s, Invalid: %v, FromUser: %v}", ev.Typ, val, ev.Invalid, ev.FromUser)
}
