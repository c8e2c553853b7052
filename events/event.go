// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events that a color field sends to its
// listeners, and the listener registry that delivers them.
package events

import (
	"fmt"
	"time"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was created.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as processed, which stops
	// any remaining listeners from receiving it.
	SetHandled()

	// Bubbles returns whether the event propagates to ancestors
	// of the element that sent it.
	Bubbles() bool

	// Composed returns whether the event crosses encapsulation
	// boundaries of the element that sent it.
	Composed() bool

	// Cancelable returns whether [Event.PreventDefault] has any effect.
	Cancelable() bool

	// PreventDefault marks the default action of a cancelable event
	// as not to be performed.
	PreventDefault()

	// DefaultPrevented returns whether PreventDefault was called
	// on a cancelable event.
	DefaultPrevented() bool
}

// Base is the base type for events.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// GenTime is the time at which the event was created.
	GenTime time.Time

	// Flags are the propagation properties of the event.
	Flags Flags

	handled   bool
	prevented bool
}

// Flags are the propagation properties of an event.
type Flags struct {
	Bubbles    bool
	Composed   bool
	Cancelable bool
}

// NewBase returns a new Base event of the given type and flags,
// created now.
func NewBase(typ Types, flags Flags) Base {
	return Base{Typ: typ, GenTime: time.Now(), Flags: flags}
}

func (ev *Base) Type() Types            { return ev.Typ }
func (ev *Base) Time() time.Time        { return ev.GenTime }
func (ev *Base) IsHandled() bool        { return ev.handled }
func (ev *Base) SetHandled()            { ev.handled = true }
func (ev *Base) Bubbles() bool          { return ev.Flags.Bubbles }
func (ev *Base) Composed() bool         { return ev.Flags.Composed }
func (ev *Base) Cancelable() bool       { return ev.Flags.Cancelable }
func (ev *Base) DefaultPrevented() bool { return ev.prevented }

func (ev *Base) PreventDefault() {
	if ev.Flags.Cancelable {
		ev.prevented = true
	}
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v, Handled: %v}", ev.Typ, ev.GenTime.Format(time.StampMilli), ev.handled)
}
