// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "cogentcore.org/colorfield/enums"

// Types determines the type of an event, and also the
// level at which one can select which events to listen to.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Change is sent when the committed value of a field has changed.
	// It is never sent for a transition that leaves the value as it was.
	Change

	// Focus is sent when an element receives the input focus.
	Focus

	// Blur is sent when an element loses the input focus.
	Blur
)

var typesNames = []string{"UnknownType", "Change", "Focus", "Blur"}

func (i Types) String() string { return enums.String(i, typesNames) }

// SetString sets the event type from its name.
func (i *Types) SetString(s string) error { return enums.SetString(i, s, typesNames, "Types") }

// Values returns all event types.
func (i Types) Values() []Types { return enums.Values[Types](len(typesNames)) }

// MarshalText implements the encoding.TextMarshaler interface.
func (i Types) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (i *Types) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
