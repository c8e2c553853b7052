// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums
// and helpers for implementing their string methods.
package enums

import (
	"fmt"
	"strings"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertable to strings and must
// be able to return all of their string representations.
type Enum interface {
	fmt.Stringer

	// IsValid returns whether the value is a
	// valid option for its enum type.
	IsValid() bool

	// Strings returns the string representations of
	// all possible values this enum type has.
	Strings() []string
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error
}

// Integer is the set of underlying types enums are declared with.
type Integer interface {
	~int32 | ~int64
}

// String returns the name of the given value from the given
// name table, or its number if it is out of range.
func String[T Integer](i T, names []string) string {
	if i < 0 || int(i) >= len(names) {
		return fmt.Sprintf("%d", int64(i))
	}
	return names[int(i)]
}

// SetString sets the value from its name in the given name table,
// matching case-insensitively and ignoring dashes, so that
// "align-left" and "AlignLeft" are the same name.
func SetString[T Integer](i *T, s string, names []string, typeName string) error {
	key := normalize(s)
	for idx, nm := range names {
		if normalize(nm) == key {
			*i = T(idx)
			return nil
		}
	}
	return fmt.Errorf("%s does not belong to %s values", s, typeName)
}

// Values returns all values of an enum type with n values.
func Values[T Integer](n int) []T {
	vals := make([]T, n)
	for i := range vals {
		vals[i] = T(i)
	}
	return vals
}

// Strings returns a copy of the given name table.
func Strings(names []string) []string {
	strs := make([]string, len(names))
	copy(strs, names)
	return strs
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
}
