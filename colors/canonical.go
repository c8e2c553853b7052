// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
)

var canonicalRegexp = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// IsCanonical returns whether the given string is already in the
// canonical #rrggbb form, with lowercase hex digits.
func IsCanonical(s string) bool {
	return canonicalRegexp.MatchString(s)
}

// Canonicalizer converts color expressions into canonical #rrggbb strings
// by painting them onto a [Surface] and reading the pixel back.
// The zero value has no surface and reports [ErrUnavailable].
type Canonicalizer struct {
	// NewSurface acquires a fresh surface for each conversion.
	// A nil function or a returned error makes conversions fail
	// with [ErrUnavailable].
	NewSurface func() (Surface, error)
}

// DefaultCanonicalizer is the [Canonicalizer] used by [ToHex],
// backed by an in-memory raster.
var DefaultCanonicalizer = &Canonicalizer{NewSurface: NewRasterSurface}

// IsValid returns whether the expression parses as a color. It does not
// acquire a surface, so it is cheaper than [Canonicalizer.ToHex].
func (cz *Canonicalizer) IsValid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// ToHex returns the canonical #rrggbb form of the given color expression.
// Alpha is discarded after compositing onto a transparent surface, so
// fully transparent colors become #000000. The error wraps
// [ErrInvalidColor] for bad input and [ErrUnavailable] when no surface
// could be acquired.
func (cz *Canonicalizer) ToHex(input string) (string, error) {
	c, err := Parse(input)
	if err != nil {
		return "", err
	}
	if cz == nil || cz.NewSurface == nil {
		return "", fmt.Errorf("colors.ToHex: %w: no surface provider", ErrUnavailable)
	}
	sf, err := cz.NewSurface()
	if err != nil {
		return "", fmt.Errorf("colors.ToHex: %w: %w", ErrUnavailable, err)
	}
	if sf == nil {
		return "", fmt.Errorf("colors.ToHex: %w: nil surface", ErrUnavailable)
	}
	sf.Fill(c)
	return AsHex(sf.Sample()), nil
}

// AsHex formats the red, green and blue channels of the given color as a
// canonical #rrggbb string, ignoring alpha. Colors are converted to
// non-premultiplied form first.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{n.R, n.G, n.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0xf]
	}
	return string(b)
}

// ToHex converts the expression using [DefaultCanonicalizer].
func ToHex(input string) (string, error) {
	return DefaultCanonicalizer.ToHex(input)
}

// IsValid reports whether the expression parses as a color.
func IsValid(input string) bool {
	return DefaultCanonicalizer.IsValid(input)
}

// IsUnavailable returns whether the error came from a missing surface
// rather than from bad input.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
