// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"maps"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// extraNames are the CSS color keywords that are not part of the
// SVG 1.1 table in [colornames.Map].
var extraNames = map[string]color.NRGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
	"transparent":   {0x00, 0x00, 0x00, 0x00},
	// an offscreen surface has no inherited color, so currentcolor
	// resolves to the initial value
	"currentcolor": {0x00, 0x00, 0x00, 0xff},
}

// FromName returns the color for the given CSS color keyword,
// matched case-insensitively.
func FromName(name string) (color.NRGBA, bool) {
	name = strings.ToLower(name)
	if c, ok := extraNames[name]; ok {
		return c, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, false
	}
	// all colornames entries are opaque, so RGBA and NRGBA coincide
	return color.NRGBA{c.R, c.G, c.B, c.A}, true
}

// Names returns every color keyword understood by [FromName].
func Names() []string {
	names := make([]string, 0, len(colornames.Names)+len(extraNames))
	names = append(names, colornames.Names...)
	return append(names, slices.Sorted(maps.Keys(extraNames))...)
}
