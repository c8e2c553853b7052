// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"log/slog"
)

// Item is the rendering-ready form of an [Entry].
type Item struct {
	Entry

	// Index is the index of the entry in its [Directory].
	Index int

	// PlainCaption is the caption as plain text, used for
	// search and typeahead matching.
	PlainCaption string
}

// Cache holds the items derived from one [Directory]. The items are
// computed the first time a directory is seen and reused until a
// different directory is passed in. The zero value is ready to use.
// A Cache must not be used concurrently.
type Cache struct {
	dir   *Directory
	items []Item

	// builds counts how many times items were derived.
	builds int
}

// Items returns the items for the given directory, deriving them only
// if the directory differs from the one last passed in.
func (c *Cache) Items(d *Directory) []Item {
	if d == c.dir && (c.items != nil || d == nil) {
		return c.items
	}
	c.dir = d
	c.items = nil
	if d == nil {
		return nil
	}
	c.items = make([]Item, len(d.entries))
	for i, e := range d.entries {
		c.items[i] = Item{Entry: e, Index: i, PlainCaption: PlainCaption(e)}
	}
	c.builds++
	slog.Debug("presets: derived captions", "entries", len(c.items), "builds", c.builds)
	return c.items
}

// Builds returns how many times items have been derived.
func (c *Cache) Builds() int { return c.builds }
