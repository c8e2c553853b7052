// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"cogentcore.org/colorfield/base/errors"
	"cogentcore.org/colorfield/colors"
)

// Directory is an immutable, ordered snapshot of preset entries.
// The pointer identifies the snapshot: replacing the presets of a
// field means handing it a new Directory.
type Directory struct {
	entries []Entry
}

// New returns a new [Directory] holding a copy of the given entries.
// It returns the joined validation errors of all invalid entries, and
// no directory, if any entry is invalid.
func New(entries ...Entry) (*Directory, error) {
	var errs []error
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	d := &Directory{entries: make([]Entry, len(entries))}
	copy(d.entries, entries)
	return d, nil
}

// MustNew is like [New] but panics on invalid entries.
func MustNew(entries ...Entry) *Directory {
	return errors.Must1(New(entries...))
}

// Len returns the number of entries. It is safe on a nil Directory.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// At returns the entry at the given index, and false if it is out of range.
func (d *Directory) At(idx int) (Entry, bool) {
	if idx < 0 || idx >= d.Len() {
		return Entry{}, false
	}
	return d.entries[idx], true
}

// Entries returns a copy of all entries.
func (d *Directory) Entries() []Entry {
	if d == nil {
		return nil
	}
	es := make([]Entry, len(d.entries))
	copy(es, d.entries)
	return es
}

// IndexOfColor returns the index of the first entry whose color
// canonicalizes to the given canonical hex value with the given
// canonicalizer, or -1. A nil canonicalizer means
// [colors.DefaultCanonicalizer].
func (d *Directory) IndexOfColor(cz *colors.Canonicalizer, hex string) int {
	if cz == nil {
		cz = colors.DefaultCanonicalizer
	}
	for i := 0; i < d.Len(); i++ {
		c, err := cz.ToHex(d.entries[i].Color)
		if err == nil && c == hex {
			return i
		}
	}
	return -1
}
