// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// Search returns the items of the given directory whose plain caption or
// color contains the query, ignoring case. Items whose caption starts with
// the query come first; the rest are ordered by Jaro-Winkler similarity
// of the caption to the query, then by directory order. An empty query
// returns all items in directory order.
func (c *Cache) Search(d *Directory, query string) []Item {
	items := c.Items(d)
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(items)
	}

	type match struct {
		item   Item
		prefix bool
		score  float64
	}
	jw := metrics.NewJaroWinkler()
	var ms []match
	for _, it := range items {
		capt := fold.String(it.PlainCaption)
		if !strings.Contains(capt, q) && !strings.Contains(fold.String(it.Color), q) {
			continue
		}
		ms = append(ms, match{
			item:   it,
			prefix: strings.HasPrefix(capt, q),
			score:  strutil.Similarity(capt, q, jw),
		})
	}
	slices.SortStableFunc(ms, func(a, b match) int {
		switch {
		case a.prefix != b.prefix:
			if a.prefix {
				return -1
			}
			return 1
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return a.item.Index - b.item.Index
	})
	res := make([]Item, len(ms))
	for i, m := range ms {
		res[i] = m.item
	}
	return res
}

// Lookup returns the item whose plain caption equals the given text,
// ignoring case and surrounding whitespace, and false if there is none.
func (c *Cache) Lookup(d *Directory, text string) (Item, bool) {
	fold := cases.Fold()
	t := fold.String(strings.TrimSpace(text))
	if t == "" {
		return Item{}, false
	}
	for _, it := range c.Items(d) {
		if fold.String(strings.TrimSpace(it.PlainCaption)) == t {
			return it, true
		}
	}
	return Item{}, false
}
