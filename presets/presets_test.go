// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"testing"

	"cogentcore.org/colorfield/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory(t *testing.T) *Directory {
	d, err := New(
		Entry{Color: "#ff0000", Caption: "Red"},
		Entry{Color: "#336699", Caption: "<b>Steel</b> &amp; blue", CaptionMode: Markup},
		Entry{Color: "darkred", Caption: "Dark red"},
		Entry{Color: "rgb(0, 128, 0)", Caption: "Forest <i>green</i>", CaptionMode: Markup},
	)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	d := testDirectory(t)
	assert.Equal(t, 4, d.Len())
	e, ok := d.At(1)
	assert.True(t, ok)
	assert.Equal(t, "#336699", e.Color)
	_, ok = d.At(4)
	assert.False(t, ok)
	_, ok = d.At(-1)
	assert.False(t, ok)

	var nd *Directory
	assert.Equal(t, 0, nd.Len())
	assert.Nil(t, nd.Entries())
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{Color: "red", Caption: "Red"}}
	d, err := New(entries...)
	require.NoError(t, err)
	entries[0].Caption = "changed"
	e, _ := d.At(0)
	assert.Equal(t, "Red", e.Caption)

	es := d.Entries()
	es[0].Color = "blue"
	e, _ = d.At(0)
	assert.Equal(t, "red", e.Color)
}

func TestNewInvalid(t *testing.T) {
	d, err := New(
		Entry{Color: "red", Caption: "Red"},
		Entry{Color: "bogus", Caption: "Bogus"},
		Entry{Color: "#12", Caption: "Short"},
	)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.ErrorContains(t, err, `"Bogus"`)
	assert.ErrorContains(t, err, `"Short"`)
	assert.Panics(t, func() { MustNew(Entry{Color: "bogus"}) })
}

func TestIndexOfColor(t *testing.T) {
	d := testDirectory(t)
	assert.Equal(t, 2, d.IndexOfColor(nil, "#8b0000"))
	assert.Equal(t, 3, d.IndexOfColor(colors.DefaultCanonicalizer, "#008000"))
	assert.Equal(t, -1, d.IndexOfColor(nil, "#123456"))
	assert.Equal(t, -1, (*Directory)(nil).IndexOfColor(nil, "#8b0000"))

	// no entry canonicalizes without a surface
	assert.Equal(t, -1, d.IndexOfColor(&colors.Canonicalizer{}, "#8b0000"))
}

func TestPlainCaption(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Caption: "<b>Bold</b>", CaptionMode: Plain}, "<b>Bold</b>"},
		{Entry{Caption: "<b>Bold</b> red", CaptionMode: Markup}, "Bold red"},
		{Entry{Caption: "Salt &amp; pepper &lt;3", CaptionMode: Markup}, "Salt & pepper <3"},
		{Entry{Caption: "  <span style='color:red'>Red</span>\n<br>tone ", CaptionMode: Markup}, "Red tone"},
		{Entry{Caption: "A<script>alert(1)</script>B", CaptionMode: Markup}, "AB"},
		{Entry{Caption: "Line<br>break", CaptionMode: Markup}, "Line break"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, PlainCaption(test.entry), test.entry.Caption)
	}
}

func TestCacheKeyedByDirectory(t *testing.T) {
	d := testDirectory(t)
	var c Cache
	items := c.Items(d)
	require.Len(t, items, 4)
	assert.Equal(t, "Steel & blue", items[1].PlainCaption)
	assert.Equal(t, "<b>Steel</b> &amp; blue", items[1].Caption, "entries are not modified")
	assert.Equal(t, 1, items[1].Index)
	assert.Equal(t, 1, c.Builds())

	c.Items(d)
	c.Search(d, "red")
	assert.Equal(t, 1, c.Builds())

	// a new snapshot with equal contents is still a new directory
	d2 := MustNew(d.Entries()...)
	c.Items(d2)
	assert.Equal(t, 2, c.Builds())

	assert.Nil(t, c.Items(nil))
	assert.Nil(t, c.Items(nil))
	assert.Equal(t, 2, c.Builds())
}

func TestSearch(t *testing.T) {
	d := testDirectory(t)
	var c Cache

	captions := func(items []Item) []string {
		var res []string
		for _, it := range items {
			res = append(res, it.PlainCaption)
		}
		return res
	}
	assert.Equal(t, []string{"Red", "Dark red"}, captions(c.Search(d, "RED")))
	assert.Equal(t, []string{"Steel & blue"}, captions(c.Search(d, "steel &")))
	assert.Equal(t, []string{"Forest green"}, captions(c.Search(d, "green")))
	assert.Equal(t, []string{"Steel & blue"}, captions(c.Search(d, "#3366")))
	assert.Len(t, c.Search(d, ""), 4)
	assert.Empty(t, c.Search(d, "purple"))
}

func TestLookup(t *testing.T) {
	d := testDirectory(t)
	var c Cache
	it, ok := c.Lookup(d, " dark RED ")
	assert.True(t, ok)
	assert.Equal(t, 2, it.Index)
	it, ok = c.Lookup(d, "steel & blue")
	assert.True(t, ok)
	assert.Equal(t, 1, it.Index)
	_, ok = c.Lookup(d, "dark")
	assert.False(t, ok)
	_, ok = c.Lookup(d, "")
	assert.False(t, ok)
}

func TestCaptionModes(t *testing.T) {
	var m CaptionModes
	require.NoError(t, m.UnmarshalText([]byte("markup")))
	assert.Equal(t, Markup, m)
	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Markup", string(b))
	assert.Error(t, m.SetString("rich"))
	assert.Equal(t, []CaptionModes{Plain, Markup}, m.Values())
	assert.False(t, CaptionModes(5).IsValid())
}
