// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainCaption returns the caption of the entry as plain text:
// markup captions have their tags stripped and entities resolved,
// plain captions are returned verbatim.
func PlainCaption(e Entry) string {
	if e.CaptionMode != Markup {
		return e.Caption
	}
	return StripMarkup(e.Caption)
}

// StripMarkup parses the given string as an HTML fragment and returns
// its text content with runs of whitespace collapsed to single spaces.
// Script and style contents are dropped. If the fragment cannot be
// parsed, tags are stripped lexically instead.
func StripMarkup(s string) string {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return strings.Join(strings.Fields(html.UnescapeString(strip.StripTags(s))), " ")
	}
	var b strings.Builder
	for _, n := range nodes {
		appendText(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func appendText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		case atom.Br, atom.P, atom.Div, atom.Li:
			// block boundaries separate words
			b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}
