// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"RED", "#ff0000"},
		{"  teal ", "#008080"},
		{"rebeccapurple", "#663399"},
		{"#f00", "#ff0000"},
		{"#F0A", "#ff00aa"},
		{"#336699", "#336699"},
		{"#ABCDEF", "#abcdef"},
		{"#11223344", "#112233"},
		{"#1234", "#112233"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgb(255 128 0)", "#ff8000"},
		{"rgb(100%, 50%, 0%)", "#ff8000"},
		{"rgba(0, 0, 255, 0.5)", "#0000ff"},
		{"rgb(0 0 255 / 50%)", "#0000ff"},
		{"rgb(300, -20, 0)", "#ff0000"},
		{"hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl(120deg 100% 25%)", "#008000"},
		{"hsl(0.5turn, 100%, 50%)", "#00ffff"},
		{"hsla(240, 100%, 50%, 0.3)", "#0000ff"},
		{"hwb(0 0% 0%)", "#ff0000"},
		{"hwb(0 50% 50%)", "#808080"},
		{"transparent", "#000000"},
		{"rgba(255, 0, 0, 0)", "#000000"},
		{"currentColor", "#000000"},
		{"rgb(none 0 0)", "#000000"},
		{"rgb(255 NONE 0)", "#ff0000"},
		{"hsl(none 100% 50%)", "#ff0000"},
		{"hsl(120 100 50)", "#00ff00"},
		{"rgb(0 0 255 / none)", "#000000"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ToHex(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
			assert.True(t, IsCanonical(got))
		})
	}
}

func TestToHexIdempotent(t *testing.T) {
	for _, in := range []string{"red", "#ABC", "hsl(200, 40%, 60%)", "rgb(12 34 56 / 0.7)", "papayawhip"} {
		once, err := ToHex(in)
		require.NoError(t, err)
		twice, err := ToHex(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, in)
	}
}

func TestToHexInvalid(t *testing.T) {
	for _, in := range []string{
		"", "   ", "not-a-color", "#12", "#12345", "#ggg", "rgb(1, 2)", "rgb(1 2 3 4)",
		"rgb(1, 2, 3,)", "rgb(1 2 3 /)", "hsl(10, 20%, 30%", "red blue", "foo(1, 2, 3)",
		"hsl(10px 20% 30%)", "rgb(a, b, c)", "#fff red",
		"hsl(120, 100, 50)", "hsl(120, 100%, 50)", "rgb(255, 50%, 0)", "hwb(0, 0%, 0%)",
		"rgb(none, 0, 0)", "rgb(none 0)",
	} {
		t.Run(in, func(t *testing.T) {
			assert.False(t, IsValid(in))
			_, err := ToHex(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColor)
			assert.False(t, IsUnavailable(err))
			var ice *InvalidColorError
			require.True(t, errors.As(err, &ice))
			assert.Equal(t, in, ice.Input)
		})
	}
}

func TestToHexUnavailable(t *testing.T) {
	cz := &Canonicalizer{}
	_, err := cz.ToHex("red")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidColor)

	cz.NewSurface = func() (Surface, error) { return nil, errors.New("no canvas") }
	_, err = cz.ToHex("red")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "no canvas")

	// bad input is reported as such even without a surface
	_, err = cz.ToHex("nope")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.True(t, cz.IsValid("red"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#000000", AsHex(color.NRGBA{}))
	assert.Equal(t, "#0a0b0c", AsHex(color.NRGBA{10, 11, 12, 255}))
	assert.Equal(t, "#ffffff", AsHex(color.White))
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("#336699"))
	assert.False(t, IsCanonical("#33669"))
	assert.False(t, IsCanonical("#33669A"))
	assert.False(t, IsCanonical("336699"))
}

func TestFromName(t *testing.T) {
	c, ok := FromName("CornflowerBlue")
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{0x64, 0x95, 0xed, 0xff}, c)
	_, ok = FromName("notacolor")
	assert.False(t, ok)
	assert.Contains(t, Names(), "rebeccapurple")
	assert.Contains(t, Names(), "aliceblue")
}
