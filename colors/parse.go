// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	typ  css.TokenType
	text string
}

// lex splits the expression into CSS tokens, dropping whitespace and comments.
func lex(input string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(input))
	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return toks, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		toks = append(toks, token{typ: tt, text: string(data)})
	}
}

// Parse parses the given CSS color expression into a non-premultiplied
// color. It accepts color keywords, hex notation in 3, 4, 6 and 8 digit
// forms, and the rgb, rgba, hsl, hsla and hwb functions in both the
// legacy comma syntax and the space-separated syntax with an optional
// "/ alpha" component. The legacy syntax follows the older CSS rules:
// rgb components are all numbers or all percentages, hsl saturation and
// lightness are percentages, and hwb has no legacy form. In the
// space-separated syntax "none" stands for a zero component.
// The returned error is always an [*InvalidColorError].
func Parse(input string) (color.NRGBA, error) {
	expr := strings.TrimSpace(input)
	if expr == "" {
		return color.NRGBA{}, invalid(input, "empty expression")
	}
	toks, err := lex(expr)
	if err != nil {
		return color.NRGBA{}, &InvalidColorError{Input: input, Err: err}
	}
	if len(toks) == 0 {
		return color.NRGBA{}, invalid(input, "empty expression")
	}
	first := toks[0]
	switch first.typ {
	case css.IdentToken:
		if len(toks) != 1 {
			return color.NRGBA{}, invalid(input, "unexpected %q after keyword", toks[1].text)
		}
		c, ok := FromName(first.text)
		if !ok {
			return color.NRGBA{}, invalid(input, "unknown color name %q", first.text)
		}
		return c, nil
	case css.HashToken:
		if len(toks) != 1 {
			return color.NRGBA{}, invalid(input, "unexpected %q after hex color", toks[1].text)
		}
		c, ok := fromHex(strings.TrimPrefix(first.text, "#"))
		if !ok {
			return color.NRGBA{}, invalid(input, "malformed hex color %q", first.text)
		}
		return c, nil
	case css.FunctionToken:
		last := toks[len(toks)-1]
		if len(toks) < 2 || last.typ != css.RightParenthesisToken {
			return color.NRGBA{}, invalid(input, "unterminated function")
		}
		name := strings.ToLower(strings.TrimSuffix(first.text, "("))
		c, err := parseFunction(name, toks[1:len(toks)-1])
		if err != nil {
			return color.NRGBA{}, &InvalidColorError{Input: input, Err: err}
		}
		return c, nil
	}
	return color.NRGBA{}, invalid(input, "unexpected %q", first.text)
}

// fromHex decodes hex digits (without the leading #) in 3, 4, 6 or 8 digit form.
func fromHex(hex string) (color.NRGBA, bool) {
	var v uint64
	var err error
	switch len(hex) {
	case 3, 4:
		v, err = strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.NRGBA{}, false
		}
		nib := func(shift int) uint8 {
			n := uint8(v>>shift) & 0xf
			return n<<4 | n
		}
		if len(hex) == 3 {
			return color.NRGBA{nib(8), nib(4), nib(0), 0xff}, true
		}
		return color.NRGBA{nib(12), nib(8), nib(4), nib(0)}, true
	case 6:
		v, err = strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
	case 8:
		v, err = strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
	}
	return color.NRGBA{}, false
}

// splitArgs returns the three main components and the optional alpha
// component of a color function argument list, and whether the list
// uses the legacy comma syntax.
func splitArgs(args []token) (main []token, alpha *token, legacy bool, err error) {
	hasComma := false
	for _, t := range args {
		if t.typ == css.CommaToken {
			hasComma = true
			break
		}
	}
	if hasComma {
		// a, b, c[, d]
		for i, t := range args {
			if i%2 == 1 {
				if t.typ != css.CommaToken {
					return nil, nil, false, errors.New("expected a comma between arguments")
				}
				continue
			}
			if t.typ == css.CommaToken {
				return nil, nil, false, errors.New("missing argument")
			}
			main = append(main, t)
		}
		if len(args)%2 == 0 {
			return nil, nil, false, errors.New("trailing comma")
		}
	} else {
		// a b c[ / d]
		for i, t := range args {
			if t.typ == css.DelimToken && t.text == "/" {
				if i != 3 || len(args) != 5 {
					return nil, nil, false, errors.New("misplaced alpha separator")
				}
				alpha = &args[4]
				break
			}
			main = append(main, t)
		}
	}
	switch len(main) {
	case 3:
	case 4:
		if alpha != nil || !hasComma {
			return nil, nil, false, errors.New("too many arguments")
		}
		alpha = &main[3]
		main = main[:3]
	default:
		return nil, nil, false, errors.New("expected three color components")
	}
	return main, alpha, hasComma, nil
}

// zero stands in for a "none" component.
var zero = token{typ: css.NumberToken, text: "0"}

func isNone(t token) bool {
	return t.typ == css.IdentToken && strings.EqualFold(t.text, "none")
}

func parseFunction(name string, args []token) (color.NRGBA, error) {
	main, alphaTok, legacy, err := splitArgs(args)
	if err != nil {
		return color.NRGBA{}, err
	}
	if legacy {
		if err := checkLegacy(name, main); err != nil {
			return color.NRGBA{}, err
		}
	} else {
		for i := range main {
			if isNone(main[i]) {
				main[i] = zero
			}
		}
		if alphaTok != nil && isNone(*alphaTok) {
			alphaTok = &zero
		}
	}
	a := uint8(0xff)
	if alphaTok != nil {
		if a, err = alphaByte(*alphaTok); err != nil {
			return color.NRGBA{}, err
		}
	}
	switch name {
	case "rgb", "rgba":
		var ch [3]uint8
		for i, t := range main {
			if ch[i], err = rgbByte(t); err != nil {
				return color.NRGBA{}, err
			}
		}
		return color.NRGBA{ch[0], ch[1], ch[2], a}, nil
	case "hsl", "hsla":
		h, err := hue(main[0])
		if err != nil {
			return color.NRGBA{}, err
		}
		s, err := fraction(main[1])
		if err != nil {
			return color.NRGBA{}, err
		}
		l, err := fraction(main[2])
		if err != nil {
			return color.NRGBA{}, err
		}
		r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
		return color.NRGBA{r, g, b, a}, nil
	case "hwb":
		h, err := hue(main[0])
		if err != nil {
			return color.NRGBA{}, err
		}
		w, err := fraction(main[1])
		if err != nil {
			return color.NRGBA{}, err
		}
		bk, err := fraction(main[2])
		if err != nil {
			return color.NRGBA{}, err
		}
		var c colorful.Color
		if w+bk >= 1 {
			gray := w / (w + bk)
			c = colorful.Color{R: gray, G: gray, B: gray}
		} else {
			c = colorful.Hsl(h, 1, 0.5)
			c.R = c.R*(1-w-bk) + w
			c.G = c.G*(1-w-bk) + w
			c.B = c.B*(1-w-bk) + w
		}
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{r, g, b, a}, nil
	}
	return color.NRGBA{}, errors.New("unknown color function " + name + "()")
}

// checkLegacy checks the component types of the legacy comma syntax.
func checkLegacy(name string, main []token) error {
	switch name {
	case "rgb", "rgba":
		for _, t := range main[1:] {
			if t.typ != main[0].typ {
				return errors.New("mixed numbers and percentages in " + name + "()")
			}
		}
	case "hsl", "hsla":
		for _, t := range main[1:] {
			if t.typ != css.PercentageToken {
				return errors.New("expected a percentage in " + name + "(), got " + t.text)
			}
		}
	case "hwb":
		return errors.New("hwb() takes no commas")
	}
	return nil
}

func number(t token) (float64, error) {
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("malformed number " + t.text)
	}
	return v, nil
}

func percentage(t token) (float64, error) {
	return number(token{typ: css.NumberToken, text: strings.TrimSuffix(t.text, "%")})
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func rgbByte(t token) (uint8, error) {
	switch t.typ {
	case css.NumberToken:
		v, err := number(t)
		return clampByte(v), err
	case css.PercentageToken:
		v, err := percentage(t)
		return clampByte(v * 255 / 100), err
	}
	return 0, errors.New("expected a number or percentage, got " + t.text)
}

func alphaByte(t token) (uint8, error) {
	switch t.typ {
	case css.NumberToken:
		v, err := number(t)
		return clampByte(v * 255), err
	case css.PercentageToken:
		v, err := percentage(t)
		return clampByte(v * 255 / 100), err
	}
	return 0, errors.New("expected an alpha value, got " + t.text)
}

// fraction reads a saturation, lightness, whiteness or blackness
// component as a value between 0 and 1.
func fraction(t token) (float64, error) {
	var v float64
	var err error
	switch t.typ {
	case css.PercentageToken:
		v, err = percentage(t)
	case css.NumberToken:
		v, err = number(t)
	default:
		return 0, errors.New("expected a percentage, got " + t.text)
	}
	return math.Max(0, math.Min(1, v/100)), err
}

// hue reads an angle and normalizes it to degrees in [0, 360).
func hue(t token) (float64, error) {
	var deg float64
	switch t.typ {
	case css.NumberToken:
		v, err := number(t)
		if err != nil {
			return 0, err
		}
		deg = v
	case css.DimensionToken:
		num, unit := splitDimension(t.text)
		v, err := number(token{typ: css.NumberToken, text: num})
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(unit) {
		case "deg":
			deg = v
		case "grad":
			deg = v * 360 / 400
		case "rad":
			deg = v * 180 / math.Pi
		case "turn":
			deg = v * 360
		default:
			return 0, errors.New("unknown angle unit " + unit)
		}
	default:
		return 0, errors.New("expected a hue, got " + t.text)
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

// splitDimension separates the numeric prefix of a dimension token from its unit.
func splitDimension(s string) (num, unit string) {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			end = i + 1
			continue
		}
		if (r == 'e' || r == 'E') && i+1 < len(s) && (s[i+1] >= '0' && s[i+1] <= '9' || s[i+1] == '-' || s[i+1] == '+') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end], s[end:]
}
