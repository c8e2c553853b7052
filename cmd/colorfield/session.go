// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/colorfield/base/errors"
	"cogentcore.org/colorfield/colors"
	"cogentcore.org/colorfield/core"
	"cogentcore.org/colorfield/events"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// session applies line commands to a color field and prints
// what the field reports.
type session struct {
	field *core.ColorField
	out   *termenv.Output
}

func newSession(cf *core.ColorField, w io.Writer) *session {
	s := &session{field: cf, out: termenv.NewOutput(w)}
	cf.OnChange(func(e events.Event) {
		ce := e.(*events.ChangeEvent)
		val := "none"
		if ce.Value != nil {
			val = *ce.Value
		}
		fmt.Fprintf(s.out, "change %s %s invalid=%v\n", val, swatch(s.out, val), ce.Invalid)
	})
	cf.OnFocus(func(e events.Event) {
		fmt.Fprintf(s.out, "focus %s\n", e.(*events.FocusEvent).Target)
	})
	return s
}

// exec runs one command line. Empty lines and lines starting
// with # are ignored.
func (s *session) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	cf := s.field
	switch name {
	case "swatch":
		if !cf.ApplySwatchChange(arg) {
			s.unchanged()
		}
	case "preset":
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("preset index %q: %w", arg, err)
		}
		if !cf.ApplyPresetSelection(idx) {
			s.unchanged()
		}
	case "text":
		if !cf.ApplyFreeText(arg) {
			s.unchanged()
		}
	case "reset":
		if !cf.Reset(arg) {
			s.unchanged()
		}
	case "set":
		var v *string
		if arg != "none" {
			v = &arg
		}
		return cf.SetValue(v)
	case "search":
		for _, it := range cf.Search(arg) {
			hex := errors.Ignore1(colors.ToHex(it.Color))
			fmt.Fprintf(s.out, "%d %s %s\n", it.Index, swatch(s.out, hex), it.PlainCaption)
		}
	case "focus":
		cf.Focus()
	case "show":
		s.show()
	case "config":
		format := arg
		if format == "" {
			format = "toml"
		}
		return cf.Config().Write(s.out, format)
	case "save":
		if arg == "" {
			return errors.New("save needs a file name")
		}
		filename, err := homedir.Expand(arg)
		if err != nil {
			return err
		}
		if err := cf.Config().Save(filename); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %s\n", filename)
	default:
		return errors.New("unknown command " + strconv.Quote(name))
	}
	return nil
}

func (s *session) unchanged() {
	fmt.Fprintln(s.out, "unchanged")
}

// show prints the rendering instructions of the field.
func (s *session) show() {
	v := s.field.View()
	fmt.Fprintf(s.out, "swatch %s %s\n", v.SwatchValue, swatch(s.out, v.SwatchValue))
	fmt.Fprintf(s.out, "state %v invalid=%v error=%q\n", s.field.State(), v.Invalid, errString(s.field.Validate()))
	if v.ShowPresetSurface {
		fmt.Fprintf(s.out, "preset-text %q selected=%d items=%d free-text=%v\n", v.PresetText, v.SelectedIndex, len(v.Items), v.AllowFreeText)
	}
	fmt.Fprintf(s.out, "focus-target %v theme=%q\n", v.FocusTarget, v.Theme)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
