// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/colorfield/base/errors"
	"cogentcore.org/colorfield/colors"
	"github.com/muesli/termenv"
	cli "github.com/urfave/cli/v3"
)

func hexAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("no color expressions given")
	}
	return printHex(termenv.NewOutput(cmd.Root().Writer), cmd.Args().Slice())
}

// printHex prints the canonical form of each expression with a swatch,
// and returns the errors of the expressions that are not colors.
func printHex(out *termenv.Output, exprs []string) error {
	var errs []error
	for _, expr := range exprs {
		hex, err := colors.ToHex(expr)
		if err != nil {
			slog.Debug("not a color", "expression", expr, "err", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", hex, swatch(out, hex), expr)
	}
	return errors.Join(errs...)
}

// swatch returns a small block filled with the given color, or blank
// space if the output has no colors or the value is not canonical.
func swatch(out *termenv.Output, hex string) string {
	if !colors.IsCanonical(hex) || out.Profile == termenv.Ascii {
		return "  "
	}
	return out.String("  ").Background(out.Color(hex)).String()
}

func namesAction(ctx context.Context, cmd *cli.Command) error {
	printNames(termenv.NewOutput(cmd.Root().Writer), cmd.Args().Slice())
	return nil
}

// printNames prints the color keywords starting with any of the given
// prefixes, or all of them, with their canonical form and a swatch.
func printNames(out *termenv.Output, prefixes []string) {
	for _, name := range colors.Names() {
		if len(prefixes) > 0 && !slices.ContainsFunc(prefixes, func(p string) bool {
			return strings.HasPrefix(name, strings.ToLower(p))
		}) {
			continue
		}
		hex := errors.Ignore1(colors.ToHex(name))
		fmt.Fprintf(out, "%s %s %s\n", hex, swatch(out, hex), name)
	}
}
