// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorfield canonicalizes color expressions and drives a
// color field from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/colorfield/base/logx"
	cli "github.com/urfave/cli/v3"
)

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logx.UserLevel = logx.LevelFromFlags(cmd.Bool("vv"), cmd.Bool("verbose"), cmd.Bool("quiet"))
	logx.SetDefaultLogger()
	return ctx, nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "colorfield",
		Usage:           "canonicalize color expressions and drive a color field",
		HideHelpCommand: true,
		Before:          setupLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "show info messages"},
			&cli.BoolFlag{Name: "vv", Usage: "show debug messages"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "show only errors"},
		},
		Commands: []*cli.Command{
			{
				Name:      "hex",
				Usage:     "Prints the canonical #rrggbb form of color expressions",
				ArgsUsage: "EXPRESSION...",
				Action:    hexAction,
			},
			{
				Name:      "names",
				Usage:     "Lists the color keywords, optionally only those starting with PREFIX",
				ArgsUsage: "[PREFIX...]",
				Action:    namesAction,
			},
			{
				Name:      "run",
				Usage:     "Drives a color field with commands read from standard input",
				ArgsUsage: " ",
				Action:    runAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Required: true,
						Usage: "load the field configuration from `FILE` (TOML or YAML)"},
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"},
						Usage: "reload the presets when the configuration file changes"},
				},
				Description: `Commands, one per line:
    swatch HEX      apply a swatch change
    preset INDEX    select the preset at INDEX
    text TEXT       enter free text in the preset surface
    reset [VALUE]   reset the field to VALUE, or empty
    set HEX|none    set the value programmatically
    search QUERY    list the presets matching QUERY
    focus           route a focus request
    show            print the rendering instructions
    config [FORMAT] print the configuration of the field as TOML or YAML
    save FILE       save the configuration of the field to FILE`,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorfield: %v\n", err)
		os.Exit(1)
	}
}
