// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/colorfield/base/errors"
	"cogentcore.org/colorfield/core"
	"cogentcore.org/colorfield/presets"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	cli "github.com/urfave/cli/v3"
)

func runAction(ctx context.Context, cmd *cli.Command) error {
	filename, err := homedir.Expand(cmd.String("config"))
	if err != nil {
		return err
	}
	c, err := core.OpenConfig(filename)
	if err != nil {
		return err
	}
	cf, err := core.NewFromConfig(c)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	var reload <-chan *presets.Directory
	if cmd.Bool("watch") {
		if reload, err = watchPresets(ctx, filename); err != nil {
			return err
		}
	}
	root := cmd.Root()
	return serve(ctx, newSession(cf, root.Writer), readLines(ctx, root.Reader), reload)
}

// serve runs the session until the input ends or the context is done.
// All access to the field happens here, so it is never used concurrently.
func serve(ctx context.Context, s *session, lines <-chan string, reload <-chan *presets.Directory) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-reload:
			s.field.SetPresets(d)
			fmt.Fprintf(s.out, "presets %d\n", d.Len())
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := s.exec(line); err != nil {
				fmt.Fprintf(s.out, "error %v\n", err)
			}
		}
	}
}

// readLines sends the lines read from r until it ends or the
// context is done, then closes the channel.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			slog.Error("reading commands", "err", err)
		}
	}()
	return lines
}

// watchPresets watches the given configuration file and sends a new
// preset directory each time it is written. The directory holding the
// file is watched, so that editors that replace the file are followed.
// Invalid configurations are logged and skipped.
func watchPresets(ctx context.Context, filename string) (<-chan *presets.Directory, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	target := filepath.Clean(filename)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		errors.Log(watcher.Close())
		return nil, err
	}
	dirs := make(chan *presets.Directory)
	go func() {
		defer func() { errors.Log(watcher.Close()) }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target ||
					!event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				d, err := loadPresets(target)
				if err != nil {
					slog.Warn("presets not reloaded", "file", target, "err", err)
					continue
				}
				slog.Info("presets reloaded", "file", target, "entries", d.Len())
				select {
				case dirs <- d:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("watching presets", "err", err)
			}
		}
	}()
	return dirs, nil
}

// loadPresets reads the presets of the given configuration file.
func loadPresets(filename string) (*presets.Directory, error) {
	c, err := core.OpenConfig(filename)
	if err != nil {
		return nil, err
	}
	return c.Directory()
}
