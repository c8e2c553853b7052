// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("shown", "value", "#336699")
	l.With("field", "color").WithGroup("ev").Warn("changed", "n", 1)
	assert.Equal(t, "INFO shown value=#336699\nWARN changed field=color ev.n=1\n", buf.String())
}

func TestHandlerUserLevel(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, nil))
	UserLevel = slog.LevelError
	l.Warn("hidden")
	UserLevel = slog.LevelDebug
	l.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}
