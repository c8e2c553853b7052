// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type preset struct {
	Color   string `toml:"color"`
	Caption string `toml:"caption"`
}

type field struct {
	Label   string   `toml:"label"`
	Presets []preset `toml:"presets"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "field.toml")
	f := field{Label: "Color", Presets: []preset{{"#336699", "Steel blue"}}}
	require.NoError(t, Save(&f, fn))

	var got field
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, f, got)
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&field{Label: "Ink", Presets: []preset{{"red", "Red"}}}, &b))
	assert.Contains(t, b.String(), "label = 'Ink'")
	assert.Contains(t, b.String(), "[[presets]]")
	assert.Contains(t, b.String(), "caption = 'Red'")
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	var f field
	assert.Error(t, Open(&f, filepath.Join(dir, "missing.toml")))

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("label = "), 0666))
	assert.Error(t, Open(&f, fn))
}
