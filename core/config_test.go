// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/colorfield/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
label = "Background"
helper-text = "Pick a background"
error-message = "Not a color"
theme = "custom"
variants = ["small", "align-left"]
value = "rgb(255 0 0)"
required = true
noclear = true
input-mode = "nocssinput"

[[presets]]
color = "#336699"
caption = "Steel blue"

[[presets]]
color = "darkred"
caption = "<i>Dark</i> red"
caption-mode = "markup"
`

const testYAML = `
label: Foreground
value: "#00ff00"
nocssinput: true
variants: [compact]
presets:
  - color: "#ffffff"
    caption: White
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpenConfigTOML(t *testing.T) {
	c, err := OpenConfig(writeFile(t, "field.toml", testTOML))
	require.NoError(t, err)
	assert.Equal(t, "Background", c.Label)
	assert.Equal(t, []Variants{Small, AlignLeft}, c.Variants)
	assert.Equal(t, NoCSSInput, c.InputMode)
	assert.True(t, c.SuppressFreeText())
	assert.False(t, c.IsCompact())
	require.Len(t, c.Presets, 2)
	assert.Equal(t, presets.Markup, c.Presets[1].CaptionMode)

	cf, err := NewFromConfig(c)
	require.NoError(t, err)
	assertState(t, cf, Valid, "#ff0000")
	assert.Equal(t, "#ff0000", cf.PresetText(), "noclear shows the value")
	assert.True(t, cf.Required)
	assert.True(t, cf.SuppressAutoClear)
	assert.True(t, cf.SuppressFreeText)
	assert.Equal(t, "custom small align-left", cf.View().Theme)

	items := cf.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Dark red", items[1].PlainCaption)
	assert.True(t, cf.ApplyPresetSelection(1))
	assertState(t, cf, Valid, "#8b0000")
}

func TestOpenConfigYAML(t *testing.T) {
	c, err := OpenConfig(writeFile(t, "field.yml", testYAML))
	require.NoError(t, err)
	assert.True(t, c.IsCompact())
	assert.True(t, c.SuppressFreeText())

	cf, err := NewFromConfig(c)
	require.NoError(t, err)
	assertState(t, cf, Valid, "#00ff00")
	assert.Equal(t, SwatchSurface, cf.FocusTarget())
	assert.Equal(t, 1, cf.Presets().Len())
}

func TestOpenConfigErrors(t *testing.T) {
	_, err := OpenConfig(writeFile(t, "field.json", "{}"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = OpenConfig(writeFile(t, "bad.toml", `variants = ["huge"]`))
	assert.Error(t, err)

	c := &Config{Presets: []PresetConfig{{Color: "bogus", Caption: "Bogus"}}}
	_, err = NewFromConfig(c)
	assert.ErrorContains(t, err, "Bogus")
}

func TestConfigFromField(t *testing.T) {
	cf := NewColorField("blue").SetLabel("Ink").SetVariants(Compact).SetSuppressFreeText(true)
	c := cf.Config()
	assert.Equal(t, "#0000ff", c.Value)
	assert.Equal(t, NoCSSInput, c.InputMode)

	for _, name := range []string{"field.toml", "field.yaml"} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, c.Save(fn), name)
		back, err := OpenConfig(fn)
		require.NoError(t, err, name)
		assert.Equal(t, "Ink", back.Label, name)
		assert.Equal(t, []Variants{Compact}, back.Variants, name)
		assert.Equal(t, "#0000ff", back.Value, name)
		assert.Equal(t, NoCSSInput, back.InputMode, name)
	}
	assert.ErrorContains(t, c.Save(filepath.Join(t.TempDir(), "field.ini")), "unsupported")
}

func TestConfigWrite(t *testing.T) {
	c := NewColorField("red").SetLabel("Ink").Config()

	var b bytes.Buffer
	require.NoError(t, c.Write(&b, "toml"))
	assert.Contains(t, b.String(), "label = 'Ink'")
	assert.Contains(t, b.String(), "value = '#ff0000'")

	b.Reset()
	require.NoError(t, c.Write(&b, "yaml"))
	assert.Contains(t, b.String(), "label: Ink\n")
	assert.Contains(t, b.String(), "#ff0000")

	assert.ErrorContains(t, c.Write(&b, "json"), "unsupported")

	format, err := ConfigFormat("a/b/Field.YML")
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
}
