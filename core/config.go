// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorfield/base/iox/tomlx"
	"cogentcore.org/colorfield/base/iox/yamlx"
	"cogentcore.org/colorfield/presets"
	"github.com/jinzhu/copier"
)

// Config is the configuration of a [ColorField], as read from a
// TOML or YAML file.
type Config struct {
	// Label is the label of the field.
	Label string `toml:"label" yaml:"label"`

	// HelperText is the helper text of the field.
	HelperText string `toml:"helper-text" yaml:"helper-text"`

	// ErrorMessage is shown while the field is invalid.
	ErrorMessage string `toml:"error-message" yaml:"error-message"`

	// Theme is the theme name.
	Theme string `toml:"theme" yaml:"theme"`

	// Variants are the theme variants, by name.
	Variants []Variants `toml:"variants" yaml:"variants"`

	// Value is the initial value, in any color expression.
	Value string `toml:"value" yaml:"value"`

	Disabled bool `toml:"disabled" yaml:"disabled"`
	ReadOnly bool `toml:"readonly" yaml:"readonly"`
	Required bool `toml:"required" yaml:"required"`
	Compact  bool `toml:"compact" yaml:"compact"`

	// NoCSSInput suppresses free text in the preset surface.
	NoCSSInput bool `toml:"nocssinput" yaml:"nocssinput"`

	// NoClear keeps the value in the preset text after a selection.
	NoClear bool `toml:"noclear" yaml:"noclear"`

	// InputMode is an alternative to NoCSSInput; NoCSSInput mode
	// suppresses free text as well.
	InputMode InputModes `toml:"input-mode" yaml:"input-mode"`

	// Presets are the presets offered.
	Presets []PresetConfig `toml:"presets" yaml:"presets"`
}

// PresetConfig is the configuration of one preset.
type PresetConfig struct {
	Color       string               `toml:"color" yaml:"color"`
	Caption     string               `toml:"caption" yaml:"caption"`
	CaptionMode presets.CaptionModes `toml:"caption-mode" yaml:"caption-mode"`
}

// ConfigFormat returns the config format, "toml" or "yaml", implied by
// the extension of the given filename.
func ConfigFormat(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// OpenConfig reads a [Config] from the given file, which must have a
// .toml, .yaml or .yml extension.
func OpenConfig(filename string) (*Config, error) {
	format, err := ConfigFormat(filename)
	if err != nil {
		return nil, fmt.Errorf("core.OpenConfig: %w", err)
	}
	c := &Config{}
	if format == "toml" {
		err = tomlx.Open(c, filename)
	} else {
		err = yamlx.Open(c, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("core.OpenConfig %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the config to the given file, in the format implied by
// its extension.
func (c *Config) Save(filename string) error {
	format, err := ConfigFormat(filename)
	if err != nil {
		return fmt.Errorf("core.Config.Save: %w", err)
	}
	if format == "toml" {
		err = tomlx.Save(c, filename)
	} else {
		err = yamlx.Save(c, filename)
	}
	if err != nil {
		return fmt.Errorf("core.Config.Save %s: %w", filename, err)
	}
	return nil
}

// Write writes the config to the given writer in the given format,
// "toml" or "yaml".
func (c *Config) Write(w io.Writer, format string) error {
	switch format {
	case "toml":
		return tomlx.Write(c, w)
	case "yaml":
		return yamlx.Write(c, w)
	}
	return fmt.Errorf("core.Config.Write: unsupported format %q", format)
}

// Directory returns a new preset directory holding the configured presets,
// or nil if there are none.
func (c *Config) Directory() (*presets.Directory, error) {
	if len(c.Presets) == 0 {
		return nil, nil
	}
	var entries []presets.Entry
	if err := copier.Copy(&entries, &c.Presets); err != nil {
		return nil, err
	}
	return presets.New(entries...)
}

// SuppressFreeText returns whether free text is suppressed by either
// NoCSSInput or InputMode.
func (c *Config) SuppressFreeText() bool {
	return c.NoCSSInput || c.InputMode == NoCSSInput
}

// IsCompact returns whether compact mode is set by either Compact
// or the [Compact] variant.
func (c *Config) IsCompact() bool {
	return c.Compact || slices.Contains(c.Variants, Compact)
}

// NewFromConfig returns a new color field configured by the given
// config. Flags are applied before the initial value is derived.
func NewFromConfig(c *Config) (*ColorField, error) {
	d, err := c.Directory()
	if err != nil {
		return nil, err
	}
	cf := &ColorField{
		Label:             c.Label,
		HelperText:        c.HelperText,
		ErrorMessage:      c.ErrorMessage,
		Theme:             c.Theme,
		Disabled:          c.Disabled,
		ReadOnly:          c.ReadOnly,
		Required:          c.Required,
		Compact:           c.Compact,
		SuppressFreeText:  c.SuppressFreeText(),
		SuppressAutoClear: c.NoClear,
	}
	cf.SetVariants(c.Variants...).SetPresets(d)
	cf.value, cf.degraded = cf.initialValue(c.Value)
	cf.resetSurfaces(cf.value)
	return cf, nil
}

// Config returns the configuration of the field, with the current
// value as the initial value. Presets are not included, since the
// field does not own them.
func (cf *ColorField) Config() *Config {
	c := &Config{
		Label:        cf.Label,
		HelperText:   cf.HelperText,
		ErrorMessage: cf.ErrorMessage,
		Theme:        cf.Theme,
		Variants:     cf.Variants(),
		Disabled:     cf.Disabled,
		ReadOnly:     cf.ReadOnly,
		Required:     cf.Required,
		Compact:      cf.Compact,
		NoCSSInput:   cf.SuppressFreeText,
		NoClear:      cf.SuppressAutoClear,
		InputMode:    cf.InputMode(),
	}
	c.Value, _ = cf.Value()
	return c
}
