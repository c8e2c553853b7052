// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type field struct {
	Label    string   `yaml:"label"`
	Variants []string `yaml:"variants"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "field.yaml")
	f := field{Label: "Color", Variants: []string{"compact", "small"}}
	require.NoError(t, Save(&f, fn))

	var got field
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, f, got)
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&field{Label: "Ink", Variants: []string{"small"}}, &b))
	assert.Contains(t, b.String(), "label: Ink\n")
	assert.Contains(t, b.String(), "- small\n")
}
