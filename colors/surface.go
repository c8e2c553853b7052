// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Surface is a single pixel rendering target that a color can be
// painted onto and read back from.
type Surface interface {
	// Fill paints the whole surface with the given color using
	// source-over compositing.
	Fill(c color.Color)

	// Sample reads the pixel back as non-premultiplied 8-bit channels.
	Sample() color.NRGBA
}

// NewRasterSurface returns a transparent 1×1 in-memory [Surface].
func NewRasterSurface() (Surface, error) {
	return &raster{img: image.NewRGBA(image.Rect(0, 0, 1, 1))}, nil
}

type raster struct {
	img *image.RGBA
}

func (r *raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *raster) Sample() color.NRGBA {
	return color.NRGBAModel.Convert(r.img.At(0, 0)).(color.NRGBA)
}
