// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a Texture.
type TextureFormat struct {
	// Size of image
	Size image.Point

	// Texture format: RGBA8Unorm is default
	Format wgpu.TextureFormat

	// number of samples, 1 unless multisampling
	Samples int

	// number of layers for texture arrays
	Layers int
}

func (im *TextureFormat) Defaults() {
	im.Format = wgpu.TextureFormatRGBA8Unorm
	im.Samples = 1
	im.Layers = 1
}

// String returns human-readable version of format
func (im *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  MultiSample: %d  Layers: %d", im.Size, im.Format.String(), im.Samples, im.Layers)
}

// Size32 returns size as uint32 values
func (im *TextureFormat) Size32() (width, height uint32) {
	width = uint32(im.Size.X)
	height = uint32(im.Size.Y)
	return
}

func (im *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(im.Size.X),
		Height:             uint32(im.Size.Y),
		DepthOrArrayLayers: uint32(max(im.Layers, 1)),
	}
}
