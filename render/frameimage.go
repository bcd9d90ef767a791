// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/orbitview/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// FrameImageUsage is the usage of a [FrameImage]: written by the
// compute stage, sampled by the display stage, and a copy destination.
const FrameImageUsage = wgpu.TextureUsageStorageBinding | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst

// FrameImage is the RGBA8Unorm texture the tracer renders into.
type FrameImage struct {
	*gpu.Texture
}

// NewFrameImage creates a frame image of the given size in pixels.
func NewFrameImage(dev *gpu.Device, size image.Point) (*FrameImage, error) {
	tx := gpu.NewTexture(dev, "frame image")
	tx.Format.Size = size
	tx.Format.Format = wgpu.TextureFormatRGBA8Unorm
	if err := tx.CreateTexture(FrameImageUsage); err != nil {
		return nil, err
	}
	return &FrameImage{Texture: tx}, nil
}

func (fi *FrameImage) Size() image.Point {
	return fi.Format.Size
}

// BindGroup is a WebGPU bind group referencing a [FrameImage].
type BindGroup struct {
	Name  string
	image *FrameImage
	group *wgpu.BindGroup
}

func (bg *BindGroup) Image() Image {
	return bg.image
}

// Group returns the WebGPU bind group.
func (bg *BindGroup) Group() *wgpu.BindGroup {
	return bg.group
}

func (bg *BindGroup) Release() {
	if bg.group != nil {
		bg.group.Release()
		bg.group = nil
	}
}
