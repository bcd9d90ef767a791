// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Render has the settings for starting render passes
// on surface textures.
type Render struct {

	// values for clearing image when starting render pass
	ClearColor wgpu.Color
}

// NewRender returns a Render that clears to opaque black.
func NewRender() *Render {
	return &Render{ClearColor: wgpu.Color{R: 0, G: 0, B: 0, A: 1}}
}

// ClearRenderPass returns a render pass descriptor that clears the framebuffer
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rd.ClearColor,
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass adds commands to the given command encoder
// to start a render pass on the given view, cleared first.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}
