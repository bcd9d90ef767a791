// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline draws generated geometry into a single color target.
// Vertex positions come from the vertex index: there are no vertex buffers.
type GraphicsPipeline struct {
	Pipeline

	// Primitive has the primitive topology and culling.
	Primitive wgpu.PrimitiveState

	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline creates a pipeline using the vertex and fragment
// entry points of the shader, writing to a target of the given format.
func NewGraphicsPipeline(dev *Device, name string, sh *Shader, vertex, fragment string, format wgpu.TextureFormat) (*GraphicsPipeline, error) {
	pl := &GraphicsPipeline{}
	pl.Name = name
	pl.device = dev
	pl.Primitive = wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeNone,
	}
	rp, err := dev.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     sh.module,
			EntryPoint: vertex,
		},
		Fragment: &wgpu.FragmentState{
			Module:     sh.module,
			EntryPoint: fragment,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: pl.Primitive,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		slog.Error("gpu.GraphicsPipeline: create", "pipeline", name, "err", err)
		return nil, err
	}
	pl.renderPipeline = rp
	pl.layout = rp.GetBindGroupLayout(0)
	return pl, nil
}

// Draw records a non-indexed draw of n vertices with bind group 0 set to bg.
func (pl *GraphicsPipeline) Draw(rp *wgpu.RenderPassEncoder, bg *wgpu.BindGroup, n uint32) {
	rp.SetPipeline(pl.renderPipeline)
	rp.SetBindGroup(0, bg, nil)
	rp.Draw(n, 1, 0, 0)
}

func (pl *GraphicsPipeline) Release() {
	pl.releaseLayout()
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}
