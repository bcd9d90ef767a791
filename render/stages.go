// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/orbitview/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// WorkgroupSize is the width and height of a tracer workgroup.
const WorkgroupSize = 8

// DispatchSize returns the number of workgroups that covers an image
// of the given size: ceil(W/8) x ceil(H/8) x 1. The kernel ignores
// invocations beyond the edge of the image.
func DispatchSize(size image.Point) [3]uint32 {
	return [3]uint32{
		uint32(gpu.Warps(size.X, WorkgroupSize)),
		uint32(gpu.Warps(size.Y, WorkgroupSize)),
		1,
	}
}

// ComputeStage runs the tracer over the frame image.
type ComputeStage struct {
	shader   *gpu.Shader
	pipeline *gpu.ComputePipeline
}

func NewComputeStage(dev *gpu.Device) (*ComputeStage, error) {
	sh, err := gpu.NewShader(dev, "trace", TraceShader)
	if err != nil {
		return nil, err
	}
	pl, err := gpu.NewComputePipeline(dev, "trace", sh, TraceEntry)
	if err != nil {
		sh.Release()
		return nil, err
	}
	return &ComputeStage{shader: sh, pipeline: pl}, nil
}

// Bind returns the compute binding set: the image as the storage
// target and the parameter block.
func (cs *ComputeStage) Bind(img *FrameImage, params *gpu.Uniform) (*BindGroup, error) {
	bg, err := cs.pipeline.NewBindGroup("trace",
		wgpu.BindGroupEntry{Binding: 0, TextureView: img.View()},
		wgpu.BindGroupEntry{Binding: 1, Buffer: params.Buffer(), Size: wgpu.WholeSize},
	)
	if err != nil {
		return nil, err
	}
	return &BindGroup{Name: "trace", image: img, group: bg}, nil
}

// Record records one dispatch covering the generation's image.
func (cs *ComputeStage) Record(cmd *wgpu.CommandEncoder, gen *Generation) {
	d := DispatchSize(gen.Size())
	cs.pipeline.Dispatch(cmd, gen.Compute.(*BindGroup).Group(), d[0], d[1], d[2])
}

func (cs *ComputeStage) Release() {
	cs.pipeline.Release()
	cs.shader.Release()
}

// DisplayStage draws the frame image onto the surface.
type DisplayStage struct {
	shader   *gpu.Shader
	pipeline *gpu.GraphicsPipeline
	sampler  *gpu.Sampler
	render   *gpu.Render
}

// NewDisplayStage creates the display stage for a surface of the given format.
func NewDisplayStage(dev *gpu.Device, format wgpu.TextureFormat) (*DisplayStage, error) {
	sh, err := gpu.NewShader(dev, "blit", BlitShader)
	if err != nil {
		return nil, err
	}
	pl, err := gpu.NewGraphicsPipeline(dev, "blit", sh, BlitVertexEntry, BlitFragmentEntry, format)
	if err != nil {
		sh.Release()
		return nil, err
	}
	sm, err := gpu.NewLinearSampler(dev, "blit")
	if err != nil {
		pl.Release()
		sh.Release()
		return nil, err
	}
	return &DisplayStage{shader: sh, pipeline: pl, sampler: sm, render: gpu.NewRender()}, nil
}

// Bind returns the display binding set: the image as a filterable
// texture and the linear sampler.
func (ds *DisplayStage) Bind(img *FrameImage) (*BindGroup, error) {
	bg, err := ds.pipeline.NewBindGroup("blit",
		wgpu.BindGroupEntry{Binding: 0, TextureView: img.View()},
		wgpu.BindGroupEntry{Binding: 1, Sampler: ds.sampler.Sampler()},
	)
	if err != nil {
		return nil, err
	}
	return &BindGroup{Name: "blit", image: img, group: bg}, nil
}

// Record clears the view to black and draws the full-screen triangle.
func (ds *DisplayStage) Record(cmd *wgpu.CommandEncoder, view *wgpu.TextureView, gen *Generation) {
	rp := ds.render.BeginRenderPass(cmd, view)
	ds.pipeline.Draw(rp, gen.Display.(*BindGroup).Group(), 3)
	rp.End()
	rp.Release()
}

func (ds *DisplayStage) Release() {
	ds.sampler.Release()
	ds.pipeline.Release()
	ds.shader.Release()
}
