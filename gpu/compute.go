// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"math"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// ComputePipeline is a compute shader entry point and its bind group layout.
type ComputePipeline struct {
	Pipeline

	computePipeline *wgpu.ComputePipeline
}

// NewComputePipeline creates a compute pipeline running the given
// entry point of the shader.
func NewComputePipeline(dev *Device, name string, sh *Shader, entry string) (*ComputePipeline, error) {
	cp, err := dev.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: name,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     sh.module,
			EntryPoint: entry,
		},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	pl := &ComputePipeline{computePipeline: cp}
	pl.Name = name
	pl.device = dev
	pl.layout = cp.GetBindGroupLayout(0)
	return pl, nil
}

// Dispatch records a dispatch of the given number of workgroups
// with bind group 0 set to bg, in its own compute pass.
func (pl *ComputePipeline) Dispatch(cmd *wgpu.CommandEncoder, bg *wgpu.BindGroup, x, y, z uint32) {
	ce := cmd.BeginComputePass(nil)
	ce.SetPipeline(pl.computePipeline)
	ce.SetBindGroup(0, bg, nil)
	ce.DispatchWorkgroups(x, y, z)
	ce.End()
	ce.Release()
}

func (pl *ComputePipeline) Release() {
	pl.releaseLayout()
	if pl.computePipeline != nil {
		pl.computePipeline.Release()
		pl.computePipeline = nil
	}
}

// Warps returns the number of warps (work goups of compute threads)
// that is sufficient to compute n elements, given specified number
// of threads per this dimension.
// It just rounds up to nearest even multiple of n divided by threads:
// Ceil(n / threads)
func Warps(n, threads int) int {
	return int(math.Ceil(float64(n) / float64(threads)))
}
