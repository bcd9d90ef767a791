// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader is a compiled WGSL shader module.
// A single shader can have multiple entry points.
type Shader struct {
	Name string

	module *wgpu.ShaderModule
}

// NewShader compiles the given WGSL source.
func NewShader(dev *Device, name, code string) (*Shader, error) {
	module, err := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		slog.Error("gpu.Shader: compile", "shader", name, "err", err)
		return nil, err
	}
	return &Shader{Name: name, module: module}, nil
}

func (sh *Shader) Release() {
	if sh.module != nil {
		sh.module.Release()
		sh.module = nil
	}
}

// Pipeline is the shared Base for Graphics and Compute Pipelines.
// It records the bind group layout of group 0, which the pipeline
// derives from its shader, for creating bind groups against.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	layout *wgpu.BindGroupLayout
	device *Device
}

// NewBindGroup creates a bind group for group 0 with the given entries.
func (pl *Pipeline) NewBindGroup(label string, entries ...wgpu.BindGroupEntry) (*wgpu.BindGroup, error) {
	bg, err := pl.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  pl.layout,
		Entries: entries,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return bg, nil
}

func (pl *Pipeline) releaseLayout() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
}
