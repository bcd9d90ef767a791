// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orbitview/camera"
	"cogentcore.org/orbitview/gpu"
)

// Target is a surface texture acquired for one frame.
type Target interface {
	// Present shows the target and releases it.
	Present()

	// Release releases the target without showing it.
	Release()
}

// Backend is what the [Renderer] needs from the GPU.
type Backend interface {

	// Configure configures the surface to size, returning false
	// if the size is empty.
	Configure(size image.Point) bool

	// WindowSize returns the current framebuffer size of the window.
	WindowSize() image.Point

	// NewGeneration creates a frame image of size and both binding
	// sets referencing it.
	NewGeneration(size image.Point) (*Generation, error)

	// WriteParams overwrites the camera parameter block.
	WriteParams(p *camera.Params) error

	// Acquire returns the next surface texture. Errors are classified
	// as by [gpu.ClassifyAcquireError].
	Acquire() (Target, error)

	// Submit records the compute dispatch and the display draw for
	// gen into one command buffer targeting tg and submits it.
	Submit(gen *Generation, tg Target) error
}

// GPUBackend is the [Backend] for a [gpu.Context].
type GPUBackend struct {
	Context *gpu.Context

	Compute *ComputeStage

	Display *DisplayStage

	// Params is the uniform buffer holding the [camera.Params].
	Params *gpu.Uniform
}

// NewGPUBackend creates the stages and the parameter buffer on the
// context's device.
func NewGPUBackend(cx *gpu.Context) (*GPUBackend, error) {
	dev := cx.Device
	params, err := gpu.NewUniform(dev, "camera", camera.ParamsSize)
	if err != nil {
		return nil, err
	}
	cs, err := NewComputeStage(dev)
	if err != nil {
		params.Release()
		return nil, err
	}
	ds, err := NewDisplayStage(dev, cx.Surface.Format.Format)
	if err != nil {
		cs.Release()
		params.Release()
		return nil, err
	}
	return &GPUBackend{Context: cx, Compute: cs, Display: ds, Params: params}, nil
}

func (gb *GPUBackend) Configure(size image.Point) bool {
	return gb.Context.Reconfigure(size)
}

func (gb *GPUBackend) WindowSize() image.Point {
	return gb.Context.Window().FramebufferSize()
}

func (gb *GPUBackend) NewGeneration(size image.Point) (*Generation, error) {
	img, err := NewFrameImage(gb.Context.Device, size)
	if err != nil {
		return nil, err
	}
	gen := &Generation{Image: img}
	cb, err := gb.Compute.Bind(img, gb.Params)
	if err != nil {
		gen.Release()
		return nil, err
	}
	gen.Compute = cb
	db, err := gb.Display.Bind(img)
	if err != nil {
		gen.Release()
		return nil, err
	}
	gen.Display = db
	return gen, nil
}

func (gb *GPUBackend) WriteParams(p *camera.Params) error {
	return gb.Params.Write(p.Bytes())
}

func (gb *GPUBackend) Acquire() (Target, error) {
	st, err := gb.Context.Surface.AcquireTexture()
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (gb *GPUBackend) Submit(gen *Generation, tg Target) error {
	st := tg.(*gpu.SurfaceTexture)
	dev := gb.Context.Device
	cmd, err := dev.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	gb.Compute.Record(cmd, gen)
	gb.Display.Record(cmd, st.View, gen)
	return dev.Submit(cmd)
}

// Release releases the stages and the parameter buffer.
// The context is left alone.
func (gb *GPUBackend) Release() {
	gb.Display.Release()
	gb.Compute.Release()
	gb.Params.Release()
}
