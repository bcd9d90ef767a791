// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages the WebGPU instance, adapter, device, and
// presentation surface for a single window, and provides thin
// wrappers for the resources the renderer allocates on them.
package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug is whether to log additional information about the GPU
// and surface as they are configured.
var Debug = false

// Window is the window that a [Context] presents into. The Context
// holds it without owning it: the window must outlive the Context.
type Window interface {

	// SurfaceDescriptor returns the platform descriptor from which
	// a presentation surface is created for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// FramebufferSize returns the current size of the window in pixels.
	FramebufferSize() image.Point
}

// GPU represents the WebGPU instance and the adapter selected on it.
type GPU struct {
	Instance *wgpu.Instance

	// Adapter is the high-performance adapter compatible with the surface.
	Adapter *wgpu.Adapter
}

// Context is the graphics context for one window: the GPU, the logical
// device and its queue, and the presentation surface.
type Context struct {
	GPU *GPU

	Device *Device

	Surface *Surface

	// window we present into; not owned
	window Window
}

// NewContext creates the instance, a surface for the given window,
// a high-performance adapter that can present to it, and a device with
// default limits, and configures the surface to the window's current
// size. Errors wrap [ErrNoAdapter], [ErrNoDevice], or [ErrNoFormat] and
// are not recoverable.
func NewContext(win Window, mode wgpu.PresentMode) (*Context, error) {
	gp := &GPU{Instance: wgpu.CreateInstance(nil)}
	ws := gp.Instance.CreateSurface(win.SurfaceDescriptor())
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: ws,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		ws.Release()
		gp.Instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	gp.Adapter = ad
	dev, err := NewDevice(gp)
	if err != nil {
		gp.Release()
		ws.Release()
		return nil, err
	}
	sf, err := NewSurface(gp, dev, ws, win.FramebufferSize(), mode)
	if err != nil {
		dev.Release()
		gp.Release()
		ws.Release()
		return nil, err
	}
	if Debug {
		slog.Info("gpu.Context: configured", "surface", sf.Format.String(), "present", sf.PresentMode)
	}
	return &Context{GPU: gp, Device: dev, Surface: sf, window: win}, nil
}

// Reconfigure configures the surface to the given size in pixels.
// It does nothing and returns false if either dimension is zero,
// as happens while a window is minimized.
func (cx *Context) Reconfigure(size image.Point) bool {
	return cx.Surface.Configure(size)
}

// Window returns the window this context presents into.
func (cx *Context) Window() Window {
	return cx.window
}

// Release waits for the device to finish and releases everything
// in reverse order of creation. The window is left alone.
func (cx *Context) Release() {
	if cx.Device != nil {
		cx.Device.WaitDone()
	}
	if cx.Surface != nil {
		cx.Surface.Release()
		cx.Surface = nil
	}
	if cx.Device != nil {
		cx.Device.Release()
		cx.Device = nil
	}
	if cx.GPU != nil {
		cx.GPU.Release()
		cx.GPU = nil
	}
	cx.window = nil
}

// Release releases the adapter and instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}

// Device holds the logical device and its single queue.
type Device struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue
}

// NewDevice requests a device with default limits from the adapter.
func NewDevice(gp *GPU) (*Device, error) {
	wd, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "orbitview",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return &Device{Device: wd, Queue: wd.GetQueue()}, nil
}

// WaitDone waits until the device is idle.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the queue and device.
func (dv *Device) Release() {
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	if dv.Device != nil {
		dv.Device.Release()
		dv.Device = nil
	}
}

// Submit finishes the given encoder and submits the result to the queue.
// The encoder is released.
func (dv *Device) Submit(cmd *wgpu.CommandEncoder) error {
	defer cmd.Release()
	buf, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	dv.Queue.Submit(buf)
	buf.Release()
	return nil
}
