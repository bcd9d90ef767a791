// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds

// Init initializes glfw. It must be called before creating a window.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new window of the given size in screen units,
// with no client API, since WebGPU creates its own surface.
// The caller owns the window and must Destroy it.
func GLFWCreateWindow(size image.Point, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return window, nil
}

// GLFWWindow is a [Window] handle for a glfw window.
type GLFWWindow struct {
	*glfw.Window
}

func (w GLFWWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.Window)
}

func (w GLFWWindow) FramebufferSize() image.Point {
	x, y := w.GetFramebufferSize()
	return image.Point{x, y}
}
