// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the presentation surface of a window.
// Its size always matches the last non-zero size it was configured to.
type Surface struct {

	// Format has the negotiated texture format and the current size.
	Format TextureFormat

	// PresentMode is the presentation mode in use.
	PresentMode wgpu.PresentMode

	// AlphaMode is the compositing alpha mode in use.
	AlphaMode wgpu.CompositeAlphaMode

	surface *wgpu.Surface
	gpu     *GPU
	device  *Device
}

// NewSurface negotiates a format for the given native surface and
// configures it to size. The surface is owned by the result.
// If mode is not supported, Fifo is used, which always is.
func NewSurface(gp *GPU, dev *Device, ws *wgpu.Surface, size image.Point, mode wgpu.PresentMode) (*Surface, error) {
	caps := ws.GetCapabilities(gp.Adapter)
	format, ok := SelectFormat(caps.Formats)
	if !ok {
		return nil, ErrNoFormat
	}
	sf := &Surface{surface: ws, gpu: gp, device: dev}
	sf.Format.Defaults()
	sf.Format.Format = format
	sf.PresentMode = wgpu.PresentModeFifo
	if slices.Contains(caps.PresentModes, mode) {
		sf.PresentMode = mode
	}
	sf.AlphaMode = wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		sf.AlphaMode = caps.AlphaModes[0]
	}
	if !sf.Configure(size) {
		// minimized at startup: record the format and wait for a resize
		sf.Format.Size = image.Point{}
	}
	return sf, nil
}

// SelectFormat returns the first sRGB format in formats, or the first
// format if none is sRGB. It returns false if formats is empty.
func SelectFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, bool) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, false
	}
	for _, f := range formats {
		if IsSRGB(f) {
			return f, true
		}
	}
	return formats[0], true
}

// IsSRGB returns true if the format applies the sRGB transfer function
// when written, so that shaders can work in linear color.
func IsSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// ParsePresentMode returns the present mode with the given name:
// fifo, mailbox, or immediate.
func ParsePresentMode(name string) (wgpu.PresentMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fifo":
		return wgpu.PresentModeFifo, nil
	case "mailbox":
		return wgpu.PresentModeMailbox, nil
	case "immediate":
		return wgpu.PresentModeImmediate, nil
	}
	return wgpu.PresentModeFifo, fmt.Errorf("gpu: unknown present mode %q", name)
}

// Configure configures the surface to the given size in pixels.
// It does nothing and returns false if either dimension is not positive.
func (sf *Surface) Configure(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	sf.Format.Size = size
	w, h := sf.Format.Size32()
	sf.surface.Configure(sf.gpu.Adapter, sf.device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       w,
		Height:      h,
		PresentMode: sf.PresentMode,
		AlphaMode:   sf.AlphaMode,
	})
	return true
}

// SurfaceTexture is a texture acquired from a [Surface]
// for rendering one frame.
type SurfaceTexture struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	surface *Surface
}

// AcquireTexture returns the next texture to render into.
// Errors are classified with [ClassifyAcquireError].
func (sf *Surface) AcquireTexture() (*SurfaceTexture, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, ClassifyAcquireError(err)
	}
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		tex.Release()
		return nil, err
	}
	return &SurfaceTexture{Texture: tex, View: view, surface: sf}, nil
}

// Present shows the texture and releases it.
func (st *SurfaceTexture) Present() {
	st.surface.surface.Present()
	st.Release()
}

// Release releases the texture without presenting it.
func (st *SurfaceTexture) Release() {
	if st.View != nil {
		st.View.Release()
		st.View = nil
	}
	if st.Texture != nil {
		st.Texture.Release()
		st.Texture = nil
	}
}

// Release releases the native surface.
func (sf *Surface) Release() {
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
