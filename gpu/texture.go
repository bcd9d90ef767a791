// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture represents a WebGPU Texture with an associated TextureView.
// The WebGPU Texture is in device memory, in an optimized format.
type Texture struct {

	// Name of the texture, used as the label for debugging.
	Name string

	// Format & size of texture
	Format TextureFormat

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// WebGPU texture view
	view *wgpu.TextureView

	// keep track of device for creating the texture
	device *Device
}

func NewTexture(dev *Device, name string) *Texture {
	tx := &Texture{Name: name, device: dev}
	tx.Format.Defaults()
	return tx
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture.  Calls release first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.Release()
	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(max(tx.Format.Samples, 1)),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		tx.Release()
		return err
	}
	tx.view = vw
	return nil
}

// View returns the view of the whole texture.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// Release releases the view and the texture.
func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}

// Sampler is a texture sampler.
type Sampler struct {
	Name string

	// filtering used for magnification, minification, and mipmaps
	Filter wgpu.FilterMode

	// addressing for all three coordinates
	Address wgpu.AddressMode

	sampler *wgpu.Sampler
}

// NewLinearSampler returns a linear filtering sampler that clamps
// to the edge of the texture.
func NewLinearSampler(dev *Device, name string) (*Sampler, error) {
	sm := &Sampler{Name: name, Filter: wgpu.FilterModeLinear, Address: wgpu.AddressModeClampToEdge}
	return sm, sm.Config(dev)
}

// Config creates the sampler from the current settings.
func (sm *Sampler) Config(dev *Device) error {
	sm.Release()
	mip := wgpu.MipmapFilterModeNearest
	if sm.Filter == wgpu.FilterModeLinear {
		mip = wgpu.MipmapFilterModeLinear
	}
	s, err := dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         sm.Name,
		AddressModeU:  sm.Address,
		AddressModeV:  sm.Address,
		AddressModeW:  sm.Address,
		MagFilter:     sm.Filter,
		MinFilter:     sm.Filter,
		MipmapFilter:  mip,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		Compare:       wgpu.CompareFunctionUndefined,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}
	sm.sampler = s
	return nil
}

// Sampler returns the WebGPU sampler.
func (sm *Sampler) Sampler() *wgpu.Sampler {
	return sm.sampler
}

func (sm *Sampler) Release() {
	if sm.sampler != nil {
		sm.sampler.Release()
		sm.sampler = nil
	}
}
