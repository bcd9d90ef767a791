// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// note: WriteBuffer is the preferred method for writing,
// and nothing is read back, so there is no mapping here.

// Uniform is a fixed-size uniform buffer that is overwritten
// from the host.
type Uniform struct {
	Name string

	// Size in bytes
	Size int

	buffer *wgpu.Buffer
	device *Device
}

// NewUniform creates a uniform buffer of the given size in bytes.
func NewUniform(dev *Device, name string, size int) (*Uniform, error) {
	buf, err := dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: name,
		Size:  uint64(size),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Uniform{Name: name, Size: size, buffer: buf, device: dev}, nil
}

// Write queues a write of data, which must be exactly Size bytes,
// ahead of any work submitted after it.
func (ub *Uniform) Write(data []byte) error {
	if len(data) != ub.Size {
		return fmt.Errorf("gpu.Uniform %s: write of %d bytes, size is %d", ub.Name, len(data), ub.Size)
	}
	return errors.Log(ub.device.Queue.WriteBuffer(ub.buffer, 0, data))
}

// Buffer returns the WebGPU buffer.
func (ub *Uniform) Buffer() *wgpu.Buffer {
	return ub.buffer
}

func (ub *Uniform) Release() {
	if ub.buffer != nil {
		ub.buffer.Release()
		ub.buffer = nil
	}
}
