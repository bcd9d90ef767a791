// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ParamsSize is the size in bytes of the parameter block as seen by the shader.
const ParamsSize = 144

// Params is the per-frame parameter block read by the tracer:
//
//	struct Camera {
//		view_inv: mat4x4<f32>,
//		proj_inv: mat4x4<f32>,
//		info: vec4<f32>, // width, height, time, 0
//	}
type Params struct {
	ViewInv mgl32.Mat4
	ProjInv mgl32.Mat4

	// Info holds width, height, elapsed seconds, and 0.
	Info mgl32.Vec4
}

// NewParams returns the parameter block for the given camera,
// image size in pixels, and elapsed time in seconds.
func NewParams(o *Orbit, size image.Point, elapsed float32) Params {
	vi, pi := o.Matrices(size.X, size.Y)
	return Params{
		ViewInv: vi,
		ProjInv: pi,
		Info:    mgl32.Vec4{float32(size.X), float32(size.Y), elapsed, 0},
	}
}

// Bytes returns the block in the little-endian, column-major layout
// of the shader struct.
func (p *Params) Bytes() []byte {
	b := make([]byte, 0, ParamsSize)
	put := func(vs []float32) {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
		}
	}
	put(p.ViewInv[:])
	put(p.ProjInv[:])
	put(p.Info[:])
	return b
}
