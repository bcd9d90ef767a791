// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"encoding/binary"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
}

func TestParamsLayout(t *testing.T) {
	o := NewOrbit()
	p := NewParams(o, image.Point{800, 600}, 2.5)
	b := p.Bytes()
	require.Len(t, b, ParamsSize)

	vi, pi := o.Matrices(800, 600)
	for i := range 16 {
		assert.Equal(t, vi[i], float32At(b, i), "view_inv[%d]", i)
		assert.Equal(t, pi[i], float32At(b, 16+i), "proj_inv[%d]", i)
	}
	assert.Equal(t, float32(800), float32At(b, 32))
	assert.Equal(t, float32(600), float32At(b, 33))
	assert.Equal(t, float32(2.5), float32At(b, 34))
	assert.Equal(t, float32(0), float32At(b, 35))
}

func TestParamsColumnMajor(t *testing.T) {
	o := NewOrbit()
	p := NewParams(o, image.Point{64, 64}, 0)
	b := p.Bytes()
	// translation of the inverse view is the eye, in elements 12..14
	eye := o.Eye()
	assert.InDelta(t, eye.X(), float32At(b, 12), 1e-4)
	assert.InDelta(t, eye.Y(), float32At(b, 13), 1e-4)
	assert.InDelta(t, eye.Z(), float32At(b, 14), 1e-4)
}
