// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestGPUContext(t *testing.T) {
	t.Skip("Need software GPU on CI")
	assert.NoError(t, Init())
	defer Terminate()
	win, err := GLFWCreateWindow(image.Point{320, 240}, "test")
	assert.NoError(t, err)
	defer win.Destroy()
	cx, err := NewContext(GLFWWindow{win}, wgpu.PresentModeFifo)
	assert.NoError(t, err)
	defer cx.Release()
	assert.False(t, cx.Reconfigure(image.Point{0, 240}))
	assert.Equal(t, cx.Window().FramebufferSize(), cx.Surface.Format.Size)
	assert.True(t, cx.Reconfigure(image.Point{64, 48}))
	assert.Equal(t, image.Point{64, 48}, cx.Surface.Format.Size)
}
