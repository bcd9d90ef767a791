// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"image"
	"testing"
	"time"

	"cogentcore.org/orbitview/camera"
	"cogentcore.org/orbitview/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImage struct {
	size     image.Point
	released bool
}

func (fi *fakeImage) Size() image.Point { return fi.size }
func (fi *fakeImage) Release()          { fi.released = true }

type fakeBinding struct {
	image    Image
	released bool
}

func (fb *fakeBinding) Image() Image { return fb.image }
func (fb *fakeBinding) Release()     { fb.released = true }

type fakeTarget struct {
	presented bool
	released  bool
}

func (ft *fakeTarget) Present() { ft.presented = true }
func (ft *fakeTarget) Release() { ft.released = true }

// fakeBackend records the calls made on it in order.
type fakeBackend struct {
	calls   []string
	surface image.Point
	params  []camera.Params
	targets []*fakeTarget

	// window size when set, else the window follows the surface
	window *image.Point

	// errors returned by successive Acquire calls, nil when exhausted
	acquireErrs []error
	submitErr   error
	genErr      error
}

func (fb *fakeBackend) Configure(size image.Point) bool {
	fb.calls = append(fb.calls, fmt.Sprintf("configure %v", size))
	fb.surface = size
	return true
}

func (fb *fakeBackend) WindowSize() image.Point {
	if fb.window != nil {
		return *fb.window
	}
	return fb.surface
}

func (fb *fakeBackend) NewGeneration(size image.Point) (*Generation, error) {
	fb.calls = append(fb.calls, fmt.Sprintf("generation %v", size))
	if fb.genErr != nil {
		return nil, fb.genErr
	}
	img := &fakeImage{size: size}
	return &Generation{Image: img, Compute: &fakeBinding{image: img}, Display: &fakeBinding{image: img}}, nil
}

func (fb *fakeBackend) WriteParams(p *camera.Params) error {
	fb.calls = append(fb.calls, "params")
	fb.params = append(fb.params, *p)
	return nil
}

func (fb *fakeBackend) Acquire() (Target, error) {
	fb.calls = append(fb.calls, "acquire")
	if len(fb.acquireErrs) > 0 {
		err := fb.acquireErrs[0]
		fb.acquireErrs = fb.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	tg := &fakeTarget{}
	fb.targets = append(fb.targets, tg)
	return tg, nil
}

func (fb *fakeBackend) Submit(gen *Generation, tg Target) error {
	fb.calls = append(fb.calls, fmt.Sprintf("submit %d", gen.Serial))
	return fb.submitErr
}

func newTestRenderer(t *testing.T, size image.Point) (*Renderer, *fakeBackend) {
	fb := &fakeBackend{}
	r, err := NewRenderer(fb, camera.NewOrbit(), size)
	require.NoError(t, err)
	fb.calls = nil
	return r, fb
}

func TestRendererInitial(t *testing.T) {
	fb := &fakeBackend{}
	r, err := NewRenderer(fb, camera.NewOrbit(), image.Point{100, 50})
	require.NoError(t, err)
	assert.Equal(t, []string{"configure (100,50)", "generation (100,50)", "params"}, fb.calls)
	require.NotNil(t, r.Generation())
	assert.True(t, r.Generation().Valid())
	assert.Equal(t, uint64(1), r.Generation().Serial)
	assert.Equal(t, image.Point{100, 50}, r.Size())
	assert.Equal(t, float32(100), fb.params[0].Info[0])
	assert.Equal(t, float32(50), fb.params[0].Info[1])
}

func TestRendererResize(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{100, 50})
	old := r.Generation()

	ok, err := r.Resize(image.Point{200, 120})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"configure (200,120)", "generation (200,120)", "params"}, fb.calls)

	gen := r.Generation()
	assert.NotSame(t, old, gen)
	assert.True(t, gen.Valid())
	assert.Equal(t, image.Point{200, 120}, gen.Size())
	assert.Equal(t, image.Point{200, 120}, fb.surface)
	assert.Equal(t, uint64(2), gen.Serial)
	assert.Same(t, gen.Image, gen.Compute.Image())
	assert.Same(t, gen.Image, gen.Display.Image())

	assert.True(t, old.Image.(*fakeImage).released)
	assert.True(t, old.Compute.(*fakeBinding).released)
	assert.True(t, old.Display.(*fakeBinding).released)
	assert.False(t, gen.Image.(*fakeImage).released)

	p := fb.params[len(fb.params)-1]
	assert.Equal(t, float32(200), p.Info[0])
	assert.Equal(t, float32(120), p.Info[1])
}

func TestRendererZeroResize(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{100, 50})
	gen := r.Generation()
	cam := *r.Camera
	for _, sz := range []image.Point{{0, 120}, {200, 0}, {0, 0}, {-3, 40}} {
		ok, err := r.Resize(sz)
		assert.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Empty(t, fb.calls)
	assert.Same(t, gen, r.Generation())
	assert.Equal(t, image.Point{100, 50}, fb.surface)
	assert.Equal(t, image.Point{100, 50}, r.Size())
	assert.Equal(t, cam, *r.Camera)
	assert.False(t, gen.Image.(*fakeImage).released)
}

func TestRendererResizeFailure(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{100, 50})
	gen := r.Generation()
	fb.genErr = gpu.ErrOutOfMemory
	ok, err := r.Resize(image.Point{300, 300})
	assert.False(t, ok)
	assert.ErrorIs(t, err, gpu.ErrOutOfMemory)
	assert.Same(t, gen, r.Generation())
	assert.False(t, gen.Image.(*fakeImage).released)
}

func TestRendererRender(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	t0 := time.Unix(1000, 0)
	r.start = t0
	r.now = func() time.Time { return t0.Add(2500 * time.Millisecond) }

	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"params", "acquire", "submit 1"}, fb.calls)
	require.Len(t, fb.targets, 1)
	assert.True(t, fb.targets[0].presented)
	assert.Equal(t, 1, r.Frames())

	p := fb.params[len(fb.params)-1]
	assert.Equal(t, float32(64), p.Info[0])
	assert.Equal(t, float32(48), p.Info[1])
	assert.InDelta(t, 2.5, p.Info[2], 1e-6)
	assert.Equal(t, float32(0), p.Info[3])
	assert.Equal(t, p, r.Params)
}

func TestRendererReadsCamera(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	r.Camera.Press()
	r.Camera.Move(0, 0)
	r.Camera.Move(100, 0)
	r.Camera.Scroll(1)
	assert.NoError(t, r.Render())
	vi, pi := r.Camera.Matrices(64, 48)
	p := fb.params[len(fb.params)-1]
	assert.Equal(t, vi, p.ViewInv)
	assert.Equal(t, pi, p.ProjInv)
}

func TestRendererSurfaceLost(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	old := r.Generation()
	fb.acquireErrs = []error{fmt.Errorf("%w: status Lost", gpu.ErrSurfaceLost)}

	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"params", "acquire", "configure (64,48)", "generation (64,48)", "params"}, fb.calls)
	assert.Equal(t, 0, r.Frames())
	assert.Equal(t, uint64(2), r.Generation().Serial)
	assert.True(t, old.Image.(*fakeImage).released)

	fb.calls = nil
	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"params", "acquire", "submit 2"}, fb.calls)
	assert.Equal(t, 1, r.Frames())
}

func TestRendererOutOfMemory(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	fb.acquireErrs = []error{gpu.ClassifyAcquireError(errors.New("OutOfMemory"))}
	err := r.Render()
	assert.ErrorIs(t, err, gpu.ErrOutOfMemory)
	assert.True(t, gpu.IsFatal(err))
	assert.Equal(t, []string{"params", "acquire"}, fb.calls)
	assert.Equal(t, 0, r.Frames())
}

func TestRendererSkipsFrame(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	fb.acquireErrs = []error{gpu.ErrSurfaceTimeout, errors.New("something else")}
	assert.NoError(t, r.Render())
	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"params", "acquire", "params", "acquire"}, fb.calls)
	assert.Equal(t, 0, r.Frames())
	assert.Equal(t, uint64(1), r.Generation().Serial)

	assert.NoError(t, r.Render())
	assert.Equal(t, 1, r.Frames())
}

func TestRendererSubmitFailure(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	fb.submitErr = errors.New("validation")
	assert.NoError(t, r.Render())
	require.Len(t, fb.targets, 1)
	assert.False(t, fb.targets[0].presented)
	assert.True(t, fb.targets[0].released)
	assert.Equal(t, 0, r.Frames())
}

func TestRendererMinimizedAtStart(t *testing.T) {
	fb := &fakeBackend{}
	r, err := NewRenderer(fb, camera.NewOrbit(), image.Point{})
	require.NoError(t, err)
	assert.Nil(t, r.Generation())
	assert.Empty(t, fb.calls)
	assert.NoError(t, r.Render())
	assert.Empty(t, fb.calls)

	ok, err := r.Resize(image.Point{32, 32})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, r.Generation().Valid())
}

func TestRendererRelease(t *testing.T) {
	r, _ := newTestRenderer(t, image.Point{8, 8})
	gen := r.Generation()
	r.Release()
	assert.Nil(t, r.Generation())
	assert.True(t, gen.Image.(*fakeImage).released)
}

func TestRendererWindowSizeChanged(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	old := r.Generation()
	fb.window = &image.Point{80, 60}

	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"configure (80,60)", "generation (80,60)", "params", "params", "acquire", "submit 2"}, fb.calls)
	assert.Equal(t, image.Point{80, 60}, r.Size())
	assert.True(t, r.Generation().Valid())
	assert.True(t, old.Image.(*fakeImage).released)
	assert.Equal(t, 1, r.Frames())

	fb.calls = nil
	assert.NoError(t, r.Render())
	assert.Equal(t, []string{"params", "acquire", "submit 2"}, fb.calls)
}

func TestRendererWindowMinimized(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	gen := r.Generation()
	fb.window = &image.Point{0, 0}
	assert.NoError(t, r.Render())
	assert.Empty(t, fb.calls)
	assert.Same(t, gen, r.Generation())
	assert.Equal(t, 0, r.Frames())
}

func TestRendererWindowResizeFailure(t *testing.T) {
	r, fb := newTestRenderer(t, image.Point{64, 48})
	fb.window = &image.Point{4096, 4096}
	fb.genErr = gpu.ErrOutOfMemory
	err := r.Render()
	assert.ErrorIs(t, err, gpu.ErrOutOfMemory)
	assert.Equal(t, 0, r.Frames())
}
