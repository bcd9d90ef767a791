// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render runs the two-stage frame pipeline: a compute stage
// traces the scene into an off-screen image, and a display stage
// draws that image onto the window surface.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orbitview/camera"
	"cogentcore.org/orbitview/gpu"
)

// Renderer coordinates frames and resizes. Each frame writes the
// camera parameters, acquires a surface texture, and submits the
// compute and display passes in one command buffer on the single
// queue, which orders the display stage after the compute writes.
type Renderer struct {

	// Camera is read once per frame.
	Camera *camera.Orbit

	// Params are the parameters most recently written.
	Params camera.Params

	backend Backend

	// current generation; nil until the first non-empty size
	gen *Generation

	serial uint64
	frames int
	start  time.Time
	now    func() time.Time
}

// NewRenderer returns a renderer drawing cam through the backend at
// the given size. If size is empty, nothing is drawn until [Renderer.Resize]
// is called with a non-empty size.
func NewRenderer(b Backend, cam *camera.Orbit, size image.Point) (*Renderer, error) {
	r := &Renderer{Camera: cam, backend: b, now: time.Now}
	r.start = r.now()
	if _, err := r.Resize(size); err != nil {
		return nil, err
	}
	return r, nil
}

// Generation returns the current generation, nil if none.
func (r *Renderer) Generation() *Generation {
	return r.gen
}

// Size returns the size of the current frame image.
func (r *Renderer) Size() image.Point {
	if r.gen == nil {
		return image.Point{}
	}
	return r.gen.Size()
}

// Frames returns the number of frames presented.
func (r *Renderer) Frames() int {
	return r.frames
}

// Resize reconfigures the surface, replaces the generation with a new
// one of the given size, and rewrites the camera parameters for it,
// in that order. An empty size changes nothing and returns false.
// If the new generation cannot be created, the current one is kept
// and the error is returned; the caller cannot continue rendering.
func (r *Renderer) Resize(size image.Point) (bool, error) {
	if size.X <= 0 || size.Y <= 0 {
		return false, nil
	}
	r.backend.Configure(size)
	gen, err := r.backend.NewGeneration(size)
	if err != nil {
		return false, fmt.Errorf("render.Renderer: resize to %v: %w", size, err)
	}
	r.serial++
	gen.Serial = r.serial
	old := r.gen
	r.gen = gen
	if old != nil {
		old.Release()
	}
	slog.Debug("render.Renderer: resized", "size", size, "generation", gen.Serial)
	if err := r.writeParams(); err != nil {
		slog.Error("render.Renderer: write params after resize", "err", err)
	}
	return true, nil
}

// Render renders and presents one frame. If the window size no longer
// matches the surface, the surface is resized first; the native layer
// does not report a lost or outdated surface on acquisition, so this is
// where such a surface is recovered. Acquisition failures that are
// reported are handled here too: a lost surface is resized at the
// current size, and other failures skip the frame.
// Only unrecoverable errors are returned.
func (r *Renderer) Render() error {
	if r.gen == nil {
		return nil
	}
	if ws := r.backend.WindowSize(); ws != r.Size() {
		if ws.X <= 0 || ws.Y <= 0 {
			return nil
		}
		slog.Debug("render.Renderer: surface does not match window, resizing", "surface", r.Size(), "window", ws)
		if _, err := r.Resize(ws); err != nil {
			return err
		}
	}
	if err := r.writeParams(); err != nil {
		slog.Error("render.Renderer: write params, skipping frame", "err", err)
		return nil
	}
	tg, err := r.backend.Acquire()
	switch {
	case err == nil:
	case gpu.IsFatal(err):
		return fmt.Errorf("render.Renderer: acquire: %w", err)
	case errors.Is(err, gpu.ErrSurfaceLost):
		slog.Warn("render.Renderer: surface lost, reconfiguring", "size", r.Size())
		_, err = r.Resize(r.Size())
		return err
	default:
		slog.Error("render.Renderer: acquire, skipping frame", "err", err)
		return nil
	}
	if err := r.backend.Submit(r.gen, tg); err != nil {
		slog.Error("render.Renderer: submit, skipping frame", "err", err)
		tg.Release()
		return nil
	}
	tg.Present()
	r.frames++
	return nil
}

// Release releases the current generation.
func (r *Renderer) Release() {
	if r.gen != nil {
		r.gen.Release()
		r.gen = nil
	}
}

func (r *Renderer) writeParams() error {
	elapsed := float32(r.now().Sub(r.start).Seconds())
	r.Params = camera.NewParams(r.Camera, r.gen.Size(), elapsed)
	return r.backend.WriteParams(&r.Params)
}
