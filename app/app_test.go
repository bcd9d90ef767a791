// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"cogentcore.org/orbitview/camera"
	"cogentcore.org/orbitview/config"
	"cogentcore.org/orbitview/events"
	"cogentcore.org/orbitview/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type fakeRenderer struct {
	sizes     []image.Point
	renders   int
	resizeErr error
	renderErr error
}

func (fr *fakeRenderer) Resize(size image.Point) (bool, error) {
	if fr.resizeErr != nil {
		return false, fr.resizeErr
	}
	if size.X <= 0 || size.Y <= 0 {
		return false, nil
	}
	fr.sizes = append(fr.sizes, size)
	return true, nil
}

func (fr *fakeRenderer) Render() error {
	fr.renders++
	return fr.renderErr
}

func newTestApp() (*App, *fakeRenderer) {
	fr := &fakeRenderer{}
	cfg := config.New()
	return &App{Config: cfg, Camera: NewCamera(cfg), Renderer: fr}, fr
}

func move(x, y float32) events.MoveEvent {
	return events.MoveEvent{Pos: mgl32.Vec2{x, y}}
}

func TestEffects(t *testing.T) {
	ef := redraw()
	assert.True(t, ef.HasFlag(Redraw))
	assert.False(t, ef.HasFlag(Exit))
	assert.Equal(t, "Redraw", ef.String())
	ef.SetFlag(true, Exit)
	assert.True(t, ef.HasFlag(Exit))
	assert.Equal(t, "Exit", Exit.BitIndexString())
	assert.Equal(t, []Effects{Redraw, Exit}, EffectsValues())
}

func TestNewCamera(t *testing.T) {
	cfg := config.New()
	o := NewCamera(cfg)
	assert.Equal(t, float32(0.6), o.Yaw)
	assert.Equal(t, float32(0.3), o.Pitch)
	assert.Equal(t, float32(4), o.Distance)

	cfg.Pitch = 3
	cfg.Distance = 500
	o = NewCamera(cfg)
	assert.Equal(t, float32(camera.PitchLimit), o.Pitch)
	assert.Equal(t, float32(camera.MaxDistance), o.Distance)
}

func TestDrag(t *testing.T) {
	a, _ := newTestApp()
	yaw := a.Camera.Yaw

	assert.Equal(t, Effects(0), a.HandleEvent(move(100, 100)))
	assert.Equal(t, yaw, a.Camera.Yaw)

	assert.Equal(t, Effects(0), a.HandleEvent(events.ButtonEvent{Button: events.Left, Action: events.Press}))
	assert.Equal(t, camera.Dragging, a.Camera.State())
	a.HandleEvent(move(100, 100))
	assert.Equal(t, redraw(), a.HandleEvent(move(120, 100)))
	assert.InDelta(t, yaw-0.1, a.Camera.Yaw, 1e-6)

	a.HandleEvent(events.ButtonEvent{Button: events.Left, Action: events.Release})
	assert.Equal(t, camera.Idle, a.Camera.State())
	yaw = a.Camera.Yaw
	assert.Equal(t, Effects(0), a.HandleEvent(move(300, 100)))
	assert.Equal(t, yaw, a.Camera.Yaw)
}

func TestOtherButtons(t *testing.T) {
	a, _ := newTestApp()
	for _, b := range []events.Buttons{events.Right, events.Middle, events.NoButton} {
		assert.Equal(t, Effects(0), a.HandleEvent(events.ButtonEvent{Button: b, Action: events.Press}))
		assert.Equal(t, camera.Idle, a.Camera.State())
	}
}

func TestScroll(t *testing.T) {
	a, _ := newTestApp()
	assert.Equal(t, redraw(), a.HandleEvent(events.ScrollEvent{Delta: 1, Unit: events.Lines}))
	assert.InDelta(t, 3.6, a.Camera.Distance, 1e-5)

	assert.Equal(t, redraw(), a.HandleEvent(events.ScrollEvent{Delta: -50, Unit: events.Pixels}))
	assert.InDelta(t, 3.96, a.Camera.Distance, 1e-5)
}

func TestResize(t *testing.T) {
	a, fr := newTestApp()
	assert.Equal(t, redraw(), a.HandleEvent(events.ResizeEvent{Size: image.Point{200, 100}}))
	assert.Equal(t, Effects(0), a.HandleEvent(events.ResizeEvent{Size: image.Point{0, 100}}))
	assert.Equal(t, []image.Point{{200, 100}}, fr.sizes)
	assert.NoError(t, a.Err)

	fr.resizeErr = errors.New("out of memory")
	assert.Equal(t, exit(), a.HandleEvent(events.ResizeEvent{Size: image.Point{300, 100}}))
	assert.Equal(t, fr.resizeErr, a.Err)
}

func TestPaintAndClose(t *testing.T) {
	a, fr := newTestApp()
	assert.Equal(t, Effects(0), a.HandleEvent(events.PaintEvent{}))
	assert.Equal(t, 1, fr.renders)

	fr.renderErr = errors.New("device lost")
	assert.Equal(t, exit(), a.HandleEvent(events.PaintEvent{}))
	assert.Equal(t, fr.renderErr, a.Err)

	a, _ = newTestApp()
	assert.Equal(t, exit(), a.HandleEvent(events.CloseEvent{}))
	assert.NoError(t, a.Err)
}

// Events queued during one poll and then drained must rotate the
// camera the same as events handled one at a time.
func TestQueuedDrag(t *testing.T) {
	a, _ := newTestApp()
	var q events.Queue
	q.Send(events.ButtonEvent{Button: events.Left, Action: events.Press})
	q.Send(move(0, 0))
	q.Send(move(100, 0))
	q.Send(events.PaintEvent{})
	var ef Effects
	for q.Len() > 0 {
		e := a.HandleEvent(q.NextEvent())
		if e.HasFlag(Redraw) {
			ef.SetFlag(true, Redraw)
		}
	}
	assert.True(t, ef.HasFlag(Redraw))
	assert.InDelta(t, 0.1, a.Camera.Yaw, 1e-5)
}

func TestFatalGPUError(t *testing.T) {
	a, fr := newTestApp()
	fr.renderErr = fmt.Errorf("render.Renderer: acquire: %w", gpu.ErrOutOfMemory)
	ef := a.HandleEvent(events.PaintEvent{})
	assert.True(t, ef.HasFlag(Exit))
	assert.ErrorIs(t, a.Err, gpu.ErrOutOfMemory)
}

func TestCursorScale(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{1, 1}, CursorScale(image.Point{800, 600}, image.Point{800, 600}))
	assert.Equal(t, mgl32.Vec2{2, 2}, CursorScale(image.Point{1600, 1200}, image.Point{800, 600}))
	assert.Equal(t, mgl32.Vec2{1, 1}, CursorScale(image.Point{0, 0}, image.Point{800, 600}))
	assert.Equal(t, mgl32.Vec2{1, 1}, CursorScale(image.Point{1600, 1200}, image.Point{}))

	// a 100 pixel drag on a 2x display moves the camera as far as
	// 100 pixels on a 1x display
	a, _ := newTestApp()
	sc := CursorScale(image.Point{1600, 1200}, image.Point{800, 600})
	a.HandleEvent(events.ButtonEvent{Button: events.Left, Action: events.Press})
	a.HandleEvent(move(0, 0))
	a.HandleEvent(move(50*sc.X(), 0))
	assert.InDelta(t, 0.1, a.Camera.Yaw, 1e-5)
}
