// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app ties the window events to the orbit camera and the
// renderer, and runs the event loop.
package app

//go:generate core generate

import (
	"image"
	"log/slog"

	"cogentcore.org/orbitview/camera"
	"cogentcore.org/orbitview/config"
	"cogentcore.org/orbitview/events"
	"cogentcore.org/orbitview/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Effects are the effects of handling one event, as bit flags.
type Effects int64 //enums:bitflag

const (
	// Redraw means the camera or the frame image changed,
	// so a new frame should be rendered.
	Redraw Effects = iota

	// Exit means the event loop should stop.
	Exit
)

// Renderer is what the [App] needs from the renderer.
type Renderer interface {

	// Resize recreates the frame image at size. It returns false
	// if the size is empty and nothing changed.
	Resize(size image.Point) (bool, error)

	// Render renders and presents one frame, returning only
	// unrecoverable errors.
	Render() error
}

// App holds the state of the application that is independent of
// the window system, and maps events onto it.
type App struct {
	Config *config.Config

	Camera *camera.Orbit

	Renderer Renderer

	// Err is the unrecoverable error that stopped the app, if any.
	Err error
}

// NewCamera returns an orbit camera with the values in cfg.
func NewCamera(cfg *config.Config) *camera.Orbit {
	o := camera.NewOrbit()
	o.Yaw = cfg.Yaw
	o.Pitch = mgl32.Clamp(cfg.Pitch, -camera.PitchLimit, camera.PitchLimit)
	o.Distance = mgl32.Clamp(cfg.Distance, camera.MinDistance, camera.MaxDistance)
	o.FOV = cfg.FOV
	o.Sensitivity = cfg.Sensitivity
	o.ZoomStep = cfg.ZoomStep
	o.PixelsPerLine = cfg.PixelsPerLine
	return o
}

// HandleEvent applies one event and returns its effects.
// Only the left mouse button drives the camera.
func (a *App) HandleEvent(ev events.Event) Effects {
	switch ev := ev.(type) {
	case events.ResizeEvent:
		ok, err := a.Renderer.Resize(ev.Size)
		if err != nil {
			return a.fatal(err)
		}
		if ok {
			return redraw()
		}
	case events.ButtonEvent:
		if ev.Button != events.Left {
			return 0
		}
		switch ev.Action {
		case events.Press:
			a.Camera.Press()
		case events.Release:
			a.Camera.Release()
		}
	case events.MoveEvent:
		if a.Camera.Move(ev.Pos.X(), ev.Pos.Y()) {
			return redraw()
		}
	case events.ScrollEvent:
		var changed bool
		switch ev.Unit {
		case events.Lines:
			changed = a.Camera.Scroll(ev.Delta)
		case events.Pixels:
			changed = a.Camera.ScrollPixels(ev.Delta)
		}
		if changed {
			return redraw()
		}
	case events.CloseEvent:
		return exit()
	case events.PaintEvent:
		if err := a.Renderer.Render(); err != nil {
			return a.fatal(err)
		}
	}
	return 0
}

func (a *App) fatal(err error) Effects {
	if gpu.IsFatal(err) {
		slog.Error("app.App: unrecoverable GPU error", "err", err)
	} else {
		slog.Error("app.App: unrecoverable error", "err", err)
	}
	a.Err = err
	return exit()
}

func redraw() Effects {
	var ef Effects
	ef.SetFlag(true, Redraw)
	return ef
}

func exit() Effects {
	var ef Effects
	ef.SetFlag(true, Exit)
	return ef
}

// CursorScale returns the factors that convert cursor positions from
// window coordinates to framebuffer pixels, which differ on high
// density displays. It is 1 for an empty window.
func CursorScale(framebuffer, window image.Point) mgl32.Vec2 {
	sc := mgl32.Vec2{1, 1}
	if window.X > 0 && framebuffer.X > 0 {
		sc[0] = float32(framebuffer.X) / float32(window.X)
	}
	if window.Y > 0 && framebuffer.Y > 0 {
		sc[1] = float32(framebuffer.Y) / float32(window.Y)
	}
	return sc
}
