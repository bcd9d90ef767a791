// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package app

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/orbitview/config"
	"cogentcore.org/orbitview/events"
	"cogentcore.org/orbitview/gpu"
	"cogentcore.org/orbitview/render"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the glfw window of an [App]. Window system callbacks
// only add events to the queue; they are handled after each poll,
// on the main thread.
type Window struct {
	*App

	Queue events.Queue

	glw *glfw.Window
}

// Run creates the window, the GPU context, and the renderer from cfg,
// and runs the event loop until the window is closed or an
// unrecoverable error occurs, which is returned.
// It must be called on the main thread.
func Run(cfg *config.Config) error {
	mode, err := gpu.ParsePresentMode(cfg.PresentMode)
	if err != nil {
		slog.Warn("app: using fifo presentation", "err", err)
	}
	gpu.Debug = cfg.Debug
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	glw, err := gpu.GLFWCreateWindow(cfg.Size(), cfg.Title)
	if err != nil {
		return fmt.Errorf("app: create window: %w", err)
	}
	defer glw.Destroy()

	cx, err := gpu.NewContext(gpu.GLFWWindow{Window: glw}, mode)
	if err != nil {
		return err
	}
	defer cx.Release()

	gb, err := render.NewGPUBackend(cx)
	if err != nil {
		return err
	}
	defer gb.Release()

	r, err := render.NewRenderer(gb, NewCamera(cfg), cx.Window().FramebufferSize())
	if err != nil {
		return err
	}
	defer r.Release()
	// the queue must be idle before anything is released
	defer cx.Device.WaitDone()

	w := &Window{App: &App{Config: cfg, Camera: r.Camera, Renderer: r}, glw: glw}
	w.setCallbacks()
	slog.Info("app: running", "size", r.Size(), "format", cx.Surface.Format.Format, "present", cx.Surface.PresentMode)
	err = w.Run()
	slog.Info("app: done", "frames", r.Frames())
	return err
}

func (w *Window) setCallbacks() {
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Queue.Send(events.ResizeEvent{Size: image.Point{width, height}})
	})
	w.glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		ev := events.ButtonEvent{Button: glfwButton(button)}
		switch action {
		case glfw.Press:
			ev.Action = events.Press
		case glfw.Release:
			ev.Action = events.Release
		default:
			return
		}
		w.Queue.Send(ev)
	})
	w.glw.SetCursorPosCallback(func(glw *glfw.Window, x, y float64) {
		fw, fh := glw.GetFramebufferSize()
		ww, wh := glw.GetSize()
		sc := CursorScale(image.Point{fw, fh}, image.Point{ww, wh})
		w.Queue.Send(events.MoveEvent{Pos: mgl32.Vec2{float32(x) * sc.X(), float32(y) * sc.Y()}})
	})
	w.glw.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.Queue.Send(events.ScrollEvent{Delta: float32(yoff), Unit: events.Lines})
	})
	w.glw.SetCloseCallback(func(_ *glfw.Window) {
		w.Queue.Send(events.CloseEvent{})
	})
	w.glw.SetRefreshCallback(func(_ *glfw.Window) {
		w.Queue.Send(events.PaintEvent{})
	})
}

func glfwButton(b glfw.MouseButton) events.Buttons {
	switch b {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}

// Run runs the event loop. In continuous mode it polls and renders
// a frame on every pass; otherwise it waits for events and renders
// only when one of them asks for a redraw.
func (w *Window) Run() error {
	redraw := true
	for !w.glw.ShouldClose() {
		if w.Config.Continuous || redraw {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		for w.Queue.Len() > 0 {
			ev := w.Queue.NextEvent()
			if _, ok := ev.(events.PaintEvent); ok {
				redraw = true
				continue
			}
			ef := w.HandleEvent(ev)
			if ef.HasFlag(Exit) {
				return w.Err
			}
			if ef.HasFlag(Redraw) {
				redraw = true
			}
		}
		if w.Config.Continuous || redraw {
			redraw = false
			ef := w.HandleEvent(events.PaintEvent{})
			if ef.HasFlag(Exit) {
				return w.Err
			}
		}
	}
	return w.Err
}
