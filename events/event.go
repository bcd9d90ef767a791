// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window and input events consumed
// by the application, as a closed set of concrete types.
package events

//go:generate core generate

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Event is one of [ResizeEvent], [ButtonEvent], [MoveEvent],
// [ScrollEvent], [CloseEvent], or [PaintEvent].
// The set is closed: handlers switch over it exhaustively.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	isEvent()
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Size image.Point
}

// ButtonEvent reports a mouse button press or release.
type ButtonEvent struct {
	Button Buttons
	Action Actions
}

// MoveEvent reports the cursor position, in window coordinates.
type MoveEvent struct {
	Pos mgl32.Vec2
}

// ScrollEvent reports a vertical scroll. Positive values scroll
// away from the user.
type ScrollEvent struct {
	Delta float32
	Unit  ScrollUnits
}

// CloseEvent is a request to close the window.
type CloseEvent struct{}

// PaintEvent is a request to render a new frame.
type PaintEvent struct{}

func (ResizeEvent) Type() Types { return WindowResize }
func (ButtonEvent) Type() Types { return MouseButton }
func (MoveEvent) Type() Types   { return MouseMove }
func (ScrollEvent) Type() Types { return Scroll }
func (CloseEvent) Type() Types  { return WindowClose }
func (PaintEvent) Type() Types  { return WindowPaint }

func (ResizeEvent) isEvent() {}
func (ButtonEvent) isEvent() {}
func (MoveEvent) isEvent()   {}
func (ScrollEvent) isEvent() {}
func (CloseEvent) isEvent()  {}
func (PaintEvent) isEvent()  {}

func (ev ResizeEvent) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Type(), ev.Size)
}

func (ev ButtonEvent) String() string {
	return fmt.Sprintf("%v{Button: %v, Action: %v}", ev.Type(), ev.Button, ev.Action)
}

func (ev MoveEvent) String() string {
	return fmt.Sprintf("%v{Pos: (%g, %g)}", ev.Type(), ev.Pos.X(), ev.Pos.Y())
}

func (ev ScrollEvent) String() string {
	return fmt.Sprintf("%v{Delta: %g %v}", ev.Type(), ev.Delta, ev.Unit)
}

func (ev CloseEvent) String() string { return ev.Type().String() }
func (ev PaintEvent) String() string { return ev.Type().String() }
