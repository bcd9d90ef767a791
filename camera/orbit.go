// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides an orbit camera controlled by mouse drag and
// scroll input, and the parameter block derived from it each frame.
package camera

//go:generate core generate

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PitchLimit is the maximum absolute pitch, just short of the
	// poles where the look-at basis degenerates.
	PitchLimit = 0.995 * math32.Pi / 2

	// MinDistance and MaxDistance bound the distance from the origin.
	MinDistance = 1
	MaxDistance = 50

	// MinZoom and MaxZoom bound the multiplicative factor of one scroll.
	MinZoom = 0.2
	MaxZoom = 5

	// Near and Far are the projection clip distances.
	Near = 0.1
	Far  = 1000
)

// States are the states of the [Orbit] drag state machine.
type States int32 //enums:enum

const (
	// Idle means no drag is in progress; cursor motion is ignored.
	Idle States = iota

	// Dragging means the left button is held and cursor motion rotates.
	Dragging
)

// Orbit is a camera that orbits the origin at a given distance,
// looking at the origin with +Y up. Yaw and Pitch are spherical
// angles in radians.
type Orbit struct {

	// rotation around the vertical axis, in radians
	Yaw float32

	// elevation above the horizontal plane, in radians,
	// always within [-PitchLimit, PitchLimit]
	Pitch float32

	// distance from the origin, always within [MinDistance, MaxDistance]
	Distance float32

	// vertical field of view, in degrees
	FOV float32

	// radians per pixel of cursor motion
	Sensitivity float32

	// fractional distance change per scroll line
	ZoomStep float32

	// pixels of pixel-based scrolling per line
	PixelsPerLine float32

	state States

	// last cursor position while dragging; valid only if hasLast
	last    mgl32.Vec2
	hasLast bool
}

// NewOrbit returns a new Orbit with the standard initial view.
func NewOrbit() *Orbit {
	return &Orbit{
		Yaw:           0.6,
		Pitch:         0.3,
		Distance:      4,
		FOV:           60,
		Sensitivity:   0.005,
		ZoomStep:      0.1,
		PixelsPerLine: 50,
	}
}

// State returns the current drag state.
func (o *Orbit) State() States {
	return o.state
}

// Press starts a drag.
func (o *Orbit) Press() {
	o.state = Dragging
	o.hasLast = false
}

// Release ends a drag.
func (o *Orbit) Release() {
	o.state = Idle
	o.hasLast = false
}

// Move records a cursor position. While dragging, motion since the
// previous sample rotates the camera and Move returns true to request
// a redraw. Motion while idle is ignored.
func (o *Orbit) Move(x, y float32) bool {
	if o.state != Dragging {
		return false
	}
	pos := mgl32.Vec2{x, y}
	moved := false
	if o.hasLast {
		d := pos.Sub(o.last)
		o.Yaw -= d.X() * o.Sensitivity
		o.Pitch = mgl32.Clamp(o.Pitch-d.Y()*o.Sensitivity, -PitchLimit, PitchLimit)
		moved = true
	}
	o.last = pos
	o.hasLast = true
	return moved
}

// Scroll zooms by the given number of lines: positive values
// move the camera closer. It always requests a redraw.
func (o *Orbit) Scroll(lines float32) bool {
	f := mgl32.Clamp(1-lines*o.ZoomStep, MinZoom, MaxZoom)
	o.Distance = mgl32.Clamp(o.Distance*f, MinDistance, MaxDistance)
	return true
}

// ScrollPixels zooms by a pixel-based scroll amount, as reported by
// touchpads, converting it to lines first.
func (o *Orbit) ScrollPixels(px float32) bool {
	return o.Scroll(px / o.PixelsPerLine)
}

// Eye returns the camera position.
func (o *Orbit) Eye() mgl32.Vec3 {
	cy, sy := math32.Cos(o.Yaw), math32.Sin(o.Yaw)
	cp, sp := math32.Cos(o.Pitch), math32.Sin(o.Pitch)
	r := o.Distance
	return mgl32.Vec3{r * cy * cp, r * sp, r * sy * cp}
}

// View returns the right-handed view matrix looking from [Orbit.Eye]
// at the origin.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the right-handed perspective projection
// for an image of the given width and height in pixels.
func (o *Orbit) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(max(width, 1)) / float32(max(height, 1))
	return mgl32.Perspective(mgl32.DegToRad(o.FOV), aspect, Near, Far)
}

// Matrices returns the inverse view and inverse projection matrices,
// which the tracer uses to turn pixel coordinates back into rays.
func (o *Orbit) Matrices(width, height int) (viewInv, projInv mgl32.Mat4) {
	return o.View().Inv(), o.Projection(width, height).Inv()
}
