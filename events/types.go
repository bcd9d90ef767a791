// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of a window or input event.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// WindowResize happens when the framebuffer of the window
	// changes size, including transient zero sizes when minimized.
	WindowResize

	// MouseButton happens when a mouse button is pressed or released.
	MouseButton

	// MouseMove happens when the cursor moves, whether or not
	// a button is held.
	MouseMove

	// Scroll is a mouse wheel or touchpad scroll.
	Scroll

	// WindowClose is a request from the user to close the window.
	WindowClose

	// WindowPaint is a request to render a new frame.
	WindowPaint
)

// IsUnique returns true if events of this type are always delivered.
// Non-unique events are compressed: a newer event of the same type
// replaces a pending one.
func (tp Types) IsUnique() bool {
	switch tp {
	case WindowResize, WindowPaint:
		return false
	}
	return true
}

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	// NoButton is no button, or one that is not tracked.
	NoButton Buttons = iota

	// Left is the left mouse button.
	Left

	// Middle is the middle mouse button.
	Middle

	// Right is the right mouse button.
	Right
)

// Actions is what happened to a mouse button.
type Actions int32 //enums:enum

const (
	// Press means the button went down.
	Press Actions = iota

	// Release means the button went up.
	Release
)

// ScrollUnits are the units of a [ScrollEvent] delta.
type ScrollUnits int32 //enums:enum

const (
	// Lines are discrete wheel notches.
	Lines ScrollUnits = iota

	// Pixels are the continuous deltas reported by touchpads.
	Pixels
)
