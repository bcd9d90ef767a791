// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
)

// Image is the off-screen image the tracer writes and the display
// stage samples.
type Image interface {
	Size() image.Point
	Release()
}

// Binding is a set of resource bindings that references an [Image].
type Binding interface {
	Image() Image
	Release()
}

// Generation is a frame image together with the compute and display
// binding sets that reference it. A Generation is never modified:
// a resize builds a complete new one and replaces the old one, so no
// binding set can outlive the image it refers to.
type Generation struct {

	// Serial increases by one for each generation of a [Renderer].
	Serial uint64

	Image Image

	// Compute binds the image for writing, with the camera parameters.
	Compute Binding

	// Display binds the image for filtered reading, with the sampler.
	Display Binding
}

// Size returns the size of the image.
func (gn *Generation) Size() image.Point {
	return gn.Image.Size()
}

// Valid returns true if both binding sets reference this generation's image.
func (gn *Generation) Valid() bool {
	return gn.Image != nil && gn.Compute != nil && gn.Display != nil &&
		gn.Compute.Image() == gn.Image && gn.Display.Image() == gn.Image
}

// Release releases the bindings and then the image.
func (gn *Generation) Release() {
	if gn.Compute != nil {
		gn.Compute.Release()
	}
	if gn.Display != nil {
		gn.Display.Release()
	}
	if gn.Image != nil {
		gn.Image.Release()
	}
}
