// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import _ "embed"

// TraceShader is the tracer program. It writes an rgba8unorm storage
// texture at @binding(0) from the camera block at @binding(1), in
// 8x8 workgroups from entry point [TraceEntry].
//
//go:embed shaders/trace.wgsl
var TraceShader string

// BlitShader is the display program. It samples the texture at
// @binding(0) with the sampler at @binding(1) onto a full-screen
// triangle, from entry points [BlitVertexEntry] and [BlitFragmentEntry].
//
//go:embed shaders/blit.wgsl
var BlitShader string

const (
	TraceEntry        = "main"
	BlitVertexEntry   = "vs"
	BlitFragmentEntry = "fs"
)
