// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the settings for the orbitview application.
// There are no flags or configuration files: every value comes from
// the `default:` struct tags, applied by [SetFromDefaults].
package config

import (
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/base/reflectx"
)

// Config contains the configuration information
// used by the orbitview application.
type Config struct {

	// title of the window
	Title string `default:"orbitview"`

	// initial width of the window, in screen units
	Width int `default:"1280"`

	// initial height of the window, in screen units
	Height int `default:"720"`

	// whether to render a new frame on every pass through the event loop.
	// If false, frames are only rendered when the camera changes or the
	// window system asks for a redraw.
	Continuous bool `default:"true"`

	// presentation mode for the surface: fifo, mailbox, or immediate
	PresentMode string `default:"fifo"`

	// initial camera yaw, in radians
	Yaw float32 `default:"0.6"`

	// initial camera pitch, in radians
	Pitch float32 `default:"0.3"`

	// initial camera distance from the origin
	Distance float32 `default:"4"`

	// vertical field of view, in degrees
	FOV float32 `default:"60"`

	// radians of rotation per pixel of cursor motion while dragging
	Sensitivity float32 `default:"0.005"`

	// fractional change in distance per line of scrolling
	ZoomStep float32 `default:"0.1"`

	// number of pixels of a pixel-based scroll that count as one line
	PixelsPerLine float32 `default:"50"`

	// minimum level of log messages that are printed:
	// debug, info, warn, or error
	LogLevel string `default:"info"`

	// whether to log the negotiated GPU surface settings
	Debug bool
}

// New returns a new Config with all values set from defaults.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Size returns the initial window size.
func (cf *Config) Size() image.Point {
	return image.Point{cf.Width, cf.Height}
}

// Validate fixes values that cannot be used, logging each change.
func (cf *Config) Validate() {
	if cf.Width < 1 {
		slog.Warn("config: width must be positive", "width", cf.Width)
		cf.Width = 1
	}
	if cf.Height < 1 {
		slog.Warn("config: height must be positive", "height", cf.Height)
		cf.Height = 1
	}
	if cf.FOV <= 0 || cf.FOV >= 180 {
		slog.Warn("config: field of view out of range, using 60", "fov", cf.FOV)
		cf.FOV = 60
	}
	if cf.PixelsPerLine <= 0 {
		cf.PixelsPerLine = 50
	}
}

// Level returns the slog level named by LogLevel,
// falling back to [logx.UserLevel] if it is not recognized.
func (cf *Config) Level() slog.Level {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(cf.LogLevel))); err != nil {
		return logx.UserLevel
	}
	return lv
}
