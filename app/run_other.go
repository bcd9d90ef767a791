// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package app

import (
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orbitview/config"
)

// ErrUnsupported is returned by [Run] on platforms without a desktop window.
var ErrUnsupported = errors.New("app: no desktop window system on " + runtime.GOOS)

// Run returns [ErrUnsupported]: the viewer needs a desktop window.
func Run(cfg *config.Config) error {
	return ErrUnsupported
}
