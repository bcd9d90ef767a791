// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbitview opens a window showing a traced scene that can
// be orbited by dragging with the left mouse button and zoomed by
// scrolling.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/orbitview/app"
	"cogentcore.org/orbitview/config"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	cfg := config.New()
	cfg.Validate()
	logx.UserLevel = cfg.Level()
	slog.SetLogLoggerLevel(cfg.Level())

	if err := app.Run(cfg); err != nil {
		slog.Error("orbitview: exiting", "err", err)
		os.Exit(1)
	}
}
