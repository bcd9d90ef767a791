// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrNoAdapter means no adapter can present to the surface.
	ErrNoAdapter = errors.New("gpu: no suitable adapter")

	// ErrNoDevice means the adapter refused to create a device.
	ErrNoDevice = errors.New("gpu: could not create device")

	// ErrNoFormat means the surface reports no supported formats.
	ErrNoFormat = errors.New("gpu: surface has no supported formats")

	// ErrSurfaceLost means the surface must be configured again
	// before the next texture can be acquired.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated means the surface no longer matches the window.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceTimeout means no texture became available in time.
	ErrSurfaceTimeout = errors.New("gpu: surface texture timeout")

	// ErrOutOfMemory means the device ran out of memory.
	ErrOutOfMemory = errors.New("gpu: out of memory")
)

// acquireStatuses maps fragments of the status text reported by
// the native layer to sentinels. Order matters: the first match wins.
var acquireStatuses = []struct {
	text string
	err  error
}{
	{"outofmemory", ErrOutOfMemory},
	{"out of memory", ErrOutOfMemory},
	{"lost", ErrSurfaceLost},
	{"outdated", ErrSurfaceOutdated},
	{"timeout", ErrSurfaceTimeout},
	{"timed out", ErrSurfaceTimeout},
}

// ClassifyAcquireError returns err wrapped with the sentinel matching
// its surface status, or err unchanged if it matches none.
// It returns nil for a nil err.
func ClassifyAcquireError(err error) error {
	if err == nil {
		return nil
	}
	for _, s := range acquireStatuses {
		if errors.Is(err, s.err) {
			return err
		}
	}
	msg := strings.ToLower(err.Error())
	for _, s := range acquireStatuses {
		if strings.Contains(msg, s.text) {
			return fmt.Errorf("%w: %w", s.err, err)
		}
	}
	return err
}

// IsFatal returns true for errors that the application cannot
// recover from.
func IsFatal(err error) bool {
	return errors.Is(err, ErrOutOfMemory) || errors.Is(err, ErrNoAdapter) ||
		errors.Is(err, ErrNoDevice) || errors.Is(err, ErrNoFormat)
}
