//go:build !fastant

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock

import "time"

var start time.Time

// Init anchors the clock's epoch. The slow clock needs no calibration; it
// always succeeds.
func Init() error {
	start = time.Now()
	return nil
}

// Now returns nanoseconds elapsed since Init, read directly from the
// system monotonic clock on every call.
func Now() int64 {
	return int64(time.Since(start))
}
