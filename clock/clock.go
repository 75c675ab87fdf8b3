// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package clock supplies the monotonic nanosecond timestamp used to stamp
// every recorded span and counter sample.
//
// Two implementations exist, selected at compile time by the "fastant"
// build tag: a direct read of the system monotonic clock (the default), and
// a calibrated CPU-cycle-counter reader that trades a one-time ~20ms
// calibration at Init for a cheaper per-call cost. Exactly one is compiled
// into a given binary; there is no runtime switch, because a runtime branch
// on this path would cost more than the clock read it's guarding.
package clock

import "errors"

// ErrCalibration is returned by Init when the cycle-counter clock could not
// establish a usable cycles-to-nanoseconds conversion, such as when the
// counter doesn't advance during the calibration window.
var ErrCalibration = errors.New("clock: calibration failed")
