//go:build fastant && !amd64 && !arm64

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// This file backs the "fastant" build tag on architectures without a
// shimmed cycle-counter read, where the fast clock degrades to the slow
// one (spec §4.1). It behaves exactly like slow.go.

package clock

import "time"

var start time.Time

func Init() error {
	start = time.Now()
	return nil
}

func Now() int64 {
	return int64(time.Since(start))
}
