// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"os"
	"sync/atomic"
)

var processData atomic.Value // holds ProcessData

func init() {
	processData.Store(ProcessData{PID: int32(os.Getpid())})
}

func currentProcessData() ProcessData {
	return processData.Load().(ProcessData)
}

// setProcessName records the display name attached to every thread's
// drained data from here on. Exposed indirectly through Init.
func setProcessName(name string) {
	processData.Store(ProcessData{PID: int32(os.Getpid()), Name: name})
}
