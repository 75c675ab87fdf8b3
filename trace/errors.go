// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import "errors"

// ErrAlreadyInit is returned by Init when it has already run once in
// this process. The clock calibration and process name it establishes
// are process-wide; a second Init would silently re-anchor every
// timestamp recorded so far.
var ErrAlreadyInit = errors.New("trace: already initialized")

// ErrWrite is returned by Builder.WriteTo/WriteToFile when the underlying
// writer fails partway through serialization. The destination is left in
// an unspecified, partially-written state.
var ErrWrite = errors.New("trace: write failed")

// ErrUnmatchedClose is the panic value used by CloseSpan in tracedebug
// builds when the closed handle does not match the top of the calling
// goroutine's open-span stack.
var ErrUnmatchedClose = errors.New("trace: span closed out of LIFO order")
