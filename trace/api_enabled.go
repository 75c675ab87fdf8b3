//go:build !notrace

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"sync/atomic"

	"github.com/davidlattimore/perfetto-recorder/clock"
)

var initDone atomic.Bool

// Init calibrates the process clock and records the process's display
// name. It must be called once, before any Span, RecordCounter, or Drain
// call, and is not itself safe to call concurrently with those. A second
// call returns ErrAlreadyInit and changes nothing.
func Init(processName string) error {
	if !initDone.CompareAndSwap(false, true) {
		return ErrAlreadyInit
	}
	if err := clock.Init(); err != nil {
		initDone.Store(false)
		return err
	}
	setProcessName(processName)
	return nil
}

// Span opens a span on the calling goroutine's timeline and returns a
// Handle to pass to CloseSpan. name should be a string literal: see
// internTable for why. Span never blocks. It allocates only when the
// calling goroutine's event buffer, argument spillover or name table has
// to grow; the event buffer grows geometrically, so that cost is amortized
// over many spans.
func Span(name string, args ...Arg) Handle {
	return currentRecorder().openSpan(name, args)
}

// CloseSpan ends the span identified by h on the calling goroutine's
// timeline. h must have been returned by a Span call on the same
// goroutine; closing out of LIFO order is undefined but memory-safe in
// release builds, and panics with ErrUnmatchedClose under the tracedebug
// build tag.
func CloseSpan(h Handle) {
	currentRecorder().closeSpan(h)
}

// RecordCounter appends a sample to the named counter track on the
// calling goroutine's buffer. The track must have been created with
// Builder.CreateCounterTrack. The sample is stamped with the trace clock
// at the moment of the call; a caller cannot supply its own timestamp.
func RecordCounter(track TrackHandle, v CounterValue) {
	currentRecorder().recordCounter(uint64(track), clock.Now(), v)
}

// RecordCounterI64 is a convenience wrapper for RecordCounter(track, CounterI64(v)).
func RecordCounterI64(track TrackHandle, v int64) {
	RecordCounter(track, CounterI64(v))
}

// RecordCounterF64 is a convenience wrapper for RecordCounter(track, CounterF64(v)).
func RecordCounterF64(track TrackHandle, v float64) {
	RecordCounter(track, CounterF64(v))
}

// SetThreadName attaches a display name to the calling goroutine's
// timeline, carried into its next drained ThreadData.
func SetThreadName(name string) {
	currentRecorder().name = name
}

// Drain hands ownership of the calling goroutine's recorded events to the
// caller and releases the goroutine's recorder; a later Span on the same
// goroutine starts a fresh, empty one. Only the goroutine that produced
// the events may drain them.
func Drain() *ThreadData {
	r := currentRecorder()
	registry.Delete(r.goid)
	return r.drain()
}

// Now returns the current value of the process's trace clock, in the same
// units and epoch as every recorded timestamp.
func Now() int64 {
	return clock.Now()
}
