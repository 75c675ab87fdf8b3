//go:build notrace

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// This file backs the notrace build tag: every recording entry point
// becomes a function that touches no shared state, reads no clock, and
// allocates nothing, so a binary built with -tags notrace pays exactly
// zero cost for instrumentation left in the source.

package trace

func Init(processName string) error { return nil }

func Span(name string, args ...Arg) Handle { return Handle{} }

func CloseSpan(h Handle) {}

func RecordCounter(track TrackHandle, v CounterValue) {}

func RecordCounterI64(track TrackHandle, v int64) {}

func RecordCounterF64(track TrackHandle, v float64) {}

func SetThreadName(name string) {}

func Drain() *ThreadData { return &ThreadData{} }

func Now() int64 { return 0 }
