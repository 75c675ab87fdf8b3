// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import "context"

// Scope opens a span and returns a closer for use with defer:
//
//	defer trace.Scope("decode")()
//
// The returned func closes the span even if the deferring function
// panics, since Go runs deferred calls during a panic's unwind.
func Scope(name string, args ...Arg) func() {
	h := Span(name, args...)
	return func() { CloseSpan(h) }
}

// WithSpan runs fn inside a span named name, closing the span whether fn
// returns normally, returns an error, or panics.
func WithSpan(ctx context.Context, name string, args []Arg, fn func(context.Context) error) error {
	h := Span(name, args...)
	defer CloseSpan(h)
	return fn(ctx)
}
