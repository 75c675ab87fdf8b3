// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package logging defines a Logger interface and context.Context helpers
// to get and set it, so the trace and pftrace packages never instantiate
// a concrete logging implementation directly. Only the Builder's cold
// paths (counter track creation and trace-writing failures) log anything;
// the recording hot path never touches this package.
package logging

import "context"

// Logger is the least common denominator this package asks callers to
// implement; logrusLogger (logrus.go) is the one provided backend.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type key int

var loggerKey key

// SetFactory sets the Logger factory for this context. The factory is
// called each time Get(ctx) is used.
func SetFactory(ctx context.Context, f func(context.Context) Logger) context.Context {
	return context.WithValue(ctx, loggerKey, f)
}

// Set sets the logger for this context. It can be retrieved with
// Get(ctx).
func Set(ctx context.Context, l Logger) context.Context {
	return SetFactory(ctx, func(context.Context) Logger { return l })
}

// Get returns the current Logger, or a logger that ignores all messages
// if none was set.
func Get(ctx context.Context) Logger {
	if f, ok := ctx.Value(loggerKey).(func(context.Context) Logger); ok {
		if l := f(ctx); l != nil {
			return l
		}
	}
	return Null()
}

// Null returns a logger that silently discards every message.
func Null() Logger {
	return nullLogger{}
}

type nullLogger struct{}

func (nullLogger) Debugf(string, ...interface{})   {}
func (nullLogger) Infof(string, ...interface{})    {}
func (nullLogger) Warningf(string, ...interface{}) {}
func (nullLogger) Errorf(string, ...interface{})   {}
