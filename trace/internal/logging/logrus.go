// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package logging

import "github.com/sirupsen/logrus"

// NewLogrus wraps a *logrus.Entry (or *logrus.Logger, via its
// WithField/entry conversion) as a Logger.
func NewLogrus(e *logrus.Entry) Logger {
	return logrusLogger{e}
}

// NewLogrusDefault wraps logrus' standard logger, tagged with a
// "component" field so trace log lines are easy to grep out of a
// process's combined output.
func NewLogrusDefault(component string) Logger {
	return logrusLogger{logrus.WithField("component", component)}
}

type logrusLogger struct {
	e *logrus.Entry
}

func (l logrusLogger) Debugf(format string, args ...interface{})   { l.e.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...interface{})    { l.e.Infof(format, args...) }
func (l logrusLogger) Warningf(format string, args ...interface{}) { l.e.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...interface{})   { l.e.Errorf(format, args...) }
