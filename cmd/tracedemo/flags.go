// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"flag"
)

// runFlags holds the options for the "run" subcommand, initialized with
// defaults and bound to a flag.FlagSet the same way the teacher's
// isolateFlags/commonFlags bind theirs.
type runFlags struct {
	out      string
	threads  int
	spans    int
	counters bool
}

func (f *runFlags) Init(fs *flag.FlagSet) {
	fs.StringVar(&f.out, "out", "tracedemo.pftrace", "path to write the trace file to")
	fs.IntVar(&f.threads, "threads", 4, "number of goroutines producing spans")
	fs.IntVar(&f.spans, "spans", 1000, "number of spans each goroutine opens")
	fs.BoolVar(&f.counters, "counters", true, "record a synthetic counter track alongside the spans")
}

func (f *runFlags) Parse() error {
	if f.threads <= 0 {
		return errors.New("-threads must be positive")
	}
	if f.spans <= 0 {
		return errors.New("-spans must be positive")
	}
	if f.out == "" {
		return errors.New("-out must not be empty")
	}
	return nil
}
