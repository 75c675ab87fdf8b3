// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command tracedemo runs a synthetic multi-goroutine workload through the
// trace package and writes the result as a Perfetto trace file.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "tracedemo",
	Title: "records a synthetic workload into a Perfetto trace file",
	Commands: []*subcommands.Command{
		cmdRun,
		subcommands.CmdHelp,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
