// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/maruel/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/davidlattimore/perfetto-recorder/trace"
)

var cmdRun = &subcommands.Command{
	UsageLine: "run <options>",
	ShortDesc: "runs a synthetic workload and writes a Perfetto trace file",
	LongDesc:  "Spawns -threads goroutines, each opening -spans nested spans, optionally sampling a counter track, then writes the result to -out.",
	CommandRun: func() subcommands.CommandRun {
		c := &runRun{}
		c.Init(c.GetFlags())
		return c
	},
}

type runRun struct {
	subcommands.CommandRunBase
	runFlags
}

func (c *runRun) parse(args []string) error {
	if err := c.runFlags.Parse(); err != nil {
		return err
	}
	if len(args) != 0 {
		return errors.New("position arguments not expected")
	}
	return nil
}

func (c *runRun) main() error {
	if err := trace.Init("tracedemo"); err != nil {
		return fmt.Errorf("tracedemo: init clock: %w", err)
	}

	b := trace.NewWithLogrusLogging("tracedemo")
	var counter trace.TrackHandle
	if c.counters {
		counter = b.CreateCounterTrack("queue depth", trace.UnitCount, "", 1, false)
	}

	var g errgroup.Group
	for i := 0; i < c.threads; i++ {
		i := i
		g.Go(func() error {
			return c.worker(i, b, counter)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := b.WriteToFile(c.out); err != nil {
		return fmt.Errorf("tracedemo: write %s: %w", c.out, err)
	}
	return nil
}

func (c *runRun) worker(id int, b *trace.Builder, counter trace.TrackHandle) error {
	trace.SetThreadName(fmt.Sprintf("worker-%d", id))
	rng := rand.New(rand.NewSource(int64(id) + 1))

	outer := trace.Span("batch", trace.Arg{Name: "worker", Value: trace.I64(int64(id))})
	for i := 0; i < c.spans; i++ {
		h := trace.Span("unit-of-work", trace.Arg{Name: "index", Value: trace.I64(int64(i))})
		if c.counters {
			trace.RecordCounterI64(counter, int64(rng.Intn(64)))
		}
		trace.CloseSpan(h)
	}
	trace.CloseSpan(outer)

	b.ProcessThreadData(trace.Drain())
	return nil
}

func (c *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if err := c.parse(args); err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return 1
	}

	start := time.Now()
	if err := c.main(); err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
		return 1
	}
	fmt.Fprintf(a.GetOut(), "wrote %s in %s\n", c.out, time.Since(start))
	return 0
}
