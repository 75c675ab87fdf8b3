//go:build !notrace

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/davidlattimore/perfetto-recorder/trace/pftrace"
)

func TestInitTwiceReturnsErrAlreadyInit(t *testing.T) {
	require.ErrorIs(t, Init("again"), ErrAlreadyInit)
}

func TestScenarioSingleSpan(t *testing.T) {
	h := Span("single")
	CloseSpan(h)
	td := Drain()

	require.Len(t, td.Events, 2)
	require.Equal(t, eventSpanBegin, td.Events[0].kind)
	require.Equal(t, eventSpanEnd, td.Events[1].kind)
}

func TestScenarioNestedSpansWithArgs(t *testing.T) {
	outer := Span("outer", Arg{Name: "phase", Value: Str("load")})
	inner := Span("inner", Arg{Name: "count", Value: I64(3)})
	CloseSpan(inner)
	CloseSpan(outer)
	td := Drain()

	require.Len(t, td.Events, 4)
	require.EqualValues(t, 1, td.Events[0].argc)
	require.EqualValues(t, 1, td.Events[1].argc)
}

func TestScenarioFourThreadFanout(t *testing.T) {
	const threads = 4
	const spansPerThread = 1000

	drained := make(chan *ThreadData, threads)
	var g errgroup.Group
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for j := 0; j < spansPerThread; j++ {
				h := Span("unit-of-work")
				CloseSpan(h)
			}
			drained <- Drain()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(drained)

	total := 0
	for td := range drained {
		total += len(td.Events)
	}
	require.Equal(t, threads*spansPerThread*2, total)
}

func TestScenarioCounterTrackWithCustomUnit(t *testing.T) {
	b := NewWithSeed(7)
	track := b.CreateCounterTrack("widgets produced", UnitCustom, "widgets", 1, false)
	RecordCounter(track, CounterI64(10))
	RecordCounter(track, CounterI64(17))
	b.ProcessThreadData(Drain())

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	require.NotZero(t, buf.Len())
}

func TestScenarioMismatchedArgTypesRoundTrip(t *testing.T) {
	h := Span("typed",
		Arg{Name: "u", Value: U64(1)},
		Arg{Name: "i", Value: I64(-1)},
		Arg{Name: "f", Value: F64(1.5)},
		Arg{Name: "b", Value: Bool(true)},
		Arg{Name: "s", Value: Str("text")},
	)
	CloseSpan(h)
	td := Drain()

	e := &td.Events[0]
	require.EqualValues(t, 5, e.argc)
	require.Equal(t, KindUint64, argAt(e, td.Spill, 0).Value.Kind())
	require.Equal(t, KindInt64, argAt(e, td.Spill, 1).Value.Kind())
	require.Equal(t, KindFloat64, argAt(e, td.Spill, 2).Value.Kind())
	require.Equal(t, KindBool, argAt(e, td.Spill, 3).Value.Kind())
	require.Equal(t, KindString, argAt(e, td.Spill, 4).Value.Kind())
	require.Equal(t, "text", argAt(e, td.Spill, 4).Value.StringValue())
}

func TestScenarioUnclosedSpanAtShutdown(t *testing.T) {
	Span("never closed")
	td := Drain()

	require.Len(t, td.Events, 2)
	require.True(t, td.Events[1].synthetic)
}

func TestScenarioWrittenFileHasBalancedBeginEndAndMonotonicTimestamps(t *testing.T) {
	b := NewWithSeed(9)
	outer := Span("outer")
	inner := Span("inner", Arg{Name: "k", Value: I64(1)})
	CloseSpan(inner)
	CloseSpan(outer)
	b.ProcessThreadData(Drain())

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))

	packets, err := pftrace.ReadPackets(buf.Bytes())
	require.NoError(t, err)

	var begins, ends int
	lastTS := map[uint64]uint64{}
	for _, p := range packets {
		d, err := pftrace.DecodePacket(p)
		require.NoError(t, err)
		if !d.HasEvent {
			continue
		}
		switch d.EventType {
		case pftrace.EventTypeSliceBegin:
			begins++
		case pftrace.EventTypeSliceEnd:
			ends++
		}
		require.GreaterOrEqual(t, d.Timestamp, lastTS[d.TrackUUID])
		lastTS[d.TrackUUID] = d.Timestamp
	}
	require.Equal(t, 2, begins)
	require.Equal(t, 2, ends)
}

func TestScopeClosesOnPanic(t *testing.T) {
	func() {
		defer func() { recover() }()
		defer Scope("will-panic")()
		panic("boom")
	}()

	td := Drain()
	require.Len(t, td.Events, 2)
	require.False(t, td.Events[1].synthetic)
}

func TestWithSpanPropagatesError(t *testing.T) {
	sentinel := context.Canceled
	err := WithSpan(context.Background(), "op", nil, func(context.Context) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	td := Drain()
	require.Len(t, td.Events, 2)
}
