// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCloseSpanRecordsBeginAndEnd(t *testing.T) {
	r := newRecorder(1)
	h := r.openSpan("outer", nil)
	r.closeSpan(h)

	require.Len(t, r.events, 2)
	require.Equal(t, eventSpanBegin, r.events[0].kind)
	require.Equal(t, eventSpanEnd, r.events[1].kind)
	require.False(t, r.events[1].synthetic)
	require.LessOrEqual(t, r.events[0].ts, r.events[1].ts)
}

func TestNestedSpansPreserveOrder(t *testing.T) {
	r := newRecorder(1)
	outer := r.openSpan("outer", nil)
	inner := r.openSpan("inner", nil)
	r.closeSpan(inner)
	r.closeSpan(outer)

	require.Len(t, r.events, 4)
	kinds := []eventKind{r.events[0].kind, r.events[1].kind, r.events[2].kind, r.events[3].kind}
	require.Equal(t, []eventKind{eventSpanBegin, eventSpanBegin, eventSpanEnd, eventSpanEnd}, kinds)
}

func TestInlineArgsRoundTrip(t *testing.T) {
	r := newRecorder(1)
	args := []Arg{
		{Name: "a", Value: U64(1)},
		{Name: "b", Value: I64(-2)},
	}
	r.openSpan("span", args)

	e := &r.events[0]
	require.EqualValues(t, 2, e.argc)
	require.Equal(t, KindUint64, argAt(e, r.spill, 0).Value.Kind())
	require.EqualValues(t, 1, argAt(e, r.spill, 0).Value.Uint64())
	require.Equal(t, KindInt64, argAt(e, r.spill, 1).Value.Kind())
	require.EqualValues(t, -2, argAt(e, r.spill, 1).Value.Int64())
}

func TestArgsSpillPastInlineCapacity(t *testing.T) {
	r := newRecorder(1)
	args := []Arg{
		{Name: "0", Value: U64(0)},
		{Name: "1", Value: U64(1)},
		{Name: "2", Value: U64(2)},
		{Name: "3", Value: U64(3)},
		{Name: "4", Value: U64(4)},
		{Name: "5", Value: U64(5)},
	}
	r.openSpan("span", args)

	e := &r.events[0]
	require.EqualValues(t, 6, e.argc)
	for i := range args {
		got := argAt(e, r.spill, i)
		require.Equal(t, args[i].Name, got.Name)
		require.EqualValues(t, i, got.Value.Uint64())
	}
}

func TestInternReusesIDForSameLiteral(t *testing.T) {
	r := newRecorder(1)
	for i := 0; i < 3; i++ {
		r.openSpan("repeated", nil)
	}
	require.Len(t, r.interned.names, 1)
	require.Equal(t, "repeated", r.interned.names[0].name)
}

func TestDrainSynthesizesCloseForUnclosedSpan(t *testing.T) {
	r := newRecorder(1)
	r.openSpan("leaked", nil)

	td := r.drain()
	require.Len(t, td.Events, 2)
	require.Equal(t, eventSpanBegin, td.Events[0].kind)
	require.Equal(t, eventSpanEnd, td.Events[1].kind)
	require.True(t, td.Events[1].synthetic)
}

func TestDrainResetsBuffer(t *testing.T) {
	r := newRecorder(1)
	r.openSpan("a", nil)
	r.drain()

	require.Empty(t, r.events)
	require.Empty(t, r.openStack)
	require.Empty(t, r.interned.names)
}

func TestDrainOrdersNestedSyntheticClosesInnermostFirst(t *testing.T) {
	r := newRecorder(1)
	r.openSpan("outer", nil)
	r.openSpan("inner", nil)

	td := r.drain()
	require.Len(t, td.Events, 4)
	require.Equal(t, td.Events[0].nameID, td.Events[3].nameID, "outer begin/end share a name id")
	require.Equal(t, td.Events[1].nameID, td.Events[2].nameID, "inner begin/end share a name id")
}

func TestCurrentRecorderIsStablePerGoroutine(t *testing.T) {
	r1 := currentRecorder()
	r2 := currentRecorder()
	require.Same(t, r1, r2)
}
