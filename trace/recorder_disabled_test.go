//go:build notrace

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledBuildAPIsAreNoops(t *testing.T) {
	require.NoError(t, Init("disabled"))

	h := Span("anything", Arg{Name: "x", Value: U64(1)})
	require.Equal(t, Handle{}, h)

	CloseSpan(h)
	RecordCounter(TrackHandle(1), CounterI64(1))
	SetThreadName("ignored")

	td := Drain()
	require.Empty(t, td.Events)
	require.Zero(t, Now())
}

func TestDisabledBuildSpanAllocatesNothing(t *testing.T) {
	n := testing.AllocsPerRun(100, func() {
		h := Span("x")
		CloseSpan(h)
	})
	require.Zero(t, n)
}
