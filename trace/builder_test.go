// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteToProducesNonEmptyPacketStream(t *testing.T) {
	b := NewWithSeed(0xAABBCCDD)

	r := newRecorder(42)
	h := r.openSpan("work", []Arg{{Name: "n", Value: I64(7)}})
	r.closeSpan(h)
	b.ProcessThreadData(r.drain())

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	require.NotZero(t, buf.Len())

	// The stream is a sequence of (tag=0x0A, varint-length, bytes) groups;
	// at minimum we expect the tag byte to recur once per packet.
	tagByte := byte(0x0A)
	count := 0
	for _, c := range buf.Bytes() {
		if c == tagByte {
			count++
		}
	}
	require.Greater(t, count, 0)
}

func TestCreateCounterTrackAllocatesDistinctIDs(t *testing.T) {
	b := NewWithSeed(1)
	t1 := b.CreateCounterTrack("heap", UnitSizeBytes, "", 1, false)
	t2 := b.CreateCounterTrack("queue depth", UnitCount, "", 1, false)
	require.NotEqual(t, t1, t2)
}

func TestWriteToIsIdempotentForSameCapturedData(t *testing.T) {
	b := NewWithSeed(0x1234)
	r := newRecorder(1)
	h := r.openSpan("a", nil)
	r.closeSpan(h)
	b.ProcessThreadData(r.drain())

	var first, second bytes.Buffer
	require.NoError(t, b.WriteTo(&first))
	require.NoError(t, b.WriteTo(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestProcessThreadDataAcceptsMultipleThreads(t *testing.T) {
	b := NewWithSeed(2)
	for i := int64(1); i <= 4; i++ {
		r := newRecorder(i)
		h := r.openSpan("fanout", nil)
		r.closeSpan(h)
		b.ProcessThreadData(r.drain())
	}

	var buf bytes.Buffer
	require.NoError(t, b.WriteTo(&buf))
	require.Len(t, b.threads, 4)
}
