// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowMonotonic(t *testing.T) {
	require.NoError(t, Init())

	prev := Now()
	for i := 0; i < 1000; i++ {
		cur := Now()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestNowAgreesWithWallClock(t *testing.T) {
	require.NoError(t, Init())

	start := Now()
	time.Sleep(5 * time.Millisecond)
	elapsed := Now() - start

	// Generous bounds: this just catches a badly wired affine transform,
	// not precise calibration accuracy.
	require.Greater(t, elapsed, int64(1*time.Millisecond))
	require.Less(t, elapsed, int64(200*time.Millisecond))
}
