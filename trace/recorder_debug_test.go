//go:build tracedebug

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloseSpanOutOfOrderPanicsUnderTracedebug(t *testing.T) {
	r := newRecorder(1)
	outer := r.openSpan("outer", nil)
	r.openSpan("inner", nil)

	require.PanicsWithValue(t, ErrUnmatchedClose, func() {
		r.closeSpan(outer)
	})
}
