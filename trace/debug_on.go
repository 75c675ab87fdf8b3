//go:build tracedebug

// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

// debugMode gates the LIFO-nesting assertion in CloseSpan. It is a
// compile-time constant so the branch it guards is dead code, not a
// runtime check, in builds without the tracedebug tag.
const debugMode = true
