// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pftrace assembles Perfetto TracePacket messages field-by-field
// with protowire, rather than depending on protoc-generated bindings for
// the (large, rarely-vendored-whole) Perfetto trace schema. Field numbers
// below are taken from the public protos/perfetto/trace/*.proto schema
// published at perfetto.dev; a consumer that needs byte-for-byte fidelity
// against a specific Perfetto release should pin these against the
// vendored .proto for that release.
package pftrace

// TracePacket field numbers.
const (
	fieldPacketClockSnapshot  = 6
	fieldPacketTimestamp      = 8
	fieldPacketSeqID          = 10
	fieldPacketTrackEvent     = 11
	fieldPacketInternedData   = 12
	fieldPacketSequenceFlags  = 13
	fieldPacketTimestampClock = 58
	fieldPacketTrackDescr     = 60
)

// TracePacket.SequenceFlags bitmask values.
const (
	SeqIncrementalStateCleared = 1
	SeqNeedsIncrementalState   = 2
)

// ClockSnapshot / ClockSnapshot.Clock field numbers.
const (
	fieldClockSnapshotClocks = 1
	fieldClockClockID        = 1
	fieldClockTimestamp      = 2
)

// BuiltinClockRealtime is the BuiltinClocks id for CLOCK_REALTIME, the
// builtin clock this package snapshots alongside its own so a consumer
// can place the trace on the wall-clock timeline.
const BuiltinClockRealtime = 1

// CustomClockID is the clock id this package assigns to the recorder's own
// monotonic clock. Ids 1-63 are reserved for Perfetto's builtin clocks
// (BOOTTIME, REALTIME, ...); custom clocks use ids >= 64.
const CustomClockID = 64

// TrackDescriptor field numbers.
const (
	fieldTrackUUID       = 1
	fieldTrackName       = 2
	fieldTrackProcess    = 3
	fieldTrackThread     = 4
	fieldTrackParentUUID = 5
	fieldTrackCounter    = 8
)

// ProcessDescriptor field numbers.
const (
	fieldProcessPID  = 1
	fieldProcessName = 6
)

// ThreadDescriptor field numbers.
const (
	fieldThreadPID  = 1
	fieldThreadTID  = 2
	fieldThreadName = 5
)

// CounterDescriptor field numbers and its Unit enum. Field 1 is the
// builtin-counter type, which this package never emits; the unit lives
// at field 3.
const (
	fieldCounterUnit       = 3
	fieldCounterMultiplier = 4
	fieldCounterIsIncr     = 5
	fieldCounterUnitName   = 6
)

const (
	CounterUnitUnspecified = 0
	CounterUnitTimeNS      = 1
	CounterUnitCount       = 2
	CounterUnitSizeBytes   = 3
)

// TrackEvent field numbers and its Type enum.
const (
	fieldEventDebugAnn  = 4
	fieldEventType      = 9
	fieldEventNameIID   = 10
	fieldEventTrackUUID = 11
	fieldEventCounterI  = 30
	fieldEventCounterF  = 44
)

const (
	EventTypeSliceBegin = 1
	EventTypeSliceEnd   = 2
	EventTypeInstant    = 3
	EventTypeCounter    = 4
)

// DebugAnnotation field numbers. The name oneof offers an interned id
// (field 1) or an inline string (field 10); argument names are not
// interned by this package, so only field 10 is written.
const (
	fieldAnnotationBool   = 2
	fieldAnnotationUint   = 3
	fieldAnnotationInt    = 4
	fieldAnnotationDouble = 5
	fieldAnnotationString = 6
	fieldAnnotationName   = 10
)

// InternedData / EventName field numbers.
const (
	fieldInternedEventNames = 2
	fieldEventNameIIDField  = 1
	fieldEventNameStr       = 2
)
