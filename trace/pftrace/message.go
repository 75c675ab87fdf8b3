// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pftrace

// InternedName is one (id, literal name) pair to publish in an
// InternedData section.
type InternedName struct {
	ID   uint64
	Name string
}

// Annotation is one DebugAnnotation attached to a TrackEvent. Exactly one
// of the typed fields is meaningful, per Kind.
type Annotation struct {
	Name   string
	Kind   AnnotationKind
	Uint   uint64
	Int    int64
	Double float64
	Bool   bool
	Str    string
}

type AnnotationKind uint8

const (
	AnnotationUint AnnotationKind = iota
	AnnotationInt
	AnnotationDouble
	AnnotationBool
	AnnotationString
)

func appendAnnotation(dst []byte, a Annotation) []byte {
	var body []byte
	body = appendStringField(body, fieldAnnotationName, a.Name)
	switch a.Kind {
	case AnnotationUint:
		body = appendVarintField(body, fieldAnnotationUint, a.Uint)
	case AnnotationInt:
		body = appendIntField(body, fieldAnnotationInt, a.Int)
	case AnnotationDouble:
		body = appendDoubleField(body, fieldAnnotationDouble, a.Double)
	case AnnotationBool:
		body = appendBoolField(body, fieldAnnotationBool, a.Bool)
	case AnnotationString:
		body = appendStringField(body, fieldAnnotationString, a.Str)
	}
	return appendNested(dst, fieldEventDebugAnn, body)
}

// ClockSnapshotPacket builds a TracePacket pairing one reading of
// CLOCK_REALTIME with the simultaneous reading of the recorder's own
// clock, anchoring every CustomClockID timestamp in the trace to the
// wall-clock timeline.
func ClockSnapshotPacket(realtimeNS, customNS uint64) []byte {
	var rt []byte
	rt = appendVarintField(rt, fieldClockClockID, uint64(BuiltinClockRealtime))
	rt = appendVarintField(rt, fieldClockTimestamp, realtimeNS)

	var clk []byte
	clk = appendVarintField(clk, fieldClockClockID, uint64(CustomClockID))
	clk = appendVarintField(clk, fieldClockTimestamp, customNS)

	var snap []byte
	snap = appendNested(snap, fieldClockSnapshotClocks, rt)
	snap = appendNested(snap, fieldClockSnapshotClocks, clk)

	var pkt []byte
	pkt = appendNested(pkt, fieldPacketClockSnapshot, snap)
	return pkt
}

// ProcessTrackPacket builds the TrackDescriptor packet describing the
// process-level track every thread track is parented to.
func ProcessTrackPacket(trackUUID uint64, pid int32, name string) []byte {
	var proc []byte
	proc = appendIntField(proc, fieldProcessPID, int64(pid))
	if name != "" {
		proc = appendStringField(proc, fieldProcessName, name)
	}

	var td []byte
	td = appendVarintField(td, fieldTrackUUID, trackUUID)
	td = appendNested(td, fieldTrackProcess, proc)

	var pkt []byte
	pkt = appendNested(pkt, fieldPacketTrackDescr, td)
	return pkt
}

// ThreadTrackPacket builds the TrackDescriptor packet describing one
// goroutine's track, parented to the process track.
func ThreadTrackPacket(trackUUID, parentUUID uint64, pid int32, tid int64, name string) []byte {
	var thread []byte
	thread = appendIntField(thread, fieldThreadPID, int64(pid))
	thread = appendIntField(thread, fieldThreadTID, tid)
	if name != "" {
		thread = appendStringField(thread, fieldThreadName, name)
	}

	var td []byte
	td = appendVarintField(td, fieldTrackUUID, trackUUID)
	td = appendVarintField(td, fieldTrackParentUUID, parentUUID)
	td = appendNested(td, fieldTrackThread, thread)

	var pkt []byte
	pkt = appendNested(pkt, fieldPacketTrackDescr, td)
	return pkt
}

// CounterTrackPacket builds the TrackDescriptor packet describing a
// counter track.
func CounterTrackPacket(trackUUID, parentUUID uint64, name string, unit int32, unitName string, multiplier int64, incremental bool) []byte {
	var ctr []byte
	ctr = appendVarintField(ctr, fieldCounterUnit, uint64(unit))
	if unitName != "" {
		ctr = appendStringField(ctr, fieldCounterUnitName, unitName)
	}
	if multiplier != 0 && multiplier != 1 {
		ctr = appendIntField(ctr, fieldCounterMultiplier, multiplier)
	}
	if incremental {
		ctr = appendBoolField(ctr, fieldCounterIsIncr, true)
	}

	var td []byte
	td = appendVarintField(td, fieldTrackUUID, trackUUID)
	td = appendVarintField(td, fieldTrackParentUUID, parentUUID)
	td = appendStringField(td, fieldTrackName, name)
	td = appendNested(td, fieldTrackCounter, ctr)

	var pkt []byte
	pkt = appendNested(pkt, fieldPacketTrackDescr, td)
	return pkt
}

// InternedDataPacket builds a TracePacket carrying nothing but an
// InternedData section, tagged with seqID so it establishes the event
// names referenced by every later packet on that sequence.
func InternedDataPacket(seqID uint32, names []InternedName) []byte {
	var interned []byte
	for _, n := range names {
		var en []byte
		en = appendVarintField(en, fieldEventNameIIDField, n.ID)
		en = appendStringField(en, fieldEventNameStr, n.Name)
		interned = appendNested(interned, fieldInternedEventNames, en)
	}

	var pkt []byte
	pkt = appendVarintField(pkt, fieldPacketSeqID, uint64(seqID))
	pkt = appendVarintField(pkt, fieldPacketSequenceFlags, uint64(SeqIncrementalStateCleared))
	pkt = appendNested(pkt, fieldPacketInternedData, interned)
	return pkt
}

// SlicePacket builds a slice begin or end TracePacket for track trackUUID
// at timestamp ts (in CustomClockID's epoch). nameIID and annotations are
// only meaningful for begin packets; pass nameIID 0 and nil annotations
// for an end packet.
func SlicePacket(seqID uint32, ts uint64, trackUUID uint64, begin bool, nameIID uint64, annotations []Annotation) []byte {
	var ev []byte
	if begin {
		ev = appendVarintField(ev, fieldEventType, uint64(EventTypeSliceBegin))
	} else {
		ev = appendVarintField(ev, fieldEventType, uint64(EventTypeSliceEnd))
	}
	ev = appendVarintField(ev, fieldEventTrackUUID, trackUUID)
	if begin && nameIID != 0 {
		ev = appendVarintField(ev, fieldEventNameIID, nameIID)
	}
	for _, a := range annotations {
		ev = appendAnnotation(ev, a)
	}

	return eventPacket(seqID, ts, ev)
}

// CounterSamplePacket builds a counter-sample TracePacket for track
// trackUUID at timestamp ts. Exactly one of intValue/doubleValue is
// written, per isFloat.
func CounterSamplePacket(seqID uint32, ts uint64, trackUUID uint64, isFloat bool, intValue int64, doubleValue float64) []byte {
	var ev []byte
	ev = appendVarintField(ev, fieldEventType, uint64(EventTypeCounter))
	ev = appendVarintField(ev, fieldEventTrackUUID, trackUUID)
	if isFloat {
		ev = appendDoubleField(ev, fieldEventCounterF, doubleValue)
	} else {
		ev = appendIntField(ev, fieldEventCounterI, intValue)
	}

	return eventPacket(seqID, ts, ev)
}

// eventPacket frames a serialized TrackEvent with the packet-level fields
// every event packet shares. Event packets declare
// SEQ_NEEDS_INCREMENTAL_STATE because their interned name ids only
// resolve against the InternedData published earlier on the same
// sequence; a consumer that lost that state must drop them rather than
// mis-resolve them.
func eventPacket(seqID uint32, ts uint64, ev []byte) []byte {
	var pkt []byte
	pkt = appendVarintField(pkt, fieldPacketTimestamp, ts)
	pkt = appendVarintField(pkt, fieldPacketTimestampClock, uint64(CustomClockID))
	pkt = appendVarintField(pkt, fieldPacketSeqID, uint64(seqID))
	pkt = appendVarintField(pkt, fieldPacketSequenceFlags, uint64(SeqNeedsIncrementalState))
	pkt = appendNested(pkt, fieldPacketTrackEvent, ev)
	return pkt
}
