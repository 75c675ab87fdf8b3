// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davidlattimore/perfetto-recorder/clock"
	"github.com/davidlattimore/perfetto-recorder/trace/internal/logging"
	"github.com/davidlattimore/perfetto-recorder/trace/pftrace"
)

type counterTrack struct {
	id          uint64
	name        string
	unit        Unit
	unitName    string
	multiplier  int64
	incremental bool
}

// Builder assembles drained ThreadData values and counter-track
// definitions into a Perfetto trace file. It is safe for concurrent use:
// CreateCounterTrack and ProcessThreadData may be called from any number
// of goroutines, each serialized by an internal mutex; only WriteTo reads
// the accumulated state, and should be called after all producers are
// done.
type Builder struct {
	mu sync.Mutex

	proc          ProcessData
	processUUID   uint64
	randHigh      uint32
	nextTrackLow  uint32
	anchorWallNS  int64
	anchorTraceNS int64
	threadUUID    map[int64]uint64
	threads       []*ThreadData
	counterTracks []*counterTrack
	log           logging.Logger
}

// SetLogger attaches a logger used for cold-path diagnostics: counter
// track creation and WriteTo failures. The default is a null logger.
func (b *Builder) SetLogger(l logging.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.log = l
}

func (b *Builder) logger() logging.Logger {
	if b.log == nil {
		return logging.Null()
	}
	return b.log
}

// New creates a Builder snapshotting the process identity recorded by
// Init, plus a paired (wall clock, trace clock) reading used as the
// trace's clock-snapshot anchor.
func New() *Builder {
	return newBuilder(randomUint32(), time.Now().UnixNano(), clock.Now())
}

// NewWithSeed creates a Builder with a caller-supplied high 32 bits for
// track id allocation and a zeroed clock-snapshot anchor. Track ids and
// the clock anchor are the only non-deterministic inputs to WriteTo;
// pinning both lets tests assert on exact output bytes instead of
// treating them as opaque.
func NewWithSeed(randHigh uint32) *Builder {
	return newBuilder(randHigh, 0, 0)
}

// NewWithLogrusLogging creates a Builder that reports counter-track
// creation and WriteTo failures through logrus, tagged with component.
// Callers outside this module's tree have no other way to supply a
// logger, since the Logger interface itself lives in an internal
// package.
func NewWithLogrusLogging(component string) *Builder {
	b := New()
	b.SetLogger(logging.NewLogrusDefault(component))
	return b
}

func newBuilder(randHigh uint32, wallNS, traceNS int64) *Builder {
	b := &Builder{
		proc:          currentProcessData(),
		randHigh:      randHigh,
		anchorWallNS:  wallNS,
		anchorTraceNS: traceNS,
		threadUUID:    make(map[int64]uint64),
	}
	b.processUUID = b.allocTrackID()
	return b
}

func randomUint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint32(os.Getpid())
	}
	return binary.BigEndian.Uint32(buf[:])
}

func (b *Builder) allocTrackID() uint64 {
	low := atomic.AddUint32(&b.nextTrackLow, 1)
	return uint64(b.randHigh)<<32 | uint64(low)
}

// CreateCounterTrack registers a new counter track and returns the handle
// to pass to RecordCounter. incremental marks the track's samples as
// deltas from the previous sample rather than absolute levels. name is
// copied, since track creation is a cold-path, infrequent operation
// relative to recording samples.
func (b *Builder) CreateCounterTrack(name string, unit Unit, unitName string, multiplier int64, incremental bool) TrackHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.allocTrackID()
	b.counterTracks = append(b.counterTracks, &counterTrack{
		id:          id,
		name:        name,
		unit:        unit,
		unitName:    unitName,
		multiplier:  multiplier,
		incremental: incremental,
	})
	b.logger().Debugf("trace: created counter track %q (id=%d)", name, id)
	return TrackHandle(id)
}

// ProcessThreadData accepts the output of a Drain call from any
// goroutine's recorder and stores it for the next WriteTo.
func (b *Builder) ProcessThreadData(td *ThreadData) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.threadUUID[td.GoID]; !ok {
		b.threadUUID[td.GoID] = b.allocTrackID()
	}
	b.threads = append(b.threads, td)
}

// unitToWire maps a Unit to Perfetto's CounterDescriptor unit enum plus
// the effective multiplier. The wire enum only has a nanosecond duration
// unit, so the coarser duration units fold their scale into the
// multiplier instead.
func unitToWire(u Unit, multiplier int64) (int32, int64) {
	if multiplier == 0 {
		multiplier = 1
	}
	switch u {
	case UnitSizeBytes:
		return pftrace.CounterUnitSizeBytes, multiplier
	case UnitCount:
		return pftrace.CounterUnitCount, multiplier
	case UnitDurationNS:
		return pftrace.CounterUnitTimeNS, multiplier
	case UnitDurationUS:
		return pftrace.CounterUnitTimeNS, multiplier * 1e3
	case UnitDurationMS:
		return pftrace.CounterUnitTimeNS, multiplier * 1e6
	case UnitDurationS:
		return pftrace.CounterUnitTimeNS, multiplier * 1e9
	default:
		return pftrace.CounterUnitUnspecified, multiplier
	}
}

// WriteTo serializes every ThreadData and counter track accumulated so
// far into the Perfetto trace packet stream described in the pftrace
// package, in the order: clock snapshot, process track, thread tracks,
// counter tracks, then one packet sequence per thread (its interned
// names followed by its events in capture order).
func (b *Builder) WriteTo(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	pw := pftrace.NewWriter(w)
	write := func(pkt []byte) error {
		if err := pw.WritePacket(pkt); err != nil {
			b.logger().Errorf("trace: write packet: %v", err)
			return ErrWrite
		}
		return nil
	}

	if err := write(pftrace.ClockSnapshotPacket(uint64(b.anchorWallNS), uint64(b.anchorTraceNS))); err != nil {
		return err
	}
	if err := write(pftrace.ProcessTrackPacket(b.processUUID, b.proc.PID, b.proc.Name)); err != nil {
		return err
	}
	for _, td := range b.threads {
		pkt := pftrace.ThreadTrackPacket(b.threadUUID[td.GoID], b.processUUID, b.proc.PID, td.GoID, td.Name)
		if err := write(pkt); err != nil {
			return err
		}
	}
	for _, ct := range b.counterTracks {
		unit, multiplier := unitToWire(ct.unit, ct.multiplier)
		pkt := pftrace.CounterTrackPacket(ct.id, b.processUUID, ct.name, unit, ct.unitName, multiplier, ct.incremental)
		if err := write(pkt); err != nil {
			return err
		}
	}

	var seq uint32
	for _, td := range b.threads {
		seq++
		trackUUID := b.threadUUID[td.GoID]

		// Written even when empty: this packet carries the sequence's
		// incremental-state-cleared flag, without which a consumer must
		// drop every event packet that follows on this sequence.
		names := make([]pftrace.InternedName, len(td.Interned))
		for i, n := range td.Interned {
			names[i] = pftrace.InternedName{ID: n.id, Name: n.name}
		}
		if err := write(pftrace.InternedDataPacket(seq, names)); err != nil {
			return err
		}

		if err := b.writeThreadEvents(write, seq, trackUUID, td); err != nil {
			return err
		}
	}

	if err := pw.Flush(); err != nil {
		b.logger().Errorf("trace: flush: %v", err)
		return ErrWrite
	}
	return nil
}

func (b *Builder) writeThreadEvents(write func([]byte) error, seq uint32, trackUUID uint64, td *ThreadData) error {
	for i := range td.Events {
		e := &td.Events[i]
		var pkt []byte
		switch e.kind {
		case eventSpanBegin:
			anns := make([]pftrace.Annotation, 0, e.argc)
			for j := 0; j < int(e.argc); j++ {
				anns = append(anns, argToAnnotation(argAt(e, td.Spill, j)))
			}
			pkt = pftrace.SlicePacket(seq, uint64(e.ts), trackUUID, true, e.nameID, anns)
		case eventSpanEnd:
			pkt = pftrace.SlicePacket(seq, uint64(e.ts), trackUUID, false, 0, nil)
		case eventCounter:
			switch e.counter.Kind() {
			case CounterFloat64:
				pkt = pftrace.CounterSamplePacket(seq, uint64(e.ts), e.trackID, true, 0, e.counter.Float64())
			default:
				pkt = pftrace.CounterSamplePacket(seq, uint64(e.ts), e.trackID, false, e.counter.Int64(), 0)
			}
		}
		if err := write(pkt); err != nil {
			return err
		}
	}
	return nil
}

func argToAnnotation(a Arg) pftrace.Annotation {
	ann := pftrace.Annotation{Name: a.Name}
	switch a.Value.Kind() {
	case KindUint64:
		ann.Kind = pftrace.AnnotationUint
		ann.Uint = a.Value.Uint64()
	case KindInt64:
		ann.Kind = pftrace.AnnotationInt
		ann.Int = a.Value.Int64()
	case KindFloat64:
		ann.Kind = pftrace.AnnotationDouble
		ann.Double = a.Value.Float64()
	case KindBool:
		ann.Kind = pftrace.AnnotationBool
		ann.Bool = a.Value.BoolValue()
	case KindString:
		ann.Kind = pftrace.AnnotationString
		ann.Str = a.Value.StringValue()
	}
	return ann
}

// WriteToFile is a convenience wrapper around WriteTo that creates (or
// truncates) path, writes the trace to it, and closes it before
// returning.
func (b *Builder) WriteToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
